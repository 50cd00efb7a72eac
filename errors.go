package mudir

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of error.
type ErrorType string

const (
	ErrorTypeValidation  ErrorType = "validation"
	ErrorTypeNotFound    ErrorType = "not_found"
	ErrorTypePersistence ErrorType = "persistence"
	ErrorTypeImport      ErrorType = "import"
	ErrorTypeExport      ErrorType = "export"
	ErrorTypeInternal    ErrorType = "internal"
)

// Error codes used across the module.
const (
	// Schema validation errors
	ErrCodeEmptySchema          = "EMPTY_SCHEMA"
	ErrCodeDuplicateFieldKey    = "DUPLICATE_FIELD_KEY"
	ErrCodeEmptyFieldLabel      = "EMPTY_FIELD_LABEL"
	ErrCodeMissingSelectOptions = "MISSING_SELECT_OPTIONS"

	// Item validation errors
	ErrCodeRequiredFieldMissing = "REQUIRED_FIELD_MISSING"

	// Persistence errors
	ErrCodeSnapshotReadFailed  = "SNAPSHOT_READ_FAILED"
	ErrCodeSnapshotWriteFailed = "SNAPSHOT_WRITE_FAILED"

	// Import/export errors
	ErrCodeImportParseFailed   = "IMPORT_PARSE_FAILED"
	ErrCodeImportShapeInvalid  = "IMPORT_SHAPE_INVALID"
	ErrCodeImportInvalidAmount = "IMPORT_INVALID_AMOUNT"
	ErrCodeExportUnavailable   = "EXPORT_UNAVAILABLE"
	ErrCodeStatementFailed     = "STATEMENT_FAILED"

	// Configuration errors
	ErrCodeConfigInvalid = "CONFIG_INVALID"
)

// MudirError is the unified error type for the data core.
type MudirError struct {
	Type    ErrorType      `json:"type"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Field   string         `json:"field,omitempty"`
	Details map[string]any `json:"details,omitempty"`
	Cause   error          `json:"-"`
}

func (e *MudirError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("[%s:%s] field '%s': %s", e.Type, e.Code, e.Field, e.Message)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Type, e.Code, e.Message)
}

func (e *MudirError) Unwrap() error {
	return e.Cause
}

// WithField adds field context to the error.
func (e *MudirError) WithField(field string) *MudirError {
	e.Field = field
	return e
}

// WithDetail adds a single detail to the error.
func (e *MudirError) WithDetail(key string, value any) *MudirError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause adds an underlying cause to the error.
func (e *MudirError) WithCause(cause error) *MudirError {
	e.Cause = cause
	return e
}

// NewMudirError creates a new MudirError.
func NewMudirError(errorType ErrorType, code, message string) *MudirError {
	return &MudirError{
		Type:    errorType,
		Code:    code,
		Message: message,
	}
}

// NewSchemaError creates a schema validation error.
func NewSchemaError(code, message string) *MudirError {
	return NewMudirError(ErrorTypeValidation, code, message)
}

// NewPersistenceError creates a persistence error wrapping the I/O cause.
func NewPersistenceError(code, message string, cause error) *MudirError {
	return NewMudirError(ErrorTypePersistence, code, message).WithCause(cause)
}

// NewImportError creates an import rejection error.
func NewImportError(code, message string) *MudirError {
	return NewMudirError(ErrorTypeImport, code, message)
}

// NewExportError creates an export failure error.
func NewExportError(code, message string) *MudirError {
	return NewMudirError(ErrorTypeExport, code, message)
}

// IsErrorCode reports whether err is a MudirError carrying the given code.
func IsErrorCode(err error, code string) bool {
	var me *MudirError
	if errors.As(err, &me) {
		return me.Code == code
	}
	return false
}
