package mudir

import (
	"strings"

	"github.com/google/uuid"
)

// fieldKeyPrefix prefixes generated schema field keys.
const fieldKeyPrefix = "field_"

// NewFieldKey generates a schema field key that cannot collide with any
// existing key, regardless of how quickly fields are added in one session.
func NewFieldKey() string {
	return fieldKeyPrefix + uuid.NewString()
}

// ValidateSchema checks the structural invariants of a collection schema:
// at least one field, unique keys, non-blank labels, and at least one option
// on every select field.
func ValidateSchema(fields []SchemaField) error {
	if len(fields) == 0 {
		return NewSchemaError(ErrCodeEmptySchema, "schema must contain at least one field")
	}

	seen := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		if _, dup := seen[field.Key]; dup {
			return NewSchemaError(ErrCodeDuplicateFieldKey, "field keys must be unique").WithField(field.Key)
		}
		seen[field.Key] = struct{}{}

		if strings.TrimSpace(field.Label) == "" {
			return NewSchemaError(ErrCodeEmptyFieldLabel, "every field must have a label").WithField(field.Key)
		}

		if field.Type == FieldTypeSelect && len(field.Options) == 0 {
			return NewSchemaError(ErrCodeMissingSelectOptions, "select fields must have at least one option").WithField(field.Key)
		}
	}

	return nil
}

// ValidateItemValues reports whether values satisfy every required field of
// the schema. A required field is satisfied when its key maps to a present,
// non-empty value: nil and the empty string are absent, while the number 0
// and boolean false count as present. Non-required fields are never checked,
// and type-correctness of values is not this function's concern.
func ValidateItemValues(schema []SchemaField, values map[string]any) bool {
	for _, field := range schema {
		if !field.Required {
			continue
		}
		value, ok := values[field.Key]
		if !ok || isAbsent(value) {
			return false
		}
	}
	return true
}

func isAbsent(value any) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return s == ""
	}
	return false
}
