package mudir

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts serialize as plain JSON numbers so the durable document and
	// backup files keep the shape older exports already use.
	decimal.MarshalJSONWithoutQuotes = true
}

// FieldType represents supported schema field types.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeNumber   FieldType = "number"
	FieldTypeCurrency FieldType = "currency"
	FieldTypeDate     FieldType = "date"
	FieldTypeBoolean  FieldType = "boolean"
	FieldTypeSelect   FieldType = "select"
)

// SchemaField is one typed column definition within a collection schema.
type SchemaField struct {
	Key          string    `json:"key" validate:"required"`
	Label        string    `json:"label" validate:"required"`
	Type         FieldType `json:"type" validate:"required"`
	Required     bool      `json:"required"`
	DefaultValue any       `json:"defaultValue,omitempty"`
	Options      []string  `json:"options,omitempty"`
}

// Item is one record within a Collection. Values are keyed by SchemaField.Key;
// keys orphaned by later schema edits are retained as-is.
type Item struct {
	ID        string         `json:"id" validate:"required"`
	CreatedAt time.Time      `json:"createdAt"`
	Values    map[string]any `json:"values"`
}

// Collection is a user-defined record type plus its stored data.
type Collection struct {
	ID          string        `json:"id" validate:"required"`
	Name        string        `json:"name" validate:"required"`
	Description string        `json:"description,omitempty"`
	Schema      []SchemaField `json:"schema" validate:"required,min=1,dive"`
	Data        []Item        `json:"data"`
}

// TransactionType distinguishes ledger movement direction.
type TransactionType string

const (
	TransactionCredit TransactionType = "CREDIT"
	TransactionDebit  TransactionType = "DEBIT"
)

// Organization is a ledger counterparty.
type Organization struct {
	ID    string `json:"id" validate:"required"`
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// Transaction is a single credit or debit movement against a ledger entry.
// OrganizationID is an informational back-reference, not an ownership pointer.
type Transaction struct {
	ID             string          `json:"id" validate:"required"`
	OrganizationID string          `json:"organizationId" validate:"required"`
	Type           TransactionType `json:"type" validate:"required,oneof=CREDIT DEBIT"`
	Amount         decimal.Decimal `json:"amount"`
	Date           time.Time       `json:"date"`
	Remark         string          `json:"remark,omitempty"`
}

// LedgerEntry pairs one Organization with its ordered transaction history.
type LedgerEntry struct {
	Organization Organization  `json:"organization" validate:"required"`
	Transactions []Transaction `json:"transactions" validate:"dive"`
}

// AppMeta is the singleton settings record persisted alongside the data.
type AppMeta struct {
	AppVersion       string    `json:"appVersion" validate:"required"`
	OrganizationName string    `json:"organizationName"`
	UserCurrency     string    `json:"userCurrency" validate:"required"`
	ExportDate       time.Time `json:"exportDate"`
	IsNewUser        *bool     `json:"isNewUser,omitempty"`
}

// Snapshot is the full serializable state of settings, collections and
// ledger entries at one point in time. This exact shape is both the durable
// storage format and the export/import file format.
type Snapshot struct {
	Meta        AppMeta       `json:"meta" validate:"required"`
	Collections []Collection  `json:"collections" validate:"required,dive"`
	Ledger      []LedgerEntry `json:"ledger" validate:"required,dive"`
}

// OrganizationUpdate carries a partial update; nil fields are left unchanged.
type OrganizationUpdate struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty"`
}

// TransactionUpdate carries a partial update; nil fields are left unchanged.
type TransactionUpdate struct {
	Type   *TransactionType `json:"type,omitempty"`
	Amount *decimal.Decimal `json:"amount,omitempty"`
	Date   *time.Time       `json:"date,omitempty"`
	Remark *string          `json:"remark,omitempty"`
}
