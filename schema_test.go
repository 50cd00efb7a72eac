package mudir

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSchema(t *testing.T) {
	tests := []struct {
		name     string
		fields   []SchemaField
		wantCode string
	}{
		{
			name: "valid schema",
			fields: []SchemaField{
				{Key: "field_name", Label: "Name", Type: FieldTypeText, Required: true},
				{Key: "field_price", Label: "Price", Type: FieldTypeCurrency},
			},
		},
		{
			name: "valid select with options",
			fields: []SchemaField{
				{Key: "field_size", Label: "Size", Type: FieldTypeSelect, Options: []string{"S", "M", "L"}},
			},
		},
		{
			name:     "empty schema",
			fields:   nil,
			wantCode: ErrCodeEmptySchema,
		},
		{
			name: "duplicate keys",
			fields: []SchemaField{
				{Key: "field_a", Label: "A", Type: FieldTypeText},
				{Key: "field_a", Label: "B", Type: FieldTypeText},
			},
			wantCode: ErrCodeDuplicateFieldKey,
		},
		{
			name: "blank label",
			fields: []SchemaField{
				{Key: "field_a", Label: "   ", Type: FieldTypeText},
			},
			wantCode: ErrCodeEmptyFieldLabel,
		},
		{
			name: "select without options",
			fields: []SchemaField{
				{Key: "field_a", Label: "Choice", Type: FieldTypeSelect},
			},
			wantCode: ErrCodeMissingSelectOptions,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSchema(tt.fields)
			if tt.wantCode == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, IsErrorCode(err, tt.wantCode), "expected code %s, got %v", tt.wantCode, err)
		})
	}
}

func TestNewFieldKeyUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		key := NewFieldKey()
		require.True(t, strings.HasPrefix(key, "field_"))
		_, dup := seen[key]
		require.False(t, dup, "generated a duplicate field key: %s", key)
		seen[key] = struct{}{}
	}
}

func TestValidateItemValues(t *testing.T) {
	schema := []SchemaField{
		{Key: "field_name", Label: "Name", Type: FieldTypeText, Required: true},
		{Key: "field_qty", Label: "Quantity", Type: FieldTypeNumber, Required: true},
		{Key: "field_active", Label: "Active", Type: FieldTypeBoolean, Required: true},
		{Key: "field_note", Label: "Note", Type: FieldTypeText},
	}

	tests := []struct {
		name   string
		values map[string]any
		want   bool
	}{
		{
			name:   "all required present",
			values: map[string]any{"field_name": "Pen", "field_qty": 3.0, "field_active": true},
			want:   true,
		},
		{
			name:   "zero counts as present",
			values: map[string]any{"field_name": "Pen", "field_qty": 0.0, "field_active": true},
			want:   true,
		},
		{
			name:   "false counts as present",
			values: map[string]any{"field_name": "Pen", "field_qty": 1.0, "field_active": false},
			want:   true,
		},
		{
			name:   "missing required key",
			values: map[string]any{"field_name": "Pen", "field_active": true},
			want:   false,
		},
		{
			name:   "empty string is absent",
			values: map[string]any{"field_name": "", "field_qty": 1.0, "field_active": true},
			want:   false,
		},
		{
			name:   "nil is absent",
			values: map[string]any{"field_name": nil, "field_qty": 1.0, "field_active": true},
			want:   false,
		},
		{
			name:   "non-required fields never checked",
			values: map[string]any{"field_name": "Pen", "field_qty": 1.0, "field_active": true, "field_note": ""},
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateItemValues(schema, tt.values); got != tt.want {
				t.Fatalf("ValidateItemValues() = %v, want %v", got, tt.want)
			}
		})
	}
}
