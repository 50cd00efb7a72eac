package mudir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func penCollection() Collection {
	return Collection{
		ID:   "col-1",
		Name: "Stationery",
		Schema: []SchemaField{
			{Key: "field_name", Label: "Name", Type: FieldTypeText, Required: true},
			{Key: "field_price", Label: "Price", Type: FieldTypeCurrency},
			{Key: "field_in_stock", Label: "In Stock", Type: FieldTypeBoolean},
		},
		Data: []Item{
			{ID: "item-1", Values: map[string]any{"field_name": "Red Pen", "field_price": 10.0, "field_in_stock": true}},
			{ID: "item-2", Values: map[string]any{"field_name": "Blue Pen", "field_price": 12.5, "field_in_stock": false}},
			{ID: "item-3", Values: map[string]any{"field_name": "Notebook", "field_price": 45.0, "field_in_stock": true}},
		},
	}
}

func TestFilterItems(t *testing.T) {
	collection := penCollection()

	t.Run("case-insensitive substring across fields", func(t *testing.T) {
		items := FilterItems(collection, "pen")
		require.Len(t, items, 2)
		assert.Equal(t, "item-1", items[0].ID)
		assert.Equal(t, "item-2", items[1].ID)
	})

	t.Run("no matches", func(t *testing.T) {
		assert.Empty(t, FilterItems(collection, "xyz"))
	})

	t.Run("empty query returns all in storage order", func(t *testing.T) {
		items := FilterItems(collection, "")
		require.Len(t, items, 3)
		assert.Equal(t, "item-1", items[0].ID)
		assert.Equal(t, "item-2", items[1].ID)
		assert.Equal(t, "item-3", items[2].ID)
	})

	t.Run("matches numeric fields", func(t *testing.T) {
		items := FilterItems(collection, "12.5")
		require.Len(t, items, 1)
		assert.Equal(t, "item-2", items[0].ID)
	})

	t.Run("matches boolean fields", func(t *testing.T) {
		items := FilterItems(collection, "false")
		require.Len(t, items, 1)
		assert.Equal(t, "item-2", items[0].ID)
	})

	t.Run("ignores values for keys outside the schema", func(t *testing.T) {
		c := penCollection()
		c.Data[0].Values["field_orphaned"] = "ghost"
		assert.Empty(t, FilterItems(c, "ghost"))
	})
}
