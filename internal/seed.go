package internal

import (
	"time"

	"github.com/mudir-labs/mudir"
	"github.com/shopspring/decimal"
)

// SeedSnapshot returns a small demo dataset: one inventory collection and
// one ledger party with a short transaction history.
func SeedSnapshot(cfg *mudir.Config) mudir.Snapshot {
	now := time.Now().UTC()
	snapshot := InitialSnapshot(cfg)

	snapshot.Collections = []mudir.Collection{
		{
			ID:          "seed-products",
			Name:        "Products",
			Description: "Sample product catalog",
			Schema: []mudir.SchemaField{
				{Key: "field_name", Label: "Name", Type: mudir.FieldTypeText, Required: true},
				{Key: "field_price", Label: "Price", Type: mudir.FieldTypeCurrency, Required: true},
				{Key: "field_category", Label: "Category", Type: mudir.FieldTypeSelect, Options: []string{"Stationery", "Grocery", "Other"}},
				{Key: "field_in_stock", Label: "In Stock", Type: mudir.FieldTypeBoolean},
			},
			Data: []mudir.Item{
				{
					ID:        "seed-item-1",
					CreatedAt: now,
					Values: map[string]any{
						"field_name":     "Red Pen",
						"field_price":    10.0,
						"field_category": "Stationery",
						"field_in_stock": true,
					},
				},
				{
					ID:        "seed-item-2",
					CreatedAt: now,
					Values: map[string]any{
						"field_name":     "Blue Pen",
						"field_price":    12.0,
						"field_category": "Stationery",
						"field_in_stock": false,
					},
				},
			},
		},
	}

	snapshot.Ledger = []mudir.LedgerEntry{
		{
			Organization: mudir.Organization{
				ID:    "seed-org-1",
				Name:  "Sharma Distributors",
				Phone: "+91 98765 43210",
			},
			Transactions: []mudir.Transaction{
				{
					ID:             "seed-txn-1",
					OrganizationID: "seed-org-1",
					Type:           mudir.TransactionDebit,
					Amount:         decimal.NewFromInt(100),
					Date:           now.Add(-48 * time.Hour),
					Remark:         "Opening delivery",
				},
				{
					ID:             "seed-txn-2",
					OrganizationID: "seed-org-1",
					Type:           mudir.TransactionCredit,
					Amount:         decimal.NewFromInt(30),
					Date:           now.Add(-24 * time.Hour),
					Remark:         "Part payment",
				},
			},
		},
	}

	return snapshot
}

// ClearSnapshot returns an empty snapshot with fresh settings, used by the
// clear flow to wipe all data.
func ClearSnapshot(cfg *mudir.Config) mudir.Snapshot {
	return InitialSnapshot(cfg)
}
