package internal

import (
	"github.com/mudir-labs/mudir"
)

// Deep-copy helpers so readers never share slices or maps with the store.

func copyCollections(collections []mudir.Collection) []mudir.Collection {
	out := make([]mudir.Collection, len(collections))
	for i, c := range collections {
		out[i] = copyCollection(c)
	}
	return out
}

func copyCollection(c mudir.Collection) mudir.Collection {
	c.Schema = copySchema(c.Schema)
	data := make([]mudir.Item, len(c.Data))
	for i, item := range c.Data {
		data[i] = copyItem(item)
	}
	c.Data = data
	return c
}

func copySchema(fields []mudir.SchemaField) []mudir.SchemaField {
	out := make([]mudir.SchemaField, len(fields))
	for i, f := range fields {
		if f.Options != nil {
			f.Options = append([]string(nil), f.Options...)
		}
		out[i] = f
	}
	return out
}

func copyItem(item mudir.Item) mudir.Item {
	values := make(map[string]any, len(item.Values))
	for k, v := range item.Values {
		values[k] = v
	}
	item.Values = values
	return item
}

func copyLedger(ledger []mudir.LedgerEntry) []mudir.LedgerEntry {
	out := make([]mudir.LedgerEntry, len(ledger))
	for i, e := range ledger {
		out[i] = copyLedgerEntry(e)
	}
	return out
}

func copyLedgerEntry(e mudir.LedgerEntry) mudir.LedgerEntry {
	// Keep slices non-nil so the serialized document carries [] rather than null.
	txns := make([]mudir.Transaction, len(e.Transactions))
	copy(txns, e.Transactions)
	e.Transactions = txns
	return e
}

func copyMeta(meta mudir.AppMeta) mudir.AppMeta {
	if meta.IsNewUser != nil {
		v := *meta.IsNewUser
		meta.IsNewUser = &v
	}
	return meta
}
