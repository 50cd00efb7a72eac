package mudir

import (
	"context"
)

// SnapshotStore durably stores the single JSON document backing the store.
// Implementations can write to local files or any other byte sink.
type SnapshotStore interface {
	// Init loads the document, seeding an initial one on first run ever.
	Init(ctx context.Context) (Snapshot, error)
	// Read returns the stored snapshot. A corrupt or unreadable document
	// yields a safe default snapshot, not an error.
	Read(ctx context.Context) (Snapshot, error)
	// Write replaces the stored document with the given snapshot.
	Write(ctx context.Context, snapshot Snapshot) error
	// Path returns the location of the durable document.
	Path() string
}

// WriteScheduler coalesces persistence writes. The store notifies it after
// every applied mutation; the scheduler decides when a snapshot is flushed.
type WriteScheduler interface {
	// Notify signals that state changed and a write should be (re)scheduled.
	Notify()
	// Flush forces any pending scheduled write to execute now.
	Flush()
	// Close stops the scheduler, flushing a pending write if one exists.
	Close()
}

// RecordStore is the single authoritative in-memory state for all
// collections and ledger entries. Mutations apply atomically and notify the
// injected WriteScheduler; operations against unknown ids are silent no-ops
// reported through the boolean return.
type RecordStore interface {
	// Hydration and snapshots
	Hydrate(snapshot Snapshot)
	Snapshot() Snapshot
	ReplaceAll(collections []Collection, ledger []LedgerEntry)

	// Inventory
	AddCollection(collection Collection) bool
	DeleteCollection(id string) bool
	SetCollectionSchema(id string, fields []SchemaField) error
	AddItem(collectionID string, item Item) bool
	DeleteItem(collectionID, itemID string) bool
	Collection(id string) (Collection, bool)
	Collections() []Collection
	SearchItems(collectionID, query string) []Item

	// Ledger
	AddOrganization(org Organization) bool
	UpdateOrganization(id string, updates OrganizationUpdate) bool
	DeleteOrganization(id string) bool
	AddTransaction(organizationID string, txn Transaction) bool
	UpdateTransaction(organizationID, transactionID string, updates TransactionUpdate) bool
	DeleteTransaction(organizationID, transactionID string) bool
	LedgerEntry(organizationID string) (LedgerEntry, bool)
	Ledger() []LedgerEntry

	// Settings
	Meta() AppMeta
	SetMeta(meta AppMeta)
	SetOrganizationName(name string)
	SetCurrency(symbol string)
	CompleteOnboarding()
}
