package internal

import (
	"sync"

	"github.com/mudir-labs/mudir"
)

// recordStore is the in-memory implementation of mudir.RecordStore.
// Mutations are serialized by a single mutex and notify the injected
// scheduler after the change is fully applied, never before.
type recordStore struct {
	mu          sync.Mutex
	collections []mudir.Collection
	ledger      []mudir.LedgerEntry
	meta        mudir.AppMeta
	scheduler   mudir.WriteScheduler
}

// NewRecordStore creates a record store. The scheduler may be nil, in which
// case mutations apply without triggering persistence (used by tests and by
// bulk tooling that flushes explicitly).
func NewRecordStore(scheduler mudir.WriteScheduler) mudir.RecordStore {
	return &recordStore{scheduler: scheduler}
}

func (s *recordStore) notify() {
	if s.scheduler != nil {
		s.scheduler.Notify()
	}
}

// Hydrate replaces all state from a snapshot without scheduling a write.
// It is only meant for startup, before the UI reads live data.
func (s *recordStore) Hydrate(snapshot mudir.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections = copyCollections(snapshot.Collections)
	s.ledger = copyLedger(snapshot.Ledger)
	s.meta = copyMeta(snapshot.Meta)
}

// Snapshot returns a deep copy of the full current state.
func (s *recordStore) Snapshot() mudir.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return mudir.Snapshot{
		Meta:        copyMeta(s.meta),
		Collections: copyCollections(s.collections),
		Ledger:      copyLedger(s.ledger),
	}
}

// ReplaceAll bulk-overwrites the state tree. Used by import, seed and clear
// flows; the incoming data is assumed pre-validated by its producer.
func (s *recordStore) ReplaceAll(collections []mudir.Collection, ledger []mudir.LedgerEntry) {
	s.mu.Lock()
	s.collections = copyCollections(collections)
	s.ledger = copyLedger(ledger)
	s.mu.Unlock()
	s.notify()
}

func (s *recordStore) AddCollection(collection mudir.Collection) bool {
	s.mu.Lock()
	if s.indexOfCollection(collection.ID) >= 0 {
		s.mu.Unlock()
		return false
	}
	s.collections = append(s.collections, copyCollection(collection))
	s.mu.Unlock()
	s.notify()
	return true
}

func (s *recordStore) DeleteCollection(id string) bool {
	s.mu.Lock()
	idx := s.indexOfCollection(id)
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	s.collections = append(s.collections[:idx], s.collections[idx+1:]...)
	s.mu.Unlock()
	s.notify()
	return true
}

// SetCollectionSchema replaces the schema after structural validation.
// Existing items are not re-validated or migrated: values for removed fields
// stay orphaned and newly required fields are not back-filled.
func (s *recordStore) SetCollectionSchema(id string, fields []mudir.SchemaField) error {
	if err := mudir.ValidateSchema(fields); err != nil {
		return err
	}
	s.mu.Lock()
	idx := s.indexOfCollection(id)
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}
	s.collections[idx].Schema = copySchema(fields)
	s.mu.Unlock()
	s.notify()
	return nil
}

// AddItem appends an item to a collection. Required-field validation is the
// caller's responsibility (mudir.ValidateItemValues); the store only stores.
func (s *recordStore) AddItem(collectionID string, item mudir.Item) bool {
	s.mu.Lock()
	idx := s.indexOfCollection(collectionID)
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	s.collections[idx].Data = append(s.collections[idx].Data, copyItem(item))
	s.mu.Unlock()
	s.notify()
	return true
}

func (s *recordStore) DeleteItem(collectionID, itemID string) bool {
	s.mu.Lock()
	idx := s.indexOfCollection(collectionID)
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	data := s.collections[idx].Data
	for i, item := range data {
		if item.ID == itemID {
			s.collections[idx].Data = append(data[:i], data[i+1:]...)
			s.mu.Unlock()
			s.notify()
			return true
		}
	}
	s.mu.Unlock()
	return false
}

func (s *recordStore) Collection(id string) (mudir.Collection, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOfCollection(id)
	if idx < 0 {
		return mudir.Collection{}, false
	}
	return copyCollection(s.collections[idx]), true
}

func (s *recordStore) Collections() []mudir.Collection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyCollections(s.collections)
}

// SearchItems runs the linear substring search over one collection.
func (s *recordStore) SearchItems(collectionID, query string) []mudir.Item {
	collection, ok := s.Collection(collectionID)
	if !ok {
		return nil
	}
	return mudir.FilterItems(collection, query)
}

func (s *recordStore) AddOrganization(org mudir.Organization) bool {
	s.mu.Lock()
	if s.indexOfEntry(org.ID) >= 0 {
		s.mu.Unlock()
		return false
	}
	s.ledger = append(s.ledger, mudir.LedgerEntry{
		Organization: org,
		Transactions: []mudir.Transaction{},
	})
	s.mu.Unlock()
	s.notify()
	return true
}

func (s *recordStore) UpdateOrganization(id string, updates mudir.OrganizationUpdate) bool {
	s.mu.Lock()
	idx := s.indexOfEntry(id)
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	org := &s.ledger[idx].Organization
	if updates.Name != nil {
		org.Name = *updates.Name
	}
	if updates.Phone != nil {
		org.Phone = *updates.Phone
	}
	if updates.Email != nil {
		org.Email = *updates.Email
	}
	s.mu.Unlock()
	s.notify()
	return true
}

// DeleteOrganization removes the ledger entry and cascades removal of every
// transaction it holds.
func (s *recordStore) DeleteOrganization(id string) bool {
	s.mu.Lock()
	idx := s.indexOfEntry(id)
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	s.ledger = append(s.ledger[:idx], s.ledger[idx+1:]...)
	s.mu.Unlock()
	s.notify()
	return true
}

func (s *recordStore) AddTransaction(organizationID string, txn mudir.Transaction) bool {
	if txn.Amount.IsNegative() {
		return false
	}
	s.mu.Lock()
	idx := s.indexOfEntry(organizationID)
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	s.ledger[idx].Transactions = append(s.ledger[idx].Transactions, txn)
	s.mu.Unlock()
	s.notify()
	return true
}

func (s *recordStore) UpdateTransaction(organizationID, transactionID string, updates mudir.TransactionUpdate) bool {
	if updates.Amount != nil && updates.Amount.IsNegative() {
		return false
	}
	s.mu.Lock()
	idx := s.indexOfEntry(organizationID)
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	txns := s.ledger[idx].Transactions
	for i := range txns {
		if txns[i].ID != transactionID {
			continue
		}
		if updates.Type != nil {
			txns[i].Type = *updates.Type
		}
		if updates.Amount != nil {
			txns[i].Amount = *updates.Amount
		}
		if updates.Date != nil {
			txns[i].Date = *updates.Date
		}
		if updates.Remark != nil {
			txns[i].Remark = *updates.Remark
		}
		s.mu.Unlock()
		s.notify()
		return true
	}
	s.mu.Unlock()
	return false
}

func (s *recordStore) DeleteTransaction(organizationID, transactionID string) bool {
	s.mu.Lock()
	idx := s.indexOfEntry(organizationID)
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	txns := s.ledger[idx].Transactions
	for i, txn := range txns {
		if txn.ID == transactionID {
			s.ledger[idx].Transactions = append(txns[:i], txns[i+1:]...)
			s.mu.Unlock()
			s.notify()
			return true
		}
	}
	s.mu.Unlock()
	return false
}

func (s *recordStore) LedgerEntry(organizationID string) (mudir.LedgerEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOfEntry(organizationID)
	if idx < 0 {
		return mudir.LedgerEntry{}, false
	}
	return copyLedgerEntry(s.ledger[idx]), true
}

func (s *recordStore) Ledger() []mudir.LedgerEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyLedger(s.ledger)
}

func (s *recordStore) Meta() mudir.AppMeta {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyMeta(s.meta)
}

func (s *recordStore) SetMeta(meta mudir.AppMeta) {
	s.mu.Lock()
	s.meta = copyMeta(meta)
	s.mu.Unlock()
	s.notify()
}

func (s *recordStore) SetOrganizationName(name string) {
	s.mu.Lock()
	s.meta.OrganizationName = name
	s.mu.Unlock()
	s.notify()
}

func (s *recordStore) SetCurrency(symbol string) {
	s.mu.Lock()
	s.meta.UserCurrency = symbol
	s.mu.Unlock()
	s.notify()
}

func (s *recordStore) CompleteOnboarding() {
	s.mu.Lock()
	done := false
	s.meta.IsNewUser = &done
	s.mu.Unlock()
	s.notify()
}

// indexOfCollection and indexOfEntry must be called with the mutex held.

func (s *recordStore) indexOfCollection(id string) int {
	for i := range s.collections {
		if s.collections[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *recordStore) indexOfEntry(organizationID string) int {
	for i := range s.ledger {
		if s.ledger[i].Organization.ID == organizationID {
			return i
		}
	}
	return -1
}
