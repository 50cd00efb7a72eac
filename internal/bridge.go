package internal

import (
	"context"
	"os"
	"time"

	"github.com/mudir-labs/mudir"
	"go.uber.org/zap"
)

// SnapshotSource provides the full current state for persistence.
type SnapshotSource interface {
	Snapshot() mudir.Snapshot
}

// PersistenceBridge keeps the durable document eventually consistent with
// the record store. It implements mudir.WriteScheduler: every store mutation
// notifies it, and a debounced full-snapshot write executes once the
// quiescence window elapses with no further mutations. A failed write is
// logged and swallowed; the in-memory state stays the source of truth until
// the next successful write.
type PersistenceBridge struct {
	files    mudir.SnapshotStore
	source   SnapshotSource
	debounce *Debouncer
}

// NewPersistenceBridge creates a bridge over the given snapshot store.
// Bind must be called before the first notification fires.
func NewPersistenceBridge(files mudir.SnapshotStore, window time.Duration) *PersistenceBridge {
	b := &PersistenceBridge{files: files}
	b.debounce = NewDebouncer(window, b.flush)
	return b
}

// Bind attaches the state source whose snapshots get persisted.
func (b *PersistenceBridge) Bind(source SnapshotSource) {
	b.source = source
}

// Files exposes the underlying snapshot store, used by export/import flows.
func (b *PersistenceBridge) Files() mudir.SnapshotStore {
	return b.files
}

// Notify implements mudir.WriteScheduler.
func (b *PersistenceBridge) Notify() {
	b.debounce.Notify()
}

// Flush forces a pending write to execute now.
func (b *PersistenceBridge) Flush() {
	b.debounce.Flush()
}

// Close flushes any pending write and stops the bridge.
func (b *PersistenceBridge) Close() {
	b.debounce.Close()
}

func (b *PersistenceBridge) flush() {
	if b.source == nil {
		return
	}
	snapshot := b.source.Snapshot()
	snapshot.Meta.ExportDate = time.Now().UTC()
	if err := b.files.Write(context.Background(), snapshot); err != nil {
		zap.S().Errorw("snapshot write failed, keeping in-memory state",
			"path", b.files.Path(), "error", err)
	}
}

// OpenStore wires the persistence cycle: it initializes the durable
// document, hydrates a record store from it, and connects the store's
// mutations to the debounced write-through. This is the primary way for
// callers to obtain a working store.
func OpenStore(ctx context.Context, cfg *mudir.Config) (mudir.RecordStore, *PersistenceBridge, error) {
	files := NewFileSnapshotStore(cfg)
	_, statErr := os.Stat(cfg.Storage.DataFile)
	existed := statErr == nil

	bridge := NewPersistenceBridge(files, cfg.Storage.DebounceWindow)
	store := NewRecordStore(bridge)
	bridge.Bind(store)

	snapshot, err := files.Init(ctx)
	if err != nil {
		return nil, nil, err
	}
	store.Hydrate(snapshot)

	// A document that predates this run means the user has been through a
	// session already; the onboarding flag is cleared on this load.
	if existed && snapshot.Meta.IsNewUser != nil && *snapshot.Meta.IsNewUser {
		store.CompleteOnboarding()
	}

	zap.S().Infow("store hydrated",
		"path", files.Path(),
		"collections", len(snapshot.Collections),
		"ledgerEntries", len(snapshot.Ledger))
	return store, bridge, nil
}
