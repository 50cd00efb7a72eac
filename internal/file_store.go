package internal

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mudir-labs/mudir"
	"go.uber.org/zap"
)

// StoreState tracks the lifecycle of the durable document.
type StoreState string

const (
	StateUninitialized StoreState = "uninitialized"
	StateLoading       StoreState = "loading"
	StateReady         StoreState = "ready"
)

// fileSnapshotStore keeps the single JSON document on local storage.
// Reads fail soft (a corrupt document yields the initial snapshot); write
// failures are reported to the caller, which logs and swallows them.
type fileSnapshotStore struct {
	mu    sync.Mutex
	path  string
	cfg   *mudir.Config
	state StoreState
}

// NewFileSnapshotStore creates a file-backed snapshot store at the
// configured data file path.
func NewFileSnapshotStore(cfg *mudir.Config) mudir.SnapshotStore {
	return &fileSnapshotStore{
		path:  cfg.Storage.DataFile,
		cfg:   cfg,
		state: StateUninitialized,
	}
}

func (f *fileSnapshotStore) Path() string {
	return f.path
}

// InitialSnapshot builds the seed document written on first run ever.
func InitialSnapshot(cfg *mudir.Config) mudir.Snapshot {
	isNew := true
	return mudir.Snapshot{
		Meta: mudir.AppMeta{
			AppVersion:       cfg.Settings.AppVersion,
			OrganizationName: cfg.Settings.OrganizationName,
			UserCurrency:     cfg.Settings.DefaultCurrency,
			ExportDate:       time.Now().UTC(),
			IsNewUser:        &isNew,
		},
		Collections: []mudir.Collection{},
		Ledger:      []mudir.LedgerEntry{},
	}
}

// Init loads the stored document, writing the initial one when no document
// exists yet. After Init returns the store is READY.
func (f *fileSnapshotStore) Init(ctx context.Context) (mudir.Snapshot, error) {
	f.mu.Lock()
	f.state = StateLoading
	f.mu.Unlock()

	if _, err := os.Stat(f.path); os.IsNotExist(err) {
		seed := InitialSnapshot(f.cfg)
		if err := f.Write(ctx, seed); err != nil {
			return mudir.Snapshot{}, err
		}
		f.setReady()
		return seed, nil
	}

	snapshot, err := f.Read(ctx)
	if err != nil {
		return mudir.Snapshot{}, err
	}
	f.setReady()
	return snapshot, nil
}

func (f *fileSnapshotStore) setReady() {
	f.mu.Lock()
	f.state = StateReady
	f.mu.Unlock()
}

// State returns the current lifecycle state.
func (f *fileSnapshotStore) State() StoreState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Read returns the stored snapshot. A missing, unreadable or corrupt
// document is logged and replaced by the initial snapshot; the app then
// simply starts empty.
func (f *fileSnapshotStore) Read(ctx context.Context) (mudir.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return mudir.Snapshot{}, err
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		zap.S().Warnw("failed to read snapshot, falling back to initial state",
			"path", f.path, "error", err)
		return InitialSnapshot(f.cfg), nil
	}

	var snapshot mudir.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		zap.S().Warnw("snapshot document is corrupt, falling back to initial state",
			"path", f.path, "error", err)
		return InitialSnapshot(f.cfg), nil
	}
	return snapshot, nil
}

// Write replaces the document atomically via a temp file and rename, so a
// crash mid-write never leaves a truncated document behind.
func (f *fileSnapshotStore) Write(ctx context.Context, snapshot mudir.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return mudir.NewPersistenceError(mudir.ErrCodeSnapshotWriteFailed, "failed to encode snapshot", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return mudir.NewPersistenceError(mudir.ErrCodeSnapshotWriteFailed, "failed to create data directory", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return mudir.NewPersistenceError(mudir.ErrCodeSnapshotWriteFailed, "failed to create temp file", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return mudir.NewPersistenceError(mudir.ErrCodeSnapshotWriteFailed, "failed to write snapshot", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return mudir.NewPersistenceError(mudir.ErrCodeSnapshotWriteFailed, "failed to close temp file", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return mudir.NewPersistenceError(mudir.ErrCodeSnapshotWriteFailed, "failed to replace snapshot", err)
	}
	return nil
}
