package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mudir-labs/mudir"
	"go.uber.org/zap"
)

// BackupManager handles export and all-or-nothing import of the durable
// document. Import never partially applies: the incoming bytes are parsed
// and validated in full before the store is touched.
type BackupManager struct {
	store    mudir.RecordStore
	files    mudir.SnapshotStore
	validate *validator.Validate
}

// NewBackupManager creates a backup manager over the store and its document.
func NewBackupManager(store mudir.RecordStore, files mudir.SnapshotStore) *BackupManager {
	return &BackupManager{
		store:    store,
		files:    files,
		validate: validator.New(),
	}
}

// Import replaces all state from backup file bytes. On any failure the
// current in-memory state is left unchanged and a typed error is returned.
func (m *BackupManager) Import(data []byte) (mudir.Snapshot, error) {
	if err := mudir.ValidateSnapshotDocument(data); err != nil {
		return mudir.Snapshot{}, err
	}

	var snapshot mudir.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return mudir.Snapshot{}, mudir.NewImportError(mudir.ErrCodeImportParseFailed, "failed to decode backup").WithCause(err)
	}

	if err := m.validate.Struct(snapshot); err != nil {
		return mudir.Snapshot{}, mudir.NewImportError(mudir.ErrCodeImportShapeInvalid, "backup content failed validation").WithCause(err)
	}

	for _, entry := range snapshot.Ledger {
		for _, txn := range entry.Transactions {
			if txn.Amount.IsNegative() {
				return mudir.Snapshot{}, mudir.NewImportError(mudir.ErrCodeImportInvalidAmount, "transaction amounts must be non-negative").
					WithDetail("transactionId", txn.ID)
			}
		}
	}

	m.store.ReplaceAll(snapshot.Collections, snapshot.Ledger)
	m.store.SetMeta(snapshot.Meta)

	zap.S().Infow("backup imported",
		"collections", len(snapshot.Collections),
		"ledgerEntries", len(snapshot.Ledger))
	return snapshot, nil
}

// ImportFile imports a backup from a file path.
func (m *BackupManager) ImportFile(path string) (mudir.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return mudir.Snapshot{}, mudir.NewImportError(mudir.ErrCodeImportParseFailed, "failed to read backup file").WithCause(err)
	}
	return m.Import(data)
}

// Export copies the durable document to a timestamped backup file in dir
// and returns the backup's path. It fails when no document exists yet.
func (m *BackupManager) Export(dir string) (string, error) {
	source := m.files.Path()
	data, err := os.ReadFile(source)
	if err != nil {
		if os.IsNotExist(err) {
			return "", mudir.NewExportError(mudir.ErrCodeExportUnavailable, "no data to export")
		}
		return "", mudir.NewExportError(mudir.ErrCodeExportUnavailable, "failed to read data file").WithCause(err)
	}

	name := fmt.Sprintf("mudir_backup_%s.json", time.Now().Format("2006-01-02"))
	target := filepath.Join(dir, name)
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", mudir.NewExportError(mudir.ErrCodeExportUnavailable, "failed to write backup file").WithCause(err)
	}

	zap.S().Infow("backup exported", "path", target)
	return target, nil
}
