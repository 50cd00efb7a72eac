package internal

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mudir-labs/mudir"
)

const backupDoc = `{
  "meta": {"appVersion": "1.0.0", "userCurrency": "$", "organizationName": "Imported Shop"},
  "collections": [
    {
      "id": "c-imported",
      "name": "Imported Products",
      "schema": [{"key": "field_name", "label": "Name", "type": "text", "required": true}],
      "data": []
    }
  ],
  "ledger": [
    {
      "organization": {"id": "o-imported", "name": "Imported Org"},
      "transactions": [
        {"id": "t1", "organizationId": "o-imported", "type": "DEBIT", "amount": 250, "date": "2026-01-02T00:00:00Z"}
      ]
    }
  ]
}`

func newBackupFixture(t *testing.T) (*BackupManager, mudir.RecordStore, *mudir.Config) {
	t.Helper()
	cfg := testConfig(t)
	store, bridge, err := OpenStore(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(bridge.Close)
	return NewBackupManager(store, bridge.Files()), store, cfg
}

func TestBackupImportReplacesAllState(t *testing.T) {
	manager, store, _ := newBackupFixture(t)

	require.True(t, store.AddCollection(testCollection()))
	store.SetOrganizationName("Old Shop")

	snapshot, err := manager.Import([]byte(backupDoc))
	require.NoError(t, err)
	require.Len(t, snapshot.Collections, 1)

	// The previous state is fully replaced, not merged.
	_, ok := store.Collection("col-1")
	assert.False(t, ok)
	got, ok := store.Collection("c-imported")
	require.True(t, ok)
	assert.Equal(t, "Imported Products", got.Name)

	entry, ok := store.LedgerEntry("o-imported")
	require.True(t, ok)
	require.Len(t, entry.Transactions, 1)
	assert.Equal(t, "250", entry.Transactions[0].Amount.String())

	meta := store.Meta()
	assert.Equal(t, "Imported Shop", meta.OrganizationName)
	assert.Equal(t, "$", meta.UserCurrency)
}

func TestBackupImportRejectsAndLeavesStateUntouched(t *testing.T) {
	tests := []struct {
		name string
		data string
		code string
	}{
		{"invalid json", "{broken", mudir.ErrCodeImportParseFailed},
		{"missing ledger", `{"meta": {"appVersion": "1", "userCurrency": "$"}, "collections": []}`, mudir.ErrCodeImportShapeInvalid},
		{"missing collections", `{"meta": {"appVersion": "1", "userCurrency": "$"}, "ledger": []}`, mudir.ErrCodeImportShapeInvalid},
		{"negative amount", `{
			"meta": {"appVersion": "1", "userCurrency": "$"},
			"collections": [],
			"ledger": [{"organization": {"id": "o1", "name": "A"}, "transactions": [
				{"id": "t1", "organizationId": "o1", "type": "CREDIT", "amount": -10, "date": "2026-01-02T00:00:00Z"}
			]}]
		}`, mudir.ErrCodeImportShapeInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager, store, _ := newBackupFixture(t)
			require.True(t, store.AddCollection(testCollection()))
			store.SetOrganizationName("Keep Me")

			_, err := manager.Import([]byte(tt.data))
			require.Error(t, err)
			assert.True(t, mudir.IsErrorCode(err, tt.code), "got %v", err)

			// Nothing was applied.
			_, ok := store.Collection("col-1")
			assert.True(t, ok)
			assert.Equal(t, "Keep Me", store.Meta().OrganizationName)
		})
	}
}

func TestBackupImportFile(t *testing.T) {
	manager, store, _ := newBackupFixture(t)

	path := filepath.Join(t.TempDir(), "backup.json")
	require.NoError(t, os.WriteFile(path, []byte(backupDoc), 0o644))

	_, err := manager.ImportFile(path)
	require.NoError(t, err)
	_, ok := store.Collection("c-imported")
	assert.True(t, ok)

	_, err = manager.ImportFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.True(t, mudir.IsErrorCode(err, mudir.ErrCodeImportParseFailed))
}

func TestBackupExportWritesTimestampedCopy(t *testing.T) {
	manager, store, cfg := newBackupFixture(t)
	require.True(t, store.AddCollection(testCollection()))

	// Make sure the document on disk reflects the mutation before copying.
	require.Eventually(t, func() bool {
		doc := readDocument(t, cfg.Storage.DataFile)
		return len(doc.Collections) == 1
	}, time.Second, 10*time.Millisecond)

	dir := t.TempDir()
	path, err := manager.Export(dir)
	require.NoError(t, err)

	expected := fmt.Sprintf("mudir_backup_%s.json", time.Now().Format("2006-01-02"))
	assert.Equal(t, expected, filepath.Base(path))

	exported := readDocument(t, path)
	require.Len(t, exported.Collections, 1)
	assert.Equal(t, "col-1", exported.Collections[0].ID)
}

func TestBackupExportWithoutDocument(t *testing.T) {
	cfg := mudir.DefaultConfig()
	cfg.Storage.DataFile = filepath.Join(t.TempDir(), "never_written.json")

	manager := NewBackupManager(NewRecordStore(nil), NewFileSnapshotStore(cfg))
	_, err := manager.Export(t.TempDir())
	require.Error(t, err)
	assert.True(t, mudir.IsErrorCode(err, mudir.ErrCodeExportUnavailable))
}
