package main

import (
	"flag"
	"fmt"

	"go.uber.org/zap"

	"github.com/mudir-labs/mudir/internal"
)

func runSeed(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)
	configPath := fs.String("config", "", "path to config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, bridge, cfg, err := openStore(*configPath)
	if err != nil {
		return err
	}
	defer bridge.Close()

	seed := internal.SeedSnapshot(cfg)
	store.ReplaceAll(seed.Collections, seed.Ledger)
	store.SetMeta(seed.Meta)
	bridge.Flush()

	zap.S().Infow("seeded demo data",
		"collections", len(seed.Collections),
		"ledgerEntries", len(seed.Ledger))
	return nil
}

func runClear(args []string) error {
	fs := flag.NewFlagSet("clear", flag.ExitOnError)
	configPath := fs.String("config", "", "path to config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, bridge, cfg, err := openStore(*configPath)
	if err != nil {
		return err
	}
	defer bridge.Close()

	empty := internal.ClearSnapshot(cfg)
	store.ReplaceAll(empty.Collections, empty.Ledger)
	store.SetMeta(empty.Meta)
	bridge.Flush()

	zap.S().Info("data file cleared")
	return nil
}

func runExport(args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	configPath := fs.String("config", "", "path to config file")
	dir := fs.String("dir", "", "target directory (defaults to storage.export_dir)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, bridge, cfg, err := openStore(*configPath)
	if err != nil {
		return err
	}
	defer bridge.Close()

	target := *dir
	if target == "" {
		target = cfg.Storage.ExportDir
	}

	path, err := internal.NewBackupManager(store, bridge.Files()).Export(target)
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}

func runImport(args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	configPath := fs.String("config", "", "path to config file")
	file := fs.String("file", "", "backup file to import")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return fmt.Errorf("-file is required")
	}

	store, bridge, _, err := openStore(*configPath)
	if err != nil {
		return err
	}
	defer bridge.Close()

	snapshot, err := internal.NewBackupManager(store, bridge.Files()).ImportFile(*file)
	if err != nil {
		return err
	}
	bridge.Flush()

	zap.S().Infow("import complete",
		"collections", len(snapshot.Collections),
		"ledgerEntries", len(snapshot.Ledger))
	return nil
}

func runStatement(args []string) error {
	fs := flag.NewFlagSet("statement", flag.ExitOnError)
	configPath := fs.String("config", "", "path to config file")
	orgID := fs.String("org", "", "organization id")
	out := fs.String("out", "statement.xlsx", "output workbook path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *orgID == "" {
		return fmt.Errorf("-org is required")
	}

	store, bridge, _, err := openStore(*configPath)
	if err != nil {
		return err
	}
	defer bridge.Close()

	entry, ok := store.LedgerEntry(*orgID)
	if !ok {
		return fmt.Errorf("organization %q not found", *orgID)
	}

	meta := store.Meta()
	return internal.WriteStatement(entry, meta.UserCurrency, meta.OrganizationName, *out)
}

func runSearch(args []string) error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	configPath := fs.String("config", "", "path to config file")
	collectionID := fs.String("collection", "", "collection id")
	query := fs.String("query", "", "search query")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *collectionID == "" {
		return fmt.Errorf("-collection is required")
	}

	store, bridge, _, err := openStore(*configPath)
	if err != nil {
		return err
	}
	defer bridge.Close()

	collection, ok := store.Collection(*collectionID)
	if !ok {
		return fmt.Errorf("collection %q not found", *collectionID)
	}

	items := store.SearchItems(*collectionID, *query)
	for _, item := range items {
		label := "Untitled"
		if len(collection.Schema) > 0 {
			if v, ok := item.Values[collection.Schema[0].Key]; ok && v != nil {
				label = fmt.Sprintf("%v", v)
			}
		}
		fmt.Printf("%s\t%s\n", item.ID, label)
	}
	zap.S().Infow("search finished", "matches", len(items), "query", *query)
	return nil
}
