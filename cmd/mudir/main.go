package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/mudir-labs/mudir"
	"github.com/mudir-labs/mudir/internal"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Errorf("failed to set up logger: %w", err))
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)
	sugar := logger.Sugar()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "seed":
		if err := runSeed(os.Args[2:]); err != nil {
			sugar.Fatalf("seed: %v", err)
		}
	case "clear":
		if err := runClear(os.Args[2:]); err != nil {
			sugar.Fatalf("clear: %v", err)
		}
	case "export":
		if err := runExport(os.Args[2:]); err != nil {
			sugar.Fatalf("export: %v", err)
		}
	case "import":
		if err := runImport(os.Args[2:]); err != nil {
			sugar.Fatalf("import: %v", err)
		}
	case "statement":
		if err := runStatement(os.Args[2:]); err != nil {
			sugar.Fatalf("statement: %v", err)
		}
	case "search":
		if err := runSearch(os.Args[2:]); err != nil {
			sugar.Fatalf("search: %v", err)
		}
	default:
		sugar.Errorf("unknown command %q", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	logger := zap.S()
	logger.Info("Usage: mudir <command> [options]")
	logger.Info("")
	logger.Info("Commands:")
	logger.Info("  seed        Fill the data file with demo collections and ledger entries")
	logger.Info("  clear       Reset the data file to an empty document")
	logger.Info("  export      Copy the data file to a timestamped backup")
	logger.Info("  import      Replace all data from a backup file")
	logger.Info("  statement   Write an account statement workbook for one ledger party")
	logger.Info("  search      Search items of a collection")
}

func openStore(configPath string) (mudir.RecordStore, *internal.PersistenceBridge, *mudir.Config, error) {
	cfg, err := mudir.LoadConfig(configPath)
	if err != nil {
		return nil, nil, nil, err
	}
	store, bridge, err := internal.OpenStore(context.Background(), cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	return store, bridge, cfg, nil
}
