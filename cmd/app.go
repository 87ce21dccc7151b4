// Package cmd implements the CLI application to manage the ledger.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	ledger "github.com/bernardomacieledu/minhas-financas"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addAssetCmd{}, "records")
	c.Register(&addCardCmd{}, "records")
	c.Register(&addFixedCmd{}, "records")
	c.Register(&addReceivableCmd{}, "records")
	c.Register(&addTxCmd{}, "records")
	c.Register(&deleteCmd{}, "records")
	c.Register(&paidCmd{}, "records")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&statsCmd{}, "reports")
	c.Register(&transactionsCmd{}, "reports")

	c.Register(&exportCmd{}, "backup")
	c.Register(&importCmd{}, "backup")
	c.Register(&nubankCmd{}, "backup")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data-dir", defaultDataDir(), "Path to the folder holding the ledger data")

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".minhas-financas"
	}
	return filepath.Join(home, ".minhas-financas")
}

// OpenStore opens the ledger store from the app data folder, running the
// startup migration when needed.
func OpenStore() (*ledger.Store, error) {
	store, report, err := ledger.Open(ledger.NewDirStorage(*dataDir))
	if err != nil {
		return nil, err
	}
	if report.Migrated {
		fmt.Fprintf(os.Stderr, "Dados migrados da versão antiga (%s) com sucesso!\n", report.FromKey)
	}
	return store, nil
}

// selectMonth applies the -month flag, when given, as the active period.
func selectMonth(store *ledger.Store, month string) error {
	if month == "" {
		return nil
	}
	p, err := ledger.ParsePeriod(month)
	if err != nil {
		return err
	}
	store.SetMonth(p)
	return nil
}
