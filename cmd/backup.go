package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	ledger "github.com/bernardomacieledu/minhas-financas"
	"github.com/bernardomacieledu/minhas-financas/nubank"
	"github.com/google/subcommands"
)

// --- export ---

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "writes a full backup file" }
func (*exportCmd) Usage() string {
	return `mf export [-o <file>]

  Writes the whole ledger to a json backup file. The default name carries
  the current timestamp.

`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Backup file to write, default financas_backup_<timestamp>.json")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	filename := c.output
	if filename == "" {
		filename = ledger.BackupFilename(time.Now())
	}
	out, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating backup file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer out.Close()
	if err := store.ExportBackup(out); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing backup: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Backup written to %s\n", filename)
	return subcommands.ExitSuccess
}

// --- import ---

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "restores a backup file" }
func (*importCmd) Usage() string {
	return `mf import <file>

  Replaces the whole ledger with the backup's content. When the file does
  not parse, the ledger is left untouched.

`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: import takes a backup file.")
		return subcommands.ExitUsageError
	}
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	in, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening backup file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer in.Close()
	if err := store.ImportBackup(in); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Backup restaurado!")
	return subcommands.ExitSuccess
}

// --- import-nubank ---

type nubankCmd struct {
	card string
}

func (*nubankCmd) Name() string     { return "import-nubank" }
func (*nubankCmd) Synopsis() string { return "imports a Nubank statement export" }
func (*nubankCmd) Usage() string {
	return `mf import-nubank -card <card-id> <file.csv>

  Parses a Nubank credit card statement export and records one credit
  transaction per accepted line on the given card.

`
}

func (c *nubankCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.card, "card", "", "Id of the card the statement belongs to")
}

func (c *nubankCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: import-nubank takes a statement file.")
		return subcommands.ExitUsageError
	}
	if c.card == "" {
		fmt.Fprintln(os.Stderr, "Error: -card is required.")
		return subcommands.ExitUsageError
	}
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	text, err := os.ReadFile(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading statement file: %v\n", err)
		return subcommands.ExitFailure
	}
	count := store.ImportStatement(nubank.Parse(string(text), c.card))
	fmt.Printf("Imported %d transactions\n", count)
	return subcommands.ExitSuccess
}
