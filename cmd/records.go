package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	ledger "github.com/bernardomacieledu/minhas-financas"
	"github.com/google/subcommands"
)

// --- delete ---

type deleteCmd struct{}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "deletes a record by id" }
func (*deleteCmd) Usage() string {
	return `mf delete <kind> <id>

  Deletes one record from the named collection. Kind is one of asset, card,
  fixed, receivable, transaction. Deleting an unknown id does nothing.

`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: delete takes a kind and an id.")
		return subcommands.ExitUsageError
	}
	kind, err := ledger.ParseKind(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	store.Delete(kind, f.Arg(1))
	fmt.Printf("Deleted %s %s\n", kind, f.Arg(1))
	return subcommands.ExitSuccess
}

// --- paid ---

type paidCmd struct{}

func (*paidCmd) Name() string     { return "paid" }
func (*paidCmd) Synopsis() string { return "toggles the paid mark of a transaction" }
func (*paidCmd) Usage() string {
	return `mf paid <transaction-id>

  Flips the isPaid flag of the transaction.

`
}

func (c *paidCmd) SetFlags(f *flag.FlagSet) {}

func (c *paidCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: paid takes a transaction id.")
		return subcommands.ExitUsageError
	}
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if !store.TogglePaid(f.Arg(0)) {
		fmt.Fprintf(os.Stderr, "No transaction with id %s\n", f.Arg(0))
		return subcommands.ExitFailure
	}
	fmt.Printf("Toggled paid on %s\n", f.Arg(0))
	return subcommands.ExitSuccess
}
