package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/bernardomacieledu/minhas-financas/renderer"
	"github.com/google/subcommands"
)

// --- summary ---

type summaryCmd struct {
	month string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "shows the monthly totals and final balance" }
func (*summaryCmd) Usage() string {
	return `mf summary [-month <YYYY-MM>]

  Shows assets, fixed expenses, receivables, card and direct spending for
  the month, and the resulting balance. Defaults to the current month.

`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "month", "", "Month to report on (YYYY-MM), defaults to the current one")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := selectMonth(store, c.month); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	printMarkdown(renderer.SummaryMarkdown(store.Month(), store.Totals()))
	return subcommands.ExitSuccess
}

// --- stats ---

type statsCmd struct {
	month string
}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "shows spending statistics" }
func (*statsCmd) Usage() string {
	return `mf stats [-month <YYYY-MM>]

  Shows the all-time monthly evolution plus the month's owner ranking and
  top expenses.

`
}

func (c *statsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "month", "", "Month to report on (YYYY-MM), defaults to the current one")
}

func (c *statsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := selectMonth(store, c.month); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	printMarkdown(renderer.StatisticsMarkdown(store.Month(), store.Statistics()))
	return subcommands.ExitSuccess
}

// --- transactions ---

type transactionsCmd struct {
	month string
}

func (*transactionsCmd) Name() string     { return "transactions" }
func (*transactionsCmd) Synopsis() string { return "lists the month's transactions" }
func (*transactionsCmd) Usage() string {
	return `mf transactions [-month <YYYY-MM>]

  Lists the transactions dated in the month, with their ids.

`
}

func (c *transactionsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "month", "", "Month to list (YYYY-MM), defaults to the current one")
}

func (c *transactionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := selectMonth(store, c.month); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	printMarkdown(renderer.TransactionsMarkdown(store.Month(), store.MonthlyTransactions()))
	return subcommands.ExitSuccess
}
