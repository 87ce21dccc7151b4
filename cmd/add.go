package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	ledger "github.com/bernardomacieledu/minhas-financas"
	"github.com/google/subcommands"
)

// --- add-asset ---

type addAssetCmd struct {
	name     string
	category string
	value    string
}

func (*addAssetCmd) Name() string     { return "add-asset" }
func (*addAssetCmd) Synopsis() string { return "records money held in the current month" }
func (*addAssetCmd) Usage() string {
	return `mf add-asset -name <name> -value <amount> [-category <category>]

  Records an asset in the active month.

Usage Example:
$ mf add-asset -name "Conta corrente" -value 1500.50

`
}

func (c *addAssetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the asset")
	f.StringVar(&c.category, "category", "", "Free-form category")
	f.StringVar(&c.value, "value", "", "Amount held")
}

func (c *addAssetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	a := store.AddAsset(ledger.Asset{
		Name:     c.name,
		Category: c.category,
		Value:    ledger.ParseAmount(c.value),
	})
	fmt.Printf("Added asset %q (%s) in %s\n", a.Name, a.Value, a.Month)
	return subcommands.ExitSuccess
}

// --- add-card ---

type addCardCmd struct {
	name    string
	invoice string
}

func (*addCardCmd) Name() string     { return "add-card" }
func (*addCardCmd) Synopsis() string { return "registers a credit card" }
func (*addCardCmd) Usage() string {
	return `mf add-card -name <name> [-invoice <amount>]

  Registers a credit card. The invoice amount is the manually tracked base
  invoice, kept apart from statement-derived totals.

`
}

func (c *addCardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the card")
	f.StringVar(&c.invoice, "invoice", "", "Manually tracked base invoice amount")
}

func (c *addCardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	card := store.AddCard(ledger.Card{
		Name:           c.name,
		CurrentInvoice: ledger.ParseAmount(c.invoice),
	})
	fmt.Printf("Added card %q (id %s)\n", card.Name, card.ID)
	return subcommands.ExitSuccess
}

// --- add-fixed ---

type addFixedCmd struct {
	name  string
	value string
}

func (*addFixedCmd) Name() string     { return "add-fixed" }
func (*addFixedCmd) Synopsis() string { return "records a recurring monthly expense" }
func (*addFixedCmd) Usage() string {
	return `mf add-fixed -name <name> -value <amount>

  Records a fixed expense in the active month.

`
}

func (c *addFixedCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the expense")
	f.StringVar(&c.value, "value", "", "Monthly amount")
}

func (c *addFixedCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fe := store.AddFixedExpense(ledger.FixedExpense{
		Name:  c.name,
		Value: ledger.ParseAmount(c.value),
	})
	fmt.Printf("Added fixed expense %q (%s) in %s\n", fe.Name, fe.Value, fe.Month)
	return subcommands.ExitSuccess
}

// --- add-receivable ---

type addReceivableCmd struct {
	name  string
	value string
}

func (*addReceivableCmd) Name() string     { return "add-receivable" }
func (*addReceivableCmd) Synopsis() string { return "records money owed to you" }
func (*addReceivableCmd) Usage() string {
	return `mf add-receivable -name <name> -value <amount>

  Records a receivable in the active month.

`
}

func (c *addReceivableCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Who owes or what for")
	f.StringVar(&c.value, "value", "", "Amount owed")
}

func (c *addReceivableCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	r := store.AddReceivable(ledger.Receivable{
		Name:  c.name,
		Value: ledger.ParseAmount(c.value),
	})
	fmt.Printf("Added receivable %q (%s) in %s\n", r.Name, r.Value, r.Month)
	return subcommands.ExitSuccess
}

// --- add-tx ---

type addTxCmd struct {
	desc   string
	value  string
	txType string
	card   string
	date   string
	owner  string
}

func (*addTxCmd) Name() string     { return "add-tx" }
func (*addTxCmd) Synopsis() string { return "records a spending transaction" }
func (*addTxCmd) Usage() string {
	return `mf add-tx -desc <description> -value <amount> [-type credit|debit] [-card <card-id>] [-date <YYYY-MM-DD>] [-owner <name>]

  Records a transaction. Credit transactions belong to a card; any other
  type is direct spending. A missing date defaults to the first day of the
  active month, a missing owner to yourself.

Usage Example:
$ mf add-tx -desc "iFood" -value 54.90 -type credit -card 3f2a... -owner "Ana"

`
}

func (c *addTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.desc, "desc", "", "Description of the spending")
	f.StringVar(&c.value, "value", "", "Amount spent")
	f.StringVar(&c.txType, "type", "debit", "Transaction type, credit binds it to a card")
	f.StringVar(&c.card, "card", "", "Card id for credit transactions")
	f.StringVar(&c.date, "date", "", "Date of the transaction (YYYY-MM-DD)")
	f.StringVar(&c.owner, "owner", "", "Who spent it, defaults to you")
}

func (c *addTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	tx := ledger.Transaction{
		Desc:   c.desc,
		Value:  ledger.ParseAmount(c.value),
		Type:   c.txType,
		CardID: c.card,
		Owner:  c.owner,
	}
	if c.date != "" {
		d, err := ledger.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		tx.Date = d
	}
	tx = store.AddTransaction(tx)
	fmt.Printf("Added transaction %q (%s) on %s\n", tx.Desc, tx.Value, tx.Date)
	return subcommands.ExitSuccess
}
