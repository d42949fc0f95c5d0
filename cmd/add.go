package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/cashbook"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type addCmd struct {
	kind     string
	amount   string
	from     string
	to       string
	category string
	method   string
	date     string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record an income or expense transaction" }
func (*addCmd) Usage() string {
	return `cbk add -amount <amount> [-kind income|expense] [-from <account>] [-to <account>] [-category <name>] [-method <channel>] [-date <date>]

  Records a transaction in the ledger. The amount is a magnitude; the
  direction comes from -kind. The date defaults to now and may be in
  the past to backdate an entry.

Usage Examples:
# Record a 40 expense paid by card.
$ cbk add -amount 40 -category groceries -method card

# Record a backdated salary.
$ cbk add -kind income -amount 1200 -category salary -date 2024-03-05

`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "kind", "expense", "Transaction kind: income or expense.")
	f.StringVar(&c.amount, "amount", "", "Transaction amount, a non-negative number.")
	f.StringVar(&c.from, "from", "", "Source account label.")
	f.StringVar(&c.to, "to", "", "Destination account label.")
	f.StringVar(&c.category, "category", "", "Category used as grouping key in reports.")
	f.StringVar(&c.method, "method", "", "Payment channel label.")
	f.StringVar(&c.date, "date", "", "Transaction date or date-time (defaults to now).")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := cashbook.ParseKind(c.kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.amount == "" {
		fmt.Fprintln(os.Stderr, "Error: -amount is required")
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid amount %q: %v\n", c.amount, err)
		return subcommands.ExitUsageError
	}
	if amount.IsNegative() {
		fmt.Fprintln(os.Stderr, "Error: the amount is a magnitude, use -kind to set the direction")
		return subcommands.ExitUsageError
	}

	var ts time.Time
	if c.date != "" {
		ts, err = parseWhen(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	tx := cashbook.NewTransaction(kind, amount, c.from, c.to, c.category, c.method, ts)
	ledger.Add(tx)

	if err := saveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded %s %s as %s\n", tx.Kind, tx.Display(*currency), tx.ID)
	return subcommands.ExitSuccess
}
