package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cashbook"
	"github.com/etnz/cashbook/renderer"
	"github.com/google/subcommands"
)

type breakdownCmd struct {
	kind string
}

func (*breakdownCmd) Name() string     { return "breakdown" }
func (*breakdownCmd) Synopsis() string { return "display summed amounts grouped by category" }
func (*breakdownCmd) Usage() string {
	return `cbk breakdown [-kind income|expense]

  Displays the amount summed per category. Without -kind, income and
  expense amounts are summed together; with it, only that kind counts.

`
}

func (c *breakdownCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "kind", "", "Restrict to one kind: income or expense.")
}

func (c *breakdownCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	txs := ledger.Transactions()

	switch c.kind {
	case "":
		printMarkdown(renderer.Breakdown("Category Breakdown", cashbook.CategoryBreakdown(txs), *currency))
	case "income":
		printMarkdown(renderer.Breakdown("Income by Category", cashbook.IncomeByCategory(txs), *currency))
	case "expense":
		printMarkdown(renderer.Breakdown("Expense by Category", cashbook.ExpenseByCategory(txs), *currency))
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown kind %q, want income or expense\n", c.kind)
		return subcommands.ExitUsageError
	}
	return subcommands.ExitSuccess
}
