package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cashbook/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display ledger-wide counters" }
func (*summaryCmd) Usage() string {
	return `cbk summary

  Displays the transaction count, the raw amount total (income and
  expense both counted positive) and the balance (income minus
  expense).

`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Summary(ledger.Count(), ledger.TotalAmount(), ledger.Balance(), *currency))
	return subcommands.ExitSuccess
}
