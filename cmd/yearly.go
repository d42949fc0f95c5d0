package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/cashbook"
	"github.com/etnz/cashbook/renderer"
	"github.com/google/subcommands"
)

type yearlyCmd struct {
	year int
}

func (*yearlyCmd) Name() string     { return "yearly" }
func (*yearlyCmd) Synopsis() string { return "display a calendar year report with monthly detail" }
func (*yearlyCmd) Usage() string {
	return `cbk yearly [-y <year>]

  Displays the yearly statistics report: year-wide totals plus one line
  per month. The year defaults to the current one.

`
}

func (c *yearlyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "y", time.Now().Year(), "Year.")
}

func (c *yearlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	stats := cashbook.NewYearlyStats(c.year, ledger.Transactions())
	printMarkdown(renderer.Yearly(c.year, stats, *currency))
	return subcommands.ExitSuccess
}
