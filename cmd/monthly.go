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

type monthlyCmd struct {
	month int
	year  int
}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display income, expense and net for a calendar month" }
func (*monthlyCmd) Usage() string {
	return `cbk monthly [-m <month>] [-y <year>]

  Displays the monthly statistics report. Month and year default to the
  current ones.

`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {
	now := time.Now()
	f.IntVar(&c.month, "m", int(now.Month()), "Month number (1-12).")
	f.IntVar(&c.year, "y", now.Year(), "Year.")
}

func (c *monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.month < 1 || c.month > 12 {
		fmt.Fprintf(os.Stderr, "Error: invalid month %d, want 1-12\n", c.month)
		return subcommands.ExitUsageError
	}

	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	month := time.Month(c.month)
	stats := cashbook.NewMonthlyStats(month, c.year, ledger.Transactions())
	printMarkdown(renderer.Monthly(month, c.year, stats, *currency))
	return subcommands.ExitSuccess
}
