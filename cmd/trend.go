package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cashbook"
	"github.com/etnz/cashbook/date"
	"github.com/etnz/cashbook/renderer"
	"github.com/google/subcommands"
)

type trendCmd struct {
	from string
	to   string
}

func (*trendCmd) Name() string     { return "trend" }
func (*trendCmd) Synopsis() string { return "display the daily net trend over a date range" }
func (*trendCmd) Usage() string {
	return `cbk trend [-from <date>] [-to <date>]

  Displays the signed net amount per day over the range (income adds,
  expense subtracts). Only days with at least one transaction appear.
  The range defaults to the current month.

`
}

func (c *trendCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Start of the range (defaults to the first of the current month).")
	f.StringVar(&c.to, "to", "", "End of the range (defaults to the last of the current month).")
}

func (c *trendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	month := date.MonthOf(date.Today().Month(), date.Today().Year())
	from, to := month.From, month.To
	var err error
	if c.from != "" {
		if from, err = date.Parse(c.from); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if c.to != "" {
		if to, err = date.Parse(c.to); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	trend := cashbook.DailyTrend(dayStart(from), dayEnd(to), ledger.Transactions())
	printMarkdown(renderer.Trend(trend, *currency))
	return subcommands.ExitSuccess
}
