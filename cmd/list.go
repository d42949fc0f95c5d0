package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/etnz/cashbook"
	"github.com/etnz/cashbook/date"
	"github.com/etnz/cashbook/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type listCmd struct {
	from     string
	to       string
	min      string
	max      string
	category string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list transactions, most recent first" }
func (*listCmd) Usage() string {
	return `cbk list [-from <date>] [-to <date>] [-min <amount>] [-max <amount>] [-category <name>]

  Lists transactions sorted by timestamp descending. Date, amount and
  category filters combine; range boundaries are inclusive.

`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Keep transactions on or after this date.")
	f.StringVar(&c.to, "to", "", "Keep transactions on or before this date.")
	f.StringVar(&c.min, "min", "", "Keep transactions with amount >= min.")
	f.StringVar(&c.max, "max", "", "Keep transactions with amount <= max.")
	f.StringVar(&c.category, "category", "", "Keep transactions with this exact category.")
}

func (c *listCmd) filters() ([]func(cashbook.Transaction) bool, error) {
	var filters []func(cashbook.Transaction) bool

	if c.from != "" || c.to != "" {
		start, end := dayStart(date.New(1, 1, 1)), dayEnd(date.New(9999, 12, 31))
		if c.from != "" {
			d, err := date.Parse(c.from)
			if err != nil {
				return nil, err
			}
			start = dayStart(d)
		}
		if c.to != "" {
			d, err := date.Parse(c.to)
			if err != nil {
				return nil, err
			}
			end = dayEnd(d)
		}
		filters = append(filters, cashbook.ByDateRange(start, end))
	}

	if c.min != "" || c.max != "" {
		min, max := decimal.Zero, decimal.New(1, 18)
		if c.min != "" {
			d, err := decimal.NewFromString(c.min)
			if err != nil {
				return nil, fmt.Errorf("invalid -min %q: %w", c.min, err)
			}
			min = d
		}
		if c.max != "" {
			d, err := decimal.NewFromString(c.max)
			if err != nil {
				return nil, fmt.Errorf("invalid -max %q: %w", c.max, err)
			}
			max = d
		}
		filters = append(filters, cashbook.ByAmountRange(min, max))
	}

	if c.category != "" {
		filters = append(filters, cashbook.ByCategory(c.category))
	}
	return filters, nil
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filters, err := c.filters()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var txs []cashbook.Transaction
	for _, tx := range ledger.Select(filters...) {
		txs = append(txs, tx)
	}

	// The store guarantees insertion order only; recency ordering is a
	// presentation concern, applied here.
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Timestamp.After(txs[j].Timestamp)
	})

	printMarkdown(renderer.Transactions(txs, *currency))
	return subcommands.ExitSuccess
}
