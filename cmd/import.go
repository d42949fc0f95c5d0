package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cashbook"
	"github.com/google/subcommands"
)

type importCmd struct {
	file    string
	mapping cashbook.ImportMapping
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import transactions from a bank-export JSON file" }
func (*importCmd) Usage() string {
	return `cbk import -file <export.json> -records <path> -amount <path> [field paths...]

  Imports transactions from a foreign JSON export. Bank formats differ,
  so each field is located with a JSONPath expression: -records selects
  the list of raw records in the document, the other paths are
  evaluated against each record.

Usage Examples:
$ cbk import -file export.json \
    -records '$.transactions[*]' \
    -amount '$.value' \
    -category '$.label.category' \
    -timestamp '$.posted'

`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "Path to the JSON export to import.")
	f.StringVar(&c.mapping.Records, "records", "", "JSONPath to the list of records.")
	f.StringVar(&c.mapping.Amount, "amount", "", "JSONPath to the amount (negative values become expenses).")
	f.StringVar(&c.mapping.Kind, "kind", "", "Optional JSONPath to an explicit income/expense field.")
	f.StringVar(&c.mapping.FromAccount, "from-account", "", "Optional JSONPath to the source account.")
	f.StringVar(&c.mapping.ToAccount, "to-account", "", "Optional JSONPath to the destination account.")
	f.StringVar(&c.mapping.Category, "category", "", "Optional JSONPath to the category.")
	f.StringVar(&c.mapping.Method, "method", "", "Optional JSONPath to the payment method.")
	f.StringVar(&c.mapping.Timestamp, "timestamp", "", "Optional JSONPath to an ISO-8601 date or date-time.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -file is required")
		return subcommands.ExitUsageError
	}

	in, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not open %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	txs, err := cashbook.ImportJSON(in, c.mapping)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, tx := range txs {
		ledger.Add(tx)
	}
	if err := saveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %d transaction(s) from %s\n", len(txs), c.file)
	return subcommands.ExitSuccess
}
