package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteCmd struct{}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a transaction by its ID" }
func (*deleteCmd) Usage() string {
	return `cbk delete <id>...

  Deletes the transactions with the given IDs from the ledger. Use
  "cbk list" to find IDs.

`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ids := f.Args()
	if len(ids) == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one transaction ID is required")
		return subcommands.ExitUsageError
	}

	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	status := subcommands.ExitSuccess
	deleted := 0
	for _, id := range ids {
		if !ledger.Delete(id) {
			fmt.Fprintf(os.Stderr, "Error: no transaction with ID %q\n", id)
			status = subcommands.ExitFailure
			continue
		}
		deleted++
	}

	if deleted > 0 {
		if err := saveLedger(ledger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	fmt.Printf("Deleted %d transaction(s)\n", deleted)
	return status
}
