// Package cmd implements the CLI application to manage a cashbook.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/cashbook"
	"github.com/etnz/cashbook/date"
	"github.com/google/subcommands"
)

// Environment variables overriding the flag defaults.
const (
	EnvLedgerFile = "CBK_LEDGER_FILE"
	EnvCurrency   = "CBK_CURRENCY"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", envOr(EnvLedgerFile, "cashbook.json"), "Path to the ledger file (JSON array of transactions)")
var currency = flag.String("currency", envOr(EnvCurrency, "EUR"), "Currency code used to display amounts")

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "ledger")
	c.Register(&deleteCmd{}, "ledger")
	c.Register(&listCmd{}, "ledger")
	c.Register(&clearCmd{}, "ledger")
	c.Register(&fmtCmd{}, "ledger")
	c.Register(&importCmd{}, "ledger")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&monthlyCmd{}, "reports")
	c.Register(&yearlyCmd{}, "reports")
	c.Register(&breakdownCmd{}, "reports")
	c.Register(&trendCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// Names lists all subcommand names, for shell completion.
func Names() []string {
	return []string{
		"add", "delete", "list", "clear", "fmt", "import",
		"summary", "monthly", "yearly", "breakdown", "trend",
		"topic",
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// openLedger loads the ledger file, starting empty if it does not exist yet.
func openLedger() (*cashbook.Ledger, error) {
	l := cashbook.NewLedger()
	err := cashbook.LoadLedger(*ledgerFile, l)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, ledger file does not exist, starting with an empty ledger")
		return l, nil
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

func saveLedger(l *cashbook.Ledger) error {
	return cashbook.SaveLedger(*ledgerFile, l)
}

// printMarkdown renders markdown for the terminal, falling back to the
// raw text when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// parseWhen parses a CLI timestamp: a plain date or a full RFC3339 date-time.
func parseWhen(s string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	d, err := date.Parse(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date-time %q, want %q or RFC3339: %w", s, date.DateFormat, err)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.Local), nil
}

// dayStart and dayEnd turn a plain date into range boundaries so that a
// -from/-to pair covers its days fully.
func dayStart(d date.Date) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.Local)
}

func dayEnd(d date.Date) time.Time {
	return dayStart(d.Add(1)).Add(-time.Nanosecond)
}
