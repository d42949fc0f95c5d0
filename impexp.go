package cashbook

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// this file contains functions to import transactions from foreign
// bank-export JSON documents. Exports differ wildly between banks, so
// the caller describes where each field lives with JSONPath
// expressions instead of the package guessing a schema.

// ImportMapping describes where transaction fields live inside a
// foreign JSON export. Records is evaluated against the document root
// and must yield the list of raw records; all other paths are
// evaluated against each record. Empty optional paths leave the field
// blank.
type ImportMapping struct {
	Records     string // path to the list of records, e.g. "$.transactions[*]"
	Amount      string // required; a negative value flips the kind and keeps the magnitude
	Kind        string // optional path to "income" or "expense"; overrides the sign rule
	FromAccount string
	ToAccount   string
	Category    string
	Method      string
	Timestamp   string // ISO-8601 date-time or date; unparseable values default to the import time
}

// ImportJSON reads a JSON document from r and maps it into freshly
// created transactions according to the mapping. Every imported
// transaction gets a new ID.
func ImportJSON(r io.Reader, m ImportMapping) ([]Transaction, error) {
	if m.Records == "" || m.Amount == "" {
		return nil, fmt.Errorf("import mapping needs at least records and amount paths")
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("import payload is not valid JSON: %w", err)
	}

	jval, err := jsonpath.Get(m.Records, doc)
	if err != nil {
		return nil, fmt.Errorf("error evaluating records path %q: %w", m.Records, err)
	}
	records, ok := jval.([]any)
	if !ok {
		// A path matching a single record still yields a usable import.
		records = []any{jval}
	}

	txs := make([]Transaction, 0, len(records))
	for i, rec := range records {
		amount, err := lookupDecimal(m.Amount, rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}

		kind := Income
		if amount.IsNegative() {
			kind = Expense
			amount = amount.Neg()
		}
		if m.Kind != "" {
			k, err := ParseKind(strings.ToLower(lookupString(m.Kind, rec)))
			if err != nil {
				return nil, fmt.Errorf("record %d: %w", i, err)
			}
			kind = k
		}

		ts := parseImportTime(lookupString(m.Timestamp, rec))
		txs = append(txs, NewTransaction(kind, amount,
			lookupString(m.FromAccount, rec),
			lookupString(m.ToAccount, rec),
			lookupString(m.Category, rec),
			lookupString(m.Method, rec),
			ts))
	}
	return txs, nil
}

// unwrap keeps the first value when a path yields a list of one answer,
// because jsonpath is never clear about whether it returns a list of 1
// answer or a single answer.
func unwrap(jval any) any {
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		return jlist[0]
	}
	return jval
}

func lookupString(path string, rec any) string {
	if path == "" {
		return ""
	}
	jval, err := jsonpath.Get(path, rec)
	if err != nil {
		return ""
	}
	s, _ := unwrap(jval).(string)
	return s
}

func lookupDecimal(path string, rec any) (decimal.Decimal, error) {
	jval, err := jsonpath.Get(path, rec)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error evaluating amount path %q: %w", path, err)
	}
	switch v := unwrap(jval).(type) {
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero, fmt.Errorf("amount %q is not a number: %w", v, err)
		}
		return d, nil
	default:
		return decimal.Zero, fmt.Errorf("amount path %q yields %T, not a number", path, v)
	}
}

func parseImportTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts
	}
	if ts, err := time.Parse("2006-01-02", s); err == nil {
		return ts
	}
	return time.Time{}
}
