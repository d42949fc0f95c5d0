package cashbook

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// timestampFormat is the ISO-8601 date-time layout used on the wire.
const timestampFormat = time.RFC3339

// record is the wire form of a Transaction: a flat JSON object with the
// kind as an integer (0 income, 1 expense) and the timestamp as an
// ISO-8601 string.
type record struct {
	ID          string          `json:"id"`
	Type        int             `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	FromAccount string          `json:"fromAccount"`
	ToAccount   string          `json:"toAccount"`
	Category    string          `json:"category"`
	Method      string          `json:"method"`
	Timestamp   string          `json:"timestamp"`
}

func newRecord(tx Transaction) record {
	return record{
		ID:          tx.ID,
		Type:        int(tx.Kind),
		Amount:      tx.Amount,
		FromAccount: tx.FromAccount,
		ToAccount:   tx.ToAccount,
		Category:    tx.Category,
		Method:      tx.Method,
		Timestamp:   tx.Timestamp.Format(timestampFormat),
	}
}

func (r record) transaction() Transaction {
	// A timestamp that does not parse yields the zero time rather than
	// failing the whole load.
	ts, err := time.Parse(timestampFormat, r.Timestamp)
	if err != nil {
		ts = time.Time{}
	}
	return Transaction{
		ID:          r.ID,
		Kind:        Kind(r.Type),
		Amount:      r.Amount,
		FromAccount: r.FromAccount,
		ToAccount:   r.ToAccount,
		Category:    r.Category,
		Method:      r.Method,
		Timestamp:   ts,
	}
}

// EncodeTransactions writes the transactions as a JSON array of records.
func EncodeTransactions(w io.Writer, txs []Transaction) error {
	records := make([]record, 0, len(txs))
	for _, tx := range txs {
		records = append(records, newRecord(tx))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("could not encode transactions: %w", err)
	}
	return nil
}

// EncodeLedger writes the ledger's full transaction set to w.
func EncodeLedger(w io.Writer, l *Ledger) error {
	return EncodeTransactions(w, l.transactions)
}

// DecodeTransactions parses a JSON array of transaction records.
//
// The root must be an array, anything else is an error. Individual
// elements are parsed leniently: elements that are not well-formed
// record objects are silently skipped.
func DecodeTransactions(r io.Reader) ([]Transaction, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, fmt.Errorf("ledger payload is not a JSON array: %w", err)
	}
	txs := make([]Transaction, 0, len(elements))
	for _, element := range elements {
		var rec record
		if err := json.Unmarshal(element, &rec); err != nil {
			continue
		}
		txs = append(txs, rec.transaction())
	}
	return txs, nil
}

// Load replaces the ledger's entire content with the transactions
// decoded from r and fires the change handlers exactly once. On decode
// failure the ledger is left untouched.
func (l *Ledger) Load(r io.Reader) error {
	txs, err := DecodeTransactions(r)
	if err != nil {
		return err
	}
	l.transactions = txs
	l.notifyChanged()
	return nil
}

// SaveLedger writes the ledger to the named file, failing if the file
// cannot be opened for writing.
func SaveLedger(filename string, l *Ledger) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("could not open ledger file %q for writing: %w", filename, err)
	}
	if err := EncodeLedger(f, l); err != nil {
		f.Close()
		return fmt.Errorf("could not write ledger file %q: %w", filename, err)
	}
	return f.Close()
}

// LoadLedger reads the named file into the ledger, failing if the file
// cannot be opened or is not a well-formed transaction array.
func LoadLedger(filename string, l *Ledger) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("could not open ledger file %q: %w", filename, err)
	}
	defer f.Close()
	return l.Load(f)
}
