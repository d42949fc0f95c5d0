package cashbook

import (
	"iter"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Ledger represents the authoritative list of recorded transactions.
//
// Transactions keep their insertion order; no chronological order is
// guaranteed or required. There is exactly one transaction per ID at
// any time: Add replaces an existing record in place when the incoming
// ID collides instead of letting two records share an ID.
//
// Observers registered with OnChange, OnAdded and OnDeleted are invoked
// synchronously on the call stack of the mutating operation, after the
// mutation is applied: the generic change handlers first, then the
// specific one. A handler must not call a mutating operation of the
// same ledger without accounting for the recursion.
type Ledger struct {
	transactions []Transaction

	onChange  []func()
	onAdded   []func(Transaction)
	onDeleted []func(id string)
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{transactions: make([]Transaction, 0)}
}

// OnChange registers a handler invoked after every structural mutation.
func (l *Ledger) OnChange(handler func()) { l.onChange = append(l.onChange, handler) }

// OnAdded registers a handler invoked with the new record after every Add.
func (l *Ledger) OnAdded(handler func(Transaction)) { l.onAdded = append(l.onAdded, handler) }

// OnDeleted registers a handler invoked with the removed ID after every
// successful Delete.
func (l *Ledger) OnDeleted(handler func(id string)) { l.onDeleted = append(l.onDeleted, handler) }

func (l *Ledger) notifyChanged() {
	for _, handler := range l.onChange {
		handler()
	}
}

// Add records a transaction. If a record with the same ID already
// exists it is replaced in place, keeping its position; otherwise the
// transaction is appended. Either way the change and added handlers
// fire, in that order.
func (l *Ledger) Add(tx Transaction) {
	replaced := false
	for i := range l.transactions {
		if l.transactions[i].ID == tx.ID {
			l.transactions[i] = tx
			replaced = true
			break
		}
	}
	if !replaced {
		l.transactions = append(l.transactions, tx)
	}
	l.notifyChanged()
	for _, handler := range l.onAdded {
		handler(tx)
	}
}

// Delete removes the first transaction whose ID matches and reports
// whether a removal occurred. When nothing matches, no handler fires.
func (l *Ledger) Delete(id string) bool {
	for i := range l.transactions {
		if l.transactions[i].ID == id {
			l.transactions = slices.Delete(l.transactions, i, i+1)
			l.notifyChanged()
			for _, handler := range l.onDeleted {
				handler(id)
			}
			return true
		}
	}
	return false
}

// Transactions returns an independent snapshot of the full collection,
// in insertion order. Later mutations of the ledger do not affect it.
func (l *Ledger) Transactions() []Transaction {
	return slices.Clone(l.transactions)
}

// Get returns the transaction with the given ID, and whether it exists.
func (l *Ledger) Get(id string) (Transaction, bool) {
	for _, tx := range l.transactions {
		if tx.ID == id {
			return tx, true
		}
	}
	return Transaction{}, false
}

// Select returns an iterator over the transactions accepted by all the
// given predicates, preserving insertion order.
func (l *Ledger) Select(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			accept := true
			for _, filter := range filters {
				if !filter(tx) {
					accept = false
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

func (l *Ledger) collect(filters ...func(Transaction) bool) []Transaction {
	result := make([]Transaction, 0)
	for _, tx := range l.Select(filters...) {
		result = append(result, tx)
	}
	return result
}

// ByDateRange returns a predicate accepting transactions with
// start <= timestamp <= end, both boundaries included.
func ByDateRange(start, end time.Time) func(Transaction) bool {
	return func(tx Transaction) bool {
		return !tx.Timestamp.Before(start) && !tx.Timestamp.After(end)
	}
}

// ByAmountRange returns a predicate accepting transactions with
// min <= amount <= max, both boundaries included.
func ByAmountRange(min, max decimal.Decimal) func(Transaction) bool {
	return func(tx Transaction) bool {
		return tx.Amount.GreaterThanOrEqual(min) && tx.Amount.LessThanOrEqual(max)
	}
}

// ByCategory returns a predicate accepting transactions with an exact,
// case-sensitive category match.
func ByCategory(category string) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Category == category }
}

// ByKind returns a predicate accepting transactions of the given kind.
func ByKind(kind Kind) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Kind == kind }
}

// FilterByDateRange returns the transactions whose timestamp falls in
// [start, end], preserving insertion order.
func (l *Ledger) FilterByDateRange(start, end time.Time) []Transaction {
	return l.collect(ByDateRange(start, end))
}

// FilterByAmountRange returns the transactions whose amount falls in
// [min, max], preserving insertion order.
func (l *Ledger) FilterByAmountRange(min, max decimal.Decimal) []Transaction {
	return l.collect(ByAmountRange(min, max))
}

// FilterByCategory returns the transactions with that exact category,
// preserving insertion order.
func (l *Ledger) FilterByCategory(category string) []Transaction {
	return l.collect(ByCategory(category))
}

// TotalAmount sums all amounts regardless of kind: a raw magnitude
// total, distinct from Balance.
func (l *Ledger) TotalAmount() decimal.Decimal {
	return TotalAmount(l.transactions)
}

// Balance sums amounts with income adding and expense subtracting: the
// net change across the full recorded history.
func (l *Ledger) Balance() decimal.Decimal {
	balance := decimal.Zero
	for _, tx := range l.transactions {
		balance = balance.Add(tx.Signed())
	}
	return balance
}

// Count returns the number of stored transactions.
func (l *Ledger) Count() int { return len(l.transactions) }

// Clear empties the ledger. The change handlers fire even when it was
// already empty.
func (l *Ledger) Clear() {
	l.transactions = l.transactions[:0]
	l.notifyChanged()
}
