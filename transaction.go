package cashbook

import (
	"fmt"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind classifies a transaction as money coming in or going out.
type Kind int

const (
	// Income adds to the balance.
	Income Kind = iota
	// Expense subtracts from the balance.
	Expense
)

func (k Kind) String() string {
	switch k {
	case Income:
		return "income"
	case Expense:
		return "expense"
	default:
		return "unknown"
	}
}

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "income":
		return Income, nil
	case "expense":
		return Expense, nil
	default:
		return 0, fmt.Errorf("unknown transaction kind: %q", s)
	}
}

// Transaction records one monetary movement. The Amount is always a
// magnitude; the direction is carried by Kind alone.
//
// A Transaction is value data: callers may fill fields freely before
// handing it to a Ledger, but the store replaces whole records rather
// than mutating them in place. The ID is assigned by NewTransaction and
// must not be changed afterwards.
type Transaction struct {
	ID          string
	Kind        Kind
	Amount      decimal.Decimal
	FromAccount string
	ToAccount   string
	Category    string
	Method      string
	Timestamp   time.Time
}

// NewTransaction creates a transaction with a fresh unique ID. A zero
// timestamp defaults to the creation time; a past timestamp is accepted
// as a backdated entry.
func NewTransaction(kind Kind, amount decimal.Decimal, from, to, category, method string, ts time.Time) Transaction {
	if ts.IsZero() {
		ts = time.Now()
	}
	return Transaction{
		ID:          uuid.NewString(),
		Kind:        kind,
		Amount:      amount,
		FromAccount: from,
		ToAccount:   to,
		Category:    category,
		Method:      method,
		Timestamp:   ts,
	}
}

// Equal reports whether two transactions are field-for-field equal.
func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.Kind == o.Kind &&
		t.Amount.Equal(o.Amount) &&
		t.FromAccount == o.FromAccount &&
		t.ToAccount == o.ToAccount &&
		t.Category == o.Category &&
		t.Method == o.Method &&
		t.Timestamp.Equal(o.Timestamp)
}

// Signed returns the amount with the sign implied by the kind:
// positive for income, negative for expense.
func (t Transaction) Signed() decimal.Decimal {
	if t.Kind == Expense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// Display formats the amount with an explicit sign in the given
// currency, e.g. "+ €12.50". The currency is a display label only, no
// conversion is involved.
func (t Transaction) Display(currency string) string {
	s := FormatAmount(t.Amount, currency)
	if t.Kind == Expense {
		return "- " + s
	}
	return "+ " + s
}

// FormatAmount renders a decimal amount in the given ISO currency code.
func FormatAmount(amount decimal.Decimal, currency string) string {
	// to get a never nil currency I need to call the Money constructor
	cur := *money.New(0, currency).Currency()
	units := amount.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(units.IntPart())
}
