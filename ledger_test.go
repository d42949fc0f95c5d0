package cashbook

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func at(s string) time.Time {
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return ts
}

func newTestLedger(txs ...Transaction) *Ledger {
	l := NewLedger()
	for _, tx := range txs {
		l.Add(tx)
	}
	return l
}

func TestLedger_AddGet(t *testing.T) {
	tx := NewTransaction(Income, dec("100"), "salary", "checking", "工资", "transfer", at("2024-03-05T10:00:00Z"))
	l := newTestLedger(tx)

	got, ok := l.Get(tx.ID)
	if !ok {
		t.Fatalf("Get(%q) not found after Add", tx.ID)
	}
	if !got.Equal(tx) {
		t.Errorf("Get(%q) = %+v, want %+v", tx.ID, got, tx)
	}

	if _, ok := l.Get("no-such-id"); ok {
		t.Errorf("Get of unknown id reported found")
	}
}

func TestLedger_Add_replacesOnDuplicateID(t *testing.T) {
	tx1 := NewTransaction(Expense, dec("40"), "checking", "store", "食品", "card", at("2024-03-10T09:00:00Z"))
	tx2 := NewTransaction(Expense, dec("50"), "checking", "store", "食品", "card", at("2024-03-11T09:00:00Z"))
	l := newTestLedger(tx1, tx2)

	update := tx1
	update.Amount = dec("45")
	l.Add(update)

	if l.Count() != 2 {
		t.Fatalf("Count() = %d after duplicate-id Add, want 2", l.Count())
	}
	got, _ := l.Get(tx1.ID)
	if !got.Amount.Equal(dec("45")) {
		t.Errorf("replaced amount = %s, want 45", got.Amount)
	}
	// The replaced record keeps its original position.
	if all := l.Transactions(); all[0].ID != tx1.ID {
		t.Errorf("replaced record moved to position of %q", all[0].ID)
	}
}

func TestLedger_Delete(t *testing.T) {
	tx := NewTransaction(Expense, dec("40"), "", "", "食品", "cash", at("2024-03-10T09:00:00Z"))
	l := newTestLedger(tx)

	if !l.Delete(tx.ID) {
		t.Fatalf("Delete(%q) = false, want true", tx.ID)
	}
	if l.Count() != 0 {
		t.Errorf("Count() = %d after delete, want 0", l.Count())
	}
	if _, ok := l.Get(tx.ID); ok {
		t.Errorf("Get(%q) found a deleted transaction", tx.ID)
	}
	if l.Delete(tx.ID) {
		t.Errorf("second Delete(%q) = true, want false", tx.ID)
	}
}

func TestLedger_Balance_invariant(t *testing.T) {
	l := NewLedger()
	// The invariant balance == sum(income) - sum(expense) must hold
	// after every mutation.
	check := func(want string) {
		t.Helper()
		if !l.Balance().Equal(dec(want)) {
			t.Errorf("Balance() = %s, want %s", l.Balance(), want)
		}
	}

	check("0")
	in := NewTransaction(Income, dec("100.50"), "", "", "", "", at("2024-01-01T00:00:00Z"))
	l.Add(in)
	check("100.50")
	out := NewTransaction(Expense, dec("40.25"), "", "", "", "", at("2024-01-02T00:00:00Z"))
	l.Add(out)
	check("60.25")
	l.Delete(in.ID)
	check("-40.25")
	l.Clear()
	check("0")
}

func TestLedger_TotalAmount_ignoresKind(t *testing.T) {
	l := newTestLedger(
		NewTransaction(Income, dec("100"), "", "", "", "", at("2024-01-01T00:00:00Z")),
		NewTransaction(Expense, dec("40"), "", "", "", "", at("2024-01-02T00:00:00Z")),
	)
	if !l.TotalAmount().Equal(dec("140")) {
		t.Errorf("TotalAmount() = %s, want 140", l.TotalAmount())
	}
}

func TestLedger_FilterByDateRange(t *testing.T) {
	start := at("2024-03-01T00:00:00Z")
	end := at("2024-03-31T23:59:59Z")
	onStart := NewTransaction(Expense, dec("1"), "", "", "", "", start)
	inside := NewTransaction(Expense, dec("2"), "", "", "", "", at("2024-03-15T12:00:00Z"))
	onEnd := NewTransaction(Expense, dec("3"), "", "", "", "", end)
	before := NewTransaction(Expense, dec("4"), "", "", "", "", at("2024-02-29T23:59:59Z"))
	after := NewTransaction(Expense, dec("5"), "", "", "", "", at("2024-04-01T00:00:00Z"))
	l := newTestLedger(onStart, inside, onEnd, before, after)

	got := l.FilterByDateRange(start, end)
	if len(got) != 3 {
		t.Fatalf("FilterByDateRange returned %d transactions, want 3", len(got))
	}
	// Boundaries are inclusive and original order is preserved.
	for i, want := range []Transaction{onStart, inside, onEnd} {
		if got[i].ID != want.ID {
			t.Errorf("result[%d] = %q, want %q", i, got[i].ID, want.ID)
		}
	}

	// Filtering is idempotent: the result is stable under re-filtering.
	sub := newTestLedger(got...)
	if again := sub.FilterByDateRange(start, end); len(again) != len(got) {
		t.Errorf("re-filter returned %d transactions, want %d", len(again), len(got))
	}
}

func TestLedger_FilterByAmountRange(t *testing.T) {
	l := newTestLedger(
		NewTransaction(Expense, dec("9.99"), "", "", "", "", at("2024-01-01T00:00:00Z")),
		NewTransaction(Expense, dec("10"), "", "", "", "", at("2024-01-01T00:00:00Z")),
		NewTransaction(Expense, dec("15"), "", "", "", "", at("2024-01-01T00:00:00Z")),
		NewTransaction(Expense, dec("20"), "", "", "", "", at("2024-01-01T00:00:00Z")),
		NewTransaction(Expense, dec("20.01"), "", "", "", "", at("2024-01-01T00:00:00Z")),
	)
	got := l.FilterByAmountRange(dec("10"), dec("20"))
	if len(got) != 3 {
		t.Fatalf("FilterByAmountRange returned %d transactions, want 3", len(got))
	}
}

func TestLedger_FilterByCategory(t *testing.T) {
	l := newTestLedger(
		NewTransaction(Expense, dec("50"), "", "", "食品", "", at("2024-01-01T00:00:00Z")),
		NewTransaction(Expense, dec("20"), "", "", "交通", "", at("2024-01-01T00:00:00Z")),
		NewTransaction(Expense, dec("30"), "", "", "食品", "", at("2024-01-01T00:00:00Z")),
		// case sensitive, no match for different casing
		NewTransaction(Expense, dec("1"), "", "", "Food", "", at("2024-01-01T00:00:00Z")),
	)
	got := l.FilterByCategory("食品")
	if len(got) != 2 {
		t.Fatalf("FilterByCategory returned %d transactions, want 2", len(got))
	}
	if got := l.FilterByCategory("food"); len(got) != 0 {
		t.Errorf("FilterByCategory(%q) returned %d transactions, want 0", "food", len(got))
	}
}

func TestLedger_snapshotIsIndependent(t *testing.T) {
	tx := NewTransaction(Expense, dec("40"), "", "", "食品", "", at("2024-01-01T00:00:00Z"))
	l := newTestLedger(tx)

	snapshot := l.Transactions()
	l.Clear()
	if len(snapshot) != 1 || !snapshot[0].Equal(tx) {
		t.Errorf("snapshot changed after Clear: %+v", snapshot)
	}
}

func TestLedger_notifications(t *testing.T) {
	l := NewLedger()
	var events []string
	l.OnChange(func() { events = append(events, "changed") })
	l.OnAdded(func(tx Transaction) { events = append(events, "added:"+tx.ID) })
	l.OnDeleted(func(id string) { events = append(events, "deleted:"+id) })

	tx := NewTransaction(Income, dec("1"), "", "", "", "", at("2024-01-01T00:00:00Z"))
	l.Add(tx)
	l.Delete(tx.ID)
	l.Delete(tx.ID) // no-op, must stay silent
	l.Clear()       // fires even on an already empty ledger

	want := []string{"changed", "added:" + tx.ID, "changed", "deleted:" + tx.ID, "changed"}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("events[%d] = %q, want %q", i, events[i], want[i])
		}
	}
}

func TestLedger_changeObserverSeesPostMutationState(t *testing.T) {
	l := NewLedger()
	var counts []int
	l.OnChange(func() { counts = append(counts, l.Count()) })

	tx := NewTransaction(Income, dec("1"), "", "", "", "", at("2024-01-01T00:00:00Z"))
	l.Add(tx)
	l.Delete(tx.ID)

	if len(counts) != 2 || counts[0] != 1 || counts[1] != 0 {
		t.Errorf("observed counts = %v, want [1 0]", counts)
	}
}
