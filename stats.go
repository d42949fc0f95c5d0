package cashbook

import (
	"time"

	"github.com/etnz/cashbook/date"
	"github.com/shopspring/decimal"
)

// This file holds the statistics engine: pure functions over a supplied
// transaction snapshot. None of them touches a Ledger; callers pass the
// snapshot they want aggregated (usually Ledger.Transactions). An empty
// snapshot yields zero totals and empty maps, never an error.

// MonthlyStats aggregates income and expense over one calendar month.
type MonthlyStats struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	NetAmount    decimal.Decimal // TotalIncome - TotalExpense
}

// YearlyStats aggregates a full calendar year, with a per-month detail
// for each of the 12 months.
type YearlyStats struct {
	Months       map[time.Month]MonthlyStats
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	NetAmount    decimal.Decimal
}

// TotalAmount sums all amounts regardless of kind.
func TotalAmount(txs []Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		total = total.Add(tx.Amount)
	}
	return total
}

func inMonth(tx Transaction, month time.Month, year int) bool {
	return tx.Timestamp.Month() == month && tx.Timestamp.Year() == year
}

func inYear(tx Transaction, year int) bool {
	return tx.Timestamp.Year() == year
}

// NewMonthlyStats computes the stats of the given calendar month.
func NewMonthlyStats(month time.Month, year int, txs []Transaction) MonthlyStats {
	var stats MonthlyStats
	stats.TotalIncome = decimal.Zero
	stats.TotalExpense = decimal.Zero
	for _, tx := range txs {
		if !inMonth(tx, month, year) {
			continue
		}
		if tx.Kind == Income {
			stats.TotalIncome = stats.TotalIncome.Add(tx.Amount)
		} else {
			stats.TotalExpense = stats.TotalExpense.Add(tx.Amount)
		}
	}
	stats.NetAmount = stats.TotalIncome.Sub(stats.TotalExpense)
	return stats
}

// NewYearlyStats computes the stats of the given calendar year: one
// MonthlyStats per month, plus year-wide totals computed in a second,
// independent pass over the snapshot. Both computations agree since
// every transaction of the year belongs to exactly one month; the
// equivalence is covered by tests.
func NewYearlyStats(year int, txs []Transaction) YearlyStats {
	stats := YearlyStats{
		Months:       make(map[time.Month]MonthlyStats, 12),
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}
	for month := time.January; month <= time.December; month++ {
		stats.Months[month] = NewMonthlyStats(month, year, txs)
	}
	for _, tx := range txs {
		if !inYear(tx, year) {
			continue
		}
		if tx.Kind == Income {
			stats.TotalIncome = stats.TotalIncome.Add(tx.Amount)
		} else {
			stats.TotalExpense = stats.TotalExpense.Add(tx.Amount)
		}
	}
	stats.NetAmount = stats.TotalIncome.Sub(stats.TotalExpense)
	return stats
}

// CategoryBreakdown maps each category to the sum of its amounts,
// regardless of kind. Transactions sharing a category are summed,
// never overwritten.
func CategoryBreakdown(txs []Transaction) map[string]decimal.Decimal {
	breakdown := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		breakdown[tx.Category] = breakdown[tx.Category].Add(tx.Amount)
	}
	return breakdown
}

func kindBreakdown(kind Kind, txs []Transaction) map[string]decimal.Decimal {
	breakdown := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		if tx.Kind != kind {
			continue
		}
		breakdown[tx.Category] = breakdown[tx.Category].Add(tx.Amount)
	}
	return breakdown
}

// ExpenseByCategory maps each category to the sum of its expense amounts.
func ExpenseByCategory(txs []Transaction) map[string]decimal.Decimal {
	return kindBreakdown(Expense, txs)
}

// IncomeByCategory maps each category to the sum of its income amounts.
func IncomeByCategory(txs []Transaction) map[string]decimal.Decimal {
	return kindBreakdown(Income, txs)
}

// DailyTrend maps each calendar day in [start, end] that saw activity
// to the signed net of that single day (income adds, expense
// subtracts). Days without transactions have no key; the values are
// per-day nets, not a cumulative sum.
func DailyTrend(start, end time.Time, txs []Transaction) map[date.Date]decimal.Decimal {
	trend := make(map[date.Date]decimal.Decimal)
	for _, tx := range txs {
		if tx.Timestamp.Before(start) || tx.Timestamp.After(end) {
			continue
		}
		day := date.FromTime(tx.Timestamp)
		trend[day] = trend[day].Add(tx.Signed())
	}
	return trend
}
