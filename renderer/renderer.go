// Package renderer renders ledger views and statistics to markdown,
// ready to be printed raw or through a terminal markdown renderer.
package renderer

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/etnz/cashbook"
	"github.com/etnz/cashbook/date"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// Transactions renders a transaction list as a markdown table, in the
// order given by the caller.
func Transactions(txs []cashbook.Transaction, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")
	if len(txs) == 0 {
		doc.PlainText("No transactions.")
		return doc.String()
	}

	rows := make([][]string, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, []string{
			tx.ID,
			tx.Timestamp.Format("2006-01-02 15:04"),
			tx.Kind.String(),
			tx.Display(currency),
			tx.Category,
			tx.Method,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"ID", "Date", "Kind", "Amount", "Category", "Method"},
		Rows:   rows,
	})
	return doc.String()
}

// Summary renders the ledger-wide counters.
func Summary(count int, total, balance decimal.Decimal, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Cashbook Summary")
	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Transactions", fmt.Sprintf("%d", count)},
			{"Total amount", cashbook.FormatAmount(total, currency)},
			{"Balance", cashbook.FormatAmount(balance, currency)},
		},
	})
	return doc.String()
}

// Monthly renders the stats of one calendar month.
func Monthly(month time.Month, year int, s cashbook.MonthlyStats, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s %d", month, year))
	doc.Table(statsTable(s, currency))
	return doc.String()
}

// Yearly renders the stats of one calendar year with its monthly detail.
func Yearly(year int, s cashbook.YearlyStats, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Year %d", year))
	doc.Table(statsTable(cashbook.MonthlyStats{
		TotalIncome:  s.TotalIncome,
		TotalExpense: s.TotalExpense,
		NetAmount:    s.NetAmount,
	}, currency))

	doc.H2("Monthly detail")
	rows := make([][]string, 0, 12)
	for month := time.January; month <= time.December; month++ {
		m := s.Months[month]
		rows = append(rows, []string{
			month.String(),
			cashbook.FormatAmount(m.TotalIncome, currency),
			cashbook.FormatAmount(m.TotalExpense, currency),
			cashbook.FormatAmount(m.NetAmount, currency),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Month", "Income", "Expense", "Net"},
		Rows:   rows,
	})
	return doc.String()
}

// Breakdown renders a category to amount mapping, largest amount first.
func Breakdown(title string, breakdown map[string]decimal.Decimal, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	if len(breakdown) == 0 {
		doc.PlainText("No transactions.")
		return doc.String()
	}

	categories := make([]string, 0, len(breakdown))
	for category := range breakdown {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		a, b := breakdown[categories[i]], breakdown[categories[j]]
		if !a.Equal(b) {
			return a.GreaterThan(b)
		}
		return categories[i] < categories[j]
	})

	rows := make([][]string, 0, len(categories))
	for _, category := range categories {
		rows = append(rows, []string{category, cashbook.FormatAmount(breakdown[category], currency)})
	}
	doc.Table(md.TableSet{
		Header: []string{"Category", "Amount"},
		Rows:   rows,
	})
	return doc.String()
}

// Trend renders a daily net trend in chronological order.
func Trend(trend map[date.Date]decimal.Decimal, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Daily Trend")
	if len(trend) == 0 {
		doc.PlainText("No transactions.")
		return doc.String()
	}

	days := make([]date.Date, 0, len(trend))
	for day := range trend {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	rows := make([][]string, 0, len(days))
	for _, day := range days {
		rows = append(rows, []string{day.String(), cashbook.FormatAmount(trend[day], currency)})
	}
	doc.Table(md.TableSet{
		Header: []string{"Date", "Net"},
		Rows:   rows,
	})
	return doc.String()
}

func statsTable(s cashbook.MonthlyStats, currency string) md.TableSet {
	return md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Income", cashbook.FormatAmount(s.TotalIncome, currency)},
			{"Expense", cashbook.FormatAmount(s.TotalExpense, currency)},
			{"Net", cashbook.FormatAmount(s.NetAmount, currency)},
		},
	}
}
