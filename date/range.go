package date

import "time"

// Range represents a range of dates.
type Range struct{ From, To Date }

// MonthOf returns the range covering the whole calendar month of the given year.
func MonthOf(month time.Month, year int) Range {
	from := New(year, month, 1)
	return Range{From: from, To: New(year, month+1, 1).Add(-1)}
}

// YearOf returns the range covering the whole calendar year.
func YearOf(year int) Range {
	return Range{From: New(year, time.January, 1), To: New(year, time.December, 31)}
}

// Contains return true if date is included in the range (boundaries included).
func (r Range) Contains(d Date) bool { return !d.Before(r.From) && !d.After(r.To) }

// Days returns the dates of the range in chronological order.
func (r Range) Days() []Date {
	if r.To.Before(r.From) {
		return nil
	}
	var days []Date
	for d := r.From; !d.After(r.To); d = d.Add(1) {
		days = append(days, d)
	}
	return days
}
