// Package dates holds the date arithmetic shared by the report flows:
// strict parsing of user-typed dates and calendar-day query windows.
package dates

import "time"

// DayFormat is the format admins type and reports display: 31.12.2024.
const DayFormat = "02.01.2006"

// ParseDay parses a user-typed date strictly. "1.1.2024", "2024-01-01" and
// trailing garbage all fail; the caller re-prompts without advancing state.
func ParseDay(text string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DayFormat, text, loc)
}

// DayStart truncates t to 00:00:00 of its calendar day.
func DayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// NextDay is 00:00:00 of the following calendar day, the exclusive upper
// bound of the same-day window.
func NextDay(t time.Time) time.Time {
	return DayStart(t).AddDate(0, 0, 1)
}

// RangeBounds expands user-entered day bounds into the inclusive-start,
// exclusive-end query window [start 00:00, day after end 00:00).
func RangeBounds(start, end time.Time) (time.Time, time.Time) {
	return DayStart(start), NextDay(end)
}
