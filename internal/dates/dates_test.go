package dates

import (
	"testing"
	"time"
)

func TestParseDayAccepts(t *testing.T) {
	got, err := ParseDay("01.01.2024", time.UTC)
	if err != nil {
		t.Fatalf("ParseDay: %v", err)
	}
	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseDayRejects(t *testing.T) {
	for _, bad := range []string{
		"",
		"2024-01-01",
		"1.1.2024",
		"32.01.2024",
		"01.13.2024",
		"01.01.2024 plus",
		"сегодня",
	} {
		if _, err := ParseDay(bad, time.UTC); err == nil {
			t.Errorf("ParseDay(%q) accepted, want error", bad)
		}
	}
}

func TestDayWindow(t *testing.T) {
	loc := time.FixedZone("MSK", 3*60*60)
	at := time.Date(2024, 3, 15, 17, 42, 3, 0, loc)

	start := DayStart(at)
	end := NextDay(at)

	if !start.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, loc)) {
		t.Errorf("DayStart = %v", start)
	}
	if !end.Equal(time.Date(2024, 3, 16, 0, 0, 0, 0, loc)) {
		t.Errorf("NextDay = %v", end)
	}
	if !at.After(start) || !at.Before(end) {
		t.Error("timestamp fell outside its own day window")
	}
}

func TestRangeBounds(t *testing.T) {
	s, _ := ParseDay("01.01.2024", time.UTC)
	e, _ := ParseDay("31.01.2024", time.UTC)

	lo, hi := RangeBounds(s, e)
	if !lo.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("lo = %v", lo)
	}
	if !hi.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("hi = %v", hi)
	}

	last := time.Date(2024, 1, 31, 23, 59, 59, 999_000_000, time.UTC)
	if !last.Before(hi) {
		t.Error("end of last day excluded from window")
	}
}
