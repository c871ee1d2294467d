package clock

import "time"

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// Clock returns the current instant. Services take one so "today" can be
// pinned in tests and demos.
type Clock func() time.Time

// System returns the wall clock.
func System() Clock {
	return time.Now
}

// Fixed always returns t.
func Fixed(t time.Time) Clock {
	return func() time.Time { return t }
}

// Today returns the calendar date of c as UTC midnight.
func (c Clock) Today() time.Time {
	return DateOf(c())
}

// DateOf drops the time of day from t, keeping its calendar date as UTC
// midnight so dates compare independently of location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// MustDate parses a YYYY-MM-DD literal and panics on error. For fixtures.
func MustDate(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}
