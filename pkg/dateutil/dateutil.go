package dateutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Year bounds accepted by ParseYear
const (
	MinYear = 1
	MaxYear = 9999
)

// ErrInvalidYear is returned by ParseYear for non-integer or out-of-range input
var ErrInvalidYear = errors.New("year must be a valid integer")

// Date is a civil calendar date with no time-of-day or location
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the date for year, month, day. Out-of-range values are
// normalized the way time.Date does (e.g. April 31 becomes May 1).
func NewDate(year int, month time.Month, day int) Date {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime returns the calendar date of t in t's own location
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Time returns midnight UTC on the date
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the day of the week (Sunday=0 .. Saturday=6)
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// AddDays returns the date n whole days after d (n may be negative)
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after other
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return sign(d.Year - other.Year)
	case d.Month != other.Month:
		return sign(int(d.Month) - int(other.Month))
	default:
		return sign(d.Day - other.Day)
	}
}

// Equal reports whether d and other are the same day
func (d Date) Equal(other Date) bool {
	return d == other
}

// Before reports whether d is strictly before other
func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

// After reports whether d is strictly after other
func (d Date) After(other Date) bool {
	return d.Compare(other) > 0
}

// String formats the date as YYYY-MM-DD
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// DaysIn returns the number of days in the given month
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// IsLeapYear reports whether year has a February 29
func IsLeapYear(year int) bool {
	return DaysIn(year, time.February) == 29
}

// NthWeekday returns the n-th (1-based) occurrence of weekday in the month.
// Callers pick n so the result stays inside the month.
func NthWeekday(year int, month time.Month, weekday time.Weekday, n int) Date {
	first := NewDate(year, month, 1)
	delta := mod7(int(weekday) - int(first.Weekday()))
	return first.AddDays(delta + (n-1)*7)
}

// LastWeekday returns the last occurrence of weekday in the month
func LastWeekday(year int, month time.Month, weekday time.Weekday) Date {
	last := NewDate(year, month, DaysIn(year, month))
	return last.AddDays(-mod7(int(last.Weekday()) - int(weekday)))
}

// mod7 is a non-negative modulo
func mod7(v int) int {
	return ((v % 7) + 7) % 7
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(d Date) bool {
	weekday := d.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// Today returns today's date on the local civil calendar
func Today() Date {
	return FromTime(time.Now())
}

// CurrentYear returns the year of Today
func CurrentYear() int {
	return Today().Year
}

// ParseYear parses a calendar year such as "2025"
func ParseYear(s string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidYear, s)
	}
	if year < MinYear || year > MaxYear {
		return 0, fmt.Errorf("%w: %d is outside %d..%d", ErrInvalidYear, year, MinYear, MaxYear)
	}
	return year, nil
}
