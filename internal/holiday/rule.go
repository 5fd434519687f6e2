package holiday

import (
	"fmt"
	"time"

	"github.com/username/writable-calendar/pkg/dateutil"
)

// Kind selects how a Rule derives its date
type Kind int

const (
	KindFixed Kind = iota + 1
	KindNthWeekday
	KindLastWeekday
	KindEasterOffset
	KindFirstSundayAnchor
)

func (k Kind) String() string {
	switch k {
	case KindFixed:
		return "fixed"
	case KindNthWeekday:
		return "nth-weekday"
	case KindLastWeekday:
		return "last-weekday"
	case KindEasterOffset:
		return "easter-offset"
	case KindFirstSundayAnchor:
		return "first-sunday-anchor"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Category groups rules; the default table is ordered by category
type Category int

const (
	CategoryCivil Category = iota + 1
	CategoryChristian
	CategoryChurch
	CategoryHistory
)

func (c Category) String() string {
	switch c {
	case CategoryCivil:
		return "civil"
	case CategoryChristian:
		return "christian"
	case CategoryChurch:
		return "church"
	case CategoryHistory:
		return "history"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// Rule is a declarative description of one observance.
//
// Which parameters are read depends on Kind:
//   - KindFixed: Month, Day
//   - KindNthWeekday: Month, Weekday, N
//   - KindLastWeekday: Month, Weekday
//   - KindEasterOffset: Offset (days from Easter Sunday, may be negative)
//   - KindFirstSundayAnchor: Month, Lead (days before the Sunday that also fire)
type Rule struct {
	Name     string
	Category Category
	Kind     Kind

	Month   time.Month
	Day     int
	Weekday time.Weekday
	N       int
	Offset  int
	Lead    int
}

// Fixed builds a rule for a fixed month/day
func Fixed(c Category, name string, month time.Month, day int) Rule {
	return Rule{Name: name, Category: c, Kind: KindFixed, Month: month, Day: day}
}

// NthWeekday builds a rule for the n-th weekday of a month
func NthWeekday(c Category, name string, n int, weekday time.Weekday, month time.Month) Rule {
	return Rule{Name: name, Category: c, Kind: KindNthWeekday, Month: month, Weekday: weekday, N: n}
}

// LastWeekday builds a rule for the last weekday of a month
func LastWeekday(c Category, name string, weekday time.Weekday, month time.Month) Rule {
	return Rule{Name: name, Category: c, Kind: KindLastWeekday, Month: month, Weekday: weekday}
}

// EasterOffset builds a rule for a moveable feast relative to Easter Sunday
func EasterOffset(c Category, name string, offset int) Rule {
	return Rule{Name: name, Category: c, Kind: KindEasterOffset, Offset: offset}
}

// FirstSundayAnchor builds a rule firing on the first Sunday of month and
// on the lead days immediately preceding it
func FirstSundayAnchor(c Category, name string, month time.Month, lead int) Rule {
	return Rule{Name: name, Category: c, Kind: KindFirstSundayAnchor, Month: month, Lead: lead}
}

// Dates returns the dates the rule fires on in year, in ascending order.
// A first-Sunday anchor with a lead can reach back into the previous month.
func (r Rule) Dates(year int) []dateutil.Date {
	switch r.Kind {
	case KindFixed:
		if r.Day > dateutil.DaysIn(year, r.Month) {
			return nil
		}
		return []dateutil.Date{{Year: year, Month: r.Month, Day: r.Day}}
	case KindNthWeekday:
		return []dateutil.Date{dateutil.NthWeekday(year, r.Month, r.Weekday, r.N)}
	case KindLastWeekday:
		return []dateutil.Date{dateutil.LastWeekday(year, r.Month, r.Weekday)}
	case KindEasterOffset:
		return []dateutil.Date{Easter(year).AddDays(r.Offset)}
	case KindFirstSundayAnchor:
		sunday := dateutil.NthWeekday(year, r.Month, time.Sunday, 1)
		dates := make([]dateutil.Date, 0, r.Lead+1)
		for i := r.Lead; i >= 0; i-- {
			dates = append(dates, sunday.AddDays(-i))
		}
		return dates
	default:
		return nil
	}
}

// Matches reports whether the rule fires on d
func (r Rule) Matches(d dateutil.Date) bool {
	switch r.Kind {
	case KindFixed:
		return d.Month == r.Month && d.Day == r.Day
	case KindNthWeekday, KindLastWeekday:
		// cheap reject before the weekday arithmetic
		if d.Month != r.Month {
			return false
		}
	}

	// A lead of one day can pull an April anchor into March of the same
	// year, so anchors are always looked up by d.Year.
	for _, candidate := range r.Dates(d.Year) {
		if candidate == d {
			return true
		}
	}
	return false
}

// Validate checks that the rule's parameters make sense for its kind
func (r Rule) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("rule name is required")
	}
	switch r.Kind {
	case KindFixed:
		if r.Month < time.January || r.Month > time.December {
			return fmt.Errorf("%s: month %d out of range", r.Name, r.Month)
		}
		if r.Day < 1 || r.Day > dateutil.DaysIn(2000, r.Month) {
			return fmt.Errorf("%s: day %d out of range for %v", r.Name, r.Day, r.Month)
		}
	case KindNthWeekday:
		if r.Month < time.January || r.Month > time.December {
			return fmt.Errorf("%s: month %d out of range", r.Name, r.Month)
		}
		// only occurrences 1..4 exist in every month of every year
		if r.N < 1 || r.N > 4 {
			return fmt.Errorf("%s: occurrence %d must be between 1 and 4", r.Name, r.N)
		}
	case KindLastWeekday:
		if r.Month < time.January || r.Month > time.December {
			return fmt.Errorf("%s: month %d out of range", r.Name, r.Month)
		}
	case KindFirstSundayAnchor:
		if r.Month < time.January || r.Month > time.December {
			return fmt.Errorf("%s: month %d out of range", r.Name, r.Month)
		}
		if r.Lead < 0 || r.Lead > 6 {
			return fmt.Errorf("%s: lead %d must be between 0 and 6", r.Name, r.Lead)
		}
	case KindEasterOffset:
	default:
		return fmt.Errorf("%s: unknown rule kind %v", r.Name, r.Kind)
	}
	return nil
}
