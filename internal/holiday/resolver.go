package holiday

import (
	"fmt"
	"sort"

	"github.com/username/writable-calendar/pkg/dateutil"
)

// Observance is a named day attached to a date
type Observance struct {
	Date     dateutil.Date
	Name     string
	Category Category
}

// Resolver evaluates a fixed rule table against dates. It holds no
// mutable state and is safe for concurrent use.
type Resolver struct {
	rules []Rule
}

// New creates a Resolver over rules, evaluated in the given order
func New(rules []Rule) (*Resolver, error) {
	for i, rule := range rules {
		if err := rule.Validate(); err != nil {
			return nil, fmt.Errorf("invalid rule #%d: %w", i, err)
		}
	}

	copied := make([]Rule, len(rules))
	copy(copied, rules)
	return &Resolver{rules: copied}, nil
}

// NewDefault creates a Resolver over DefaultRules
func NewDefault() *Resolver {
	r, err := New(DefaultRules())
	if err != nil {
		panic(fmt.Sprintf("default holiday rules are invalid: %v", err))
	}
	return r
}

// Rules returns a copy of the rule table
func (r *Resolver) Rules() []Rule {
	out := make([]Rule, len(r.rules))
	copy(out, r.rules)
	return out
}

// Resolve returns the names of all observances on d in rule order.
// The result is never nil; a date no rule matches yields an empty slice.
func (r *Resolver) Resolve(d dateutil.Date) []string {
	names := []string{}
	for _, rule := range r.rules {
		if rule.Matches(d) {
			names = append(names, rule.Name)
		}
	}
	return names
}

// ResolveYear returns every observance of year ordered by date, then by
// rule order
func (r *Resolver) ResolveYear(year int) []Observance {
	type ranked struct {
		Observance
		rank int
	}

	var all []ranked
	for i, rule := range r.rules {
		for _, d := range rule.Dates(year) {
			if d.Year != year {
				continue
			}
			all = append(all, ranked{
				Observance: Observance{Date: d, Name: rule.Name, Category: rule.Category},
				rank:       i,
			})
		}
	}

	sort.SliceStable(all, func(i, j int) bool {
		if c := all[i].Date.Compare(all[j].Date); c != 0 {
			return c < 0
		}
		return all[i].rank < all[j].rank
	})

	out := make([]Observance, len(all))
	for i := range all {
		out[i] = all[i].Observance
	}
	return out
}
