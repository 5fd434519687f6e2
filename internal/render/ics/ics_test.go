package ics

import (
	"bytes"
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/writable-calendar/internal/calendar"
	"github.com/username/writable-calendar/internal/holiday"
	"github.com/username/writable-calendar/pkg/dateutil"
	"go.uber.org/zap"
)

type fixedSource map[dateutil.Date][]string

func (s fixedSource) Resolve(d dateutil.Date) []string {
	return s[d]
}

func TestRenderEvents(t *testing.T) {
	resolver := holiday.NewDefault()
	months := calendar.NewBuilder(resolver, zap.NewNop()).BuildYear(2025)

	r := New(zap.NewNop())
	r.now = func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) }

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, 2025, months))

	cal, err := ical.ParseCalendar(strings.NewReader(buf.String()))
	require.NoError(t, err)

	events := cal.Events()
	assert.Len(t, events, len(resolver.ResolveYear(2025)))

	byUID := make(map[string]*ical.VEvent)
	for _, e := range events {
		byUID[e.Id()] = e
	}

	july4, ok := byUID["20250704-independence-day@writable-calendar"]
	require.True(t, ok, "missing Independence Day event")
	assert.Equal(t, holiday.IndependenceDay, july4.GetProperty(ical.ComponentPropertySummary).Value)
	assert.Equal(t, "20250704", july4.GetProperty(ical.ComponentPropertyDtStart).Value)
	assert.Equal(t, "20250705", july4.GetProperty(ical.ComponentPropertyDtEnd).Value)

	_, ok = byUID["20250405-general-conference@writable-calendar"]
	assert.True(t, ok, "missing conference Saturday")
	_, ok = byUID["20250511-mothers-day@writable-calendar"]
	assert.True(t, ok, "missing Mother's Day")

	assert.Contains(t, buf.String(), "X-WR-CALNAME:2025 Calendar")
}

func TestRenderDuplicateNamesGetUniqueUIDs(t *testing.T) {
	d := dateutil.Date{Year: 2025, Month: time.March, Day: 3}
	src := fixedSource{d: {"Twice", "Twice"}}
	months := []calendar.Month{calendar.NewBuilder(src, zap.NewNop()).BuildMonth(2025, time.March)}

	var buf bytes.Buffer
	require.NoError(t, New(zap.NewNop()).Render(&buf, 2025, months))

	cal, err := ical.ParseCalendar(strings.NewReader(buf.String()))
	require.NoError(t, err)

	var uids []string
	for _, e := range cal.Events() {
		uids = append(uids, e.Id())
	}
	assert.ElementsMatch(t, []string{
		"20250303-twice@writable-calendar",
		"20250303-twice-2@writable-calendar",
	}, uids)
}

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Mother's Day", "mothers-day"},
		{"Martin Luther King Jr. Day", "martin-luther-king-jr-day"},
		{"Presidents' Day", "presidents-day"},
		{"Easter", "easter"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, slug(tt.in))
		})
	}
}
