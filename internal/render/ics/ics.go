package ics

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode"

	ical "github.com/arran4/golang-ical"
	"github.com/username/writable-calendar/internal/calendar"
	"go.uber.org/zap"
)

const (
	productID = "-//writable-calendar//calendar-gen//EN"
	uidDomain = "writable-calendar"
)

// Renderer writes one all-day event per observance as an iCalendar feed
type Renderer struct {
	now    func() time.Time
	logger *zap.Logger
}

// New creates a new ICS Renderer
func New(logger *zap.Logger) *Renderer {
	return &Renderer{
		now:    time.Now,
		logger: logger,
	}
}

// Format implements render.Renderer
func (r *Renderer) Format() string {
	return "ics"
}

// Extension implements render.Renderer
func (r *Renderer) Extension() string {
	return "ics"
}

// Render writes the VCALENDAR to w
func (r *Renderer) Render(w io.Writer, year int, months []calendar.Month) error {
	stamp := r.now().UTC()

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)
	cal.SetXWRCalName(fmt.Sprintf("%d Calendar", year))

	seen := make(map[string]int)
	events := 0
	for _, m := range months {
		for _, cell := range m.Days() {
			for _, name := range cell.Observances {
				key := cell.Date.Time().Format("20060102") + "-" + slug(name)
				uid := key + "@" + uidDomain
				// the same name twice on a date still needs unique UIDs
				if n := seen[key]; n > 0 {
					uid = fmt.Sprintf("%s-%d@%s", key, n+1, uidDomain)
				}
				seen[key]++

				event := cal.AddEvent(uid)
				event.SetDtStampTime(stamp)
				event.SetAllDayStartAt(cell.Date.Time())
				event.SetAllDayEndAt(cell.Date.AddDays(1).Time())
				event.SetSummary(name)
				events++
			}
		}
	}

	if _, err := io.WriteString(w, cal.Serialize()); err != nil {
		return fmt.Errorf("failed to write calendar: %w", err)
	}

	r.logger.Debug("ics rendered",
		zap.Int("year", year),
		zap.Int("events", events))

	return nil
}

// slug turns "Mother's Day" into "mothers-day"
func slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			dash = false
		case r == '\'':
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
