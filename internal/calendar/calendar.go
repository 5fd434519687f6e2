package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/sourcegraph/conc/iter"
	"github.com/username/writable-calendar/pkg/dateutil"
	"go.uber.org/zap"
)

// DaysPerWeek is the number of columns of a month grid
const DaysPerWeek = 7

// MaxWeeks is the most week rows a month can span
const MaxWeeks = 6

// Source supplies the observance names for a date
type Source interface {
	Resolve(d dateutil.Date) []string
}

// Cell is one day slot of a month grid. Padding cells have Day == 0.
type Cell struct {
	Date        dateutil.Date
	Day         int
	Column      int // 0 = Sunday .. 6 = Saturday
	Weekend     bool
	Observances []string
}

// IsPadding reports whether the cell lies before day 1 or after the last day
func (c Cell) IsPadding() bool {
	return c.Day == 0
}

// Text returns the observance names, one per line
func (c Cell) Text() string {
	return strings.Join(c.Observances, "\n")
}

// Month is a Sunday-first grid of weeks for one calendar month
type Month struct {
	Year  int
	Month time.Month
	Weeks [][DaysPerWeek]Cell
}

// Title returns e.g. "February 2024"
func (m Month) Title() string {
	return fmt.Sprintf("%s %d", m.Month, m.Year)
}

// Days returns the non-padding cells in date order
func (m Month) Days() []Cell {
	var days []Cell
	for _, week := range m.Weeks {
		for _, cell := range week {
			if !cell.IsPadding() {
				days = append(days, cell)
			}
		}
	}
	return days
}

// Position returns the zero-based week row and Sunday-first column that
// day occupies in the grid of year/month
func Position(year int, month time.Month, day int) (row, col int) {
	offset := int(dateutil.NewDate(year, month, 1).Weekday())
	slot := offset + day - 1
	return slot / DaysPerWeek, slot % DaysPerWeek
}

// WeekCount returns how many week rows the month spans (4 to 6)
func WeekCount(year int, month time.Month) int {
	row, _ := Position(year, month, dateutil.DaysIn(year, month))
	return row + 1
}

// Builder lays out month grids annotated by a Source
type Builder struct {
	source Source
	logger *zap.Logger
}

// NewBuilder creates a new Builder
func NewBuilder(source Source, logger *zap.Logger) *Builder {
	return &Builder{
		source: source,
		logger: logger,
	}
}

// BuildMonth lays out one month, resolving each real day exactly once
func (b *Builder) BuildMonth(year int, month time.Month) Month {
	m := Month{
		Year:  year,
		Month: month,
		Weeks: make([][DaysPerWeek]Cell, WeekCount(year, month)),
	}

	for row := range m.Weeks {
		for col := 0; col < DaysPerWeek; col++ {
			m.Weeks[row][col] = Cell{
				Column:  col,
				Weekend: col == 0 || col == DaysPerWeek-1,
			}
		}
	}

	annotated := 0
	for day := 1; day <= dateutil.DaysIn(year, month); day++ {
		row, col := Position(year, month, day)
		d := dateutil.Date{Year: year, Month: month, Day: day}

		cell := &m.Weeks[row][col]
		cell.Date = d
		cell.Day = day
		cell.Observances = b.source.Resolve(d)
		if len(cell.Observances) > 0 {
			annotated++
		}
	}

	b.logger.Debug("Month laid out",
		zap.Int("year", year),
		zap.Int("month", int(month)),
		zap.Int("weeks", len(m.Weeks)),
		zap.Int("annotated_days", annotated))

	return m
}

// BuildYear lays out January..December. Months are built concurrently;
// the Source must be safe for concurrent use.
func (b *Builder) BuildYear(year int) []Month {
	months := make([]time.Month, 12)
	for i := range months {
		months[i] = time.January + time.Month(i)
	}

	return iter.Map(months, func(m *time.Month) Month {
		return b.BuildMonth(year, *m)
	})
}
