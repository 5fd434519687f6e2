package render

import (
	"fmt"
	"math"
)

// Inches is a length on the page
type Inches float64

// Twips returns the length in twentieths of a point
func (in Inches) Twips() int {
	return int(math.Round(float64(in) * 1440))
}

// Points is a font size or line weight
type Points float64

// HalfPoints returns the size in half points (WordprocessingML font sizes)
func (p Points) HalfPoints() int {
	return int(math.Round(float64(p) * 2))
}

// EighthPoints returns the size in eighths of a point (border widths)
func (p Points) EighthPoints() int {
	return int(math.Round(float64(p) * 8))
}

// Twips returns the size in twentieths of a point (paragraph spacing)
func (p Points) Twips() int {
	return int(math.Round(float64(p) * 20))
}

// RGB is a 24-bit colour
type RGB struct {
	R, G, B uint8
}

// Hex returns the colour as RRGGBB
func (c RGB) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// Style holds page geometry and typography for a month page
type Style struct {
	PageWidth    Inches
	PageHeight   Inches
	MarginTop    Inches
	MarginBottom Inches
	MarginLeft   Inches
	MarginRight  Inches

	ColumnWidth Inches
	RowHeight   Inches

	TitleSize  Points
	TitleColor RGB

	HeaderSize  Points
	HeaderColor RGB
	WeekdayAbbr [7]string // Sunday first

	DaySize        Points
	DaySpaceBefore Points
	NoteSize       Points
	WeekendColor   RGB

	BorderWidth Points
	BorderColor RGB
}

// DefaultStyle is US Letter in landscape with a 7-column grid
func DefaultStyle() Style {
	return Style{
		PageWidth:    11,
		PageHeight:   8.5,
		MarginTop:    0.1,
		MarginBottom: 0.1,
		MarginLeft:   0.5,
		MarginRight:  0.5,

		ColumnWidth: 1.4,
		RowHeight:   1.0,

		TitleSize:  36,
		TitleColor: RGB{0, 0, 0},

		HeaderSize:  12,
		HeaderColor: RGB{80, 80, 80},
		WeekdayAbbr: [7]string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"},

		DaySize:        18,
		DaySpaceBefore: 6,
		NoteSize:       10,
		WeekendColor:   RGB{230, 138, 0},

		BorderWidth: 0.5,
		BorderColor: RGB{211, 211, 211},
	}
}

// Landscape reports whether the page is wider than tall
func (s Style) Landscape() bool {
	return s.PageWidth > s.PageHeight
}
