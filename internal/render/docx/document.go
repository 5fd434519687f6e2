package docx

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/username/writable-calendar/internal/calendar"
	"github.com/username/writable-calendar/internal/render"
)

const wordNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// documentXML builds word/document.xml: per month a centred heading and a
// 7x7 table (weekday header + six week rows), separated by page breaks
func (r *Renderer) documentXML(months []calendar.Month) []byte {
	var buf bytes.Buffer
	buf.WriteString(xmlHeader)
	fmt.Fprintf(&buf, `<w:document xmlns:w="%s"><w:body>`, wordNamespace)

	for i, m := range months {
		r.writeHeading(&buf, m.Title())
		r.writeTable(&buf, m)

		if i < len(months)-1 {
			buf.WriteString(`<w:p><w:r><w:br w:type="page"/></w:r></w:p>`)
		} else {
			// a table may not be the last block before sectPr
			buf.WriteString(`<w:p/>`)
		}
	}

	r.writeSection(&buf)
	buf.WriteString(`</w:body></w:document>`)
	return buf.Bytes()
}

func (r *Renderer) writeHeading(buf *bytes.Buffer, title string) {
	s := r.style
	buf.WriteString(`<w:p><w:pPr><w:pStyle w:val="Title"/><w:jc w:val="center"/></w:pPr><w:r>`)
	writeRunProps(buf, true, false, &s.TitleColor, s.TitleSize)
	writeText(buf, title)
	buf.WriteString(`</w:r></w:p>`)
}

func (r *Renderer) writeTable(buf *bytes.Buffer, m calendar.Month) {
	s := r.style
	colWidth := strconv.Itoa(s.ColumnWidth.Twips())

	buf.WriteString(`<w:tbl><w:tblPr>`)
	buf.WriteString(`<w:tblW w:w="0" w:type="auto"/>`)
	buf.WriteString(`<w:jc w:val="center"/>`)
	buf.WriteString(`<w:tblBorders>`)
	for _, side := range []string{"top", "left", "bottom", "right", "insideH", "insideV"} {
		fmt.Fprintf(buf, `<w:%s w:val="none"/>`, side)
	}
	buf.WriteString(`</w:tblBorders>`)
	buf.WriteString(`<w:tblLayout w:type="fixed"/>`)
	buf.WriteString(`</w:tblPr><w:tblGrid>`)
	for col := 0; col < calendar.DaysPerWeek; col++ {
		fmt.Fprintf(buf, `<w:gridCol w:w="%s"/>`, colWidth)
	}
	buf.WriteString(`</w:tblGrid>`)

	// weekday header row
	buf.WriteString(`<w:tr>`)
	for _, abbr := range s.WeekdayAbbr {
		r.openCell(buf, true)
		buf.WriteString(`<w:p><w:pPr><w:jc w:val="center"/></w:pPr><w:r>`)
		writeRunProps(buf, true, false, &s.HeaderColor, s.HeaderSize)
		writeText(buf, abbr)
		buf.WriteString(`</w:r></w:p></w:tc>`)
	}
	buf.WriteString(`</w:tr>`)

	// always six week rows so every page has the same grid
	for row := 0; row < calendar.MaxWeeks; row++ {
		fmt.Fprintf(buf, `<w:tr><w:trPr><w:trHeight w:val="%d"/></w:trPr>`, s.RowHeight.Twips())
		for col := 0; col < calendar.DaysPerWeek; col++ {
			var cell calendar.Cell
			inMonth := row < len(m.Weeks)
			if inMonth {
				cell = m.Weeks[row][col]
			}

			dated := inMonth && !cell.IsPadding()
			// leading blanks of the first week keep their borders
			r.openCell(buf, dated || row == 0)
			r.writeDayParagraph(buf, cell, dated)
			buf.WriteString(`</w:tc>`)
		}
		buf.WriteString(`</w:tr>`)
	}

	buf.WriteString(`</w:tbl>`)
}

func (r *Renderer) openCell(buf *bytes.Buffer, bordered bool) {
	s := r.style
	fmt.Fprintf(buf, `<w:tc><w:tcPr><w:tcW w:w="%d" w:type="dxa"/>`, s.ColumnWidth.Twips())
	if bordered {
		buf.WriteString(`<w:tcBorders>`)
		for _, side := range []string{"top", "left", "bottom", "right"} {
			fmt.Fprintf(buf, `<w:%s w:val="single" w:sz="%d" w:space="0" w:color="%s"/>`,
				side, s.BorderWidth.EighthPoints(), s.BorderColor.Hex())
		}
		buf.WriteString(`</w:tcBorders>`)
	}
	buf.WriteString(`</w:tcPr>`)
}

func (r *Renderer) writeDayParagraph(buf *bytes.Buffer, cell calendar.Cell, dated bool) {
	s := r.style
	fmt.Fprintf(buf, `<w:p><w:pPr><w:spacing w:before="%d" w:after="0"/><w:jc w:val="left"/></w:pPr>`,
		s.DaySpaceBefore.Twips())

	if dated {
		var color *render.RGB
		if cell.Weekend {
			color = &s.WeekendColor
		}

		buf.WriteString(`<w:r>`)
		writeRunProps(buf, true, false, color, s.DaySize)
		writeText(buf, strconv.Itoa(cell.Day))
		if len(cell.Observances) > 0 {
			buf.WriteString(`<w:br/>`)
		}
		buf.WriteString(`</w:r>`)

		if len(cell.Observances) > 0 {
			buf.WriteString(`<w:r>`)
			writeRunProps(buf, false, true, nil, s.NoteSize)
			for i, name := range cell.Observances {
				if i > 0 {
					buf.WriteString(`<w:br/>`)
				}
				writeText(buf, name)
			}
			buf.WriteString(`</w:r>`)
		}
	}

	buf.WriteString(`</w:p>`)
}

func (r *Renderer) writeSection(buf *bytes.Buffer) {
	s := r.style
	buf.WriteString(`<w:sectPr>`)
	orient := "portrait"
	if s.Landscape() {
		orient = "landscape"
	}
	fmt.Fprintf(buf, `<w:pgSz w:w="%d" w:h="%d" w:orient="%s"/>`,
		s.PageWidth.Twips(), s.PageHeight.Twips(), orient)
	fmt.Fprintf(buf, `<w:pgMar w:top="%d" w:right="%d" w:bottom="%d" w:left="%d" w:header="720" w:footer="720" w:gutter="0"/>`,
		s.MarginTop.Twips(), s.MarginRight.Twips(), s.MarginBottom.Twips(), s.MarginLeft.Twips())
	buf.WriteString(`</w:sectPr>`)
}

func writeRunProps(buf *bytes.Buffer, bold, italic bool, color *render.RGB, size render.Points) {
	buf.WriteString(`<w:rPr>`)
	if bold {
		buf.WriteString(`<w:b/>`)
	}
	if italic {
		buf.WriteString(`<w:i/>`)
	}
	if color != nil {
		fmt.Fprintf(buf, `<w:color w:val="%s"/>`, color.Hex())
	}
	fmt.Fprintf(buf, `<w:sz w:val="%d"/>`, size.HalfPoints())
	buf.WriteString(`</w:rPr>`)
}

func writeText(buf *bytes.Buffer, text string) {
	fmt.Fprintf(buf, `<w:t xml:space="preserve">%s</w:t>`, escape(text))
}
