// Package docx renders month grids as a WordprocessingML (.docx) document
// with one landscape page per month.
package docx

import (
	"fmt"
	"io"
	"time"

	"github.com/klauspost/compress/zip"
	"github.com/username/writable-calendar/internal/calendar"
	"github.com/username/writable-calendar/internal/render"
	"go.uber.org/zap"
)

const (
	contentTypesPart = "[Content_Types].xml"
	rootRelsPart     = "_rels/.rels"
	corePart         = "docProps/core.xml"
	appPart          = "docProps/app.xml"
	documentPart     = "word/document.xml"
	documentRelsPart = "word/_rels/document.xml.rels"
	stylesPart       = "word/styles.xml"

	applicationName = "calendar-gen"
)

// Renderer writes .docx files
type Renderer struct {
	style  render.Style
	now    func() time.Time
	logger *zap.Logger
}

// New creates a new docx Renderer
func New(style render.Style, logger *zap.Logger) *Renderer {
	return &Renderer{
		style:  style,
		now:    time.Now,
		logger: logger,
	}
}

// Format implements render.Renderer
func (r *Renderer) Format() string {
	return "docx"
}

// Extension implements render.Renderer
func (r *Renderer) Extension() string {
	return "docx"
}

// Title returns the document title stored in the core properties
func Title(year int) string {
	return fmt.Sprintf("%d Calendar - Writable Version", year)
}

// Render writes the package parts as a zip archive to w
func (r *Renderer) Render(w io.Writer, year int, months []calendar.Month) error {
	created := r.now().UTC().Truncate(time.Second)

	parts := []struct {
		name string
		data []byte
	}{
		{contentTypesPart, []byte(contentTypesXML)},
		{rootRelsPart, []byte(rootRelsXML)},
		{corePart, coreXML(Title(year), created)},
		{appPart, appXML(len(months))},
		{documentPart, r.documentXML(months)},
		{documentRelsPart, []byte(documentRelsXML)},
		{stylesPart, stylesXML(r.style)},
	}

	zw := zip.NewWriter(w)
	for _, part := range parts {
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     part.name,
			Method:   zip.Deflate,
			Modified: created,
		})
		if err != nil {
			return fmt.Errorf("failed to add %s: %w", part.name, err)
		}
		if _, err := fw.Write(part.data); err != nil {
			return fmt.Errorf("failed to write %s: %w", part.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finish docx archive: %w", err)
	}

	r.logger.Debug("docx rendered",
		zap.Int("year", year),
		zap.Int("pages", len(months)))

	return nil
}
