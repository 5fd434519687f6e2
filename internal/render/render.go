package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/username/writable-calendar/internal/calendar"
	"go.uber.org/zap"
)

// ErrRendererUnavailable is returned when no renderer is registered for
// the requested output format
var ErrRendererUnavailable = errors.New("renderer unavailable")

// Renderer writes a year of month grids as a single document
type Renderer interface {
	// Format is the name used to select the renderer, e.g. "docx"
	Format() string

	// Extension is the output file extension without the dot
	Extension() string

	Render(w io.Writer, year int, months []calendar.Month) error
}

// Registry maps format names to renderers
type Registry struct {
	renderers map[string]Renderer
}

// NewRegistry creates a registry holding the given renderers
func NewRegistry(renderers ...Renderer) *Registry {
	reg := &Registry{renderers: make(map[string]Renderer)}
	for _, r := range renderers {
		reg.renderers[strings.ToLower(r.Format())] = r
	}
	return reg
}

// Formats returns the registered format names, sorted
func (reg *Registry) Formats() []string {
	formats := make([]string, 0, len(reg.renderers))
	for f := range reg.renderers {
		formats = append(formats, f)
	}
	sort.Strings(formats)
	return formats
}

// Lookup returns the renderer for format
func (reg *Registry) Lookup(format string) (Renderer, error) {
	r, ok := reg.renderers[strings.ToLower(strings.TrimSpace(format))]
	if !ok {
		return nil, fmt.Errorf("%w: no renderer for format %q; this build supports: %s (pass one via --format, or rebuild calendar-gen with the %s renderer linked in)",
			ErrRendererUnavailable, format, strings.Join(reg.Formats(), ", "), format)
	}
	return r, nil
}

// FileName returns the output file name for year, e.g. Calendar_2025_Writable.docx
func FileName(year int, r Renderer) string {
	return fmt.Sprintf("Calendar_%d_Writable.%s", year, r.Extension())
}

// WriteFile renders months into dir and returns the written path. The
// document is rendered into a temporary file that is renamed into place,
// so a failed render leaves no output behind.
func WriteFile(dir string, year int, r Renderer, months []calendar.Month, logger *zap.Logger) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}

	path := filepath.Join(dir, FileName(year, r))

	tmp, err := os.CreateTemp(dir, ".calendar-*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	bw := bufio.NewWriter(tmp)
	if err := r.Render(bw, year, months); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", r.Format(), err)
	}
	if err := bw.Flush(); err != nil {
		return "", fmt.Errorf("failed to write document: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		return "", fmt.Errorf("failed to set file mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close document: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return "", fmt.Errorf("failed to move document into place: %w", err)
	}
	committed = true

	logger.Info("Calendar document written",
		zap.String("path", path),
		zap.String("format", r.Format()),
		zap.Int("year", year),
		zap.Int("months", len(months)))

	return path, nil
}
