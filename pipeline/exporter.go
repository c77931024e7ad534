package pipeline

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"flipbook-creator/compose"
	"flipbook-creator/encode"
	"flipbook-creator/flipbook"
)

// Exporter composes a sequence and writes the encoded result. Encoding
// happens fully in memory before any byte reaches the destination.
type Exporter struct {
	log zerolog.Logger
}

func NewExporter(log zerolog.Logger) *Exporter {
	return &Exporter{log: log.With().Str("component", "exporter").Logger()}
}

// Export renders the sequence and writes it to w in the given format.
func (e *Exporter) Export(w io.Writer, entries []flipbook.Entry, spec compose.RenderSpec, format encode.Format) error {
	img, err := compose.Render(entries, spec)
	if err != nil {
		return err
	}

	data, err := encode.Encode(img, format)
	if err != nil {
		return err
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	bounds := img.Bounds()
	e.log.Info().
		Str("format", format.String()).
		Int("width", bounds.Dx()).
		Int("height", bounds.Dy()).
		Int("bytes", len(data)).
		Msg("flipbook exported")
	return nil
}

// ExportFile resolves the format from the path's extension and writes
// the result to that file.
func (e *Exporter) ExportFile(path string, entries []flipbook.Entry, spec compose.RenderSpec) error {
	format := encode.FormatForPath(path)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	return e.Export(f, entries, spec, format)
}
