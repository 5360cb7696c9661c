// Package report assembles a resolved ReportData into the fixed six-section
// exhibition report document.
package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/gallery-tools/exhibit-atlas/pkg/doc"
	"github.com/gallery-tools/exhibit-atlas/pkg/models/domain"
	"github.com/gallery-tools/exhibit-atlas/pkg/services/artifacts"
)

// ErrMissingTitle rejects generation before any work happens; the exhibition
// title is the only required field.
var ErrMissingTitle = errors.New("exhibition title is required")

// Generator runs one-shot report generations. It is safe to share across
// goroutines: every Generate call builds its own assembler and artifact
// manager, so parallel generations never touch common mutable state.
type Generator struct {
	renderer ChartRenderer
	sink     doc.Sink
	workDir  string
}

func NewGenerator(renderer ChartRenderer, sink doc.Sink, workDir string) *Generator {
	return &Generator{renderer: renderer, sink: sink, workDir: workDir}
}

// Generate assembles and serializes the report into w. Chart artifacts
// created along the way are deleted before returning, on success and on
// failure alike.
func (g *Generator) Generate(ctx context.Context, data domain.ReportData, w io.Writer) error {
	if data.ExhibitionTitle == "" {
		return ErrMissingTitle
	}

	logger := zerolog.Ctx(ctx)

	mgr := artifacts.NewManager(g.workDir)
	defer mgr.Cleanup(logger)

	asm := NewAssembler(g.renderer, mgr)
	document, err := asm.Assemble(ctx, data)
	if err != nil {
		return fmt.Errorf("failed to assemble report: %w", err)
	}

	if err := g.sink.Write(document, w); err != nil {
		return fmt.Errorf("failed to serialize report: %w", err)
	}

	logger.Info().
		Str("title", data.ExhibitionTitle).
		Int("artifacts", len(mgr.Paths())).
		Msg("report generated")
	return nil
}

// GenerateFile writes the report to path. A failed generation removes the
// partial output file.
func (g *Generator) GenerateFile(ctx context.Context, data domain.ReportData, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := g.Generate(ctx, data, f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
