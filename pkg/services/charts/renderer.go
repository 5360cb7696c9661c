// Package charts renders composition series into PNG artifacts consumed by
// the report assembler. Callers pre-filter zero-valued entries; a series
// reaching this package always has at least one positive value.
package charts

import (
	"fmt"
	"io"
	"os"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/gallery-tools/exhibit-atlas/pkg/models/domain"
)

// Config holds rendering parameters.
type Config struct {
	PieWidth  int
	PieHeight int
	BarWidth  int
	BarHeight int
	// WorkDir receives the generated PNG files; empty means the system
	// temp directory.
	WorkDir string
}

// DefaultConfig returns the sizes used by the report template.
func DefaultConfig() Config {
	return Config{
		PieWidth:  640,
		PieHeight: 480,
		BarWidth:  860,
		BarHeight: 420,
	}
}

var (
	plannedColor = drawing.ColorFromHex("4472c4")
	actualColor  = drawing.ColorFromHex("ed7d31")
	seriesColor  = drawing.ColorFromHex("5b9bd5")
)

// Renderer draws pie, bar and comparison charts as temp PNG files and
// returns their paths. The caller owns the returned files and is expected to
// register them for cleanup.
type Renderer struct {
	cfg Config
}

func NewRenderer(cfg Config) *Renderer {
	if cfg.PieWidth == 0 {
		cfg = DefaultConfig()
	}
	return &Renderer{cfg: cfg}
}

// RenderPie draws one labeled pie chart from the series, keeping entry order.
func (r *Renderer) RenderPie(entries []domain.CountEntry, title string) (string, error) {
	values := make([]chart.Value, 0, len(entries))
	for _, e := range entries {
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%d)", e.Label, e.Count),
			Value: float64(e.Count),
		})
	}

	pie := chart.PieChart{
		Title:  title,
		Width:  r.cfg.PieWidth,
		Height: r.cfg.PieHeight,
		Values: values,
	}

	return r.renderToTemp("pie-*.png", pie.Render)
}

// RenderBars draws a bar chart from the series in entry order; used for the
// weekly visitor counts.
func (r *Renderer) RenderBars(entries []domain.CountEntry) (string, error) {
	bars := make([]chart.Value, 0, len(entries))
	for _, e := range entries {
		bars = append(bars, chart.Value{
			Label: e.Label,
			Value: float64(e.Count),
			Style: chart.Style{FillColor: seriesColor, StrokeColor: seriesColor},
		})
	}

	bar := chart.BarChart{
		Width:    r.cfg.BarWidth,
		Height:   r.cfg.BarHeight,
		BarWidth: 46,
		Bars:     bars,
	}

	return r.renderToTemp("bars-*.png", bar.Render)
}

// RenderComparison draws planned-versus-actual bars per category, planned and
// actual side by side in the category order given.
func (r *Renderer) RenderComparison(categories []string, planned, actual []int) (string, error) {
	if len(categories) != len(planned) || len(categories) != len(actual) {
		return "", fmt.Errorf("comparison series length mismatch: %d categories, %d planned, %d actual",
			len(categories), len(planned), len(actual))
	}

	bars := make([]chart.Value, 0, 2*len(categories))
	for i, category := range categories {
		bars = append(bars, chart.Value{
			Label: category + " 계획",
			Value: float64(planned[i]),
			Style: chart.Style{FillColor: plannedColor, StrokeColor: plannedColor},
		})
		bars = append(bars, chart.Value{
			Label: category + " 집행",
			Value: float64(actual[i]),
			Style: chart.Style{FillColor: actualColor, StrokeColor: actualColor},
		})
	}

	bar := chart.BarChart{
		Width:    r.cfg.BarWidth,
		Height:   r.cfg.BarHeight,
		BarWidth: 40,
		Bars:     bars,
	}

	return r.renderToTemp("budget-*.png", bar.Render)
}

func (r *Renderer) renderToTemp(pattern string, render func(chart.RendererProvider, io.Writer) error) (string, error) {
	f, err := os.CreateTemp(r.cfg.WorkDir, pattern)
	if err != nil {
		return "", fmt.Errorf("failed to create chart file: %w", err)
	}
	path := f.Name()

	if err := render(chart.PNG, f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to render chart: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to close chart file: %w", err)
	}
	return path, nil
}
