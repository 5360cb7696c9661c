package report

import (
	"fmt"

	"github.com/gallery-tools/exhibit-atlas/pkg/models/domain"
	"github.com/gallery-tools/exhibit-atlas/pkg/services/artifacts"
)

// chartAdapter shapes composition series into renderer calls and registers
// every produced image with the artifact manager, so chart files never
// outlive the generation that created them.
type chartAdapter struct {
	renderer ChartRenderer
	mgr      *artifacts.Manager
}

func (c *chartAdapter) pie(entries []domain.CountEntry, title string) (string, error) {
	path, err := c.renderer.RenderPie(entries, title)
	if err != nil {
		return "", fmt.Errorf("failed to render pie chart %q: %w", title, err)
	}
	c.mgr.Track(path)
	return path, nil
}

func (c *chartAdapter) bars(entries []domain.CountEntry) (string, error) {
	path, err := c.renderer.RenderBars(entries)
	if err != nil {
		return "", fmt.Errorf("failed to render bar chart: %w", err)
	}
	c.mgr.Track(path)
	return path, nil
}

func (c *chartAdapter) comparison(entries []domain.BudgetChartEntry) (string, error) {
	categories := make([]string, 0, len(entries))
	planned := make([]int, 0, len(entries))
	actual := make([]int, 0, len(entries))
	for _, e := range entries {
		categories = append(categories, e.Category)
		planned = append(planned, e.Planned)
		actual = append(actual, e.Actual)
	}

	path, err := c.renderer.RenderComparison(categories, planned, actual)
	if err != nil {
		return "", fmt.Errorf("failed to render budget comparison chart: %w", err)
	}
	c.mgr.Track(path)
	return path, nil
}
