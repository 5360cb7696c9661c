package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gallery-tools/exhibit-atlas/pkg/adapters"
	"github.com/gallery-tools/exhibit-atlas/pkg/doc/docx"
	"github.com/gallery-tools/exhibit-atlas/pkg/models/api"
	"github.com/gallery-tools/exhibit-atlas/pkg/services/charts"
	"github.com/gallery-tools/exhibit-atlas/pkg/services/config"
	"github.com/gallery-tools/exhibit-atlas/pkg/services/report"
)

type GenerateCmd struct {
	inputPath   string
	outputPath  string
	profilePath string
	logger      zerolog.Logger
}

func NewGenerateCmd(logger zerolog.Logger) *cobra.Command {
	gc := &GenerateCmd{logger: logger}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a .docx exhibition report from a report data JSON file",
		RunE:  gc.run,
	}

	cmd.Flags().StringVar(&gc.inputPath, "input", "", "Path to the report data JSON file")
	cmd.Flags().StringVar(&gc.outputPath, "output", "report.docx", "Path of the generated document")
	cmd.Flags().StringVar(&gc.profilePath, "config", "", "Path to an optional generator profile")

	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (gc *GenerateCmd) run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(gc.profilePath)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	payload, err := readReportData(gc.inputPath)
	if err != nil {
		return err
	}
	data := adapters.MapApiReportToDomain(payload)

	renderer := charts.NewRenderer(charts.Config{
		PieWidth:  cfg.Charts.PieWidth,
		PieHeight: cfg.Charts.PieHeight,
		BarWidth:  cfg.Charts.BarWidth,
		BarHeight: cfg.Charts.BarHeight,
		WorkDir:   cfg.WorkDir,
	})
	generator := report.NewGenerator(renderer, docx.NewSink(), cfg.WorkDir)

	ctx := gc.logger.WithContext(cmd.Context())
	if err := generator.GenerateFile(ctx, data, gc.outputPath); err != nil {
		return err
	}

	gc.logger.Info().Str("output", gc.outputPath).Msg("report written")
	return nil
}

func readReportData(path string) (api.ReportData, error) {
	var payload api.ReportData

	raw, err := os.ReadFile(path)
	if err != nil {
		return payload, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return payload, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return payload, nil
}
