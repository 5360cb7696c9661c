package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gallery-tools/exhibit-atlas/pkg/adapters"
)

type ExportCmd struct {
	inputPath  string
	outputPath string
	logger     zerolog.Logger
}

func NewExportCmd(logger zerolog.Logger) *cobra.Command {
	ec := &ExportCmd{logger: logger}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export report data as JSON with image paths stripped",
		RunE:  ec.run,
	}

	cmd.Flags().StringVar(&ec.inputPath, "input", "", "Path to the report data JSON file")
	cmd.Flags().StringVar(&ec.outputPath, "output", "report.export.json", "Path of the exported JSON file")

	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (ec *ExportCmd) run(_ *cobra.Command, _ []string) error {
	payload, err := readReportData(ec.inputPath)
	if err != nil {
		return err
	}

	export := adapters.MapDomainReportToExport(adapters.MapApiReportToDomain(payload))

	raw, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}
	if err := os.WriteFile(ec.outputPath, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", ec.outputPath, err)
	}

	ec.logger.Info().Str("output", ec.outputPath).Msg("report data exported")
	return nil
}
