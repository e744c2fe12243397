package controller

import (
	"fmt"
	"os"
	"path/filepath"

	"ratio-bot/src/config"
	"ratio-bot/src/model"
	"ratio-bot/src/service/report"
	"ratio-bot/src/util"
)

// ReportController handles report rendering and file output
type ReportController struct {
	cfg *config.Config
	log *util.Logger
}

// NewReportController creates a new report controller
func NewReportController(cfg *config.Config, log *util.Logger) *ReportController {
	return &ReportController{cfg: cfg, log: log}
}

// GenerateToString renders the result in the given format. An empty format
// falls back to the configured default.
func (c *ReportController) GenerateToString(result *model.AggregateResult, format string) (string, error) {
	if format == "" {
		format = c.cfg.Output.Format
	}
	return report.NewGenerator().Generate(result, format)
}

// WriteReport renders the result and writes it into the output directory,
// returning the path of the written file.
func (c *ReportController) WriteReport(result *model.AggregateResult, format string) (string, error) {
	if format == "" {
		format = c.cfg.Output.Format
	}

	output, err := report.NewGenerator().Generate(result, format)
	if err != nil {
		return "", err
	}

	outputPath := c.outputPath(format)
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(outputPath, []byte(output), 0644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	c.log.Info("Report written: %s", outputPath)
	return outputPath, nil
}

func (c *ReportController) outputPath(format string) string {
	ext := format
	switch format {
	case "markdown":
		ext = "md"
	case "text":
		ext = "txt"
	}

	return filepath.Join(c.cfg.Output.OutputDir, "ratio-report."+ext)
}
