package controller

import (
	"fmt"
	"os"
	"time"

	"ratio-bot/src/config"
	"ratio-bot/src/model"
	"ratio-bot/src/service/classifier"
	"ratio-bot/src/service/walker"
	"ratio-bot/src/util"
)

// AnalysisController orchestrates the ratio analysis for a path
type AnalysisController struct {
	cfg *config.Config
	log *util.Logger
}

// NewAnalysisController creates a new analysis controller
func NewAnalysisController(cfg *config.Config, log *util.Logger) *AnalysisController {
	return &AnalysisController{cfg: cfg, log: log}
}

// AnalyzeRequest represents a request to analyze a file or directory
type AnalyzeRequest struct {
	Path string
	// ExcludeExtensions from the command line, merged with the configured
	// defaults before the scan.
	ExcludeExtensions []string
}

// AnalyzeResponse carries the aggregate plus which mode produced it
type AnalyzeResponse struct {
	Result     model.AggregateResult
	SingleFile bool
}

// Analyze dispatches on the kind of path. A regular file is classified
// directly and any read failure is fatal; a directory is walked with
// per-file failures downgraded to warnings; anything else is an invalid
// path.
func (c *AnalysisController) Analyze(req AnalyzeRequest) (*AnalyzeResponse, error) {
	startTime := time.Now()

	info, err := os.Stat(req.Path)
	if err != nil {
		c.log.Error("Invalid path: %s", req.Path)
		return nil, model.ClassifyReadError(req.Path, err)
	}

	switch {
	case info.Mode().IsRegular():
		stats, err := classifier.ClassifyFile(req.Path)
		if err != nil {
			c.log.Error("Analysis failed for %s: %v", req.Path, err)
			return nil, err
		}

		result := model.AggregateResult{Root: req.Path}
		result.AddFile(req.Path, stats)
		result.Finalize()
		return &AnalyzeResponse{Result: result, SingleFile: true}, nil

	case info.IsDir():
		excluded := append([]string{}, c.cfg.Analysis.ExcludeExtensions...)
		excluded = append(excluded, req.ExcludeExtensions...)

		w := walker.New(c.log, util.NewExtensionFilter(excluded))
		result, err := w.Walk(req.Path)
		if err != nil {
			c.log.Error("Analysis failed: %v", err)
			return nil, err
		}

		c.log.Debug("Analyzed %d files in %v", result.FileCount, time.Since(startTime))
		return &AnalyzeResponse{Result: result}, nil

	default:
		c.log.Error("Invalid path: %s", req.Path)
		return nil, fmt.Errorf("%w: %s", model.ErrInvalidPath, req.Path)
	}
}
