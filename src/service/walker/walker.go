// Package walker traverses a directory tree, classifies every eligible
// regular file and accumulates the totals.
package walker

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"ratio-bot/src/model"
	"ratio-bot/src/service/classifier"
	"ratio-bot/src/service/report"
	"ratio-bot/src/util"
)

// Walker aggregates classification results over a directory tree. Files are
// processed strictly sequentially; the classifier carries no state across
// files, so a concurrent variant would only need to serialize the totals.
type Walker struct {
	log    *util.Logger
	filter *util.ExtensionFilter
}

// New creates a walker with the given logger and extension filter
func New(log *util.Logger, filter *util.ExtensionFilter) *Walker {
	return &Walker{log: log, filter: filter}
}

// Walk classifies every non-excluded regular file under root and returns the
// aggregate. Per-file read failures are logged as warnings and excluded from
// the totals; they never abort the traversal. Visitation order is whatever
// the filesystem yields.
func (w *Walker) Walk(root string) (model.AggregateResult, error) {
	result := model.AggregateResult{Root: root}

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Unreadable directory entries are skipped, not fatal.
			w.log.Warn("Skipping %s: %v", path, walkErr)
			return nil
		}

		if entry.IsDir() {
			return nil
		}
		if !entry.Type().IsRegular() {
			w.log.Debug("Skipping non-file item: %s", path)
			return nil
		}

		// Excluded files are never opened.
		if w.filter != nil && w.filter.Excludes(path) {
			w.log.Debug("Skipping file (excluded extension): %s", path)
			return nil
		}

		stats, err := classifier.ClassifyFile(path)
		if err != nil {
			w.log.Warn("Skipping %s due to error during analysis: %v", path, err)
			result.Errors = append(result.Errors, model.FileError{Path: path, Error: err.Error()})
			return nil
		}

		result.AddFile(path, stats)
		w.log.Info("%s", report.FormatFileLine(path, stats))
		return nil
	})
	if err != nil {
		return result, fmt.Errorf("walking %s: %w", root, err)
	}

	result.Finalize()
	return result, nil
}
