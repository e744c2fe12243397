package model

// FileStats contains line counts for a single analyzed file
type FileStats struct {
	CommentLines int     `json:"comment_lines"`
	CodeLines    int     `json:"code_lines"`
	BlankLines   int     `json:"blank_lines"`
	TotalLines   int     `json:"total_lines"`
	Ratio        float64 `json:"ratio"`
}

// ComputeRatio returns comment lines divided by code lines.
// A file with zero code lines has ratio 0.0, even when comment lines are nonzero.
func ComputeRatio(commentLines, codeLines int) float64 {
	if codeLines <= 0 {
		return 0.0
	}
	return float64(commentLines) / float64(codeLines)
}

// FileResult pairs a file path with its stats
type FileResult struct {
	Path  string    `json:"path"`
	Stats FileStats `json:"stats"`
}

// FileError records a file that could not be analyzed.
// Unreadable files are excluded from aggregates but kept visible in reports.
type FileError struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// AggregateResult contains the totals for a directory scan
type AggregateResult struct {
	Root              string       `json:"root"`
	FileCount         int          `json:"file_count"`
	TotalCommentLines int          `json:"total_comment_lines"`
	TotalCodeLines    int          `json:"total_code_lines"`
	OverallRatio      float64      `json:"overall_ratio"`
	Files             []FileResult `json:"files"`
	Errors            []FileError  `json:"errors,omitempty"`
}

// AddFile folds one file's stats into the running totals
func (a *AggregateResult) AddFile(path string, stats FileStats) {
	a.FileCount++
	a.TotalCommentLines += stats.CommentLines
	a.TotalCodeLines += stats.CodeLines
	a.Files = append(a.Files, FileResult{Path: path, Stats: stats})
}

// Finalize computes the overall ratio from the accumulated totals
func (a *AggregateResult) Finalize() {
	a.OverallRatio = ComputeRatio(a.TotalCommentLines, a.TotalCodeLines)
}
