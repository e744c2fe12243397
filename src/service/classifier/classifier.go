// Package classifier implements the heuristic line scan that decides
// comment vs. code per line. It is a line-prefix/suffix heuristic, not a
// parser: it has no language grammar, no nesting, and no awareness of
// comment-like tokens inside strings.
package classifier

import (
	"bufio"
	"io"
	"os"
	"strings"

	"ratio-bot/src/model"
)

// scanState is the per-file state threaded through the scan loop. It is
// created fresh for every file and never shared, so per-file classification
// calls stay independent.
type scanState struct {
	inMultiline bool
}

type lineKind int

const (
	lineBlank lineKind = iota
	lineComment
	lineCode
)

// classifyLine buckets one trimmed line. The rules are checked strictly in
// order; the first match wins.
//
// Known quirk, preserved for compatibility: a one-line block comment such
// as "/* c */" matches the "/*" prefix rule before the "*/" suffix rule is
// ever reached, so the multiline flag is left set and subsequent lines are
// counted as comments. The suffix rule also sits after the flag check, so
// once "/*" sets the flag only a triple-quote line clears it.
func classifyLine(line string, st *scanState) lineKind {
	switch {
	case line == "":
		return lineBlank
	case strings.HasPrefix(line, `"""`) || strings.HasPrefix(line, "'''"):
		// The delimiter line itself counts as a comment regardless of
		// which direction the toggle goes; a one-line docstring like
		// """text""" still toggles only once.
		st.inMultiline = !st.inMultiline
		return lineComment
	case st.inMultiline:
		return lineComment
	case strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//"):
		return lineComment
	case strings.HasPrefix(line, "/*"):
		st.inMultiline = true
		return lineComment
	case strings.HasSuffix(line, "*/") && st.inMultiline:
		st.inMultiline = false
		return lineComment
	default:
		return lineCode
	}
}

// Classify scans one file's lines from r and counts comment, code and blank
// lines. It never fails on content; the only error source is the reader.
// On a read error the caller gets no result, not a zero-valued one.
func Classify(r io.Reader) (model.FileStats, error) {
	var stats model.FileStats
	st := scanState{}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for sc.Scan() {
		stats.TotalLines++
		line := strings.TrimSpace(sc.Text())

		switch classifyLine(line, &st) {
		case lineBlank:
			stats.BlankLines++
		case lineComment:
			stats.CommentLines++
		case lineCode:
			stats.CodeLines++
		}
	}
	if err := sc.Err(); err != nil {
		return model.FileStats{}, err
	}

	stats.Ratio = model.ComputeRatio(stats.CommentLines, stats.CodeLines)
	return stats, nil
}

// ClassifyFile opens and classifies the file at path. Open and read failures
// are mapped to the analyzer's error kinds; the file handle is released on
// every exit path.
func ClassifyFile(path string) (model.FileStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.FileStats{}, model.ClassifyReadError(path, err)
	}
	defer f.Close()

	stats, err := Classify(f)
	if err != nil {
		return model.FileStats{}, model.ClassifyReadError(path, err)
	}
	return stats, nil
}
