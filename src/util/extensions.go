package util

import (
	"path/filepath"
	"strings"
)

// ExtensionFilter decides whether a file is excluded from analysis based on
// its extension. Matching is a literal case-sensitive compare including the
// leading dot; no glob or regex semantics.
type ExtensionFilter struct {
	excluded map[string]struct{}
}

// NewExtensionFilter creates a filter from a list of extensions like ".txt"
func NewExtensionFilter(extensions []string) *ExtensionFilter {
	f := &ExtensionFilter{excluded: make(map[string]struct{}, len(extensions))}
	for _, ext := range extensions {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		f.excluded[ext] = struct{}{}
	}
	return f
}

// Excludes reports whether the file at path has an excluded extension
func (f *ExtensionFilter) Excludes(path string) bool {
	_, ok := f.excluded[filepath.Ext(path)]
	return ok
}

// ParseExtensionList splits a comma-separated extension list like
// ".txt,.log", trimming whitespace and dropping empty entries.
func ParseExtensionList(s string) []string {
	if s == "" {
		return nil
	}
	var extensions []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			extensions = append(extensions, part)
		}
	}
	return extensions
}
