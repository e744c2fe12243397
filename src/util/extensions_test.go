package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseExtensionList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "empty", input: "", expected: nil},
		{name: "single", input: ".txt", expected: []string{".txt"}},
		{name: "multiple", input: ".txt,.log", expected: []string{".txt", ".log"}},
		{name: "whitespace trimmed", input: " .txt , .log ", expected: []string{".txt", ".log"}},
		{name: "empty entries dropped", input: ".txt,,", expected: []string{".txt"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseExtensionList(tc.input))
		})
	}
}

func TestExtensionFilterLiteralMatch(t *testing.T) {
	f := NewExtensionFilter([]string{".log", ".txt"})

	assert.True(t, f.Excludes("trace.log"))
	assert.True(t, f.Excludes("dir/sub/notes.txt"))
	assert.False(t, f.Excludes("main.go"))
	assert.False(t, f.Excludes("noextension"))

	// Literal and case-sensitive, no glob semantics.
	assert.False(t, f.Excludes("upper.LOG"))
	assert.False(t, f.Excludes("archive.log.gz"))
}

func TestExtensionFilterEmpty(t *testing.T) {
	f := NewExtensionFilter(nil)
	assert.False(t, f.Excludes("anything.log"))
}
