package controller

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ratio-bot/src/config"
	"ratio-bot/src/model"
	"ratio-bot/src/util"
)

func newTestController(cfg *config.Config) *AnalysisController {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return NewAnalysisController(cfg, util.NewNopLogger())
}

func writeFile(t *testing.T, path string, lines ...string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644))
}

func TestAnalyzeSingleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.py")
	writeFile(t, path, "# doc", "print('hi')")

	resp, err := newTestController(nil).Analyze(AnalyzeRequest{Path: path})
	require.NoError(t, err)

	assert.True(t, resp.SingleFile)
	require.Equal(t, 1, resp.Result.FileCount)
	assert.Equal(t, 1, resp.Result.TotalCommentLines)
	assert.Equal(t, 1, resp.Result.TotalCodeLines)
	assert.InDelta(t, 1.0, resp.Result.OverallRatio, 1e-9)
}

func TestAnalyzeSingleFileReadErrorIsFatal(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}

	path := filepath.Join(t.TempDir(), "locked.py")
	require.NoError(t, os.WriteFile(path, []byte("code"), 0o000))

	_, err := newTestController(nil).Analyze(AnalyzeRequest{Path: path})

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrPermissionDenied)
}

func TestAnalyzeDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.go"), "// c", "code", "code")
	writeFile(t, filepath.Join(dir, "b.txt"), "plain text")

	resp, err := newTestController(nil).Analyze(AnalyzeRequest{
		Path:              dir,
		ExcludeExtensions: []string{".txt"},
	})
	require.NoError(t, err)

	assert.False(t, resp.SingleFile)
	assert.Equal(t, 1, resp.Result.FileCount)
	assert.Equal(t, 1, resp.Result.TotalCommentLines)
	assert.Equal(t, 2, resp.Result.TotalCodeLines)
}

func TestAnalyzeMergesConfiguredExclusions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.go"), "code")
	writeFile(t, filepath.Join(dir, "notes.txt"), "text")
	writeFile(t, filepath.Join(dir, "trace.log"), "text")

	cfg := config.DefaultConfig()
	cfg.Analysis.ExcludeExtensions = []string{".txt"}

	resp, err := newTestController(cfg).Analyze(AnalyzeRequest{
		Path:              dir,
		ExcludeExtensions: []string{".log"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Result.FileCount)
}

func TestAnalyzeMissingPath(t *testing.T) {
	_, err := newTestController(nil).Analyze(AnalyzeRequest{
		Path: filepath.Join(t.TempDir(), "nope"),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrNotFound)
}
