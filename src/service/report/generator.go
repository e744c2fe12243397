package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"ratio-bot/src/model"
)

// Generator renders aggregate results in various formats
type Generator struct{}

// NewGenerator creates a new report generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders the aggregate result in the specified format
func (g *Generator) Generate(result *model.AggregateResult, format string) (string, error) {
	switch format {
	case "text", "":
		return g.generateText(result), nil
	case "json":
		return g.generateJSON(result)
	case "markdown", "md":
		return g.generateMarkdown(result), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// FormatFileLine renders the one-line per-file result used in both
// single-file output and the per-file log lines.
func FormatFileLine(path string, stats model.FileStats) string {
	return fmt.Sprintf("File: %s, Comment Lines: %d, Code Lines: %d, Ratio: %.2f",
		path, stats.CommentLines, stats.CodeLines, stats.Ratio)
}

func (g *Generator) generateText(result *model.AggregateResult) string {
	var sb strings.Builder

	sb.WriteString("\n--- Summary ---\n")
	sb.WriteString(fmt.Sprintf("Total Files Analyzed: %d\n", result.FileCount))
	sb.WriteString(fmt.Sprintf("Total Comment Lines: %d\n", result.TotalCommentLines))
	sb.WriteString(fmt.Sprintf("Total Code Lines: %d\n", result.TotalCodeLines))
	sb.WriteString(fmt.Sprintf("Overall Comment-to-Code Ratio: %.2f\n", result.OverallRatio))

	return sb.String()
}

func (g *Generator) generateJSON(result *model.AggregateResult) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (g *Generator) generateMarkdown(result *model.AggregateResult) string {
	var sb strings.Builder

	sb.WriteString("# Comment-to-Code Ratio Report\n\n")
	sb.WriteString(fmt.Sprintf("**Root:** %s\n\n", result.Root))

	sb.WriteString("## Summary\n\n")
	sb.WriteString(fmt.Sprintf("- **Total Files Analyzed:** %d\n", result.FileCount))
	sb.WriteString(fmt.Sprintf("- **Total Comment Lines:** %d\n", result.TotalCommentLines))
	sb.WriteString(fmt.Sprintf("- **Total Code Lines:** %d\n", result.TotalCodeLines))
	sb.WriteString(fmt.Sprintf("- **Overall Ratio:** %.2f\n\n", result.OverallRatio))

	if len(result.Files) > 0 {
		sb.WriteString("## Files\n\n")
		sb.WriteString("| File | Comment Lines | Code Lines | Ratio |\n")
		sb.WriteString("|------|---------------|------------|-------|\n")
		for _, file := range result.Files {
			sb.WriteString(fmt.Sprintf("| %s | %d | %d | %.2f |\n",
				file.Path, file.Stats.CommentLines, file.Stats.CodeLines, file.Stats.Ratio))
		}
		sb.WriteString("\n")
	}

	if len(result.Errors) > 0 {
		sb.WriteString("## Skipped Files\n\n")
		sb.WriteString("| File | Error |\n")
		sb.WriteString("|------|-------|\n")
		for _, fe := range result.Errors {
			sb.WriteString(fmt.Sprintf("| %s | %s |\n", fe.Path, fe.Error))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
