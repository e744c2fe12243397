package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"ratio-bot/src/controller"
	"ratio-bot/src/service/report"
	"ratio-bot/src/util"
)

func (h *Handler) analyzeCmd() *cobra.Command {
	var (
		excludeList string
		format      string
		outputDir   string
	)

	cmd := &cobra.Command{
		Use:   "analyze <path>",
		Short: "Analyze a file or directory",
		Long:  "Classifies every non-blank line as comment or code and reports the comment-to-code ratio",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			analysisCtrl := controller.NewAnalysisController(h.cfg, h.log)
			resp, err := analysisCtrl.Analyze(controller.AnalyzeRequest{
				Path:              path,
				ExcludeExtensions: util.ParseExtensionList(excludeList),
			})
			if err != nil {
				return err
			}

			if resp.SingleFile {
				fmt.Println(report.FormatFileLine(path, resp.Result.Files[0].Stats))
				return nil
			}

			reportCtrl := controller.NewReportController(h.cfg, h.log)
			if outputDir != "" {
				h.cfg.Output.OutputDir = outputDir
				writtenPath, err := reportCtrl.WriteReport(&resp.Result, format)
				if err != nil {
					return fmt.Errorf("generating report: %w", err)
				}
				fmt.Printf("Report written to %s\n", writtenPath)
				return nil
			}

			output, err := reportCtrl.GenerateToString(&resp.Result, format)
			if err != nil {
				return fmt.Errorf("generating report: %w", err)
			}
			fmt.Println(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&excludeList, "exclude", "e", "",
		"Comma-separated list of file extensions to exclude (e.g. .txt,.log)")
	cmd.Flags().StringVarP(&format, "format", "f", "",
		"Output format (text, json, markdown)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "",
		"Output directory for the report file")

	return cmd
}
