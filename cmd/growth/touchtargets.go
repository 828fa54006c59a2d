package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/standardbeagle/growthkit/internal/lint"
	"github.com/standardbeagle/growthkit/internal/report"
	"github.com/standardbeagle/growthkit/internal/watch"
)

var (
	ttMinSize    int
	ttMinSpacing int
	ttJSON       bool
	ttWatch      bool
)

var touchTargetsCmd = &cobra.Command{
	Use:   "touch-targets <file.css|file.html>",
	Short: "Validate touch target sizes in CSS or HTML",
	Long: `Check that interactive elements (buttons, links, inputs) meet the minimum
touch target size, including padding. HTML files are scanned through their
<style> blocks. Exits 1 when errors are found.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		minSize := ttMinSize
		if minSize == 0 {
			minSize = cfg.GetMinTouchTargetPx()
		}
		minSpacing := ttMinSpacing
		if minSpacing == 0 {
			minSpacing = cfg.GetMinTouchSpacingPx()
		}

		rules, err := lint.LoadRules(cfg.GetLintRulesPath())
		if err != nil {
			return err
		}

		run := func(path string) error {
			result, err := lint.ValidateTouchTargetFile(path, rules, minSize, minSpacing)
			if err != nil {
				return err
			}
			if ttJSON {
				return printJSON(result)
			}
			renderTouchTargetResult(path, result, minSize)
			if !result.Valid {
				return errIssuesFound
			}
			return nil
		}

		if ttWatch {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			return watch.File(ctx, args[0], func(path string) error {
				err := run(path)
				if err != nil && err != errIssuesFound {
					return err
				}
				return nil
			}, func(err error) {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			})
		}
		return run(args[0])
	},
}

func renderTouchTargetResult(path string, result lint.Result, minSize int) {
	fmt.Println(report.Title("TOUCH TARGET VALIDATION"))
	fmt.Printf("File: %s (minimum %dpx)\n\n", path, minSize)

	if len(result.Errors) > 0 {
		fmt.Println(report.SectionHeading(report.SeverityError, len(result.Errors)))
		for _, issue := range result.Errors {
			fmt.Println(report.RenderIssue(issue))
		}
		fmt.Println()
	}
	if len(result.Warnings) > 0 {
		fmt.Println(report.SectionHeading(report.SeverityWarning, len(result.Warnings)))
		for _, issue := range result.Warnings {
			fmt.Println(report.RenderIssue(issue))
		}
		fmt.Println()
	}
	if len(result.Info) > 0 {
		fmt.Println(report.SectionHeading(report.SeverityInfo, len(result.Info)))
		for _, issue := range result.Info {
			fmt.Println(report.RenderIssue(issue))
		}
		fmt.Println()
	}
	for _, pass := range result.Passed {
		fmt.Println(report.Pass(fmt.Sprintf("%s: %s", pass.Selector, pass.Message)))
	}

	fmt.Println()
	fmt.Println(report.Statusf(result.Valid, "%d issues, %d passed", result.TotalIssues, result.TotalPassed))
}

func init() {
	touchTargetsCmd.Flags().IntVar(&ttMinSize, "min-size", 0, "Minimum touch target size in px (default 44, or config)")
	touchTargetsCmd.Flags().IntVar(&ttMinSpacing, "min-spacing", 0, "Minimum spacing between targets in px (default 8, or config)")
	touchTargetsCmd.Flags().BoolVar(&ttJSON, "json", false, "Print the result as JSON")
	touchTargetsCmd.Flags().BoolVar(&ttWatch, "watch", false, "Re-validate whenever the file changes")

	rootCmd.AddCommand(touchTargetsCmd)
}
