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
	mfJSON   bool
	mfWatch  bool
	mfFontPx int
)

var mobileFirstCmd = &cobra.Command{
	Use:   "mobile-first <file.css|file.html>",
	Short: "Validate mobile-first design practices in CSS or HTML",
	Long: `Check a stylesheet or page for mobile-first compliance: viewport meta tag,
min-width media queries, readable font sizes, touch-friendly targets and
responsive images. Produces a 0-100 score. Exits 1 when errors are found.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		minFont := mfFontPx
		if minFont == 0 {
			minFont = cfg.GetMinFontSizePx()
		}

		rules, err := lint.LoadRules(cfg.GetLintRulesPath())
		if err != nil {
			return err
		}

		run := func(path string) error {
			result, err := lint.ValidateMobileFirstFile(path, rules, minFont, cfg.GetMinTouchTargetPx())
			if err != nil {
				return err
			}
			if mfJSON {
				return printJSON(result)
			}
			renderMobileFirstReport(path, result)
			if !result.Valid {
				return errIssuesFound
			}
			return nil
		}

		if mfWatch {
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

func renderMobileFirstReport(path string, result lint.MobileFirstReport) {
	fmt.Println(report.Title("MOBILE-FIRST VALIDATION"))
	fmt.Printf("File: %s\n\n", path)

	if len(result.Errors) > 0 {
		fmt.Println(report.SectionHeading(report.SeverityError, len(result.Errors)))
		for _, msg := range result.Errors {
			fmt.Println(report.RenderIssue(report.Issue{Severity: report.SeverityError, Message: msg}))
		}
		fmt.Println()
	}
	if len(result.Warnings) > 0 {
		fmt.Println(report.SectionHeading(report.SeverityWarning, len(result.Warnings)))
		for _, msg := range result.Warnings {
			fmt.Println(report.RenderIssue(report.Issue{Severity: report.SeverityWarning, Message: msg}))
		}
		fmt.Println()
	}
	if len(result.Info) > 0 {
		fmt.Println(report.SectionHeading(report.SeverityInfo, len(result.Info)))
		for _, msg := range result.Info {
			fmt.Println(report.RenderIssue(report.Issue{Severity: report.SeverityInfo, Message: msg}))
		}
		fmt.Println()
	}

	fmt.Println(report.Statusf(result.Valid, "Mobile-first score: %d/100", result.Score))
}

func init() {
	mobileFirstCmd.Flags().IntVar(&mfFontPx, "min-font-size", 0, "Minimum body font size in px (default 16, or config)")
	mobileFirstCmd.Flags().BoolVar(&mfJSON, "json", false, "Print the result as JSON")
	mobileFirstCmd.Flags().BoolVar(&mfWatch, "watch", false, "Re-validate whenever the file changes")

	rootCmd.AddCommand(mobileFirstCmd)
}
