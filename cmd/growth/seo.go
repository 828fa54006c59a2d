package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/standardbeagle/growthkit/internal/report"
	"github.com/standardbeagle/growthkit/internal/seo"
)

var (
	seoURL    string
	seoOutput string
	seoJSON   bool
)

var seoCmd = &cobra.Command{
	Use:   "seo --url <url>",
	Short: "Run a technical SEO audit against a live URL",
	Long: `Fetch a page and check HTTPS, robots.txt, meta tags, heading structure and
image alt coverage. Produces a weighted 0-100 health score. Network failures
are reported as issues, not errors. Exits 1 when issues are found.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		auditor, err := seo.NewAuditor(seoURL, seo.Options{
			FetchTimeout: cfg.GetSEOFetchTimeout(),
			ProbeTimeout: cfg.GetSEOProbeTimeout(),
			UserAgent:    cfg.GetSEOUserAgent(),
		})
		if err != nil {
			return err
		}

		result := auditor.Run(context.Background())

		if seoOutput != "" {
			if err := writeJSONFile(seoOutput, result); err != nil {
				return err
			}
			fmt.Printf("Report saved to: %s\n", seoOutput)
		} else if seoJSON {
			if err := printJSON(result); err != nil {
				return err
			}
		} else {
			renderSEOReport(result)
		}

		if result.TotalIssues > 0 {
			return errIssuesFound
		}
		return nil
	},
}

func renderSEOReport(r *seo.Report) {
	fmt.Println(report.Title("SEO AUDIT REPORT"))
	fmt.Printf("\nURL: %s\n", r.URL)
	fmt.Println(report.Statusf(r.TotalIssues == 0, "Health Score: %d/100", r.HealthScore))
	fmt.Printf("\nTotal Issues: %d\n", r.TotalIssues)
	fmt.Printf("  Critical: %d\n", r.IssuesBySeverity.Critical)
	fmt.Printf("  High: %d\n", r.IssuesBySeverity.High)
	fmt.Printf("  Medium: %d\n", r.IssuesBySeverity.Medium)
	fmt.Printf("  Low: %d\n", r.IssuesBySeverity.Low)

	sections := []struct {
		severity report.Severity
		issues   []string
	}{
		{report.SeverityCritical, r.Issues.Critical},
		{report.SeverityHigh, r.Issues.High},
		{report.SeverityMedium, r.Issues.Medium},
		{report.SeverityLow, r.Issues.Low},
	}
	for _, section := range sections {
		if len(section.issues) == 0 {
			continue
		}
		fmt.Println()
		fmt.Println(report.SectionHeading(section.severity, len(section.issues)))
		for _, issue := range section.issues {
			fmt.Println(report.RenderIssue(report.Issue{Severity: section.severity, Message: issue}))
		}
	}

	if len(r.Recommendations) > 0 {
		fmt.Println("\nRECOMMENDATIONS:")
		for i, rec := range r.Recommendations {
			fmt.Printf("  %d. %s\n", i+1, rec)
		}
	}
	fmt.Println("\n" + strings.Repeat("=", 60))
}

func init() {
	seoCmd.Flags().StringVar(&seoURL, "url", "", "Website URL to audit (required)")
	seoCmd.Flags().StringVar(&seoOutput, "output", "", "Write the JSON report to a file")
	seoCmd.Flags().BoolVar(&seoJSON, "json", false, "Print the report as JSON")
	seoCmd.MarkFlagRequired("url")

	rootCmd.AddCommand(seoCmd)
}
