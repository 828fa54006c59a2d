package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/standardbeagle/growthkit/internal/analytics"
	"github.com/standardbeagle/growthkit/internal/report"
)

var (
	eventsCheckString string
	eventsJSON        bool
)

var eventsCmd = &cobra.Command{
	Use:   "events [tracking-plan.json]",
	Short: "Validate analytics event and property naming conventions",
	Long: `Validate a tracking plan JSON file ({"events": [{"name": ..., "properties":
{...}}]}) against the naming conventions: Title Case past-tense event names
and snake_case property names. Use --check-string to validate a single event
name without a file. Exits 1 when errors are found.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if eventsCheckString != "" {
			return runEventNameCheck(eventsCheckString)
		}
		if len(args) == 0 {
			return cmd.Help()
		}
		return runEventsFile(args[0])
	},
}

func runEventNameCheck(name string) error {
	result := analytics.ValidateEventName(name)
	if eventsJSON {
		if err := printJSON(result); err != nil {
			return err
		}
	} else {
		fmt.Printf("Event name: %q\n\n", name)
		for _, e := range result.Errors {
			fmt.Println(report.RenderIssue(report.Issue{Severity: report.SeverityError, Message: e}))
		}
		for _, w := range result.Warnings {
			fmt.Println(report.RenderIssue(report.Issue{Severity: report.SeverityWarning, Message: w}))
		}
		fmt.Println(report.Statusf(result.Valid, "valid: %t", result.Valid))
	}
	if !result.Valid {
		return errIssuesFound
	}
	return nil
}

func runEventsFile(path string) error {
	results, err := analytics.ValidateEventsFile(path)
	if err != nil {
		return err
	}

	if eventsJSON {
		if err := printJSON(results); err != nil {
			return err
		}
	} else {
		renderEventResults(results)
	}

	if results.EventsWithErrors > 0 {
		return errIssuesFound
	}
	return nil
}

func renderEventResults(results *analytics.FileResults) {
	fmt.Println(report.Title("EVENT NAMING VALIDATION"))

	for _, er := range results.EventResults {
		fmt.Println(report.Statusf(er.Valid, "%s", er.EventName))
		for _, e := range er.NameErrors {
			fmt.Println(report.RenderIssue(report.Issue{Severity: report.SeverityError, Message: e}))
		}
		for _, w := range er.NameWarnings {
			fmt.Println(report.RenderIssue(report.Issue{Severity: report.SeverityWarning, Message: w}))
		}
		for _, pr := range er.PropertyResults {
			for _, e := range pr.Errors {
				fmt.Println(report.RenderIssue(report.Issue{Severity: report.SeverityError, Selector: pr.Property, Message: e}))
			}
			for _, w := range pr.Warnings {
				fmt.Println(report.RenderIssue(report.Issue{Severity: report.SeverityWarning, Selector: pr.Property, Message: w}))
			}
		}
	}

	fmt.Println()
	fmt.Println(report.Statusf(results.EventsWithErrors == 0,
		"%d events: %d valid, %d with errors, %d with warnings",
		results.TotalEvents, results.ValidEvents, results.EventsWithErrors, results.EventsWithWarnings))
}

func init() {
	eventsCmd.Flags().StringVar(&eventsCheckString, "check-string", "", "Validate a single event name")
	eventsCmd.Flags().BoolVar(&eventsJSON, "json", false, "Print the result as JSON")

	rootCmd.AddCommand(eventsCmd)
}
