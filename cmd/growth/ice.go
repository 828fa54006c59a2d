package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/standardbeagle/growthkit/internal/prioritize"
)

var (
	iceImpact     float64
	iceConfidence float64
	iceEase       float64
	iceCSV        string
	iceOutput     string
	iceJSON       bool
)

var iceCmd = &cobra.Command{
	Use:   "ice",
	Short: "ICE (Impact, Confidence, Ease) feature prioritization",
	Long: `Score a single feature with --impact/--confidence/--ease (1-10 each), or
rank a backlog with --csv. The CSV needs feature_name, impact, confidence and
ease columns. Rows that fail to parse are reported and skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if iceCSV != "" {
			return runICEBatch()
		}
		if iceImpact == 0 || iceConfidence == 0 || iceEase == 0 {
			return cmd.Help()
		}

		score := prioritize.ICE(iceImpact, iceConfidence, iceEase)
		priority := prioritize.ICEPriority(score)
		category := prioritize.ICECategory(iceImpact, iceEase)

		if iceJSON {
			return printJSON(map[string]interface{}{
				"ice_score": score,
				"priority":  priority,
				"category":  category,
			})
		}

		fmt.Printf("\nICE Score: %.2f\n", score)
		fmt.Printf("Priority: %s\n", priority)
		fmt.Printf("Category: %s\n", category)
		return nil
	},
}

func runICEBatch() error {
	f, err := os.Open(iceCSV)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", iceCSV, err)
	}
	defer f.Close()

	results, rowErrs, err := prioritize.ScoreICEBatch(f)
	if err != nil {
		return err
	}
	for _, re := range rowErrs {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", re)
	}

	for _, r := range results {
		fmt.Printf("%2d. %s: %.2f %s (%s)\n", r.Rank, r.Feature, r.Score, r.Priority, r.Category)
	}

	if iceOutput != "" {
		out, err := os.Create(iceOutput)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", iceOutput, err)
		}
		defer out.Close()
		if err := prioritize.WriteRankedCSV(out, results, "ice_score"); err != nil {
			return err
		}
		fmt.Printf("\nSaved to: %s\n", iceOutput)
	}
	return nil
}

func init() {
	iceCmd.Flags().Float64Var(&iceImpact, "impact", 0, "Impact rating 1-10")
	iceCmd.Flags().Float64Var(&iceConfidence, "confidence", 0, "Confidence rating 1-10")
	iceCmd.Flags().Float64Var(&iceEase, "ease", 0, "Ease rating 1-10")
	iceCmd.Flags().StringVar(&iceCSV, "csv", "", "CSV file with feature_name,impact,confidence,ease columns")
	iceCmd.Flags().StringVar(&iceOutput, "output", "", "Write ranked results to a CSV file")
	iceCmd.Flags().BoolVar(&iceJSON, "json", false, "Print the result as JSON")

	rootCmd.AddCommand(iceCmd)
}
