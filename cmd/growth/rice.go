package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/standardbeagle/growthkit/internal/prioritize"
)

var (
	riceReach      float64
	riceImpact     float64
	riceConfidence float64
	riceEffort     float64
	riceCSV        string
	riceOutput     string
	riceJSON       bool
)

var riceCmd = &cobra.Command{
	Use:   "rice",
	Short: "RICE (Reach, Impact, Confidence, Effort) feature prioritization",
	Long: `Score a single feature with --reach/--impact/--confidence/--effort, or rank
a backlog with --csv. The CSV needs feature_name, reach, impact, confidence
and effort columns. Reach is users per quarter, impact a 0.25-3 multiplier,
confidence a percentage, effort person-months (must be positive).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if riceCSV != "" {
			return runRICEBatch()
		}
		if riceReach == 0 || riceImpact == 0 || riceConfidence == 0 || riceEffort == 0 {
			return cmd.Help()
		}

		score, err := prioritize.RICE(riceReach, riceImpact, riceConfidence, riceEffort)
		if err != nil {
			return err
		}
		priority := prioritize.RICEPriority(score)

		if riceJSON {
			return printJSON(map[string]interface{}{
				"rice_score": score,
				"priority":   priority,
			})
		}

		fmt.Printf("\nRICE Score: %.2f\n", score)
		fmt.Printf("Priority: %s\n", priority)
		return nil
	},
}

func runRICEBatch() error {
	f, err := os.Open(riceCSV)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", riceCSV, err)
	}
	defer f.Close()

	results, rowErrs, err := prioritize.ScoreRICEBatch(f)
	if err != nil {
		return err
	}
	for _, re := range rowErrs {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", re)
	}

	for _, r := range results {
		fmt.Printf("%2d. %s: %.2f %s\n", r.Rank, r.Feature, r.Score, r.Priority)
	}

	if riceOutput != "" {
		out, err := os.Create(riceOutput)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", riceOutput, err)
		}
		defer out.Close()
		if err := prioritize.WriteRankedCSV(out, results, "rice_score"); err != nil {
			return err
		}
		fmt.Printf("\nSaved to: %s\n", riceOutput)
	}
	return nil
}

func init() {
	riceCmd.Flags().Float64Var(&riceReach, "reach", 0, "Users reached per quarter")
	riceCmd.Flags().Float64Var(&riceImpact, "impact", 0, "Impact multiplier (0.25, 0.5, 1, 2, 3)")
	riceCmd.Flags().Float64Var(&riceConfidence, "confidence", 0, "Confidence percentage")
	riceCmd.Flags().Float64Var(&riceEffort, "effort", 0, "Effort in person-months")
	riceCmd.Flags().StringVar(&riceCSV, "csv", "", "CSV file with feature_name,reach,impact,confidence,effort columns")
	riceCmd.Flags().StringVar(&riceOutput, "output", "", "Write ranked results to a CSV file")
	riceCmd.Flags().BoolVar(&riceJSON, "json", false, "Print the result as JSON")

	rootCmd.AddCommand(riceCmd)
}
