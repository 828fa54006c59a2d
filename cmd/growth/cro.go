package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/standardbeagle/growthkit/internal/cro"
)

var croCmd = &cobra.Command{
	Use:   "cro",
	Short: "Conversion rate optimization calculators",
}

var croRateCmd = &cobra.Command{
	Use:   "rate <conversions> <visitors>",
	Short: "Calculate a conversion rate with a benchmark rating",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		conversions, err := parseIntArg("conversions", args[0])
		if err != nil {
			return err
		}
		visitors, err := parseIntArg("visitors", args[1])
		if err != nil {
			return err
		}

		rate := cro.ConversionRate(conversions, visitors)
		return printJSON(map[string]interface{}{
			"conversion_rate": rate,
			"benchmark":       cro.RateBenchmark(rate),
		})
	},
}

var croImpactCmd = &cobra.Command{
	Use:   "impact <current-rate> <improved-rate> <monthly-visitors> <avg-order-value>",
	Short: "Project revenue impact of a conversion rate improvement",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		currentRate, err := parseFloatArg("current-rate", args[0])
		if err != nil {
			return err
		}
		improvedRate, err := parseFloatArg("improved-rate", args[1])
		if err != nil {
			return err
		}
		monthlyVisitors, err := parseIntArg("monthly-visitors", args[2])
		if err != nil {
			return err
		}
		aov, err := parseFloatArg("avg-order-value", args[3])
		if err != nil {
			return err
		}

		return printJSON(cro.CalculateRevenueImpact(currentRate, improvedRate, monthlyVisitors, aov))
	},
}

var croSignificanceCmd = &cobra.Command{
	Use:   "significance <visitors-a> <conversions-a> <visitors-b> <conversions-b>",
	Short: "Two-proportion z-test for an A/B test",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		values := make([]int, 4)
		names := []string{"visitors-a", "conversions-a", "visitors-b", "conversions-b"}
		for i, arg := range args {
			n, err := parseIntArg(names[i], arg)
			if err != nil {
				return err
			}
			values[i] = n
		}

		return printJSON(cro.CalculateSignificance(values[0], values[1], values[2], values[3]))
	},
}

var (
	sampleConfidence float64
	samplePower      float64
)

var croSampleCmd = &cobra.Command{
	Use:   "sample <baseline-rate> <mde>",
	Short: "Sample size needed per variation for an A/B test",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		baseline, err := parseFloatArg("baseline-rate", args[0])
		if err != nil {
			return err
		}
		mde, err := parseFloatArg("mde", args[1])
		if err != nil {
			return err
		}

		return printJSON(cro.CalculateSampleSize(baseline, mde, sampleConfidence, samplePower))
	},
}

var croFunnelCmd = &cobra.Command{
	Use:   "funnel <stages-json>",
	Short: "Analyze a conversion funnel and find the biggest drop-off",
	Long: `Analyze a funnel given stages as a JSON array, for example:
  growth cro funnel '[{"name": "Homepage", "visitors": 10000}, {"name": "Checkout", "visitors": 500}]'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var stages []cro.Stage
		if err := json.Unmarshal([]byte(args[0]), &stages); err != nil {
			return fmt.Errorf("invalid funnel JSON: %w", err)
		}

		analysis, err := cro.AnalyzeFunnel(stages)
		if err != nil {
			return err
		}
		return printJSON(analysis)
	},
}

var croICECmd = &cobra.Command{
	Use:   "ice <impact> <confidence> <ease>",
	Short: "Quick ICE score on a 1-10 scale",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		values := make([]int, 3)
		names := []string{"impact", "confidence", "ease"}
		for i, arg := range args {
			n, err := parseIntArg(names[i], arg)
			if err != nil {
				return err
			}
			values[i] = n
		}

		score := cro.ICEScore(values[0], values[1], values[2])
		return printJSON(map[string]interface{}{
			"ice_score": score,
			"priority":  cro.ICEPriority(score),
		})
	},
}

func init() {
	croSampleCmd.Flags().Float64Var(&sampleConfidence, "confidence", 95, "Confidence level (95 or 99)")
	croSampleCmd.Flags().Float64Var(&samplePower, "power", 80, "Statistical power (80 or 90)")

	croCmd.AddCommand(croRateCmd, croImpactCmd, croSignificanceCmd, croSampleCmd, croFunnelCmd, croICECmd)
	rootCmd.AddCommand(croCmd)
}
