package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/standardbeagle/growthkit/internal/config"
)

// Version is set at build time
var Version = "dev"

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "growth",
	Short: "Marketing and product-growth utilities: CRO math, prioritization, UX validators, SEO audits",
	Long: `Growthkit bundles the calculators and validators a growth team reaches for
daily into one binary.

Calculators:
  growth cro rate 150 5000              # Conversion rate with benchmark
  growth cro significance 5000 125 5000 175
                                        # A/B test z-test verdict
  growth ice --impact 8 --confidence 7 --ease 9
  growth rice --reach 8000 --impact 2 --confidence 80 --effort 3
  growth ice --csv features.csv --output ranked.csv

Validators:
  growth touch-targets styles.css       # 44px touch target check
  growth mobile-first index.html --watch
  growth events tracking_plan.json
  growth events --check-string "Product Added"

Audits and analysis:
  growth seo --url https://example.com --output report.json
  growth sentiment "love the new dashboard"
  growth sentiment feedback.json

Agent integration:
  growth mcp                            # MCP tool server on stdio

Thresholds can be tuned in .growthkit.toml (working directory or home).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		cfg = &config.Config{}
	}

	if err := rootCmd.Execute(); err != nil {
		// Validation findings are already printed; only surface real errors.
		if !errors.Is(err, errIssuesFound) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = Version
}
