package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/standardbeagle/growthkit/internal/sentiment"
)

var sentimentCmd = &cobra.Command{
	Use:   "sentiment <text|feedback.json>",
	Short: "Analyze the sentiment of feedback text",
	Long: `Score feedback on a 1-5 sentiment scale using keyword analysis with
negation and intensifier handling. Pass a JSON file (an array of items, an
object with a "feedback" array, or a single item with a "text" field) for
batch mode with summary statistics, or a plain string for a single result.

Examples:
  growth sentiment "This product is amazing!"
  growth sentiment feedback.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lex, err := sentiment.LoadLexicon(cfg.GetSentimentLexicon())
		if err != nil {
			return err
		}
		analyzer := sentiment.NewAnalyzer(lex)

		// A readable file means batch mode; anything else is direct text.
		if info, err := os.Stat(args[0]); err == nil && !info.IsDir() {
			out, err := analyzer.AnalyzeFile(args[0])
			if err != nil {
				return err
			}
			return printJSON(out)
		}

		result := analyzer.Analyze(args[0])
		return printJSON(struct {
			Text string `json:"text"`
			sentiment.Result
		}{Text: args[0], Result: result})
	},
}

func init() {
	rootCmd.AddCommand(sentimentCmd)
}
