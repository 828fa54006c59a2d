package sentiment

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	return NewAnalyzer(DefaultLexicon())
}

func TestAnalyzeVeryPositive(t *testing.T) {
	result := newAnalyzer(t).Analyze("This product is amazing!")

	assert.Equal(t, 5.0, result.Score)
	assert.Equal(t, "Very Positive", result.Label)
	assert.Equal(t, 0.2, result.Confidence)
	assert.Equal(t, 1.0, result.Signals.VeryPositive)
}

func TestAnalyzeNegationFlipsPolarity(t *testing.T) {
	result := newAnalyzer(t).Analyze("not good")

	assert.Equal(t, 2.0, result.Score)
	assert.Equal(t, "Negative", result.Label)
	assert.Equal(t, 1.0, result.Signals.Negative)
	assert.Equal(t, 1, result.Signals.Negations)
}

func TestAnalyzeNegatedSuperlative(t *testing.T) {
	result := newAnalyzer(t).Analyze("not amazing")

	assert.Equal(t, 1.0, result.Score)
	assert.Equal(t, "Very Negative", result.Label)
	assert.Equal(t, 1.0, result.Signals.VeryNegative)
}

func TestAnalyzeIntensifier(t *testing.T) {
	result := newAnalyzer(t).Analyze("very helpful")

	assert.Equal(t, 4.0, result.Score)
	assert.Equal(t, "Positive", result.Label)
	assert.Equal(t, 1.5, result.Signals.Positive)
	assert.Equal(t, 1, result.Signals.Intensifiers)
	// 1.5 signals out of 5.
	assert.Equal(t, 0.3, result.Confidence)
}

func TestAnalyzeNeutralDefault(t *testing.T) {
	result := newAnalyzer(t).Analyze("The dashboard loads the data")

	assert.Equal(t, 3.0, result.Score)
	assert.Equal(t, "Neutral", result.Label)
	assert.Equal(t, 0.3, result.Confidence)
}

func TestAnalyzeMixedSentiment(t *testing.T) {
	result := newAnalyzer(t).Analyze("good but confusing")

	assert.Equal(t, 3.0, result.Score)
	assert.Equal(t, "Neutral", result.Label)
}

func TestAnalyzeNegativeBlend(t *testing.T) {
	result := newAnalyzer(t).Analyze("terrible and slow")

	assert.Equal(t, 1.5, result.Score)
	assert.Equal(t, "Negative", result.Label)
}

func TestAnalyzeConfidenceCaps(t *testing.T) {
	result := newAnalyzer(t).Analyze("good great nice helpful useful easy fast")

	assert.Equal(t, 1.0, result.Confidence)
}

func TestAnalyzeBatchSkipsEmptyAndAnnotates(t *testing.T) {
	a := newAnalyzer(t)
	items := []Item{
		{"text": "I love this feature", "user": "u1"},
		{"feedback": "confusing and slow"},
		{"user": "u3"},
	}

	results := a.AnalyzeBatch(items)
	require.Len(t, results, 2)

	assert.Equal(t, "Very Positive", results[0]["sentiment_label"])
	assert.Equal(t, "u1", results[0]["user"])
	assert.Equal(t, "Negative", results[1]["sentiment_label"])
	assert.Equal(t, 2.0, results[1]["sentiment_score"])
}

func TestSummarize(t *testing.T) {
	a := newAnalyzer(t)
	results := a.AnalyzeBatch([]Item{
		{"text": "amazing"},
		{"text": "amazing"},
		{"text": "terrible"},
		{"text": "the button exists"},
	})

	summary := Summarize(results)
	require.NotNil(t, summary)
	assert.Equal(t, 4, summary.TotalItems)
	assert.Equal(t, 3.5, summary.AverageScore)
	assert.Equal(t, 2, summary.Distribution.VeryPositive.Count)
	assert.Equal(t, 50.0, summary.Distribution.VeryPositive.Percentage)
	assert.Equal(t, 1, summary.Distribution.VeryNegative.Count)
	assert.Equal(t, 25.0, summary.Distribution.Neutral.Percentage)
	assert.Equal(t, 0, summary.Distribution.Positive.Count)
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Nil(t, Summarize(nil))
}

func TestAnalyzeFileFeedbackObject(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "feedback.json")
	content := `{"feedback": [{"text": "I love it"}, {"text": "worst app ever"}]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	out, err := newAnalyzer(t).AnalyzeFile(path)
	require.NoError(t, err)
	require.Len(t, out.Results, 2)
	assert.Equal(t, 2, out.Summary.TotalItems)
	assert.Equal(t, "Very Negative", out.Results[1]["sentiment_label"])
}

func TestAnalyzeFileSingleObject(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "one.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"text": "works great"}`), 0644))

	out, err := newAnalyzer(t).AnalyzeFile(path)
	require.NoError(t, err)
	require.Len(t, out.Results, 1)
	assert.Equal(t, "Positive", out.Results[0]["sentiment_label"])
}

func TestAnalyzeFileBadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"feedback": [`), 0644))

	_, err := newAnalyzer(t).AnalyzeFile(path)
	require.Error(t, err)
}

func TestLoadLexiconCustomFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lex.toml")
	custom := `
very_positive = ["stellar"]
positive = []
negative = []
very_negative = []
negations = []
intensifiers = []
`
	require.NoError(t, os.WriteFile(path, []byte(custom), 0644))

	lex, err := LoadLexicon(path)
	require.NoError(t, err)

	result := NewAnalyzer(lex).Analyze("absolutely stellar")
	assert.Equal(t, "Very Positive", result.Label)
	// Intensifier list is empty in the custom lexicon.
	assert.Equal(t, 1.0, result.Signals.VeryPositive)
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "it s great isn t it", cleanText("It's GREAT, isn't it?!"))
}
