package sentiment

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Item is one feedback record. Arbitrary fields are preserved so batch
// output carries source metadata (user, date, channel) through unchanged.
type Item map[string]interface{}

// text returns the item's feedback text, preferring "text" over "feedback".
func (it Item) text() string {
	if s, ok := it["text"].(string); ok && s != "" {
		return s
	}
	if s, ok := it["feedback"].(string); ok {
		return s
	}
	return ""
}

// LabelStat is the count and share of one sentiment label in a batch.
type LabelStat struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Summary aggregates a batch run. Distribution always lists all five
// labels, including zero-count ones.
type Summary struct {
	TotalItems   int     `json:"total_items"`
	AverageScore float64 `json:"average_score"`
	Distribution struct {
		VeryPositive LabelStat `json:"Very Positive"`
		Positive     LabelStat `json:"Positive"`
		Neutral      LabelStat `json:"Neutral"`
		Negative     LabelStat `json:"Negative"`
		VeryNegative LabelStat `json:"Very Negative"`
	} `json:"distribution"`
}

// BatchOutput is the full result of analyzing a feedback file.
type BatchOutput struct {
	Summary *Summary `json:"summary"`
	Results []Item   `json:"results"`
}

// AnalyzeBatch scores each item and annotates it with sentiment_score,
// sentiment_label and sentiment_confidence. Items without text are skipped.
func (a *Analyzer) AnalyzeBatch(items []Item) []Item {
	results := make([]Item, 0, len(items))
	for _, item := range items {
		text := item.text()
		if text == "" {
			continue
		}

		r := a.Analyze(text)
		annotated := make(Item, len(item)+3)
		for k, v := range item {
			annotated[k] = v
		}
		annotated["sentiment_score"] = r.Score
		annotated["sentiment_label"] = r.Label
		annotated["sentiment_confidence"] = r.Confidence
		results = append(results, annotated)
	}
	return results
}

// Summarize computes batch statistics. Returns nil for an empty batch.
func Summarize(results []Item) *Summary {
	if len(results) == 0 {
		return nil
	}

	var sum float64
	counts := make(map[string]int)
	for _, r := range results {
		if s, ok := r["sentiment_score"].(float64); ok {
			sum += s
		}
		if l, ok := r["sentiment_label"].(string); ok {
			counts[l]++
		}
	}

	total := len(results)
	summary := &Summary{
		TotalItems:   total,
		AverageScore: round2(sum / float64(total)),
	}
	summary.Distribution.VeryPositive = labelStat(counts["Very Positive"], total)
	summary.Distribution.Positive = labelStat(counts["Positive"], total)
	summary.Distribution.Neutral = labelStat(counts["Neutral"], total)
	summary.Distribution.Negative = labelStat(counts["Negative"], total)
	summary.Distribution.VeryNegative = labelStat(counts["Very Negative"], total)
	return summary
}

func labelStat(count, total int) LabelStat {
	return LabelStat{Count: count, Percentage: round1(float64(count) / float64(total) * 100)}
}

// AnalyzeFile reads a JSON feedback file and returns annotated results
// with a summary. The file may be an array of items, an object with a
// "feedback" array, or a single item object.
func (a *Analyzer) AnalyzeFile(path string) (*BatchOutput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	items, err := decodeItems(data)
	if err != nil {
		return nil, fmt.Errorf("invalid JSON in %s: %w", path, err)
	}

	results := a.AnalyzeBatch(items)
	return &BatchOutput{Summary: Summarize(results), Results: results}, nil
}

func decodeItems(data []byte) ([]Item, error) {
	var items []Item
	if err := json.Unmarshal(data, &items); err == nil {
		return items, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	if raw, ok := obj["feedback"]; ok {
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, err
		}
		return items, nil
	}

	var single Item
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, err
	}
	return []Item{single}, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
