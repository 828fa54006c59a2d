package prioritize

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// Ranked is one scored feature from a CSV batch, ordered by score descending.
type Ranked struct {
	Rank     int     `json:"rank"`
	Feature  string  `json:"feature_name"`
	Score    float64 `json:"score"`
	Priority string  `json:"priority"`
	Category string  `json:"category,omitempty"`
}

// RowError reports a CSV row that could not be scored. Bad rows are skipped
// rather than aborting the batch.
type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Line, e.Err)
}

// ScoreICEBatch reads a CSV with a header row containing feature_name, impact,
// confidence and ease columns and returns features ranked by ICE score.
func ScoreICEBatch(r io.Reader) ([]Ranked, []RowError, error) {
	return scoreBatch(r, []string{"feature_name", "impact", "confidence", "ease"},
		func(fields map[string]float64) (float64, string, error) {
			score := ICE(fields["impact"], fields["confidence"], fields["ease"])
			return score, ICECategory(fields["impact"], fields["ease"]), nil
		}, ICEPriority)
}

// ScoreRICEBatch reads a CSV with feature_name, reach, impact, confidence and
// effort columns and returns features ranked by RICE score.
func ScoreRICEBatch(r io.Reader) ([]Ranked, []RowError, error) {
	return scoreBatch(r, []string{"feature_name", "reach", "impact", "confidence", "effort"},
		func(fields map[string]float64) (float64, string, error) {
			score, err := RICE(fields["reach"], fields["impact"], fields["confidence"], fields["effort"])
			return score, "", err
		}, RICEPriority)
}

func scoreBatch(r io.Reader, columns []string, score func(map[string]float64) (float64, string, error), priority func(float64) string) ([]Ranked, []RowError, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("reading CSV header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, col := range columns {
		if _, ok := index[col]; !ok {
			return nil, nil, fmt.Errorf("CSV missing required column %q", col)
		}
	}

	var results []Ranked
	var rowErrs []RowError
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			rowErrs = append(rowErrs, RowError{Line: line, Err: err})
			continue
		}

		fields := make(map[string]float64, len(columns)-1)
		name := record[index["feature_name"]]
		parseErr := error(nil)
		for _, col := range columns[1:] {
			v, err := strconv.ParseFloat(record[index[col]], 64)
			if err != nil {
				parseErr = fmt.Errorf("column %q: %w", col, err)
				break
			}
			fields[col] = v
		}
		if parseErr != nil {
			rowErrs = append(rowErrs, RowError{Line: line, Err: parseErr})
			continue
		}

		s, category, err := score(fields)
		if err != nil {
			rowErrs = append(rowErrs, RowError{Line: line, Err: err})
			continue
		}
		results = append(results, Ranked{
			Feature:  name,
			Score:    s,
			Priority: priority(s),
			Category: category,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	for i := range results {
		results[i].Rank = i + 1
	}
	return results, rowErrs, nil
}

// WriteRankedCSV writes ranked results back out as CSV. The category column is
// included only when at least one result carries one (ICE batches).
func WriteRankedCSV(w io.Writer, results []Ranked, scoreHeader string) error {
	withCategory := false
	for _, r := range results {
		if r.Category != "" {
			withCategory = true
			break
		}
	}

	cw := csv.NewWriter(w)
	header := []string{"rank", "feature_name", scoreHeader, "priority"}
	if withCategory {
		header = append(header, "category")
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{
			strconv.Itoa(r.Rank),
			r.Feature,
			strconv.FormatFloat(r.Score, 'f', 2, 64),
			r.Priority,
		}
		if withCategory {
			row = append(row, r.Category)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
