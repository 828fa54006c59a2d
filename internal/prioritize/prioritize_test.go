package prioritize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestICE(t *testing.T) {
	score := ICE(8, 7, 9)
	assert.Equal(t, 8.0, score)
	assert.Equal(t, "HIGH", ICEPriority(score))

	assert.Equal(t, 5.67, ICE(5, 6, 6))
}

func TestICEPriorityThresholds(t *testing.T) {
	assert.Equal(t, "HIGH", ICEPriority(8.0))
	assert.Equal(t, "MEDIUM", ICEPriority(7.99))
	assert.Equal(t, "MEDIUM", ICEPriority(6.0))
	assert.Equal(t, "LOW", ICEPriority(4.0))
	assert.Equal(t, "VERY LOW", ICEPriority(3.99))
}

func TestICECategory(t *testing.T) {
	assert.Equal(t, "QUICK WIN", ICECategory(8, 9))
	assert.Equal(t, "STRATEGIC BET", ICECategory(8, 3))
	assert.Equal(t, "FILL-IN", ICECategory(3, 8))
	assert.Equal(t, "TIME SINK", ICECategory(3, 3))

	// 6 counts as high on both axes.
	assert.Equal(t, "QUICK WIN", ICECategory(6, 6))
}

func TestRICE(t *testing.T) {
	score, err := RICE(1000, 2, 80, 4)
	require.NoError(t, err)
	assert.Equal(t, 400.0, score)
	assert.Equal(t, "MEDIUM", RICEPriority(score))
}

func TestRICEEffortMustBePositive(t *testing.T) {
	_, err := RICE(1000, 2, 80, 0)
	require.Error(t, err)

	_, err = RICE(1000, 2, 80, -1)
	require.Error(t, err)
}

func TestRICEPriorityThresholds(t *testing.T) {
	assert.Equal(t, "CRITICAL", RICEPriority(1000))
	assert.Equal(t, "HIGH", RICEPriority(500))
	assert.Equal(t, "MEDIUM", RICEPriority(100))
	assert.Equal(t, "LOW", RICEPriority(99.99))
}

func TestScoreICEBatch(t *testing.T) {
	input := `feature_name,impact,confidence,ease
Dark Mode,8,7,9
Search,5,5,5
SSO,9,8,2
`
	results, rowErrs, err := ScoreICEBatch(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	require.Len(t, results, 3)

	// Ranked by score descending.
	assert.Equal(t, 1, results[0].Rank)
	assert.Equal(t, "Dark Mode", results[0].Feature)
	assert.Equal(t, 8.0, results[0].Score)
	assert.Equal(t, "QUICK WIN", results[0].Category)

	assert.Equal(t, "SSO", results[1].Feature)
	assert.Equal(t, "STRATEGIC BET", results[1].Category)

	assert.Equal(t, 3, results[2].Rank)
	assert.Equal(t, "Search", results[2].Feature)
}

func TestScoreICEBatchSkipsBadRows(t *testing.T) {
	input := `feature_name,impact,confidence,ease
Good Feature,8,7,9
Bad Feature,high,7,9
Another Good,6,6,6
`
	results, rowErrs, err := ScoreICEBatch(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rowErrs, 1)
	assert.Equal(t, 3, rowErrs[0].Line)
	require.Len(t, results, 2)
}

func TestScoreICEBatchMissingColumn(t *testing.T) {
	input := "feature_name,impact,confidence\nX,1,2\n"
	_, _, err := ScoreICEBatch(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ease")
}

func TestScoreRICEBatch(t *testing.T) {
	input := `feature_name,reach,impact,confidence,effort
Checkout Revamp,5000,3,80,6
Zero Effort,100,1,50,0
Tooltips,200,1,90,1
`
	results, rowErrs, err := ScoreRICEBatch(strings.NewReader(input))
	require.NoError(t, err)

	// The effort<=0 row is reported and excluded.
	require.Len(t, rowErrs, 1)
	require.Len(t, results, 2)
	assert.Equal(t, "Checkout Revamp", results[0].Feature)
	assert.Equal(t, 2000.0, results[0].Score)
	assert.Equal(t, "CRITICAL", results[0].Priority)
	assert.Empty(t, results[0].Category)
}

func TestWriteRankedCSV(t *testing.T) {
	results := []Ranked{
		{Rank: 1, Feature: "A", Score: 8.0, Priority: "HIGH", Category: "QUICK WIN"},
		{Rank: 2, Feature: "B", Score: 4.5, Priority: "LOW", Category: "TIME SINK"},
	}

	var sb strings.Builder
	require.NoError(t, WriteRankedCSV(&sb, results, "ice_score"))

	out := sb.String()
	assert.Contains(t, out, "rank,feature_name,ice_score,priority,category")
	assert.Contains(t, out, "1,A,8.00,HIGH,QUICK WIN")
}

func TestWriteRankedCSVNoCategory(t *testing.T) {
	results := []Ranked{{Rank: 1, Feature: "A", Score: 400, Priority: "MEDIUM"}}

	var sb strings.Builder
	require.NoError(t, WriteRankedCSV(&sb, results, "rice_score"))
	assert.Contains(t, sb.String(), "rank,feature_name,rice_score,priority\n")
}
