package lint

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMobileFirst(t *testing.T) *MobileFirstValidator {
	t.Helper()
	return NewMobileFirstValidator(testRules(t), DefaultMinFontSize, DefaultMinTargetSize)
}

func TestMobileFirstMissingViewport(t *testing.T) {
	report := newMobileFirst(t).Validate(`<html><head></head><body></body></html>`, true)

	assert.False(t, report.Valid)
	require.NotEmpty(t, report.Errors)
	assert.Contains(t, report.Errors[0], "viewport")
}

func TestMobileFirstViewportWithoutDeviceWidth(t *testing.T) {
	html := `<html><head><meta name="viewport" content="initial-scale=1"></head></html>`
	report := newMobileFirst(t).Validate(html, true)

	assert.False(t, report.Valid)
	assert.Contains(t, report.Errors[0], "width=device-width")
}

func TestMobileFirstDesktopFirstQueries(t *testing.T) {
	css := `
@media (max-width: 768px) { .a { color: red; } }
@media (max-width: 480px) { .b { color: red; } }
@media (min-width: 768px) { .c { color: red; } }
`
	report := newMobileFirst(t).Validate(css, false)

	assert.True(t, report.Valid)
	// The px breakpoints themselves also count as fixed pixel widths, as a
	// second warning.
	require.Len(t, report.Warnings, 2)
	assert.Contains(t, report.Warnings[0], "2 max-width queries vs 1 min-width")
	assert.Contains(t, report.Warnings[1], "3 fixed pixel widths")
}

func TestMobileFirstSmallFonts(t *testing.T) {
	css := `.caption { font-size: 12px; } .fine { font-size: 16px; } .tiny { font-size: 10px; }`
	report := newMobileFirst(t).Validate(css, false)

	assert.False(t, report.Valid)
	require.NotEmpty(t, report.Errors)
	assert.Contains(t, report.Errors[0], "2 font sizes below 16px")
}

func TestMobileFirstFixedWidths(t *testing.T) {
	css := `.sidebar { width: 300px; } .content { width: 100%; }`
	report := newMobileFirst(t).Validate(css, false)

	require.Len(t, report.Warnings, 1)
	assert.Contains(t, report.Warnings[0], "1 fixed pixel widths")
}

func TestMobileFirstSmallTouchTarget(t *testing.T) {
	css := `button { height: 30px; }`
	report := newMobileFirst(t).Validate(css, false)

	assert.False(t, report.Valid)
	require.NotEmpty(t, report.Errors)
	assert.Contains(t, report.Errors[0], "30px")
}

func TestMobileFirstHoverOnly(t *testing.T) {
	css := `
.card:hover { background: gray; }
.btn:hover, .btn:focus { background: blue; }
`
	report := newMobileFirst(t).Validate(css, false)

	require.Len(t, report.Warnings, 1)
	assert.Contains(t, report.Warnings[0], "1 hover-only states")
}

func TestMobileFirstResponsiveImages(t *testing.T) {
	html := `<html><head><meta name="viewport" content="width=device-width"></head>
<body><img src="a.jpg"><img src="b.jpg" srcset="b-2x.jpg 2x"></body></html>`
	report := newMobileFirst(t).Validate(html, true)

	assert.True(t, report.Valid)
	require.Len(t, report.Info, 1)
	assert.Contains(t, report.Info[0], "1 images without srcset")
}

func TestMobileFirstScoreDeductions(t *testing.T) {
	// One error (-10), one warning (-5): 85.
	css := `.caption { font-size: 12px; } .sidebar { width: 300px; }`
	report := newMobileFirst(t).Validate(css, false)

	assert.Equal(t, 85, report.Score)
	assert.False(t, report.Valid)
}

func TestMobileFirstCleanContentScores100(t *testing.T) {
	css := `@media (min-width: 48em) { .nav { display: flex; } }`
	report := newMobileFirst(t).Validate(css, false)

	assert.True(t, report.Valid)
	assert.Equal(t, 100, report.Score)
	assert.Empty(t, report.Errors)
}

func TestMobileFirstScoreFloorsAtZero(t *testing.T) {
	v := newMobileFirst(t)
	for i := 0; i < 15; i++ {
		v.errors = append(v.errors, "synthetic error")
	}
	report := v.report()
	assert.Equal(t, 0, report.Score)
}

func TestValidateMobileFirstFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "styles.css")
	require.NoError(t, os.WriteFile(path, []byte(`.t { font-size: 11px; }`), 0644))

	report, err := ValidateMobileFirstFile(path, testRules(t), DefaultMinFontSize, DefaultMinTargetSize)
	require.NoError(t, err)
	assert.False(t, report.Valid)
}
