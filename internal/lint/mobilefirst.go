package lint

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// DefaultMinFontSize is the smallest font size that does not trigger zoom on
// mobile browsers.
const DefaultMinFontSize = 16

// Score deductions per issue severity.
const (
	errorDeduction   = 10
	warningDeduction = 5
	infoDeduction    = 2
)

// MobileFirstReport is the outcome of a mobile-first validation run. The score
// starts at 100 and is deducted per issue, floored at zero.
type MobileFirstReport struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
	Info     []string `json:"info"`
	Score    int      `json:"score"`
}

// MobileFirstValidator checks CSS/HTML for mobile-first compliance issues.
type MobileFirstValidator struct {
	rules       *Rules
	minFontSize int
	minTarget   int
	errors      []string
	warnings    []string
	info        []string
}

// NewMobileFirstValidator builds a validator with the given thresholds.
func NewMobileFirstValidator(rules *Rules, minFontSize, minTarget int) *MobileFirstValidator {
	return &MobileFirstValidator{rules: rules, minFontSize: minFontSize, minTarget: minTarget}
}

// Validate runs every mobile-first check against the content. HTML-only
// checks (viewport meta, responsive images) run only when isHTML is set.
func (v *MobileFirstValidator) Validate(content string, isHTML bool) MobileFirstReport {
	if isHTML {
		v.checkViewport(content)
	}
	v.checkMediaQueries(content)
	v.checkFixedWidths(content)
	v.checkFontSizes(content)
	v.checkTouchTargets(content)
	v.checkHoverOnly(content)
	if isHTML {
		v.checkResponsiveImages(content)
	}
	return v.report()
}

func (v *MobileFirstValidator) checkViewport(html string) {
	if !strings.Contains(html, `name="viewport"`) {
		v.errors = append(v.errors, "Missing viewport meta tag in <head>")
	} else if !strings.Contains(html, "width=device-width") {
		v.errors = append(v.errors, "Viewport meta tag missing 'width=device-width'")
	}
}

func (v *MobileFirstValidator) checkMediaQueries(content string) {
	mf := &v.rules.MobileFirst
	maxWidth := len(mf.maxWidthRegex.FindAllString(content, -1))
	minWidth := len(mf.minWidthRegex.FindAllString(content, -1))
	if maxWidth > minWidth {
		v.warnings = append(v.warnings, fmt.Sprintf(
			"Found %d max-width queries vs %d min-width queries. Mobile-first approach should use min-width queries.",
			maxWidth, minWidth))
	}
}

func (v *MobileFirstValidator) checkFixedWidths(content string) {
	// A width declaration only counts as fixed when no @media appears between
	// it and the closing brace of its block.
	var fixed int
	for _, loc := range v.rules.MobileFirst.fixedWidthRegex.FindAllStringIndex(content, -1) {
		rest := content[loc[1]:]
		if end := strings.Index(rest, "}"); end >= 0 {
			rest = rest[:end]
		}
		if !strings.Contains(rest, "@media") {
			fixed++
		}
	}
	if fixed > 0 {
		v.warnings = append(v.warnings, fmt.Sprintf(
			"Found %d fixed pixel widths outside media queries. Consider using flexible units (%%, rem, em) or max-width.",
			fixed))
	}
}

func (v *MobileFirstValidator) checkFontSizes(content string) {
	var small int
	for _, m := range v.rules.MobileFirst.fontSizeRegex.FindAllStringSubmatch(content, -1) {
		if size, err := strconv.Atoi(m[1]); err == nil && size < v.minFontSize {
			small++
		}
	}
	if small > 0 {
		v.errors = append(v.errors, fmt.Sprintf(
			"Found %d font sizes below %dpx. Minimum %dpx required to prevent zoom on mobile.",
			small, v.minFontSize, v.minFontSize))
	}
}

func (v *MobileFirstValidator) checkTouchTargets(content string) {
	for _, m := range v.rules.MobileFirst.smallTargetRegex.FindAllStringSubmatch(content, -1) {
		size, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		if size < v.minTarget {
			v.errors = append(v.errors, fmt.Sprintf(
				"Touch target '%s' has size %dpx. Minimum %dpx required for touch interactions.",
				m[1], size, v.minTarget))
		}
	}
}

func (v *MobileFirstValidator) checkHoverOnly(content string) {
	// A :hover state is hover-only when neither :active nor :focus appears
	// before the closing brace of its block.
	var hoverOnly int
	for i := 0; ; {
		idx := strings.Index(content[i:], ":hover")
		if idx < 0 {
			break
		}
		start := i + idx + len(":hover")
		rest := content[start:]
		if end := strings.Index(rest, "}"); end >= 0 {
			rest = rest[:end]
		}
		if !strings.Contains(rest, ":active") && !strings.Contains(rest, ":focus") {
			hoverOnly++
		}
		i = start
	}
	if hoverOnly > 0 {
		v.warnings = append(v.warnings, fmt.Sprintf(
			"Found %d hover-only states. Touch devices need :active or :focus alternatives.",
			hoverOnly))
	}
}

func (v *MobileFirstValidator) checkResponsiveImages(html string) {
	var withoutSrcset int
	for _, img := range v.rules.MobileFirst.imgTagRegex.FindAllString(html, -1) {
		if !strings.Contains(img, "srcset=") && !strings.Contains(img, "sizes=") {
			withoutSrcset++
		}
	}
	if withoutSrcset > 0 {
		v.info = append(v.info, fmt.Sprintf(
			"Found %d images without srcset. Consider using responsive images for better mobile performance.",
			withoutSrcset))
	}
}

func (v *MobileFirstValidator) report() MobileFirstReport {
	r := MobileFirstReport{
		Valid:    len(v.errors) == 0,
		Errors:   v.errors,
		Warnings: v.warnings,
		Info:     v.info,
		Score:    v.score(),
	}
	if r.Errors == nil {
		r.Errors = []string{}
	}
	if r.Warnings == nil {
		r.Warnings = []string{}
	}
	if r.Info == nil {
		r.Info = []string{}
	}
	return r
}

func (v *MobileFirstValidator) score() int {
	score := 100
	score -= len(v.errors) * errorDeduction
	score -= len(v.warnings) * warningDeduction
	score -= len(v.info) * infoDeduction
	if score < 0 {
		return 0
	}
	return score
}

// ValidateMobileFirstFile validates a .css or .html file from disk.
func ValidateMobileFirstFile(path string, rules *Rules, minFontSize, minTarget int) (MobileFirstReport, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return MobileFirstReport{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	v := NewMobileFirstValidator(rules, minFontSize, minTarget)
	return v.Validate(string(content), strings.HasSuffix(path, ".html")), nil
}
