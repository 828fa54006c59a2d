package lint

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/standardbeagle/growthkit/internal/report"
)

// Default thresholds for touch target validation, overridable via config.
const (
	DefaultMinTargetSize  = 44 // pixels
	DefaultMinTargetSpace = 8  // pixels
)

// PassedCheck records an element that met the size requirement.
type PassedCheck struct {
	Selector string `json:"selector"`
	Message  string `json:"message"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

// Result aggregates touch-target findings for one run.
type Result struct {
	Valid       bool           `json:"valid"`
	Errors      []report.Issue `json:"errors"`
	Warnings    []report.Issue `json:"warnings"`
	Info        []report.Issue `json:"info"`
	Passed      []PassedCheck  `json:"passed"`
	TotalIssues int            `json:"total_issues"`
	TotalPassed int            `json:"total_passed"`
}

// TouchTargetValidator checks CSS/HTML for interactive elements smaller than
// the minimum touch target size.
type TouchTargetValidator struct {
	rules      *Rules
	minSize    int
	minSpacing int
	issues     []report.Issue
	passed     []PassedCheck
}

// NewTouchTargetValidator builds a validator with the given thresholds.
func NewTouchTargetValidator(rules *Rules, minSize, minSpacing int) *TouchTargetValidator {
	return &TouchTargetValidator{rules: rules, minSize: minSize, minSpacing: minSpacing}
}

// AnalyzeCSS extracts interactive element blocks and checks their sizes.
func (v *TouchTargetValidator) AnalyzeCSS(css string) {
	for _, re := range v.rules.TouchTargets.blockRegexes {
		for _, m := range re.FindAllStringSubmatch(css, -1) {
			selector := strings.TrimSpace(strings.SplitN(m[0], "{", 2)[0])
			v.checkElementSize(selector, m[1])
		}
	}
}

func (v *TouchTargetValidator) checkElementSize(selector, styles string) {
	tt := &v.rules.TouchTargets
	width, hasWidth := firstPxValue(tt.widthRegex, styles)
	height, hasHeight := firstPxValue(tt.heightRegex, styles)
	padding, _ := firstPxValue(tt.paddingRegex, styles)

	// Padding extends the effective touch area on both sides.
	effectiveWidth := width + padding*2
	effectiveHeight := height + padding*2

	switch {
	case hasWidth && hasHeight:
		if effectiveWidth < v.minSize || effectiveHeight < v.minSize {
			v.issues = append(v.issues, report.Issue{
				Severity: report.SeverityError,
				Type:     "size",
				Selector: selector,
				Message: fmt.Sprintf("Touch target too small: %dx%dpx (minimum: %dx%dpx)",
					effectiveWidth, effectiveHeight, v.minSize, v.minSize),
			})
		} else {
			v.passed = append(v.passed, PassedCheck{
				Selector: selector,
				Message:  fmt.Sprintf("Adequate size: %dx%dpx", effectiveWidth, effectiveHeight),
				Width:    effectiveWidth,
				Height:   effectiveHeight,
			})
		}
	case hasWidth || hasHeight:
		size := effectiveWidth
		dimension := "width"
		if hasHeight {
			size = effectiveHeight
			dimension = "height"
		}
		if size < v.minSize {
			v.issues = append(v.issues, report.Issue{
				Severity: report.SeverityWarning,
				Type:     "partial_size",
				Selector: selector,
				Message: fmt.Sprintf("%s is %dpx (minimum: %dpx). Ensure other dimension also meets minimum.",
					dimension, size, v.minSize),
			})
		}
	default:
		v.issues = append(v.issues, report.Issue{
			Severity: report.SeverityWarning,
			Type:     "no_size",
			Selector: selector,
			Message: fmt.Sprintf("No explicit dimensions found. Ensure element meets %dx%dpx minimum at runtime.",
				v.minSize, v.minSize),
		})
	}
}

// CheckSpacing flags gap declarations below the minimum spacing between
// touch targets.
func (v *TouchTargetValidator) CheckSpacing(css string) {
	for _, m := range v.rules.TouchTargets.gapRegex.FindAllStringSubmatch(css, -1) {
		gap, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if gap < v.minSpacing {
			v.issues = append(v.issues, report.Issue{
				Severity: report.SeverityWarning,
				Type:     "spacing",
				Message: fmt.Sprintf("Gap of %dpx found (minimum recommended: %dpx for touch targets)",
					gap, v.minSpacing),
			})
		}
	}
}

// AnalyzeHTML counts interactive elements and emits a single info issue
// reminding that runtime sizes need manual verification.
func (v *TouchTargetValidator) AnalyzeHTML(html string) {
	found := len(v.rules.TouchTargets.tagsRegex.FindAllString(html, -1))
	if found > 0 {
		v.issues = append(v.issues, report.Issue{
			Severity: report.SeverityInfo,
			Type:     "html_check",
			Message: fmt.Sprintf("Found %d interactive elements. Verify each meets %dx%dpx minimum using browser DevTools.",
				found, v.minSize, v.minSize),
		})
	}
}

// Results partitions accumulated findings by severity. Valid is true when no
// errors were recorded.
func (v *TouchTargetValidator) Results() Result {
	result := Result{
		Errors:      []report.Issue{},
		Warnings:    []report.Issue{},
		Info:        []report.Issue{},
		Passed:      v.passed,
		TotalIssues: len(v.issues),
		TotalPassed: len(v.passed),
	}
	if result.Passed == nil {
		result.Passed = []PassedCheck{}
	}
	for _, issue := range v.issues {
		switch issue.Severity {
		case report.SeverityError:
			result.Errors = append(result.Errors, issue)
		case report.SeverityWarning:
			result.Warnings = append(result.Warnings, issue)
		case report.SeverityInfo:
			result.Info = append(result.Info, issue)
		}
	}
	result.Valid = len(result.Errors) == 0
	return result
}

// ValidateTouchTargetFile validates a .css or .html file from disk. HTML
// inputs have their <style> blocks run through the CSS analysis.
func ValidateTouchTargetFile(path string, rules *Rules, minSize, minSpacing int) (Result, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	v := NewTouchTargetValidator(rules, minSize, minSpacing)
	text := string(content)
	if strings.HasSuffix(path, ".html") {
		for _, css := range rules.StyleBlocks(text) {
			v.AnalyzeCSS(css)
			v.CheckSpacing(css)
		}
		v.AnalyzeHTML(text)
	} else {
		v.AnalyzeCSS(text)
		v.CheckSpacing(text)
	}
	return v.Results(), nil
}

func firstPxValue(re *regexp.Regexp, styles string) (int, bool) {
	m := re.FindStringSubmatch(styles)
	if m == nil {
		return 0, false
	}
	v, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return v, true
}
