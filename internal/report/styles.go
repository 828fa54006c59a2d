package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Report rendering styles

var (
	errorColor   = lipgloss.Color("1") // Red
	warningColor = lipgloss.Color("3") // Yellow
	infoColor    = lipgloss.Color("6") // Cyan
	passColor    = lipgloss.Color("2") // Green

	errorStyle   = lipgloss.NewStyle().Foreground(errorColor)
	warningStyle = lipgloss.NewStyle().Foreground(warningColor)
	infoStyle    = lipgloss.NewStyle().Foreground(infoColor)
	passStyle    = lipgloss.NewStyle().Foreground(passColor)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Faint(true)
)

func severityStyle(s Severity) lipgloss.Style {
	switch s {
	case SeverityError, SeverityCritical:
		return errorStyle
	case SeverityWarning, SeverityHigh:
		return warningStyle
	case SeverityMedium:
		return infoStyle
	default:
		return dimStyle
	}
}

// Title renders a report banner with a rule line underneath.
func Title(text string) string {
	rule := strings.Repeat("=", 60)
	return fmt.Sprintf("%s\n%s\n%s", dimStyle.Render(rule), titleStyle.Render(text), dimStyle.Render(rule))
}

// SectionHeading renders a severity section header like "ERRORS (3):".
func SectionHeading(s Severity, count int) string {
	var label string
	switch s {
	case SeverityError:
		label = "ERRORS"
	case SeverityWarning:
		label = "WARNINGS"
	case SeverityInfo:
		label = "INFO"
	default:
		label = strings.ToUpper(string(s)) + " ISSUES"
	}
	return severityStyle(s).Bold(true).Render(fmt.Sprintf("%s (%d):", label, count))
}

// RenderIssue renders a single finding as a bulleted, severity-colored line.
func RenderIssue(i Issue) string {
	line := "  • " + i.Message
	if i.Selector != "" {
		line = fmt.Sprintf("  • %s: %s", i.Selector, i.Message)
	}
	return severityStyle(i.Severity).Render(line)
}

// Pass renders a passed-check line.
func Pass(text string) string {
	return passStyle.Render("  ✓ " + text)
}

// Statusf renders a bold pass/fail verdict line.
func Statusf(ok bool, format string, args ...interface{}) string {
	style := passStyle
	if !ok {
		style = errorStyle
	}
	return style.Bold(true).Render(fmt.Sprintf(format, args...))
}
