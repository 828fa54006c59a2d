// Package report holds the severity model and terminal rendering shared by the
// validators and the SEO auditor.
package report

// Severity classifies an issue. Validators use the error/warning/info scale,
// the SEO auditor uses critical/high/medium/low.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"

	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Issue is a single finding. Issues accumulate into a flat list per run and
// are never persisted.
type Issue struct {
	Severity Severity `json:"severity"`
	Type     string   `json:"type,omitempty"`
	Selector string   `json:"selector,omitempty"`
	Message  string   `json:"message"`
}
