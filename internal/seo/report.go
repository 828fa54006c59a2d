package seo

import "time"

// Issues groups findings by severity. Severity drives both the health
// score weighting and the recommendation priorities.
type Issues struct {
	Critical []string `json:"critical"`
	High     []string `json:"high"`
	Medium   []string `json:"medium"`
	Low      []string `json:"low"`
}

// IssueCounts mirrors Issues with per-severity totals.
type IssueCounts struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

// TagMetrics records the text and length of a title or description tag.
type TagMetrics struct {
	Text   string `json:"text"`
	Length int    `json:"length"`
}

// RobotsMetrics records what was found in robots.txt.
type RobotsMetrics struct {
	Exists     bool `json:"exists"`
	HasSitemap bool `json:"has_sitemap"`
	SizeBytes  int  `json:"size_bytes"`
}

// HeadingMetrics records the H1 situation on the page.
type HeadingMetrics struct {
	H1Count int    `json:"h1_count"`
	H1Text  string `json:"h1_text,omitempty"`
}

// ImageMetrics records image alt-attribute coverage.
type ImageMetrics struct {
	TotalCount int `json:"total_count"`
	MissingAlt int `json:"missing_alt"`
}

// Metrics collects the page measurements taken during an audit. Sections
// are nil when the corresponding element was absent or unreachable.
type Metrics struct {
	RobotsTxt   *RobotsMetrics  `json:"robots_txt,omitempty"`
	Title       *TagMetrics     `json:"title,omitempty"`
	Description *TagMetrics     `json:"description,omitempty"`
	Canonical   string          `json:"canonical,omitempty"`
	Headings    *HeadingMetrics `json:"headings,omitempty"`
	Images      *ImageMetrics   `json:"images,omitempty"`
}

// Report is the result of one audit run.
type Report struct {
	RunID            string      `json:"run_id"`
	URL              string      `json:"url"`
	GeneratedAt      time.Time   `json:"generated_at"`
	HealthScore      int         `json:"health_score"`
	TotalIssues      int         `json:"total_issues"`
	IssuesBySeverity IssueCounts `json:"issues_by_severity"`
	Issues           Issues      `json:"issues"`
	Metrics          Metrics     `json:"metrics"`
	Recommendations  []string    `json:"recommendations"`
}

// Health score deductions per issue severity.
const (
	criticalWeight = 15
	highWeight     = 8
	mediumWeight   = 4
	lowWeight      = 1
)

func (i *Issues) total() int {
	return len(i.Critical) + len(i.High) + len(i.Medium) + len(i.Low)
}

func (i *Issues) healthScore() int {
	score := 100 -
		len(i.Critical)*criticalWeight -
		len(i.High)*highWeight -
		len(i.Medium)*mediumWeight -
		len(i.Low)*lowWeight
	if score < 0 {
		return 0
	}
	return score
}

func (i *Issues) recommendations() []string {
	var recs []string
	if len(i.Critical) > 0 {
		recs = append(recs, "URGENT: Fix critical issues immediately - they prevent proper indexing")
	}
	if len(i.High) > 0 {
		recs = append(recs, "HIGH PRIORITY: Address high-priority issues within 1 week")
	}
	if len(i.Medium) > 0 {
		recs = append(recs, "MEDIUM PRIORITY: Schedule medium-priority fixes within 1 month")
	}
	if len(i.Low) > 0 {
		recs = append(recs, "LOW PRIORITY: Address low-priority items as time permits")
	}
	return recs
}
