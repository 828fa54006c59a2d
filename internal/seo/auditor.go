// Package seo performs automated technical SEO checks against a live URL
// and produces a weighted health report.
package seo

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultFetchTimeout bounds the main page and robots.txt fetches.
	DefaultFetchTimeout = 10 * time.Second
	// DefaultProbeTimeout bounds the HTTP-to-HTTPS redirect probe.
	DefaultProbeTimeout = 5 * time.Second
	// DefaultUserAgent identifies the auditor to the target site.
	DefaultUserAgent = "Mozilla/5.0 (SEO Audit Bot)"
)

var (
	titleRe     = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	descRe      = regexp.MustCompile(`(?i)<meta\s+name=["']description["']\s+content=["'](.*?)["']\s*/?>`)
	canonicalRe = regexp.MustCompile(`(?i)<link\s+rel=["']canonical["']\s+href=["'](.*?)["']\s*/?>`)
	h1Re        = regexp.MustCompile(`(?is)<h1[^>]*>(.*?)</h1>`)
	headingRe   = regexp.MustCompile(`(?i)<h([1-6])[^>]*>`)
	imgRe       = regexp.MustCompile(`(?i)<img\s+[^>]*>`)
)

// Options configures an Auditor. Zero values fall back to the defaults.
type Options struct {
	FetchTimeout time.Duration
	ProbeTimeout time.Duration
	UserAgent    string
	// Client overrides the HTTP client, mainly for tests.
	Client *http.Client
}

// Auditor runs technical SEO checks against a single URL. Network
// failures are recorded as issues rather than aborting the run.
type Auditor struct {
	baseURL   string
	parsed    *url.URL
	client    *http.Client
	probe     *http.Client
	userAgent string

	issues  Issues
	metrics Metrics
}

// NewAuditor validates the target URL and prepares an auditor.
func NewAuditor(rawURL string, opts Options) (*Auditor, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("URL must start with http:// or https://, got %q", rawURL)
	}

	fetchTimeout := opts.FetchTimeout
	if fetchTimeout == 0 {
		fetchTimeout = DefaultFetchTimeout
	}
	probeTimeout := opts.ProbeTimeout
	if probeTimeout == 0 {
		probeTimeout = DefaultProbeTimeout
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: fetchTimeout}
	}
	probe := &http.Client{Timeout: probeTimeout}
	if opts.Client != nil {
		probe = opts.Client
	}

	return &Auditor{
		baseURL:   rawURL,
		parsed:    parsed,
		client:    client,
		probe:     probe,
		userAgent: userAgent,
	}, nil
}

// Run executes the full audit and returns the report. If the main page
// cannot be fetched, the report carries only the fetch failure.
func (a *Auditor) Run(ctx context.Context) *Report {
	html, err := a.fetch(ctx, a.baseURL)
	if err != nil {
		a.addIssue(&a.issues.High, fmt.Sprintf("Failed to fetch URL: %s - %v", a.baseURL, err))
		return a.report()
	}

	a.checkHTTPS(ctx)
	a.checkRobotsTxt(ctx)
	a.checkMetaTags(html)
	a.checkHeadingStructure(html)
	a.checkImages(html)

	return a.report()
}

func (a *Auditor) fetch(ctx context.Context, target string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", a.userAgent)

	resp, err := a.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// checkHTTPS flags plain-HTTP sites, and for HTTPS sites probes whether
// the HTTP variant redirects to HTTPS. Probe failures are ignored since
// many sites do not serve port 80 at all.
func (a *Auditor) checkHTTPS(ctx context.Context) {
	if a.parsed.Scheme != "https" {
		a.addIssue(&a.issues.Critical, "Site not using HTTPS - major security and SEO issue")
		return
	}

	httpURL := strings.Replace(a.baseURL, "https://", "http://", 1)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, httpURL, nil)
	if err != nil {
		return
	}
	resp, err := a.probe.Do(req)
	if err != nil {
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 400 && resp.Request.URL.Scheme == "http" {
		a.addIssue(&a.issues.High, "HTTP version does not redirect to HTTPS")
	}
}

func (a *Auditor) checkRobotsTxt(ctx context.Context) {
	robotsURL := a.parsed.Scheme + "://" + a.parsed.Host + "/robots.txt"
	content, err := a.fetch(ctx, robotsURL)
	if err != nil || content == "" {
		a.addIssue(&a.issues.Medium, "No robots.txt file found")
		return
	}

	lower := strings.ToLower(content)
	if !strings.Contains(lower, "sitemap:") {
		a.addIssue(&a.issues.High, "Robots.txt missing Sitemap reference")
	}
	if strings.Contains(lower, "disallow: /") && !strings.Contains(lower, "allow:") {
		a.addIssue(&a.issues.Critical, "Robots.txt may be blocking entire site")
	}

	a.metrics.RobotsTxt = &RobotsMetrics{
		Exists:     true,
		HasSitemap: strings.Contains(lower, "sitemap:"),
		SizeBytes:  len(content),
	}
}

func (a *Auditor) checkMetaTags(html string) {
	lower := strings.ToLower(html)

	if m := titleRe.FindStringSubmatch(html); m != nil {
		title := strings.TrimSpace(m[1])
		length := len(title)
		switch {
		case length == 0:
			a.addIssue(&a.issues.Critical, "Empty title tag")
		case length < 30:
			a.addIssue(&a.issues.High, fmt.Sprintf("Title tag too short (%d chars, recommend 50-60)", length))
		case length > 60:
			a.addIssue(&a.issues.Medium, fmt.Sprintf("Title tag may be truncated (%d chars)", length))
		}
		a.metrics.Title = &TagMetrics{Text: title, Length: length}
	} else {
		a.addIssue(&a.issues.Critical, "Missing title tag")
	}

	if m := descRe.FindStringSubmatch(html); m != nil {
		desc := strings.TrimSpace(m[1])
		length := len(desc)
		switch {
		case length < 120:
			a.addIssue(&a.issues.Medium, fmt.Sprintf("Meta description short (%d chars, recommend 150-160)", length))
		case length > 160:
			a.addIssue(&a.issues.Low, fmt.Sprintf("Meta description may be truncated (%d chars)", length))
		}
		a.metrics.Description = &TagMetrics{Text: desc, Length: length}
	} else {
		a.addIssue(&a.issues.High, "Missing meta description")
	}

	if !strings.Contains(lower, `name="viewport"`) {
		a.addIssue(&a.issues.Critical, "Missing viewport meta tag - mobile rendering may fail")
	}

	if strings.Contains(lower, `name="robots"`) && strings.Contains(lower, "noindex") {
		a.addIssue(&a.issues.Critical, "Page has noindex meta tag - will not be indexed")
	}

	if m := canonicalRe.FindStringSubmatch(html); m != nil {
		a.metrics.Canonical = m[1]
	} else {
		a.addIssue(&a.issues.Medium, "Missing canonical tag")
	}
}

func (a *Auditor) checkHeadingStructure(html string) {
	h1s := h1Re.FindAllStringSubmatch(html, -1)

	if len(h1s) == 0 {
		a.addIssue(&a.issues.High, "Missing H1 heading")
	} else if len(h1s) > 1 {
		a.addIssue(&a.issues.Medium, fmt.Sprintf("Multiple H1 tags found (%d), should have only one", len(h1s)))
	}

	prevLevel := 0
	for _, m := range headingRe.FindAllStringSubmatch(html, -1) {
		level, _ := strconv.Atoi(m[1])
		if level > prevLevel+1 {
			a.addIssue(&a.issues.Low, fmt.Sprintf("Heading hierarchy skip detected (H%d to H%d)", prevLevel, level))
		}
		prevLevel = level
	}

	headings := &HeadingMetrics{H1Count: len(h1s)}
	if len(h1s) > 0 {
		headings.H1Text = h1s[0][1]
	}
	a.metrics.Headings = headings
}

func (a *Auditor) checkImages(html string) {
	imgs := imgRe.FindAllString(html, -1)

	missingAlt := 0
	for _, img := range imgs {
		if !strings.Contains(strings.ToLower(img), "alt=") {
			missingAlt++
		}
	}
	if missingAlt > 0 {
		a.addIssue(&a.issues.Medium,
			fmt.Sprintf("%d images missing alt attributes (accessibility and SEO issue)", missingAlt))
	}

	a.metrics.Images = &ImageMetrics{TotalCount: len(imgs), MissingAlt: missingAlt}
}

func (a *Auditor) addIssue(bucket *[]string, description string) {
	*bucket = append(*bucket, description)
}

func (a *Auditor) report() *Report {
	// Empty buckets serialize as [] rather than null.
	for _, bucket := range []*[]string{&a.issues.Critical, &a.issues.High, &a.issues.Medium, &a.issues.Low} {
		if *bucket == nil {
			*bucket = []string{}
		}
	}

	return &Report{
		RunID:       uuid.NewString(),
		URL:         a.baseURL,
		GeneratedAt: time.Now().UTC(),
		HealthScore: a.issues.healthScore(),
		TotalIssues: a.issues.total(),
		IssuesBySeverity: IssueCounts{
			Critical: len(a.issues.Critical),
			High:     len(a.issues.High),
			Medium:   len(a.issues.Medium),
			Low:      len(a.issues.Low),
		},
		Issues:          a.issues,
		Metrics:         a.metrics,
		Recommendations: a.issues.recommendations(),
	}
}
