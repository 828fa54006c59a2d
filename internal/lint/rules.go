// Package lint implements the touch-target and mobile-first CSS/HTML
// validators. Both run fixed regex patterns over raw file content and compare
// extracted values against configurable thresholds.
package lint

import (
	"embed"
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

//go:embed rules.toml
var defaultRulesFS embed.FS

// Rules is the complete TOML pattern configuration for both validators.
type Rules struct {
	TouchTargets TouchTargetRules `toml:"touch_targets"`
	MobileFirst  MobileFirstRules `toml:"mobile_first"`
	Shared       SharedRules      `toml:"shared"`
}

// TouchTargetRules holds the extraction patterns for the touch-target check.
type TouchTargetRules struct {
	InteractiveBlocks []string `toml:"interactive_blocks"`
	Width             string   `toml:"width"`
	Height            string   `toml:"height"`
	Padding           string   `toml:"padding"`
	Gap               string   `toml:"gap"`
	InteractiveTags   string   `toml:"interactive_tags"`

	// Compiled regexes (not in TOML)
	blockRegexes []*regexp.Regexp
	widthRegex   *regexp.Regexp
	heightRegex  *regexp.Regexp
	paddingRegex *regexp.Regexp
	gapRegex     *regexp.Regexp
	tagsRegex    *regexp.Regexp
}

// MobileFirstRules holds the extraction patterns for the mobile-first check.
type MobileFirstRules struct {
	MaxWidthQuery string `toml:"max_width_query"`
	MinWidthQuery string `toml:"min_width_query"`
	FixedWidth    string `toml:"fixed_width"`
	FontSize      string `toml:"font_size"`
	SmallTarget   string `toml:"small_target"`
	ImgTag        string `toml:"img_tag"`

	// Compiled regexes (not in TOML)
	maxWidthRegex    *regexp.Regexp
	minWidthRegex    *regexp.Regexp
	fixedWidthRegex  *regexp.Regexp
	fontSizeRegex    *regexp.Regexp
	smallTargetRegex *regexp.Regexp
	imgTagRegex      *regexp.Regexp
}

// SharedRules holds patterns used by both validators.
type SharedRules struct {
	StyleBlock string `toml:"style_block"`

	styleBlockRegex *regexp.Regexp
}

// LoadRules loads and compiles the lint rule patterns. An empty path loads
// the embedded defaults; a missing user file falls back to them as well.
func LoadRules(path string) (*Rules, error) {
	var data []byte
	var err error

	if path == "" || !fileExists(path) {
		data, err = defaultRulesFS.ReadFile("rules.toml")
		if err != nil {
			return nil, fmt.Errorf("failed to load default rules: %w", err)
		}
	} else {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read rules file %s: %w", path, err)
		}
	}

	var rules Rules
	if err := toml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse rules TOML: %w", err)
	}
	if err := rules.compile(); err != nil {
		return nil, fmt.Errorf("failed to compile rule patterns: %w", err)
	}
	return &rules, nil
}

// DefaultRules loads the embedded rule set.
func DefaultRules() (*Rules, error) {
	return LoadRules("")
}

func (r *Rules) compile() error {
	tt := &r.TouchTargets
	tt.blockRegexes = make([]*regexp.Regexp, len(tt.InteractiveBlocks))
	for i, pattern := range tt.InteractiveBlocks {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return fmt.Errorf("touch_targets.interactive_blocks[%d]: %w", i, err)
		}
		tt.blockRegexes[i] = re
	}

	var err error
	for _, p := range []struct {
		name    string
		pattern string
		dst     **regexp.Regexp
	}{
		{"touch_targets.width", tt.Width, &tt.widthRegex},
		{"touch_targets.height", tt.Height, &tt.heightRegex},
		{"touch_targets.padding", tt.Padding, &tt.paddingRegex},
		{"touch_targets.gap", tt.Gap, &tt.gapRegex},
		{"touch_targets.interactive_tags", tt.InteractiveTags, &tt.tagsRegex},
		{"mobile_first.max_width_query", r.MobileFirst.MaxWidthQuery, &r.MobileFirst.maxWidthRegex},
		{"mobile_first.min_width_query", r.MobileFirst.MinWidthQuery, &r.MobileFirst.minWidthRegex},
		{"mobile_first.fixed_width", r.MobileFirst.FixedWidth, &r.MobileFirst.fixedWidthRegex},
		{"mobile_first.font_size", r.MobileFirst.FontSize, &r.MobileFirst.fontSizeRegex},
		{"mobile_first.small_target", r.MobileFirst.SmallTarget, &r.MobileFirst.smallTargetRegex},
		{"mobile_first.img_tag", r.MobileFirst.ImgTag, &r.MobileFirst.imgTagRegex},
		{"shared.style_block", r.Shared.StyleBlock, &r.Shared.styleBlockRegex},
	} {
		if *p.dst, err = regexp.Compile(p.pattern); err != nil {
			return fmt.Errorf("%s: %w", p.name, err)
		}
	}
	return nil
}

// StyleBlocks extracts the contents of <style> tags from an HTML document.
func (r *Rules) StyleBlocks(html string) []string {
	var blocks []string
	for _, m := range r.Shared.styleBlockRegex.FindAllStringSubmatch(html, -1) {
		blocks = append(blocks, m[1])
	}
	return blocks
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
