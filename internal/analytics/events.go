// Package analytics validates analytics event and property names against the
// tracking-plan naming conventions: Title Case events, snake_case properties,
// past-tense verbs.
package analytics

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	titleCaseRe      = regexp.MustCompile(`^([A-Z][a-z]*\s*)+$`)
	snakeCaseRe      = regexp.MustCompile(`^[a-z][a-z0-9]*(_[a-z0-9]+)*$`)
	categoryPrefixRe = regexp.MustCompile(`^[a-z]+:\s+([A-Z][a-z]*\s*)+$`)
	camelCaseRe      = regexp.MustCompile(`[a-z][A-Z]`)
)

// Past-tense verbs are the recommended convention for event names.
var pastTenseVerbs = map[string]bool{
	"added": true, "clicked": true, "viewed": true, "completed": true,
	"started": true, "submitted": true, "created": true, "updated": true,
	"deleted": true, "shared": true, "exported": true, "imported": true,
	"searched": true, "filtered": true, "logged": true, "signed": true,
	"purchased": true, "upgraded": true, "downgraded": true, "canceled": true,
	"renewed": true, "failed": true, "succeeded": true,
}

var presentTenseVerbs = map[string]bool{
	"add": true, "click": true, "view": true, "complete": true,
	"start": true, "submit": true, "create": true, "update": true,
	"delete": true, "share": true, "export": true, "import": true,
}

var forbiddenChars = []string{"_", "-", ".", ",", "!", "?", "@", "#", "$", "%"}

var recommendedSuffixes = []string{"_id", "_name", "_at", "_count", "_usd", "_seconds", "_ms"}

var booleanPrefixes = []string{"is_", "has_", "can_", "should_"}

// NameResult is the outcome of validating a single event or property name.
type NameResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// ValidateEventName checks an event name against the conventions: Title Case
// (or "category: Title Case"), no forbidden characters, past-tense verbs,
// reasonable length.
func ValidateEventName(name string) NameResult {
	var errors, warnings []string

	if strings.TrimSpace(name) == "" {
		return NameResult{Errors: []string{"Event name is empty"}}
	}

	if strings.Contains(name, ":") {
		if !categoryPrefixRe.MatchString(name) {
			errors = append(errors, "Category format invalid. Use format: 'category: Object Action'")
		}
	} else if !titleCaseRe.MatchString(name) {
		errors = append(errors, "Event name must be Title Case (e.g., 'Product Added')")
	}

	var offending []string
	for _, c := range forbiddenChars {
		if strings.Contains(name, c) {
			offending = append(offending, c)
		}
	}
	if len(offending) > 0 {
		errors = append(errors, "Event name contains forbidden characters: "+strings.Join(offending, ", "))
	}

	words := strings.Fields(strings.ReplaceAll(strings.ToLower(name), ":", ""))
	for _, w := range words {
		if presentTenseVerbs[w] {
			warnings = append(warnings, "Event uses present tense verb. Past tense is recommended for consistency")
			break
		}
	}

	if len(name) > 50 {
		warnings = append(warnings, fmt.Sprintf("Event name is long (%d chars). Consider shortening", len(name)))
	}

	wordCount := len(strings.Fields(name))
	if wordCount > 5 {
		warnings = append(warnings, fmt.Sprintf("Event name has %d words. Consider simplifying", wordCount))
	} else if wordCount < 2 && !strings.Contains(name, ":") {
		warnings = append(warnings, "Event name should include both Object and Action")
	}

	return NameResult{Valid: len(errors) == 0, Errors: errors, Warnings: warnings}
}

// ValidatePropertyName checks a property name for snake_case and the common
// naming conventions around underscores and suffixes.
func ValidatePropertyName(name string) NameResult {
	var errors, warnings []string

	if strings.TrimSpace(name) == "" {
		return NameResult{Errors: []string{"Property name is empty"}}
	}

	if !snakeCaseRe.MatchString(name) {
		errors = append(errors, "Property name must be snake_case (e.g., 'product_id', 'user_email')")
	}
	if strings.HasPrefix(name, "_") || strings.HasSuffix(name, "_") {
		errors = append(errors, "Property name should not start or end with underscore")
	}
	if strings.Contains(name, "__") {
		errors = append(errors, "Property name should not contain double underscores")
	}
	if camelCaseRe.MatchString(name) {
		errors = append(errors, "Property uses camelCase. Use snake_case instead")
	}

	if len(name) > 50 {
		warnings = append(warnings, fmt.Sprintf("Property name is long (%d chars)", len(name)))
	}

	if strings.Contains(name, "_") && !hasRecommendedSuffix(name) && !isBooleanName(name) {
		warnings = append(warnings, "Consider adding descriptive suffix like _id, _name, _at, _count, etc.")
	}

	return NameResult{Valid: len(errors) == 0, Errors: errors, Warnings: warnings}
}

func hasRecommendedSuffix(name string) bool {
	for _, s := range recommendedSuffixes {
		if strings.HasSuffix(name, s) {
			return true
		}
	}
	return false
}

func isBooleanName(name string) bool {
	for _, p := range booleanPrefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}
