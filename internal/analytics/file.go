package analytics

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Event is a single tracking-plan entry. Property values are ignored; only
// the names are validated.
type Event struct {
	Name       string                 `json:"name"`
	Properties map[string]interface{} `json:"properties"`
}

type eventsFile struct {
	Events []Event `json:"events"`
}

// PropertyResult reports validation findings for one property name. Only
// properties with errors or warnings are recorded.
type PropertyResult struct {
	Property string   `json:"property"`
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// EventResult aggregates name and property findings for one event.
type EventResult struct {
	EventName       string           `json:"event_name"`
	Valid           bool             `json:"valid"`
	NameErrors      []string         `json:"name_errors"`
	NameWarnings    []string         `json:"name_warnings"`
	PropertyResults []PropertyResult `json:"property_results"`
}

// FileResults summarizes a full tracking-plan validation run.
type FileResults struct {
	TotalEvents        int           `json:"total_events"`
	ValidEvents        int           `json:"valid_events"`
	EventsWithWarnings int           `json:"events_with_warnings"`
	EventsWithErrors   int           `json:"events_with_errors"`
	EventResults       []EventResult `json:"event_results"`
}

// ValidateEvents validates a slice of events.
func ValidateEvents(events []Event) *FileResults {
	results := &FileResults{
		TotalEvents:  len(events),
		EventResults: make([]EventResult, 0, len(events)),
	}

	for _, event := range events {
		nameResult := ValidateEventName(event.Name)

		// Sorted for deterministic output.
		propNames := make([]string, 0, len(event.Properties))
		for name := range event.Properties {
			propNames = append(propNames, name)
		}
		sort.Strings(propNames)

		var propResults []PropertyResult
		propsValid := true
		propsWarned := false
		for _, propName := range propNames {
			pr := ValidatePropertyName(propName)
			if !pr.Valid || len(pr.Warnings) > 0 {
				propResults = append(propResults, PropertyResult{
					Property: propName,
					Valid:    pr.Valid,
					Errors:   pr.Errors,
					Warnings: pr.Warnings,
				})
			}
			if !pr.Valid {
				propsValid = false
			}
			if len(pr.Warnings) > 0 {
				propsWarned = true
			}
		}

		hasErrors := !nameResult.Valid || !propsValid
		hasWarnings := len(nameResult.Warnings) > 0 || propsWarned

		if hasErrors {
			results.EventsWithErrors++
		} else {
			results.ValidEvents++
		}
		if hasWarnings {
			results.EventsWithWarnings++
		}

		results.EventResults = append(results.EventResults, EventResult{
			EventName:       event.Name,
			Valid:           !hasErrors,
			NameErrors:      nameResult.Errors,
			NameWarnings:    nameResult.Warnings,
			PropertyResults: propResults,
		})
	}

	return results
}

// ValidateEventsFile validates a tracking plan JSON file of the form
// {"events": [{"name": ..., "properties": {...}}]}.
func ValidateEventsFile(path string) (*FileResults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var file eventsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("invalid JSON in %s: %w", path, err)
	}

	return ValidateEvents(file.Events), nil
}
