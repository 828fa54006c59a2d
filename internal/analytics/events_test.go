package analytics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEventNameValid(t *testing.T) {
	result := ValidateEventName("Product Added")
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
}

func TestValidateEventNameEmpty(t *testing.T) {
	for _, name := range []string{"", "   "} {
		result := ValidateEventName(name)
		assert.False(t, result.Valid)
		require.NotEmpty(t, result.Errors)
		assert.Equal(t, "Event name is empty", result.Errors[0])
	}
}

func TestValidateEventNameNotTitleCase(t *testing.T) {
	result := ValidateEventName("product added")
	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors[0], "Title Case")
}

func TestValidateEventNameCategoryPrefix(t *testing.T) {
	result := ValidateEventName("checkout: Payment Completed")
	assert.True(t, result.Valid)

	bad := ValidateEventName("Checkout: payment completed")
	assert.False(t, bad.Valid)
	assert.Contains(t, bad.Errors[0], "Category format invalid")
}

func TestValidateEventNameForbiddenChars(t *testing.T) {
	result := ValidateEventName("Product_Added!")
	assert.False(t, result.Valid)

	var found bool
	for _, e := range result.Errors {
		if strings.Contains(e, "forbidden characters") {
			found = true
			assert.Contains(t, e, "_")
			assert.Contains(t, e, "!")
		}
	}
	assert.True(t, found, "expected forbidden character error, got %v", result.Errors)
}

func TestValidateEventNamePresentTense(t *testing.T) {
	result := ValidateEventName("Add Product")
	assert.True(t, result.Valid)
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "present tense")
}

func TestValidateEventNameSingleWord(t *testing.T) {
	result := ValidateEventName("Purchased")
	assert.True(t, result.Valid)
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "Object and Action")
}

func TestValidateEventNameTooManyWords(t *testing.T) {
	result := ValidateEventName("User Clicked The Big Red Button")
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[len(result.Warnings)-1], "6 words")
}

func TestValidatePropertyNameValid(t *testing.T) {
	for _, name := range []string{"product_id", "created_at", "item_count", "is_subscribed"} {
		result := ValidatePropertyName(name)
		assert.True(t, result.Valid, "expected %q to be valid: %v", name, result.Errors)
		assert.Empty(t, result.Warnings, "expected %q to have no warnings", name)
	}
}

func TestValidatePropertyNameCamelCase(t *testing.T) {
	result := ValidatePropertyName("productId")
	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors[len(result.Errors)-1], "camelCase")
}

func TestValidatePropertyNameUnderscores(t *testing.T) {
	result := ValidatePropertyName("_private")
	assert.False(t, result.Valid)

	result = ValidatePropertyName("trailing_")
	assert.False(t, result.Valid)

	result = ValidatePropertyName("double__under")
	assert.False(t, result.Valid)
}

func TestValidatePropertyNameSuffixHint(t *testing.T) {
	result := ValidatePropertyName("checkout_step")
	assert.True(t, result.Valid)
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "descriptive suffix")
}

func TestValidateEvents(t *testing.T) {
	events := []Event{
		{Name: "Product Added", Properties: map[string]interface{}{"product_id": "p1"}},
		{Name: "bad name", Properties: map[string]interface{}{"productId": 3}},
		{Name: "Cart Viewed", Properties: map[string]interface{}{"checkout_step": 2}},
	}

	results := ValidateEvents(events)
	assert.Equal(t, 3, results.TotalEvents)
	assert.Equal(t, 2, results.ValidEvents)
	assert.Equal(t, 1, results.EventsWithErrors)
	assert.Equal(t, 1, results.EventsWithWarnings)

	require.Len(t, results.EventResults, 3)
	assert.True(t, results.EventResults[0].Valid)
	assert.False(t, results.EventResults[1].Valid)
	require.Len(t, results.EventResults[1].PropertyResults, 1)
	assert.Equal(t, "productId", results.EventResults[1].PropertyResults[0].Property)
}

func TestValidateEventsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "events.json")
	content := `{"events": [{"name": "Order Completed", "properties": {"order_id": "o1", "total_usd": 99.5}}]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	results, err := ValidateEventsFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, results.TotalEvents)
	assert.Equal(t, 1, results.ValidEvents)
	assert.Equal(t, 0, results.EventsWithErrors)
}

func TestValidateEventsFileBadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "events.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"events": [`), 0644))

	_, err := ValidateEventsFile(path)
	require.Error(t, err)
}

func TestValidateEventsFileMissing(t *testing.T) {
	_, err := ValidateEventsFile("/nonexistent/events.json")
	require.Error(t, err)
}
