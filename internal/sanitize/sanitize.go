// Package sanitize cleans priority labels and descriptions before they reach
// a page. Both come from the event_priorities table, which operators edit by
// hand, so neither is trusted.
package sanitize

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	richPolicy  *bluemonday.Policy
	plainPolicy *bluemonday.Policy
	policyOnce  sync.Once
)

// policies returns the shared policies, initializing them on first call.
func policies() (*bluemonday.Policy, *bluemonday.Policy) {
	policyOnce.Do(func() {
		// Descriptions may carry light inline formatting.
		richPolicy = bluemonday.NewPolicy()
		richPolicy.AllowElements("b", "strong", "i", "em", "u", "br", "span", "code")
		richPolicy.AllowAttrs("class").OnElements("span")

		plainPolicy = bluemonday.StrictPolicy()
	})
	return richPolicy, plainPolicy
}

// HTML strips everything from input except a small set of inline formatting
// tags. The result is safe to write into a page unescaped.
func HTML(input string) string {
	if input == "" {
		return ""
	}
	rich, _ := policies()
	return rich.Sanitize(input)
}

// Text removes all markup from input and returns plain text with entities
// decoded and surrounding whitespace trimmed. The caller must still escape
// the result when rendering it.
func Text(input string) string {
	if input == "" {
		return ""
	}
	_, plain := policies()
	return strings.TrimSpace(html.UnescapeString(plain.Sanitize(input)))
}
