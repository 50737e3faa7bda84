package generate

import (
	"regexp"
	"strings"

	json "github.com/goccy/go-json"
)

// Gemini often wraps its JSON answer in documentation-style code fences,
// optionally tagged javascript or json.
var (
	leadingFence  = regexp.MustCompile("^```(?:javascript|json)?\\s*\n?")
	trailingFence = regexp.MustCompile("```\\s*$")
)

// StripFences removes a leading and trailing code-fence marker and trims
// whitespace. Text without fences passes through unchanged.
func StripFences(text string) string {
	text = leadingFence.ReplaceAllString(text, "")
	text = trailingFence.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// ParseContent parses cleaned provider text as JSON. It never fails: on
// malformed input it returns a fallback object preserving the raw text and
// the failure reason, so the record can always be persisted.
func ParseContent(text string) interface{} {
	var parsed interface{}
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return map[string]interface{}{
			"error": "Malformed content from Gemini API",
			"raw":   text,
		}
	}
	return parsed
}
