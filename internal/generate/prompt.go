package generate

import (
	"fmt"
	"strings"
)

// BuildPrompt assembles the SEO prompt from the form inputs. The client
// normally sends a finished prompt; this covers API callers that only
// supply keyword and urls.
func BuildPrompt(keyword, urls, feature string) string {
	var featureSection string
	if strings.TrimSpace(feature) != "" {
		featureSection = fmt.Sprintf("\nKey Features: %s", feature)
	}

	return fmt.Sprintf(`I want you to generate SEO-optimized content for a FiveM MLO digital product.

Use the following inputs:

Focus Keyword: **%s**
Reference URLs: %s%s

Make sure:
- The **title** is clear and includes the keyword.
- The **meta description** is attractive and under 160 characters.
- The **description** is detailed (300-600 words), describing the MLO features and benefits.
- The **tags** are comma-separated keywords relevant to FiveM and the product.
- Use a realistic **price** based on the URLs in the $4-$40 range.
- The **category** is appropriate for the product type (e.g., Police Station, Hospital, Club).

Return only the JavaScript object as plain text. No explanation, no code block formatting.`,
		keyword, urls, featureSection)
}
