package gemini

import (
	"encoding/json"
	"strings"

	"github.com/gubermangroup/fundmatch/internal/overlap"
)

// fallbackLineLimit caps how many companies the line-splitting fallback will
// extract from a response that failed JSON extraction.
const fallbackLineLimit = 30

// cleanJSON strips markdown code fences a model sometimes wraps around JSON
// output, despite being told not to.
func cleanJSON(input string) string {
	clean := strings.TrimSpace(input)

	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")

	clean = strings.TrimSuffix(clean, "```")

	return strings.TrimSpace(clean)
}

type portfolioItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// ExtractCompanies pulls a portfolio-company list out of unstructured model
// output. Primary path: the substring from the first '[' to the last ']' is
// deserialized as a JSON array. Fallback: every non-empty line without a
// bracket character is treated as one company name, with a leading "- "
// bullet stripped, capped at fallbackLineLimit lines.
//
// This is a best-effort decoder: a literal bracket inside a description will
// corrupt the primary extraction, and the fallback then takes over.
func ExtractCompanies(text string) []overlap.PortfolioCompany {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")

	if start >= 0 && end > start {
		var items []portfolioItem
		if err := json.Unmarshal([]byte(text[start:end+1]), &items); err == nil {
			out := make([]overlap.PortfolioCompany, 0, len(items))
			for _, item := range items {
				name := item.Name
				if name == "" {
					name = "Unknown"
				}
				out = append(out, overlap.PortfolioCompany{
					Name:        name,
					Description: item.Description,
					URL:         item.URL,
				})
			}
			return out
		}
	}

	var out []overlap.PortfolioCompany
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.ContainsAny(line, "[]") {
			continue
		}
		name := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "- "))
		out = append(out, overlap.PortfolioCompany{Name: name})
		if len(out) == fallbackLineLimit {
			break
		}
	}
	return out
}
