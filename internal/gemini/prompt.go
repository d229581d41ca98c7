package gemini

import (
	"fmt"
	"strings"

	"github.com/gubermangroup/fundmatch/internal/overlap"
)

// portfolioSystemInstruction pins the output contract for the grounded search
// call. A response schema cannot be used together with the search tool, so the
// trailing raw JSON array is requested in prose and parsed best-effort.
func portfolioSystemInstruction() string {
	return `You are a research assistant. You must output the list of companies in a valid JSON array format at the end of your response.
Example format: [{"name": "Company A", "description": "Short description"}, {"name": "Company B"}]
Do not use markdown code blocks like ` + "```json" + `. Just the raw JSON array string.`
}

func portfolioPrompt(fundName string) string {
	return fmt.Sprintf(`Find the comprehensive list of portfolio companies for the Venture Capital fund %q.
Use Google Search to find their official portfolio page, Crunchbase listing, or reputable news sources.
List ALL active portfolio companies you can find, not just the most recent ones.
Try to capture the full list.`, fundName)
}

// matchPrompt inlines both name lists and states the matching rules as prose.
// All fuzzy-matching, transliteration and entity-resolution logic lives in the
// model's reading of these rules; there is no local matching algorithm.
func matchPrompt(fundName string, clients []overlap.Client, portfolio []overlap.PortfolioCompany) string {
	clientNames := make([]string, len(clients))
	for i, c := range clients {
		clientNames[i] = c.Name
	}
	portfolioNames := make([]string, len(portfolio))
	for i, p := range portfolio {
		portfolioNames[i] = p.Name
	}

	return fmt.Sprintf(`I have a list of my Clients and a list of Portfolio Companies for the fund %q.

My Clients: [%s]

Portfolio Companies: [%s]

Task: Identify which of my Clients are likely the same entity as a Portfolio Company using advanced fuzzy matching.

CRITICAL MATCHING RULES:
1. **Fuzzy Name Matching**: Detect matches despite misspellings, typos, or character swaps.
   - Example: "Goolge" == "Google", "Sofware" == "Software", "Nvidiaa" == "Nvidia".
2. **Legal Suffix Handling**: Completely ignore legal entity suffixes (Inc, Ltd, GmbH, L.P., Corp, etc.) when comparing.
   - Example: "Wiz Inc." == "Wiz", "Monday Ltd" == "monday.com", "Apple GmbH" == "Apple".
3. **Acronyms & Punctuation**: You MUST match variations with and without dots/hyphens/spaces.
   - Example: "I.v.i.c" == "IVIC", "A.B.C" == "ABC", "T-Mobile" == "TMobile".
4. **Cross-Language Matching**: Handle Hebrew/English equivalents and transliterations.
   - Example: "וויז" == "Wiz", "רפאל" == "Rafael".
5. **Brand vs Legal**: Match subsidiary or legal names to the main brand name.
   - Example: "Facebook Israel Ltd" == "Meta", "Google Israel" == "Alphabet".

If there is a strong phonetic similarity or clear corporate relationship, mark it as a match.

Return a JSON array of matches.`,
		fundName,
		strings.Join(clientNames, ", "),
		strings.Join(portfolioNames, ", "),
	)
}
