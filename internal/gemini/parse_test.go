package gemini

import (
	"testing"

	"github.com/gubermangroup/fundmatch/internal/overlap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain json untouched", `[{"a":1}]`, `[{"a":1}]`},
		{"json fence stripped", "```json\n[1,2]\n```", "[1,2]"},
		{"bare fence stripped", "```\n[1]\n```", "[1]"},
		{"surrounding whitespace trimmed", "  [1] \n", "[1]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanJSON(tt.input))
		})
	}
}

func TestExtractCompanies(t *testing.T) {
	t.Run("parses trailing json array", func(t *testing.T) {
		text := `Here are the portfolio companies I found.

[{"name": "Wiz", "description": "Cloud security", "url": "https://wiz.io"}, {"name": "Melio"}]`

		got := ExtractCompanies(text)
		require.Len(t, got, 2)
		assert.Equal(t, overlap.PortfolioCompany{
			Name:        "Wiz",
			Description: "Cloud security",
			URL:         "https://wiz.io",
		}, got[0])
		assert.Equal(t, "Melio", got[1].Name)
	})

	t.Run("missing name defaults to Unknown", func(t *testing.T) {
		got := ExtractCompanies(`[{"description": "stealth startup"}]`)
		require.Len(t, got, 1)
		assert.Equal(t, "Unknown", got[0].Name)
	})

	t.Run("whole array including prose between brackets", func(t *testing.T) {
		// First '[' to last ']' spans the array even with prose after it,
		// as long as no later bracket appears.
		text := `intro [{"name": "Gong"}] `
		got := ExtractCompanies(text)
		require.Len(t, got, 1)
		assert.Equal(t, "Gong", got[0].Name)
	})

	t.Run("nested brackets corrupt extraction and trigger fallback", func(t *testing.T) {
		text := "note [see below]\n- Wiz\n- Melio\n"
		got := ExtractCompanies(text)
		require.Len(t, got, 2)
		assert.Equal(t, "Wiz", got[0].Name)
		assert.Equal(t, "Melio", got[1].Name)
	})

	t.Run("fallback splits lines and strips bullets", func(t *testing.T) {
		text := "Companies:\n- Wiz\n\n- monday.com\nGong.io\n"
		got := ExtractCompanies(text)
		require.Len(t, got, 4)
		assert.Equal(t, "Companies:", got[0].Name)
		assert.Equal(t, "Wiz", got[1].Name)
		assert.Equal(t, "monday.com", got[2].Name)
		assert.Equal(t, "Gong.io", got[3].Name)
	})

	t.Run("fallback skips lines containing brackets", func(t *testing.T) {
		text := "bad json here [\n- Wiz\n] trailing\n"
		got := ExtractCompanies(text)
		require.Len(t, got, 1)
		assert.Equal(t, "Wiz", got[0].Name)
	})

	t.Run("fallback caps at thirty lines", func(t *testing.T) {
		var text string
		for i := 0; i < 40; i++ {
			text += "- Company\n"
		}
		got := ExtractCompanies("{ not an array\n" + text)
		assert.Len(t, got, 30)
	})

	t.Run("empty input yields nothing", func(t *testing.T) {
		assert.Empty(t, ExtractCompanies(""))
		assert.Empty(t, ExtractCompanies("   \n \n"))
	})

	t.Run("empty json array yields zero companies", func(t *testing.T) {
		assert.Empty(t, ExtractCompanies("No portfolio found. []"))
	})
}
