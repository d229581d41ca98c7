package store

import (
	"testing"

	"github.com/gubermangroup/fundmatch/internal/overlap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFromText(t *testing.T) {
	t.Run("splits on newlines and commas", func(t *testing.T) {
		s := NewClientStore()
		added := s.AddFromText("Wiz\nmonday.com, Check Point Software\n")

		require.Len(t, added, 3)
		assert.Equal(t, "Wiz", added[0].Name)
		assert.Equal(t, "monday.com", added[1].Name)
		assert.Equal(t, "Check Point Software", added[2].Name)
		for _, c := range added {
			assert.Equal(t, overlap.SourceManual, c.Source)
			assert.NotEmpty(t, c.ID)
		}
	})

	t.Run("drops empty tokens and trims whitespace", func(t *testing.T) {
		s := NewClientStore()
		added := s.AddFromText("  Wiz  ,,\n\n ,  \n לאומי ")

		require.Len(t, added, 2)
		assert.Equal(t, "Wiz", added[0].Name)
		assert.Equal(t, "לאומי", added[1].Name)
	})

	t.Run("blank input adds nothing", func(t *testing.T) {
		s := NewClientStore()
		assert.Empty(t, s.AddFromText(" \n , \n"))
		assert.Equal(t, 0, s.Len())
	})

	t.Run("preserves input order and allows duplicates", func(t *testing.T) {
		s := NewClientStore()
		s.AddFromText("Wiz")
		s.AddFromText("Wiz, Melio")

		list := s.List()
		require.Len(t, list, 3)
		assert.Equal(t, "Wiz", list[0].Name)
		assert.Equal(t, "Wiz", list[1].Name)
		assert.Equal(t, "Melio", list[2].Name)
	})
}

func TestLoadDemo(t *testing.T) {
	s := NewClientStore()
	added := s.LoadDemo()

	require.Len(t, added, 10)
	assert.Equal(t, "Wiz", added[0].Name)
	assert.Equal(t, "רפאל מערכות", added[2].Name)
	for _, c := range added {
		assert.Equal(t, overlap.SourceDemo, c.Source)
	}

	// Demo load appends, it does not replace.
	s.LoadDemo()
	assert.Equal(t, 20, s.Len())
}

func TestClearAll(t *testing.T) {
	s := NewClientStore()
	s.AddFromText("Wiz, Melio")
	s.AddNames([]string{"StarkWare"}, overlap.SourceFile)

	s.ClearAll()
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.HasImported())
}

func TestClearImported(t *testing.T) {
	t.Run("removes only file-sourced clients", func(t *testing.T) {
		s := NewClientStore()
		s.AddFromText("Wiz")
		s.AddNames([]string{"Imported A", "Imported B"}, overlap.SourceFile)
		s.LoadDemo()

		require.True(t, s.HasImported())
		s.ClearImported()

		assert.False(t, s.HasImported())
		assert.Equal(t, 11, s.Len())
		assert.Equal(t, "Wiz", s.List()[0].Name)
	})

	t.Run("is idempotent", func(t *testing.T) {
		s := NewClientStore()
		s.AddFromText("Wiz")
		s.AddNames([]string{"Imported"}, overlap.SourceFile)

		s.ClearImported()
		once := s.List()
		s.ClearImported()
		twice := s.List()

		assert.Equal(t, once, twice)
	})
}

func TestListReturnsCopy(t *testing.T) {
	s := NewClientStore()
	s.AddFromText("Wiz")

	list := s.List()
	list[0].Name = "mutated"

	assert.Equal(t, "Wiz", s.List()[0].Name)
}
