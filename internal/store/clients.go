// Package store keeps all application state in memory. Nothing here touches
// disk: closing the process discards clients, funds and matches.
package store

import (
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/gubermangroup/fundmatch/internal/overlap"
)

// demoClients is the fixed demo set, mixed Hebrew/English on purpose.
var demoClients = []string{
	"Wiz",
	"monday.com",
	"רפאל מערכות",
	"Gong.io",
	"Bringg",
	"Papaya Global",
	"בנק הפועלים",
	"Melio",
	"StarkWare",
	"Armis Security",
}

// ClientStore is an ordered in-memory client list. All methods are safe for
// concurrent use; handlers are the only writers.
type ClientStore struct {
	mu      sync.RWMutex
	clients []overlap.Client
}

func NewClientStore() *ClientStore {
	return &ClientStore{}
}

// AddNames appends one client per name, in input order, tagged with source.
// No de-duplication against existing entries.
func (s *ClientStore) AddNames(names []string, source overlap.Source) []overlap.Client {
	added := make([]overlap.Client, 0, len(names))
	for _, name := range names {
		added = append(added, overlap.Client{
			ID:     uuid.New(),
			Name:   name,
			Source: source,
		})
	}

	s.mu.Lock()
	s.clients = append(s.clients, added...)
	s.mu.Unlock()
	return added
}

// AddFromText splits free text on newlines and commas, trims each token, drops
// empties, and appends the rest as manual entries.
func (s *ClientStore) AddFromText(text string) []overlap.Client {
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == ','
	})
	names := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		names = append(names, tok)
	}
	if len(names) == 0 {
		return nil
	}
	return s.AddNames(names, overlap.SourceManual)
}

// LoadDemo appends the fixed demo client set.
func (s *ClientStore) LoadDemo() []overlap.Client {
	return s.AddNames(demoClients, overlap.SourceDemo)
}

// List returns a copy of the current client list in insertion order.
func (s *ClientStore) List() []overlap.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]overlap.Client, len(s.clients))
	copy(out, s.clients)
	return out
}

func (s *ClientStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// ClearAll empties the list unconditionally.
func (s *ClientStore) ClearAll() {
	s.mu.Lock()
	s.clients = nil
	s.mu.Unlock()
}

// ClearImported removes only file-imported clients, leaving manual and demo
// entries in place. Idempotent.
func (s *ClientStore) ClearImported() {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.clients[:0]
	for _, c := range s.clients {
		if c.Source != overlap.SourceFile {
			kept = append(kept, c)
		}
	}
	s.clients = kept
}

// HasImported reports whether any client came from a file import.
func (s *ClientStore) HasImported() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.clients {
		if c.Source == overlap.SourceFile {
			return true
		}
	}
	return false
}
