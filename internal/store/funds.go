package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gubermangroup/fundmatch/internal/overlap"
)

// FundStore is an ordered in-memory list of tracked funds. Scan completions
// update funds by identifier, so reordering or removals in the interim are
// harmless.
type FundStore struct {
	mu    sync.RWMutex
	funds []overlap.Fund
}

func NewFundStore() *FundStore {
	return &FundStore{}
}

// Add appends a new fund in status "searching" with an empty portfolio and
// returns it. The caller is expected to kick off a portfolio scan.
func (s *FundStore) Add(name string) overlap.Fund {
	fund := overlap.Fund{
		ID:        uuid.New(),
		Name:      name,
		Status:    overlap.StatusSearching,
		Portfolio: []overlap.PortfolioCompany{},
	}
	s.mu.Lock()
	s.funds = append(s.funds, fund)
	s.mu.Unlock()
	return fund
}

// Complete records the outcome of a portfolio scan for the fund with the given
// id. A non-empty portfolio moves the fund to "completed"; an empty one is
// indistinguishable from a failed scan and moves it to "error". Returns false
// if the fund was removed while the scan was in flight.
func (s *FundStore) Complete(id uuid.UUID, portfolio []overlap.PortfolioCompany) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.funds {
		if s.funds[i].ID != id {
			continue
		}
		now := time.Now()
		s.funds[i].Portfolio = portfolio
		s.funds[i].LastUpdated = &now
		if len(portfolio) > 0 {
			s.funds[i].Status = overlap.StatusCompleted
		} else {
			s.funds[i].Status = overlap.StatusError
		}
		return true
	}
	return false
}

// Fail marks the fund with the given id as errored. Returns false if the fund
// no longer exists.
func (s *FundStore) Fail(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.funds {
		if s.funds[i].ID == id {
			s.funds[i].Status = overlap.StatusError
			return true
		}
	}
	return false
}

// Remove deletes the fund with the given id, whatever its status.
func (s *FundStore) Remove(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.funds {
		if s.funds[i].ID == id {
			s.funds = append(s.funds[:i], s.funds[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the fund with the given id.
func (s *FundStore) Get(id uuid.UUID) (overlap.Fund, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, f := range s.funds {
		if f.ID == id {
			return copyFund(f), true
		}
	}
	return overlap.Fund{}, false
}

// List returns a copy of all funds in insertion order.
func (s *FundStore) List() []overlap.Fund {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]overlap.Fund, 0, len(s.funds))
	for _, f := range s.funds {
		out = append(out, copyFund(f))
	}
	return out
}

// WithPortfolio returns, in stored order, the funds whose portfolio is
// non-empty. These are the funds eligible for overlap analysis.
func (s *FundStore) WithPortfolio() []overlap.Fund {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []overlap.Fund
	for _, f := range s.funds {
		if len(f.Portfolio) > 0 {
			out = append(out, copyFund(f))
		}
	}
	return out
}

func copyFund(f overlap.Fund) overlap.Fund {
	portfolio := make([]overlap.PortfolioCompany, len(f.Portfolio))
	copy(portfolio, f.Portfolio)
	f.Portfolio = portfolio
	return f
}
