package server

import (
	"context"
	"net/http"
	"sync"

	"github.com/gubermangroup/fundmatch/internal/gemini"
	"github.com/gubermangroup/fundmatch/internal/overlap"
	"github.com/gubermangroup/fundmatch/internal/store"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// analysisRunner sequences match calls across funds and keeps the result of
// the latest run. Funds are analyzed one at a time, deliberately not in
// parallel, to stay inside the model provider's rate limits when many funds
// are tracked.
type analysisRunner struct {
	mu      sync.Mutex
	state   overlap.AnalysisState
	matches []overlap.MatchResult

	clients *store.ClientStore
	funds   *store.FundStore
	matcher gemini.MatchingService
	logger  *zap.Logger
}

func newAnalysisRunner(clients *store.ClientStore, funds *store.FundStore, matcher gemini.MatchingService, logger *zap.Logger) *analysisRunner {
	return &analysisRunner{
		state:   overlap.AnalysisNotRun,
		clients: clients,
		funds:   funds,
		matcher: matcher,
		logger:  logger,
	}
}

var (
	errAnalysisRunning = echo.NewHTTPError(http.StatusConflict, "analysis already running")
	errAnalysisPrereqs = echo.NewHTTPError(http.StatusUnprocessableEntity, "add at least one client and one fund with portfolio data")
)

// Run clears the previous results and recomputes all matches from the current
// client and fund state. One invocation at a time; a second concurrent call is
// rejected rather than queued.
func (r *analysisRunner) Run(ctx context.Context) ([]overlap.MatchResult, error) {
	r.mu.Lock()
	if r.state == overlap.AnalysisRunning {
		r.mu.Unlock()
		return nil, errAnalysisRunning
	}

	clients := r.clients.List()
	funds := r.funds.WithPortfolio()
	if len(clients) == 0 || len(funds) == 0 {
		r.mu.Unlock()
		return nil, errAnalysisPrereqs
	}

	r.state = overlap.AnalysisRunning
	r.matches = nil
	r.mu.Unlock()

	all := make([]overlap.MatchResult, 0)
	for _, fund := range funds {
		matches, err := r.matcher.MatchClients(ctx, fund.Name, clients, fund.Portfolio)
		if err != nil {
			// One fund's failure must not abort the rest of the run; it just
			// contributes zero matches.
			r.logger.Warn("match call failed",
				zap.String("fund", fund.Name),
				zap.Error(err),
			)
			continue
		}
		all = append(all, matches...)
	}

	r.mu.Lock()
	r.state = overlap.AnalysisCompleted
	r.matches = all
	r.mu.Unlock()

	r.logger.Info("analysis completed",
		zap.Int("clients", len(clients)),
		zap.Int("funds", len(funds)),
		zap.Int("matches", len(all)),
	)
	return all, nil
}

// Snapshot returns the current state and the matches of the latest run.
func (r *analysisRunner) Snapshot() (overlap.AnalysisState, []overlap.MatchResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	matches := make([]overlap.MatchResult, len(r.matches))
	copy(matches, r.matches)
	return r.state, matches
}

// AnalysisResponse is the response body for the analysis endpoints.
type AnalysisResponse struct {
	State   overlap.AnalysisState `json:"state"`
	Matches []overlap.MatchResult `json:"matches"`
}

func (s *Server) handleGetAnalysis(c echo.Context) error {
	state, matches := s.analysis.Snapshot()
	return c.JSON(http.StatusOK, AnalysisResponse{State: state, Matches: matches})
}

func (s *Server) handleRunAnalysis(c echo.Context) error {
	matches, err := s.analysis.Run(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, AnalysisResponse{
		State:   overlap.AnalysisCompleted,
		Matches: matches,
	})
}
