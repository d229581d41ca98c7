package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gubermangroup/fundmatch/internal/overlap"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// FundListResponse is the response body for GET /api/v1/funds.
type FundListResponse struct {
	Funds []overlap.Fund `json:"funds"`
	Count int            `json:"count"`
}

// AddFundRequest is the request body for POST /api/v1/funds.
type AddFundRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleListFunds(c echo.Context) error {
	funds := s.funds.List()
	return c.JSON(http.StatusOK, FundListResponse{Funds: funds, Count: len(funds)})
}

// handleAddFund registers the fund in status "searching" and answers
// immediately; the portfolio scan runs in the background and updates the fund
// by identifier when it returns. A failed or empty scan leaves the fund in
// status "error" and the user retries by re-adding it.
func (s *Server) handleAddFund(c echo.Context) error {
	var req AddFundRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "fund name is required")
	}

	fund := s.funds.Add(name)
	go s.scanPortfolio(fund.ID, fund.Name)

	return c.JSON(http.StatusAccepted, fund)
}

// scanPortfolio performs one portfolio retrieval for a newly added fund.
// No retries and no application-level timeout: the call runs to completion or
// failure, and a failure is surfaced only as the fund's error status.
func (s *Server) scanPortfolio(id uuid.UUID, name string) {
	portfolio, err := s.matcher.RetrievePortfolio(context.Background(), name)
	if err != nil {
		s.logger.Warn("portfolio scan failed",
			zap.String("fund", name),
			zap.Error(err),
		)
		s.funds.Fail(id)
		return
	}
	// Empty result and failure collapse into the same error status.
	s.funds.Complete(id, portfolio)
}

func (s *Server) handleRemoveFund(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid fund id")
	}
	if !s.funds.Remove(id) {
		return echo.NewHTTPError(http.StatusNotFound, "fund not found")
	}
	s.logger.Info("fund removed", zap.String("id", id.String()))
	return c.NoContent(http.StatusNoContent)
}
