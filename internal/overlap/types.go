// Package overlap holds the domain types shared by the stores, the Gemini
// adapters and the HTTP layer.
package overlap

import (
	"time"

	"github.com/google/uuid"
)

// Source records where a client entry came from.
type Source string

const (
	SourceManual Source = "manual"
	SourceFile   Source = "file"
	SourceDemo   Source = "demo"
)

// Client is one entry of the user's client list. Names can be Hebrew, English,
// legal names, brand names.
type Client struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Source Source    `json:"source"`
}

// PortfolioCompany is a single investment reported for a fund.
type PortfolioCompany struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
}

// FundStatus tracks the lifecycle of a tracked fund's portfolio scan.
type FundStatus string

const (
	StatusIdle      FundStatus = "idle"
	StatusSearching FundStatus = "searching"
	StatusCompleted FundStatus = "completed"
	StatusError     FundStatus = "error"
)

// Fund is a tracked VC fund. Status is "completed" exactly when Portfolio is
// non-empty after a scan; an empty or failed scan leaves it at "error".
type Fund struct {
	ID          uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	Status      FundStatus         `json:"status"`
	Portfolio   []PortfolioCompany `json:"portfolio"`
	LastUpdated *time.Time         `json:"lastUpdated,omitempty"`
}

// Confidence is the model's self-reported certainty for one match.
type Confidence string

const (
	ConfidenceHigh   Confidence = "High"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceLow    Confidence = "Low"
)

// MatchResult is one claimed client/portfolio-company correspondence. Results
// are recomputed from scratch on every analysis run and never persisted.
type MatchResult struct {
	ClientName       string     `json:"clientName"`
	PortfolioCompany string     `json:"portfolioCompany"`
	FundName         string     `json:"fundName"`
	Confidence       Confidence `json:"confidence"`
	Reasoning        string     `json:"reasoning"`
}

// AnalysisState is the lifecycle of the overlap analysis view.
type AnalysisState string

const (
	AnalysisNotRun    AnalysisState = "not-run"
	AnalysisRunning   AnalysisState = "running"
	AnalysisCompleted AnalysisState = "completed"
)
