// Package gemini delegates portfolio retrieval and client matching to the
// Gemini API. The application has no matching logic of its own; both
// operations are prompt contracts with the model.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gubermangroup/fundmatch/internal/overlap"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// MatchingService is the seam between the application and whatever does the
// actual matching. Today that is Gemini; a local matching engine could be
// swapped in behind the same two methods.
type MatchingService interface {
	// RetrievePortfolio enumerates a fund's portfolio companies via
	// web-grounded search. Transport failures propagate to the caller.
	RetrievePortfolio(ctx context.Context, fundName string) ([]overlap.PortfolioCompany, error)

	// MatchClients fuzzy-matches the client list against a fund's portfolio.
	// Returns (nil, nil) without a network call when either list is empty.
	MatchClients(ctx context.Context, fundName string, clients []overlap.Client, portfolio []overlap.PortfolioCompany) ([]overlap.MatchResult, error)
}

// Service implements MatchingService over one process-wide Gemini client.
type Service struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

// NewService builds the Gemini-backed matching service. The client is created
// once at startup from the required API key and shared for the process
// lifetime.
func NewService(ctx context.Context, apiKey, model string, logger *zap.Logger) (*Service, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if model == "" {
		model = DefaultModel
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Service{client: client, model: model, logger: logger}, nil
}

// RetrievePortfolio asks the model, with Google Search grounding enabled, for
// the fund's full portfolio and extracts the company list from the free-text
// reply. The search tool cannot be combined with a response schema, so the
// reply goes through the loose extractor.
func (s *Service) RetrievePortfolio(ctx context.Context, fundName string) ([]overlap.PortfolioCompany, error) {
	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
		SystemInstruction: genai.NewContentFromText(portfolioSystemInstruction(), genai.RoleUser),
	}

	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(portfolioPrompt(fundName)), config)
	if err != nil {
		return nil, fmt.Errorf("portfolio search for %q: %w", fundName, err)
	}

	companies := ExtractCompanies(resp.Text())
	s.logger.Info("portfolio retrieved",
		zap.String("fund", fundName),
		zap.Int("companies", len(companies)),
	)
	return companies, nil
}

// MatchClients sends both name lists to the model with a strict JSON response
// schema and low temperature, and stamps the fund name onto every match.
func (s *Service) MatchClients(ctx context.Context, fundName string, clients []overlap.Client, portfolio []overlap.PortfolioCompany) ([]overlap.MatchResult, error) {
	if len(clients) == 0 || len(portfolio) == 0 {
		return nil, nil
	}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   matchResponseSchema(),
		// Low temperature biases toward literal, factual matching.
		Temperature: genai.Ptr[float32](0.1),
	}

	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(matchPrompt(fundName, clients, portfolio)), config)
	if err != nil {
		return nil, fmt.Errorf("matching clients against %q: %w", fundName, err)
	}

	var matches []overlap.MatchResult
	if err := json.Unmarshal([]byte(cleanJSON(resp.Text())), &matches); err != nil {
		return nil, fmt.Errorf("unmarshalling matches for %q: %w", fundName, err)
	}

	for i := range matches {
		matches[i].FundName = fundName
	}
	return matches, nil
}

func matchResponseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"clientName":       {Type: genai.TypeString},
				"portfolioCompany": {Type: genai.TypeString},
				"confidence": {
					Type: genai.TypeString,
					Enum: []string{"High", "Medium", "Low"},
				},
				"reasoning": {Type: genai.TypeString},
			},
			Required: []string{"clientName", "portfolioCompany", "confidence", "reasoning"},
		},
	}
}
