package server

import (
	"net/http"

	"github.com/gubermangroup/fundmatch/internal/importer"
	"github.com/gubermangroup/fundmatch/internal/overlap"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ClientListResponse is the response body for GET /api/v1/clients.
type ClientListResponse struct {
	Clients     []overlap.Client `json:"clients"`
	Count       int              `json:"count"`
	HasImported bool             `json:"hasImported"`
}

// AddClientsRequest is the request body for POST /api/v1/clients.
type AddClientsRequest struct {
	Text string `json:"text"`
}

// AddClientsResponse reports the clients created by an add or import.
type AddClientsResponse struct {
	Added []overlap.Client `json:"added"`
}

func (s *Server) handleListClients(c echo.Context) error {
	return c.JSON(http.StatusOK, ClientListResponse{
		Clients:     s.clients.List(),
		Count:       s.clients.Len(),
		HasImported: s.clients.HasImported(),
	})
}

func (s *Server) handleAddClients(c echo.Context) error {
	var req AddClientsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	added := s.clients.AddFromText(req.Text)
	if len(added) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "no client names found in text")
	}

	s.logger.Info("clients added", zap.Int("count", len(added)))
	return c.JSON(http.StatusCreated, AddClientsResponse{Added: added})
}

func (s *Server) handleImportClients(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file field is required")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not open uploaded file")
	}
	defer f.Close()

	names, err := importer.ExtractNames(fileHeader.Filename, f)
	if err != nil {
		s.logger.Warn("spreadsheet import failed",
			zap.String("filename", fileHeader.Filename),
			zap.Error(err),
		)
		return echo.NewHTTPError(http.StatusBadRequest,
			"Failed to parse the file. Please ensure it has a simple structure with client names in the first column.")
	}

	added := s.clients.AddNames(names, overlap.SourceFile)
	s.logger.Info("clients imported",
		zap.String("filename", fileHeader.Filename),
		zap.Int("count", len(added)),
	)
	return c.JSON(http.StatusCreated, AddClientsResponse{Added: added})
}

func (s *Server) handleLoadDemo(c echo.Context) error {
	added := s.clients.LoadDemo()
	return c.JSON(http.StatusCreated, AddClientsResponse{Added: added})
}

// requireConfirm guards destructive endpoints: the caller must pass
// ?confirm=true, the API-level stand-in for the UI confirmation dialog.
func requireConfirm(c echo.Context) error {
	if c.QueryParam("confirm") != "true" {
		return echo.NewHTTPError(http.StatusBadRequest, "destructive action requires confirm=true")
	}
	return nil
}

func (s *Server) handleClearClients(c echo.Context) error {
	if err := requireConfirm(c); err != nil {
		return err
	}
	s.clients.ClearAll()
	s.logger.Info("all clients cleared")
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleClearImported(c echo.Context) error {
	if err := requireConfirm(c); err != nil {
		return err
	}
	s.clients.ClearImported()
	s.logger.Info("imported clients cleared")
	return c.NoContent(http.StatusNoContent)
}
