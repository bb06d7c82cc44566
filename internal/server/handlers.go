package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/khuyentran1401/diffbot-analytics/apimodels"
	"github.com/khuyentran1401/diffbot-analytics/internal/analyzer"
	"github.com/khuyentran1401/diffbot-analytics/internal/dataset"
	"github.com/khuyentran1401/diffbot-analytics/internal/llm"
	"github.com/khuyentran1401/diffbot-analytics/internal/prompt"
)

func (s *Server) handleABTest(w http.ResponseWriter, r *http.Request) {
	var req apimodels.ABTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	defer r.Body.Close()

	slog.Debug("Received A/B test request", "request", req)

	result, err := s.analyzer.AnalyzeABTest(r.Context(), req)
	if err != nil {
		s.writeAnalysisError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleResearch(w http.ResponseWriter, r *http.Request) {
	var req apimodels.ResearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	defer r.Body.Close()

	slog.Debug("Received research request", "topic", req.Topic)

	result, err := s.analyzer.Research(r.Context(), req)
	if err != nil {
		s.writeAnalysisError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	entries := s.analyzer.History().Entries()
	out := make([]apimodels.HistoryEntry, len(entries))
	for i, e := range entries {
		out[i] = apimodels.HistoryEntry{
			ID:        e.ID,
			Timestamp: e.Timestamp.Format("2006-01-02 15:04:05"),
			Type:      e.Type,
			Query:     e.Query,
			Result:    e.Result,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleHistoryExport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="analysis_history.csv"`)
	if err := s.analyzer.History().WriteCSV(w); err != nil {
		slog.Error("History export failed", "error", err)
	}
}

func (s *Server) handleModels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, apimodels.ModelsResponse{
		Models:  llm.SupportedModels(),
		Default: s.defaultModel,
	})
}

func (s *Server) handleExamples(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, prompt.Examples())
}

func (s *Server) handleSample(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="sample_`+kind+`.csv"`)
	if err := dataset.WriteCSV(w, kind); err != nil {
		// An unknown kind fails before any CSV bytes are written
		w.Header().Set("Content-Type", "application/json")
		w.Header().Del("Content-Disposition")
		writeError(w, http.StatusNotFound, err.Error())
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeAnalysisError translates each error kind into its own status code and
// user-facing message; no kind is swallowed into a generic 500.
func (s *Server) writeAnalysisError(w http.ResponseWriter, err error) {
	var validationErr *analyzer.ValidationError
	var missingErr *prompt.MissingPlaceholderError

	switch {
	case errors.As(err, &validationErr):
		writeError(w, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, llm.ErrUnsupportedModel):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &missingErr), errors.Is(err, prompt.ErrTemplateNotFound):
		writeError(w, http.StatusInternalServerError, err.Error())
	case errors.Is(err, llm.ErrAuth):
		writeError(w, http.StatusUnauthorized, "authentication with the Diffbot API failed, check your API token")
	case errors.Is(err, llm.ErrTimeout):
		writeError(w, http.StatusGatewayTimeout, "the analysis timed out, try again")
	case errors.Is(err, llm.ErrParse):
		writeError(w, http.StatusBadGateway, "the Diffbot API returned an unreadable response")
	case errors.Is(err, llm.ErrRemote):
		writeError(w, http.StatusBadGateway, "the Diffbot API request failed, try again later")
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Encoding response failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, apimodels.ErrorResponse{Error: msg})
}
