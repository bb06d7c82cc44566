// Package analyzer turns validated user input into a prompt, runs one model
// call, and records the outcome. Statistical work happens remotely; this
// layer only derives the display values the templates need.
package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/khuyentran1401/diffbot-analytics/apimodels"
	"github.com/khuyentran1401/diffbot-analytics/internal/history"
	"github.com/khuyentran1401/diffbot-analytics/internal/llm"
	"github.com/khuyentran1401/diffbot-analytics/internal/prompt"
)

// ValidationError reports rejected user input before any prompt is built.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

type Analyzer struct {
	provider llm.Provider
	history  *history.Store
}

func New(provider llm.Provider, history *history.Store) *Analyzer {
	return &Analyzer{
		provider: provider,
		history:  history,
	}
}

// History exposes the session record for listing and export.
func (a *Analyzer) History() *history.Store {
	return a.history
}

func (a *Analyzer) AnalyzeABTest(ctx context.Context, req apimodels.ABTestRequest) (*apimodels.AnalysisResponse, error) {
	if err := validateABTest(req); err != nil {
		return nil, err
	}

	rendered, err := prompt.Render(prompt.ABTest, prompt.Values{
		"control_users":         req.ControlUsers,
		"control_conversions":   req.ControlConversions,
		"control_rate":          conversionRate(req.ControlConversions, req.ControlUsers),
		"treatment_users":       req.TreatmentUsers,
		"treatment_conversions": req.TreatmentConversions,
		"treatment_rate":        conversionRate(req.TreatmentConversions, req.TreatmentUsers),
	})
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("control %d/%d, treatment %d/%d",
		req.ControlConversions, req.ControlUsers,
		req.TreatmentConversions, req.TreatmentUsers)

	return a.run(ctx, prompt.ABTest, query, rendered, req.Options)
}

func (a *Analyzer) Research(ctx context.Context, req apimodels.ResearchRequest) (*apimodels.AnalysisResponse, error) {
	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		return nil, &ValidationError{Field: "topic", Reason: "must not be empty"}
	}

	rendered, err := prompt.Render(prompt.MarketResearch, prompt.Values{
		"research_topic": topic,
	})
	if err != nil {
		return nil, err
	}

	return a.run(ctx, prompt.MarketResearch, topic, rendered, req.Options)
}

// run issues the model call and, on success only, appends a history entry.
func (a *Analyzer) run(ctx context.Context, kind, query, rendered string, opts apimodels.AnalysisOptions) (*apimodels.AnalysisResponse, error) {
	slog.Info("Starting analysis", "type", kind)
	startTime := time.Now()

	resp, err := a.provider.Complete(ctx, rendered, llm.WithModel(opts.Model))
	if err != nil {
		slog.Error("Analysis failed", "type", kind, "error", err)
		return nil, err
	}

	a.history.Append(kind, query, resp.Content)
	slog.Debug("Analysis completed", "type", kind, "tokens", resp.Usage.TotalTokens)

	return &apimodels.AnalysisResponse{
		Result:    resp.Content,
		Citations: resp.Citations,
		Metadata: apimodels.AnalysisMetadata{
			Duration:   time.Since(startTime).String(),
			Model:      resp.Model,
			TokensUsed: resp.Usage.TotalTokens,
		},
	}, nil
}

func validateABTest(req apimodels.ABTestRequest) error {
	switch {
	case req.ControlUsers < 1:
		return &ValidationError{Field: "controlUsers", Reason: "must be at least 1"}
	case req.TreatmentUsers < 1:
		return &ValidationError{Field: "treatmentUsers", Reason: "must be at least 1"}
	case req.ControlConversions < 0:
		return &ValidationError{Field: "controlConversions", Reason: "must not be negative"}
	case req.TreatmentConversions < 0:
		return &ValidationError{Field: "treatmentConversions", Reason: "must not be negative"}
	case req.ControlConversions > req.ControlUsers:
		return &ValidationError{Field: "controlConversions", Reason: "cannot exceed controlUsers"}
	case req.TreatmentConversions > req.TreatmentUsers:
		return &ValidationError{Field: "treatmentConversions", Reason: "cannot exceed treatmentUsers"}
	}
	return nil
}

// conversionRate returns conversions/users as a percentage, zero when the
// group is empty.
func conversionRate(conversions, users int) float64 {
	if users <= 0 {
		return 0
	}
	return float64(conversions) / float64(users) * 100
}
