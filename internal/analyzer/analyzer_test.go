package analyzer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khuyentran1401/diffbot-analytics/apimodels"
	"github.com/khuyentran1401/diffbot-analytics/internal/history"
	"github.com/khuyentran1401/diffbot-analytics/internal/llm"
)

// stubProvider records prompts and returns a canned response or error.
type stubProvider struct {
	calls   int
	prompts []string
	models  []string
	resp    *llm.Response
	err     error
}

func (s *stubProvider) Complete(ctx context.Context, prompt string, opts ...llm.Option) (*llm.Response, error) {
	s.calls++
	s.prompts = append(s.prompts, prompt)

	options := &llm.Options{Model: llm.ModelSmallXL}
	for _, opt := range opts {
		opt(options)
	}
	s.models = append(s.models, options.Model)

	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func abTestRequest() apimodels.ABTestRequest {
	return apimodels.ABTestRequest{
		ControlUsers:         1000,
		ControlConversions:   50,
		TreatmentUsers:       1000,
		TreatmentConversions: 65,
	}
}

func TestAnalyzeABTestRendersRatesAndRecordsHistory(t *testing.T) {
	stub := &stubProvider{resp: &llm.Response{
		Content: "p=0.04, the treatment wins",
		Model:   llm.ModelSmallXL,
		Usage:   llm.Usage{TotalTokens: 59},
	}}
	store := history.NewStore()
	a := New(stub, store)

	resp, err := a.AnalyzeABTest(context.Background(), abTestRequest())
	require.NoError(t, err)

	require.Len(t, stub.prompts, 1)
	prompt := stub.prompts[0]
	assert.Contains(t, prompt, "5.00%", "control rate should appear with two decimals")
	assert.Contains(t, prompt, "6.50%", "treatment rate should appear with two decimals")
	assert.Contains(t, prompt, "1000 users")
	assert.Contains(t, prompt, "50 conversions")
	assert.Contains(t, prompt, "65 conversions")

	assert.Equal(t, "p=0.04, the treatment wins", resp.Result)
	assert.Equal(t, llm.ModelSmallXL, resp.Metadata.Model)
	assert.Equal(t, int64(59), resp.Metadata.TokensUsed)
	assert.NotEmpty(t, resp.Metadata.Duration)

	require.Equal(t, 1, store.Len(), "history should gain exactly one entry")
	entry := store.Entries()[0]
	assert.Equal(t, "ab_test", entry.Type)
	assert.Contains(t, entry.Result, "p=0.04")
	assert.Contains(t, entry.Query, "50/1000")
	assert.Contains(t, entry.Query, "65/1000")
}

func TestAnalyzeABTestValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*apimodels.ABTestRequest)
		field  string
	}{
		{"zero control users", func(r *apimodels.ABTestRequest) { r.ControlUsers = 0 }, "controlUsers"},
		{"zero treatment users", func(r *apimodels.ABTestRequest) { r.TreatmentUsers = 0 }, "treatmentUsers"},
		{"negative control conversions", func(r *apimodels.ABTestRequest) { r.ControlConversions = -1 }, "controlConversions"},
		{"negative treatment conversions", func(r *apimodels.ABTestRequest) { r.TreatmentConversions = -1 }, "treatmentConversions"},
		{"control conversions exceed users", func(r *apimodels.ABTestRequest) { r.ControlConversions = 1001 }, "controlConversions"},
		{"treatment conversions exceed users", func(r *apimodels.ABTestRequest) { r.TreatmentConversions = 1001 }, "treatmentConversions"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubProvider{resp: &llm.Response{Content: "ok"}}
			store := history.NewStore()
			a := New(stub, store)

			req := abTestRequest()
			tc.mutate(&req)

			_, err := a.AnalyzeABTest(context.Background(), req)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
			assert.Zero(t, stub.calls, "invalid input must not reach the provider")
			assert.Zero(t, store.Len(), "invalid input must not enter history")
		})
	}
}

func TestResearchUsesTopicVerbatim(t *testing.T) {
	stub := &stubProvider{resp: &llm.Response{
		Content:   "retention is up",
		Citations: []string{"https://example.com/report"},
		Model:     llm.ModelSmall,
	}}
	store := history.NewStore()
	a := New(stub, store)

	resp, err := a.Research(context.Background(), apimodels.ResearchRequest{
		Topic:   "  mobile app retention in 2024  ",
		Options: apimodels.AnalysisOptions{Model: llm.ModelSmall},
	})
	require.NoError(t, err)

	require.Len(t, stub.prompts, 1)
	assert.Contains(t, stub.prompts[0], "mobile app retention in 2024")
	assert.Equal(t, []string{llm.ModelSmall}, stub.models, "model override should pass through")
	assert.Equal(t, []string{"https://example.com/report"}, resp.Citations)

	require.Equal(t, 1, store.Len())
	assert.Equal(t, "market_research", store.Entries()[0].Type)
	assert.Equal(t, "mobile app retention in 2024", store.Entries()[0].Query)
}

func TestResearchEmptyTopic(t *testing.T) {
	stub := &stubProvider{resp: &llm.Response{Content: "ok"}}
	a := New(stub, history.NewStore())

	_, err := a.Research(context.Background(), apimodels.ResearchRequest{Topic: "   "})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "topic", verr.Field)
	assert.Zero(t, stub.calls)
}

func TestFailedCallYieldsNoHistoryEntry(t *testing.T) {
	stub := &stubProvider{err: errors.New("boom")}
	store := history.NewStore()
	a := New(stub, store)

	_, err := a.AnalyzeABTest(context.Background(), abTestRequest())
	assert.Error(t, err)
	assert.Zero(t, store.Len(), "a failed call must not enter history")
}

func TestConversionRate(t *testing.T) {
	assert.InDelta(t, 5.0, conversionRate(50, 1000), 1e-9)
	assert.InDelta(t, 6.5, conversionRate(65, 1000), 1e-9)
	assert.Zero(t, conversionRate(5, 0), "empty group should not divide by zero")
}
