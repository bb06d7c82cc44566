package apimodels

// ABTestRequest carries the raw counts for one A/B test analysis.
// Counts are validated at the boundary: non-negative, at least one user
// per group, conversions never exceeding users.
type ABTestRequest struct {
	ControlUsers         int `json:"controlUsers"`
	ControlConversions   int `json:"controlConversions"`
	TreatmentUsers       int `json:"treatmentUsers"`
	TreatmentConversions int `json:"treatmentConversions"`

	Options AnalysisOptions `json:"options,omitempty"`
}

// ResearchRequest carries a free-text market research topic.
type ResearchRequest struct {
	Topic string `json:"topic"`

	Options AnalysisOptions `json:"options,omitempty"`
}

type AnalysisOptions struct {
	// Model overrides the configured default (e.g. "diffbot-small").
	Model string `json:"model,omitempty"`
}
