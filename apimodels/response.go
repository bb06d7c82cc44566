package apimodels

type AnalysisResponse struct {
	// The model's answer, returned verbatim
	Result string `json:"result"`

	// Source URLs cited by the model, if any
	Citations []string `json:"citations,omitempty"`

	// Metadata about the analysis
	Metadata AnalysisMetadata `json:"metadata"`
}

type AnalysisMetadata struct {
	// Time taken for the remote call
	Duration string `json:"duration"`

	// Model used for analysis
	Model string `json:"model"`

	// Tokens used in analysis
	TokensUsed int64 `json:"tokensUsed"`
}

// HistoryEntry is the JSON view of one recorded analysis.
type HistoryEntry struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	Type      string `json:"type"`
	Query     string `json:"query"`
	Result    string `json:"result"`
}

// ModelsResponse lists the models the service will accept.
type ModelsResponse struct {
	Models  []string `json:"models"`
	Default string   `json:"default"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
