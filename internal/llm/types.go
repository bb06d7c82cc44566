package llm

import (
	"context"
	"errors"
)

// Supported model names. The remote endpoint serves a fixed catalogue;
// anything else is rejected locally before a request goes out.
const (
	ModelSmall   = "diffbot-small"
	ModelSmallXL = "diffbot-small-xl"
)

// Error kinds for one completion call. All are recoverable by the user; the
// HTTP layer translates each into a distinct message.
var (
	ErrUnsupportedModel = errors.New("unsupported model")
	ErrTimeout          = errors.New("request timed out")
	ErrAuth             = errors.New("authentication failed")
	ErrRemote           = errors.New("remote error")
	ErrParse            = errors.New("malformed response")
)

type Provider interface {
	// Complete sends one prompt and returns the model's answer.
	Complete(ctx context.Context, prompt string, opts ...Option) (*Response, error)
}

type Usage struct {
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
}

type Option func(*Options)

type Options struct {
	Model string
}

func WithModel(model string) Option {
	return func(o *Options) {
		if model != "" {
			o.Model = model
		}
	}
}

// Response is the answer to one completion call. Content is the model's text
// unmodified; Citations are the source URLs it embedded, if any.
type Response struct {
	Content   string
	Citations []string
	Model     string
	Usage     Usage
}

// SupportedModels returns the models Complete will accept.
func SupportedModels() []string {
	return []string{ModelSmall, ModelSmallXL}
}

// Supported reports whether model is in the catalogue.
func Supported(model string) bool {
	for _, m := range SupportedModels() {
		if m == model {
			return true
		}
	}
	return false
}
