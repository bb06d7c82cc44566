package llm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/khuyentran1401/diffbot-analytics/internal/config"
)

// Diffbot client implementation. The Diffbot RAG endpoint speaks the OpenAI
// chat-completions wire format, so the shared client carries the bearer token
// and base URL and is reused across calls.
type Diffbot struct {
	client *openai.Client
	cfg    *config.DiffbotConfig
}

func NewDiffbot(cfg *config.DiffbotConfig) (*Diffbot, error) {
	if cfg.APIToken == "" {
		return nil, fmt.Errorf("diffbot API token cannot be empty")
	}
	if !Supported(cfg.Model) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedModel, cfg.Model)
	}

	baseURL := cfg.BaseURL
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	client := openai.NewClient(
		option.WithAPIKey(cfg.APIToken),
		option.WithBaseURL(baseURL),
		option.WithRequestTimeout(cfg.Timeout),
		// Single-shot: failures surface to the caller instead of being retried.
		option.WithMaxRetries(0),
	)

	return &Diffbot{
		client: client,
		cfg:    cfg,
	}, nil
}

func (d *Diffbot) Complete(ctx context.Context, prompt string, opts ...Option) (*Response, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, fmt.Errorf("prompt cannot be empty")
	}

	options := &Options{
		Model: d.cfg.Model,
	}
	for _, opt := range opts {
		opt(options)
	}

	if !Supported(options.Model) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedModel, options.Model)
	}

	resp, err := d.client.Chat.Completions.New(
		ctx,
		openai.ChatCompletionNewParams{
			Model: openai.F(options.Model),
			Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
				openai.UserMessage(prompt),
			}),
		},
	)
	if err != nil {
		return nil, classifyError(err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("%w: response contained no answer", ErrParse)
	}

	content := resp.Choices[0].Message.Content
	return &Response{
		Content:   content,
		Citations: extractCitations(content),
		Model:     options.Model,
		Usage: Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}

// classifyError folds transport failures into the four user-facing kinds so
// callers can present distinct messages.
func classifyError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}

	var apierr *openai.Error
	if errors.As(err, &apierr) {
		switch apierr.StatusCode {
		case 401, 403:
			return fmt.Errorf("%w: remote returned status %d", ErrAuth, apierr.StatusCode)
		default:
			return fmt.Errorf("%w: remote returned status %d", ErrRemote, apierr.StatusCode)
		}
	}

	return fmt.Errorf("%w: %v", ErrRemote, err)
}

// The remote embeds its sources as inline markdown links.
var citationPattern = regexp.MustCompile(`\[[^\]]*\]\((https?://[^)\s]+)\)`)

func extractCitations(content string) []string {
	var urls []string
	seen := map[string]bool{}
	for _, m := range citationPattern.FindAllStringSubmatch(content, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			urls = append(urls, m[1])
		}
	}
	return urls
}
