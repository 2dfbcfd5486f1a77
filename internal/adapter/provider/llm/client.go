package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/interviewprep-backend/internal/config"
	"github.com/heartmarshall/interviewprep-backend/internal/domain"
)

// ErrDisabled is returned when no API key is configured.
var ErrDisabled = errors.New("llm provider not configured")

// Request is a single-turn prompt whose answer must be a JSON object
// matching Schema.
type Request struct {
	System string
	Prompt string
	Schema *Schema
}

// Client calls the Anthropic Messages API and validates structured output.
type Client struct {
	client    anthropic.Client
	enabled   bool
	model     string
	maxTokens int64
	timeout   time.Duration
	log       *slog.Logger
}

// NewClient creates a Client from config. Extra request options are appended
// after the API key, which lets tests point the client at a local server.
func NewClient(logger *slog.Logger, cfg config.LLMConfig, opts ...option.RequestOption) *Client {
	all := append([]option.RequestOption{option.WithAPIKey(cfg.APIKey)}, opts...)
	return &Client{
		client:    anthropic.NewClient(all...),
		enabled:   cfg.Enabled(),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		timeout:   cfg.Timeout,
		log:       logger.With("adapter", "llm"),
	}
}

// CompleteJSON sends the request and decodes the validated JSON answer into out.
// Transport failures and malformed output are reported as domain.ErrUpstream.
func (c *Client) CompleteJSON(ctx context.Context, req Request, out any) error {
	if !c.enabled {
		return fmt.Errorf("%w: %w", domain.ErrUpstream, ErrDisabled)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}

	start := time.Now()
	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		c.log.WarnContext(ctx, "llm call failed",
			slog.String("schema", req.Schema.Name()),
			slog.Duration("elapsed", time.Since(start)),
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: llm call: %w", domain.ErrUpstream, err)
	}

	text := responseText(msg)
	raw, err := extractJSON(text)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrUpstream, err)
	}
	if req.Schema != nil {
		if err := req.Schema.Validate([]byte(raw)); err != nil {
			c.log.WarnContext(ctx, "llm output rejected",
				slog.String("schema", req.Schema.Name()),
				slog.String("error", err.Error()))
			return fmt.Errorf("%w: invalid llm output: %w", domain.ErrUpstream, err)
		}
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("%w: decode llm output: %w", domain.ErrUpstream, err)
	}

	c.log.DebugContext(ctx, "llm call completed",
		slog.String("schema", req.Schema.Name()),
		slog.Duration("elapsed", time.Since(start)),
		slog.Int64("output_tokens", msg.Usage.OutputTokens))

	return nil
}

// responseText concatenates the text blocks of a message.
func responseText(msg *anthropic.Message) string {
	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	return b.String()
}

// extractJSON finds the outermost JSON object in a string. Models sometimes
// wrap the object in prose or a code fence.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}
