// Package gemini wraps the Google generative-language API behind a
// single-prompt completion interface and a closed upstream error
// taxonomy.
package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"
)

const DefaultModel = "gemini-1.5-flash"

// NoReplyFallback is returned when the model responds without a text
// candidate; the request still succeeds.
const NoReplyFallback = "No reply received from the model."

// Completer is the single-turn completion interface route handlers
// depend on. Tests substitute a stub.
type Completer interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Client struct {
	client *genai.Client
	model  string
}

func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("could not create genai client: %w", err)
	}

	return &Client{client: client, model: model}, nil
}

// Generate submits the prompt and returns the first text candidate. A
// response without one yields NoReplyFallback rather than an error;
// upstream failures come back as *UpstreamError.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	res, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		slog.Error("gemini generation failed", "model", c.model, "error", err)
		return "", classifyError(err)
	}

	return firstCandidateText(res), nil
}

// Disabled returns a Completer for processes started without usable
// model credentials: startup proceeds, every model request fails with a
// generic upstream error carrying the construction failure.
func Disabled(err error) Completer {
	return disabledCompleter{err: err}
}

type disabledCompleter struct {
	err error
}

func (d disabledCompleter) Generate(ctx context.Context, prompt string) (string, error) {
	return "", &UpstreamError{Kind: KindGeneric, err: d.err}
}

func firstCandidateText(res *genai.GenerateContentResponse) string {
	if res == nil || len(res.Candidates) == 0 {
		return NoReplyFallback
	}
	content := res.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 || content.Parts[0].Text == "" {
		return NoReplyFallback
	}
	return content.Parts[0].Text
}
