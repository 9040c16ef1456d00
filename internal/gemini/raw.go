package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// RawGenerator forwards a caller-defined generateContent request body to
// the model API unchanged and hands back the decoded response. It exists
// for the passthrough route, where the request shape belongs to the
// client, not to this service.
type RawGenerator interface {
	GenerateRaw(ctx context.Context, body json.RawMessage) (json.RawMessage, error)
}

type RawClient struct {
	http   *resty.Client
	apiKey string
	model  string
}

func NewRawClient(apiKey, model string) *RawClient {
	if model == "" {
		model = DefaultModel
	}
	return &RawClient{
		http:   resty.New().SetBaseURL(defaultBaseURL),
		apiKey: apiKey,
		model:  model,
	}
}

// SetBaseURL overrides the upstream endpoint. Tests point it at a local
// httptest server.
func (c *RawClient) SetBaseURL(url string) *RawClient {
	c.http.SetBaseURL(url)
	return c
}

type rawErrorBody struct {
	Error struct {
		Code    int              `json:"code"`
		Message string           `json:"message"`
		Status  string           `json:"status"`
		Details []map[string]any `json:"details"`
	} `json:"error"`
}

func (c *RawClient) GenerateRaw(ctx context.Context, body json.RawMessage) (json.RawMessage, error) {
	var errBody rawErrorBody
	res, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("x-goog-api-key", c.apiKey).
		SetBody([]byte(body)).
		SetError(&errBody).
		Post(fmt.Sprintf("/models/%s:generateContent", c.model))
	if err != nil {
		return nil, &UpstreamError{Kind: KindGeneric, err: err}
	}

	if res.IsError() {
		err := fmt.Errorf("generateContent returned %d: %s", res.StatusCode(), errBody.Error.Message)
		switch res.StatusCode() {
		case http.StatusServiceUnavailable:
			return nil, &UpstreamError{Kind: KindUnavailable, err: err}
		case http.StatusTooManyRequests:
			return nil, &UpstreamError{
				Kind:       KindRateLimited,
				RetryDelay: retryDelay(errBody.Error.Details),
				err:        err,
			}
		default:
			return nil, &UpstreamError{Kind: KindGeneric, err: err}
		}
	}

	return json.RawMessage(res.Body()), nil
}
