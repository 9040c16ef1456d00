package gemini

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

// DefaultRetryDelay is surfaced to rate-limited callers when the
// upstream error carries no RetryInfo detail.
const DefaultRetryDelay = "a few seconds"

type ErrorKind int

const (
	// KindGeneric covers any upstream failure that is neither a
	// capacity nor a rate-limit condition.
	KindGeneric ErrorKind = iota
	// KindUnavailable means the model API reported capacity exhaustion.
	KindUnavailable
	// KindRateLimited means the model API reported rate limiting.
	KindRateLimited
)

// UpstreamError is the tagged error the adapter returns for model-API
// failures. Handlers switch on Kind only, never on raw upstream codes.
type UpstreamError struct {
	Kind ErrorKind
	// RetryDelay is the upstream-suggested wait, set for KindRateLimited.
	RetryDelay string
	err        error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream model error: %v", e.err)
}

func (e *UpstreamError) Unwrap() error { return e.err }

// classifyError maps a genai SDK error onto the closed UpstreamError
// taxonomy: 503 -> unavailable, 429 -> rate limited (with the suggested
// retry delay from RetryInfo details when present), anything else generic.
func classifyError(err error) *UpstreamError {
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return &UpstreamError{Kind: KindGeneric, err: err}
	}

	switch apiErr.Code {
	case http.StatusServiceUnavailable:
		return &UpstreamError{Kind: KindUnavailable, err: err}
	case http.StatusTooManyRequests:
		return &UpstreamError{
			Kind:       KindRateLimited,
			RetryDelay: retryDelay(apiErr.Details),
			err:        err,
		}
	default:
		return &UpstreamError{Kind: KindGeneric, err: err}
	}
}

func retryDelay(details []map[string]any) string {
	for _, d := range details {
		typ, _ := d["@type"].(string)
		if !strings.Contains(typ, "RetryInfo") {
			continue
		}
		if delay, ok := d["retryDelay"].(string); ok && delay != "" {
			return delay
		}
	}
	return DefaultRetryDelay
}
