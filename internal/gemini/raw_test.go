package gemini

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRaw(t *testing.T) {
	t.Run("Passthrough", func(t *testing.T) {
		var gotPath, gotBody string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			b, _ := io.ReadAll(r.Body)
			gotBody = string(b)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"hi"}]}}]}`))
		}))
		defer server.Close()

		client := NewRawClient("test-key", "").SetBaseURL(server.URL)
		res, err := client.GenerateRaw(context.Background(), json.RawMessage(`{"contents":[]}`))
		require.NoError(t, err)

		assert.Equal(t, "/models/"+DefaultModel+":generateContent", gotPath)
		assert.JSONEq(t, `{"contents":[]}`, gotBody)
		assert.JSONEq(t, `{"candidates":[{"content":{"parts":[{"text":"hi"}]}}]}`, string(res))
	})

	t.Run("RateLimited", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":{"code":429,"message":"quota exceeded","status":"RESOURCE_EXHAUSTED","details":[{"@type":"type.googleapis.com/google.rpc.RetryInfo","retryDelay":"12s"}]}}`))
		}))
		defer server.Close()

		client := NewRawClient("test-key", "gemini-1.5-flash").SetBaseURL(server.URL)
		_, err := client.GenerateRaw(context.Background(), json.RawMessage(`{}`))

		var uerr *UpstreamError
		require.ErrorAs(t, err, &uerr)
		assert.Equal(t, KindRateLimited, uerr.Kind)
		assert.Equal(t, "12s", uerr.RetryDelay)
	})

	t.Run("Unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"error":{"code":503,"message":"overloaded","status":"UNAVAILABLE"}}`))
		}))
		defer server.Close()

		client := NewRawClient("test-key", "").SetBaseURL(server.URL)
		_, err := client.GenerateRaw(context.Background(), json.RawMessage(`{}`))

		var uerr *UpstreamError
		require.ErrorAs(t, err, &uerr)
		assert.Equal(t, KindUnavailable, uerr.Kind)
	})

	t.Run("BadRequestIsGeneric", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"code":400,"message":"invalid argument","status":"INVALID_ARGUMENT"}}`))
		}))
		defer server.Close()

		client := NewRawClient("test-key", "").SetBaseURL(server.URL)
		_, err := client.GenerateRaw(context.Background(), json.RawMessage(`{}`))

		var uerr *UpstreamError
		require.ErrorAs(t, err, &uerr)
		assert.Equal(t, KindGeneric, uerr.Kind)
	})
}
