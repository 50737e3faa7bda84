package generate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func geminiStub(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NotEmpty(t, r.URL.Query().Get("key"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClientGenerate(t *testing.T) {
	raw := `{"candidates":[{"content":{"parts":[{"text":"hello"}]}}]}`
	srv := geminiStub(t, http.StatusOK, raw)

	c := NewClient(srv.URL, "test-key")
	decoded, body, err := c.Generate(context.Background(), "a prompt")
	require.NoError(t, err)
	assert.Equal(t, raw, string(body))
	assert.Equal(t, "hello", decoded.FirstText())
}

func TestClientGenerateMissingKey(t *testing.T) {
	c := NewClient("http://unused", "")
	_, _, err := c.Generate(context.Background(), "a prompt")
	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestClientGenerateUpstreamError(t *testing.T) {
	srv := geminiStub(t, http.StatusTooManyRequests, `{"error":"quota"}`)

	c := NewClient(srv.URL, "test-key")
	_, _, err := c.Generate(context.Background(), "a prompt")
	require.Error(t, err)

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusTooManyRequests, upstream.Status)
	assert.Contains(t, upstream.Body, "quota")
}

func TestResponseFirstText(t *testing.T) {
	t.Run("empty candidates", func(t *testing.T) {
		r := &Response{}
		assert.Equal(t, "No content generated", r.FirstText())
	})

	t.Run("empty parts", func(t *testing.T) {
		r := &Response{Candidates: []Candidate{{}}}
		assert.Equal(t, "No content generated", r.FirstText())
	})

	t.Run("blank text", func(t *testing.T) {
		r := &Response{Candidates: []Candidate{{Content: Content{Parts: []Part{{Text: ""}}}}}}
		assert.Equal(t, "No content generated", r.FirstText())
	})
}
