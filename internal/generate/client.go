// Package generate calls the Gemini generateContent API and turns its text
// output into structured content records.
package generate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	json "github.com/goccy/go-json"
)

// ErrNoAPIKey is returned when no provider credential is configured.
// This is a fatal configuration problem, never retried.
var ErrNoAPIKey = errors.New("Gemini API key not configured")

// UpstreamError carries a non-2xx provider status and body so the handler
// can propagate both to the caller.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("gemini returned %d: %s", e.Status, e.Body)
}

// Wire types for the generateContent request/response.
type Part struct {
	Text string `json:"text"`
}

type Content struct {
	Parts []Part `json:"parts"`
}

type Candidate struct {
	Content Content `json:"content"`
}

// Response is the provider payload. Only the candidate text is interpreted;
// the raw bytes are passed through to the API caller untouched.
type Response struct {
	Candidates []Candidate `json:"candidates"`
}

// FirstText extracts the first candidate's first text part, or a placeholder
// when the provider produced no usable content.
func (r *Response) FirstText() string {
	if len(r.Candidates) > 0 && len(r.Candidates[0].Content.Parts) > 0 {
		if text := r.Candidates[0].Content.Parts[0].Text; text != "" {
			return text
		}
	}
	return "No content generated"
}

// Client calls the Gemini generateContent endpoint.
type Client struct {
	apiURL     string
	apiKey     string
	httpClient *http.Client
}

func NewClient(apiURL, apiKey string) *Client {
	return &Client{apiURL: apiURL, apiKey: apiKey, httpClient: &http.Client{}}
}

type generateRequest struct {
	Contents []Content `json:"contents"`
}

// Generate sends the prompt and returns the decoded response together with
// the raw provider bytes. A non-2xx provider status becomes an *UpstreamError.
func (c *Client) Generate(ctx context.Context, prompt string) (*Response, []byte, error) {
	if c.apiKey == "" {
		return nil, nil, ErrNoAPIKey
	}

	payload, err := json.Marshal(generateRequest{
		Contents: []Content{{Parts: []Part{{Text: prompt}}}},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("gemini encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.apiURL+"?key="+c.apiKey, bytes.NewReader(payload))
	if err != nil {
		return nil, nil, fmt.Errorf("gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("gemini call: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("gemini read: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, nil, &UpstreamError{Status: resp.StatusCode, Body: string(body)}
	}

	var decoded Response
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, nil, fmt.Errorf("gemini decode: %w", err)
	}
	return &decoded, body, nil
}
