// Package summary is the AI study-hint collaborator: given a question's
// text, it asks the Gemini API for a short academic summary.
//
// FAILURE POLICY:
// This helper never fails the caller. With no API key configured it returns
// a canned demo insight; when the API call errors it returns a static
// apology string. The store and selectors never depend on the outcome — the
// result is display-only.
package summary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	modelName      = "gemini-2.0-flash"

	// FallbackNoKey is returned when no API key is configured.
	FallbackNoKey = "This is a demo AI insight. To enable real AI summaries, please configure your API key in the environment settings. This question seems to be about complex technical concepts that would benefit from collaborative study!"

	// FallbackError is returned when the API call fails for any reason.
	FallbackError = "The AI assistant is having trouble reaching the brain-center. Please try again or ask a fellow student!"
)

// Client calls the Gemini generateContent endpoint.
type Client struct {
	apiKey  string
	baseURL string
	httpc   *http.Client
	logger  *slog.Logger
}

// NewClient creates a summary client. An empty apiKey is allowed — the
// client then always answers with the demo fallback.
func NewClient(apiKey string, logger *slog.Logger) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpc:   &http.Client{Timeout: 15 * time.Second},
		logger:  logger,
	}
}

// Request/response shapes for the generateContent endpoint. Gemini returns a
// much larger object — we only unmarshal the fields we need.
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Summarize returns a study hint for the given question text. The returned
// string is always displayable; there is no error channel.
func (c *Client) Summarize(ctx context.Context, question string) string {
	if c.apiKey == "" {
		c.logger.Warn("summary API key missing, returning demo insight")
		return FallbackNoKey
	}

	prompt := fmt.Sprintf(`You are a helpful study assistant for university students. `+
		`Briefly summarize the key points or provide a helpful hint for this question: %q. `+
		`Keep it academic and concise.`, question)

	text, err := c.generate(ctx, prompt)
	if err != nil {
		c.logger.Error("summary request failed", slog.String("error", err.Error()))
		return FallbackError
	}
	return text
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("summary: encoding request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, modelName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("summary: building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("summary: calling Gemini API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("summary: Gemini API returned status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("summary: decoding response: %w", err)
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("summary: Gemini returned no candidates")
	}

	text := out.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", fmt.Errorf("summary: Gemini returned an empty summary")
	}
	return text, nil
}
