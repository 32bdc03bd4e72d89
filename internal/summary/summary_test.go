package summary

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestSummarize_NoKeyReturnsDemoInsight(t *testing.T) {
	c := NewClient("", testLogger())

	got := c.Summarize(context.Background(), "What is backpropagation?")
	if got != FallbackNoKey {
		t.Errorf("Summarize() = %q, want the demo fallback", got)
	}
}

func TestSummarize_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if got := r.Header.Get("x-goog-api-key"); got != "test-key" {
			t.Errorf("api key header = %q, want %q", got, "test-key")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Apply the chain rule layer by layer."}]}}]}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", testLogger())
	c.baseURL = srv.URL

	got := c.Summarize(context.Background(), "What is backpropagation?")
	if got != "Apply the chain rule layer by layer." {
		t.Errorf("Summarize() = %q, want the generated text", got)
	}
}

func TestSummarize_APIErrorReturnsApology(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient("test-key", testLogger())
	c.baseURL = srv.URL

	got := c.Summarize(context.Background(), "anything")
	if got != FallbackError {
		t.Errorf("Summarize() = %q, want the apology fallback", got)
	}
}

func TestSummarize_EmptyCandidatesReturnsApology(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", testLogger())
	c.baseURL = srv.URL

	if got := c.Summarize(context.Background(), "anything"); got != FallbackError {
		t.Errorf("Summarize() = %q, want the apology fallback", got)
	}
}
