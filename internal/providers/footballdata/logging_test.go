package footballdata

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
)

func TestFetchStandingsLogsDiagnosticBeforeReturningError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("dial tcp: connection refused")
	})

	client := NewClient(Config{
		BaseURL:    "http://example.com",
		HTTPClient: &http.Client{Transport: rt},
		Logger:     logger,
	})

	if _, err := client.FetchStandings(context.Background()); err == nil {
		t.Fatal("expected fetch error")
	}

	out := buf.String()
	if !strings.Contains(out, "standings fetch failed") {
		t.Fatalf("expected failure diagnostic, got %q", out)
	}
	if !strings.Contains(out, "level=ERROR") {
		t.Fatalf("expected error level, got %q", out)
	}
	if !strings.Contains(out, providerName) {
		t.Fatalf("expected provider name in diagnostic, got %q", out)
	}
}

func TestFetchStandingsSuccessLogsNothing(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"standings": []}`)),
			Header:     make(http.Header),
		}, nil
	})

	client := NewClient(Config{
		BaseURL:    "http://example.com",
		HTTPClient: &http.Client{Transport: rt},
		Logger:     logger,
	})

	if _, err := client.FetchStandings(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no log output on success, got %q", buf.String())
	}
}
