package metrics

import (
	"context"
	"io"
	"net/http"
	"testing"
)

func TestStartServerServesScrapeEndpoint(t *testing.T) {
	_, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled:     true,
		ServiceName: "premier-league-notifier",
	})
	if err != nil {
		t.Fatalf("expected no setup error, got %v", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	srv, err := StartServer(handler, "0", nil)
	if err != nil {
		t.Fatalf("expected server to start, got %v", err)
	}
	defer func() { _ = srv.Shutdown(context.Background()) }()

	resp, err := http.Get("http://" + srv.Addr() + "/metrics")
	if err != nil {
		t.Fatalf("expected scrape to succeed, got %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from /metrics, got %d", resp.StatusCode)
	}
	if _, err := io.ReadAll(resp.Body); err != nil {
		t.Fatalf("expected readable body, got %v", err)
	}
}

func TestStartServerRejectsBadPort(t *testing.T) {
	_, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: true})
	if err != nil {
		t.Fatalf("expected no setup error, got %v", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	if _, err := StartServer(handler, "not-a-port", nil); err == nil {
		t.Fatal("expected bind error for invalid port")
	}
}
