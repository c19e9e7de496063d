package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/osintlab/namesake/internal/model"
)

func testFetcher(respectRobots bool) *Fetcher {
	return New(model.HTTPConfig{
		Timeout:       5 * time.Second,
		UserAgent:     "namesake-test/0.1",
		MaxBodyBytes:  1 << 20,
		MaxPageChars:  2800,
		RespectRobots: respectRobots,
	}, model.ConcurrencyConfig{DomainRPS: 100, DomainBurst: 100})
}

func TestText_ExtractsVisibleText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`<html><head><title>Jane</title>
			<script>ignore();</script><style>.x{}</style></head>
			<body><h1>Jane  Doe</h1><p>Engineer at Acme.</p></body></html>`))
	}))
	defer server.Close()

	got := testFetcher(true).Text(context.Background(), server.URL+"/profile", 0)
	if !strings.Contains(got, "Jane Doe") || !strings.Contains(got, "Engineer at Acme.") {
		t.Errorf("Expected visible text, got %q", got)
	}
	if strings.Contains(got, "ignore") || strings.Contains(got, ".x{}") {
		t.Errorf("Expected script/style stripped, got %q", got)
	}
}

func TestText_RobotsDenial(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			_, _ = w.Write([]byte("User-agent: *\nDisallow: /private\n"))
			return
		}
		_, _ = w.Write([]byte("<html><body>secret</body></html>"))
	}))
	defer server.Close()

	f := testFetcher(true)
	if got := f.Text(context.Background(), server.URL+"/private/page", 0); got != "" {
		t.Errorf("Expected empty text for disallowed path, got %q", got)
	}
	if got := f.Text(context.Background(), server.URL+"/public", 0); got == "" {
		t.Error("Expected allowed path to fetch")
	}
}

func TestText_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer server.Close()

	if got := testFetcher(false).Text(context.Background(), server.URL, 0); got != "" {
		t.Errorf("Expected empty text for non-2xx response, got %q", got)
	}
}

func TestText_CharCap(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body>" + strings.Repeat("word ", 1000) + "</body></html>"))
	}))
	defer server.Close()

	got := testFetcher(false).Text(context.Background(), server.URL, 100)
	if len(got) > 100 {
		t.Errorf("Expected at most 100 chars, got %d", len(got))
	}
	if got == "" {
		t.Error("Expected non-empty capped text")
	}
}

func TestText_BadURL(t *testing.T) {
	if got := testFetcher(false).Text(context.Background(), "://bad", 0); got != "" {
		t.Errorf("Expected empty text for unparseable URL, got %q", got)
	}
}

func TestExtractText(t *testing.T) {
	got := ExtractText("<html><body><p>one</p><noscript>two</noscript><p>three</p></body></html>")
	if got != "one three" {
		t.Errorf("Expected %q, got %q", "one three", got)
	}
}
