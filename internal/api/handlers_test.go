package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/osintlab/namesake/internal/model"
)

// fakeResolver records inputs and returns canned reports.
type fakeResolver struct {
	lastIntelligence *model.IntelligenceInput
	lastResolve      *model.ResolveInput
}

func (f *fakeResolver) Intelligence(ctx context.Context, in model.IntelligenceInput) (*model.IntelligenceReport, error) {
	f.lastIntelligence = &in
	return &model.IntelligenceReport{Status: model.StatusResolved, Query: in.Name}, nil
}

func (f *fakeResolver) Resolve(ctx context.Context, in model.ResolveInput) (*model.ResolutionReport, error) {
	f.lastResolve = &in
	return &model.ResolutionReport{}, nil
}

func doRequest(t *testing.T, server *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	server.Router().ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	server := NewServer(&fakeResolver{}, nil)
	w := doRequest(t, server, http.MethodGet, "/healthz", nil)
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", w.Code)
	}
}

func TestIntelligenceHandler_OK(t *testing.T) {
	resolver := &fakeResolver{}
	server := NewServer(resolver, nil)

	w := doRequest(t, server, http.MethodPost, "/v1/intelligence", model.IntelligenceInput{Name: "Jane Doe"})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var report model.IntelligenceReport
	if err := json.Unmarshal(w.Body.Bytes(), &report); err != nil {
		t.Fatalf("Invalid JSON response: %v", err)
	}
	if report.Status != model.StatusResolved {
		t.Errorf("Expected resolved status, got %q", report.Status)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("Expected a request ID header")
	}
}

func TestIntelligenceHandler_MissingIdentity(t *testing.T) {
	server := NewServer(&fakeResolver{}, nil)
	w := doRequest(t, server, http.MethodPost, "/v1/intelligence", model.IntelligenceInput{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", w.Code)
	}
}

func TestIntelligenceHandler_BoundaryClamps(t *testing.T) {
	resolver := &fakeResolver{}
	server := NewServer(resolver, nil)

	in := model.IntelligenceInput{
		Name:       "Jane Doe",
		Qualifiers: []string{"a", "b", "c", "d", "e", "f", "g", "h"},
		MaxSources: 100,
	}
	w := doRequest(t, server, http.MethodPost, "/v1/intelligence", in)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if len(resolver.lastIntelligence.Qualifiers) != maxQualifiers {
		t.Errorf("Expected %d qualifiers passed through, got %d", maxQualifiers, len(resolver.lastIntelligence.Qualifiers))
	}
	if resolver.lastIntelligence.MaxSources != 25 {
		t.Errorf("Expected max sources clamped to 25, got %d", resolver.lastIntelligence.MaxSources)
	}
}

func TestIntelligenceHandler_TooManyQualifiers(t *testing.T) {
	server := NewServer(&fakeResolver{}, nil)

	in := model.IntelligenceInput{
		Name:       "Jane Doe",
		Qualifiers: []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"},
	}
	w := doRequest(t, server, http.MethodPost, "/v1/intelligence", in)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 for an oversized qualifier list, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "At most 8 qualifiers") {
		t.Errorf("Expected the qualifier-limit message, got %s", w.Body.String())
	}
}

func TestResolveHandler_OK(t *testing.T) {
	resolver := &fakeResolver{}
	server := NewServer(resolver, nil)

	w := doRequest(t, server, http.MethodPost, "/v1/resolve", model.ResolveInput{
		Name:       "Jane Doe",
		Company:    "Acme",
		MaxSources: 1,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if resolver.lastResolve.MaxSources != 3 {
		t.Errorf("Expected max sources raised to 3, got %d", resolver.lastResolve.MaxSources)
	}
}

func TestResolveHandler_MissingIdentity(t *testing.T) {
	server := NewServer(&fakeResolver{}, nil)
	w := doRequest(t, server, http.MethodPost, "/v1/resolve", model.ResolveInput{Company: "Acme"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", w.Code)
	}
}

func TestRequestIDPassthrough(t *testing.T) {
	server := NewServer(&fakeResolver{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	w := httptest.NewRecorder()
	server.Router().ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "fixed-id" {
		t.Errorf("Expected inbound request ID echoed, got %q", got)
	}
}
