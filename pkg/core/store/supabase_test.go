package store

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bigpicture_agent/pkg/core/utils"
)

func TestSupabaseStoreFetchPart(t *testing.T) {
	var gotPath, gotAPIKey, gotAuth, gotFilter string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAPIKey = r.Header.Get("apikey")
		gotAuth = r.Header.Get("Authorization")
		gotFilter = r.URL.Query().Get("PartNumber")
		w.Header().Set("Content-Type", "application/json")
		// Two rows: the first one must win.
		w.Write([]byte(`[
			{"PartNumber": "PA-10197", "suppliername": "Acme", "pricejan2023": 10.5},
			{"PartNumber": "PA-10197", "suppliername": "Duplicate"}
		]`))
	}))
	defer srv.Close()

	s := NewSupabaseStore(srv.URL, "test-key")
	rec, err := s.FetchPart(context.Background(), "PA-10197")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/rest/v1/MASTER_FILE" {
		t.Errorf("path expected /rest/v1/MASTER_FILE, got %s", gotPath)
	}
	if gotAPIKey != "test-key" {
		t.Errorf("apikey header expected test-key, got %s", gotAPIKey)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("Authorization header expected Bearer test-key, got %s", gotAuth)
	}
	if gotFilter != "eq.PA-10197" {
		t.Errorf("PartNumber filter expected eq.PA-10197, got %s", gotFilter)
	}
	if rec.Str("suppliername") != "Acme" {
		t.Errorf("first row must win, got supplier %q", rec.Str("suppliername"))
	}
	if rec.FloatOrZero("pricejan2023") != 10.5 {
		t.Errorf("pricejan2023 expected 10.5, got %f", rec.FloatOrZero("pricejan2023"))
	}
}

func TestSupabaseStoreNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	s := NewSupabaseStore(srv.URL, "test-key")
	_, err := s.FetchPart(context.Background(), "ZZ-99999")
	if !errors.Is(err, ErrPartNotFound) {
		t.Errorf("expected ErrPartNotFound, got %v", err)
	}
}

func TestSupabaseStoreUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	s := NewSupabaseStore(srv.URL, "test-key")
	_, err := s.FetchPart(context.Background(), "PA-10197")

	var apiErr *utils.ApiError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected ApiError, got %v", err)
	}
	if apiErr.ErrorCode != "UPSTREAM_ERROR" {
		t.Errorf("expected UPSTREAM_ERROR, got %s", apiErr.ErrorCode)
	}
}

func TestSupabaseStoreUnconfigured(t *testing.T) {
	// The configuration check must fire before any network call.
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	s := NewSupabaseStore("", "")
	_, err := s.FetchPart(context.Background(), "PA-10197")

	var apiErr *utils.ApiError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected ApiError, got %v", err)
	}
	if apiErr.ErrorCode != "CONFIG_MISSING" {
		t.Errorf("expected CONFIG_MISSING, got %s", apiErr.ErrorCode)
	}
	if called {
		t.Error("no request may be attempted when the store is unconfigured")
	}
}

func TestSupabaseStoreMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not": "an array"`))
	}))
	defer srv.Close()

	s := NewSupabaseStore(srv.URL, "test-key")
	_, err := s.FetchPart(context.Background(), "PA-10197")

	var apiErr *utils.ApiError
	if !errors.As(err, &apiErr) || apiErr.ErrorCode != "UPSTREAM_ERROR" {
		t.Errorf("malformed body expected UPSTREAM_ERROR, got %v", err)
	}
}
