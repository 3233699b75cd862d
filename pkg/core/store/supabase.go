package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"bigpicture_agent/pkg/core/utils"
	"bigpicture_agent/pkg/models"
)

const (
	masterFileTable = "MASTER_FILE"
	fetchTimeout    = 30 * time.Second
)

// SupabaseStore reads MASTER_FILE rows through the Supabase REST interface.
type SupabaseStore struct {
	baseURL string
	anonKey string
	client  *http.Client
}

// NewSupabaseStore creates a REST-backed part store. An empty URL or key is
// accepted here and reported as a configuration error on first use, so a
// misconfigured deployment fails with a clear message instead of at startup.
func NewSupabaseStore(baseURL, anonKey string) *SupabaseStore {
	return &SupabaseStore{
		baseURL: baseURL,
		anonKey: anonKey,
		client:  &http.Client{Timeout: fetchTimeout},
	}
}

// FetchPart looks up one part by exact PartNumber match. Multiple matching
// rows should not happen (the part number is expected to be unique); the
// first row wins if they do.
func (s *SupabaseStore) FetchPart(ctx context.Context, partNumber string) (models.PartRecord, error) {
	if s.baseURL == "" || s.anonKey == "" {
		return nil, utils.CreateConfigurationError("record store not configured: SUPABASE_URL and SUPABASE_ANON_KEY are required")
	}

	endpoint := fmt.Sprintf("%s/rest/v1/%s", s.baseURL, masterFileTable)
	params := url.Values{}
	params.Set("PartNumber", "eq."+partNumber)
	params.Set("select", "*")
	fullURL := endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build store request: %w", err)
	}
	req.Header.Set("apikey", s.anonKey)
	req.Header.Set("Authorization", "Bearer "+s.anonKey)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	res, err := s.client.Do(req)
	if err != nil {
		return nil, utils.CreateUpstreamError("record store request failed", err)
	}
	defer res.Body.Close()
	utils.LogUpstreamCall("supabase", http.MethodGet, endpoint, res.StatusCode, time.Since(start))

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, utils.CreateUpstreamError("failed to read store response", err)
	}
	if res.StatusCode != http.StatusOK {
		return nil, utils.CreateUpstreamError(
			fmt.Sprintf("record store returned status %d: %s", res.StatusCode, truncate(string(body), 200)), nil)
	}

	var rows []models.PartRecord
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, utils.CreateUpstreamError("record store returned malformed JSON", err)
	}
	if len(rows) == 0 {
		return nil, ErrPartNotFound
	}
	return rows[0], nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
