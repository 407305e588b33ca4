package saiposclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	saiposdomain "github.com/dashvendas/sales-dashboard-api/infrastructure/integrator/saipos/domain"
	"github.com/dashvendas/sales-dashboard-api/internal/config"
)

func newTestClient(serverURL string) *SaiposClient {
	return &SaiposClient{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		config: &config.Config{
			Saipos: config.Saipos{
				URL:              serverURL,
				DateFilterColumn: "shift_date",
			},
		},
	}
}

func searchParams() saiposdomain.SearchSalesParams {
	return saiposdomain.SearchSalesParams{
		Token:            "token-1",
		StoreID:          "1001",
		DateFilterColumn: "shift_date",
		StartDate:        "2025-10-27",
		EndDate:          "2025-11-02",
		Limit:            100,
		Offset:           200,
	}
}

func TestSearchSales_RequestShape(t *testing.T) {
	var captured *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Clone(context.Background())
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.SearchSales(context.Background(), searchParams())
	require.NoError(t, err)

	require.NotNil(t, captured)
	assert.Equal(t, "/search_sales", captured.URL.Path)
	assert.Equal(t, "Bearer token-1", captured.Header.Get("Authorization"))

	query := captured.URL.Query()
	assert.Equal(t, "shift_date", query.Get("date_filter_column"))
	assert.Equal(t, "2025-10-27", query.Get("start"))
	assert.Equal(t, "2025-11-02", query.Get("end"))
	assert.Equal(t, "100", query.Get("limit"))
	assert.Equal(t, "200", query.Get("offset"))
	assert.Equal(t, "1001", query.Get("store_id"))
}

func TestSearchSales_BodyShapes(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected int
	}{
		{"array puro", `[{"shift_date":"2025-11-01"},{"shift_date":"2025-11-02"}]`, 2},
		{"envelope data", `{"data":[{"shift_date":"2025-11-01"}]}`, 1},
		{"envelope items", `{"items":[{"shift_date":"2025-11-01"},{"shift_date":"2025-11-01"},{"shift_date":"2025-11-02"}]}`, 3},
		{"array vazio", `[]`, 0},
		{"data vazio", `{"data":[]}`, 0},
		{"corpo null", `null`, 0},
		{"corpo vazio", ``, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := newTestClient(server.URL)
			sales, err := client.SearchSales(context.Background(), searchParams())
			require.NoError(t, err)
			assert.Len(t, sales, tt.expected)
		})
	}
}

func TestSearchSales_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Retry-After", "7")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.SearchSales(context.Background(), searchParams())
	require.Error(t, err)

	var rateLimited *saiposdomain.RateLimitedError
	require.True(t, errors.As(err, &rateLimited))
	assert.Equal(t, 7*time.Second, rateLimited.RetryAfter)
}

func TestSearchSales_RateLimitedWithoutRetryAfter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.SearchSales(context.Background(), searchParams())

	var rateLimited *saiposdomain.RateLimitedError
	require.True(t, errors.As(err, &rateLimited))
	assert.Zero(t, rateLimited.RetryAfter)
}

func TestSearchSales_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"something went wrong upstream"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.SearchSales(context.Background(), searchParams())
	require.Error(t, err)

	var upstreamErr *saiposdomain.UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, http.StatusInternalServerError, upstreamErr.StatusCode)
	assert.Contains(t, upstreamErr.Snippet, "something went wrong upstream")
}

func TestSearchSales_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"data": "not an array"`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.SearchSales(context.Background(), searchParams())
	require.Error(t, err)

	var upstreamErr *saiposdomain.UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
}

func TestParseRetryAfter(t *testing.T) {
	assert.Equal(t, time.Duration(0), parseRetryAfter(""))
	assert.Equal(t, 30*time.Second, parseRetryAfter("30"))
	assert.Equal(t, time.Duration(0), parseRetryAfter("garbage"))

	// Data HTTP no futuro vira uma espera positiva
	future := time.Now().Add(90 * time.Second).UTC().Format(http.TimeFormat)
	wait := parseRetryAfter(future)
	assert.Greater(t, wait, 80*time.Second)
	assert.LessOrEqual(t, wait, 90*time.Second)
}
