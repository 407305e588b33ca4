package saipos

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	saiposdomain "github.com/dashvendas/sales-dashboard-api/infrastructure/integrator/saipos/domain"
	"github.com/dashvendas/sales-dashboard-api/internal/config"
	"github.com/dashvendas/sales-dashboard-api/internal/domain"
)

// fakeClient devolve respostas pré-programadas, na ordem das chamadas.
type fakeClient struct {
	responses []fakeResponse
	calls     []saiposdomain.SearchSalesParams
}

type fakeResponse struct {
	sales []saiposdomain.RawSale
	err   error
}

func (c *fakeClient) SearchSales(_ context.Context, params saiposdomain.SearchSalesParams) ([]saiposdomain.RawSale, error) {
	c.calls = append(c.calls, params)
	if len(c.responses) == 0 {
		return nil, fmt.Errorf("chamada inesperada com offset %d", params.Offset)
	}
	response := c.responses[0]
	c.responses = c.responses[1:]
	return response.sales, response.err
}

func makeSales(count int) []saiposdomain.RawSale {
	sales := make([]saiposdomain.RawSale, count)
	for i := range sales {
		sales[i] = saiposdomain.RawSale{"shift_date": "2025-11-01", "total_value": 10.0}
	}
	return sales
}

func fetcherConfig() *config.Config {
	return &config.Config{
		Saipos: config.Saipos{
			URL:              "https://api.saipos.test",
			DateFilterColumn: "shift_date",
		},
		SaiposSync: config.SaiposSync{
			PageLimit:   100,
			MaxPages:    100,
			MaxRetries:  3,
			BackoffMs:   1000,
			PageDelayMs: 500,
		},
	}
}

func newFetcher(cfg *config.Config, client *fakeClient) (*SaiposService, *[]time.Duration) {
	sleeps := &[]time.Duration{}
	service := &SaiposService{
		cfg:    cfg,
		Client: client,
		sleep: func(d time.Duration) {
			*sleeps = append(*sleeps, d)
		},
	}
	return service, sleeps
}

func testSyncWindow() domain.SyncWindow {
	loc := time.FixedZone("fixed", -3*3600)
	return domain.SyncWindow{
		Start: time.Date(2025, 10, 27, 0, 0, 0, 0, loc),
		End:   time.Date(2025, 11, 2, 23, 59, 59, 999000000, loc),
		Days:  7,
	}
}

func TestFetchAllSales_PaginatesUntilShortPage(t *testing.T) {
	client := &fakeClient{responses: []fakeResponse{
		{sales: makeSales(100)},
		{sales: makeSales(100)},
		{sales: makeSales(50)},
	}}
	service, sleeps := newFetcher(fetcherConfig(), client)

	sales, err := service.FetchAllSales(context.Background(), activeConnection(), testSyncWindow())
	require.NoError(t, err)

	assert.Len(t, sales, 250)
	require.Len(t, client.calls, 3)

	assert.Equal(t, 0, client.calls[0].Offset)
	assert.Equal(t, 100, client.calls[1].Offset)
	assert.Equal(t, 200, client.calls[2].Offset)

	for _, call := range client.calls {
		assert.Equal(t, 100, call.Limit)
		assert.Equal(t, "2025-10-27", call.StartDate)
		assert.Equal(t, "2025-11-02", call.EndDate)
		assert.Equal(t, "shift_date", call.DateFilterColumn)
		assert.Equal(t, "token-1", call.Token)
		assert.Equal(t, "1001", call.StoreID)
	}

	// Throttle entre páginas: uma espera após cada página cheia
	assert.Equal(t, []time.Duration{500 * time.Millisecond, 500 * time.Millisecond}, *sleeps)
}

func TestFetchAllSales_EmptyFirstPage(t *testing.T) {
	client := &fakeClient{responses: []fakeResponse{{sales: nil}}}
	service, sleeps := newFetcher(fetcherConfig(), client)

	sales, err := service.FetchAllSales(context.Background(), activeConnection(), testSyncWindow())
	require.NoError(t, err)

	assert.Empty(t, sales)
	assert.Len(t, client.calls, 1)
	assert.Empty(t, *sleeps)
}

func TestFetchAllSales_RetriesAfterRateLimit(t *testing.T) {
	client := &fakeClient{responses: []fakeResponse{
		{err: &saiposdomain.RateLimitedError{RetryAfter: 2 * time.Second}},
		{sales: makeSales(30)},
	}}
	service, sleeps := newFetcher(fetcherConfig(), client)

	sales, err := service.FetchAllSales(context.Background(), activeConnection(), testSyncWindow())
	require.NoError(t, err)

	assert.Len(t, sales, 30)
	assert.Len(t, client.calls, 2)
	// Espera o Retry-After informado pelo servidor
	assert.Equal(t, []time.Duration{2 * time.Second}, *sleeps)
}

func TestFetchAllSales_BackoffWithoutRetryAfter(t *testing.T) {
	client := &fakeClient{responses: []fakeResponse{
		{err: &saiposdomain.RateLimitedError{}},
		{err: &saiposdomain.RateLimitedError{}},
		{sales: makeSales(10)},
	}}
	service, sleeps := newFetcher(fetcherConfig(), client)

	sales, err := service.FetchAllSales(context.Background(), activeConnection(), testSyncWindow())
	require.NoError(t, err)

	assert.Len(t, sales, 10)
	// Backoff linear: tentativa 1 espera 1x, tentativa 2 espera 2x
	assert.Equal(t, []time.Duration{1 * time.Second, 2 * time.Second}, *sleeps)
}

func TestFetchAllSales_RateLimitExhaustsRetries(t *testing.T) {
	client := &fakeClient{responses: []fakeResponse{
		{err: &saiposdomain.RateLimitedError{}},
		{err: &saiposdomain.RateLimitedError{}},
		{err: &saiposdomain.RateLimitedError{}},
	}}
	service, _ := newFetcher(fetcherConfig(), client)

	sales, err := service.FetchAllSales(context.Background(), activeConnection(), testSyncWindow())
	require.Error(t, err)
	assert.Nil(t, sales)
	assert.Len(t, client.calls, 3)

	var upstreamErr *saiposdomain.UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, 429, upstreamErr.StatusCode)
}

func TestFetchAllSales_NonRateLimitErrorIsNotRetried(t *testing.T) {
	client := &fakeClient{responses: []fakeResponse{
		{err: &saiposdomain.UpstreamError{StatusCode: 500, Snippet: "boom"}},
	}}
	service, _ := newFetcher(fetcherConfig(), client)

	_, err := service.FetchAllSales(context.Background(), activeConnection(), testSyncWindow())
	require.Error(t, err)
	assert.Len(t, client.calls, 1)
}

func TestFetchAllSales_StopsAtPageCap(t *testing.T) {
	cfg := fetcherConfig()
	cfg.SaiposSync.MaxPages = 2

	// Todas as páginas cheias: sem a trava, a busca nunca terminaria
	client := &fakeClient{responses: []fakeResponse{
		{sales: makeSales(100)},
		{sales: makeSales(100)},
		{sales: makeSales(100)},
	}}
	service, _ := newFetcher(cfg, client)

	sales, err := service.FetchAllSales(context.Background(), activeConnection(), testSyncWindow())
	require.NoError(t, err)

	// Retorna o parcial acumulado em vez de falhar a sincronização
	assert.Len(t, sales, 200)
	assert.Len(t, client.calls, 2)
}

func activeConnection() *domain.Connection {
	return &domain.Connection{
		ID:       "conn-1",
		APIToken: "token-1",
		StoreID:  "1001",
		Status:   domain.ConnectionStatusActive,
	}
}
