package syncing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	saiposdomain "github.com/dashvendas/sales-dashboard-api/infrastructure/integrator/saipos/domain"
	saiposmocks "github.com/dashvendas/sales-dashboard-api/infrastructure/integrator/saipos/mocks"
	"github.com/dashvendas/sales-dashboard-api/infrastructure/repository/mocks"
	"github.com/dashvendas/sales-dashboard-api/internal/config"
	"github.com/dashvendas/sales-dashboard-api/internal/domain"
)

func testConfig() *config.Config {
	return &config.Config{
		SaiposSync: config.SaiposSync{
			LookbackDays:        15,
			PageLimit:           200,
			MaxPages:            100,
			MaxRetries:          3,
			TimezoneOffsetHours: -3,
			MaxConcurrentJobs:   1,
		},
	}
}

func newTestService(t *testing.T) (*Service, *mocks.MockConnectionRepository, *mocks.MockDailyAggregateRepository, *saiposmocks.MockSaiposIntegrator) {
	t.Helper()
	ctrl := gomock.NewController(t)

	connectionRepo := mocks.NewMockConnectionRepository(ctrl)
	aggregateRepo := mocks.NewMockDailyAggregateRepository(ctrl)
	saiposService := saiposmocks.NewMockSaiposIntegrator(ctrl)

	service := &Service{
		cfg:            testConfig(),
		connectionRepo: connectionRepo,
		aggregateRepo:  aggregateRepo,
		saiposService:  saiposService,
		now: func() time.Time {
			return time.Date(2025, 11, 2, 15, 0, 0, 0, time.UTC)
		},
	}

	return service, connectionRepo, aggregateRepo, saiposService
}

func activeConnection(id string) *domain.Connection {
	return &domain.Connection{
		ID:      id,
		OwnerID: "owner-1",
		Name:    "Loja Centro",
		StoreID: "1001",
		Status:  domain.ConnectionStatusActive,
	}
}

func TestSyncConnection_Success(t *testing.T) {
	service, connectionRepo, aggregateRepo, saiposService := newTestService(t)

	connection := activeConnection("conn-1")
	connectionRepo.EXPECT().GetByID("conn-1").Return(connection, nil)

	rawSales := []saiposdomain.RawSale{
		{"shift_date": "2025-11-01", "total_value": 10.5, "origin_name": "iFood"},
		{"shift_date": "2025-11-02", "total_value": 20.0},
		// sem campo de data: deve ser pulado sem falhar a pipeline
		{"total_value": 99.0},
	}
	saiposService.EXPECT().
		FetchAllSales(gomock.Any(), connection, gomock.Any()).
		Return(rawSales, nil)

	aggregateRepo.EXPECT().
		CommitWindow(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, window domain.SyncWindow, aggregates map[time.Time]*domain.DailyAggregate) (int, error) {
			// Todos os dias da janela, com ou sem venda, chegam ao commit
			assert.Len(t, aggregates, window.Days)
			return window.Days, nil
		})

	result, err := service.SyncConnection(context.Background(), "conn-1", 3)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.True(t, result.Success)
	assert.Equal(t, domain.SyncStateSucceeded, result.State)
	assert.Equal(t, 3, result.DaysSynced)
	assert.Equal(t, 3, result.RecordsFetched)
	assert.Equal(t, 1, result.RecordsSkipped)
	assert.Empty(t, result.ErrorKind)
}

func TestSyncConnection_DefaultsToConfiguredLookback(t *testing.T) {
	service, connectionRepo, aggregateRepo, saiposService := newTestService(t)

	connection := activeConnection("conn-1")
	connectionRepo.EXPECT().GetByID("conn-1").Return(connection, nil)
	saiposService.EXPECT().
		FetchAllSales(gomock.Any(), connection, gomock.Any()).
		Return(nil, nil)
	aggregateRepo.EXPECT().
		CommitWindow(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, window domain.SyncWindow, _ map[time.Time]*domain.DailyAggregate) (int, error) {
			assert.Equal(t, 15, window.Days)
			return window.Days, nil
		})

	result, err := service.SyncConnection(context.Background(), "conn-1", 0)
	require.NoError(t, err)
	assert.Equal(t, 15, result.DaysSynced)
}

func TestSyncConnection_Validation(t *testing.T) {
	t.Run("id obrigatório", func(t *testing.T) {
		service, _, _, _ := newTestService(t)

		result, err := service.SyncConnection(context.Background(), "", 7)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrConnectionIDRequired)
	})

	t.Run("conexão inexistente", func(t *testing.T) {
		service, connectionRepo, _, _ := newTestService(t)
		connectionRepo.EXPECT().GetByID("missing").Return(nil, nil)

		result, err := service.SyncConnection(context.Background(), "missing", 7)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrConnectionNotFound)
	})

	t.Run("conexão desabilitada", func(t *testing.T) {
		service, connectionRepo, _, _ := newTestService(t)
		disabled := activeConnection("conn-1")
		disabled.Status = domain.ConnectionStatusDisabled
		connectionRepo.EXPECT().GetByID("conn-1").Return(disabled, nil)

		result, err := service.SyncConnection(context.Background(), "conn-1", 7)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrConnectionDisabled)
	})
}

func TestSyncConnection_UpstreamFailure(t *testing.T) {
	service, connectionRepo, _, saiposService := newTestService(t)

	connection := activeConnection("conn-1")
	connectionRepo.EXPECT().GetByID("conn-1").Return(connection, nil)
	saiposService.EXPECT().
		FetchAllSales(gomock.Any(), connection, gomock.Any()).
		Return(nil, &saiposdomain.UpstreamError{StatusCode: 500, Snippet: "internal error"})

	result, err := service.SyncConnection(context.Background(), "conn-1", 7)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.False(t, result.Success)
	assert.Equal(t, domain.SyncStateFailed, result.State)
	assert.Equal(t, string(ErrorKindUpstream), result.ErrorKind)
	assert.NotEmpty(t, result.Error)
	assert.Zero(t, result.DaysSynced)
}

func TestSyncConnection_CommitFailure(t *testing.T) {
	service, connectionRepo, aggregateRepo, saiposService := newTestService(t)

	connection := activeConnection("conn-1")
	connectionRepo.EXPECT().GetByID("conn-1").Return(connection, nil)
	saiposService.EXPECT().
		FetchAllSales(gomock.Any(), connection, gomock.Any()).
		Return([]saiposdomain.RawSale{{"shift_date": "2025-11-01"}}, nil)
	aggregateRepo.EXPECT().
		CommitWindow(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(0, assert.AnError)

	result, err := service.SyncConnection(context.Background(), "conn-1", 7)
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, domain.SyncStateFailed, result.State)
	assert.Equal(t, string(ErrorKindCommit), result.ErrorKind)
}

func TestSyncAll_FailureDoesNotStopBatch(t *testing.T) {
	service, connectionRepo, aggregateRepo, saiposService := newTestService(t)

	conn1 := activeConnection("conn-1")
	conn2 := activeConnection("conn-2")
	connectionRepo.EXPECT().
		ListByStatus([]domain.ConnectionStatus{domain.ConnectionStatusActive}).
		Return([]*domain.Connection{conn1, conn2}, nil)

	// conn-1 falha no fetch; conn-2 segue normalmente
	saiposService.EXPECT().
		FetchAllSales(gomock.Any(), conn1, gomock.Any()).
		Return(nil, &saiposdomain.UpstreamError{StatusCode: 503, Snippet: "unavailable"})
	saiposService.EXPECT().
		FetchAllSales(gomock.Any(), conn2, gomock.Any()).
		Return(nil, nil)
	aggregateRepo.EXPECT().
		CommitWindow(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(7, nil)

	batch, err := service.SyncAll(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, batch)

	assert.False(t, batch.AllSucceeded)
	require.Len(t, batch.Results, 2)

	byID := make(map[string]*domain.SyncResult, len(batch.Results))
	for _, result := range batch.Results {
		byID[result.ConnectionID] = result
	}

	assert.False(t, byID["conn-1"].Success)
	assert.Equal(t, string(ErrorKindUpstream), byID["conn-1"].ErrorKind)
	assert.True(t, byID["conn-2"].Success)
	assert.Equal(t, 7, byID["conn-2"].DaysSynced)
}

func TestSyncAll_NoActiveConnections(t *testing.T) {
	service, connectionRepo, _, _ := newTestService(t)

	connectionRepo.EXPECT().
		ListByStatus([]domain.ConnectionStatus{domain.ConnectionStatusActive}).
		Return(nil, nil)

	batch, err := service.SyncAll(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, batch.AllSucceeded)
	assert.Empty(t, batch.Results)
}
