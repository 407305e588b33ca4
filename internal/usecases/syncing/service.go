package syncing

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dashvendas/sales-dashboard-api/infrastructure/integrator/saipos"
	saiposdomain "github.com/dashvendas/sales-dashboard-api/infrastructure/integrator/saipos/domain"
	"github.com/dashvendas/sales-dashboard-api/infrastructure/repository"
	"github.com/dashvendas/sales-dashboard-api/internal/config"
	"github.com/dashvendas/sales-dashboard-api/internal/domain"
)

type Service struct {
	cfg            *config.Config
	connectionRepo repository.ConnectionRepository
	aggregateRepo  repository.DailyAggregateRepository
	saiposService  saipos.SaiposIntegrator

	// now é substituível em teste para fixar o "hoje" da janela
	now func() time.Time
}

func NewService(
	cfg *config.Config,
	connectionRepo repository.ConnectionRepository,
	aggregateRepo repository.DailyAggregateRepository,
	saiposService saipos.SaiposIntegrator,
) Syncer {
	return &Service{
		cfg:            cfg,
		connectionRepo: connectionRepo,
		aggregateRepo:  aggregateRepo,
		saiposService:  saiposService,
		now:            time.Now,
	}
}

// SyncConnection executa a máquina de estados da pipeline para uma conexão:
// Idle -> Fetching -> Normalizing -> Aggregating -> Committing ->
// Succeeded | Failed. Não há retry de pipeline inteira — o único retry vive
// dentro do fetcher, por página.
func (s *Service) SyncConnection(ctx context.Context, connectionID string, days int) (*domain.SyncResult, error) {
	if connectionID == "" {
		return nil, ErrConnectionIDRequired
	}

	connection, err := s.connectionRepo.GetByID(connectionID)
	if err != nil {
		return nil, err
	}
	if connection == nil {
		return nil, ErrConnectionNotFound
	}
	if connection.Status != domain.ConnectionStatusActive {
		return nil, ErrConnectionDisabled
	}

	return s.runPipeline(ctx, connection, days), nil
}

// SyncAll processa todas as conexões ativas. O fan-out usa um semáforo com
// capacidade MaxConcurrentJobs (padrão 1, ou seja, sequencial) para não
// amplificar a pressão de rate limit no Saipos.
func (s *Service) SyncAll(ctx context.Context, days int) (*domain.SyncBatchResult, error) {
	connections, err := s.connectionRepo.ListByStatus([]domain.ConnectionStatus{domain.ConnectionStatusActive})
	if err != nil {
		return nil, err
	}

	batch := &domain.SyncBatchResult{
		AllSucceeded: true,
		Results:      make([]*domain.SyncResult, 0, len(connections)),
	}

	if len(connections) == 0 {
		logrus.Info("Nenhuma conexão ativa encontrada para sincronização de vendas do Saipos")
		return batch, nil
	}

	maxConcurrent := s.cfg.SaiposSync.MaxConcurrentJobs
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	semaphore := make(chan struct{}, maxConcurrent)
	var wg sync.WaitGroup
	var mu sync.Mutex

	for _, connection := range connections {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(conn *domain.Connection) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			result := s.runPipeline(ctx, conn, days)

			mu.Lock()
			batch.Results = append(batch.Results, result)
			if !result.Success {
				batch.AllSucceeded = false
			}
			mu.Unlock()
		}(connection)
	}

	wg.Wait()

	return batch, nil
}

// runPipeline roda os estágios em sequência estrita para uma conexão.
// Qualquer falha é capturada aqui e convertida em resultado: nunca propaga
// para as conexões irmãs de um lote.
func (s *Service) runPipeline(ctx context.Context, connection *domain.Connection, days int) *domain.SyncResult {
	if days <= 0 {
		days = s.cfg.SaiposSync.LookbackDays
	}

	result := &domain.SyncResult{
		ConnectionID: connection.ID,
		State:        domain.SyncStateIdle,
		StartedAt:    s.now(),
	}

	window, err := ComputeWindow(days, s.cfg.SaiposSync.TimezoneOffsetHours, s.now())
	if err != nil {
		return s.fail(result, err)
	}

	logrus.WithFields(logrus.Fields{
		"connection_id": connection.ID,
		"days":          days,
		"start":         window.Start.Format(time.DateOnly),
		"end":           window.End.Format(time.DateOnly),
	}).Info("Iniciando sincronização de vendas do Saipos para conexão")

	result.State = domain.SyncStateFetching
	rawSales, err := s.saiposService.FetchAllSales(ctx, connection, window)
	if err != nil {
		return s.fail(result, NewSyncError(ErrorKindUpstream, connection.ID, err))
	}
	result.RecordsFetched = len(rawSales)

	result.State = domain.SyncStateNormalizing
	sales := make([]*domain.CanonicalSale, 0, len(rawSales))
	skipped := 0
	for _, raw := range rawSales {
		sale := Normalize(raw)
		if sale == nil {
			// Registro sem data utilizável: pulado, não é erro.
			skipped++
			continue
		}
		sales = append(sales, sale)
	}
	result.RecordsSkipped = skipped
	if skipped > 0 {
		logrus.WithFields(logrus.Fields{
			"connection_id": connection.ID,
			"skipped":       skipped,
			"fetched":       len(rawSales),
		}).Warn("Registros do Saipos pulados por falta de campo de data")
	}

	result.State = domain.SyncStateAggregating
	aggregates := AggregateByDay(connection.ID, connection.StoreID, window, sales)

	result.State = domain.SyncStateCommitting
	daysWritten, err := s.aggregateRepo.CommitWindow(ctx, window, aggregates)
	if err != nil {
		return s.fail(result, NewSyncError(ErrorKindCommit, connection.ID, err))
	}

	result.State = domain.SyncStateSucceeded
	result.Success = true
	result.DaysSynced = daysWritten
	result.FinishedAt = s.now()

	logrus.WithFields(logrus.Fields{
		"connection_id": connection.ID,
		"days_synced":   daysWritten,
		"fetched":       result.RecordsFetched,
		"skipped":       result.RecordsSkipped,
	}).Info("Sincronização de vendas do Saipos concluída para conexão")

	return result
}

func (s *Service) fail(result *domain.SyncResult, err error) *domain.SyncResult {
	result.State = domain.SyncStateFailed
	result.Success = false
	result.ErrorKind = string(KindOf(err))
	result.Error = err.Error()
	result.FinishedAt = s.now()

	// Detalhe do upstream fica no log; o resultado carrega kind + mensagem.
	fields := logrus.Fields{
		"connection_id": result.ConnectionID,
		"state":         result.State,
		"error_kind":    result.ErrorKind,
	}
	var upstreamErr *saiposdomain.UpstreamError
	if errors.As(err, &upstreamErr) {
		fields["upstream_status"] = upstreamErr.StatusCode
	}
	logrus.WithError(err).WithFields(fields).Error("Falha na sincronização de vendas do Saipos para conexão")

	return result
}
