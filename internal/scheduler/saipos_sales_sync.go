package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/dashvendas/sales-dashboard-api/internal/config"
	"github.com/dashvendas/sales-dashboard-api/internal/usecases/syncing"
)

// SaiposSalesSyncConfig representa a configuração do agendador de
// sincronização de vendas do Saipos
type SaiposSalesSyncConfig struct {
	CronSchedule      string
	LookbackDays      int
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// SaiposSalesSyncService gerencia o agendamento e execução da sincronização
// de vendas do Saipos para todas as conexões ativas
type SaiposSalesSyncService struct {
	scheduler           *gocron.Scheduler
	config              SaiposSalesSyncConfig
	appConfig           *config.Config
	syncService         syncing.Syncer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastBatchSucceeded  bool
}

// NewSaiposSalesSyncService cria uma nova instância do serviço de
// sincronização de vendas do Saipos
func NewSaiposSalesSyncService(
	syncService syncing.Syncer,
	appConfig *config.Config,
) *SaiposSalesSyncService {
	syncConfig := SaiposSalesSyncConfig{
		CronSchedule:      appConfig.SaiposSync.CronSchedule,
		LookbackDays:      appConfig.SaiposSync.LookbackDays,
		MaxConcurrentJobs: appConfig.SaiposSync.MaxConcurrentJobs,
		SyncEnabled:       appConfig.SaiposSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"lookback_days":       syncConfig.LookbackDays,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização do Saipos carregada")

	return &SaiposSalesSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		appConfig:   appConfig,
		syncService: syncService,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *SaiposSalesSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de vendas do Saipos desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de vendas do Saipos")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllConnections(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de vendas do Saipos: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de vendas do Saipos")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllConnections dispara a pipeline para todas as conexões ativas
func (s *SaiposSalesSyncService) syncAllConnections(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de vendas do Saipos já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	startTime := time.Now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de vendas do Saipos para todas as conexões ativas")

	batch, err := s.syncService.SyncAll(ctx, s.config.LookbackDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao executar a sincronização de vendas do Saipos")
		s.syncMutex.Lock()
		s.lastBatchSucceeded = false
		s.syncMutex.Unlock()
		return
	}

	failed := 0
	for _, result := range batch.Results {
		if !result.Success {
			failed++
		}
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":      duration.String(),
		"connections":   len(batch.Results),
		"failed":        failed,
		"all_succeeded": batch.AllSucceeded,
		"days":          s.config.LookbackDays,
	}).Info("Sincronização de vendas do Saipos concluída")

	s.syncMutex.Lock()
	s.lastBatchSucceeded = batch.AllSucceeded
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// TriggerManualSync inicia manualmente uma sincronização de vendas do Saipos
func (s *SaiposSalesSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de vendas do Saipos já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de vendas do Saipos")
	go s.syncAllConnections(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *SaiposSalesSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"retention_policy":       fmt.Sprintf("linhas anteriores à janela de %d dias são apagadas a cada sync", s.config.LookbackDays),
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_batch_succeeded":   s.lastBatchSucceeded,
	}
}
