package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dashvendas/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/dashvendas/sales-dashboard-api/infrastructure/integrator/saipos"
	"github.com/dashvendas/sales-dashboard-api/infrastructure/integrator/saipos/saiposclient"
	"github.com/dashvendas/sales-dashboard-api/infrastructure/repository"
	"github.com/dashvendas/sales-dashboard-api/internal/api"
	"github.com/dashvendas/sales-dashboard-api/internal/config"
	"github.com/dashvendas/sales-dashboard-api/internal/scheduler"
	"github.com/dashvendas/sales-dashboard-api/internal/usecases/connecting"
	"github.com/dashvendas/sales-dashboard-api/internal/usecases/syncing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	connectionRepo := repository.NewConnectionRepository(pgConn)
	aggregateRepo := repository.NewDailyAggregateRepository(pgConn)

	saiposClient := saiposclient.NewClient(cfg)
	saiposIntegrator := saipos.New(cfg, saiposClient)

	connectionService := connecting.NewService(connectionRepo, aggregateRepo, cfg)
	syncService := syncing.NewService(cfg, connectionRepo, aggregateRepo, saiposIntegrator)

	saiposSyncService := scheduler.NewSaiposSalesSyncService(syncService, cfg)

	if err := saiposSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de vendas do Saipos")
	} else {
		logrus.Info("Agendador de sincronização de vendas do Saipos iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		connectionService,
		syncService,
		saiposSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
