package saipos

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	saiposdomain "github.com/dashvendas/sales-dashboard-api/infrastructure/integrator/saipos/domain"
	"github.com/dashvendas/sales-dashboard-api/infrastructure/integrator/saipos/saiposclient"
	"github.com/dashvendas/sales-dashboard-api/internal/config"
	"github.com/dashvendas/sales-dashboard-api/internal/domain"
)

type SaiposIntegrator interface {
	// FetchAllSales busca todas as vendas cruas de uma conexão no período,
	// percorrendo a paginação da API e tratando rate limit internamente.
	FetchAllSales(ctx context.Context, conn *domain.Connection, window domain.SyncWindow) ([]saiposdomain.RawSale, error)
}

type SaiposService struct {
	cfg    *config.Config
	Client saiposclient.Client

	// sleep é substituível em teste para não esperar de verdade
	sleep func(time.Duration)
}

func New(cfg *config.Config, client saiposclient.Client) SaiposIntegrator {
	return &SaiposService{
		cfg:    cfg,
		Client: client,
		sleep:  time.Sleep,
	}
}

func (s *SaiposService) FetchAllSales(ctx context.Context, conn *domain.Connection, window domain.SyncWindow) ([]saiposdomain.RawSale, error) {
	syncCfg := s.cfg.SaiposSync
	limit := syncCfg.PageLimit
	if limit <= 0 {
		limit = 200
	}
	maxPages := syncCfg.MaxPages
	if maxPages <= 0 {
		maxPages = 100
	}

	all := make([]saiposdomain.RawSale, 0, limit)
	offset := 0

	for page := 0; page < maxPages; page++ {
		params := saiposdomain.SearchSalesParams{
			Token:            conn.APIToken,
			StoreID:          conn.StoreID,
			DateFilterColumn: s.cfg.Saipos.DateFilterColumn,
			StartDate:        window.Start.Format(time.DateOnly),
			EndDate:          window.End.Format(time.DateOnly),
			Limit:            limit,
			Offset:           offset,
		}

		sales, err := s.fetchPageWithRetry(ctx, conn, params)
		if err != nil {
			return nil, err
		}

		all = append(all, sales...)

		// Página curta ou vazia encerra a paginação.
		if len(sales) < limit {
			return all, nil
		}

		offset += limit

		// Throttle deliberado entre páginas para não disparar o rate limit
		// do Saipos. Não é artefato: remover derruba a sincronização em
		// lojas com muitos pedidos.
		s.sleep(time.Duration(syncCfg.PageDelayMs) * time.Millisecond)
	}

	// Trava de segurança contra paginação infinita da API.
	logrus.WithFields(logrus.Fields{
		"connection_id": conn.ID,
		"max_pages":     maxPages,
		"records":       len(all),
	}).Warn("Limite máximo de páginas atingido na busca de vendas do Saipos")

	return all, nil
}

// fetchPageWithRetry busca uma página, retentando apenas em caso de 429.
// Depois do limite de tentativas o rate limit escala para UpstreamError.
func (s *SaiposService) fetchPageWithRetry(ctx context.Context, conn *domain.Connection, params saiposdomain.SearchSalesParams) ([]saiposdomain.RawSale, error) {
	maxRetries := s.cfg.SaiposSync.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 3
	}
	backoff := time.Duration(s.cfg.SaiposSync.BackoffMs) * time.Millisecond

	var lastRateLimit *saiposdomain.RateLimitedError

	for attempt := 1; attempt <= maxRetries; attempt++ {
		sales, err := s.Client.SearchSales(ctx, params)
		if err == nil {
			return sales, nil
		}

		var rateLimited *saiposdomain.RateLimitedError
		if !errors.As(err, &rateLimited) {
			return nil, err
		}
		lastRateLimit = rateLimited

		if attempt == maxRetries {
			break
		}

		wait := rateLimited.RetryAfter
		if wait <= 0 {
			wait = time.Duration(attempt) * backoff
		}

		logrus.WithFields(logrus.Fields{
			"connection_id": conn.ID,
			"offset":        params.Offset,
			"attempt":       attempt,
			"wait":          wait.String(),
		}).Warn("Rate limit do Saipos, aguardando antes de retentar a página")

		s.sleep(wait)
	}

	return nil, &saiposdomain.UpstreamError{
		StatusCode: 429,
		Snippet:    lastRateLimit.Error(),
	}
}
