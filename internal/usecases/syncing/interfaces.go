package syncing

import (
	"context"

	"github.com/dashvendas/sales-dashboard-api/internal/domain"
)

// Syncer define a interface da pipeline de sincronização de vendas
type Syncer interface {
	// SyncConnection executa a pipeline completa (fetch, normalize,
	// aggregate, commit) para uma conexão e janela de N dias
	SyncConnection(ctx context.Context, connectionID string, days int) (*domain.SyncResult, error)

	// SyncAll executa a pipeline para todas as conexões ativas; a falha de
	// uma conexão não interrompe as demais
	SyncAll(ctx context.Context, days int) (*domain.SyncBatchResult, error)
}
