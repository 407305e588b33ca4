package saiposclient

import (
	"context"
	"net/http"
	"time"

	saiposdomain "github.com/dashvendas/sales-dashboard-api/infrastructure/integrator/saipos/domain"
	"github.com/dashvendas/sales-dashboard-api/internal/config"
)

type Client interface {
	SearchSales(ctx context.Context, params saiposdomain.SearchSalesParams) ([]saiposdomain.RawSale, error)
}

type SaiposClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &SaiposClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
