package syncing

import (
	"time"

	"github.com/dashvendas/sales-dashboard-api/internal/domain"
)

// AggregateByDay agrupa as vendas canônicas por dia civil e reduz cada grupo
// em um DailyAggregate. Todos os dias da janela aparecem no resultado, mesmo
// sem venda — a linha zerada sobrescreve qualquer valor antigo no commit e
// mantém o re-sync idempotente.
func AggregateByDay(connectionID, storeID string, window domain.SyncWindow, sales []*domain.CanonicalSale) map[time.Time]*domain.DailyAggregate {
	aggregates := make(map[time.Time]*domain.DailyAggregate, window.Days)
	customersByDay := make(map[time.Time]map[string]struct{}, window.Days)

	for _, day := range window.EachDay() {
		aggregates[day] = domain.NewZeroAggregate(connectionID, storeID, day)
		customersByDay[day] = make(map[string]struct{})
	}

	for _, sale := range sales {
		aggregate, ok := aggregates[sale.Date]
		if !ok {
			// Venda fora da janela (a API às vezes vaza registros nas
			// bordas do filtro). Ignorar em vez de criar dia extra.
			continue
		}

		aggregate.TotalOrders++
		aggregate.TotalSales = aggregate.TotalSales.Add(sale.Amount)
		aggregate.Channels[sale.Channel]++

		if sale.CustomerID != nil {
			customersByDay[sale.Date][*sale.CustomerID] = struct{}{}
		}
	}

	for day, customers := range customersByDay {
		aggregates[day].UniqueCustomers = len(customers)
	}

	return aggregates
}
