package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyAggregate representa a consolidação diária de vendas persistida no
// banco. Invariante: no máximo uma linha por (connection_id, date), garantida
// por constraint de unicidade e não por lock de aplicação.
type DailyAggregate struct {
	ID              int64           `json:"id,omitempty"`
	ConnectionID    string          `json:"connection_id"`
	StoreID         string          `json:"store_id"`
	Date            time.Time       `json:"date"`
	TotalOrders     int             `json:"total_orders"`
	TotalSales      decimal.Decimal `json:"total_sales"`
	UniqueCustomers int             `json:"unique_customers"`
	Channels        map[string]int  `json:"channels"`
	CreatedAt       time.Time       `json:"created_at,omitempty"`
	UpdatedAt       time.Time       `json:"updated_at,omitempty"`
}

// NewZeroAggregate cria a linha "sem vendas" de um dia do período. Dias sem
// transação também são gravados, para que um re-sync sobrescreva qualquer
// valor antigo com um zero definitivo.
func NewZeroAggregate(connectionID, storeID string, date time.Time) *DailyAggregate {
	return &DailyAggregate{
		ConnectionID: connectionID,
		StoreID:      storeID,
		Date:         date,
		TotalOrders:  0,
		TotalSales:   decimal.Zero,
		Channels:     map[string]int{},
	}
}
