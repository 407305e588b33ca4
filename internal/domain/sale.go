package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChannelOther é o canal atribuído quando a venda não informa origem
const ChannelOther = "outros"

// CanonicalSale é a forma canônica de uma venda do Saipos depois da
// normalização. Existe apenas em memória, entre o fetch e a agregação.
type CanonicalSale struct {
	Date       time.Time // Meia-noite UTC do dia civil da venda
	Amount     decimal.Decimal
	Channel    string
	CustomerID *string
}
