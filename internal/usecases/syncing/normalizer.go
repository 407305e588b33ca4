package syncing

import (
	"strings"
	"time"

	saiposdomain "github.com/dashvendas/sales-dashboard-api/infrastructure/integrator/saipos/domain"
	"github.com/dashvendas/sales-dashboard-api/internal/domain"
	"github.com/shopspring/decimal"
)

// Listas ordenadas de fallback por campo lógico. A ordem importa: o primeiro
// nome presente e utilizável vence. Manter explícito aqui, não espalhar em
// condicionais.
var (
	DateFieldOrder    = []string{"shift_date", "sale_date", "created_at"}
	AmountFieldOrder  = []string{"total_value", "amount_total", "total", "valor_total", "amount"}
	ChannelFieldOrder = []string{"origin_name", "channel"}

	CustomerObjectOrder  = []string{"customer", "cliente"}
	CustomerIDFieldOrder = []string{"id_customer", "customer_id", "id", "cod_customer"}
)

// Formatos de data observados nas respostas do Saipos.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// Normalize converte uma venda crua do Saipos na forma canônica. Retorna nil
// quando o registro não tem nenhum campo de data utilizável — o registro é
// pulado, nunca vira erro da pipeline. Valor ausente vale zero; canal ausente
// vale "outros"; cliente ausente só afeta a contagem de clientes únicos.
func Normalize(raw saiposdomain.RawSale) *domain.CanonicalSale {
	date, ok := extractDate(raw)
	if !ok {
		return nil
	}

	amount, ok := raw.FirstNumber(AmountFieldOrder)
	if !ok {
		amount = decimal.Zero
	}

	channel := domain.ChannelOther
	if value, ok := raw.FirstString(ChannelFieldOrder); ok {
		channel = strings.ToLower(strings.TrimSpace(value))
	}

	return &domain.CanonicalSale{
		Date:       date,
		Amount:     amount,
		Channel:    channel,
		CustomerID: extractCustomerID(raw),
	}
}

// extractDate busca o primeiro campo de data presente e o trunca para a
// meia-noite UTC do dia civil informado pelo registro.
func extractDate(raw saiposdomain.RawSale) (time.Time, bool) {
	value, ok := raw.FirstString(DateFieldOrder)
	if !ok {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC), true
	}

	return time.Time{}, false
}

// extractCustomerID procura o identificador do cliente em um objeto aninhado
// ou em campos de topo. Aceita string ou número; ausência não é erro.
func extractCustomerID(raw saiposdomain.RawSale) *string {
	for _, objectKey := range CustomerObjectOrder {
		if id, ok := raw.NestedString(objectKey, CustomerIDFieldOrder); ok {
			return &id
		}
		if nested, ok := raw[objectKey].(map[string]any); ok {
			if id, ok := numericID(saiposdomain.RawSale(nested), CustomerIDFieldOrder); ok {
				return &id
			}
		}
	}

	topLevelKeys := []string{"id_customer", "customer_id"}
	if id, ok := raw.FirstString(topLevelKeys); ok {
		return &id
	}
	if id, ok := numericID(raw, topLevelKeys); ok {
		return &id
	}

	return nil
}

func numericID(raw saiposdomain.RawSale, keys []string) (string, bool) {
	number, ok := raw.FirstNumber(keys)
	if !ok {
		return "", false
	}
	return number.String(), true
}
