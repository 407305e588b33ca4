package syncing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	saiposdomain "github.com/dashvendas/sales-dashboard-api/infrastructure/integrator/saipos/domain"
	"github.com/dashvendas/sales-dashboard-api/internal/domain"
)

func TestNormalize_DateFieldFallbackOrder(t *testing.T) {
	tests := []struct {
		name     string
		raw      saiposdomain.RawSale
		expected time.Time
	}{
		{
			name: "shift_date tem prioridade sobre os demais",
			raw: saiposdomain.RawSale{
				"shift_date": "2025-11-01",
				"sale_date":  "2025-11-02",
				"created_at": "2025-11-03T10:00:00Z",
			},
			expected: time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "sale_date quando shift_date ausente",
			raw: saiposdomain.RawSale{
				"sale_date":  "2025-11-02 18:30:00",
				"created_at": "2025-11-03T10:00:00Z",
			},
			expected: time.Date(2025, 11, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "created_at como último recurso",
			raw: saiposdomain.RawSale{
				"created_at": "2025-11-03T10:00:00Z",
			},
			expected: time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sale := Normalize(tt.raw)
			require.NotNil(t, sale)
			assert.Equal(t, tt.expected, sale.Date)
		})
	}
}

func TestNormalize_SkipsRecordWithoutUsableDate(t *testing.T) {
	raw := saiposdomain.RawSale{
		"total_value": 42.5,
		"origin_name": "iFood",
	}

	assert.Nil(t, Normalize(raw))

	// Data presente mas em formato irreconhecível também é pulada
	raw["shift_date"] = "01/11/2025"
	assert.Nil(t, Normalize(raw))
}

func TestNormalize_AmountFieldFallbackOrder(t *testing.T) {
	raw := saiposdomain.RawSale{
		"shift_date":   "2025-11-01",
		"amount_total": 99.9,
		"amount":       10.0,
	}

	sale := Normalize(raw)
	require.NotNil(t, sale)
	assert.Equal(t, "99.9", sale.Amount.String())

	delete(raw, "amount_total")
	sale = Normalize(raw)
	require.NotNil(t, sale)
	assert.Equal(t, "10", sale.Amount.String())
}

func TestNormalize_AmountDefaultsToZero(t *testing.T) {
	raw := saiposdomain.RawSale{
		"shift_date": "2025-11-01",
	}

	sale := Normalize(raw)
	require.NotNil(t, sale)
	assert.True(t, sale.Amount.IsZero())
}

func TestNormalize_AmountAcceptsStringAndInteger(t *testing.T) {
	sale := Normalize(saiposdomain.RawSale{
		"shift_date":  "2025-11-01",
		"total_value": "150.75",
	})
	require.NotNil(t, sale)
	assert.Equal(t, "150.75", sale.Amount.String())

	sale = Normalize(saiposdomain.RawSale{
		"shift_date":  "2025-11-01",
		"total_value": 200,
	})
	require.NotNil(t, sale)
	assert.Equal(t, "200", sale.Amount.String())
}

func TestNormalize_ChannelDefaultsAndLowercases(t *testing.T) {
	sale := Normalize(saiposdomain.RawSale{
		"shift_date": "2025-11-01",
	})
	require.NotNil(t, sale)
	assert.Equal(t, domain.ChannelOther, sale.Channel)

	sale = Normalize(saiposdomain.RawSale{
		"shift_date":  "2025-11-01",
		"origin_name": "  iFood ",
	})
	require.NotNil(t, sale)
	assert.Equal(t, "ifood", sale.Channel)

	sale = Normalize(saiposdomain.RawSale{
		"shift_date": "2025-11-01",
		"channel":    "Balcao",
	})
	require.NotNil(t, sale)
	assert.Equal(t, "balcao", sale.Channel)
}

func TestNormalize_CustomerID(t *testing.T) {
	tests := []struct {
		name     string
		raw      saiposdomain.RawSale
		expected *string
	}{
		{
			name: "objeto customer aninhado com id string",
			raw: saiposdomain.RawSale{
				"shift_date": "2025-11-01",
				"customer":   map[string]any{"id_customer": "C123"},
			},
			expected: strPtr("C123"),
		},
		{
			name: "objeto cliente aninhado com id numérico",
			raw: saiposdomain.RawSale{
				"shift_date": "2025-11-01",
				"cliente":    map[string]any{"id": 4567.0},
			},
			expected: strPtr("4567"),
		},
		{
			name: "campo de topo customer_id",
			raw: saiposdomain.RawSale{
				"shift_date":  "2025-11-01",
				"customer_id": "C789",
			},
			expected: strPtr("C789"),
		},
		{
			name: "sem identificador de cliente",
			raw: saiposdomain.RawSale{
				"shift_date": "2025-11-01",
			},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sale := Normalize(tt.raw)
			require.NotNil(t, sale)

			if tt.expected == nil {
				assert.Nil(t, sale.CustomerID)
				return
			}
			require.NotNil(t, sale.CustomerID)
			assert.Equal(t, *tt.expected, *sale.CustomerID)
		})
	}
}

func strPtr(s string) *string {
	return &s
}
