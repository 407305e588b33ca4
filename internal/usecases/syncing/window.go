package syncing

import (
	"time"

	"github.com/dashvendas/sales-dashboard-api/internal/domain"
)

// ComputeWindow calcula a janela [início, fim] dos últimos N dias no
// calendário civil da loja: fim é 23:59:59.999 de hoje e início é
// 00:00:00.000 de (hoje - (N-1)), ambos no fuso da loja.
//
// O fuso é um offset fixo em horas (ex.: -3 para as lojas brasileiras), sem
// regras de horário de verão. É uma simplificação conhecida e deliberada —
// não trocar por fuso IANA sem decisão de produto.
func ComputeWindow(days int, timezoneOffsetHours int, now time.Time) (domain.SyncWindow, error) {
	if days <= 0 {
		return domain.SyncWindow{}, NewSyncError(ErrorKindWindow, "", ErrInvalidWindowDays)
	}

	loc := time.FixedZone("fixed", timezoneOffsetHours*3600)

	// "Hoje" é o dia civil no fuso da loja, não em UTC.
	today := now.In(loc)

	end := time.Date(today.Year(), today.Month(), today.Day(), 23, 59, 59, 999000000, loc)
	firstDay := today.AddDate(0, 0, -(days - 1))
	start := time.Date(firstDay.Year(), firstDay.Month(), firstDay.Day(), 0, 0, 0, 0, loc)

	return domain.SyncWindow{
		Start: start,
		End:   end,
		Days:  days,
	}, nil
}
