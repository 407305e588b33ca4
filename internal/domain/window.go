package domain

import "time"

// SyncWindow é o intervalo absoluto [Start, End] de uma sincronização,
// calculado a partir do calendário civil da loja.
type SyncWindow struct {
	Start time.Time
	End   time.Time
	Days  int
}

// EachDay retorna a meia-noite UTC de cada dia civil do período, em ordem
// crescente. É a chave usada para agregação e persistência.
func (w SyncWindow) EachDay() []time.Time {
	days := make([]time.Time, 0, w.Days)
	for i := 0; i < w.Days; i++ {
		d := w.Start.AddDate(0, 0, i)
		days = append(days, time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC))
	}
	return days
}
