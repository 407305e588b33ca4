package domain

import "time"

// SyncState é o estado da máquina de sincronização de uma conexão.
type SyncState string

const (
	SyncStateIdle        SyncState = "IDLE"
	SyncStateFetching    SyncState = "FETCHING"
	SyncStateNormalizing SyncState = "NORMALIZING"
	SyncStateAggregating SyncState = "AGGREGATING"
	SyncStateCommitting  SyncState = "COMMITTING"
	SyncStateSucceeded   SyncState = "SUCCEEDED"
	SyncStateFailed      SyncState = "FAILED"
)

// SyncResult é o resultado da sincronização de uma conexão. Uma falha aqui
// nunca aborta as demais conexões de um lote.
type SyncResult struct {
	ConnectionID   string    `json:"connection_id"`
	Success        bool      `json:"success"`
	State          SyncState `json:"state"`
	DaysSynced     int       `json:"days_synced"`
	RecordsFetched int       `json:"records_fetched"`
	RecordsSkipped int       `json:"records_skipped"`
	ErrorKind      string    `json:"error_kind,omitempty"`
	Error          string    `json:"error,omitempty"`
	StartedAt      time.Time `json:"started_at"`
	FinishedAt     time.Time `json:"finished_at"`
}

// SyncBatchResult consolida o resultado de um lote de conexões.
type SyncBatchResult struct {
	AllSucceeded bool          `json:"all_succeeded"`
	Results      []*SyncResult `json:"results"`
}
