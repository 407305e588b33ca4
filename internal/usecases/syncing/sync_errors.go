package syncing

import (
	"errors"
	"fmt"
)

// ErrorKind classifica as falhas da pipeline de sincronização. O conjunto é
// fechado de propósito: quem consome o resultado decide pelo kind, nunca por
// comparação de mensagem.
type ErrorKind string

const (
	ErrorKindWindow   ErrorKind = "WINDOW"
	ErrorKindUpstream ErrorKind = "UPSTREAM"
	ErrorKindCommit   ErrorKind = "COMMIT"
)

// Erros específicos para o contexto de sincronização
var (
	ErrConnectionIDRequired = errors.New("connection ID is required")
	ErrConnectionNotFound   = errors.New("connection not found")
	ErrConnectionDisabled   = errors.New("connection is disabled")
	ErrInvalidWindowDays    = errors.New("window days must be greater than zero")
)

// SyncError é um erro com contexto adicional da pipeline
type SyncError struct {
	Kind         ErrorKind
	ConnectionID string
	Err          error
}

func (e *SyncError) Error() string {
	if e.ConnectionID != "" {
		return fmt.Sprintf("[%s] conexão %s: %s", e.Kind, e.ConnectionID, e.Err.Error())
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Err.Error())
}

// Unwrap retorna o erro subjacente
func (e *SyncError) Unwrap() error {
	return e.Err
}

func NewSyncError(kind ErrorKind, connectionID string, err error) *SyncError {
	return &SyncError{
		Kind:         kind,
		ConnectionID: connectionID,
		Err:          err,
	}
}

// KindOf extrai o ErrorKind de um erro da pipeline; vazio se não for SyncError.
func KindOf(err error) ErrorKind {
	var syncErr *SyncError
	if errors.As(err, &syncErr) {
		return syncErr.Kind
	}
	return ""
}
