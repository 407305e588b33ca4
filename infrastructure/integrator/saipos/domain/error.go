package saiposdomain

import (
	"fmt"
	"time"
)

// UpstreamError representa uma resposta não-2xx (ou corpo inválido) da API
// do Saipos. Fatal para a sincronização da conexão; não é retentado fora do
// fetcher.
type UpstreamError struct {
	StatusCode int
	Snippet    string
}

func (e *UpstreamError) Error() string {
	if e.Snippet != "" {
		return fmt.Sprintf("saipos respondeu status %d: %s", e.StatusCode, e.Snippet)
	}
	return fmt.Sprintf("saipos respondeu status %d", e.StatusCode)
}

// RateLimitedError representa um HTTP 429. Retentado dentro do fetcher;
// depois do limite de tentativas escala para UpstreamError.
type RateLimitedError struct {
	// RetryAfter é o valor do header Retry-After, zero quando ausente.
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("saipos rate limit atingido, retry-after %s", e.RetryAfter)
	}
	return "saipos rate limit atingido"
}
