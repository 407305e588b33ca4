package saiposclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"

	saiposdomain "github.com/dashvendas/sales-dashboard-api/infrastructure/integrator/saipos/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const bodySnippetLimit = 200

// SearchSales busca uma única página de vendas. A paginação, o retry de 429
// e o throttle entre páginas ficam no serviço integrador.
func (c *SaiposClient) SearchSales(ctx context.Context, params saiposdomain.SearchSalesParams) ([]saiposdomain.RawSale, error) {
	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.config.Saipos.URL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/search_sales")

	// Adicionar parâmetros de consulta.
	query := endpoint.Query()
	query.Set("date_filter_column", params.DateFilterColumn)
	query.Set("start", params.StartDate)
	query.Set("end", params.EndDate)
	query.Set("limit", strconv.Itoa(params.Limit))
	query.Set("offset", strconv.Itoa(params.Offset))
	if params.StoreID != "" {
		query.Set("store_id", params.StoreID)
	}
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+params.Token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler o corpo da resposta: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &saiposdomain.RateLimitedError{RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"))}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &saiposdomain.UpstreamError{
			StatusCode: resp.StatusCode,
			Snippet:    bodySnippet(body),
		}
	}

	sales, err := decodeSalesBody(body)
	if err != nil {
		return nil, &saiposdomain.UpstreamError{
			StatusCode: resp.StatusCode,
			Snippet:    bodySnippet(body),
		}
	}

	return sales, nil
}

// decodeSalesBody normaliza os três formatos de corpo conhecidos da API:
// array puro, {"data": [...]} e {"items": [...]}.
func decodeSalesBody(body []byte) ([]saiposdomain.RawSale, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var sales []saiposdomain.RawSale
		if err := json.Unmarshal(trimmed, &sales); err != nil {
			return nil, fmt.Errorf("erro ao decodificar array de vendas: %w", err)
		}
		return sales, nil
	}

	var envelope struct {
		Data  []saiposdomain.RawSale `json:"data"`
		Items []saiposdomain.RawSale `json:"items"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("erro ao decodificar envelope de vendas: %w", err)
	}

	if envelope.Data != nil {
		return envelope.Data, nil
	}
	return envelope.Items, nil
}

// parseRetryAfter aceita segundos ou data HTTP, como permite a RFC 7231.
func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}

	if seconds, err := strconv.Atoi(value); err == nil && seconds >= 0 {
		return time.Duration(seconds) * time.Second
	}

	if at, err := http.ParseTime(value); err == nil {
		if d := time.Until(at); d > 0 {
			return d
		}
	}

	return 0
}

func bodySnippet(body []byte) string {
	snippet := bytes.TrimSpace(body)
	if len(snippet) > bodySnippetLimit {
		snippet = snippet[:bodySnippetLimit]
	}
	return string(snippet)
}
