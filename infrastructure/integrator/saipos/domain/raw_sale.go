package saiposdomain

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// RawSale é uma venda crua retornada pela API do Saipos. O schema não é
// garantido: o mesmo campo lógico aparece com nomes diferentes conforme o
// tenant e a versão da API, então o registro é tratado como um saco de
// campos com busca por lista ordenada de fallback (ver normalizador).
type RawSale map[string]any

// FirstField retorna o primeiro valor não-nulo entre as chaves, na ordem.
func (r RawSale) FirstField(keys []string) (any, bool) {
	for _, key := range keys {
		if v, ok := r[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// FirstString retorna o primeiro valor não-nulo coercível a string.
func (r RawSale) FirstString(keys []string) (string, bool) {
	for _, key := range keys {
		v, ok := r[key]
		if !ok || v == nil {
			continue
		}
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			return s, true
		}
	}
	return "", false
}

// FirstNumber retorna o primeiro valor não-nulo coercível a número.
// A API mistura números e strings numéricas no mesmo campo.
func (r RawSale) FirstNumber(keys []string) (decimal.Decimal, bool) {
	for _, key := range keys {
		v, ok := r[key]
		if !ok || v == nil {
			continue
		}
		if d, ok := coerceNumber(v); ok {
			return d, true
		}
	}
	return decimal.Zero, false
}

// NestedString busca um campo string dentro de um objeto aninhado.
func (r RawSale) NestedString(objectKey string, fieldKeys []string) (string, bool) {
	v, ok := r[objectKey]
	if !ok || v == nil {
		return "", false
	}

	nested, ok := v.(map[string]any)
	if !ok {
		return "", false
	}

	return RawSale(nested).FirstString(fieldKeys)
}

func coerceNumber(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n), true
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int64:
		return decimal.NewFromInt(n), true
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return decimal.Zero, false
		}
		if _, err := strconv.ParseFloat(s, 64); err != nil {
			return decimal.Zero, false
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	default:
		return decimal.Zero, false
	}
}

// SearchSalesParams são os parâmetros de uma página de GET /search_sales.
type SearchSalesParams struct {
	Token            string
	StoreID          string
	DateFilterColumn string
	StartDate        string
	EndDate          string
	Limit            int
	Offset           int
}
