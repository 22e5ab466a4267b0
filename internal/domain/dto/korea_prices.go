package dto

import "github.com/guttosm/twprice/internal/domain/models"

// KoreaPricesRequest is the body accepted by POST /api/kr/prices.
type KoreaPricesRequest struct {
	Symbols []string `json:"symbols" example:"005930,338220"`
}

// KoreaPricesResponse maps each requested symbol to its lookup outcome.
type KoreaPricesResponse map[string]models.KoreaQuote
