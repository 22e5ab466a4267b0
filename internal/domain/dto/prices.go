package dto

import "github.com/guttosm/twprice/internal/domain/models"

// PricesRequest is the body accepted by POST /api/prices.
type PricesRequest struct {
	Codes []string `json:"codes" example:"2330,0050"`
}

// PricesResponse maps every unique requested code to its price rounded to
// 2 decimals, or null when no source had a quote.
//
// Example:
//
//	{"2330": 580.12, "0050": null}
type PricesResponse map[string]*float64

// NewPricesResponse converts resolver output into the wire representation.
func NewPricesResponse(results map[string]models.PriceResult) PricesResponse {
	out := make(PricesResponse, len(results))
	for code, r := range results {
		if !r.Found {
			out[code] = nil
			continue
		}
		v := r.Price.InexactFloat64()
		out[code] = &v
	}
	return out
}
