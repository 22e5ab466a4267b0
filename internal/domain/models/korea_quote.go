package models

// KoreaQuote is the per-symbol result of a Korean price lookup.
// Exactly one of Price (OK) or Error (!OK) is meaningful.
type KoreaQuote struct {
	OK    bool    `json:"ok" example:"true"`
	Price float64 `json:"price,omitempty" example:"71200"`
	Error string  `json:"error,omitempty" example:"invalid code: ABC"`
}
