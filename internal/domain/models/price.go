package models

import "github.com/shopspring/decimal"

// Source identifies which step of the fallback chain produced a price.
type Source string

const (
	SourceNone      Source = ""
	SourcePrimary   Source = "primary"   // live quote on the primary (listed) market
	SourceAlternate Source = "alternate" // live quote on the alternate (OTC) market
	SourceHistory   Source = "history"   // most recent daily close on the primary market
)

// PriceResult is the outcome of resolving a single ticker code.
//
// Found == false is the explicit "unresolved" marker; Price is then zero and
// must be ignored. When Found is true, Price is already rounded to 2 decimals.
//
// swagger:model PriceResult
type PriceResult struct {
	Code   string
	Price  decimal.Decimal
	Found  bool
	Source Source
}

// Unresolved returns the absence marker for code.
func Unresolved(code string) PriceResult {
	return PriceResult{Code: code}
}
