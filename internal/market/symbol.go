package market

// Symbols builds exchange-qualified symbols from bare ticker codes.
//
// Taiwan listings are quoted as "<code>.TW" on TWSE and "<code>.TWO" on TPEx
// (the OTC market); the suffixes are configurable.
type Symbols struct {
	PrimarySuffix   string
	AlternateSuffix string
}

// DefaultSymbols returns the TWSE/TPEx suffix pair.
func DefaultSymbols() Symbols {
	return Symbols{PrimarySuffix: ".TW", AlternateSuffix: ".TWO"}
}

// Primary returns the listed-market symbol for code.
func (s Symbols) Primary(code string) string {
	return code + s.PrimarySuffix
}

// Alternate returns the OTC-market symbol for code.
func (s Symbols) Alternate(code string) string {
	return code + s.AlternateSuffix
}

// Unique returns codes with duplicates removed, keeping first-seen order.
func Unique(codes []string) []string {
	seen := make(map[string]struct{}, len(codes))
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// KoreanCode extracts the first 6-digit run from a KRX symbol
// ("005930.KS" -> "005930"). ok is false when there is none.
func KoreanCode(symbol string) (code string, ok bool) {
	run := 0
	for i := 0; i < len(symbol); i++ {
		if symbol[i] >= '0' && symbol[i] <= '9' {
			run++
			if run == 6 {
				return symbol[i-5 : i+1], true
			}
			continue
		}
		run = 0
	}
	return "", false
}
