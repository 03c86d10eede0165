package domain

import (
	"github.com/shopspring/decimal"
)

// PremiumRate is the flat share of the declared value charged as premium.
var PremiumRate = decimal.RequireFromString("0.01")

// PremiumPlaces is the number of fractional digits a premium is rounded to.
const PremiumPlaces = 2

// CalculatePremium returns round(value * PremiumRate, 2).
// Rounding is half away from zero on the shortest decimal form of value,
// so 999 gives 9.99 and 12.5 gives 0.13.
func CalculatePremium(value float64) float64 {
	return decimal.NewFromFloat(value).
		Mul(PremiumRate).
		Round(PremiumPlaces).
		InexactFloat64()
}

// Quote computes the result for a declared value that may be malformed.
// Anything ParseValue rejects is priced as zero.
func Quote(raw any) QuoteResult {
	v, err := ParseValue(raw)
	if err != nil {
		v = 0
	}
	return QuoteResult{Quote: CalculatePremium(v)}
}
