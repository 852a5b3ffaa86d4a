// Package currency converts amounts between the fixed set of currencies
// supported by the program catalog. Rates are a static USD-relative table,
// immutable after init; live rate sourcing belongs to a different system.
package currency

import (
	"math"
	"sort"
)

// usdRates maps a currency code to its USD-relative rate (USD = 1.0).
var usdRates = map[string]float64{
	"USD": 1.0,
	"EUR": 0.92,
	"GBP": 0.79,
	"CAD": 1.36,
	"AUD": 1.52,
	"SGD": 1.34,
	"AED": 3.67,
	"CHF": 0.88,
}

// Known reports whether code is in the supported set.
func Known(code string) bool {
	_, ok := usdRates[code]
	return ok
}

// Codes returns the supported currency codes, sorted.
func Codes() []string {
	codes := make([]string, 0, len(usdRates))
	for c := range usdRates {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

func rateOrNeutral(code string) float64 {
	if r, ok := usdRates[code]; ok {
		return r
	}
	// Unknown codes fall back to a neutral 1.0. The HTTP boundary rejects
	// unsupported codes before they get here; inside the engine this keeps
	// scoring total rather than failing a whole check.
	return 1.0
}

// Convert converts amount from one currency to another via USD as pivot,
// rounded to 2 decimals. Same-currency conversion returns amount unchanged.
func Convert(amount float64, from, to string) float64 {
	if from == to {
		return amount
	}
	inUSD := amount / rateOrNeutral(from)
	return round2(inUSD * rateOrNeutral(to))
}

// Rate returns the exchange rate from one currency to another, rounded to
// 4 decimals. Because of the rounding, Rate(a,b)*Rate(b,a) is only ~1.0.
func Rate(from, to string) float64 {
	if from == to {
		return 1.0
	}
	return round4(rateOrNeutral(to) / rateOrNeutral(from))
}

// RatesFor returns the rate from base to every other supported currency.
func RatesFor(base string) map[string]float64 {
	rates := make(map[string]float64, len(usdRates)-1)
	for code := range usdRates {
		if code != base {
			rates[code] = Rate(base, code)
		}
	}
	return rates
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
