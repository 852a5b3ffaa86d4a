package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"nexora/internal/catalog"
	"nexora/internal/currency"
	"nexora/internal/eligibility"
	"nexora/internal/metrics"
	"nexora/internal/models"
	sentryutil "nexora/internal/sentry"
)

var engine = eligibility.New()

var startTime = time.Now()

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"status": "error", "message": message})
}

// EligibilityHandler scores the program catalog against an applicant request
// and returns the top matches.
func EligibilityHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req models.ApplicantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sentryutil.CaptureError(err, map[string]string{"handler": "eligibility", "phase": "decode"})
		metrics.RequestsRejected.WithLabelValues("eligibility", "decode").Inc()
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	defer r.Body.Close()

	if req.FamilySize == 0 {
		req.FamilySize = 1
	}

	if msg, ok := validateRequest(req); !ok {
		metrics.RequestsRejected.WithLabelValues("eligibility", "validation").Inc()
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	// The catalog supports pre-filtering by country; the engine filters again
	// either way, so an unknown country simply yields the no-match path.
	programs := catalog.All()
	if req.CountryPreference != "" {
		programs = catalog.ByCountry(req.CountryPreference)
	}

	result := engine.CheckEligibility(req, programs)

	IncrementCounter()
	metrics.EligibilityChecks.Inc()
	metrics.EligibilityMatches.Observe(float64(len(result.MatchingPrograms)))

	writeJSON(w, http.StatusOK, result)
}

type conversionRequest struct {
	Amount       float64 `json:"amount"`
	FromCurrency string  `json:"from_currency"`
	ToCurrency   string  `json:"to_currency"`
}

// ConvertCurrencyHandler converts an amount between two supported currencies.
// Unknown currency codes are rejected here rather than silently treated as
// rate 1.0 by the converter.
func ConvertCurrencyHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	req := conversionRequest{FromCurrency: "USD", ToCurrency: "EUR"}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sentryutil.CaptureError(err, map[string]string{"handler": "convert", "phase": "decode"})
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	defer r.Body.Close()

	if req.Amount <= 0 {
		writeError(w, http.StatusBadRequest, "amount must be greater than 0")
		return
	}
	if !currency.Known(req.FromCurrency) {
		metrics.RequestsRejected.WithLabelValues("convert", "unknown_currency").Inc()
		writeError(w, http.StatusBadRequest, "unsupported currency: "+req.FromCurrency)
		return
	}
	if !currency.Known(req.ToCurrency) {
		metrics.RequestsRejected.WithLabelValues("convert", "unknown_currency").Inc()
		writeError(w, http.StatusBadRequest, "unsupported currency: "+req.ToCurrency)
		return
	}

	metrics.CurrencyConversions.WithLabelValues(req.FromCurrency, req.ToCurrency).Inc()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data": models.ConversionResult{
			OriginalAmount:  req.Amount,
			FromCurrency:    req.FromCurrency,
			ToCurrency:      req.ToCurrency,
			ConvertedAmount: currency.Convert(req.Amount, req.FromCurrency, req.ToCurrency),
			ExchangeRate:    currency.Rate(req.FromCurrency, req.ToCurrency),
			Timestamp:       time.Now().UTC().Format("2006-01-02T15:04:05") + "Z",
		},
	})
}

// RatesHandler returns exchange rates from a base currency to every other
// supported currency.
func RatesHandler(w http.ResponseWriter, r *http.Request) {
	base := r.URL.Query().Get("base")
	if base == "" {
		base = "USD"
	}
	if !currency.Known(base) {
		writeError(w, http.StatusBadRequest, "unsupported currency: "+base)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "success",
		"base":      base,
		"rates":     currency.RatesFor(base),
		"timestamp": time.Now().UTC().Format("2006-01-02T15:04:05") + "Z",
	})
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// StatsHandler reports service counters for the landing page.
func StatsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"eligibility_checks": GetCounter(),
		"programs":           len(catalog.All()),
		"countries":          len(catalog.Countries()),
		"uptime_seconds":     int(time.Since(startTime).Seconds()),
	})
}
