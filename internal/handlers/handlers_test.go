package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nexora/internal/models"
)

func postJSON(t *testing.T, handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func getPath(t *testing.T, handler http.HandlerFunc, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v (body: %s)", err, rec.Body.String())
	}
}

func TestEligibilityHandler(t *testing.T) {
	body := `{"investment_budget": 600000, "net_worth": 900000, "family_size": 3}`
	rec := postJSON(t, EligibilityHandler, "/api/eligibility", body)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var resp models.EligibilityResponse
	decodeBody(t, rec, &resp)

	if resp.Status != "success" {
		t.Errorf("status = %q, want success", resp.Status)
	}
	if !strings.HasPrefix(resp.RequestID, "req_") {
		t.Errorf("request_id = %q, want req_ prefix", resp.RequestID)
	}
	if len(resp.MatchingPrograms) == 0 || len(resp.MatchingPrograms) > 5 {
		t.Errorf("got %d matches, want 1..5", len(resp.MatchingPrograms))
	}
	if resp.EligibilityScore <= 0 || resp.EligibilityScore > 100 {
		t.Errorf("eligibility_score = %v, want in (0, 100]", resp.EligibilityScore)
	}
	if resp.Message == "" {
		t.Error("message is empty")
	}
}

func TestEligibilityHandlerCountryPreference(t *testing.T) {
	body := `{"investment_budget": 2000000, "net_worth": 3000000, "family_size": 2, "country_preference": "Portugal"}`
	rec := postJSON(t, EligibilityHandler, "/api/eligibility", body)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp models.EligibilityResponse
	decodeBody(t, rec, &resp)
	for _, p := range resp.MatchingPrograms {
		if p.Country != "Portugal" {
			t.Errorf("got program from %s, want Portugal only", p.Country)
		}
	}
}

func TestEligibilityHandlerUnknownCountryNoMatches(t *testing.T) {
	body := `{"investment_budget": 500000, "family_size": 1, "country_preference": "Atlantis"}`
	rec := postJSON(t, EligibilityHandler, "/api/eligibility", body)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp models.EligibilityResponse
	decodeBody(t, rec, &resp)
	if len(resp.MatchingPrograms) != 0 {
		t.Errorf("got %d matches, want 0", len(resp.MatchingPrograms))
	}
	if !strings.Contains(resp.Message, "No matching programs found") {
		t.Errorf("message = %q, want no-match message", resp.Message)
	}
}

func TestEligibilityHandlerDefaultsFamilySize(t *testing.T) {
	// family_size omitted: defaults to 1 and passes validation.
	body := `{"investment_budget": 100000}`
	rec := postJSON(t, EligibilityHandler, "/api/eligibility", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}
}

func TestEligibilityHandlerValidation(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"zero budget", `{"investment_budget": 0, "family_size": 1}`},
		{"negative budget", `{"investment_budget": -5, "family_size": 1}`},
		{"negative net worth", `{"investment_budget": 100000, "net_worth": -1, "family_size": 1}`},
		{"family too large", `{"investment_budget": 100000, "family_size": 25}`},
		{"underage", `{"investment_budget": 100000, "family_size": 1, "age": 12}`},
		{"bad program type", `{"investment_budget": 100000, "family_size": 1, "program_type_preference": "astronaut"}`},
		{"malformed json", `{"investment_budget": `},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postJSON(t, EligibilityHandler, "/api/eligibility", tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400 (body: %s)", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestEligibilityHandlerRejectsGet(t *testing.T) {
	rec := getPath(t, EligibilityHandler, "/api/eligibility")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestConvertCurrencyHandler(t *testing.T) {
	rec := postJSON(t, ConvertCurrencyHandler, "/api/currencies/convert",
		`{"amount": 100000, "from_currency": "USD", "to_currency": "EUR"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}

	var resp struct {
		Status string                  `json:"status"`
		Data   models.ConversionResult `json:"data"`
	}
	decodeBody(t, rec, &resp)

	if resp.Status != "success" {
		t.Errorf("status = %q, want success", resp.Status)
	}
	if resp.Data.ConvertedAmount != 92000 {
		t.Errorf("converted_amount = %v, want 92000", resp.Data.ConvertedAmount)
	}
	if resp.Data.ExchangeRate != 0.92 {
		t.Errorf("exchange_rate = %v, want 0.92", resp.Data.ExchangeRate)
	}
}

func TestConvertCurrencyHandlerDefaults(t *testing.T) {
	// Omitted currencies default to USD -> EUR.
	rec := postJSON(t, ConvertCurrencyHandler, "/api/currencies/convert", `{"amount": 1000}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Data models.ConversionResult `json:"data"`
	}
	decodeBody(t, rec, &resp)
	if resp.Data.FromCurrency != "USD" || resp.Data.ToCurrency != "EUR" {
		t.Errorf("defaulted to %s -> %s, want USD -> EUR", resp.Data.FromCurrency, resp.Data.ToCurrency)
	}
}

func TestConvertCurrencyHandlerRejects(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"zero amount", `{"amount": 0, "from_currency": "USD", "to_currency": "EUR"}`},
		{"unknown from", `{"amount": 100, "from_currency": "XYZ", "to_currency": "EUR"}`},
		{"unknown to", `{"amount": 100, "from_currency": "USD", "to_currency": "XYZ"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postJSON(t, ConvertCurrencyHandler, "/api/currencies/convert", tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400 (body: %s)", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestRatesHandler(t *testing.T) {
	rec := getPath(t, RatesHandler, "/api/currencies/rates?base=EUR")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Status string             `json:"status"`
		Base   string             `json:"base"`
		Rates  map[string]float64 `json:"rates"`
	}
	decodeBody(t, rec, &resp)

	if resp.Base != "EUR" {
		t.Errorf("base = %q, want EUR", resp.Base)
	}
	if _, ok := resp.Rates["EUR"]; ok {
		t.Error("rates should not include the base currency")
	}
	if len(resp.Rates) != 7 {
		t.Errorf("got %d rates, want 7", len(resp.Rates))
	}
}

func TestRatesHandlerUnknownBase(t *testing.T) {
	rec := getPath(t, RatesHandler, "/api/currencies/rates?base=XYZ")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestProgramsHandler(t *testing.T) {
	rec := getPath(t, ProgramsHandler, "/api/programs")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Status string           `json:"status"`
		Count  int              `json:"count"`
		Data   []models.Program `json:"data"`
	}
	decodeBody(t, rec, &resp)

	if resp.Count != len(resp.Data) {
		t.Errorf("count = %d but data has %d entries", resp.Count, len(resp.Data))
	}
	if resp.Count == 0 {
		t.Error("program list is empty")
	}
}

func TestProgramsHandlerFilters(t *testing.T) {
	rec := getPath(t, ProgramsHandler, "/api/programs?country=Canada&program_type=startup")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Data []models.Program `json:"data"`
	}
	decodeBody(t, rec, &resp)

	if len(resp.Data) == 0 {
		t.Fatal("expected at least one Canadian startup program")
	}
	for _, p := range resp.Data {
		if p.Country != "Canada" {
			t.Errorf("country = %q, want Canada", p.Country)
		}
		if p.ProgramType == nil || *p.ProgramType != models.TypeStartup {
			t.Errorf("%s is not a startup program", p.ProgramName)
		}
	}
}

func TestProgramsHandlerMinInvestmentFilter(t *testing.T) {
	rec := getPath(t, ProgramsHandler, "/api/programs?min_investment=400000")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Data []models.Program `json:"data"`
	}
	decodeBody(t, rec, &resp)
	for _, p := range resp.Data {
		if p.InvestmentMinAmount == nil || *p.InvestmentMinAmount < 400000 {
			t.Errorf("%s does not meet the min_investment filter", p.ProgramName)
		}
	}
}

func TestProgramsHandlerEmptyResultIsArray(t *testing.T) {
	rec := getPath(t, ProgramsHandler, "/api/programs?country=Atlantis")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"data":[]`) {
		t.Errorf("empty result should serialize as [], got: %s", rec.Body.String())
	}
}

func TestProgramsHandlerInvalidType(t *testing.T) {
	rec := getPath(t, ProgramsHandler, "/api/programs?program_type=astronaut")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestProgramDetailHandler(t *testing.T) {
	rec := getPath(t, ProgramDetailHandler, "/api/programs/1")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Data models.Program `json:"data"`
	}
	decodeBody(t, rec, &resp)
	if resp.Data.ID != 1 {
		t.Errorf("id = %d, want 1", resp.Data.ID)
	}

	rec = getPath(t, ProgramDetailHandler, "/api/programs/99999")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}

	rec = getPath(t, ProgramDetailHandler, "/api/programs/abc")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestCountriesHandler(t *testing.T) {
	rec := getPath(t, CountriesHandler, "/api/countries")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Count int      `json:"count"`
		Data  []string `json:"data"`
	}
	decodeBody(t, rec, &resp)
	if resp.Count == 0 || resp.Count != len(resp.Data) {
		t.Errorf("count = %d, data = %d entries", resp.Count, len(resp.Data))
	}
}

func TestProfileRoundTrip(t *testing.T) {
	body := `{"investment_budget": 450000, "net_worth": 600000, "family_size": 4, "country_preference": "Portugal"}`
	rec := postJSON(t, EncodeProfileHandler, "/api/encode-profile", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("encode status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}

	var encoded struct {
		Code string `json:"code"`
	}
	decodeBody(t, rec, &encoded)
	if !strings.HasPrefix(encoded.Code, "NEX-") {
		t.Fatalf("code = %q, want NEX- prefix", encoded.Code)
	}

	rec = getPath(t, DecodeProfileHandler, "/api/decode-profile?code="+encoded.Code)
	if rec.Code != http.StatusOK {
		t.Fatalf("decode status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}

	var decoded models.ApplicantRequest
	decodeBody(t, rec, &decoded)
	if decoded.InvestmentBudget != 450000 || decoded.NetWorth != 600000 ||
		decoded.FamilySize != 4 || decoded.CountryPreference != "Portugal" {
		t.Errorf("round trip mismatch: %+v", decoded)
	}
}

func TestDecodeProfileHandlerRejects(t *testing.T) {
	cases := []struct {
		name string
		code string
	}{
		{"missing code", ""},
		{"wrong prefix", "XYZ-abcdef"},
		{"malformed base64", "NEX-%%%%"},
		{"garbage payload", "NEX-bm90anNvbg"},
		{"too long", "NEX-" + strings.Repeat("A", 300)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := getPath(t, DecodeProfileHandler, "/api/decode-profile?code="+tc.code)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400 (body: %s)", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestHealthHandler(t *testing.T) {
	rec := getPath(t, HealthHandler, "/api/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Errorf("body = %s, want status ok", rec.Body.String())
	}
}

func TestStatsHandler(t *testing.T) {
	rec := getPath(t, StatsHandler, "/api/stats")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		EligibilityChecks int64 `json:"eligibility_checks"`
		Programs          int   `json:"programs"`
		Countries         int   `json:"countries"`
		UptimeSeconds     int   `json:"uptime_seconds"`
	}
	decodeBody(t, rec, &resp)
	if resp.Programs == 0 {
		t.Error("programs = 0")
	}
	if resp.Countries == 0 {
		t.Error("countries = 0")
	}
}

func TestValidateRequest(t *testing.T) {
	valid := models.ApplicantRequest{InvestmentBudget: 100000, FamilySize: 1}
	if msg, ok := validateRequest(valid); !ok {
		t.Errorf("valid request rejected: %s", msg)
	}

	// Age 0 means unspecified and is accepted.
	valid.Age = 0
	if _, ok := validateRequest(valid); !ok {
		t.Error("age 0 should be accepted as unspecified")
	}

	valid.Age = 121
	if _, ok := validateRequest(valid); ok {
		t.Error("age 121 should be rejected")
	}
}

func TestCounterIncrements(t *testing.T) {
	before := GetCounter()
	IncrementCounter()
	IncrementCounter()
	if got := GetCounter(); got != before+2 {
		t.Errorf("counter = %d, want %d", got, before+2)
	}
}
