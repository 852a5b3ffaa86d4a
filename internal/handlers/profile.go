package handlers

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"nexora/internal/models"
)

// compactRequest is the short-key form of ApplicantRequest used for
// shareable profile codes.
type compactRequest struct {
	InvestmentBudget      float64            `json:"b,omitempty"`
	NetWorth              float64            `json:"n,omitempty"`
	FamilySize            int                `json:"f,omitempty"`
	Age                   int                `json:"a,omitempty"`
	CountryPreference     string             `json:"c,omitempty"`
	ProgramTypePreference models.ProgramType `json:"t,omitempty"`
}

func toCompact(req models.ApplicantRequest) compactRequest {
	return compactRequest{
		InvestmentBudget: req.InvestmentBudget, NetWorth: req.NetWorth,
		FamilySize: req.FamilySize, Age: req.Age,
		CountryPreference:     req.CountryPreference,
		ProgramTypePreference: req.ProgramTypePreference,
	}
}

func fromCompact(c compactRequest) models.ApplicantRequest {
	return models.ApplicantRequest{
		InvestmentBudget: c.InvestmentBudget, NetWorth: c.NetWorth,
		FamilySize: c.FamilySize, Age: c.Age,
		CountryPreference:     c.CountryPreference,
		ProgramTypePreference: c.ProgramTypePreference,
	}
}

const codePrefix = "NEX-"

// EncodeProfileHandler encodes an applicant request into a shareable code.
func EncodeProfileHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req models.ApplicantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	defer r.Body.Close()

	data, err := json.Marshal(toCompact(req))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "encoding error")
		return
	}

	code := codePrefix + base64.RawURLEncoding.EncodeToString(data)
	writeJSON(w, http.StatusOK, map[string]string{"code": code})
}

// DecodeProfileHandler decodes a profile code back to an applicant request.
func DecodeProfileHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" || !strings.HasPrefix(code, codePrefix) {
		writeError(w, http.StatusBadRequest, "invalid code")
		return
	}
	if len(code) > 256 {
		writeError(w, http.StatusBadRequest, "code too long")
		return
	}

	data, err := base64.RawURLEncoding.DecodeString(strings.TrimPrefix(code, codePrefix))
	if err != nil {
		writeError(w, http.StatusBadRequest, "malformed code")
		return
	}

	var compact compactRequest
	if err := json.Unmarshal(data, &compact); err != nil {
		writeError(w, http.StatusBadRequest, "undecodable code")
		return
	}

	req := fromCompact(compact)
	if req.FamilySize == 0 {
		req.FamilySize = 1
	}
	if msg, ok := validateRequest(req); !ok {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	writeJSON(w, http.StatusOK, req)
}
