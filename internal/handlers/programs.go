package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"nexora/internal/catalog"
	"nexora/internal/models"
)

// ProgramsHandler lists catalog programs with optional filters:
// ?country=, ?program_type=, ?min_investment=, ?max_investment=.
func ProgramsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	q := r.URL.Query()
	country := q.Get("country")
	programType := models.ProgramType(q.Get("program_type"))
	minInvestment, _ := strconv.ParseFloat(q.Get("min_investment"), 64)
	maxInvestment, _ := strconv.ParseFloat(q.Get("max_investment"), 64)

	if programType != "" && !models.ValidProgramType(programType) {
		writeError(w, http.StatusBadRequest, "invalid program_type")
		return
	}

	programs := catalog.All()
	if country != "" {
		programs = catalog.ByCountry(country)
	}

	filtered := programs[:0]
	for _, p := range programs {
		if programType != "" && (p.ProgramType == nil || *p.ProgramType != programType) {
			continue
		}
		if minInvestment > 0 && (p.InvestmentMinAmount == nil || *p.InvestmentMinAmount < minInvestment) {
			continue
		}
		if maxInvestment > 0 && (p.InvestmentMaxAmount == nil || *p.InvestmentMaxAmount > maxInvestment) {
			continue
		}
		filtered = append(filtered, p)
	}
	if filtered == nil {
		filtered = []models.Program{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"count":  len(filtered),
		"data":   filtered,
	})
}

// ProgramDetailHandler serves a single program by id (/api/programs/{id}).
func ProgramDetailHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	idStr := strings.TrimPrefix(r.URL.Path, "/api/programs/")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid program id")
		return
	}

	program, ok := catalog.ByID(id)
	if !ok {
		writeError(w, http.StatusNotFound, "program not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   program,
	})
}

// CountriesHandler returns the sorted list of countries with programs.
func CountriesHandler(w http.ResponseWriter, r *http.Request) {
	countries := catalog.Countries()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"count":  len(countries),
		"data":   countries,
	})
}
