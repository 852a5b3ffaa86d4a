package handlers

import (
	"nexora/internal/models"
)

// validateRequest enforces the boundary contract: the engine assumes
// pre-validated input and its behavior on out-of-range values is undefined.
func validateRequest(req models.ApplicantRequest) (string, bool) {
	if req.InvestmentBudget <= 0 {
		return "investment_budget must be greater than 0", false
	}
	if req.NetWorth < 0 {
		return "net_worth must be 0 or greater", false
	}
	if req.FamilySize < 1 || req.FamilySize > 20 {
		return "family_size must be between 1 and 20", false
	}
	if req.Age != 0 && (req.Age < 18 || req.Age > 120) {
		return "age must be between 18 and 120", false
	}
	if req.ProgramTypePreference != "" && !models.ValidProgramType(req.ProgramTypePreference) {
		return "invalid program_type_preference", false
	}
	return "", true
}
