package models

// ProgramType categorizes a residency program.
type ProgramType string

const (
	TypeInvestor    ProgramType = "investor"
	TypeEmployment  ProgramType = "employment"
	TypeStartup     ProgramType = "startup"
	TypeStudent     ProgramType = "student"
	TypeRetired     ProgramType = "retired"
	TypeFamily      ProgramType = "family"
	TypeCitizenship ProgramType = "citizenship"
	TypeOther       ProgramType = "other"
)

var programTypes = map[ProgramType]bool{
	TypeInvestor: true, TypeEmployment: true, TypeStartup: true,
	TypeStudent: true, TypeRetired: true, TypeFamily: true,
	TypeCitizenship: true, TypeOther: true,
}

// ValidProgramType reports whether t is a known program type.
func ValidProgramType(t ProgramType) bool {
	return programTypes[t]
}

// Program is a single residency/visa offering tied to one country.
// Pointer fields are optional requirements: absence means "no constraint".
type Program struct {
	ID                  int          `json:"id"`
	Country             string       `json:"country"`
	ProgramName         string       `json:"program_name"`
	Description         string       `json:"description,omitempty"`
	InvestmentRequired  string       `json:"investment_required,omitempty"`
	InvestmentCurrency  string       `json:"investment_currency"`
	InvestmentMinAmount *float64     `json:"investment_min_amount,omitempty"`
	InvestmentMaxAmount *float64     `json:"investment_max_amount,omitempty"`
	ProcessingTime      string       `json:"processing_time,omitempty"`
	ProcessingMonths    int          `json:"processing_time_months,omitempty"`
	DocumentsRequired   []string     `json:"documents_required,omitempty"`
	FamilySizeLimit     *int         `json:"family_size_limit,omitempty"`
	AgeRequirement      string       `json:"age_requirement,omitempty"`
	NetWorthRequired    *float64     `json:"net_worth_required,omitempty"`
	Benefits            string       `json:"benefits,omitempty"`
	InterviewRequired   bool         `json:"interview_required"`
	EmbassyLocations    []string     `json:"embassy_locations,omitempty"`
	ProgramType         *ProgramType `json:"program_type,omitempty"`
	CountryFlagCode     string       `json:"country_flag_code,omitempty"`
}

// ApplicantRequest is the normalized input profile used to score programs.
// Budget and net worth are USD. Optional fields default to "no preference".
type ApplicantRequest struct {
	InvestmentBudget      float64     `json:"investment_budget"`
	NetWorth              float64     `json:"net_worth"`
	FamilySize            int         `json:"family_size"`
	Age                   int         `json:"age,omitempty"`
	CountryPreference     string      `json:"country_preference,omitempty"`
	ProgramTypePreference ProgramType `json:"program_type_preference,omitempty"`
}

// MatchDetail is the per-program scoring result. Built fresh per check,
// never persisted, not mutated after construction.
type MatchDetail struct {
	ProgramID       int      `json:"program_id"`
	ProgramName     string   `json:"program_name"`
	Country         string   `json:"country"`
	MatchScore      float64  `json:"match_score"`
	InvestmentFit   bool     `json:"investment_fit"`
	FamilyFit       bool     `json:"family_fit"`
	NetWorthFit     bool     `json:"net_worth_fit"`
	MatchingFactors []string `json:"matching_factors"`
	PotentialIssues []string `json:"potential_issues"`
}

// EligibilityResponse is the ranked result of one eligibility check.
type EligibilityResponse struct {
	RequestID        string    `json:"request_id"`
	Status           string    `json:"status"`
	Timestamp        string    `json:"timestamp"`
	MatchingPrograms []Program `json:"matching_programs"`
	EligibilityScore float64   `json:"eligibility_score"`
	Message          string    `json:"message"`
}

// ConversionResult is the payload of the currency conversion endpoint.
type ConversionResult struct {
	OriginalAmount  float64 `json:"original_amount"`
	FromCurrency    string  `json:"from_currency"`
	ToCurrency      string  `json:"to_currency"`
	ConvertedAmount float64 `json:"converted_amount"`
	ExchangeRate    float64 `json:"exchange_rate"`
	Timestamp       string  `json:"timestamp"`
}
