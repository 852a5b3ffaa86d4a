// Package eligibility ranks residency programs against an applicant profile.
// The engine is pure and stateless: it takes a catalog snapshot and a request,
// and deterministically produces a ranked response. Input validation is the
// boundary layer's job; nothing in here returns an error.
package eligibility

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"nexora/internal/currency"
	"nexora/internal/models"
)

const topMatches = 5

// Weights is the scoring policy. The four parts sum to 100 by default so a
// full match scores exactly 100. It is plain data so tests can substitute
// alternative weightings without touching the algorithm.
type Weights struct {
	Investment float64
	Family     float64
	NetWorth   float64
	TypeBonus  float64
}

// DefaultWeights is the fixed production policy.
var DefaultWeights = Weights{Investment: 40, Family: 30, NetWorth: 20, TypeBonus: 10}

// Engine scores and ranks programs for applicant requests.
type Engine struct {
	weights Weights
}

// New returns an engine with the default scoring weights.
func New() *Engine {
	return &Engine{weights: DefaultWeights}
}

// NewWithWeights returns an engine with a custom scoring policy.
func NewWithWeights(w Weights) *Engine {
	return &Engine{weights: w}
}

// CheckEligibility ranks programs for the request and returns the top matches.
// Programs scoring exactly 0 are discarded; ties are broken by the lower
// USD-equivalent minimum investment, then original catalog order.
func (e *Engine) CheckEligibility(req models.ApplicantRequest, programs []models.Program) models.EligibilityResponse {
	requestID := "req_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]

	candidates := programs
	if req.CountryPreference != "" {
		candidates = nil
		for _, p := range programs {
			if p.Country == req.CountryPreference {
				candidates = append(candidates, p)
			}
		}
	}

	type scored struct {
		program models.Program
		score   float64
	}
	var matches []scored
	for _, p := range candidates {
		score, _ := e.Score(p, req)
		if score > 0 {
			matches = append(matches, scored{program: p, score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score > matches[j].score
		}
		return minInvestmentUSD(matches[i].program) < minInvestmentUSD(matches[j].program)
	})
	if len(matches) > topMatches {
		matches = matches[:topMatches]
	}

	top := make([]models.Program, 0, len(matches))
	total := 0.0
	for _, m := range matches {
		top = append(top, m.program)
		total += m.score
	}
	overall := 0.0
	if len(matches) > 0 {
		overall = round2(total / float64(len(matches)))
	}

	var message string
	switch len(matches) {
	case 0:
		message = "No matching programs found based on your criteria. Consider adjusting your budget or preferences."
	case 1:
		message = fmt.Sprintf("Found 1 matching program based on your investment budget of $%s", grouped(req.InvestmentBudget))
	default:
		message = fmt.Sprintf("Found %d matching programs based on your criteria", len(matches))
	}

	return models.EligibilityResponse{
		RequestID:        requestID,
		Status:           "success",
		Timestamp:        time.Now().UTC().Format("2006-01-02T15:04:05") + "Z",
		MatchingPrograms: top,
		EligibilityScore: overall,
		Message:          message,
	}
}

// Score computes the weighted match score for one program and returns the
// fully populated per-program detail used for ranking.
func (e *Engine) Score(p models.Program, req models.ApplicantRequest) (float64, models.MatchDetail) {
	score := 0.0
	var factors, issues []string

	investmentFit := checkInvestmentFit(p, req, &factors, &issues)
	if investmentFit {
		score += e.weights.Investment
	}

	familyFit := checkFamilyFit(p, req, &factors, &issues)
	if familyFit {
		score += e.weights.Family
	}

	netWorthFit := checkNetWorthFit(p, req, &factors, &issues)
	if netWorthFit {
		score += e.weights.NetWorth
	}

	if req.ProgramTypePreference != "" && p.ProgramType != nil && req.ProgramTypePreference == *p.ProgramType {
		score += e.weights.TypeBonus
		factors = append(factors, fmt.Sprintf("Matches your preferred program type (%s)", req.ProgramTypePreference))
	}

	detail := models.MatchDetail{
		ProgramID:       p.ID,
		ProgramName:     p.ProgramName,
		Country:         p.Country,
		MatchScore:      round1(score),
		InvestmentFit:   investmentFit,
		FamilyFit:       familyFit,
		NetWorthFit:     netWorthFit,
		MatchingFactors: factors,
		PotentialIssues: issues,
	}
	return score, detail
}

// checkInvestmentFit converts the USD budget into the program currency and
// compares it to the program minimum. No minimum means no constraint.
func checkInvestmentFit(p models.Program, req models.ApplicantRequest, factors, issues *[]string) bool {
	if p.InvestmentMinAmount == nil {
		return true
	}

	converted := currency.Convert(req.InvestmentBudget, "USD", p.InvestmentCurrency)
	if converted >= *p.InvestmentMinAmount {
		*factors = append(*factors, fmt.Sprintf(
			"Investment budget ($%s) meets minimum requirement", grouped(req.InvestmentBudget)))
		return true
	}

	shortfall := *p.InvestmentMinAmount - converted
	*issues = append(*issues, fmt.Sprintf(
		"Investment shortfall of %s%s (required: %s%s)",
		p.InvestmentCurrency, grouped(shortfall),
		p.InvestmentCurrency, grouped(*p.InvestmentMinAmount)))
	return false
}

func checkFamilyFit(p models.Program, req models.ApplicantRequest, factors, issues *[]string) bool {
	if p.FamilySizeLimit == nil {
		return true
	}

	if req.FamilySize <= *p.FamilySizeLimit {
		*factors = append(*factors, fmt.Sprintf(
			"Family size (%d) within limit (%d)", req.FamilySize, *p.FamilySizeLimit))
		return true
	}
	*issues = append(*issues, fmt.Sprintf(
		"Family size (%d) exceeds program limit (%d)", req.FamilySize, *p.FamilySizeLimit))
	return false
}

func checkNetWorthFit(p models.Program, req models.ApplicantRequest, factors, issues *[]string) bool {
	if p.NetWorthRequired == nil {
		return true
	}

	if req.NetWorth >= *p.NetWorthRequired {
		*factors = append(*factors, fmt.Sprintf(
			"Net worth ($%s) meets requirement", grouped(req.NetWorth)))
		return true
	}
	shortfall := *p.NetWorthRequired - req.NetWorth
	*issues = append(*issues, fmt.Sprintf(
		"Net worth shortfall of $%s (required: $%s)",
		grouped(shortfall), grouped(*p.NetWorthRequired)))
	return false
}

// minInvestmentUSD normalizes a program's minimum investment to USD for the
// tie-break; programs with no minimum sort first.
func minInvestmentUSD(p models.Program) float64 {
	if p.InvestmentMinAmount == nil {
		return 0
	}
	return currency.Convert(*p.InvestmentMinAmount, p.InvestmentCurrency, "USD")
}

// grouped formats an amount with comma thousands separators, no decimals.
func grouped(v float64) string {
	n := int64(math.Round(v))
	if n < 0 {
		return "-" + grouped(-v)
	}
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	rem := len(s) % 3
	if rem == 0 {
		rem = 3
	}
	var b strings.Builder
	b.WriteString(s[:rem])
	for i := rem; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
