// Package catalog holds the worldwide residency/visa program dataset.
// Programs live in code the same way currency rates do: a fixed snapshot,
// immutable after init. Storage and loading belong to a different system;
// the eligibility engine only ever sees the read-only slice returned here.
package catalog

import (
	"sort"

	"nexora/internal/models"
)

func f64(v float64) *float64 { return &v }
func num(v int) *int         { return &v }

func ptype(t models.ProgramType) *models.ProgramType { return &t }

// All returns every program in the catalog. Callers must not mutate the
// returned programs; a fresh slice header is returned on every call.
func All() []models.Program {
	out := make([]models.Program, len(programs))
	copy(out, programs)
	return out
}

// ByCountry returns programs whose country matches exactly (case-sensitive).
func ByCountry(country string) []models.Program {
	var out []models.Program
	for _, p := range programs {
		if p.Country == country {
			out = append(out, p)
		}
	}
	return out
}

// ByID returns the program with the given id, or false if absent.
func ByID(id int) (models.Program, bool) {
	for _, p := range programs {
		if p.ID == id {
			return p, true
		}
	}
	return models.Program{}, false
}

// Countries returns the sorted list of distinct countries with programs.
func Countries() []string {
	seen := map[string]bool{}
	var out []string
	for _, p := range programs {
		if !seen[p.Country] {
			seen[p.Country] = true
			out = append(out, p.Country)
		}
	}
	sort.Strings(out)
	return out
}

var programs = []models.Program{

	// ─────────────────────────────────────────────
	// NORTH AMERICA
	// ─────────────────────────────────────────────
	{
		ID: 1, Country: "United States", ProgramName: "EB-5 Immigrant Investor Program",
		Description:        "Investment-based permanent residency. Investment must create at least 10 jobs; regional centers available for easier processing.",
		InvestmentRequired: "$500,000 - $1,000,000", InvestmentCurrency: "USD",
		InvestmentMinAmount: f64(500000), InvestmentMaxAmount: f64(1000000),
		ProcessingTime: "18-36 months", ProcessingMonths: 24,
		DocumentsRequired: []string{
			"Valid passport",
			"Form I-526: Immigrant Petition by Alien Entrepreneur",
			"Proof of funds and source of funds",
			"Business plan",
			"Tax returns",
		},
		FamilySizeLimit: num(10), NetWorthRequired: f64(750000),
		Benefits:          "Permanent residency, family inclusion, path to citizenship",
		InterviewRequired: true,
		EmbassyLocations:  []string{"New York", "Los Angeles", "Chicago", "Houston", "Miami"},
		ProgramType:       ptype(models.TypeInvestor), CountryFlagCode: "US",
	},
	{
		ID: 2, Country: "United States", ProgramName: "E-2 Treaty Investor Visa",
		Description:        "Nonimmigrant visa for nationals of 60+ treaty countries managing a US business.",
		InvestmentRequired: "$50,000 - $100,000 (minimum)", InvestmentCurrency: "USD",
		InvestmentMinAmount: f64(50000), InvestmentMaxAmount: f64(100000),
		ProcessingTime: "2-4 weeks", ProcessingMonths: 1,
		DocumentsRequired: []string{
			"Valid passport",
			"DS-156: Nonimmigrant Visa Application",
			"Business registration documents",
			"Evidence of capital transfer",
			"Business plan",
		},
		FamilySizeLimit: num(6),
		Benefits:        "Valid up to 5 years, renewable, can bring family",
		InterviewRequired: true,
		EmbassyLocations:  []string{"Nationwide", "Treaty-dependent countries"},
		ProgramType:       ptype(models.TypeInvestor), CountryFlagCode: "US",
	},
	{
		ID: 3, Country: "Canada", ProgramName: "Start-up Visa Program",
		Description:        "Permanent residency for founders backed by a designated Canadian investor organization.",
		InvestmentRequired: "CAD 75,000+", InvestmentCurrency: "CAD",
		InvestmentMinAmount: f64(75000),
		ProcessingTime:      "12-16 months", ProcessingMonths: 14,
		DocumentsRequired: []string{
			"Valid passport",
			"Letter of support from designated organization",
			"Language test results (CLB 5)",
			"Proof of settlement funds",
		},
		FamilySizeLimit: num(8),
		Benefits:        "Direct permanent residency, spouse work permit",
		EmbassyLocations: []string{"Ottawa", "Toronto", "Vancouver"},
		ProgramType:      ptype(models.TypeStartup), CountryFlagCode: "CA",
	},
	{
		ID: 4, Country: "Canada", ProgramName: "Federal Skilled Worker Program",
		Description:        "Points-based permanent residency for skilled workers; no investment required.",
		InvestmentRequired: "N/A (Points-based)", InvestmentCurrency: "CAD",
		ProcessingTime:     "6 months", ProcessingMonths: 6,
		DocumentsRequired: []string{
			"Valid passport",
			"Express Entry profile",
			"Educational credential assessment",
			"Language test results",
		},
		FamilySizeLimit: num(10),
		Benefits:        "Permanent residency through Express Entry, family included",
		ProgramType:     ptype(models.TypeEmployment), CountryFlagCode: "CA",
	},

	// ─────────────────────────────────────────────
	// EUROPE
	// ─────────────────────────────────────────────
	{
		ID: 5, Country: "United Kingdom", ProgramName: "Innovator Visa",
		Description:        "For founders of innovative businesses endorsed by an accredited body.",
		InvestmentRequired: "£50,000 minimum", InvestmentCurrency: "GBP",
		InvestmentMinAmount: f64(50000),
		ProcessingTime:      "8 weeks", ProcessingMonths: 2,
		DocumentsRequired: []string{
			"Valid passport",
			"Business plan",
			"Endorsement from accredited body",
			"English language certificate (CEFR B2)",
		},
		FamilySizeLimit: num(8),
		Benefits:        "Route to settlement, business ownership in UK",
		EmbassyLocations: []string{"London", "Birmingham", "Manchester", "Edinburgh"},
		ProgramType:      ptype(models.TypeStartup), CountryFlagCode: "GB",
	},
	{
		ID: 6, Country: "United Kingdom", ProgramName: "Start-up Visa",
		Description:        "Starting point for early-stage entrepreneurs with innovative ideas; no capital requirement.",
		InvestmentRequired: "No specific investment required", InvestmentCurrency: "GBP",
		ProcessingTime:     "8 weeks", ProcessingMonths: 2,
		DocumentsRequired: []string{
			"Valid passport",
			"Business plan",
			"Endorsement from accredited body",
			"English language evidence",
		},
		FamilySizeLimit: num(6),
		Benefits:        "Starting point for a UK business, family can join",
		ProgramType:     ptype(models.TypeStartup), CountryFlagCode: "GB",
	},
	{
		ID: 7, Country: "Germany", ProgramName: "Self-Employment Visa",
		Description:        "Residence permit for entrepreneurs whose business serves a German economic interest.",
		InvestmentRequired: "€50,000 - €100,000", InvestmentCurrency: "EUR",
		InvestmentMinAmount: f64(50000), InvestmentMaxAmount: f64(100000),
		ProcessingTime: "6-8 weeks", ProcessingMonths: 2,
		DocumentsRequired: []string{
			"Valid passport",
			"Business plan in German or English",
			"Evidence of qualifications",
			"Proof of sufficient capital",
		},
		FamilySizeLimit: num(6),
		Benefits:        "Renewable residence permit, settlement after 3 years",
		InterviewRequired: true,
		ProgramType:       ptype(models.TypeStartup), CountryFlagCode: "DE",
	},
	{
		ID: 8, Country: "Portugal", ProgramName: "Golden Visa",
		Description:        "Residency by investment through funds or business; minimal stay requirement.",
		InvestmentRequired: "€280,000 - €500,000+", InvestmentCurrency: "EUR",
		InvestmentMinAmount: f64(280000), InvestmentMaxAmount: f64(500000),
		ProcessingTime: "60-90 days", ProcessingMonths: 3,
		DocumentsRequired: []string{
			"Valid passport",
			"Proof of investment",
			"Criminal record certificate",
			"Portuguese tax number (NIF)",
		},
		FamilySizeLimit: num(8), NetWorthRequired: f64(500000),
		Benefits:        "Schengen mobility, citizenship after 5 years, family reunification",
		ProgramType:     ptype(models.TypeInvestor), CountryFlagCode: "PT",
	},
	{
		ID: 9, Country: "Portugal", ProgramName: "D7 Passive Income Visa",
		Description:        "For retirees and remote earners with stable passive income (~€2,700/month).",
		InvestmentRequired: "N/A (income requirement €2,700/month)", InvestmentCurrency: "EUR",
		ProcessingTime:     "3-4 weeks", ProcessingMonths: 1,
		DocumentsRequired: []string{
			"Valid passport",
			"Proof of income",
			"Bank statements",
			"Health insurance",
		},
		FamilySizeLimit: num(6), NetWorthRequired: f64(100000),
		Benefits:        "1-year residency, renewable, work from Portugal",
		ProgramType:     ptype(models.TypeRetired), CountryFlagCode: "PT",
	},
	{
		ID: 10, Country: "Greece", ProgramName: "Golden Visa",
		Description:        "Five-year residency by real-estate investment; no stay requirement.",
		InvestmentRequired: "€250,000+", InvestmentCurrency: "EUR",
		InvestmentMinAmount: f64(250000),
		ProcessingTime:      "2-3 months", ProcessingMonths: 3,
		DocumentsRequired: []string{
			"Valid passport",
			"Property purchase contract",
			"Health insurance",
			"Criminal record certificate",
		},
		FamilySizeLimit: num(7),
		Benefits:        "5-year renewable residency, Schengen travel, family included",
		ProgramType:     ptype(models.TypeInvestor), CountryFlagCode: "GR",
	},
	{
		ID: 11, Country: "Switzerland", ProgramName: "Lump-Sum Taxation Residence",
		Description:        "Residence for wealthy individuals taxed on living expenses rather than income.",
		InvestmentRequired: "CHF 450,000+ annual tax base", InvestmentCurrency: "CHF",
		InvestmentMinAmount: f64(450000),
		ProcessingTime:      "3-6 months", ProcessingMonths: 5,
		DocumentsRequired: []string{
			"Valid passport",
			"Proof of financial means",
			"Cantonal tax agreement",
			"Health insurance",
		},
		FamilySizeLimit: num(5), NetWorthRequired: f64(2000000),
		Benefits:        "Swiss residence, favorable taxation, family included",
		InterviewRequired: true,
		ProgramType:       ptype(models.TypeInvestor), CountryFlagCode: "CH",
	},
	{
		ID: 16, Country: "Spain", ProgramName: "Golden Visa",
		Description:        "Residency by investment in Spanish real estate or business; family included.",
		InvestmentRequired: "€500,000+", InvestmentCurrency: "EUR",
		InvestmentMinAmount: f64(500000),
		ProcessingTime:      "2-3 months", ProcessingMonths: 3,
		DocumentsRequired: []string{
			"Valid passport",
			"Proof of investment",
			"Criminal record certificate",
			"Health insurance",
		},
		FamilySizeLimit: num(8), NetWorthRequired: f64(700000),
		Benefits:        "Schengen mobility, renewable residency, family reunification",
		ProgramType:     ptype(models.TypeInvestor), CountryFlagCode: "ES",
	},

	// ─────────────────────────────────────────────
	// MIDDLE EAST & ASIA-PACIFIC
	// ─────────────────────────────────────────────
	{
		ID: 12, Country: "UAE", ProgramName: "Golden Visa - Investment",
		Description:        "Long-term 10-year residency for investors in UAE property or business.",
		InvestmentRequired: "AED 500,000 - AED 1,000,000+", InvestmentCurrency: "AED",
		InvestmentMinAmount: f64(500000), InvestmentMaxAmount: f64(1000000),
		ProcessingTime: "4-6 weeks", ProcessingMonths: 2,
		DocumentsRequired: []string{
			"Valid passport",
			"Investment proof",
			"Bank statements",
			"Medical report",
		},
		FamilySizeLimit: num(5), NetWorthRequired: f64(1000000),
		Benefits:        "10-year residency, fast-track processing, family eligible",
		ProgramType:     ptype(models.TypeInvestor), CountryFlagCode: "AE",
	},
	{
		ID: 13, Country: "Singapore", ProgramName: "Global Investor Programme",
		Description:        "Permanent residency for established entrepreneurs investing in Singapore.",
		InvestmentRequired: "SGD 2,500,000+", InvestmentCurrency: "SGD",
		InvestmentMinAmount: f64(2500000),
		ProcessingTime:      "4-6 weeks", ProcessingMonths: 2,
		DocumentsRequired: []string{
			"Valid passport",
			"Audited financial statements",
			"Business track record",
			"Investment plan",
		},
		FamilySizeLimit: num(5), NetWorthRequired: f64(5000000),
		Benefits:        "Permanent residency for applicant and immediate family",
		InterviewRequired: true,
		EmbassyLocations:  []string{"Singapore"},
		ProgramType:       ptype(models.TypeInvestor), CountryFlagCode: "SG",
	},
	{
		ID: 14, Country: "Australia", ProgramName: "Business Innovation and Investment Visa (188)",
		Description:        "Provisional visa for business owners and investors, pathway to permanent 888 visa.",
		InvestmentRequired: "AUD 200,000 - AUD 1,250,000", InvestmentCurrency: "AUD",
		InvestmentMinAmount: f64(200000), InvestmentMaxAmount: f64(1250000),
		ProcessingTime: "12-24 months", ProcessingMonths: 18,
		DocumentsRequired: []string{
			"Valid passport",
			"State or territory nomination",
			"Business financial statements",
			"Points test evidence",
		},
		FamilySizeLimit: num(8), NetWorthRequired: f64(800000),
		Benefits:        "Path to permanent residency, family included",
		InterviewRequired: true,
		ProgramType:       ptype(models.TypeInvestor), CountryFlagCode: "AU",
	},
	{
		ID: 15, Country: "Australia", ProgramName: "Skilled Independent Visa (189)",
		Description:        "Points-based permanent visa for skilled workers; no sponsor or investment.",
		InvestmentRequired: "N/A (Points-based)", InvestmentCurrency: "AUD",
		ProcessingTime:     "8-16 weeks", ProcessingMonths: 3,
		DocumentsRequired: []string{
			"Valid passport",
			"Skills assessment",
			"English test results",
			"Expression of interest",
		},
		FamilySizeLimit: num(8),
		Benefits:        "Permanent residency, live and work anywhere in Australia",
		ProgramType:     ptype(models.TypeEmployment), CountryFlagCode: "AU",
	},
}
