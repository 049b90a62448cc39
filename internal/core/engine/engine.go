// Package engine maps an applicant profile to a term life recommendation.
// Compute is pure and safe for concurrent use.
package engine

import (
	"fmt"
	"math"
	"strings"

	"lifecover/internal/core/domain"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// IncomeMultiple is the number of annual incomes used as base coverage
	IncomeMultiple = 10
	// CoverageStep is the granularity every coverage amount is rounded to
	CoverageStep = 50000
	// MinimumCoverage is the floor applied after rounding
	MinimumCoverage = 100000
	// MaximumCoverage is the largest step multiple representable as int64
	MaximumCoverage = math.MaxInt64 - math.MaxInt64%CoverageStep
)

var (
	dependentLoading = decimal.RequireFromString("0.2")
	coverageStep     = decimal.NewFromInt(CoverageStep)
	maximumCoverage  = decimal.NewFromInt(MaximumCoverage)

	riskFactors = map[domain.RiskTolerance]decimal.Decimal{
		domain.RiskLow:    decimal.RequireFromString("0.8"),
		domain.RiskMedium: decimal.RequireFromString("1.0"),
		domain.RiskHigh:   decimal.RequireFromString("1.3"),
	}

	// termBuckets maps an upper age bound (exclusive) to a term length
	termBuckets = []struct {
		maxAge int
		years  int
	}{
		{30, 30},
		{40, 25},
		{50, 20},
		{60, 15},
	}
)

// ElderTermYears is the term for applicants aged 60 and over
const ElderTermYears = 10

// Compute derives coverage, term and the rendered texts for a validated profile.
// ID and CreatedAt are left zero; they belong to the persisted record.
func Compute(p domain.ApplicantProfile) domain.Recommendation {
	coverage := CoverageAmount(p)
	term := TermYears(p.Age)

	return domain.Recommendation{
		Profile:            p,
		CoverageAmount:     coverage,
		TermYears:          term,
		RecommendationText: recommendationText(coverage, term),
		ExplanationText:    explanationText(p, coverage, term),
	}
}

// CoverageAmount returns the recommended insured sum for p
func CoverageAmount(p domain.ApplicantProfile) int64 {
	base := decimal.NewFromFloat(p.AnnualIncome).Mul(decimal.NewFromInt(IncomeMultiple))
	multiplier := decimal.NewFromInt(1).Add(dependentLoading.Mul(decimal.NewFromInt(int64(p.Dependents))))

	raw := base.Mul(multiplier).Mul(riskFactors[p.RiskTolerance])

	// Quotient is non-negative for valid input, so Round is half-up
	rounded := raw.Div(coverageStep).Round(0).Mul(coverageStep)
	if rounded.GreaterThan(maximumCoverage) {
		return MaximumCoverage
	}

	coverage := rounded.IntPart()
	if coverage < MinimumCoverage {
		coverage = MinimumCoverage
	}
	return coverage
}

// TermYears returns the policy term for an applicant of the given age
func TermYears(age int) int {
	for _, b := range termBuckets {
		if age < b.maxAge {
			return b.years
		}
	}
	return ElderTermYears
}

// MonthsPerDependent is term×12 divided by dependents, rounded half-up.
// It does not depend on coverage or income.
func MonthsPerDependent(termYears, dependents int) int64 {
	if dependents <= 0 {
		return 0
	}
	return decimal.NewFromInt(int64(termYears * 12)).
		Div(decimal.NewFromInt(int64(dependents))).
		Round(0).
		IntPart()
}

// FormatAmount renders n with comma thousands separators
func FormatAmount(n int64) string {
	return message.NewPrinter(language.English).Sprintf("%d", n)
}

func recommendationText(coverage int64, term int) string {
	return fmt.Sprintf("Term Life – $%s for %d years", FormatAmount(coverage), term)
}

func explanationText(p domain.ApplicantProfile, coverage int64, term int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Based on your profile, we recommend a %d-year term life insurance policy with $%s in coverage. ",
		term, FormatAmount(coverage))

	if p.Dependents > 0 {
		plural := ""
		if p.Dependents > 1 {
			plural = "s"
		}
		fmt.Fprintf(&b, "This coverage accounts for your %d dependent%s and provides approximately %d months of income replacement per dependent. ",
			p.Dependents, plural, MonthsPerDependent(term, p.Dependents))
	}

	fmt.Fprintf(&b, "Your %s risk tolerance and %d-year age factor into this recommendation. ",
		strings.ToLower(string(p.RiskTolerance)), p.Age)
	b.WriteString("This policy will help ensure your family's financial security in the event of unexpected circumstances.")

	return b.String()
}
