package engine

import (
	"testing"

	"lifecover/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func TestCompute_ScenarioYoungWithDependents(t *testing.T) {
	rec := Compute(domain.ApplicantProfile{
		Age:           25,
		AnnualIncome:  50000,
		Dependents:    2,
		RiskTolerance: domain.RiskMedium,
	})

	assert.Equal(t, int64(700000), rec.CoverageAmount)
	assert.Equal(t, 30, rec.TermYears)
	assert.Equal(t, "Term Life – $700,000 for 30 years", rec.RecommendationText)
	assert.Equal(t,
		"Based on your profile, we recommend a 30-year term life insurance policy with $700,000 in coverage. "+
			"This coverage accounts for your 2 dependents and provides approximately 180 months of income replacement per dependent. "+
			"Your medium risk tolerance and 25-year age factor into this recommendation. "+
			"This policy will help ensure your family's financial security in the event of unexpected circumstances.",
		rec.ExplanationText)
}

func TestCompute_ScenarioMidAgeHighRisk(t *testing.T) {
	rec := Compute(domain.ApplicantProfile{
		Age:           45,
		AnnualIncome:  80000,
		Dependents:    0,
		RiskTolerance: domain.RiskHigh,
	})

	assert.Equal(t, int64(1050000), rec.CoverageAmount)
	assert.Equal(t, 20, rec.TermYears)
	assert.Equal(t, "Term Life – $1,050,000 for 20 years", rec.RecommendationText)
	assert.NotContains(t, rec.ExplanationText, "dependent")
	assert.Contains(t, rec.ExplanationText, "Your high risk tolerance and 45-year age")
}

func TestCompute_SingleDependentIsSingular(t *testing.T) {
	rec := Compute(domain.ApplicantProfile{Age: 35, AnnualIncome: 60000, Dependents: 1, RiskTolerance: domain.RiskLow})

	assert.Contains(t, rec.ExplanationText, "your 1 dependent and provides approximately 300 months")
}

func TestCompute_IsDeterministic(t *testing.T) {
	p := domain.ApplicantProfile{Age: 52, AnnualIncome: 123456.78, Dependents: 3, RiskTolerance: domain.RiskHigh}

	assert.Equal(t, Compute(p), Compute(p))
}

func TestCoverageAmount_Invariants(t *testing.T) {
	incomes := []float64{0.01, 1, 9999, 12345.67, 25000, 50000, 80000, 137500, 250000, 1e6, 1e12, 1e18, 1e20, 1e300}
	for _, income := range incomes {
		for dependents := 0; dependents <= 10; dependents++ {
			for _, risk := range domain.RiskTolerances {
				p := domain.ApplicantProfile{Age: 40, AnnualIncome: income, Dependents: dependents, RiskTolerance: risk}
				coverage := CoverageAmount(p)

				assert.Zero(t, coverage%CoverageStep, "profile %+v", p)
				assert.GreaterOrEqual(t, coverage, int64(MinimumCoverage), "profile %+v", p)
			}
		}
	}
}

func TestCoverageAmount_LargeIncome(t *testing.T) {
	p := domain.ApplicantProfile{Age: 25, AnnualIncome: 1e12, Dependents: 10, RiskTolerance: domain.RiskHigh}
	// 1e12 * 10 * 3 * 1.3
	assert.Equal(t, int64(39_000_000_000_000), CoverageAmount(p))

	p = domain.ApplicantProfile{Age: 25, AnnualIncome: 1e18, RiskTolerance: domain.RiskMedium}
	assert.Equal(t, int64(MaximumCoverage), CoverageAmount(p))

	p.AnnualIncome = 1e20
	assert.Equal(t, int64(MaximumCoverage), CoverageAmount(p))
	assert.Zero(t, int64(MaximumCoverage)%CoverageStep)
}

func TestCoverageAmount_MinimumFloor(t *testing.T) {
	p := domain.ApplicantProfile{Age: 30, AnnualIncome: 1000, Dependents: 0, RiskTolerance: domain.RiskLow}

	assert.Equal(t, int64(MinimumCoverage), CoverageAmount(p))
}

func TestCoverageAmount_RoundsHalfUp(t *testing.T) {
	// 2500 * 10 * 1.0 = 25000 -> quotient 0.5 -> 1 step, then floor to 100000
	assert.Equal(t, int64(100000), CoverageAmount(domain.ApplicantProfile{Age: 30, AnnualIncome: 2500, RiskTolerance: domain.RiskMedium}))
	// 12500 * 10 * 1.2 * 1.0 = 150000 exactly
	assert.Equal(t, int64(150000), CoverageAmount(domain.ApplicantProfile{Age: 30, AnnualIncome: 12500, Dependents: 1, RiskTolerance: domain.RiskMedium}))
	// 22500 * 10 = 225000 -> quotient 4.5 -> 5 steps
	assert.Equal(t, int64(250000), CoverageAmount(domain.ApplicantProfile{Age: 30, AnnualIncome: 22500, RiskTolerance: domain.RiskMedium}))
}

func TestCoverageAmount_RiskOrdering(t *testing.T) {
	for _, income := range []float64{40000, 75000, 150000} {
		for dependents := 0; dependents <= 10; dependents++ {
			base := domain.ApplicantProfile{Age: 33, AnnualIncome: income, Dependents: dependents}

			low, medium, high := base, base, base
			low.RiskTolerance = domain.RiskLow
			medium.RiskTolerance = domain.RiskMedium
			high.RiskTolerance = domain.RiskHigh

			assert.Greater(t, CoverageAmount(high), CoverageAmount(medium), "income %v dependents %d", income, dependents)
			assert.Greater(t, CoverageAmount(medium), CoverageAmount(low), "income %v dependents %d", income, dependents)
		}
	}
}

func TestTermYears_Table(t *testing.T) {
	cases := map[int]int{
		18: 30, 29: 30,
		30: 25, 39: 25,
		40: 20, 49: 20,
		50: 15, 59: 15,
		60: 10, 75: 10, 100: 10,
	}
	for age, want := range cases {
		assert.Equal(t, want, TermYears(age), "age %d", age)
	}
}

func TestTermYears_NonIncreasing(t *testing.T) {
	prev := TermYears(18)
	for age := 19; age <= 100; age++ {
		term := TermYears(age)
		assert.LessOrEqual(t, term, prev, "age %d", age)
		assert.Contains(t, []int{10, 15, 20, 25, 30}, term)
		prev = term
	}
}

func TestMonthsPerDependent(t *testing.T) {
	assert.Equal(t, int64(360), MonthsPerDependent(30, 1))
	assert.Equal(t, int64(51), MonthsPerDependent(30, 7))
	assert.Equal(t, int64(40), MonthsPerDependent(10, 3))
	// 15*12/8 = 22.5 rounds up
	assert.Equal(t, int64(23), MonthsPerDependent(15, 8))
	assert.Equal(t, int64(0), MonthsPerDependent(20, 0))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "100,000", FormatAmount(100000))
	assert.Equal(t, "1,050,000", FormatAmount(1050000))
	assert.Equal(t, "950", FormatAmount(950))
}
