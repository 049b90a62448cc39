package domain

import "time"

// RiskTolerance is the applicant-selected appetite for risk
type RiskTolerance string

const (
	RiskLow    RiskTolerance = "Low"
	RiskMedium RiskTolerance = "Medium"
	RiskHigh   RiskTolerance = "High"
)

// RiskTolerances lists every accepted risk tolerance
var RiskTolerances = []RiskTolerance{RiskLow, RiskMedium, RiskHigh}

// IsValid reports whether r is one of the accepted values
func (r RiskTolerance) IsValid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

// ApplicantProfile is a validated applicant profile.
// Only the profile validator should construct one from raw input.
type ApplicantProfile struct {
	Age           int
	AnnualIncome  float64
	Dependents    int
	RiskTolerance RiskTolerance
}

// Recommendation represents a coverage recommendation in the domain layer
type Recommendation struct {
	ID                 string
	UserID             *string
	Profile            ApplicantProfile
	CoverageAmount     int64
	TermYears          int
	RecommendationText string
	ExplanationText    string
	CreatedAt          time.Time
}

// UserAccount is the public view of a registered user (never carries the hash)
type UserAccount struct {
	ID        string
	Email     string
	CreatedAt time.Time
}

// SessionClaims is the verified content of a session token
type SessionClaims struct {
	UserID    string
	Email     string
	ExpiresAt time.Time
}
