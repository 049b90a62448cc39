package validation

import "lifecover/internal/core/domain"

// ProfileInput is the raw applicant profile as submitted.
// Numbers are pointers so that an absent field can be told apart from zero.
type ProfileInput struct {
	Age           *float64 `json:"age" validate:"required,nonzero,integer,gte=18,lte=100"`
	Income        *float64 `json:"income" validate:"required,nonzero,gte=0,lte=1000000000000"`
	Dependents    *float64 `json:"dependents" validate:"omitempty,integer,gte=0,lte=10"`
	RiskTolerance string   `json:"riskTolerance" validate:"oneof=Low Medium High"`
}

// MaxAnnualIncome is the largest accepted income; it keeps every coverage amount within int64
const MaxAnnualIncome = 1e12

var profileMessages = messages{
	"age": {
		"required": "Age is required",
		"nonzero":  "Age is required",
		"integer":  "Age must be a whole number",
		"*":        "Age must be between 18 and 100",
	},
	"income": {
		"required": "Annual income is required",
		"nonzero":  "Annual income is required",
		"lte":      "Annual income is too large",
		"*":        "Annual income must be a positive number",
	},
	"dependents": {
		"integer": "Dependents must be a whole number",
		"*":       "Dependents must be between 0 and 10",
	},
	"riskTolerance": {
		"*": "Select a valid risk tolerance",
	},
}

// ValidateProfile checks every profile field and returns the normalized profile,
// or a validation AppError listing each violated field.
func ValidateProfile(in ProfileInput) (domain.ApplicantProfile, error) {
	details, err := check(in, profileMessages)
	if err != nil {
		return domain.ApplicantProfile{}, err
	}
	if len(details) > 0 {
		return domain.ApplicantProfile{}, domain.NewValidationError("Invalid input data", details)
	}

	profile := domain.ApplicantProfile{
		Age:           int(*in.Age),
		AnnualIncome:  *in.Income,
		RiskTolerance: domain.RiskTolerance(in.RiskTolerance),
	}
	if in.Dependents != nil {
		profile.Dependents = int(*in.Dependents)
	}
	return profile, nil
}

// Float is a convenience for building ProfileInput values
func Float(v float64) *float64 {
	return &v
}
