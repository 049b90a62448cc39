package validation

import (
	"strings"

	"lifecover/internal/core/domain"
)

// MinPasswordLength is the shortest accepted password
const MinPasswordLength = 6

// MaxPasswordBytes is the longest password bcrypt accepts
const MaxPasswordBytes = 72

// CredentialsInput is a raw email/password pair; ConfirmPassword is optional
type CredentialsInput struct {
	Email           string `json:"email" validate:"required,contains=@"`
	Password        string `json:"password" validate:"required,min=6,maxbytes=72"`
	ConfirmPassword string `json:"confirmPassword,omitempty" validate:"omitempty,eqfield=Password"`
}

// registrationInput adds full address syntax on top of the basic credential rules
type registrationInput struct {
	Email           string `json:"email" validate:"required,contains=@,email"`
	Password        string `json:"password" validate:"required,min=6,maxbytes=72"`
	ConfirmPassword string `json:"confirmPassword,omitempty" validate:"omitempty,eqfield=Password"`
}

// Credentials is a normalized email/password pair
type Credentials struct {
	Email    string
	Password string
}

var credentialMessages = messages{
	"email": {
		"required": "Email is required",
		"*":        "Invalid email format",
	},
	"password": {
		"required": "Password is required",
		"maxbytes": "Password must be at most 72 bytes",
		"*":        "Password must be at least 6 characters",
	},
	"confirmPassword": {
		"*": "Passwords do not match",
	},
}

// NormalizeEmail trims and lower-cases an address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateCredentials applies the login rules: email non-empty and containing '@',
// password at least 6 characters, confirmation equal to password when given.
func ValidateCredentials(in CredentialsInput) (Credentials, error) {
	in.Email = NormalizeEmail(in.Email)
	return finish(in.Email, in.Password, in)
}

// ValidateRegistration applies the login rules plus standard address syntax
func ValidateRegistration(in CredentialsInput) (Credentials, error) {
	reg := registrationInput{
		Email:           NormalizeEmail(in.Email),
		Password:        in.Password,
		ConfirmPassword: in.ConfirmPassword,
	}
	return finish(reg.Email, reg.Password, reg)
}

func finish(email, password string, input interface{}) (Credentials, error) {
	details, err := check(input, credentialMessages)
	if err != nil {
		return Credentials{}, err
	}
	if len(details) > 0 {
		return Credentials{}, domain.NewValidationError("Invalid input", details)
	}
	return Credentials{Email: email, Password: password}, nil
}
