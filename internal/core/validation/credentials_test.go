package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCredentials_Valid(t *testing.T) {
	creds, err := ValidateCredentials(CredentialsInput{Email: "  Jane@Example.com ", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", creds.Email)
	assert.Equal(t, "secret1", creds.Password)
}

func TestValidateCredentials_Empty(t *testing.T) {
	_, err := ValidateCredentials(CredentialsInput{})

	details := detailsOf(t, err)
	assert.Equal(t, "Email is required", details["email"])
	assert.Equal(t, "Password is required", details["password"])
}

func TestValidateCredentials_Rules(t *testing.T) {
	_, err := ValidateCredentials(CredentialsInput{Email: "not-an-email", Password: "12345"})

	details := detailsOf(t, err)
	assert.Equal(t, "Invalid email format", details["email"])
	assert.Equal(t, "Password must be at least 6 characters", details["password"])
}

func TestValidateCredentials_Confirmation(t *testing.T) {
	_, err := ValidateCredentials(CredentialsInput{Email: "a@b.co", Password: "secret1", ConfirmPassword: "secret2"})
	assert.Equal(t, "Passwords do not match", detailsOf(t, err)["confirmPassword"])

	_, err = ValidateCredentials(CredentialsInput{Email: "a@b.co", Password: "secret1", ConfirmPassword: "secret1"})
	assert.NoError(t, err)
}

func TestValidateRegistration_RequiresAddressSyntax(t *testing.T) {
	_, err := ValidateRegistration(CredentialsInput{Email: "a@", Password: "secret1"})
	assert.Equal(t, "Invalid email format", detailsOf(t, err)["email"])

	creds, err := ValidateRegistration(CredentialsInput{Email: "Someone@Example.org", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "someone@example.org", creds.Email)
}

func TestValidateCredentials_PasswordByteLimit(t *testing.T) {
	_, err := ValidateCredentials(CredentialsInput{Email: "a@b.co", Password: strings.Repeat("x", MaxPasswordBytes)})
	assert.NoError(t, err)

	_, err = ValidateCredentials(CredentialsInput{Email: "a@b.co", Password: strings.Repeat("x", 80)})
	assert.Equal(t, "Password must be at most 72 bytes", detailsOf(t, err)["password"])

	// 40 runes, 80 bytes
	_, err = ValidateRegistration(CredentialsInput{Email: "jane@example.com", Password: strings.Repeat("é", 40)})
	assert.Equal(t, "Password must be at most 72 bytes", detailsOf(t, err)["password"])
}
