// Package validation implements the client-side form checks that run
// before any backend call. A failed check blocks submission entirely;
// the backend never sees the request.
package validation

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator"

	"github.com/TheoNshimyimana/success-frontend/internal/api"
)

// allowedDomains is the fixed allow-list of email providers accepted at
// signup.
var allowedDomains = map[string]struct{}{
	"gmail.com":      {},
	"yahoo.com":      {},
	"outlook.com":    {},
	"hotmail.com":    {},
	"aol.com":        {},
	"icloud.com":     {},
	"live.com":       {},
	"protonmail.com": {},
	"zoho.com":       {},
}

var validate = validator.New()

func fault(msg string) error {
	return &api.Fault{Kind: api.FaultValidation, Message: msg}
}

// Password accepts passwords of length >= 5 containing at least one
// letter and at least one digit.
func Password(password string) error {
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if len(password) < 5 || !hasLetter || !hasDigit {
		return fault("Password must be at least 5 characters and include both letters and numbers")
	}
	return nil
}

// PasswordsMatch checks the password confirmation field.
func PasswordsMatch(password, confirm string) error {
	if password != confirm {
		return fault("Passwords do not match")
	}
	return nil
}

// Email checks the address format.
func Email(email string) error {
	if err := validate.Var(email, "required,email"); err != nil {
		return fault("Invalid email format")
	}
	return nil
}

// EmailDomain checks the address against the provider allow-list.
func EmailDomain(email string) error {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return fault("Invalid email format")
	}
	domain := strings.ToLower(email[at+1:])
	if _, ok := allowedDomains[domain]; !ok {
		return fault("Email provider not supported. Use Gmail, Yahoo, Outlook, AOL, etc.")
	}
	return nil
}

// SignupForm carries the signup fields that need checking.
type SignupForm struct {
	Name            string `validate:"required"`
	Email           string `validate:"required"`
	Phone           string
	Password        string `validate:"required"`
	ConfirmPassword string `validate:"required"`
}

// Signup runs the full signup check chain in the order the form shows
// its errors: required fields, password confirmation, password
// complexity, email format, provider allow-list.
func Signup(form SignupForm) error {
	if err := validate.Struct(form); err != nil {
		return fault("All required fields must be filled in")
	}
	if err := PasswordsMatch(form.Password, form.ConfirmPassword); err != nil {
		return err
	}
	if err := Password(form.Password); err != nil {
		return err
	}
	if err := Email(form.Email); err != nil {
		return err
	}
	return EmailDomain(form.Email)
}
