package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Apurer/go-gin-storefront/internal/shared/validation"
)

// MinPasswordLength is the shortest password accepted at signup.
const MinPasswordLength = 8

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// LoginForm carries the login fields.
type LoginForm struct {
	Email    string
	Password string
}

// Validate reports field failures; the password is not checked for
// strength at login.
func (f LoginForm) Validate() error {
	fields := validation.FieldErrors{}
	validateEmail(fields, f.Email)
	if f.Password == "" {
		fields.Add("password", "Password is required")
	}
	return fields.Err()
}

// AccountKind tags the signup variant.
type AccountKind string

const (
	KindIndividual   AccountKind = "individual"
	KindOrganisation AccountKind = "organisation"
)

// Profile holds the fields shared by both signup variants.
type Profile struct {
	FirstName       string
	MiddleName      string
	LastName        string
	Username        string
	Email           string
	Country         string
	ContactNumber   string
	Password        string
	ConfirmPassword string
}

// Organisation holds the organisation-only fields.
type Organisation struct {
	CompanyName    string
	CompanyWebsite string
	Purpose        string
}

// SignupForm is either an individual or an organisation signup. The
// Organisation part is only read for KindOrganisation.
type SignupForm struct {
	Kind AccountKind
	Profile
	Organisation Organisation
}

// Validate dispatches on the variant tag.
func (f SignupForm) Validate() error {
	fields := validation.FieldErrors{}
	switch f.Kind {
	case KindIndividual:
		validateProfile(fields, f.Profile)
	case KindOrganisation:
		validateProfile(fields, f.Profile)
		fields.Required("companyName", f.Organisation.CompanyName, "Company name is required")
	default:
		fields.Add("signupType", "Please choose an account type")
	}
	return fields.Err()
}

func validateProfile(fields validation.FieldErrors, p Profile) {
	fields.Required("firstName", p.FirstName, "First name is required")
	fields.Required("lastName", p.LastName, "Last name is required")
	fields.Required("username", p.Username, "Username is required")
	validateEmail(fields, p.Email)
	if !IsCountry(p.Country) {
		fields.Add("country", "Please select a country")
	}
	fields.Required("contactNumber", p.ContactNumber, "Contact number is required")
	switch {
	case p.Password == "":
		fields.Add("password", "Password is required")
	case utf8.RuneCountInString(p.Password) < MinPasswordLength:
		fields.Add("password", "Minimum 8 characters")
	}
	if p.Password != p.ConfirmPassword {
		fields.Add("confirmPassword", "Passwords do not match")
	}
}

func validateEmail(fields validation.FieldErrors, email string) {
	if email == "" {
		fields.Add("email", "Email is required")
		return
	}
	if !emailPattern.MatchString(email) {
		fields.Add("email", "Invalid email format")
	}
}

// Subject is the identity recorded on the session after signup.
func (f SignupForm) Subject() string {
	return strings.TrimSpace(f.Username)
}
