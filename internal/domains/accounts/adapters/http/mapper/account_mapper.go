package mapper

import (
	accountdomain "github.com/Apurer/go-gin-storefront/internal/domains/accounts/domain"
	accountports "github.com/Apurer/go-gin-storefront/internal/domains/accounts/ports"
)

// Login is the login request body.
type Login struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup is the signup request body. Organisation fields are ignored for
// individual signups.
type Signup struct {
	SignupType      string `json:"signupType"`
	FirstName       string `json:"firstName"`
	MiddleName      string `json:"middleName,omitempty"`
	LastName        string `json:"lastName"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Country         string `json:"country"`
	ContactNumber   string `json:"contactNumber"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	CompanyName     string `json:"companyName,omitempty"`
	CompanyWebsite  string `json:"companyWebsite,omitempty"`
	Purpose         string `json:"purpose,omitempty"`
}

// Session is returned after login, signup, or logout.
type Session struct {
	Authenticated bool   `json:"authenticated"`
	Subject       string `json:"subject,omitempty"`
	Redirect      string `json:"redirect,omitempty"`
}

func ToLoginForm(l Login) accountdomain.LoginForm {
	return accountdomain.LoginForm{Email: l.Email, Password: l.Password}
}

func ToSignupForm(s Signup) accountdomain.SignupForm {
	form := accountdomain.SignupForm{
		Kind: accountdomain.AccountKind(s.SignupType),
		Profile: accountdomain.Profile{
			FirstName:       s.FirstName,
			MiddleName:      s.MiddleName,
			LastName:        s.LastName,
			Username:        s.Username,
			Email:           s.Email,
			Country:         s.Country,
			ContactNumber:   s.ContactNumber,
			Password:        s.Password,
			ConfirmPassword: s.ConfirmPassword,
		},
	}
	if form.Kind == accountdomain.KindOrganisation {
		form.Organisation = accountdomain.Organisation{
			CompanyName:    s.CompanyName,
			CompanyWebsite: s.CompanyWebsite,
			Purpose:        s.Purpose,
		}
	}
	return form
}

func FromOutcome(o accountports.Outcome) Session {
	return Session{Authenticated: true, Subject: o.Subject, Redirect: o.Redirect}
}
