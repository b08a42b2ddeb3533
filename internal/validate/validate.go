// Package validate implements the client-side form checks performed before
// any credentials are submitted to the backend. Failing fields block
// submission entirely; no request is issued.
package validate

import (
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// specials is the accepted special-character set for passwords.
const specials = `!@#$%^&*(),.?":{}|<>`

// Email reports whether s looks like an email address.
func Email(s string) bool {
	return emailRe.MatchString(s)
}

// PasswordIssues returns the list of complexity requirements the password
// fails to meet, in display order. An empty slice means the password is
// acceptable.
func PasswordIssues(password string) []string {
	var issues []string

	if len(password) < 8 {
		issues = append(issues, "at least 8 characters")
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		issues = append(issues, "one uppercase letter")
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= 'a' && r <= 'z' }) {
		issues = append(issues, "one lowercase letter")
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= '0' && r <= '9' }) {
		issues = append(issues, "one number")
	}
	if !strings.ContainsAny(password, specials) {
		issues = append(issues, "one special character")
	}

	return issues
}

// LoginForm checks login credentials. The returned map is keyed by field
// name ("email", "password"); an empty map means the form may be submitted.
func LoginForm(email, password string) map[string]string {
	errs := make(map[string]string)

	switch {
	case email == "":
		errs["email"] = "Email is required"
	case !Email(email):
		errs["email"] = "Please enter a valid email address"
	}

	switch issues := PasswordIssues(password); {
	case password == "":
		errs["password"] = "Password is required"
	case len(issues) > 0:
		errs["password"] = "Password must contain " + strings.Join(issues, ", ")
	}

	return errs
}

// RegisterForm checks registration input: a username plus the same email
// and password rules as LoginForm.
func RegisterForm(username, email, password string) map[string]string {
	errs := LoginForm(email, password)
	if strings.TrimSpace(username) == "" {
		errs["username"] = "Username is required"
	}
	return errs
}
