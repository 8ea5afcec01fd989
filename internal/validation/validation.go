// Package validation checks request input shape and produces the
// field-keyed error payloads the API returns on 400 responses.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	PasswordMinLen = 6
	PasswordMaxLen = 30
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldErrors maps an input field name to a human-readable message.
type FieldErrors map[string]string

func (f FieldErrors) Valid() bool {
	return len(f) == 0
}

func Register(name, email, password, password2 string) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(name) == "" {
		errs["name"] = "Name field is required"
	} else if n := utf8.RuneCountInString(strings.TrimSpace(name)); n < 2 || n > 30 {
		errs["name"] = "Name must be between 2 and 30 characters"
	}

	checkEmail(email, errs)
	checkPassword(password, password2, errs)
	return errs
}

func Login(email, password string) FieldErrors {
	errs := FieldErrors{}
	checkEmail(email, errs)
	if password == "" {
		errs["password"] = "Password field is required"
	}
	return errs
}

func Email(email string) FieldErrors {
	errs := FieldErrors{}
	checkEmail(email, errs)
	return errs
}

func NewPassword(password, password2 string) FieldErrors {
	errs := FieldErrors{}
	checkPassword(password, password2, errs)
	return errs
}

func PostText(text string) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(text) == "" {
		errs["text"] = "Text field is required"
	} else if n := utf8.RuneCountInString(text); n < 10 || n > 300 {
		errs["text"] = "Post must be between 10 and 300 characters"
	}
	return errs
}

func Profile(handle, status string, skills []string) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(handle) == "" {
		errs["handle"] = "Profile handle is required"
	} else if n := utf8.RuneCountInString(strings.TrimSpace(handle)); n < 2 || n > 40 {
		errs["handle"] = "Handle needs to be between 2 and 40 characters"
	}
	if strings.TrimSpace(status) == "" {
		errs["status"] = "Status field is required"
	}
	if len(skills) == 0 {
		errs["skills"] = "Skills field is required"
	}
	return errs
}

func Experience(title, company string, hasFrom bool) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(title) == "" {
		errs["title"] = "Job title field is required"
	}
	if strings.TrimSpace(company) == "" {
		errs["company"] = "Company field is required"
	}
	if !hasFrom {
		errs["from"] = "From date field is required"
	}
	return errs
}

func Education(school, degree, fieldOfStudy string, hasFrom bool) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(school) == "" {
		errs["school"] = "School field is required"
	}
	if strings.TrimSpace(degree) == "" {
		errs["degree"] = "Degree field is required"
	}
	if strings.TrimSpace(fieldOfStudy) == "" {
		errs["fieldofstudy"] = "Field of study field is required"
	}
	if !hasFrom {
		errs["from"] = "From date field is required"
	}
	return errs
}

func checkEmail(email string, errs FieldErrors) {
	if strings.TrimSpace(email) == "" {
		errs["email"] = "Email field is required"
	} else if !emailPattern.MatchString(email) {
		errs["email"] = "Email is invalid"
	}
}

func checkPassword(password, password2 string, errs FieldErrors) {
	switch {
	case password == "":
		errs["password"] = "Password field is required"
	case utf8.RuneCountInString(password) < PasswordMinLen || utf8.RuneCountInString(password) > PasswordMaxLen:
		errs["password"] = "Password must be at least 6 characters"
	}

	if password2 == "" {
		errs["password2"] = "Confirm Password field is required"
	} else if password != password2 {
		errs["password2"] = "Passwords must match"
	}
}
