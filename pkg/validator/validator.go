package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

type ValidationErrors map[string]string

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

const MaxDescriptionLength = 2000

var accountIDRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

func ValidateDescription(description string) ValidationErrors {
	errs := make(ValidationErrors)

	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		errs.Add("description", fmt.Sprintf("Description must be at most %d characters", MaxDescriptionLength))
	}

	return errs
}

func ValidateAccountID(id string) ValidationErrors {
	errs := make(ValidationErrors)

	id = strings.TrimSpace(id)
	if id == "" {
		errs.Add("id", "Account id is required")
	} else if len(id) > 64 {
		errs.Add("id", "Account id is too long")
	} else if !accountIDRegex.MatchString(id) {
		errs.Add("id", "Account id can only contain letters, numbers, _ and -")
	}

	return errs
}
