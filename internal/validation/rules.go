// Package validation provides custom validation rules shared across features.
package validation

import (
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/crewhub/internal/errors"
)

var (
	// emailRegex is a basic email validation pattern
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// Email validates email format using regex
var Email = validation.NewStringRuleWithError(
	func(s string) bool {
		return emailRegex.MatchString(s)
	},
	validation.NewError("validation_email_format", "must be a valid email address"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// URL validates that a string is an absolute http or https URL
var URL = validation.NewStringRuleWithError(
	func(s string) bool {
		u, err := url.Parse(s)
		if err != nil {
			return false
		}
		return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
	},
	validation.NewError("validation_url_format", "must be a valid http or https URL"),
)

// UUID validates that a string is a parseable UUID
var UUID = validation.NewStringRuleWithError(
	func(s string) bool {
		_, err := uuid.Parse(s)
		return err == nil
	},
	validation.NewError("validation_uuid_format", "must be a valid UUID"),
)

// BirthDateLayouts are the accepted textual forms for birth dates: day-first
// (Brazilian style) and ISO date.
var BirthDateLayouts = []string{"02/01/2006", "2006-01-02"}

// BirthDateFormat validates that a string parses with one of BirthDateLayouts.
var BirthDateFormat = validation.NewStringRuleWithError(
	func(s string) bool {
		for _, layout := range BirthDateLayouts {
			if _, err := time.Parse(layout, s); err == nil {
				return true
			}
		}
		return false
	},
	validation.NewError("validation_birth_date_format", "must be a date in DD/MM/YYYY or YYYY-MM-DD form"),
)
