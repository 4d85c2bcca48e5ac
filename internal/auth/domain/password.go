package domain

import (
	"strings"
)

const (
	// PasswordMinLength is the minimum accepted credential length.
	PasswordMinLength = 4

	// PasswordMaxLength is the maximum accepted credential length.
	PasswordMaxLength = 50

	passwordSymbols = "@#$%&*!_-"
)

func isPasswordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	default:
		return strings.ContainsRune(passwordSymbols, r)
	}
}

// PasswordViolations checks a candidate credential against the policy and
// returns every rule it breaks. An empty slice means the candidate is
// acceptable. Derived defaults (DDMMYYYY) satisfy the policy, so a forced
// migration can reuse the same check.
func PasswordViolations(candidate string) []string {
	var violations []string

	if candidate == "" {
		violations = append(violations, "credential must not be empty")
		return violations
	}

	if n := len([]rune(candidate)); n < PasswordMinLength || n > PasswordMaxLength {
		violations = append(violations, "credential length must be between 4 and 50 characters")
	}

	for _, r := range candidate {
		if !isPasswordRune(r) {
			violations = append(violations, "credential may only contain letters, digits and @#$%&*!_-")
			break
		}
	}

	return violations
}

// ValidatePassword returns ErrWeakCredential when the candidate breaks the
// policy, carrying every violated rule in the error message.
func ValidatePassword(candidate string) error {
	violations := PasswordViolations(candidate)
	if len(violations) == 0 {
		return nil
	}
	return &WeakCredentialError{Violations: violations}
}

// WeakCredentialError reports the policy rules a candidate credential broke.
// It matches ErrWeakCredential under errors.Is.
type WeakCredentialError struct {
	Violations []string
}

func (e *WeakCredentialError) Error() string {
	return "credential does not meet policy: " + strings.Join(e.Violations, "; ")
}

func (e *WeakCredentialError) Unwrap() error {
	return ErrWeakCredential
}
