// Package domain defines the authentication domain: principals, credential
// policy, reset tokens and invitation claims.
package domain

import "fmt"

// PrincipalType discriminates the two account kinds that can authenticate.
type PrincipalType string

const (
	// PrincipalTypeManager is an organization manager account.
	PrincipalTypeManager PrincipalType = "manager"

	// PrincipalTypeEmployee is an individual employee account.
	PrincipalTypeEmployee PrincipalType = "employee"
)

// ParsePrincipalType converts a string into a PrincipalType.
func ParsePrincipalType(s string) (PrincipalType, error) {
	switch PrincipalType(s) {
	case PrincipalTypeManager:
		return PrincipalTypeManager, nil
	case PrincipalTypeEmployee:
		return PrincipalTypeEmployee, nil
	default:
		return "", fmt.Errorf("unknown principal type: %q", s)
	}
}
