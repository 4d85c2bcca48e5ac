package service

import (
	"fmt"
	"time"

	"github.com/allisson/crewhub/internal/auth/domain"
	apperrors "github.com/allisson/crewhub/internal/errors"
	"github.com/allisson/crewhub/internal/validation"
)

const (
	minPlausibleAge = 16
	maxPlausibleAge = 100
)

// credentialDeriver implements CredentialDeriver. The derived default
// credential is the birth date rendered as DDMMYYYY with zero padding.
type credentialDeriver struct {
	now func() time.Time
}

// ParseBirthDate parses the birth date using the accepted layouts and
// validates it is in the past and within the plausible age range.
func (d *credentialDeriver) ParseBirthDate(birthDate string) (time.Time, error) {
	var parsed time.Time
	var err error
	for _, layout := range validation.BirthDateLayouts {
		parsed, err = time.Parse(layout, birthDate)
		if err == nil {
			break
		}
	}
	if err != nil {
		return time.Time{}, apperrors.Wrap(domain.ErrInvalidBirthDate, fmt.Sprintf("unparseable birth date %q", birthDate))
	}

	if err := d.checkPlausibility(parsed); err != nil {
		return time.Time{}, err
	}
	return parsed, nil
}

// DeriveDefault parses a birth date string and returns the DDMMYYYY default.
func (d *credentialDeriver) DeriveDefault(birthDate string) (string, error) {
	parsed, err := d.ParseBirthDate(birthDate)
	if err != nil {
		return "", err
	}
	return format(parsed), nil
}

// DeriveDefaultFromDate computes the DDMMYYYY default for an already-parsed
// date, applying the same plausibility checks.
func (d *credentialDeriver) DeriveDefaultFromDate(birthDate time.Time) (string, error) {
	if err := d.checkPlausibility(birthDate); err != nil {
		return "", err
	}
	return format(birthDate), nil
}

// checkPlausibility rejects future dates and ages outside [16, 100]. Age is
// the full calendar difference: it only increments once the birthday has
// passed in the current year.
func (d *credentialDeriver) checkPlausibility(birthDate time.Time) error {
	now := d.now().UTC()
	if birthDate.After(now) {
		return apperrors.Wrap(domain.ErrInvalidBirthDate, "birth date is in the future")
	}

	age := now.Year() - birthDate.Year()
	if now.Month() < birthDate.Month() || (now.Month() == birthDate.Month() && now.Day() < birthDate.Day()) {
		age--
	}

	if age < minPlausibleAge || age > maxPlausibleAge {
		return apperrors.Wrap(domain.ErrInvalidBirthDate, fmt.Sprintf("implausible age %d", age))
	}
	return nil
}

func format(birthDate time.Time) string {
	return fmt.Sprintf("%02d%02d%04d", birthDate.Day(), int(birthDate.Month()), birthDate.Year())
}

// NewCredentialDeriver creates a CredentialDeriver using the system clock.
func NewCredentialDeriver() CredentialDeriver {
	return &credentialDeriver{now: time.Now}
}

// NewCredentialDeriverWithClock creates a CredentialDeriver with an
// injectable clock for tests.
func NewCredentialDeriverWithClock(now func() time.Time) CredentialDeriver {
	return &credentialDeriver{now: now}
}
