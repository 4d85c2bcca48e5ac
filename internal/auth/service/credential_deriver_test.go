package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/crewhub/internal/auth/domain"
)

func fixedClock(t *testing.T, value string) func() time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return func() time.Time { return parsed }
}

func TestCredentialDeriver_DeriveDefault(t *testing.T) {
	deriver := NewCredentialDeriverWithClock(fixedClock(t, "2026-09-01"))

	tests := []struct {
		name      string
		birthDate string
		want      string
		wantErr   bool
	}{
		{name: "SlashLayout", birthDate: "19/09/1990", want: "19091990"},
		{name: "ISOLayout", birthDate: "1990-09-19", want: "19091990"},
		{name: "ZeroPadding", birthDate: "1990-01-05", want: "05011990"},
		{name: "Unparseable", birthDate: "19.09.1990", wantErr: true},
		{name: "Garbage", birthDate: "not-a-date", wantErr: true},
		{name: "Future", birthDate: "2030-01-01", wantErr: true},
		{name: "TooYoung", birthDate: "2011-01-01", wantErr: true},
		{name: "TooOld", birthDate: "1925-08-31", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := deriver.DeriveDefault(tt.birthDate)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidBirthDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCredentialDeriver_AgeBoundaries(t *testing.T) {
	// Clock pinned to 2026-09-01.
	deriver := NewCredentialDeriverWithClock(fixedClock(t, "2026-09-01"))

	tests := []struct {
		name      string
		birthDate string
		wantErr   bool
	}{
		// Turns 16 exactly today: age 16, accepted.
		{name: "SixteenthBirthdayToday", birthDate: "2010-09-01", wantErr: false},
		// Turns 16 tomorrow: still 15, rejected.
		{name: "SixteenTomorrow", birthDate: "2010-09-02", wantErr: true},
		// Exactly 100 today: accepted.
		{name: "HundredthBirthdayToday", birthDate: "1926-09-01", wantErr: false},
		// Turned 101 yesterday: rejected.
		{name: "HundredOne", birthDate: "1925-08-31", wantErr: true},
		// 100 years plus months but 101st birthday not reached: accepted.
		{name: "HundredNotYetHundredOne", birthDate: "1925-09-02", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := deriver.DeriveDefault(tt.birthDate)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidBirthDate)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCredentialDeriver_DeriveDefaultFromDate(t *testing.T) {
	deriver := NewCredentialDeriverWithClock(fixedClock(t, "2026-09-01"))

	birthDate := time.Date(1990, time.September, 19, 0, 0, 0, 0, time.UTC)
	got, err := deriver.DeriveDefaultFromDate(birthDate)
	require.NoError(t, err)
	assert.Equal(t, "19091990", got)

	future := time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)
	_, err = deriver.DeriveDefaultFromDate(future)
	assert.ErrorIs(t, err, domain.ErrInvalidBirthDate)
}
