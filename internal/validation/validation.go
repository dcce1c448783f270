package validation

import (
	"errors"
	"regexp"
	"time"
)

var (
	ErrAmountTooSmall = errors.New("amount below minimum")
	ErrAmountTooLarge = errors.New("amount above maximum")
	ErrInvalidEmail   = errors.New("invalid email address")
	ErrInvalidPeriod  = errors.New("leaderboard period is invalid")
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// HasSpecialChar checks if a string contains at least one special character
func HasSpecialChar(s string) bool {
	specialChars := regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
	return specialChars.MatchString(s)
}

// ValidateTipAmount checks a tip amount in sats against the global bounds.
func ValidateTipAmount(amount int64) error {
	if amount < MinTipAmount {
		return ErrAmountTooSmall
	}
	if amount > MaxTipAmount {
		return ErrAmountTooLarge
	}
	return nil
}

// ValidateEmail checks the shape of an email address.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

// ValidatePassword checks password length and character requirements.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength || len(password) > MaxPasswordLength {
		return errors.New("password must be between 8 and 72 characters")
	}
	if !HasSpecialChar(password) {
		return errors.New("password must contain a special character")
	}
	return nil
}

// ValidatePeriod checks that a leaderboard period is well formed.
func ValidatePeriod(start, end time.Time) error {
	if start.IsZero() || end.IsZero() || !end.After(start) {
		return ErrInvalidPeriod
	}
	return nil
}
