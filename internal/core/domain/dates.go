package domain

import (
	"fmt"
	"time"

	"github.com/RAVEN850972/cam/internal/apperrors"
)

// Date layouts used across the system. Orders carry a timestamp, everything
// else is date-only. Period keys address a whole calendar month and are
// matched by string prefix against stored dates.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04"
	PeriodLayout   = "2006-01"
)

// NormalizePeriod validates a "YYYY-MM" period key, defaulting to the current
// calendar month when the key is empty. A malformed key fails closed with a
// validation error instead of matching all orders.
func NormalizePeriod(period string) (string, error) {
	if period == "" {
		return time.Now().Format(PeriodLayout), nil
	}
	t, err := time.Parse(PeriodLayout, period)
	if err != nil {
		return "", fmt.Errorf("%w: period must be in YYYY-MM format, got %q", apperrors.ErrValidation, period)
	}
	return t.Format(PeriodLayout), nil
}

// ValidateDate checks a date-only value ("YYYY-MM-DD").
func ValidateDate(value string) error {
	if _, err := time.Parse(DateLayout, value); err != nil {
		return fmt.Errorf("%w: date must be in YYYY-MM-DD format, got %q", apperrors.ErrValidation, value)
	}
	return nil
}

// ValidateDateTime checks an order timestamp, accepting either the date-only
// or the date-and-time layout.
func ValidateDateTime(value string) error {
	if _, err := time.Parse(DateTimeLayout, value); err == nil {
		return nil
	}
	if _, err := time.Parse(DateLayout, value); err == nil {
		return nil
	}
	return fmt.Errorf("%w: timestamp must be YYYY-MM-DD or YYYY-MM-DD HH:MM, got %q", apperrors.ErrValidation, value)
}

// InPeriod reports whether a stored date string falls inside a period key.
// Dates are zero-padded ISO strings, so prefix comparison is exact.
func InPeriod(date, period string) bool {
	return len(date) >= len(period) && date[:len(period)] == period
}
