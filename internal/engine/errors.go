package engine

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCode categorizes engine errors.
type ErrorCode string

const (
	// ErrCodeInvalidYear indicates a year outside the supported
	// civil-year range.
	ErrCodeInvalidYear ErrorCode = "INVALID_YEAR"

	// ErrCodeMalformedCatalog indicates a catalog entry that failed to
	// parse or validate at load time.
	ErrCodeMalformedCatalog ErrorCode = "MALFORMED_CATALOG"

	// ErrCodeBackwardDisplacement indicates a rule tried to displace a
	// celebration onto the current or an already-processed date. The
	// algorithm has no defined behavior for backward displacement, so
	// this is a hard failure, never a silent mishandling.
	ErrCodeBackwardDisplacement ErrorCode = "BACKWARD_DISPLACEMENT"
)

// Error is the typed error for engine failures.
type Error struct {
	Code    ErrorCode
	Message string
	Year    int
	Date    time.Time // affected date, when meaningful
	Err     error     // underlying cause, when wrapping
}

func (e *Error) Error() string {
	if !e.Date.IsZero() {
		return fmt.Sprintf("%s: %s (date=%s)", e.Code, e.Message, e.Date.Format("2006-01-02"))
	}
	if e.Year != 0 {
		return fmt.Sprintf("%s: %s (year=%d)", e.Code, e.Message, e.Year)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsInvalidYear reports whether err is an invalid-year error.
// Uses errors.As to handle wrapped errors.
func IsInvalidYear(err error) bool {
	var ee *Error
	return errors.As(err, &ee) && ee.Code == ErrCodeInvalidYear
}

// IsBackwardDisplacement reports whether err is a backward-displacement
// invariant violation.
func IsBackwardDisplacement(err error) bool {
	var ee *Error
	return errors.As(err, &ee) && ee.Code == ErrCodeBackwardDisplacement
}

func newInvalidYearError(year, minYear, maxYear int) *Error {
	return &Error{
		Code:    ErrCodeInvalidYear,
		Message: fmt.Sprintf("year outside supported range %d..%d", minYear, maxYear),
		Year:    year,
	}
}

func newBackwardDisplacementError(ruleID string, from, target time.Time) *Error {
	return &Error{
		Code: ErrCodeBackwardDisplacement,
		Message: fmt.Sprintf("rule %s displaced onto %s from %s; targets must be strictly later",
			ruleID, target.Format("2006-01-02"), from.Format("2006-01-02")),
		Date: from,
	}
}
