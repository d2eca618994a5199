package heliclockter

import (
	"errors"
	"fmt"
)

// TimezoneError reports that a timezone could not be resolved for an
// operation: naive input reached a variant with no assumed zone, or now()
// was called on such a variant without an explicit zone. It is the single
// error kind this package produces; platform errors (malformed layouts,
// unknown zone names, invalid calendar fields) are returned unchanged from
// the time package.
type TimezoneError struct {
	Op      string // Operation that failed, e.g. "now", "from_wall", "parse".
	Variant string // Variant involved, e.g. "DateTimeTZ".
	Reason  string
}

func (e *TimezoneError) Error() string {
	return fmt.Sprintf("heliclockter: %s %s: %s", e.Op, e.Variant, e.Reason)
}

// AsTimezoneError extracts a *TimezoneError from an error using errors.As
// internally.
func AsTimezoneError(err error) (*TimezoneError, bool) {
	if err == nil {
		return nil, false
	}
	var tzErr *TimezoneError
	if errors.As(err, &tzErr) {
		return tzErr, true
	}
	return nil, false
}

func errNaive[P Policy](op string) error {
	var p P
	return &TimezoneError{
		Op:      op,
		Variant: p.VariantName(),
		Reason:  "cannot create aware datetime from naive input: no timezone assumed",
	}
}
