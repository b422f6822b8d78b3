package leads

import "errors"

// Sentinel errors for the lead service layer.
var (
	// ErrDuplicateEmail is returned when a newsletter email is already subscribed.
	ErrDuplicateEmail = errors.New("email already subscribed")

	// ErrNonFiniteResult is returned when a derived figure overflows. Such a
	// record is never stored.
	ErrNonFiniteResult = errors.New("derived figure is not finite")
)
