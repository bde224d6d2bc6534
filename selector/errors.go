package selector

import (
	"errors"
	"fmt"
)

// Tag errors for programmatic discrimination of builder failures. Every error
// returned by the builder wraps one of these - use errors.Is to check.
var (
	// ErrOutOfOrder reports a part appended after a part of a higher rank.
	ErrOutOfOrder = errors.New("selector parts out of CSS order")
	// ErrDuplicate reports a second type element or pseudo-element part on the
	// same chain.
	ErrDuplicate = errors.New("selector part allowed at most once")
	// ErrBadCombinator reports a combinator token outside " ", ">", "~", "+".
	ErrBadCombinator = errors.New("unknown combinator")
)

// Error describes a rejected builder operation.
type Error struct {
	Kind   Kind // category of the offending part, zero for combinator errors
	reason error
	detail string
}

func (e *Error) Error() string {
	return e.detail
}

func (e *Error) Unwrap() error {
	return e.reason
}

func orderingError(k Kind) error {
	return &Error{
		Kind:   k,
		reason: ErrOutOfOrder,
		detail: fmt.Sprintf("selector parts out of CSS order: %s must not follow a part of higher rank", k),
	}
}

func duplicateError(k Kind) error {
	return &Error{
		Kind:   k,
		reason: ErrDuplicate,
		detail: fmt.Sprintf("%s selector may occur at most once", k),
	}
}

func combinatorError(comb string) error {
	return &Error{
		reason: ErrBadCombinator,
		detail: fmt.Sprintf("unknown combinator %q", comb),
	}
}
