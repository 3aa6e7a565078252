package interval

import "errors"

var (
	// ErrInvalidBounds is returned when the bounds would describe an empty
	// or undefined interval.
	ErrInvalidBounds = errors.New("invalid interval bounds")

	// ErrMalformedNotation is returned when text does not match the
	// interval notation grammar.
	ErrMalformedNotation = errors.New("malformed interval notation")

	// ErrUnsupported is returned for operations that are not implemented.
	ErrUnsupported = errors.New("unsupported operation")
)
