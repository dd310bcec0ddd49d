package posterize

import "errors"

var (
	// ErrInvalidParameter is returned for level counts below 2, empty
	// tables and non-finite distribution values.
	ErrInvalidParameter = errors.New("posterize: invalid parameter")

	// ErrInvalidInput is returned when a pixel buffer does not hold
	// exactly width*height*4 bytes.
	ErrInvalidInput = errors.New("posterize: invalid input")
)
