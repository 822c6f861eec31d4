package math3d

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain is returned when an operation has no defined result for its
	// input, such as normalizing a zero vector or dividing by W = 0.
	ErrDomain = errors.New("math3d: domain error")

	// ErrConfiguration is returned by constructors given degenerate
	// parameters, such as a projection with near == far.
	ErrConfiguration = errors.New("math3d: invalid configuration")
)

var (
	errZeroLength   = fmt.Errorf("%w: normalize of zero-length vector", ErrDomain)
	errDivideByZero = fmt.Errorf("%w: division by zero", ErrDomain)
	errZeroW        = fmt.Errorf("%w: perspective divide with w = 0", ErrDomain)
)
