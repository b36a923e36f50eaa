package field

import "errors"

// Common errors returned by field operations.
var (
	// ErrIncompatibleField is returned when the operands of an arithmetic
	// operation belong to fields with different moduli.
	ErrIncompatibleField = errors.New("field: elements belong to different fields")

	// ErrDivisionByZero is returned when the divisor is the zero residue.
	ErrDivisionByZero = errors.New("field: division by zero element")
)
