package curve

import "errors"

// Common errors returned by curve operations.
var (
	// ErrInvalidPoint is returned when coordinates do not satisfy the
	// curve equation y^2 = x^3 + a*x + b.
	ErrInvalidPoint = errors.New("curve: point is not on the curve")

	// ErrCurveMismatch is returned when an operation mixes points that
	// belong to curves with different coefficients.
	ErrCurveMismatch = errors.New("curve: points belong to different curves")
)
