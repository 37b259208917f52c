package calculator

import "errors"

var (
	// ErrNonPositiveHTC is returned when a film heat transfer coefficient is <= 0.
	ErrNonPositiveHTC = errors.New("calculator: heat transfer coefficient must be positive")

	// ErrNegativeResistance is returned when a wall resistance is < 0.
	ErrNegativeResistance = errors.New("calculator: wall resistance must be non-negative")

	// ErrNonPositiveThickness is returned when a wall thickness is <= 0.
	ErrNonPositiveThickness = errors.New("calculator: wall thickness must be positive")

	// ErrNonPositiveConductivity is returned when a thermal conductivity is <= 0.
	ErrNonPositiveConductivity = errors.New("calculator: thermal conductivity must be positive")

	// ErrBadGeometry is returned by TubeGeometry.Validate.
	ErrBadGeometry = errors.New("calculator: invalid tube geometry")
)
