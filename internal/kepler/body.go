// Package kepler composes the anomaly engine into calendar dates and wall
// clocks for an orbiting body.
package kepler

import "github.com/solarpath/solcal/internal/orbit"

// Body supplies the constant orbital elements of a celestial body. Values
// are read-only after initialization, so implementations are safe for
// concurrent use.
type Body interface {
	// Name is the lowercase registry name of the body.
	Name() string
	// Epoch is the Julian date of the body's reference event.
	Epoch() float64
	// Eccentricity is the conic shape parameter of the orbit.
	Eccentricity() float64
	// SemiMajorAxis is the orbit's semi-major axis in AU.
	SemiMajorAxis() float64
	// OrbitalPeriod is the length of the body's year in body days.
	OrbitalPeriod() float64
	// RotationalPeriod is the length of the body's day in seconds.
	RotationalPeriod() float64
	// Perihelion is the body's perihelion passage reference.
	Perihelion() orbit.Perihelion
	// InitialYear is the calendar year count at the epoch.
	InitialYear() float64
}
