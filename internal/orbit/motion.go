package orbit

import (
	"fmt"
	"math"
)

const twoPi = 2 * math.Pi

// MeanMotion returns the mean angular rate n = 2π/P in radians per day.
// The rate is a distinct quantity from the mean anomaly; see MeanAnomaly.
func MeanMotion(orbitalPeriod float64) (float64, error) {
	if math.IsNaN(orbitalPeriod) || orbitalPeriod <= 0 {
		return 0, fmt.Errorf("mean motion: orbital period %v must be positive", orbitalPeriod)
	}
	return twoPi / orbitalPeriod, nil
}

// MeanAnomaly returns M = n·(t − t_perihelion) in radians, wrapped to
// (−π, π], for a day count measured from the start of the orbital year.
func MeanAnomaly(elapsedDays float64, peri Perihelion, orbitalPeriod float64) (float64, error) {
	n, err := MeanMotion(orbitalPeriod)
	if err != nil {
		return 0, err
	}
	return WrapPi(n * (elapsedDays - peri.Day)), nil
}

// WrapPi wraps an angle in radians to (−π, π].
func WrapPi(a float64) float64 {
	a = math.Mod(a, twoPi)
	switch {
	case a <= -math.Pi:
		a += twoPi
	case a > math.Pi:
		a -= twoPi
	}
	return a
}

// Wrap360 normalizes an angle in degrees to [0, 360).
func Wrap360(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
