// Package anomaly solves Kepler's equation across the four conic orbit
// shapes, converting a mean-anomaly seed to eccentric and true anomaly.
//
// All angles are radians. The eccentricity domain of each shape (e = 0
// circular, 0 < e < 1 elliptical, e = 1 parabolic, e > 1 hyperbolic) is
// checked up front rather than inferred, and every Newton-Raphson loop is
// bounded by MaxIterations.
package anomaly

import (
	"fmt"
	"math"

	"github.com/solarpath/solcal/internal/orbit"
)

const (
	// Tolerance is the convergence threshold on the Newton-Raphson step.
	Tolerance = 1e-7

	// MaxIterations bounds every iterative solve. Well-posed inputs converge
	// in a handful of steps; hitting the cap is surfaced as ErrNonConvergence.
	MaxIterations = 100
)

// Mean returns the magnitude of the mean-anomaly seed. It is the shared
// entry point of the eccentric-anomaly branches; the seed's sign is
// reapplied to the final result to preserve the direction of travel.
func Mean(seed float64) float64 {
	return math.Abs(seed)
}

// Eccentric solves the shape's form of Kepler's equation for the given
// mean-anomaly seed. For parabolic orbits the semi-major-axis slot carries
// the perifocal distance (a parabola has no finite semi-major axis); the
// canonical Barker equation absorbs it into the seed's normalization, so the
// axis is not consulted by any branch.
func Eccentric(shape orbit.Shape, seed, e, a float64) (float64, error) {
	m := Mean(seed)

	var (
		result float64
		err    error
	)
	switch shape {
	case orbit.Circular:
		if e != 0 {
			return 0, fmt.Errorf("%w: circular solve with e=%v", ErrEccentricityDomain, e)
		}
		result = m // E = M
	case orbit.Elliptical:
		if !(e > 0 && e < 1) {
			return 0, fmt.Errorf("%w: elliptical solve with e=%v", ErrEccentricityDomain, e)
		}
		result, err = solveElliptical(m, e)
	case orbit.Parabolic:
		if e != 1 {
			return 0, fmt.Errorf("%w: parabolic solve with e=%v", ErrEccentricityDomain, e)
		}
		result, err = solveBarker(m)
	case orbit.Hyperbolic:
		if !(e > 1) {
			return 0, fmt.Errorf("%w: hyperbolic solve with e=%v", ErrEccentricityDomain, e)
		}
		result, err = solveHyperbolic(m, e)
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedShape, int(shape))
	}
	if err != nil {
		return 0, err
	}
	if seed < 0 {
		result = -result
	}
	return result, nil
}

// True returns the true anomaly ν for the given mean-anomaly seed,
// solving the eccentric anomaly of the matching shape first.
func True(seed float64, shape orbit.Shape, e, a float64) (float64, error) {
	ecc, err := Eccentric(shape, seed, e, a)
	if err != nil {
		return 0, err
	}

	switch shape {
	case orbit.Circular:
		// Degenerate additive form of the circular branch's simplified model.
		return ecc + seed, nil
	case orbit.Elliptical:
		return 2 * math.Atan(math.Sqrt((1+e)/(1-e))*math.Tan(ecc/2)), nil
	case orbit.Parabolic:
		// Barker's D is tan(ν/2).
		return 2 * math.Atan(ecc), nil
	case orbit.Hyperbolic:
		return 2 * math.Atan(math.Sqrt((e+1)/(e-1))*math.Tanh(ecc/2)), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedShape, int(shape))
	}
}

// solveElliptical solves M = E − e·sin(E) by Newton-Raphson with the
// standard starter E₀ = M + e·sin(M).
func solveElliptical(m, e float64) (float64, error) {
	E := m + e*math.Sin(m)
	for i := 0; i < MaxIterations; i++ {
		f := E - e*math.Sin(E) - m
		fp := 1 - e*math.Cos(E)
		d := f / fp
		E -= d
		if math.Abs(d) < Tolerance {
			return E, nil
		}
	}
	return 0, fmt.Errorf("%w: elliptical solve (e=%g, M=%g) after %d iterations",
		ErrNonConvergence, e, m, MaxIterations)
}

// solveHyperbolic solves M = e·sinh(H) − H with starter H₀ = M.
func solveHyperbolic(m, e float64) (float64, error) {
	H := m
	for i := 0; i < MaxIterations; i++ {
		d := (m - e*math.Sinh(H) + H) / (e*math.Cosh(H) - 1)
		H += d
		if math.Abs(d) < Tolerance {
			return H, nil
		}
	}
	return 0, fmt.Errorf("%w: hyperbolic solve (e=%g, M=%g) after %d iterations",
		ErrNonConvergence, e, m, MaxIterations)
}

// solveBarker solves the canonical Barker equation M = D + D³/3 with
// starter D₀ = M. The mean anomaly is assumed normalized by sqrt(μ/2q³)
// upstream, so the perifocal distance does not appear here.
func solveBarker(m float64) (float64, error) {
	D := m
	for i := 0; i < MaxIterations; i++ {
		f := D + D*D*D/3 - m
		fp := 1 + D*D
		d := f / fp
		D -= d
		if math.Abs(d) < Tolerance {
			return D, nil
		}
	}
	return 0, fmt.Errorf("%w: parabolic solve (M=%g) after %d iterations",
		ErrNonConvergence, m, MaxIterations)
}
