// Package orbit provides scalar two-body orbital mechanics: conic shape
// classification, axis utilities, mean motion, and season lookup.
package orbit

import (
	"fmt"
	"math"
)

// Shape identifies the conic section a body's orbit traces.
type Shape int

const (
	Circular Shape = iota
	Elliptical
	Parabolic
	Hyperbolic
)

func (s Shape) String() string {
	switch s {
	case Circular:
		return "circular"
	case Elliptical:
		return "elliptical"
	case Parabolic:
		return "parabolic"
	case Hyperbolic:
		return "hyperbolic"
	default:
		return "unknown"
	}
}

// Classify maps an eccentricity to its conic shape.
// e == 0 is circular, 0 < e < 1 elliptical, e == 1 parabolic, e > 1 hyperbolic.
func Classify(e float64) (Shape, error) {
	switch {
	case math.IsNaN(e) || e < 0:
		return 0, fmt.Errorf("classify orbit: eccentricity %v out of domain", e)
	case e == 0:
		return Circular, nil
	case e < 1:
		return Elliptical, nil
	case e == 1:
		return Parabolic, nil
	default:
		return Hyperbolic, nil
	}
}
