package orbit

import (
	"fmt"
	"math"
)

// SemiAxis derives secondary axis quantities from a semi-major axis.
type SemiAxis struct {
	Major float64
}

// Minor returns the semi-minor axis a·sqrt(1−e²).
// Defined for closed orbits only: callers must gate on Shape first,
// e ≥ 1 is a domain error here.
func (s SemiAxis) Minor(e float64) (float64, error) {
	if math.IsNaN(e) || e < 0 || e >= 1 {
		return 0, fmt.Errorf("semi-minor axis: eccentricity %v outside [0,1)", e)
	}
	return s.Major * math.Sqrt(1-e*e), nil
}

// SemiLatusRectum returns p = a·(1−e²).
func (s SemiAxis) SemiLatusRectum(e float64) float64 {
	return s.Major * (1 - e*e)
}
