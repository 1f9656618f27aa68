package anomaly

import "errors"

// Sentinel errors for the solver. All are local computation failures with no
// recovery path here; callers receive them verbatim.
var (
	// ErrNonConvergence reports a Newton-Raphson loop that exhausted its
	// iteration budget without meeting the tolerance.
	ErrNonConvergence = errors.New("anomaly: solver did not converge")

	// ErrUnsupportedShape reports a shape value outside the four conics.
	ErrUnsupportedShape = errors.New("anomaly: unsupported orbit shape")

	// ErrEccentricityDomain reports an eccentricity inconsistent with the
	// requested shape (for example e ≥ 1 with an elliptical solve).
	ErrEccentricityDomain = errors.New("anomaly: eccentricity outside shape domain")
)
