package kepler

import (
	"fmt"
	"math"

	"github.com/solarpath/solcal/internal/anomaly"
	"github.com/solarpath/solcal/internal/orbit"
)

// EarthRotationalPeriod is the length of the terrestrial day in seconds,
// the reference unit for converting Julian-date deltas into body days.
const EarthRotationalPeriod = 86400.0

const degPerRad = 180 / math.Pi

// Era places a date relative to the body's reference epoch.
type Era int

const (
	EraUnknown Era = iota
	EraAD          // after the reference epoch
	EraBD          // before the reference epoch
)

func (e Era) String() string {
	switch e {
	case EraAD:
		return "AD"
	case EraBD:
		return "BD"
	default:
		return "Unknown"
	}
}

// Date is a calendar date on an orbiting body. Constructed once per query
// and never mutated.
type Date struct {
	Era    Era
	Year   float64
	Month  float64
	Day    float64
	Ls     float64 // solar longitude, degrees [0, 360)
	Season string
}

func (d Date) String() string {
	return fmt.Sprintf("Year %.0f %s, Month %.0f, Day %.0f (Ls %.1f°, %s)",
		d.Year, d.Era, d.Month, d.Day, d.Ls, d.Season)
}

// SolarLongitude computes the body-centric solar longitude Ls in degrees
// [0, 360) for a day count into the orbital year: the mean anomaly of the
// elapsed day is converted to a true anomaly and offset by the perihelion
// anchor.
func SolarLongitude(shape orbit.Shape, dayOfYear, e float64, peri orbit.Perihelion, orbitalPeriod, semiMajor float64) (float64, error) {
	m, err := orbit.MeanAnomaly(dayOfYear, peri, orbitalPeriod)
	if err != nil {
		return 0, err
	}
	nu, err := anomaly.True(m, shape, e, semiMajor)
	if err != nil {
		return 0, err
	}
	return orbit.Wrap360(nu*degPerRad + peri.Day), nil
}

// ComposeDate converts a Julian date into the body's calendar date.
//
// The Julian-date delta from the epoch is rescaled from terrestrial days
// into body days, normalized into [0, orbital period) with closed-form
// year counting, and turned into month/day/season fields via the solar
// longitude. Pure function of its inputs; the Year field counts orbits
// since the epoch (see DateForBody for the calendar offset).
func ComposeDate(julianDate, epoch, rotationalPeriod float64, peri orbit.Perihelion, semiMajor, e, orbitalPeriod float64) (Date, error) {
	if rotationalPeriod <= 0 || orbitalPeriod <= 0 {
		return Date{}, fmt.Errorf("compose date: rotational period %v and orbital period %v must be positive",
			rotationalPeriod, orbitalPeriod)
	}

	raw := (julianDate - epoch) * EarthRotationalPeriod / rotationalPeriod

	years := math.Floor(raw / orbitalPeriod)
	dayOfYear := raw - years*orbitalPeriod
	// Guard the upper boundary against floating-point spill.
	if dayOfYear >= orbitalPeriod {
		dayOfYear -= orbitalPeriod
		years++
	}

	shape, err := orbit.Classify(e)
	if err != nil {
		return Date{}, err
	}

	ls, err := SolarLongitude(shape, dayOfYear, e, peri, orbitalPeriod, semiMajor)
	if err != nil {
		return Date{}, err
	}

	d := Date{
		Year:   years,
		Month:  1 + math.Floor(ls/peri.LsPerMonth()),
		Day:    1 + math.Floor(dayOfYear),
		Ls:     ls,
		Season: orbit.SeasonAt(ls),
	}
	d.Era = eraOf(d.Year)
	return d, nil
}

// DateForBody composes the calendar date of a body at a Julian date,
// applying the body's calendar year offset.
func DateForBody(b Body, julianDate float64) (Date, error) {
	d, err := ComposeDate(julianDate, b.Epoch(), b.RotationalPeriod(), b.Perihelion(),
		b.SemiMajorAxis(), b.Eccentricity(), b.OrbitalPeriod())
	if err != nil {
		return Date{}, fmt.Errorf("date for %s: %w", b.Name(), err)
	}
	d.Year += b.InitialYear()
	d.Era = eraOf(d.Year)
	return d, nil
}

func eraOf(year float64) Era {
	if year > 0 {
		return EraAD
	}
	return EraBD
}
