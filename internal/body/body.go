// Package body holds the built-in celestial body tables, the user catalog,
// and the registry that merges them.
package body

import "github.com/solarpath/solcal/internal/orbit"

// Planet is a constant-table implementation of kepler.Body.
type Planet struct {
	name             string
	epoch            float64
	eccentricity     float64
	semiMajorAxis    float64
	orbitalPeriod    float64
	rotationalPeriod float64
	perihelion       orbit.Perihelion
	initialYear      float64
}

func (p Planet) Name() string                 { return p.name }
func (p Planet) Epoch() float64               { return p.epoch }
func (p Planet) Eccentricity() float64        { return p.eccentricity }
func (p Planet) SemiMajorAxis() float64       { return p.semiMajorAxis }
func (p Planet) OrbitalPeriod() float64       { return p.orbitalPeriod }
func (p Planet) RotationalPeriod() float64    { return p.rotationalPeriod }
func (p Planet) Perihelion() orbit.Perihelion { return p.perihelion }
func (p Planet) InitialYear() float64         { return p.initialYear }

// Mars. Epoch is 1975-12-19T04:00:00, within Mars Year 12.
var Mars = Planet{
	name:             "mars",
	epoch:            2442765.667,
	eccentricity:     0.0934,
	semiMajorAxis:    1.52,
	orbitalPeriod:    668.6,
	rotationalPeriod: 88775.245,
	perihelion: orbit.Perihelion{
		MonthStart: 468.5,
		MonthEnd:   514.6,
		LsStart:    240.0,
		LsEnd:      270.0,
		Day:        251.0,
	},
	initialYear: 12,
}

// Earth, anchored at J2000. Included as the reference body.
var Earth = Planet{
	name:             "earth",
	epoch:            2451545.0,
	eccentricity:     0.0167,
	semiMajorAxis:    1.0,
	orbitalPeriod:    365.256,
	rotationalPeriod: 86400.0,
	perihelion: orbit.Perihelion{
		MonthStart: 0,
		MonthEnd:   31,
		LsStart:    270.0,
		LsEnd:      300.0,
		Day:        283.0,
	},
	initialYear: 2000,
}
