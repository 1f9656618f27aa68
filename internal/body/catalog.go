package body

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/solarpath/solcal/internal/kepler"
	"github.com/solarpath/solcal/internal/orbit"
)

// DefaultCatalogPath is the conventional location of the user body catalog.
const DefaultCatalogPath = "bodies.toml"

// CatalogEntry is one user-defined body in the TOML catalog.
type CatalogEntry struct {
	Name             string     `toml:"name"`
	Epoch            float64    `toml:"epoch"`
	Eccentricity     float64    `toml:"eccentricity"`
	SemiMajorAxis    float64    `toml:"semi_major_axis"`
	OrbitalPeriod    float64    `toml:"orbital_period"`
	RotationalPeriod float64    `toml:"rotational_period"`
	PerihelionDay    float64    `toml:"perihelion_day"`
	PerihelionMonth  [2]float64 `toml:"perihelion_month"`
	PerihelionLs     [2]float64 `toml:"perihelion_ls"`
	InitialYear      float64    `toml:"initial_year"`
}

type catalogFile struct {
	Bodies []CatalogEntry `toml:"body"`
}

// LoadCatalog reads user-defined bodies from a TOML catalog. A missing file
// is not an error: callers proceed with the built-ins only.
func LoadCatalog(path string) ([]kepler.Body, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading body catalog: %w", err)
	}

	var file catalogFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing body catalog %s: %w", path, err)
	}

	bodies := make([]kepler.Body, 0, len(file.Bodies))
	for i, entry := range file.Bodies {
		b, err := entry.toBody()
		if err != nil {
			return nil, fmt.Errorf("body catalog %s, entry %d: %w", path, i+1, err)
		}
		bodies = append(bodies, b)
	}
	return bodies, nil
}

func (c CatalogEntry) toBody() (kepler.Body, error) {
	switch {
	case c.Name == "":
		return nil, fmt.Errorf("body name is required")
	case c.Eccentricity < 0:
		return nil, fmt.Errorf("body %q: eccentricity %v must be non-negative", c.Name, c.Eccentricity)
	case c.SemiMajorAxis <= 0:
		return nil, fmt.Errorf("body %q: semi-major axis %v must be positive", c.Name, c.SemiMajorAxis)
	case c.OrbitalPeriod <= 0:
		return nil, fmt.Errorf("body %q: orbital period %v must be positive", c.Name, c.OrbitalPeriod)
	case c.RotationalPeriod <= 0:
		return nil, fmt.Errorf("body %q: rotational period %v must be positive", c.Name, c.RotationalPeriod)
	case c.PerihelionDay < 0 || c.PerihelionDay >= c.OrbitalPeriod:
		return nil, fmt.Errorf("body %q: perihelion day %v outside [0, %v)", c.Name, c.PerihelionDay, c.OrbitalPeriod)
	}

	return Planet{
		name:             c.Name,
		epoch:            c.Epoch,
		eccentricity:     c.Eccentricity,
		semiMajorAxis:    c.SemiMajorAxis,
		orbitalPeriod:    c.OrbitalPeriod,
		rotationalPeriod: c.RotationalPeriod,
		perihelion: orbit.Perihelion{
			MonthStart: c.PerihelionMonth[0],
			MonthEnd:   c.PerihelionMonth[1],
			LsStart:    c.PerihelionLs[0],
			LsEnd:      c.PerihelionLs[1],
			Day:        c.PerihelionDay,
		},
		initialYear: c.InitialYear,
	}, nil
}
