package body

import (
	"reflect"
	"testing"

	"github.com/solarpath/solcal/internal/kepler"
	"github.com/solarpath/solcal/internal/orbit"
)

func TestRegistryLookup(t *testing.T) {
	reg := NewRegistry()

	tests := []struct {
		name  string
		query string
		found bool
	}{
		{"exact", "mars", true},
		{"mixed case", "Mars", true},
		{"whitespace", "  earth ", true},
		{"unknown", "pluto", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := reg.Lookup(tt.query)
			if ok != tt.found {
				t.Errorf("Lookup(%q) found = %v, want %v", tt.query, ok, tt.found)
			}
		})
	}
}

func TestRegistryNamesSorted(t *testing.T) {
	reg := NewRegistry()
	want := []string{"earth", "mars"}
	if got := reg.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestRegistryCatalogOverlay(t *testing.T) {
	reg := NewRegistry()

	custom := Planet{
		name:             "mars",
		epoch:            2451545.0,
		eccentricity:     0.1,
		semiMajorAxis:    1.52,
		orbitalPeriod:    668.6,
		rotationalPeriod: 88775.245,
	}
	reg.SetCatalog([]kepler.Body{custom})

	got, ok := reg.Lookup("mars")
	if !ok {
		t.Fatal("mars not found after overlay")
	}
	if got.Eccentricity() != 0.1 {
		t.Errorf("catalog entry did not shadow builtin: e = %v", got.Eccentricity())
	}

	// Clearing the catalog restores the builtin.
	reg.SetCatalog(nil)
	got, _ = reg.Lookup("mars")
	if got.Eccentricity() != Mars.Eccentricity() {
		t.Errorf("builtin not restored: e = %v", got.Eccentricity())
	}
}

func TestBuiltinTables(t *testing.T) {
	if Mars.OrbitalPeriod() != 668.6 {
		t.Errorf("Mars orbital period = %v, want 668.6", Mars.OrbitalPeriod())
	}
	if Mars.Perihelion() != (orbit.Perihelion{MonthStart: 468.5, MonthEnd: 514.6, LsStart: 240, LsEnd: 270, Day: 251}) {
		t.Errorf("Mars perihelion = %+v", Mars.Perihelion())
	}
	if Earth.RotationalPeriod() != kepler.EarthRotationalPeriod {
		t.Errorf("Earth rotational period = %v, want %v", Earth.RotationalPeriod(), kepler.EarthRotationalPeriod)
	}
}
