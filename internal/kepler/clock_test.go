package kepler

import (
	"math"
	"testing"
	"time"
)

var j2000Noon = time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)

func TestMarsSolDateAtJ2000(t *testing.T) {
	got := MarsSolDate(j2000Noon)
	if want := 44791.6202; math.Abs(got-want) > 0.001 {
		t.Errorf("MarsSolDate(J2000 noon) = %v, want ~%v", got, want)
	}
}

func TestMarsSolDateAdvancesPerSol(t *testing.T) {
	// One sol is 1.0274912 terrestrial days.
	sol := time.Duration(marsEarthDayRatio * 24 * float64(time.Hour))

	before := MarsSolDate(j2000Noon)
	after := MarsSolDate(j2000Noon.Add(sol))
	if d := after - before; math.Abs(d-1) > 1e-6 {
		t.Errorf("MSD advanced %v over one sol, want 1", d)
	}
}

func TestMarsClockAt(t *testing.T) {
	mtc := Zone{Code: "NT", Name: "Noachis Time", Offset: 0}

	c := MarsClockAt(j2000Noon, mtc)
	if c.Hour != 14 {
		t.Errorf("Hour = %d, want 14", c.Hour)
	}
	if c.Minute != 53 {
		t.Errorf("Minute = %d, want 53", c.Minute)
	}
	if c.HourType != "PM" {
		t.Errorf("HourType = %q, want PM", c.HourType)
	}
}

func TestMarsClockZoneOffset(t *testing.T) {
	base := MarsClockAt(j2000Noon, Zone{Code: "NT", Offset: 0})
	east := MarsClockAt(j2000Noon, Zone{Code: "HT", Offset: 5})
	west := MarsClockAt(j2000Noon, Zone{Code: "MT", Offset: -5})

	if got, want := east.Hour, (base.Hour+5)%24; got != want {
		t.Errorf("east Hour = %d, want %d", got, want)
	}
	if got, want := west.Hour, (base.Hour+24-5)%24; got != want {
		t.Errorf("west Hour = %d, want %d", got, want)
	}
	// Whole-hour offsets leave the minute field unchanged.
	if east.Minute != base.Minute || west.Minute != base.Minute {
		t.Errorf("minutes shifted: base %d east %d west %d", base.Minute, east.Minute, west.Minute)
	}
}

func TestMarsClockFieldsInRange(t *testing.T) {
	times := []time.Time{
		time.Date(1976, 7, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2004, 1, 4, 4, 35, 0, 0, time.UTC),
		time.Date(2026, 8, 28, 18, 30, 0, 0, time.UTC),
	}
	for _, at := range times {
		c := MarsClockAt(at, Zone{Code: "NT"})
		if c.Hour < 0 || c.Hour > 23 {
			t.Errorf("Hour = %d at %v, want [0, 23]", c.Hour, at)
		}
		if c.Minute < 0 || c.Minute > 59 {
			t.Errorf("Minute = %d at %v, want [0, 59]", c.Minute, at)
		}
		if c.Second < 0 || c.Second > 59 {
			t.Errorf("Second = %d at %v, want [0, 59]", c.Second, at)
		}
	}
}

func TestHourType(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, "AM"},
		{11, "AM"},
		{12, "PM"},
		{23, "PM"},
	}
	for _, tt := range tests {
		if got := hourType(tt.hour); got != tt.want {
			t.Errorf("hourType(%d) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}
