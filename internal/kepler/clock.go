package kepler

import (
	"fmt"
	"math"
	"time"

	"github.com/solarpath/solcal/internal/julian"
)

// Mars Sol Date constants, after the Mars24 sunclock algorithm.
const (
	jd2000Noon        = 2451545.0   // JD of 2000-01-01T12:00:00 TT
	taiUTCOffset      = 37.0        // seconds, TAI − UTC
	ttTAIOffset       = 32.184      // seconds, TT − TAI
	marsEarthDayRatio = 1.027491252 // sol length in terrestrial days
	msdMidday         = 44796.0
	msdAlignment      = 0.00096
)

// Zone is one wall-clock band on a body's surface.
type Zone struct {
	Code   string  // short code, e.g. "NT"
	Name   string  // display name, e.g. "Noachis Time"
	Offset float64 // hours east of the prime meridian
	East   float64 // eastern longitude bound, degrees
	West   float64 // western longitude bound, degrees
}

// Clock is a wall-clock reading in a body timezone.
type Clock struct {
	Hour     int
	Minute   int
	Second   int
	Zone     Zone
	HourType string // "AM" or "PM"
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d:%02d %s (%s)", c.Hour, c.Minute, c.Second, c.Zone.Code, c.Zone.Name)
}

// MarsSolDate returns the Mars Sol Date for a terrestrial instant: the
// running count of sols since the MSD epoch, on the Airy-0 meridian.
func MarsSolDate(t time.Time) float64 {
	jdUT := julian.FromTime(t)
	jdTT := jdUT + (taiUTCOffset+ttTAIOffset)/EarthRotationalPeriod
	t2000 := jdTT - jd2000Noon
	return (t2000-4.5)/marsEarthDayRatio + msdMidday - msdAlignment
}

// MarsClockAt returns the Martian wall clock for a terrestrial instant in
// the given timezone. Sols divide into 24 Martian hours.
func MarsClockAt(t time.Time, z Zone) Clock {
	msd := MarsSolDate(t)

	h := math.Mod(msd*24+z.Offset, 24)
	if h < 0 {
		h += 24
	}

	hour := math.Floor(h)
	fm := (h - hour) * 60
	minute := math.Floor(fm)
	second := math.Floor((fm - minute) * 60)

	return Clock{
		Hour:     int(hour),
		Minute:   int(minute),
		Second:   int(second),
		Zone:     z,
		HourType: hourType(int(hour)),
	}
}

// hourType classifies an hour on the 12-hour clock.
func hourType(hour int) string {
	if hour >= 0 && hour < 12 {
		return "AM"
	}
	return "PM"
}
