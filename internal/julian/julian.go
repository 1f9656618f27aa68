// Package julian converts between Gregorian calendar instants and Julian
// day numbers. The rest of the system treats a Julian date as an opaque
// float; these helpers exist for the CLI surface.
package julian

import (
	"math"
	"time"
)

// UnixEpoch is the Julian date of 1970-01-01T00:00:00Z.
const UnixEpoch = 2440587.5

// FromTime returns the Julian day number of a terrestrial instant.
func FromTime(t time.Time) float64 {
	t = t.UTC()
	year := t.Year()
	month := int(t.Month())
	day := t.Day()

	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3

	jdn := day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045

	frac := (float64(t.Hour())-12)/24 +
		float64(t.Minute())/1440 +
		(float64(t.Second())+float64(t.Nanosecond())/1e9)/86400

	return float64(jdn) + frac
}

// ToTime returns the UTC instant of a Julian day number.
func ToTime(jd float64) time.Time {
	// Shift so the integer part counts civil days, not noon-to-noon days.
	shifted := jd + 0.5
	jdn := math.Floor(shifted)
	frac := shifted - jdn

	year, month, day := gregorian(int(jdn))

	secs := frac * 86400
	hour := int(secs / 3600)
	secs -= float64(hour) * 3600
	minute := int(secs / 60)
	secs -= float64(minute) * 60
	sec := int(secs)
	ns := int((secs - float64(sec)) * 1e9)

	return time.Date(year, month, day, hour, minute, sec, ns, time.UTC)
}

// Now returns the current Julian date.
func Now() float64 {
	return FromTime(time.Now())
}

// gregorian converts a Julian day number to a Gregorian calendar date.
func gregorian(jdn int) (year int, month time.Month, day int) {
	a := jdn + 32044
	b := (4*a + 3) / 146097
	c := a - (146097*b)/4
	d := (4*c + 3) / 1461
	e := c - (1461*d)/4
	m := (5*e + 2) / 153

	day = e - (153*m+2)/5 + 1
	month = time.Month(m + 3 - 12*(m/10))
	year = 100*b + d - 4800 + m/10
	return year, month, day
}
