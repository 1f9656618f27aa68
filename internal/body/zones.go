package body

import "github.com/solarpath/solcal/internal/kepler"

// MartianZones are the eleven Coordinated Mars Time bands, MTC-5 to MTC+5.
// Offsets step by one decisol (2.5 Martian hours); Mars has no DST.
var MartianZones = []kepler.Zone{
	{Code: "AMT", Name: "Amazonis Time", Offset: -12.5, East: -180, West: -162},
	{Code: "OT", Name: "Olympus Time", Offset: -10.0, East: -162, West: -126},
	{Code: "TT", Name: "Tharsis Time", Offset: -7.5, East: -126, West: -90},
	{Code: "MT", Name: "Marineris Time", Offset: -5.0, East: -90, West: -54},
	{Code: "AGT", Name: "Argyre Time", Offset: -2.5, East: -54, West: -18},
	{Code: "NT", Name: "Noachis Time", Offset: 0.0, East: -18, West: 18},
	{Code: "ABT", Name: "Arabia Time", Offset: 2.5, East: 18, West: 54},
	{Code: "HT", Name: "Hellas Time", Offset: 5.0, East: 54, West: 90},
	{Code: "UT", Name: "Utopia Time", Offset: 7.5, East: 90, West: 126},
	{Code: "ET", Name: "Elysium Time", Offset: 10.0, East: 126, West: 162},
	{Code: "ACT", Name: "Arcadia Time", Offset: 12.5, East: 162, West: 180},
}

// MTC is the prime-meridian Martian timezone, Noachis Time.
var MTC = MartianZones[5]

// MartianZoneFor returns the timezone band containing an areographic
// longitude in degrees, east positive.
func MartianZoneFor(lonDeg float64) (kepler.Zone, bool) {
	for _, z := range MartianZones {
		if lonDeg >= z.East && lonDeg < z.West {
			return z, true
		}
	}
	if lonDeg == 180 {
		return MartianZones[len(MartianZones)-1], true
	}
	return kepler.Zone{}, false
}

// MartianZoneByCode returns the timezone with the given short code.
func MartianZoneByCode(code string) (kepler.Zone, bool) {
	for _, z := range MartianZones {
		if z.Code == code {
			return z, true
		}
	}
	return kepler.Zone{}, false
}
