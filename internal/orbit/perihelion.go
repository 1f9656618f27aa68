package orbit

// Perihelion describes a body's perihelion passage reference.
//
// Day is the perihelion anchor: the day of the orbital year of the passage,
// expressed on the same 0–360 circle as the solar longitude. For the bodies
// in the built-in tables the two scales coincide at the anchor.
type Perihelion struct {
	MonthStart float64 // day-of-year lower bound of the passage month
	MonthEnd   float64 // day-of-year upper bound of the passage month
	LsStart    float64 // solar longitude lower bound of the passage, degrees
	LsEnd      float64 // solar longitude upper bound of the passage, degrees
	Day        float64 // perihelion anchor, in [0, orbital period)
}

// LsPerMonth returns the average solar longitude swept per calendar month,
// taken from the Ls span of the perihelion passage month.
func (p Perihelion) LsPerMonth() float64 {
	return p.LsEnd - p.LsStart
}
