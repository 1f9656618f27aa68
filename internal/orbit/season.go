package orbit

// Season labels returned by SeasonAt. Seasons are defined on the 360° solar
// longitude circle and refer to the body's northern hemisphere.
const (
	SeasonSpring = "Spring"
	SeasonSummer = "Summer"
	SeasonAutumn = "Autumn"
	SeasonWinter = "Winter"
)

// SeasonAt maps a solar longitude in degrees to a season label.
func SeasonAt(lsDeg float64) string {
	switch ls := Wrap360(lsDeg); {
	case ls < 90:
		return SeasonSpring
	case ls < 180:
		return SeasonSummer
	case ls < 270:
		return SeasonAutumn
	default:
		return SeasonWinter
	}
}
