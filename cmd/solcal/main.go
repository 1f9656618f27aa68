// Command solcal computes calendar dates, solar longitudes, and wall clocks
// for celestial bodies from their orbital elements.
package main

func main() {
	Execute()
}
