package orbit

import "testing"

func TestSeasonAt(t *testing.T) {
	tests := []struct {
		ls   float64
		want string
	}{
		{0, SeasonSpring},
		{89.99, SeasonSpring},
		{90, SeasonSummer},
		{179.99, SeasonSummer},
		{180, SeasonAutumn},
		{251, SeasonAutumn},
		{270, SeasonWinter},
		{359.99, SeasonWinter},
		{360, SeasonSpring}, // wraps
		{-10, SeasonWinter}, // wraps to 350
	}

	for _, tt := range tests {
		if got := SeasonAt(tt.ls); got != tt.want {
			t.Errorf("SeasonAt(%v) = %q, want %q", tt.ls, got, tt.want)
		}
	}
}
