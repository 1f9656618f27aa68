package state

import (
	"testing"
	"time"

	"github.com/solarpath/solcal/internal/body"
	"github.com/solarpath/solcal/internal/kepler"
)

func TestCompute(t *testing.T) {
	at := time.Date(2004, 1, 4, 4, 35, 0, 0, time.UTC)

	snap := Compute([]kepler.Body{body.Mars, body.Earth}, at)

	if len(snap.Bodies) != 2 {
		t.Fatalf("got %d bodies, want 2", len(snap.Bodies))
	}
	if snap.TakenAt != at {
		t.Errorf("TakenAt = %v, want %v", snap.TakenAt, at)
	}

	for _, status := range snap.Bodies {
		if status.Err != nil {
			t.Errorf("%s: unexpected error %v", status.Name, status.Err)
			continue
		}
		if status.Date.Ls < 0 || status.Date.Ls >= 360 {
			t.Errorf("%s: Ls = %v, want [0, 360)", status.Name, status.Date.Ls)
		}
		switch status.Name {
		case "mars":
			if !status.HasClock {
				t.Error("mars snapshot missing wall clock")
			}
		case "earth":
			if status.HasClock {
				t.Error("earth snapshot has a wall clock, want none")
			}
		}
	}
}

func TestManagerUpdateAndHistory(t *testing.T) {
	m := NewManager()

	if got := m.Snapshot(); len(got.Bodies) != 0 {
		t.Errorf("fresh manager snapshot has %d bodies", len(got.Bodies))
	}

	for i := 0; i < 3; i++ {
		m.Update(Snapshot{JulianDate: float64(i)})
	}

	if got := m.Snapshot().JulianDate; got != 2 {
		t.Errorf("current JulianDate = %v, want 2", got)
	}

	hist := m.History()
	if len(hist) != 3 {
		t.Fatalf("history length = %d, want 3", len(hist))
	}
	if hist[0].JulianDate != 0 || hist[2].JulianDate != 2 {
		t.Errorf("history order wrong: %v, %v", hist[0].JulianDate, hist[2].JulianDate)
	}
}

func TestManagerHistoryBounded(t *testing.T) {
	m := NewManager()
	for i := 0; i < 200; i++ {
		m.Update(Snapshot{JulianDate: float64(i)})
	}

	hist := m.History()
	if len(hist) != 64 {
		t.Errorf("history length = %d, want 64", len(hist))
	}
	if hist[len(hist)-1].JulianDate != 199 {
		t.Errorf("newest entry = %v, want 199", hist[len(hist)-1].JulianDate)
	}
}
