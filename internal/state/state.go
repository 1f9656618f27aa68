// Package state provides thread-safe snapshots of computed body clocks for
// the UI. All orbital computation stays pure; this package only holds the
// latest results.
package state

import (
	"sync"
	"time"

	"github.com/solarpath/solcal/internal/body"
	"github.com/solarpath/solcal/internal/julian"
	"github.com/solarpath/solcal/internal/kepler"
)

// BodyStatus is one body's computed calendar state at a snapshot instant.
type BodyStatus struct {
	Name     string
	Date     kepler.Date
	Clock    kepler.Clock
	HasClock bool // true for bodies with a wall-clock model (Mars)
	Err      error
}

// Snapshot is an immutable view of all bodies at one instant.
type Snapshot struct {
	TakenAt    time.Time
	JulianDate float64
	Bodies     []BodyStatus
}

// Manager holds the current snapshot with thread-safe access and a short
// history ring for the UI.
type Manager struct {
	mu         sync.RWMutex
	current    Snapshot
	history    []Snapshot
	maxHistory int
}

// NewManager creates an empty state manager.
func NewManager() *Manager {
	return &Manager{maxHistory: 64}
}

// Update stores a new snapshot and appends it to the history ring.
func (m *Manager) Update(s Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.current = s
	m.history = append(m.history, s)
	if len(m.history) > m.maxHistory {
		m.history = m.history[len(m.history)-m.maxHistory:]
	}
}

// Snapshot returns the current snapshot.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// History returns a copy of the snapshot history, oldest first.
func (m *Manager) History() []Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Snapshot, len(m.history))
	copy(out, m.history)
	return out
}

// Compute builds a snapshot for the given bodies at a terrestrial instant.
// Per-body failures are recorded on the status rather than aborting the
// snapshot.
func Compute(bodies []kepler.Body, now time.Time) Snapshot {
	jd := julian.FromTime(now)

	snap := Snapshot{
		TakenAt:    now,
		JulianDate: jd,
		Bodies:     make([]BodyStatus, 0, len(bodies)),
	}

	for _, b := range bodies {
		status := BodyStatus{Name: b.Name()}
		status.Date, status.Err = kepler.DateForBody(b, jd)

		if status.Err == nil && b.Name() == body.Mars.Name() {
			status.Clock = kepler.MarsClockAt(now, body.MTC)
			status.HasClock = true
		}

		snap.Bodies = append(snap.Bodies, status)
	}
	return snap
}
