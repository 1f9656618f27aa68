package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/solarpath/solcal/internal/state"
)

// Styles shared by the dashboard and detail views.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// DashboardModel is the body-clock table view.
type DashboardModel struct {
	width    int
	height   int
	cursor   int
	snapshot state.Snapshot
}

// NewDashboardModel creates a new dashboard model.
func NewDashboardModel() DashboardModel {
	return DashboardModel{}
}

// SetSize updates the viewport size.
func (m DashboardModel) SetSize(width, height int) DashboardModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with a new snapshot, clamping the cursor.
func (m DashboardModel) UpdateData(snapshot state.Snapshot) DashboardModel {
	m.snapshot = snapshot
	if n := len(snapshot.Bodies); m.cursor >= n && n > 0 {
		m.cursor = n - 1
	}
	return m
}

// Selected returns the body under the cursor.
func (m DashboardModel) Selected() (state.BodyStatus, bool) {
	if m.cursor < 0 || m.cursor >= len(m.snapshot.Bodies) {
		return state.BodyStatus{}, false
	}
	return m.snapshot.Bodies[m.cursor], true
}

// Update handles messages.
func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		n := len(m.snapshot.Bodies)

		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < n-1 {
				m.cursor++
			}
		case "home":
			m.cursor = 0
		case "end":
			if n > 0 {
				m.cursor = n - 1
			}
		}
	}

	return m, nil
}

// View renders the dashboard table.
func (m DashboardModel) View() string {
	var b strings.Builder

	if len(m.snapshot.Bodies) == 0 {
		b.WriteString(labelStyle.Render("No bodies registered"))
		return b.String()
	}

	b.WriteString(labelStyle.Render(fmt.Sprintf("JD %.5f", m.snapshot.JulianDate)))
	b.WriteString("\n\n")

	header := fmt.Sprintf("%-10s %6s %5s %5s %8s %-8s %-10s",
		"BODY", "YEAR", "MONTH", "DAY", "LS", "SEASON", "CLOCK")
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	for i, status := range m.snapshot.Bodies {
		var row string
		if status.Err != nil {
			row = fmt.Sprintf("%-10s %s", status.Name, errorStyle.Render(status.Err.Error()))
		} else {
			clock := "—"
			if status.HasClock {
				clock = fmt.Sprintf("%02d:%02d:%02d %s",
					status.Clock.Hour, status.Clock.Minute, status.Clock.Second, status.Clock.Zone.Code)
			}
			row = fmt.Sprintf("%-10s %6.0f %5.0f %5.0f %7.2f° %-8s %-10s",
				status.Name, status.Date.Year, status.Date.Month, status.Date.Day,
				status.Date.Ls, status.Date.Season, clock)
		}

		if i == m.cursor {
			b.WriteString(selectedRowStyle.Render(row))
		} else {
			b.WriteString(rowStyle.Render(row))
		}
		b.WriteString("\n")
	}

	return b.String()
}
