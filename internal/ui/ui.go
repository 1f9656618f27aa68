// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/solarpath/solcal/internal/state"
	"github.com/solarpath/solcal/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewDashboard ViewMode = iota
	ViewBodyDetail
)

// Msg types for Bubble Tea
type (
	// TickMsg triggers periodic UI updates.
	TickMsg time.Time

	// SnapshotMsg signals a freshly computed state snapshot.
	SnapshotMsg struct {
		Snapshot state.Snapshot
	}

	// CatalogReloadedMsg signals the body catalog changed on disk.
	CatalogReloadedMsg struct {
		Count int
	}
)

// Model is the root Bubble Tea model.
type Model struct {
	state *state.Manager

	viewMode ViewMode
	width    int
	height   int
	ready    bool
	status   string

	dashboard DashboardModel
	detail    DetailModel

	snapshot state.Snapshot
}

// New creates a new root UI model.
func New(stateMgr *state.Manager) Model {
	return Model{
		state:     stateMgr,
		viewMode:  ViewDashboard,
		dashboard: NewDashboardModel(),
		detail:    NewDetailModel(),
		snapshot:  stateMgr.Snapshot(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "enter":
			if m.viewMode == ViewDashboard {
				if status, ok := m.dashboard.Selected(); ok {
					m.detail = m.detail.SetBody(status)
					m.viewMode = ViewBodyDetail
				}
				return m, nil
			}

		case "esc":
			m.viewMode = ViewDashboard
			return m, nil
		}

		if m.viewMode == ViewDashboard {
			m.dashboard, _ = m.dashboard.Update(msg)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.dashboard = m.dashboard.SetSize(msg.Width, msg.Height)
		m.detail = m.detail.SetSize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		m.snapshot = m.state.Snapshot()
		m.dashboard = m.dashboard.UpdateData(m.snapshot)
		if m.viewMode == ViewBodyDetail {
			if status, ok := findBody(m.snapshot, m.detail.Name()); ok {
				m.detail = m.detail.SetBody(status)
			}
		}
		return m, tickCmd()

	case SnapshotMsg:
		m.snapshot = msg.Snapshot
		m.dashboard = m.dashboard.UpdateData(m.snapshot)
		if m.viewMode == ViewBodyDetail {
			if status, ok := findBody(m.snapshot, m.detail.Name()); ok {
				m.detail = m.detail.SetBody(status)
			}
		}
		return m, nil

	case CatalogReloadedMsg:
		m.status = statusStyle.Render("catalog reloaded")
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var body string
	switch m.viewMode {
	case ViewBodyDetail:
		body = m.detail.View()
	default:
		body = m.dashboard.View()
	}

	header := titleStyle.Render("solcal " + version.Version)
	if m.status != "" {
		header = lipgloss.JoinHorizontal(lipgloss.Top, header, "  ", m.status)
	}
	footer := helpStyle.Render("↑/↓ select · enter detail · esc back · q quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", footer)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func findBody(snap state.Snapshot, name string) (state.BodyStatus, bool) {
	for _, b := range snap.Bodies {
		if b.Name == name {
			return b, true
		}
	}
	return state.BodyStatus{}, false
}
