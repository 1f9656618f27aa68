package ui

import (
	"fmt"
	"strings"

	"github.com/solarpath/solcal/internal/body"
	"github.com/solarpath/solcal/internal/state"
)

// DetailModel shows a single body's calendar state and, for Mars, the full
// timezone band table.
type DetailModel struct {
	width  int
	height int
	status state.BodyStatus
}

// NewDetailModel creates a new detail model.
func NewDetailModel() DetailModel {
	return DetailModel{}
}

// SetSize updates the viewport size.
func (m DetailModel) SetSize(width, height int) DetailModel {
	m.width = width
	m.height = height
	return m
}

// SetBody sets the body under inspection.
func (m DetailModel) SetBody(status state.BodyStatus) DetailModel {
	m.status = status
	return m
}

// Name returns the inspected body's name.
func (m DetailModel) Name() string {
	return m.status.Name
}

// View renders the detail panel.
func (m DetailModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(strings.ToUpper(m.status.Name)))
	b.WriteString("\n\n")

	if m.status.Err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.status.Err.Error()))
		return b.String()
	}

	d := m.status.Date
	writeField(&b, "Era", d.Era.String())
	writeField(&b, "Year", fmt.Sprintf("%.0f", d.Year))
	writeField(&b, "Month", fmt.Sprintf("%.0f", d.Month))
	writeField(&b, "Day", fmt.Sprintf("%.0f", d.Day))
	writeField(&b, "Ls", fmt.Sprintf("%.2f°", d.Ls))
	writeField(&b, "Season", d.Season)

	if m.status.HasClock {
		c := m.status.Clock
		writeField(&b, "Clock", fmt.Sprintf("%02d:%02d:%02d %s %s", c.Hour, c.Minute, c.Second, c.HourType, c.Zone.Code))

		b.WriteString("\n")
		b.WriteString(headerStyle.Render(fmt.Sprintf("%-5s %-16s %7s %6s %6s", "CODE", "NAME", "OFFSET", "EAST", "WEST")))
		b.WriteString("\n")
		for _, z := range body.MartianZones {
			row := fmt.Sprintf("%-5s %-16s %+7.1f %6.0f %6.0f", z.Code, z.Name, z.Offset, z.East, z.West)
			if z.Code == m.status.Clock.Zone.Code {
				b.WriteString(selectedRowStyle.Render(row))
			} else {
				b.WriteString(rowStyle.Render(row))
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	b.WriteString(labelStyle.Render(fmt.Sprintf("%-8s", label)))
	b.WriteString(value)
	b.WriteString("\n")
}
