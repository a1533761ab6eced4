// Package term renders a model.MonthGrid as styled terminal text.
package term

import (
	"fmt"
	"strings"

	"calgrid/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// cellWidth is the printable width of every column, including a leading gap.
const cellWidth = 5

// Styles for each part of the grid.
type Styles struct {
	Title      lipgloss.Style
	WeekTitle  lipgloss.Style
	WeekNumber lipgloss.Style
	Day        lipgloss.Style
	Sunday     lipgloss.Style
	Selected   lipgloss.Style
}

func DefaultStyles() Styles {
	cell := lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Right)
	return Styles{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(colorTitle).Width(8 * cellWidth).Align(lipgloss.Center),
		WeekTitle:  cell.Foreground(colorSunday),
		WeekNumber: cell.Foreground(colorWeekNumber),
		Day:        cell.Foreground(colorDay),
		Sunday:     cell.Foreground(colorSunday),
		Selected:   cell.Bold(true).Foreground(colorSelectedFg).Background(colorSelectedBg),
	}
}

// MutedStyle is used for secondary chrome such as help lines.
func MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorMuted)
}

// Width is the printable width of a rendered grid.
func Width() int { return 8 * cellWidth }

// Render draws g: a title line, the weekday header and one line per week.
// The current day is bracketed so it stays visible without color.
func Render(g model.MonthGrid, st Styles) string {
	lines := make([]string, 0, len(g.Weeks)+2)
	lines = append(lines, st.Title.Render(g.Title))

	header := make([]string, 0, 8)
	header = append(header, st.WeekTitle.Render("#"))
	for _, t := range g.WeekTitleRow {
		header = append(header, st.WeekTitle.Render(t))
	}
	lines = append(lines, strings.Join(header, ""))

	for r, wk := range g.Weeks {
		var cells [8]string
		cells[0] = st.WeekNumber.Render(fmt.Sprint(wk.WeekNumber))
		for i := 1; i < len(cells); i++ {
			cells[i] = st.Day.Render("")
		}
		for _, c := range wk.Days {
			cells[c.DayOfWeek+1] = renderDay(st, c, r == g.CurrentWeekIndex && c.DayOfWeek == g.CurrentDayOfWeek)
		}
		lines = append(lines, strings.Join(cells[:], ""))
	}
	return strings.Join(lines, "\n")
}

func renderDay(st Styles, c model.DayCell, selected bool) string {
	if selected {
		return st.Selected.Render(fmt.Sprintf("[%d]", c.DayOfMonth))
	}
	// Trailing space keeps digits aligned with the bracketed day.
	s := fmt.Sprintf("%d ", c.DayOfMonth)
	if c.DayOfWeek == 0 {
		return st.Sunday.Render(s)
	}
	return st.Day.Render(s)
}
