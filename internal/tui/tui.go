// Package tui is the interactive month browser.
package tui

import (
	"calgrid/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

// Run browses the month of d until the user quits. today is called for the
// "jump to today" key.
func Run(d model.CalendarDate, today func() model.CalendarDate) error {
	_, err := tea.NewProgram(newMonthModel(d, today), tea.WithAltScreen()).Run()
	return err
}
