package tui

import (
	"fmt"

	"calgrid/internal/calendar"
	"calgrid/internal/model"
	"calgrid/internal/term"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// monthModel browses one month at a time; the grid is rebuilt on every move.
type monthModel struct {
	date  model.CalendarDate
	grid  model.MonthGrid
	today func() model.CalendarDate

	keys   keyMap
	help   help.Model
	styles term.Styles

	width    int
	height   int
	quitting bool
}

func newMonthModel(d model.CalendarDate, today func() model.CalendarDate) monthModel {
	m := monthModel{
		today:  today,
		keys:   defaultKeyMap(),
		help:   help.New(),
		styles: term.DefaultStyles(),
	}
	m.setDate(d)
	return m
}

func (m *monthModel) setDate(d model.CalendarDate) {
	m.date = d
	m.grid = calendar.Build(d)
}

func (m monthModel) Init() tea.Cmd { return nil }

func (m monthModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m monthModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.PrevDay):
		m.move(m.date.AddDays(-1))
	case key.Matches(msg, m.keys.NextDay):
		m.move(m.date.AddDays(1))
	case key.Matches(msg, m.keys.PrevWeek):
		m.move(m.date.AddDays(-7))
	case key.Matches(msg, m.keys.NextWeek):
		m.move(m.date.AddDays(7))
	case key.Matches(msg, m.keys.PrevMonth):
		m.move(m.date.AddMonths(-1))
	case key.Matches(msg, m.keys.NextMonth):
		m.move(m.date.AddMonths(1))
	case key.Matches(msg, m.keys.PrevYear):
		m.move(m.date.AddMonths(-12))
	case key.Matches(msg, m.keys.NextYear):
		m.move(m.date.AddMonths(12))
	case key.Matches(msg, m.keys.Today):
		if m.today != nil {
			m.setDate(m.today())
		}
	}
	return m, nil
}

// move goes to d unless d is outside the years a CalendarDate can hold.
func (m *monthModel) move(d model.CalendarDate) {
	if _, err := model.NewCalendarDate(d.Year, d.Month, d.Day); err != nil {
		return
	}
	m.setDate(d)
}

func (m monthModel) statusLine() string {
	wk := m.grid.Weeks[m.grid.CurrentWeekIndex].WeekNumber
	s := fmt.Sprintf("%s  %s  week %d", m.date, m.grid.WeekTitleRow[m.grid.CurrentDayOfWeek], wk)
	if m.width > 0 {
		s = ansi.Truncate(s, m.width, "…")
	}
	return term.MutedStyle().Render(s)
}

func (m monthModel) View() string {
	if m.quitting {
		return ""
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		term.Render(m.grid, m.styles),
		"",
		m.statusLine(),
		m.help.View(m.keys),
	)
	if m.width <= 0 || m.height <= 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}
