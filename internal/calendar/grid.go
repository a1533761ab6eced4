package calendar

import (
	"calgrid/internal/model"
)

var gregorianTitles = WeekTitles(Gregorian{})

// Build lays out the month containing day using the Gregorian calendar.
// day must be a valid date; see model.NewCalendarDate.
func Build(day model.CalendarDate) model.MonthGrid {
	return build(Gregorian{}, gregorianTitles, day)
}

// BuildWith lays out the month containing day using cal.
func BuildWith(cal Calendar, day model.CalendarDate) model.MonthGrid {
	return build(cal, WeekTitles(cal), day)
}

func build(cal Calendar, titles [7]string, day model.CalendarDate) model.MonthGrid {
	n := cal.DaysInMonth(day.Year, day.Month)
	g := model.MonthGrid{
		Title:        Title(cal, day.Year, day.Month),
		Year:         day.Year,
		Month:        day.Month,
		Day:          day.Day,
		DaysInMonth:  n,
		WeekTitleRow: titles,
	}

	firstWeek := WeekOfYear(cal, day.FirstOfMonth())
	for i := 1; i <= n; i++ {
		d := model.CalendarDate{Year: day.Year, Month: day.Month, Day: i}
		w := WeekOfYear(cal, d)
		cell := model.DayCell{DayOfWeek: cal.Weekday(d), DayOfMonth: i}
		// Days ascend, so the row for w is either the last one or new.
		if last := len(g.Weeks) - 1; last >= 0 && g.Weeks[last].WeekNumber == w {
			g.Weeks[last].Days = append(g.Weeks[last].Days, cell)
			continue
		}
		g.Weeks = append(g.Weeks, model.WeekRow{WeekNumber: w, Days: []model.DayCell{cell}})
	}

	g.CurrentWeekIndex = WeekOfYear(cal, day) - firstWeek
	g.CurrentDayOfWeek = cal.Weekday(day)
	return g
}

// Locate returns the row index and weekday column of dayOfMonth.
func Locate(g model.MonthGrid, dayOfMonth int) (row, dayOfWeek int, ok bool) {
	for r, wk := range g.Weeks {
		for _, c := range wk.Days {
			if c.DayOfMonth == dayOfMonth {
				return r, c.DayOfWeek, true
			}
		}
	}
	return 0, 0, false
}
