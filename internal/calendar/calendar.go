// Package calendar arranges the days of a month into week-of-year rows.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"calgrid/internal/model"

	"cloudeng.io/datetime"
)

// Calendar is the date facility the grid is computed with.
type Calendar interface {
	// Weekday returns 0 (Sunday) through 6 (Saturday).
	Weekday(d model.CalendarDate) int
	// YearDay returns 1 for January 1st.
	YearDay(d model.CalendarDate) int
	DaysInMonth(year int, month time.Month) int
	MonthName(month time.Month) string
	// WeekdayAbbrev returns the short upper-case name of weekday 0-6.
	WeekdayAbbrev(weekday int) string
}

// Gregorian is the proleptic Gregorian calendar with English names.
type Gregorian struct{}

// referenceSunday is the start of the week the weekday titles are taken from.
var referenceSunday = time.Date(2006, time.January, 1, 0, 0, 0, 0, time.UTC)

func (Gregorian) Weekday(d model.CalendarDate) int {
	return int(d.Time().Weekday())
}

func (Gregorian) YearDay(d model.CalendarDate) int {
	return d.Time().YearDay()
}

func (Gregorian) DaysInMonth(year int, month time.Month) int {
	return int(datetime.DaysInMonth(year, datetime.Month(month)))
}

func (Gregorian) MonthName(month time.Month) string {
	return month.String()
}

func (Gregorian) WeekdayAbbrev(weekday int) string {
	return strings.ToUpper(referenceSunday.AddDate(0, 0, weekday).Format("Mon"))
}

// WeekOfYear numbers weeks from January 1st: week 1 runs from Jan 1 to the
// first Saturday, and every Sunday after that starts a new week. This is not
// ISO-8601 and grid indexes depend on it being used for every date.
func WeekOfYear(cal Calendar, d model.CalendarDate) int {
	jan1 := model.CalendarDate{Year: d.Year, Month: time.January, Day: 1}
	return (cal.YearDay(d)+cal.Weekday(jan1)-1)/7 + 1
}

// Title formats "November 2014".
func Title(cal Calendar, year int, month time.Month) string {
	return fmt.Sprintf("%s %04d", cal.MonthName(month), year)
}

// WeekTitles returns the weekday abbreviations, Sunday first.
func WeekTitles(cal Calendar) [7]string {
	var out [7]string
	for i := range out {
		out[i] = cal.WeekdayAbbrev(i)
	}
	return out
}
