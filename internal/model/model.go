package model

import (
	"errors"
	"fmt"
	"time"

	"cloudeng.io/datetime"
)

// ErrInvalidDate is matched by every InvalidDateError.
var ErrInvalidDate = errors.New("invalid date")

// InvalidDateError reports a year/month/day triple that is not a Gregorian date.
type InvalidDateError struct {
	Year  int
	Month int
	Day   int
}

func (e InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date: %04d-%02d-%02d", e.Year, e.Month, e.Day)
}

func (e InvalidDateError) Is(target error) bool {
	return target == ErrInvalidDate
}

// CalendarDate is a naive calendar date with no time or location.
type CalendarDate struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Day   int        `json:"day"`
}

// NewCalendarDate validates the triple against the Gregorian calendar.
func NewCalendarDate(year int, month time.Month, day int) (CalendarDate, error) {
	if year < 1 || year > 9999 || month < time.January || month > time.December {
		return CalendarDate{}, InvalidDateError{Year: year, Month: int(month), Day: day}
	}
	if day < 1 || day > int(datetime.DaysInMonth(year, datetime.Month(month))) {
		return CalendarDate{}, InvalidDateError{Year: year, Month: int(month), Day: day}
	}
	return CalendarDate{Year: year, Month: month, Day: day}, nil
}

// DateOf drops the clock and location of t.
func DateOf(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

// Time returns midnight UTC of the date.
func (d CalendarDate) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d CalendarDate) FirstOfMonth() CalendarDate {
	return CalendarDate{Year: d.Year, Month: d.Month, Day: 1}
}

func (d CalendarDate) AddDays(n int) CalendarDate {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// AddMonths moves by whole months, clamping the day to the target month's
// length (Jan 31 + 1 month is Feb 28 or 29).
func (d CalendarDate) AddMonths(n int) CalendarDate {
	first := time.Date(d.Year, d.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	y, m := first.Year(), first.Month()
	return CalendarDate{Year: y, Month: m, Day: clampDay(y, m, d.Day)}
}

func clampDay(y int, m time.Month, d int) int {
	if d < 1 {
		return 1
	}
	max := int(datetime.DaysInMonth(y, datetime.Month(m)))
	if d > max {
		return max
	}
	return d
}

// DayCell is one in-month day placed in its weekday column.
type DayCell struct {
	DayOfWeek  int `json:"dayOfWeek"`
	DayOfMonth int `json:"dayOfMonth"`
}

// WeekRow holds only the days of the month that fall in WeekNumber.
type WeekRow struct {
	WeekNumber int       `json:"weekNumber"`
	Days       []DayCell `json:"days"`
}

// Has reports whether the row contains a day in the given weekday column.
func (r WeekRow) Has(dayOfWeek int) bool {
	for _, c := range r.Days {
		if c.DayOfWeek == dayOfWeek {
			return true
		}
	}
	return false
}

// MonthGrid is the computed layout of one month.
type MonthGrid struct {
	Title            string     `json:"title"`
	Year             int        `json:"year"`
	Month            time.Month `json:"month"`
	Day              int        `json:"day"`
	DaysInMonth      int        `json:"daysInMonth"`
	WeekTitleRow     [7]string  `json:"weekTitleRow"`
	Weeks            []WeekRow  `json:"weeks"`
	CurrentWeekIndex int        `json:"currentWeekIndex"`
	CurrentDayOfWeek int        `json:"currentDayOfWeek"`
}

// Date returns the highlighted date.
func (g MonthGrid) Date() CalendarDate {
	return CalendarDate{Year: g.Year, Month: g.Month, Day: g.Day}
}

func (g MonthGrid) FirstWeek() int {
	if len(g.Weeks) == 0 {
		return 0
	}
	return g.Weeks[0].WeekNumber
}

func (g MonthGrid) LastWeek() int {
	if len(g.Weeks) == 0 {
		return 0
	}
	return g.Weeks[len(g.Weeks)-1].WeekNumber
}
