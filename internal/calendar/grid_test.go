package calendar

import (
	"reflect"
	"testing"
	"time"

	"calgrid/internal/model"
)

func date(y int, m time.Month, d int) model.CalendarDate {
	return model.CalendarDate{Year: y, Month: m, Day: d}
}

func TestBuild_November2014LastDay(t *testing.T) {
	t.Parallel()

	g := Build(date(2014, time.November, 30))

	if g.Title != "November 2014" {
		t.Fatalf("title: got %q", g.Title)
	}
	if g.CurrentDayOfWeek != 0 {
		t.Fatalf("expected Sunday (0); got %d", g.CurrentDayOfWeek)
	}
	if g.CurrentWeekIndex != 5 {
		t.Fatalf("expected current week index 5; got %d", g.CurrentWeekIndex)
	}
	if len(g.Weeks) != 6 {
		t.Fatalf("expected 6 rows; got %d", len(g.Weeks))
	}
	last := g.Weeks[len(g.Weeks)-1]
	if last.Days[0] != (model.DayCell{DayOfWeek: 0, DayOfMonth: 30}) {
		t.Fatalf("expected day 30 to open the last row; got %+v", last.Days)
	}
	if g.CurrentWeekIndex != len(g.Weeks)-1 {
		t.Fatalf("expected the current row to be the last row")
	}
	first := g.Weeks[0]
	if want := []model.DayCell{{DayOfWeek: 6, DayOfMonth: 1}}; !reflect.DeepEqual(first.Days, want) {
		t.Fatalf("first row: got %+v want %+v", first.Days, want)
	}
}

func TestBuild_November2014FirstDay(t *testing.T) {
	t.Parallel()

	g := Build(date(2014, time.November, 1))

	if got, want := g.Weeks[0].WeekNumber, WeekOfYear(Gregorian{}, date(2014, time.November, 1)); got != want {
		t.Fatalf("first week number: got %d want %d", got, want)
	}
	if g.Weeks[0].WeekNumber != 44 {
		t.Fatalf("expected first week 44; got %d", g.Weeks[0].WeekNumber)
	}
	if len(g.Weeks[0].Days) != 1 || g.Weeks[0].Days[0].DayOfWeek != 6 || g.Weeks[0].Days[0].DayOfMonth != 1 {
		t.Fatalf("expected a single Saturday cell for day 1; got %+v", g.Weeks[0].Days)
	}
	if g.CurrentWeekIndex != 0 || g.CurrentDayOfWeek != 6 {
		t.Fatalf("current: got row=%d dow=%d", g.CurrentWeekIndex, g.CurrentDayOfWeek)
	}
	var nums []int
	for _, w := range g.Weeks {
		nums = append(nums, w.WeekNumber)
	}
	if want := []int{44, 45, 46, 47, 48, 49}; !reflect.DeepEqual(nums, want) {
		t.Fatalf("week numbers: got %v want %v", nums, want)
	}
}

func TestBuild_LeapFebruary(t *testing.T) {
	t.Parallel()

	g := Build(date(2016, time.February, 29))
	if g.DaysInMonth != 29 {
		t.Fatalf("expected 29 days; got %d", g.DaysInMonth)
	}
	seen := map[int]int{}
	for _, w := range g.Weeks {
		for _, c := range w.Days {
			seen[c.DayOfMonth]++
		}
	}
	for d := 1; d <= 29; d++ {
		if seen[d] != 1 {
			t.Fatalf("day %d seen %d times", d, seen[d])
		}
	}
	if len(seen) != 29 {
		t.Fatalf("expected exactly 29 days; got %d", len(seen))
	}
	// 2016-02-29 is a Monday.
	if g.CurrentDayOfWeek != 1 {
		t.Fatalf("expected Monday; got %d", g.CurrentDayOfWeek)
	}
}

func TestBuild_WeekTitles(t *testing.T) {
	t.Parallel()

	want := [7]string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}
	for _, d := range []model.CalendarDate{
		date(2014, time.November, 30),
		date(1999, time.December, 31),
		date(2024, time.July, 4),
	} {
		if got := Build(d).WeekTitleRow; got != want {
			t.Fatalf("%s: got %v want %v", d, got, want)
		}
	}
}

func TestBuild_Idempotent(t *testing.T) {
	t.Parallel()

	d := date(2020, time.March, 15)
	a, b := Build(d), Build(d)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected identical grids:\n%+v\n%+v", a, b)
	}
}

func TestBuild_DecemberWeek53(t *testing.T) {
	t.Parallel()

	g := Build(date(2015, time.December, 31))
	if got := g.LastWeek(); got != 53 {
		t.Fatalf("expected last week 53; got %d", got)
	}
	if got := g.FirstWeek(); got != 49 {
		t.Fatalf("expected first week 49; got %d", got)
	}
	if g.CurrentWeekIndex != 4 {
		t.Fatalf("expected current week index 4; got %d", g.CurrentWeekIndex)
	}
}

func TestBuild_JanuaryStartingSunday(t *testing.T) {
	t.Parallel()

	g := Build(date(2017, time.January, 1))
	if g.Weeks[0].WeekNumber != 1 || len(g.Weeks[0].Days) != 7 {
		t.Fatalf("expected a full first week 1; got %+v", g.Weeks[0])
	}
}

// Every month from 1900 through 2100, highlighting every day.
func TestBuild_InvariantsAllMonths(t *testing.T) {
	t.Parallel()

	cal := Gregorian{}
	for y := 1900; y <= 2100; y++ {
		for m := time.January; m <= time.December; m++ {
			n := cal.DaysInMonth(y, m)
			if want := time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day(); n != want {
				t.Fatalf("%d-%02d: days in month %d want %d", y, m, n, want)
			}
			for d := 1; d <= n; d++ {
				day := date(y, m, d)
				g := Build(day)
				checkInvariants(t, cal, day, g)
			}
		}
	}
}

func checkInvariants(t *testing.T, cal Calendar, day model.CalendarDate, g model.MonthGrid) {
	t.Helper()

	if len(g.Weeks) == 0 {
		t.Fatalf("%s: no rows", day)
	}
	seen := make([]int, g.DaysInMonth+1)
	for i, w := range g.Weeks {
		if i > 0 && w.WeekNumber != g.Weeks[i-1].WeekNumber+1 {
			t.Fatalf("%s: week numbers not consecutive at row %d: %d after %d", day, i, w.WeekNumber, g.Weeks[i-1].WeekNumber)
		}
		if len(w.Days) == 0 || len(w.Days) > 7 {
			t.Fatalf("%s: row %d has %d days", day, i, len(w.Days))
		}
		for j, c := range w.Days {
			if j > 0 && c.DayOfWeek <= w.Days[j-1].DayOfWeek {
				t.Fatalf("%s: row %d weekdays not ascending: %+v", day, i, w.Days)
			}
			if c.DayOfMonth < 1 || c.DayOfMonth > g.DaysInMonth {
				t.Fatalf("%s: day out of range: %d", day, c.DayOfMonth)
			}
			seen[c.DayOfMonth]++
			if dow := cal.Weekday(date(day.Year, day.Month, c.DayOfMonth)); dow != c.DayOfWeek {
				t.Fatalf("%s: day %d in column %d, want %d", day, c.DayOfMonth, c.DayOfWeek, dow)
			}
		}
	}
	for d := 1; d <= g.DaysInMonth; d++ {
		if seen[d] != 1 {
			t.Fatalf("%s: day %d appears %d times", day, d, seen[d])
		}
	}
	if g.CurrentWeekIndex < 0 || g.CurrentWeekIndex >= len(g.Weeks) {
		t.Fatalf("%s: current week index %d out of range (%d rows)", day, g.CurrentWeekIndex, len(g.Weeks))
	}
	if g.CurrentDayOfWeek != cal.Weekday(day) {
		t.Fatalf("%s: current weekday %d", day, g.CurrentDayOfWeek)
	}
	row, dow, ok := Locate(g, day.Day)
	if !ok || row != g.CurrentWeekIndex || dow != g.CurrentDayOfWeek {
		t.Fatalf("%s: located (%d,%d,%v), grid says (%d,%d)", day, row, dow, ok, g.CurrentWeekIndex, g.CurrentDayOfWeek)
	}
	if !g.Weeks[g.CurrentWeekIndex].Has(g.CurrentDayOfWeek) {
		t.Fatalf("%s: current row lacks current weekday", day)
	}
}
