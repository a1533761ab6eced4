package cli

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"calgrid/internal/model"
)

var (
	reDotted   = regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})\.(\d{4})$`)
	reDateOnly = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
)

// LooksLikeDate reports whether s has the shape of a DATE argument. It does
// not check that the date exists.
func LooksLikeDate(s string) bool {
	s = strings.TrimSpace(s)
	return strings.EqualFold(s, "today") || reDotted.MatchString(s) || reDateOnly.MatchString(s)
}

// parseDate parses:
// - dd.MM.yyyy (day first, 1 or 2 digit day and month)
// - YYYY-MM-DD
// - today (the calendar date of now, in now's location)
func parseDate(s string, now time.Time) (model.CalendarDate, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "today") {
		return model.DateOf(now), nil
	}

	var y, m, d string
	if g := reDotted.FindStringSubmatch(s); g != nil {
		d, m, y = g[1], g[2], g[3]
	} else if g := reDateOnly.FindStringSubmatch(s); g != nil {
		y, m, d = g[1], g[2], g[3]
	} else {
		return model.CalendarDate{}, dateSyntaxError{input: s}
	}

	// The regexps only admit digits, so Atoi cannot fail.
	year, _ := strconv.Atoi(y)
	month, _ := strconv.Atoi(m)
	day, _ := strconv.Atoi(d)
	cd, err := model.NewCalendarDate(year, time.Month(month), day)
	if err != nil {
		return model.CalendarDate{}, fmt.Errorf("%q: %w", s, err)
	}
	return cd, nil
}
