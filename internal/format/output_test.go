package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"calgrid/internal/calendar"
	"calgrid/internal/model"
)

func TestWrite_JSONGrid(t *testing.T) {
	t.Parallel()

	g := calendar.Build(model.CalendarDate{Year: 2014, Month: time.November, Day: 30})
	var buf bytes.Buffer
	if err := Write(&buf, g, "json", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	var back model.MonthGrid
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, buf.String())
	}
	if back.CurrentWeekIndex != 5 || back.Title != "November 2014" || len(back.Weeks) != 6 {
		t.Fatalf("unexpected grid: %+v", back)
	}
	if !strings.Contains(buf.String(), `"weekNumber":44`) {
		t.Fatalf("expected weekNumber key in output:\n%s", buf.String())
	}
}

func TestWrite_EDN(t *testing.T) {
	t.Parallel()

	v := map[string]any{
		"weekNumber": 44,
		"days":       []model.DayCell{{DayOfWeek: 6, DayOfMonth: 1}},
		"title":      "November 2014",
		"ok":         true,
		"none":       nil,
	}
	var buf bytes.Buffer
	if err := Write(&buf, v, "edn", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := `{:days [{:day-of-month 1 :day-of-week 6}] :none nil :ok true :title "November 2014" :week-number 44}` + "\n"
	if got := buf.String(); got != want {
		t.Fatalf("edn:\n got: %s\nwant: %s", got, want)
	}
}

func TestWrite_EDNPretty(t *testing.T) {
	t.Parallel()

	v := map[string]any{"a": []int{1, 2}, "b": map[string]any{"c": "d"}}
	var buf bytes.Buffer
	if err := WriteEDN(&buf, v, true); err != nil {
		t.Fatalf("WriteEDN: %v", err)
	}
	want := "{:a [1 2]\n  :b {:c \"d\"}}\n"
	if got := buf.String(); got != want {
		t.Fatalf("edn pretty:\n got: %q\nwant: %q", got, want)
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	t.Parallel()

	err := Write(&bytes.Buffer{}, 1, "xml", false)
	if err == nil || !strings.Contains(err.Error(), "unknown format: xml") {
		t.Fatalf("expected unknown format error; got %v", err)
	}
}

func TestEDNKeyword(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]string{
		"currentWeekIndex": "current-week-index",
		"title":            "title",
		"week title":       "week-title",
	} {
		if got := ednKeyword(in); got != want {
			t.Errorf("ednKeyword(%q): got %q want %q", in, got, want)
		}
	}
}
