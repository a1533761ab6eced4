package term

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// The grid must stay readable on light and dark backgrounds, so every color
// is an AdaptiveColor.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorTitle      = ac("#696969", "#a9a9a9") // gray
	colorDay        = ac("#505050", "#d3d3d3")
	colorSunday     = ac("#cd5c5c", "#f08080") // light coral
	colorWeekNumber = ac("#1e90ff", "#1e90ff") // dodger blue
	colorSelectedBg = ac("#b0e0e6", "#5f9ea0") // powder blue / cadet blue
	colorSelectedFg = ac("#1c1c1c", "#ffffff")
	colorMuted      = ac("240", "243")
)

// ApplyColorProfile picks the Lip Gloss color profile.
//
// NO_COLOR disables styling. Otherwise termenv's guess is upgraded when
// TERM/COLORTERM advertise more than the detector reported.
func ApplyColorProfile() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") && profile < termenv.ANSI256 {
		profile = termenv.ANSI256
	}
	lipgloss.SetColorProfile(profile)
}

// ApplyTheme configures background detection for AdaptiveColor.
//
// Priority:
// 1) theme argument (light|dark); "auto" or "" falls through
// 2) COLORFGBG heuristic ("fg;bg", last segment is the background)
// 3) Lip Gloss's own detection
func ApplyTheme(theme string) {
	switch strings.ToLower(strings.TrimSpace(theme)) {
	case "light":
		lipgloss.SetHasDarkBackground(false)
		return
	case "dark":
		lipgloss.SetHasDarkBackground(true)
		return
	}
	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			lipgloss.SetHasDarkBackground(bg < 7)
		}
	}
}
