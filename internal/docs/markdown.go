package docs

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

var (
	rendererMu sync.Mutex
	// Renderers keyed by style and wrap width. WithAutoStyle is avoided since
	// it can block on terminal background queries.
	renderers = map[string]*glamour.TermRenderer{}
)

// Style picks the glamour standard style for a theme (light|dark|auto).
// "auto" follows dark unless the caller knows better.
func Style(theme string, darkBackground bool) string {
	switch strings.ToLower(strings.TrimSpace(theme)) {
	case "light":
		return "light"
	case "dark":
		return "dark"
	case "notty", "ascii":
		return "notty"
	}
	if darkBackground {
		return "dark"
	}
	return "light"
}

// Render renders markdown for the terminal. On renderer errors the markdown
// is returned unchanged.
func Render(md, style string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 20 {
		width = 20
	}

	key := style + ":" + strconv.Itoa(width)
	rendererMu.Lock()
	defer rendererMu.Unlock()

	r := renderers[key]
	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		renderers[key] = rr
		r = rr
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
