// ABOUTME: Icon system with Nerd Font detection and Unicode fallback
// ABOUTME: Provides consistent iconography for results, diagrams, and the editor

package icons

import (
	"os"
	"strings"
	"sync"
)

var (
	useNerdFonts     bool
	nerdFontDetected sync.Once
)

// nerdFontTerminals commonly ship with a Nerd Font configured
var nerdFontTerminals = []string{"iTerm.app", "alacritty", "WezTerm", "kitty", "ghostty"}

// detectNerdFonts checks if Nerd Fonts should be used
func detectNerdFonts() bool {
	// Explicit override via environment variable
	if env := os.Getenv("LEDWALL_NERD_FONTS"); env != "" {
		return env == "1" || strings.EqualFold(env, "true")
	}

	term := os.Getenv("TERM")
	termProgram := os.Getenv("TERM_PROGRAM")
	for _, t := range nerdFontTerminals {
		if strings.Contains(termProgram, t) || strings.Contains(term, strings.ToLower(t)) {
			return true
		}
	}

	return os.Getenv("NERD_FONTS") == "1"
}

// HasNerdFonts returns true if Nerd Fonts are available
func HasNerdFonts() bool {
	nerdFontDetected.Do(func() {
		useNerdFonts = detectNerdFonts()
	})
	return useNerdFonts
}

// Icon represents an icon with Nerd Font and Unicode fallback variants
type Icon struct {
	NerdFont string
	Fallback string
}

// String returns the appropriate icon based on font availability
func (i Icon) String() string {
	if HasNerdFonts() {
		return i.NerdFont
	}
	return i.Fallback
}

// Icon definitions - Nerd Font codepoints with Unicode fallbacks
var (
	// Result sections
	Resolution = Icon{"󰍹", "▦"} // nf-md-monitor
	Power      = Icon{"󱐋", "ϟ"} // nf-md-lightning_bolt
	Breaker    = Icon{"󰚥", "⏻"} // nf-md-power_plug
	Processor  = Icon{"󰘚", "▣"} // nf-md-chip
	Port       = Icon{"󰈀", "⇄"} // nf-md-ethernet
	Size       = Icon{"󰝤", "↔"} // nf-md-ruler
	Price      = Icon{"󰄔", "$"} // nf-md-cash

	// Status indicators
	CheckOK  = Icon{"", "✓"} // nf-oct-check_circle
	Warning  = Icon{"", "⚠"} // nf-oct-alert
	Critical = Icon{"", "✗"} // nf-oct-x_circle
	Info     = Icon{"", "ℹ"} // nf-oct-info

	// Diagram
	Start  = Icon{"󰐊", "▶"} // nf-md-play
	Cursor = Icon{"󰆿", "◎"} // nf-md-crosshairs

	// Application
	App = Icon{"󰹑", "◈"} // nf-md-television
)
