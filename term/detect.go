package term

import "strings"

// LookupFunc looks up an environment key, reporting whether it was set.
// It is the only channel through which detection sees the outside world.
type LookupFunc func(key string) (string, bool)

// Environment variables of terminal emulators known to support true
// color without advertising it through COLORTERM.
var truecolorMarkers = []string{
	"WT_SESSION",       // Windows Terminal
	"ITERM_SESSION_ID", // iTerm2
	"KITTY_WINDOW_ID",  // Kitty
	"KONSOLE_VERSION",  // Konsole
	"VTE_VERSION",      // VTE-based (GNOME Terminal, Tilix, ...)
}

// TERM_PROGRAM values known to support true color.
var truecolorPrograms = map[string]bool{
	"iterm.app": true,
	"wezterm":   true,
	"ghostty":   true,
	"vscode":    true,
}

// DetectColorDepth determines the terminal's color depth from an
// injected environment lookup. Precedence is deterministic:
//
//  1. NO_COLOR set disables color unconditionally.
//  2. COLORTERM advertising truecolor/24bit wins next.
//  3. TERM=dumb disables color; TERM mentioning 256color or truecolor
//     selects that depth.
//  4. Emulators known to support true color are trusted.
//  5. Everything else gets a conservative 16-color default.
func DetectColorDepth(lookup LookupFunc) ColorDepth {
	if lookup == nil {
		return Standard
	}

	if _, ok := lookup("NO_COLOR"); ok {
		return NoColor
	}

	if v, ok := lookup("COLORTERM"); ok {
		switch strings.ToLower(v) {
		case "truecolor", "24bit":
			return TrueColor
		}
	}

	termName := ""
	if v, ok := lookup("TERM"); ok {
		termName = strings.ToLower(v)
	}
	switch {
	case termName == "dumb":
		return NoColor
	case strings.Contains(termName, "truecolor"):
		return TrueColor
	case strings.Contains(termName, "256color"):
		return EightBit
	case termName == "linux" || strings.HasSuffix(termName, "-color"):
		return Basic
	}

	for _, key := range truecolorMarkers {
		if v, ok := lookup(key); ok && v != "" {
			return TrueColor
		}
	}
	if v, ok := lookup("TERM_PROGRAM"); ok && truecolorPrograms[strings.ToLower(v)] {
		return TrueColor
	}

	return Standard
}
