package term

import (
	"os"

	xterm "golang.org/x/term"

	"github.com/dshills/termgrid/style"
)

// Profile is an immutable snapshot of a terminal's color capability.
// It is captured once at backend startup and threaded explicitly into
// rendering; it is never re-polled mid-render. Refresh produces a new
// snapshot for discrete reconnect events.
type Profile struct {
	depth ColorDepth
}

// NewProfile creates a profile with a known depth.
func NewProfile(depth ColorDepth) Profile {
	return Profile{depth: depth}
}

// DetectProfile captures a profile from an injected environment lookup.
func DetectProfile(lookup LookupFunc) Profile {
	return Profile{depth: DetectColorDepth(lookup)}
}

// DetectProfileFromOS captures a profile from the process environment.
// When stdout is not a terminal, color is disabled regardless of what
// the environment advertises.
func DetectProfileFromOS() Profile {
	if !xterm.IsTerminal(int(os.Stdout.Fd())) {
		return Profile{depth: NoColor}
	}
	return DetectProfile(os.LookupEnv)
}

// Depth returns the snapshot's color depth.
func (p Profile) Depth() ColorDepth {
	return p.depth
}

// Resolve downgrades a color to this profile's depth.
func (p Profile) Resolve(c style.Color) ResolvedColor {
	return Resolve(p.depth, c)
}

// Refresh returns a new snapshot re-detected from the lookup. The
// receiver is unchanged; callers swap snapshots between render passes.
func (p Profile) Refresh(lookup LookupFunc) Profile {
	return DetectProfile(lookup)
}
