// Command termgrid-demo shapes a small responsive layout for the
// current terminal and prints the resulting character grid, along
// with the detected color profile and the per-slot allocations.
package main

import (
	"fmt"
	"os"
	"strings"

	xterm "golang.org/x/term"

	"github.com/dshills/termgrid/layout"
	"github.com/dshills/termgrid/segment"
	"github.com/dshills/termgrid/style"
	"github.com/dshills/termgrid/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "termgrid-demo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	width := 80
	if w, _, err := xterm.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}

	profile := term.DetectProfileFromOS()
	fmt.Printf("terminal: %d cells wide, %s\n\n", width, profile.Depth())

	sidebar := segment.Content{
		segment.NewStyledText("navigation", style.New(style.Named("bright_cyan")).Bold()),
		segment.NewBreak(),
		segment.NewText("files"),
		segment.NewBreak(),
		segment.NewText("search"),
	}
	body := segment.Content{
		segment.NewStyledText("termgrid", style.New(style.Hex("#7C3AED")).Bold()),
		segment.NewText(" shapes styled content into exact rectangular grids."),
		segment.NewBreak(),
		segment.NewText("Wide glyphs such as 漢字 are never split across a boundary."),
	}
	status := segment.Content{
		segment.NewStyledText("ready", style.New(style.Named("green"))),
	}

	breakpoints := []layout.Breakpoint{
		{Threshold: 0, Slots: []layout.Slot{
			{Size: layout.Fr(1), Content: body},
		}},
		{Threshold: 60, Slots: []layout.Slot{
			{Size: layout.MinMax(12, 20, layout.Auto()), Content: sidebar},
			{Size: layout.Fr(2), Content: body},
			{Size: layout.Auto(), Content: status, Visibility: layout.HideBelow(72)},
		}},
	}

	slots, err := layout.Responsive(breakpoints, width)
	if err != nil {
		return err
	}
	widths := layout.Allocate(width, slots)
	fmt.Printf("allocations: %v\n\n", widths)

	const height = 4
	columns := make([][]segment.Line, len(slots))
	for i, slot := range slots {
		content, _ := slot.Content.(segment.Content)
		columns[i] = segment.SetShape(widths[i], height, content)
	}

	for row := 0; row < height; row++ {
		var sb strings.Builder
		for i := range columns {
			if widths[i] == 0 {
				continue
			}
			for _, seg := range columns[i][row] {
				if seg.IsText() {
					sb.WriteString(seg.Text)
				}
			}
		}
		fmt.Println(sb.String())
	}

	for _, c := range []style.Color{style.Named("red"), style.Hex("#22C55E"), style.RGB(59, 142, 234)} {
		fmt.Printf("%-12s -> %s\n", c, profile.Resolve(c))
	}
	return nil
}
