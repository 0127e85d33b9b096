package cell

import (
	"testing"

	"github.com/dshills/termgrid/style"
)

func TestEmptyCell(t *testing.T) {
	c := Empty()
	if c.Rune != ' ' {
		t.Errorf("empty cell rune should be space, got %q", c.Rune)
	}
	if c.Width != 1 {
		t.Errorf("empty cell width should be 1, got %d", c.Width)
	}
	if !c.Style.IsDefault() {
		t.Error("empty cell should have default style")
	}
}

func TestNewCell(t *testing.T) {
	c := New('A')
	if c.Rune != 'A' || c.Width != 1 {
		t.Errorf("New('A') = %+v, want rune 'A' width 1", c)
	}

	wide := New('漢')
	if wide.Width != 2 {
		t.Errorf("New('漢') width = %d, want 2", wide.Width)
	}
}

func TestContinuationCell(t *testing.T) {
	cont := Continuation()
	if !cont.IsContinuation() {
		t.Error("continuation cell should report IsContinuation")
	}
	if New('A').IsContinuation() {
		t.Error("normal cell should not be a continuation")
	}
}

func TestCellEquals(t *testing.T) {
	red := style.New(style.Named("red"))
	blue := style.New(style.Named("blue"))

	c1 := NewStyled('A', red)
	c2 := NewStyled('A', red)
	c3 := NewStyled('A', blue)
	c4 := NewStyled('B', red)

	if !c1.Equals(c2) {
		t.Error("identical cells should be equal")
	}
	if c1.Equals(c3) {
		t.Error("cells with different styles should not be equal")
	}
	if c1.Equals(c4) {
		t.Error("cells with different runes should not be equal")
	}
}

func TestFromString(t *testing.T) {
	cells := FromString("A漢B", style.Default())

	// A, 漢, continuation, B
	if len(cells) != 4 {
		t.Fatalf("expected 4 cells, got %d", len(cells))
	}
	if cells[0].Rune != 'A' || cells[1].Rune != '漢' || cells[3].Rune != 'B' {
		t.Errorf("unexpected cell runes: %+v", cells)
	}
	if !cells[2].IsContinuation() {
		t.Error("cell after wide rune should be a continuation")
	}
}

func TestFromStringSkipsZeroWidth(t *testing.T) {
	cells := FromString("a\tb", style.Default())
	if len(cells) != 2 {
		t.Fatalf("control characters should not produce cells, got %d", len(cells))
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, s := range []string{"", "hello", "A漢B", "漢字"} {
		cells := FromString(s, style.Default())
		if got := String(cells); got != s {
			t.Errorf("String(FromString(%q)) = %q", s, got)
		}
	}
}
