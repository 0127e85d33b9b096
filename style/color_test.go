package style

import "testing"

func TestDefaultColor(t *testing.T) {
	c := DefaultColor()
	if !c.IsDefault() {
		t.Error("DefaultColor should report IsDefault")
	}
	var zero Color
	if !zero.Equals(c) {
		t.Error("zero value Color should equal DefaultColor")
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b uint8
	}{
		{"#FF0000", 255, 0, 0},
		{"#00ff00", 0, 255, 0},
		{"0000FF", 0, 0, 255},
		{"#7C3AED", 124, 58, 237},
		{"#fff", 255, 255, 255},
		{"#f00", 255, 0, 0},
	}

	for _, tt := range tests {
		c, err := ParseHex(tt.in)
		if err != nil {
			t.Errorf("ParseHex(%q) returned error: %v", tt.in, err)
			continue
		}
		r, g, b := c.Values()
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("ParseHex(%q) = (%d,%d,%d), want (%d,%d,%d)",
				tt.in, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}

func TestParseHexInvalid(t *testing.T) {
	for _, in := range []string{"", "#12345", "#GGHHII", "nonsense", "#12"} {
		if _, err := ParseHex(in); err == nil {
			t.Errorf("ParseHex(%q) should fail", in)
		}
	}
}

func TestHexDegradesToDefault(t *testing.T) {
	if c := Hex("not a color"); !c.IsDefault() {
		t.Errorf("Hex on malformed input should yield the default color, got %v", c)
	}
	if c := Hex("#FF0000"); c.IsDefault() {
		t.Error("Hex on valid input should not be default")
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"red", "red"},
		{"Bright Red", "bright_red"},
		{"BRIGHT-CYAN", "bright_cyan"},
		{"  blue  ", "blue"},
	}
	for _, tt := range tests {
		if got := NormalizeName(tt.in); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestColorEquals(t *testing.T) {
	if !Named("red").Equals(Named("RED")) {
		t.Error("named colors should compare by normalized name")
	}
	if Named("red").Equals(Named("blue")) {
		t.Error("different names should not be equal")
	}
	if !ANSI(42).Equals(ANSI(42)) {
		t.Error("equal indices should be equal")
	}
	if RGB(1, 2, 3).Equals(ANSI(1)) {
		t.Error("different kinds should not be equal")
	}
}

func TestBlend(t *testing.T) {
	mid := RGB(0, 0, 0).Blend(RGB(255, 255, 255), 0.5)
	r, g, b := mid.Values()
	if r < 120 || r > 135 || g != r || b != r {
		t.Errorf("midpoint blend = (%d,%d,%d), want a mid gray", r, g, b)
	}

	// Non-RGB operands snap to the nearer side.
	if got := Named("red").Blend(RGB(0, 0, 0), 0.4); !got.Equals(Named("red")) {
		t.Errorf("blend with non-RGB at 0.4 should keep receiver, got %v", got)
	}
	if got := Named("red").Blend(RGB(0, 0, 0), 0.9); !got.Equals(RGB(0, 0, 0)) {
		t.Errorf("blend with non-RGB at 0.9 should take other, got %v", got)
	}
}

func TestLightenDarken(t *testing.T) {
	base := RGB(100, 100, 100)

	lr, _, _ := base.Lighten(0.5).Values()
	if lr <= 100 {
		t.Errorf("Lighten should raise channels, got %d", lr)
	}
	dr, _, _ := base.Darken(0.5).Values()
	if dr >= 100 {
		t.Errorf("Darken should lower channels, got %d", dr)
	}

	// Non-RGB colors pass through unchanged.
	if got := ANSI(3).Lighten(0.5); !got.Equals(ANSI(3)) {
		t.Errorf("Lighten of indexed color should be unchanged, got %v", got)
	}
}
