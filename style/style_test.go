package style

import "testing"

func TestAttributeOps(t *testing.T) {
	a := AttrNone.With(AttrBold).With(AttrItalic)
	if !a.Has(AttrBold) || !a.Has(AttrItalic) {
		t.Error("With should add attributes")
	}
	if a.Has(AttrUnderline) {
		t.Error("unset attribute should not be present")
	}
	if a.Without(AttrBold).Has(AttrBold) {
		t.Error("Without should remove the attribute")
	}
}

func TestDefaultStyle(t *testing.T) {
	s := Default()
	if !s.IsDefault() {
		t.Error("Default() should be the default style")
	}
	if !s.Foreground.IsDefault() || !s.Background.IsDefault() {
		t.Error("default style colors should be default")
	}
}

func TestMergeExplicitWins(t *testing.T) {
	base := New(Named("red")).WithBackground(Named("blue"))

	// The overlay's explicit foreground wins over the base's.
	merged := base.Merge(New(Named("green")))
	if !merged.Foreground.Equals(Named("green")) {
		t.Errorf("explicit overlay foreground should win, got %v", merged.Foreground)
	}
	// The overlay left background unset, so it inherits.
	if !merged.Background.Equals(Named("blue")) {
		t.Errorf("unset overlay background should inherit, got %v", merged.Background)
	}
}

func TestMergeAttributesCombine(t *testing.T) {
	merged := Default().Bold().Merge(Default().Italic())
	if !merged.Attributes.Has(AttrBold) || !merged.Attributes.Has(AttrItalic) {
		t.Error("merge should combine attributes from both styles")
	}
}

func TestMergeWithDefaultIsIdentity(t *testing.T) {
	s := New(RGB(1, 2, 3)).WithBackground(ANSI(7)).Bold()
	if !s.Merge(Default()).Equals(s) {
		t.Error("merging the default style should change nothing")
	}
}

func TestInvert(t *testing.T) {
	s := New(Named("red")).WithBackground(Named("blue"))
	inv := s.Invert()
	if !inv.Foreground.Equals(Named("blue")) || !inv.Background.Equals(Named("red")) {
		t.Errorf("Invert should swap colors, got %+v", inv)
	}
}

func TestStyleBuilders(t *testing.T) {
	s := Default().Bold().Dim().Italic().Underline().Reverse().Strikethrough()
	for _, attr := range []Attribute{AttrBold, AttrDim, AttrItalic, AttrUnderline, AttrReverse, AttrStrikethrough} {
		if !s.Attributes.Has(attr) {
			t.Errorf("builder chain missing attribute %v", attr)
		}
	}

	// Builders return copies; the receiver is untouched.
	base := Default()
	_ = base.Bold()
	if !base.IsDefault() {
		t.Error("builder should not mutate the receiver")
	}
}
