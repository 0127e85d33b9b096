package measure

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   Measurement
		want Measurement
	}{
		{Measurement{3, 7}, Measurement{3, 7}},
		{Measurement{-2, 5}, Measurement{0, 5}},
		{Measurement{-4, -1}, Measurement{0, 0}},
		{Measurement{9, 4}, Measurement{4, 4}},
		{Measurement{0, 0}, Measurement{0, 0}},
	}

	for _, tt := range tests {
		got := tt.in.Normalize()
		if got != tt.want {
			t.Errorf("Normalize(%+v) = %+v, want %+v", tt.in, got, tt.want)
		}
		if got.Minimum < 0 || got.Minimum > got.Maximum {
			t.Errorf("Normalize(%+v) violated 0 <= min <= max: %+v", tt.in, got)
		}
	}
}

func TestClamps(t *testing.T) {
	m := Measurement{5, 20}

	if got := m.ClampMax(10); got != (Measurement{5, 10}) {
		t.Errorf("ClampMax(10) = %+v", got)
	}
	if got := m.ClampMin(8); got != (Measurement{8, 20}) {
		t.Errorf("ClampMin(8) = %+v", got)
	}
	if got := m.Clamp(8, 10); got != (Measurement{8, 10}) {
		t.Errorf("Clamp(8, 10) = %+v", got)
	}
	if got := m.ClampMax(2); got != (Measurement{2, 2}) {
		t.Errorf("ClampMax(2) = %+v", got)
	}
}

func TestCombine(t *testing.T) {
	if got := Combine(nil); got != Zero {
		t.Errorf("Combine(nil) = %+v, want zero", got)
	}

	got := Combine([]Measurement{{2, 10}, {5, 7}, {1, 12}})
	if got != (Measurement{5, 12}) {
		t.Errorf("Combine = %+v, want {5 12}", got)
	}
}

func TestSum(t *testing.T) {
	if got := Sum(nil); got != Zero {
		t.Errorf("Sum(nil) = %+v, want zero", got)
	}

	got := Sum([]Measurement{{2, 10}, {5, 7}})
	if got != (Measurement{7, 17}) {
		t.Errorf("Sum = %+v, want {7 17}", got)
	}
}

func TestFill(t *testing.T) {
	if got := Fill(40); got != (Measurement{0, 40}) {
		t.Errorf("Fill(40) = %+v", got)
	}
	if got := Fill(-3); got != Zero {
		t.Errorf("Fill(-3) = %+v, want zero", got)
	}
}

type fixedMeasurable struct{ m Measurement }

func (f fixedMeasurable) Measure(int) Measurement { return f.m }

func TestOf(t *testing.T) {
	// Elements supporting the capability are measured.
	got := Of(fixedMeasurable{Measurement{3, 9}}, 40)
	if got != (Measurement{3, 9}) {
		t.Errorf("Of(measurable) = %+v", got)
	}

	// Everything else fills the available width.
	if got := Of("not measurable", 40); got != (Measurement{0, 40}) {
		t.Errorf("Of(non-measurable) = %+v, want fill", got)
	}
	if got := Of(nil, 25); got != (Measurement{0, 25}) {
		t.Errorf("Of(nil) = %+v, want fill", got)
	}
}
