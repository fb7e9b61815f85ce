package animated

import (
	"math"
	"testing"
)

func evalInterpolation(t *testing.T, in, out []float64, left, right ExtrapolateMode, input float64) float64 {
	t.Helper()
	v := NewValueNode(input)
	interp := NewInterpolationNode(v, in, out)
	interp.SetExtrapolate(left, right)
	return Evaluate(interp)
}

func TestInterpolationNodeBasicMapping(t *testing.T) {
	in := []float64{0, 1}
	out := []float64{0, 100}
	tests := []struct {
		input float64
		want  float64
	}{
		{0, 0},
		{0.25, 25},
		{0.5, 50},
		{1, 100},
	}
	for _, tt := range tests {
		got := evalInterpolation(t, in, out, ExtrapolateExtend, ExtrapolateExtend, tt.input)
		if got != tt.want {
			t.Errorf("interpolate(%v) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestInterpolationNodeMultiSegment(t *testing.T) {
	in := []float64{-1, 0, 1}
	out := []float64{0, 10, 40}
	tests := []struct {
		input float64
		want  float64
	}{
		{-1, 0},
		{-0.5, 5},
		{0, 10},
		{0.5, 25},
		{1, 40},
	}
	for _, tt := range tests {
		got := evalInterpolation(t, in, out, ExtrapolateExtend, ExtrapolateExtend, tt.input)
		if got != tt.want {
			t.Errorf("interpolate(%v) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestInterpolationNodeExtrapolation(t *testing.T) {
	in := []float64{0, 1}
	out := []float64{0, 100}

	tests := []struct {
		name        string
		left, right ExtrapolateMode
		input       float64
		want        float64
	}{
		{"extend below", ExtrapolateExtend, ExtrapolateExtend, -0.5, -50},
		{"extend above", ExtrapolateExtend, ExtrapolateExtend, 1.5, 150},
		{"clamp below", ExtrapolateClamp, ExtrapolateClamp, -0.5, 0},
		{"clamp above", ExtrapolateClamp, ExtrapolateClamp, 1.5, 100},
		{"identity below", ExtrapolateIdentity, ExtrapolateIdentity, -0.5, -0.5},
		{"identity above", ExtrapolateIdentity, ExtrapolateIdentity, 1.5, 1.5},
		{"mixed edges", ExtrapolateClamp, ExtrapolateExtend, 2, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := evalInterpolation(t, in, out, tt.left, tt.right, tt.input)
			if got != tt.want {
				t.Errorf("interpolate(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestInterpolationNodeTracksParent(t *testing.T) {
	v := NewValueNode(0)
	opacity := NewInterpolationNode(v, []float64{0, 300}, []float64{1, 0})
	opacity.SetExtrapolate(ExtrapolateClamp, ExtrapolateClamp)

	v.SetOffset(150) // mid-drag
	if got := Evaluate(opacity); got != 0.5 {
		t.Fatalf("Evaluate = %v, want 0.5", got)
	}

	v.FlattenOffset()
	if got := Evaluate(opacity); got != 0.5 {
		t.Fatalf("Evaluate after flatten = %v, want 0.5", got)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#FF0000", RGB(255, 0, 0)},
		{"#00ff00", RGB(0, 255, 0)},
		{"#80000000", ARGB(0x80, 0, 0, 0)},
		{"#fff", RGB(255, 255, 255)},
		{"red", RGB(255, 0, 0)},
		{"rebeccapurple", RGB(102, 51, 153)},
		{" navy ", RGB(0, 0, 128)},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "#12345", "notacolor", "#xyzxyz"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%q) succeeded, want error", bad)
		}
	}
}

func TestColorInterpolationNode(t *testing.T) {
	v := NewValueNode(0)
	tint := NewColorInterpolationNode(v, []float64{0, 1}, []Color{
		RGB(0, 0, 0),
		RGB(255, 255, 255),
	})

	v.SetValue(0)
	Evaluate(tint)
	if got := tint.Color(); got != RGB(0, 0, 0) {
		t.Errorf("Color() at 0 = %v, want black", got)
	}

	v.SetValue(1)
	Evaluate(tint)
	if got := tint.Color(); got != RGB(255, 255, 255) {
		t.Errorf("Color() at 1 = %v, want white", got)
	}

	v.SetValue(0.5)
	Evaluate(tint)
	_, r, g, b := tint.Color().Channels()
	for _, ch := range []uint8{r, g, b} {
		if ch < 126 || ch > 129 {
			t.Errorf("midpoint channel = %d, want ~127", ch)
		}
	}

	// Inputs beyond the range clamp to the edge colors.
	v.SetValue(5)
	Evaluate(tint)
	if got := tint.Color(); got != RGB(255, 255, 255) {
		t.Errorf("Color() at 5 = %v, want white (clamped)", got)
	}
}

func TestColorInterpolationNodeFromStrings(t *testing.T) {
	v := NewValueNode(0)
	tint, err := NewColorInterpolationNodeFromStrings(v, []float64{0, 1}, []string{"black", "#FFFFFF"})
	if err != nil {
		t.Fatalf("NewColorInterpolationNodeFromStrings: %v", err)
	}
	v.SetValue(1)
	Evaluate(tint)
	if got := tint.Color(); got != RGB(255, 255, 255) {
		t.Errorf("Color() = %v, want white", got)
	}

	if _, err := NewColorInterpolationNodeFromStrings(v, []float64{0, 1}, []string{"black", "nope"}); err == nil {
		t.Error("expected error for unknown color literal")
	}
}

func TestColorBitsRoundTrip(t *testing.T) {
	c := ARGB(0x80, 0x12, 0x34, 0x56)
	if got := ColorFromBits(c.Bits()); got != c {
		t.Errorf("round trip = %v, want %v", got, c)
	}
	if math.Trunc(c.Bits()) != c.Bits() {
		t.Error("Bits() should be integral")
	}
}
