package animated

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is a 32-bit ARGB color. Interpolated colors travel through the
// graph as the float64 image of these bits; consumers reassemble them
// with ColorFromBits.
type Color uint32

// ARGB constructs a color from individual channels.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs a fully opaque color.
func RGB(r, g, b uint8) Color {
	return ARGB(0xFF, r, g, b)
}

// Bits returns the color's ARGB bits as a float64, the form color
// values take inside the graph.
func (c Color) Bits() float64 {
	return float64(uint32(c))
}

// ColorFromBits reassembles a Color from a node value produced by a
// color interpolation.
func ColorFromBits(v float64) Color {
	return Color(uint32(v))
}

// Channels returns the alpha, red, green, and blue components.
func (c Color) Channels() (a, r, g, b uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

func (c Color) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// ParseColor parses a color literal: "#RGB", "#RRGGBB", "#AARRGGBB",
// or an SVG 1.1 color name such as "rebeccapurple".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty color")
	}
	if s[0] == '#' {
		return parseHexColor(s[1:])
	}
	if rgba, ok := colornames.Map[strings.ToLower(s)]; ok {
		return ARGB(rgba.A, rgba.R, rgba.G, rgba.B), nil
	}
	return 0, fmt.Errorf("unknown color %q", s)
}

func parseHexColor(hex string) (Color, error) {
	switch len(hex) {
	case 3: // #RGB
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid hex color %q", "#"+hex)
		}
		r := uint8(v >> 8 & 0xF)
		g := uint8(v >> 4 & 0xF)
		b := uint8(v & 0xF)
		return ARGB(0xFF, r<<4|r, g<<4|g, b<<4|b), nil
	case 6: // #RRGGBB
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid hex color %q", "#"+hex)
		}
		return Color(0xFF000000 | uint32(v)), nil
	case 8: // #AARRGGBB
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid hex color %q", "#"+hex)
		}
		return Color(uint32(v)), nil
	default:
		return 0, fmt.Errorf("invalid hex color %q", "#"+hex)
	}
}

// LerpColor interpolates each ARGB channel independently.
func LerpColor(a, b Color, t float64) Color {
	aA, aR, aG, aB := a.Channels()
	bA, bR, bG, bB := b.Channels()
	return ARGB(
		lerpChannel(aA, bA, t),
		lerpChannel(aR, bR, t),
		lerpChannel(aG, bG, t),
		lerpChannel(aB, bB, t),
	)
}

func lerpChannel(a, b uint8, t float64) uint8 {
	v := float64(a) + (float64(b)-float64(a))*t
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
