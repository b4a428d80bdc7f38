package scene

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"math"
)

// Color is a straight (non premultiplied) RGBA color,
// with components expected in [0, 1].
type Color struct {
	R, G, B, A float64
}

var _ color.Color = Color{}

// Some predefined colors.
var (
	Transparent = Color{}
	Black       = Color{0, 0, 0, 1}
	White       = Color{1, 1, 1, 1}
	Red         = Color{1, 0, 0, 1}
	Green       = Color{0, 1, 0, 1}
	Blue        = Color{0, 0, 1, 1}
)

// RGBA8 builds a color from 8-bit components.
func RGBA8(r, g, b, a uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, float64(a) / 255}
}

// FromHex parses "#RRGGBB" or "#RRGGBBAA", case insensitive.
// An absent alpha means opaque. The leading '#' is mandatory.
func FromHex(s string) (Color, error) {
	if len(s) == 0 || s[0] != '#' {
		return Color{}, fmt.Errorf("%w %q: missing leading '#'", ErrColorParse, s)
	}
	digits := s[1:]
	if len(digits) != 6 && len(digits) != 8 {
		return Color{}, fmt.Errorf("%w %q: expected 6 or 8 hex digits, got %d", ErrColorParse, s, len(digits))
	}
	b := [4]byte{3: 0xff}
	if _, err := hex.Decode(b[:len(digits)/2], []byte(digits)); err != nil {
		return Color{}, fmt.Errorf("%w %q: %v", ErrColorParse, s, err)
	}
	return RGBA8(b[0], b[1], b[2], b[3]), nil
}

// MustHex is like FromHex but panics on malformed input.
// It is meant for package level color literals.
func MustHex(s string) Color {
	c, err := FromHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats the color as "#RRGGBB", or "#RRGGBBAA" if includeAlpha is true,
// with upper case digits. Components are clamped and rounded to the nearest byte.
func (c Color) Hex(includeAlpha bool) string {
	n := c.NRGBA()
	if includeAlpha {
		return fmt.Sprintf("#%02X%02X%02X%02X", n.R, n.G, n.B, n.A)
	}
	return fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B)
}

// String implements fmt.Stringer
func (c Color) String() string { return c.Hex(true) }

// FromHSV converts a hue, saturation, value triplet, all in [0, 1],
// to an opaque color. The hue wraps around.
func FromHSV(h, s, v float64) Color {
	h = math.Mod(h, 1)
	if h < 0 {
		h += 1
	}
	s, v = clamp01(s), clamp01(v)
	h6 := h * 6
	i := math.Floor(h6)
	f := h6 - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	switch int(i) % 6 {
	case 0:
		return Color{v, t, p, 1}
	case 1:
		return Color{q, v, p, 1}
	case 2:
		return Color{p, v, t, 1}
	case 3:
		return Color{p, q, v, 1}
	case 4:
		return Color{t, p, v, 1}
	default:
		return Color{v, p, q, 1}
	}
}

// FromColor converts any color.Color.
func FromColor(c color.Color) Color {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return Color{float64(n.R) / 0xffff, float64(n.G) / 0xffff, float64(n.B) / 0xffff, float64(n.A) / 0xffff}
}

// RGBA implements color.Color, returning alpha premultiplied components.
func (c Color) RGBA() (r, g, b, a uint32) {
	alpha := clamp01(c.A)
	r = uint32(clamp01(c.R)*alpha*0xffff + 0.5)
	g = uint32(clamp01(c.G)*alpha*0xffff + 0.5)
	b = uint32(clamp01(c.B)*alpha*0xffff + 0.5)
	a = uint32(alpha*0xffff + 0.5)
	return
}

// NRGBA returns the 8-bit straight alpha version of the color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{toByte(c.R), toByte(c.G), toByte(c.B), toByte(c.A)}
}

// WithAlpha returns a copy of c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Lerp interpolates linearly between c (t = 0) and d (t = 1).
func (c Color) Lerp(d Color, t float64) Color {
	return Color{
		c.R + (d.R-c.R)*t,
		c.G + (d.G-c.G)*t,
		c.B + (d.B-c.B)*t,
		c.A + (d.A-c.A)*t,
	}
}

// IsOpaque returns true if the alpha component is (at least) 1.
func (c Color) IsOpaque() bool { return c.A >= 1 }

func (c Color) isFinite() bool {
	return isFinite(c.R) && isFinite(c.G) && isFinite(c.B) && isFinite(c.A)
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	} else if f > 1 {
		return 1
	}
	return f
}

func toByte(f float64) uint8 { return uint8(math.Round(clamp01(f) * 255)) }
