package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/babykeys/constants"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// mustHex parses a constant hex color, panicking on malformed tables
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(errors.Wrapf(err, "parse color %q", s))
	}
	return c
}

// Palette holds the parsed toy colors
type Palette struct {
	Colors []colorful.Color
	Base   colorful.Color
}

// NewPalette parses the constant color tables
func NewPalette() *Palette {
	p := &Palette{
		Colors: make([]colorful.Color, len(constants.Colors)),
		Base:   mustHex(constants.BackgroundBase),
	}
	for i, hex := range constants.Colors {
		p.Colors[i] = mustHex(hex)
	}
	return p
}

// Color returns palette entry i, wrapping out-of-range indices
func (p *Palette) Color(i int) colorful.Color {
	n := len(p.Colors)
	return p.Colors[((i%n)+n)%n]
}

// Background returns the base color under a translucent palette overlay
func (p *Palette) Background(index int) colorful.Color {
	return p.Base.BlendRgb(p.Color(index), constants.BackgroundOverlayOpacity)
}

// Fade blends c toward bg, t=0 is c and t=1 is bg
func Fade(c, bg colorful.Color, t float64) colorful.Color {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return bg
	}
	return c.BlendRgb(bg, t)
}

// GateGradient returns the title color at position t in [0, 1]: pink, yellow, blue
func GateGradient(t float64) colorful.Color {
	from := mustHex(constants.GateGradientFrom)
	mid := mustHex(constants.GateGradientMid)
	to := mustHex(constants.GateGradientTo)

	if t < 0.5 {
		return from.BlendHcl(mid, t*2).Clamped()
	}
	return mid.BlendHcl(to, (t-0.5)*2).Clamped()
}

// ToTcell converts to a true-color tcell color
func ToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
