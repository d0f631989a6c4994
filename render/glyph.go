package render

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/lixenwraith/babykeys/engine"
)

// mask reports coverage at normalized glyph coordinates
// u grows right, v grows down, the glyph box spans [-1, 1] vertically
type mask func(u, v float64) bool

// glyphAspect is the horizontal half-extent of letter masks in normalized units
const glyphAspect = float64(fontWidth) / float64(fontHeight)

// GlyphText returns the text shown for a key: the uppercased character
func GlyphText(key string) string {
	return strings.ToUpper(key)
}

// glyphMask selects the coverage function for an event
// The second result is the rune to print literally when no bitmap exists
func glyphMask(ev engine.VisualEvent) (mask, rune) {
	if ev.IsSpecial() {
		return shapeMask(ev.Shape), 0
	}

	r, _ := utf8.DecodeRuneInString(GlyphText(ev.Key))
	if r == ' ' || r == utf8.RuneError {
		return nil, 0
	}
	if !hasGlyph(r) {
		return nil, r
	}
	return letterMask(r), 0
}

// glyphHalfWidth returns the normalized horizontal half-extent of an event's glyph
func glyphHalfWidth(ev engine.VisualEvent) float64 {
	if ev.IsSpecial() {
		return 1.0
	}
	return glyphAspect
}

func letterMask(r rune) mask {
	return func(u, v float64) bool {
		col := int(math.Floor((u/glyphAspect + 1) / 2 * fontWidth))
		row := int(math.Floor((v + 1) / 2 * fontHeight))
		return fontBit(r, col, row)
	}
}

func shapeMask(s engine.ShapeType) mask {
	switch s {
	case engine.ShapeCircle:
		return func(u, v float64) bool {
			return u*u+v*v <= 1
		}
	case engine.ShapeSquare:
		return func(u, v float64) bool {
			// 10% corner rounding
			const r = 0.2
			ax, ay := math.Abs(u), math.Abs(v)
			if ax > 1 || ay > 1 {
				return false
			}
			if ax > 1-r && ay > 1-r {
				dx, dy := ax-(1-r), ay-(1-r)
				return dx*dx+dy*dy <= r*r
			}
			return true
		}
	case engine.ShapeStar:
		return func(u, v float64) bool {
			const (
				points = 5
				inner  = 0.45
			)
			dist := math.Hypot(u, v)
			if dist > 1 {
				return false
			}
			// Angle from straight up, clockwise
			angle := math.Atan2(u, -v)
			sector := 2 * math.Pi / points
			a := math.Mod(angle+sector/2+2*math.Pi, sector) - sector/2
			t := math.Abs(a) / (sector / 2) // 0 at a tip, 1 between tips
			return dist <= 1-(1-inner)*t
		}
	case engine.ShapeHeart:
		return func(u, v float64) bool {
			x := u * 1.2
			y := -v*1.25 + 0.2
			a := x*x + y*y - 1
			return a*a*a-x*x*y*y*y <= 0
		}
	default:
		return func(u, v float64) bool {
			if v < -1 || v > 1 {
				return false
			}
			return math.Abs(u) <= (v+1)/2
		}
	}
}

// rotate maps a screen-space offset back into glyph space for a clockwise rotation in degrees
func rotate(dx, dy, degrees float64) (float64, float64) {
	rad := degrees * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return dx*cos + dy*sin, -dx*sin + dy*cos
}
