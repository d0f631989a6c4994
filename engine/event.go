package engine

import (
	"unicode/utf8"
)

// ShapeType identifies the icon drawn for special keys
type ShapeType uint8

const (
	ShapeCircle ShapeType = iota
	ShapeSquare
	ShapeStar
	ShapeHeart
	ShapeTriangle
)

// Shapes is the sampling order for random shape selection
var Shapes = [...]ShapeType{ShapeCircle, ShapeSquare, ShapeStar, ShapeHeart, ShapeTriangle}

func (s ShapeType) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeSquare:
		return "square"
	case ShapeStar:
		return "star"
	case ShapeHeart:
		return "heart"
	case ShapeTriangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// EventID identifies a visual event for the life of the process
type EventID uint64

// KeyPress is a translated keyboard event
// Key is the character typed or the name of a special key ("Enter", "Backspace")
// Code is the numeric key code used to pick a note
type KeyPress struct {
	Key  string
	Code int
}

// IsSpecial reports whether the key has a multi-character name
func (k KeyPress) IsSpecial() bool {
	return utf8.RuneCountInString(k.Key) > 1
}

// IsSpace reports whether the key is the space bar
func (k KeyPress) IsSpace() bool {
	return k.Key == " "
}

// VisualEvent is one letter or shape pop, immutable after creation
type VisualEvent struct {
	ID       EventID
	Key      string
	X, Y     float64 // percent of screen width/height, [10, 90]
	Color    int     // palette index
	Shape    ShapeType
	Rotation float64 // degrees, [-30, 30]
	Size     int     // glyph height in rows
}

// IsSpecial reports whether the event shows a shape instead of text
func (e VisualEvent) IsSpecial() bool {
	return utf8.RuneCountInString(e.Key) > 1
}

// Particle is one element of the radial burst around a visual event
type Particle struct {
	ID       int // index within the burst
	ParentID EventID
	X, Y     float64 // offset from the parent center, always starts at 0,0
	Color    int
	VX, VY   float64
}
