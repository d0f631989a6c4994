package engine

import (
	"github.com/lixenwraith/babykeys/constants"
)

// Mapper turns key presses into randomized visual events
type Mapper struct {
	rng    Random
	nextID EventID
}

// NewMapper creates a mapper drawing from rng
func NewMapper(rng Random) *Mapper {
	return &Mapper{rng: rng}
}

// NewVisualEvent builds the visual descriptor for one key press
func (m *Mapper) NewVisualEvent(k KeyPress) VisualEvent {
	m.nextID++

	size := constants.GlyphSizeRegular
	if k.IsSpecial() {
		size = constants.GlyphSizeSpecial
	}

	return VisualEvent{
		ID:       m.nextID,
		Key:      k.Key,
		X:        constants.PositionMin + m.rng.Float64()*constants.PositionRange,
		Y:        constants.PositionMin + m.rng.Float64()*constants.PositionRange,
		Color:    pick(m.rng, constants.PaletteSize),
		Shape:    Shapes[pick(m.rng, len(Shapes))],
		Rotation: (m.rng.Float64() - 0.5) * constants.RotationRange,
		Size:     size,
	}
}

// ShouldAdvanceBackground decides whether a key press moves the background color
// Space always advances, other keys only on a draw above the threshold
func (m *Mapper) ShouldAdvanceBackground(k KeyPress) bool {
	if k.IsSpace() {
		return true
	}
	return m.rng.Float64() > constants.BackgroundAdvanceThreshold
}
