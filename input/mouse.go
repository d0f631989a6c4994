package input

import "github.com/gdamore/tcell/v2"

// ClickDetector turns the primary button state reported by mouse events into discrete clicks
// tcell reports motion with the button held as more presses, so only the press edge counts
type ClickDetector struct {
	down bool
}

// Click returns the position of a new primary-button press
func (c *ClickDetector) Click(ev *tcell.EventMouse) (x, y int, ok bool) {
	pressed := ev.Buttons()&tcell.Button1 != 0
	edge := pressed && !c.down
	c.down = pressed
	if !edge {
		return 0, 0, false
	}
	x, y = ev.Position()
	return x, y, true
}
