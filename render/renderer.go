package render

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/babykeys/constants"
	"github.com/lixenwraith/babykeys/engine"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
)

const (
	glyphCell    = '█'
	particleCell = '●'
	gateIcon     = "⌨"
)

// Renderer draws the toy onto a tcell screen
type Renderer struct {
	screen  tcell.Screen
	palette *Palette
}

// NewRenderer creates a renderer for screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen:  screen,
		palette: NewPalette(),
	}
}

// Draw renders one full frame: background, active events, mute control and the start gate
func (r *Renderer) Draw(ctx *engine.GameContext, now time.Time) {
	width, height := r.screen.Size()
	bg := r.palette.Background(ctx.BackgroundIndex())
	bgStyle := tcell.StyleDefault.Background(ToTcell(bg))

	r.screen.SetStyle(bgStyle)
	r.screen.Clear()
	r.fill(width, height, bgStyle)

	for _, ev := range ctx.Events() {
		m, ok := ctx.Lifecycle.Get(ev.ID)
		if !ok {
			continue
		}
		r.drawEvent(m, now, width, height, bg)
	}

	// The mute control stays on top of the gate so it can be used before the first key
	labelBg := bg
	if !ctx.Started() {
		labelBg = r.drawGate(now, width, height, bg)
	}
	r.drawMuteControl(ctx.IsMuted(), width, labelBg)

	r.screen.Show()
}

// MuteControlHit reports whether a click at x,y lands on the mute control
func (r *Renderer) MuteControlHit(x, y int) bool {
	width, _ := r.screen.Size()
	left, right := muteControlSpan(width)
	return y == 0 && x >= left && x < right
}

// muteControlSpan returns the half-open column range of the mute label in the top-right corner
// Both labels share a width so the hit area does not move when toggled
func muteControlSpan(width int) (int, int) {
	w := max(runewidth.StringWidth(constants.MuteLabelOn), runewidth.StringWidth(constants.MuteLabelOff))
	right := width - 1
	return right - w, right
}

func (r *Renderer) fill(width, height int, style tcell.Style) {
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// eventCenter converts percentage coordinates to a screen cell
func eventCenter(ev engine.VisualEvent, width, height int) (float64, float64) {
	return ev.X / 100 * float64(width), ev.Y / 100 * float64(height)
}

func (r *Renderer) drawEvent(m *engine.MountedEvent, now time.Time, width, height int, bg colorful.Color) {
	ev := m.Event
	color := r.palette.Color(ev.Color)
	cx, cy := eventCenter(ev, width, height)

	r.drawGlyph(ev, m.Scale, cx, cy, width, height, color, bg)
	r.drawParticles(m, now.Sub(m.MountedAt), cx, cy, width, height, color, bg)
}

// drawGlyph rasterizes the letter or shape, sampling the mask at every cell center
func (r *Renderer) drawGlyph(ev engine.VisualEvent, scale, cx, cy float64, width, height int, color, bg colorful.Color) {
	msk, literal := glyphMask(ev)
	style := tcell.StyleDefault.Foreground(ToTcell(color)).Background(ToTcell(bg))

	if msk == nil {
		if literal != 0 {
			x := int(cx) - runewidth.RuneWidth(literal)/2
			r.set(x, int(cy), literal, style, width, height)
		}
		return
	}

	half := float64(ev.Size) / 2 * scale
	if half < 0.5 {
		return
	}

	// Bounding radius covers any rotation; cells are twice as tall as wide
	reach := half * math.Hypot(glyphHalfWidth(ev), 1)
	for y := int(cy - reach); y <= int(cy+reach); y++ {
		for x := int(cx - 2*reach); x <= int(cx+2*reach); x++ {
			dx := (float64(x) + 0.5 - cx) / 2
			dy := float64(y) + 0.5 - cy
			u, v := rotate(dx, dy, ev.Rotation)
			if msk(u/half, v/half) {
				r.set(x, y, glyphCell, style, width, height)
			}
		}
	}
}

// easeOut approximates cubic-bezier(0, 0, 0.2, 1)
func easeOut(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// ParticleProgress returns the flight progress of particle i at age, in [0, 1]
func ParticleProgress(i int, age time.Duration) float64 {
	elapsed := age - time.Duration(i)*constants.ParticleStagger
	if elapsed <= 0 {
		return 0
	}
	t := float64(elapsed) / float64(constants.ParticleFlight)
	return math.Min(t, 1)
}

// ParticleOffset returns a particle's displacement in cells at flight progress t
func ParticleOffset(p engine.Particle, t float64) (float64, float64) {
	e := easeOut(t)
	px := p.X + p.VX*constants.ParticleTravelScale*e
	py := p.Y + p.VY*constants.ParticleTravelScale*e
	return px / constants.CellPixelWidth, py / constants.CellPixelHeight
}

func (r *Renderer) drawParticles(m *engine.MountedEvent, age time.Duration, cx, cy float64, width, height int, color, bg colorful.Color) {
	for _, p := range m.Particles {
		t := ParticleProgress(p.ID, age)
		if t <= 0 || t >= 1 {
			continue
		}
		dx, dy := ParticleOffset(p, t)
		style := tcell.StyleDefault.Foreground(ToTcell(Fade(color, bg, t))).Background(ToTcell(bg))
		r.set(int(math.Round(cx+dx)), int(math.Round(cy+dy)), particleCell, style, width, height)
	}
}

func (r *Renderer) drawMuteControl(muted bool, width int, bg colorful.Color) {
	label := constants.MuteLabelOn
	if muted {
		label = constants.MuteLabelOff
	}
	style := tcell.StyleDefault.
		Foreground(ToTcell(mustHex(constants.MuteLabelColor))).
		Background(ToTcell(bg))
	left, _ := muteControlSpan(width)
	r.text(left, 0, label, style)
}

// drawGate darkens the screen and shows the start prompt, returns the dimmed background
func (r *Renderer) drawGate(now time.Time, width, height int, bg colorful.Color) colorful.Color {
	dim := Fade(bg, colorful.Color{}, 0.8)
	dimStyle := tcell.StyleDefault.Background(ToTcell(dim))
	r.fill(width, height, dimStyle)

	secs := float64(now.UnixNano()) / float64(time.Second)
	pulse := 0.75 + 0.25*math.Sin(secs*2*math.Pi)

	midY := height / 2
	title := []rune(constants.GateTitle)
	titleX := (width - runewidth.StringWidth(constants.GateTitle)) / 2
	x := titleX
	for i, ch := range title {
		t := 0.0
		if len(title) > 1 {
			t = float64(i) / float64(len(title)-1)
		}
		c := Fade(GateGradient(t), dim, 1-pulse)
		style := dimStyle.Foreground(ToTcell(c)).Bold(true)
		r.screen.SetContent(x, midY-2, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}

	promptStyle := dimStyle.Foreground(tcell.ColorWhite)
	r.text((width-runewidth.StringWidth(constants.GatePrompt))/2, midY, constants.GatePrompt, promptStyle)

	// Bouncing key icon
	bounce := int(math.Round(math.Abs(math.Sin(secs * math.Pi))))
	r.text((width-runewidth.StringWidth(gateIcon))/2, midY+3-bounce, gateIcon, promptStyle)

	return dim
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
}

func (r *Renderer) set(x, y int, ch rune, style tcell.Style, width, height int) {
	if x < 0 || y < 0 || x >= width || y >= height {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}
