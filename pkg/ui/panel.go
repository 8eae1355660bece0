package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Widget is implemented by every control a Panel can host.
type Widget interface {
	Update()
	Draw(screen *ebiten.Image)
	Height() float64
}

type sliderEntry struct{ *Slider }

func (s sliderEntry) Height() float64 { return s.H + 24 } // track + label space

type checkboxEntry struct{ *Checkbox }

func (c checkboxEntry) Height() float64 { return c.Size + 10 }

type sectionEntry struct{ title string }

func (sectionEntry) Update()            {}
func (sectionEntry) Draw(*ebiten.Image) {}
func (sectionEntry) Height() float64    { return 22 }

// Panel stacks sliders, checkboxes and section headers vertically and
// renders them over the simulation. Layout is recomputed every frame, so
// widgets only store their current value.
type Panel struct {
	X, Y         float64
	Width        float64
	widgets      []Widget
	labels       []string
	bgColor      color.RGBA
	borderColor  color.RGBA
	sectionColor color.RGBA
}

// NewPanel creates an empty panel anchored at (x, y).
func NewPanel(x, y, width float64) *Panel {
	return &Panel{
		X:            x,
		Y:            y,
		Width:        width,
		bgColor:      color.RGBA{R: 40, G: 40, B: 45, A: 230},
		borderColor:  color.RGBA{R: 100, G: 100, B: 110, A: 255},
		sectionColor: color.RGBA{R: 60, G: 60, B: 70, A: 255},
	}
}

// AddSection adds a section header above the widgets that follow it.
func (p *Panel) AddSection(title string) {
	p.widgets = append(p.widgets, sectionEntry{title: title})
	p.labels = append(p.labels, title)
}

// AddSlider adds a slider and returns it for value reads.
func (p *Panel) AddSlider(label string, min, max, value float64) *Slider {
	s := NewSlider(p.X+10, 0, p.Width-20, label, min, max, value)
	p.widgets = append(p.widgets, sliderEntry{s})
	p.labels = append(p.labels, label)
	return s
}

// AddCheckbox adds a checkbox and returns it for value reads.
func (p *Panel) AddCheckbox(label string, value bool) *Checkbox {
	c := NewCheckbox(p.X+10, 0, label, value)
	p.widgets = append(p.widgets, checkboxEntry{c})
	p.labels = append(p.labels, label)
	return c
}

// Update handles input for all widgets.
func (p *Panel) Update() {
	p.layout()
	for _, w := range p.widgets {
		w.Update()
	}
}

// Draw renders the panel background and every widget with its label.
func (p *Panel) Draw(screen *ebiten.Image) {
	height := p.contentHeight()
	vector.FillRect(screen, float32(p.X), float32(p.Y),
		float32(p.Width), float32(height), p.bgColor, true)
	vector.StrokeRect(screen, float32(p.X), float32(p.Y),
		float32(p.Width), float32(height), 2, p.borderColor, true)

	y := p.Y + 8
	for i, w := range p.widgets {
		switch e := w.(type) {
		case sectionEntry:
			vector.FillRect(screen, float32(p.X+4), float32(y),
				float32(p.Width-8), 18, p.sectionColor, true)
			ebitenutil.DebugPrintAt(screen, e.title, int(p.X+10), int(y+2))
		case sliderEntry:
			ebitenutil.DebugPrintAt(screen,
				fmt.Sprintf("%s: %.3f", p.labels[i], e.Value), int(p.X+10), int(y))
			e.Draw(screen)
		case checkboxEntry:
			ebitenutil.DebugPrintAt(screen, p.labels[i], int(p.X+34), int(y+2))
			e.Draw(screen)
		}
		y += w.Height()
	}
}

// layout assigns each widget its Y position for this frame.
func (p *Panel) layout() {
	y := p.Y + 8
	for _, w := range p.widgets {
		switch e := w.(type) {
		case sliderEntry:
			e.Y = y + 16 // leave room for the label line
		case checkboxEntry:
			e.Y = y
		}
		y += w.Height()
	}
}

func (p *Panel) contentHeight() float64 {
	h := 16.0
	for _, w := range p.widgets {
		h += w.Height()
	}
	return h
}
