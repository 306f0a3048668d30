package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Widget is anything the panel can lay out and drive.
type Widget interface {
	Update()
	Draw(screen *ebiten.Image)
	Height() float64
	SetY(y float64)
}

type entry struct {
	label  string
	widget Widget
}

type section struct {
	title      string
	start, end int // entry index range, end exclusive
}

// Panel groups widgets into titled sections inside a scrollable box.
type Panel struct {
	X, Y          float64
	Width, Height float64

	entries  []entry
	sections []section
	scroll   float64

	// Styling
	BGColor     color.RGBA
	BorderColor color.RGBA
}

// NewPanel creates an empty panel at the given position and size.
func NewPanel(x, y, width, height float64) *Panel {
	return &Panel{
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		BGColor:     color.RGBA{R: 40, G: 40, B: 45, A: 230},
		BorderColor: color.RGBA{R: 100, G: 100, B: 110, A: 255},
	}
}

// Section opens a new titled section; widgets added afterwards belong to
// it until EndSection.
func (p *Panel) Section(title string) {
	p.sections = append(p.sections, section{title: title, start: len(p.entries)})
}

// EndSection closes the current section.
func (p *Panel) EndSection() {
	if len(p.sections) > 0 {
		p.sections[len(p.sections)-1].end = len(p.entries)
	}
}

// AddSlider appends a labeled slider and returns it so the caller can
// read its live value.
func (p *Panel) AddSlider(label string, min, max, value float64) *Slider {
	s := NewSlider(p.X+10, 0, p.Width-60, label, min, max, value)
	p.entries = append(p.entries, entry{label: label, widget: s})
	return s
}

// AddCheckbox appends a labeled checkbox and returns it.
func (p *Panel) AddCheckbox(label string, value bool) *Checkbox {
	c := NewCheckbox(p.X+10, 0, label, value)
	p.entries = append(p.entries, entry{label: label, widget: c})
	return c
}

// Update handles scrolling and forwards input to every widget.
func (p *Panel) Update() {
	_, dy := ebiten.Wheel()
	if dy != 0 {
		p.scroll -= dy * 20
		maxScroll := p.contentHeight() - p.Height + 40
		if maxScroll < 0 {
			maxScroll = 0
		}
		if p.scroll < 0 {
			p.scroll = 0
		}
		if p.scroll > maxScroll {
			p.scroll = maxScroll
		}
	}

	for _, e := range p.entries {
		e.widget.Update()
	}
}

// Draw renders the panel frame, section headers, labels and widgets.
// Widget Y positions are reassigned every frame from the scroll offset,
// so input hit-testing stays in sync with what is drawn.
func (p *Panel) Draw(screen *ebiten.Image) {
	vector.FillRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		p.BGColor, true)
	vector.StrokeRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		2, p.BorderColor, true)

	ebitenutil.DebugPrintAt(screen, "Parameters", int(p.X+10), int(p.Y+5))

	y := p.Y + 30 - p.scroll
	for _, sec := range p.sections {
		if p.rowVisible(y, 20) {
			vector.FillRect(screen,
				float32(p.X+5), float32(y),
				float32(p.Width-10), 20,
				color.RGBA{R: 60, G: 60, B: 70, A: 255}, true)
			ebitenutil.DebugPrintAt(screen, sec.title, int(p.X+10), int(y+5))
		}
		y += 25

		for i := sec.start; i < sec.end && i < len(p.entries); i++ {
			e := p.entries[i]
			if p.rowVisible(y, e.widget.Height()) {
				ebitenutil.DebugPrintAt(screen, e.label, int(p.X+10), int(y))
				e.widget.SetY(y + 15)
				e.widget.Draw(screen)
			}
			y += e.widget.Height()
		}
	}
}

func (p *Panel) rowVisible(y, h float64) bool {
	return y+h >= p.Y && y <= p.Y+p.Height
}

func (p *Panel) contentHeight() float64 {
	h := 30.0
	h += float64(len(p.sections)) * 25
	for _, e := range p.entries {
		h += e.widget.Height()
	}
	return h
}
