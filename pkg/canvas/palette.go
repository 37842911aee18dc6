package canvas

import (
	"image/color"
	"math"

	"github.com/acaird/rootplot/pkg/engine"
)

// first number handed out for colors that are not stock colors
const firstUserColor engine.ColorID = 1000

// Palette is the table of colors the engine knows by number.
type Palette struct {
	colors map[engine.ColorID]color.RGBA
	byRGB  map[color.RGBA]engine.ColorID
	next   engine.ColorID
}

func NewPalette() *Palette {
	p := &Palette{
		colors: make(map[engine.ColorID]color.RGBA),
		byRGB:  make(map[color.RGBA]engine.ColorID),
		next:   firstUserColor,
	}
	stock := []struct {
		id engine.ColorID
		c  color.RGBA
	}{
		{engine.White, color.RGBA{0xff, 0xff, 0xff, 0xff}},
		{engine.Black, color.RGBA{0x00, 0x00, 0x00, 0xff}},
		{engine.Red, color.RGBA{0xff, 0x00, 0x00, 0xff}},
		{engine.Green, color.RGBA{0x00, 0xff, 0x00, 0xff}},
		{engine.Blue, color.RGBA{0x00, 0x00, 0xff, 0xff}},
		{engine.Yellow, color.RGBA{0xff, 0xff, 0x00, 0xff}},
		{engine.Magenta, color.RGBA{0xff, 0x00, 0xff, 0xff}},
		{engine.Cyan, color.RGBA{0x00, 0xff, 0xff, 0xff}},
		{engine.DarkGreen, color.RGBA{0x59, 0xd4, 0x54, 0xff}},
		{engine.Purple, color.RGBA{0x59, 0x54, 0xd8, 0xff}},
		{engine.Gray, color.RGBA{0xcc, 0xcc, 0xcc, 0xff}},
	}
	for _, s := range stock {
		p.colors[s.id] = s.c
		p.byRGB[s.c] = s.id
	}
	return p
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// GetColor returns the number of the color (r, g, b), each in [0,1],
// allocating a new number the first time a triple is seen.
func (p *Palette) GetColor(r, g, b float64) engine.ColorID {
	c := color.RGBA{R: channel(r), G: channel(g), B: channel(b), A: 0xff}
	if id, ok := p.byRGB[c]; ok {
		return id
	}
	id := p.next
	p.next++
	p.colors[id] = c
	p.byRGB[c] = id
	return id
}

// RGBA returns the opaque color numbered id.
func (p *Palette) RGBA(id engine.ColorID) (color.RGBA, bool) {
	c, ok := p.colors[id]
	return c, ok
}

// Color returns color id with the given alpha. Unknown numbers draw
// black.
func (p *Palette) Color(id engine.ColorID, alpha float64) color.NRGBA {
	c, ok := p.colors[id]
	if !ok {
		c = color.RGBA{A: 0xff}
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: channel(alpha)}
}
