package canvas

import (
	"fmt"

	"github.com/acaird/rootplot/pkg/engine"
)

// Object is anything a pad can draw.
type Object interface {
	Name() string
}

type primitive struct {
	obj    Object
	option string
}

type text struct {
	s    string
	x, y float64
	font engine.FontCode
	size float64
	user bool
}

// Pad is a rectangular plotting region inside a canvas.
type Pad struct {
	canvas *Canvas
	number int

	// placement in the parent, in parent NDC
	x1, y1, x2, y2 float64

	left, right, bottom, top float64

	logx, logy, logz bool
	gridx, gridy     bool

	fill      engine.FillStyle
	fillColor engine.ColorID

	subpads []*Pad
	prims   []primitive
	texts   []text
}

func newPad(c *Canvas, number int, x1, y1, x2, y2 float64) *Pad {
	return &Pad{
		canvas:    c,
		number:    number,
		x1:        x1,
		y1:        y1,
		x2:        x2,
		y2:        y2,
		left:      0.1,
		right:     0.1,
		bottom:    0.1,
		top:       0.1,
		fill:      engine.FillSolid,
		fillColor: engine.White,
	}
}

// Number is the pad's index in its parent; the top level pad is 0.
func (p *Pad) Number() int { return p.number }

// Geometry returns the pad's placement in its parent.
func (p *Pad) Geometry() (x1, y1, x2, y2 float64) { return p.x1, p.y1, p.x2, p.y2 }

func (p *Pad) SetLogx(on bool)  { p.logx = on }
func (p *Pad) SetLogy(on bool)  { p.logy = on }
func (p *Pad) SetLogz(on bool)  { p.logz = on }
func (p *Pad) SetGridx(on bool) { p.gridx = on }
func (p *Pad) SetGridy(on bool) { p.gridy = on }

// Log reports the logarithmic state of the x, y and z axes.
func (p *Pad) Log() (x, y, z bool) { return p.logx, p.logy, p.logz }

// Grid reports whether x and y grid lines are drawn.
func (p *Pad) Grid() (x, y bool) { return p.gridx, p.gridy }

func (p *Pad) SetMargin(left, right, bottom, top float64) {
	p.left, p.right, p.bottom, p.top = left, right, bottom, top
}

func (p *Pad) SetTopMargin(m float64)    { p.top = m }
func (p *Pad) SetRightMargin(m float64)  { p.right = m }
func (p *Pad) SetBottomMargin(m float64) { p.bottom = m }
func (p *Pad) SetLeftMargin(m float64)   { p.left = m }
func (p *Pad) TopMargin() float64        { return p.top }
func (p *Pad) RightMargin() float64      { return p.right }
func (p *Pad) BottomMargin() float64     { return p.bottom }
func (p *Pad) LeftMargin() float64       { return p.left }

func (p *Pad) SetPad(x1, y1, x2, y2 float64) {
	p.x1, p.y1, p.x2, p.y2 = x1, y1, x2, y2
}

func (p *Pad) SetFillStyle(s engine.FillStyle) { p.fill = s }
func (p *Pad) FillStyle() engine.FillStyle     { return p.fill }
func (p *Pad) SetFillColor(c engine.ColorID)   { p.fillColor = c }

// Divide replaces any sub-pads with an nx by ny grid, numbered from 1
// left to right and top to bottom.
func (p *Pad) Divide(nx, ny int) {
	const gap = 0.01
	nx, ny = max(nx, 1), max(ny, 1)
	p.subpads = nil
	dx, dy := 1/float64(nx), 1/float64(ny)
	n := 1
	for iy := 0; iy < ny; iy++ {
		for ix := 0; ix < nx; ix++ {
			x1 := float64(ix)*dx + gap
			x2 := float64(ix+1)*dx - gap
			y2 := 1 - float64(iy)*dy - gap
			y1 := 1 - float64(iy+1)*dy + gap
			p.subpads = append(p.subpads, newPad(p.canvas, n, x1, y1, x2, y2))
			n++
		}
	}
}

// Pads returns the sub-pads in number order.
func (p *Pad) Pads() []*Pad { return p.subpads }

// Sub returns sub-pad i; 0 is p itself.
func (p *Pad) Sub(i int) (*Pad, error) {
	if i == 0 {
		return p, nil
	}
	if i < 0 || i > len(p.subpads) {
		return nil, fmt.Errorf("pad %d of %d: %w", i, len(p.subpads), engine.ErrNoSuchPad)
	}
	return p.subpads[i-1], nil
}

func (p *Pad) SubPad(i int) (engine.Pad, error) {
	sub, err := p.Sub(i)
	if err != nil {
		return nil, err
	}
	return sub, nil
}

// Cd makes sub-pad i the canvas's current pad.
func (p *Pad) Cd(i int) (engine.Pad, error) {
	sub, err := p.Sub(i)
	if err != nil {
		return nil, err
	}
	if p.canvas != nil {
		p.canvas.current = sub
	}
	return sub, nil
}

// Draw adds obj to the pad. A 2-D histogram drawn without an option is
// drawn as a color map, with room on the right for its palette.
func (p *Pad) Draw(obj Object, option string) {
	if _, ok := obj.(*H2D); ok && option == "" {
		option = "colz"
		p.SetRightMargin(0.15)
	}
	p.prims = append(p.prims, primitive{obj: obj, option: option})
}

// Clear removes everything drawn on the pad.
func (p *Pad) Clear() {
	p.prims = nil
	p.texts = nil
}

// Objects returns what was drawn on the pad, in order.
func (p *Pad) Objects() []Object {
	objs := make([]Object, len(p.prims))
	for i, prim := range p.prims {
		objs[i] = prim.obj
	}
	return objs
}

func (p *Pad) DrawTextNDC(s string, x, y float64, font engine.FontCode, size float64) {
	p.texts = append(p.texts, text{s: s, x: x, y: y, font: font, size: size})
}

func (p *Pad) DrawText(s string, x, y float64, font engine.FontCode, size float64) {
	p.texts = append(p.texts, text{s: s, x: x, y: y, font: font, size: size, user: true})
}
