// Package style applies labels, fonts, markers and colors to drawables.
//
// Every operation borrows the drawable for the duration of the call and
// can be used on its own. Operations on the z axis do nothing on
// drawables that have no z axis.
package style

import (
	"fmt"

	"github.com/acaird/rootplot/pkg/engine"
)

// HiddenOffset is the label and title offset that pushes an axis's
// text off the pad.
const HiddenOffset = 999

// Plot styles one drawable.
type Plot struct {
	d           engine.Drawable
	fontSizeSet bool
}

func New(d engine.Drawable) *Plot {
	return &Plot{d: d}
}

// Drawable returns the drawable being styled.
func (p *Plot) Drawable() engine.Drawable {
	return p.d
}

// HasZAxis reports whether the drawable has a z axis.
func (p *Plot) HasZAxis() bool {
	_, ok := p.d.ZAxis()
	return ok
}

func (p *Plot) axis(a Axis) (engine.Axis, bool) {
	switch a {
	case X:
		return p.d.XAxis(), true
	case Y:
		return p.d.YAxis(), true
	case Z:
		return p.d.ZAxis()
	}
	return nil, false
}

// axes returns the x and y axes, plus z if there is one.
func (p *Plot) axes() []engine.Axis {
	axes := []engine.Axis{p.d.XAxis(), p.d.YAxis()}
	if z, ok := p.d.ZAxis(); ok {
		axes = append(axes, z)
	}
	return axes
}

// SetAxisLabel sets an axis title and whether it is centered.
func (p *Plot) SetAxisLabel(a Axis, text string, centered bool) {
	ax, ok := p.axis(a)
	if !ok {
		return
	}
	ax.SetTitle(text)
	ax.CenterTitle(centered)
}

func (p *Plot) XLabel(text string) { p.SetAxisLabel(X, text, false) }
func (p *Plot) YLabel(text string) { p.SetAxisLabel(Y, text, false) }
func (p *Plot) ZLabel(text string) { p.SetAxisLabel(Z, text, false) }

// XYLabels sets the x and y titles.
func (p *Plot) XYLabels(x, y string) {
	p.XLabel(x)
	p.YLabel(y)
}

// Labels sets all three titles.
func (p *Plot) Labels(x, y, z string) {
	p.XLabel(x)
	p.YLabel(y)
	p.ZLabel(z)
}

// SetAxisOffset sets the distance of an axis title from its axis.
func (p *Plot) SetAxisOffset(a Axis, offset float64) {
	if ax, ok := p.axis(a); ok {
		ax.SetTitleOffset(offset)
	}
}

func (p *Plot) XYOffset(x, y float64) {
	p.SetAxisOffset(X, x)
	p.SetAxisOffset(Y, y)
}

func (p *Plot) XYZOffset(x, y, z float64) {
	p.XYOffset(x, y)
	p.SetAxisOffset(Z, z)
}

func (p *Plot) applyFontSize(pixels int) {
	for _, ax := range p.axes() {
		ax.SetLabelSize(float64(pixels))
		ax.SetTitleSize(float64(pixels))
	}
}

// SetFontSize sets label and title sizes of every axis. Once called,
// ApplyFont no longer applies its default size.
func (p *Plot) SetFontSize(pixels int) {
	p.applyFontSize(pixels)
	p.fontSizeSet = true
}

// FontSizeSet reports whether SetFontSize was called.
func (p *Plot) FontSizeSet() bool {
	return p.fontSizeSet
}

// ApplyFont sets label and title fonts of every axis to the family
// named by font (see ParseFontFamily). Unless a size was set with
// SetFontSize, DefaultFontSize is applied too.
func (p *Plot) ApplyFont(font string) error {
	family, err := ParseFontFamily(font)
	if err != nil {
		return err
	}
	code := family.Code()
	for _, ax := range p.axes() {
		ax.SetLabelFont(code)
		ax.SetTitleFont(code)
	}
	if !p.fontSizeSet {
		p.applyFontSize(DefaultFontSize)
	}
	return nil
}

// ApplyFontSpec applies a font family and an explicit size.
func (p *Plot) ApplyFontSpec(f FontSpec) error {
	if f.SizePixels > 0 {
		p.SetFontSize(f.SizePixels)
	}
	return p.ApplyFont(string(f.Family))
}

func (p *Plot) SetMarker(m MarkerSpec) error {
	code, err := m.Code()
	if err != nil {
		return err
	}
	p.d.SetMarkerStyle(code)
	return nil
}

func (p *Plot) SetMarkerSize(size float64) { p.d.SetMarkerSize(size) }
func (p *Plot) SetLineWidth(width float64) { p.d.SetLineWidth(width) }
func (p *Plot) SetTitle(title string)      { p.d.SetTitle(title) }

// CenterAllAxisTitles centers the title of every axis.
func (p *Plot) CenterAllAxisTitles() {
	for _, ax := range p.axes() {
		ax.CenterTitle(true)
	}
}

// HideXAxis moves the x axis labels and title out of sight.
func (p *Plot) HideXAxis() {
	x := p.d.XAxis()
	x.SetLabelOffset(HiddenOffset)
	x.SetTitleOffset(HiddenOffset)
}

// SetRange restricts the displayed range of an axis.
func (p *Plot) SetRange(a Axis, lo, hi float64) {
	if ax, ok := p.axis(a); ok {
		ax.SetRangeUser(lo, hi)
	}
}

// SetXYRange restricts x to [xlo, xhi] and y to [ylo, yhi].
func (p *Plot) SetXYRange(xlo, xhi, ylo, yhi float64) {
	p.SetRange(X, xlo, xhi)
	p.SetRange(Y, ylo, yhi)
}

// MoreLogLabels labels more ticks on the logarithmic x and/or y axes
// named in axes, e.g. "xy".
func (p *Plot) MoreLogLabels(axes string) {
	for _, a := range ParseAxes(axes) {
		if a == Z {
			continue
		}
		if ax, ok := p.axis(a); ok {
			ax.SetMoreLogLabels(true)
		}
	}
}

// NoExponent prints tick labels of the named axes without exponents.
func (p *Plot) NoExponent(axes string) {
	for _, a := range ParseAxes(axes) {
		if ax, ok := p.axis(a); ok {
			ax.SetNoExponent(true)
		}
	}
}

func (p *Plot) String() string {
	return fmt.Sprintf("style(%s)", p.d.Name())
}
