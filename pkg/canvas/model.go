package canvas

import (
	"github.com/acaird/rootplot/pkg/engine"
)

// Axis holds the presentation state of one axis.
type Axis struct {
	title       string
	centered    bool
	titleOffset float64
	titleSize   float64
	titleFont   engine.FontCode
	labelOffset float64
	labelSize   float64
	labelFont   engine.FontCode
	moreLog     bool
	noExponent  bool
	lo, hi      float64
	hasRange    bool
}

func newAxis() *Axis {
	return &Axis{
		titleOffset: 1,
		titleSize:   0.035,
		titleFont:   42,
		labelOffset: 0.005,
		labelSize:   0.035,
		labelFont:   42,
	}
}

func (a *Axis) SetTitle(title string)             { a.title = title }
func (a *Axis) Title() string                     { return a.title }
func (a *Axis) CenterTitle(center bool)           { a.centered = center }
func (a *Axis) TitleCentered() bool               { return a.centered }
func (a *Axis) SetTitleOffset(offset float64)     { a.titleOffset = offset }
func (a *Axis) TitleOffset() float64              { return a.titleOffset }
func (a *Axis) SetTitleSize(size float64)         { a.titleSize = size }
func (a *Axis) TitleSize() float64                { return a.titleSize }
func (a *Axis) SetTitleFont(font engine.FontCode) { a.titleFont = font }
func (a *Axis) TitleFont() engine.FontCode        { return a.titleFont }
func (a *Axis) SetLabelOffset(offset float64)     { a.labelOffset = offset }
func (a *Axis) LabelOffset() float64              { return a.labelOffset }
func (a *Axis) SetLabelSize(size float64)         { a.labelSize = size }
func (a *Axis) LabelSize() float64                { return a.labelSize }
func (a *Axis) SetLabelFont(font engine.FontCode) { a.labelFont = font }
func (a *Axis) LabelFont() engine.FontCode        { return a.labelFont }
func (a *Axis) SetMoreLogLabels(more bool)        { a.moreLog = more }
func (a *Axis) MoreLogLabels() bool               { return a.moreLog }
func (a *Axis) SetNoExponent(noExponent bool)     { a.noExponent = noExponent }
func (a *Axis) NoExponent() bool                  { return a.noExponent }

// SetRangeUser restricts the displayed range to [lo, hi].
func (a *Axis) SetRangeUser(lo, hi float64) {
	if lo > hi {
		lo, hi = hi, lo
	}
	a.lo, a.hi, a.hasRange = lo, hi, true
}

// RangeUser returns the range set with SetRangeUser, if any.
func (a *Axis) RangeUser() (lo, hi float64, ok bool) {
	return a.lo, a.hi, a.hasRange
}

// attributes is the line, marker and fill state shared by every
// drawable.
type attributes struct {
	name  string
	title string
	x, y  *Axis

	lineColor   engine.ColorID
	lineAlpha   float64
	markerColor engine.ColorID
	markerAlpha float64
	fillColor   engine.ColorID
	fillAlpha   float64
	filled      bool
	markerStyle engine.MarkerCode
	markerSize  float64
	lineWidth   float64
}

func newAttributes(name, title string) attributes {
	return attributes{
		name:        name,
		title:       title,
		x:           newAxis(),
		y:           newAxis(),
		lineColor:   engine.Black,
		lineAlpha:   1,
		markerColor: engine.Black,
		markerAlpha: 1,
		fillColor:   engine.White,
		fillAlpha:   1,
		markerStyle: 1,
		markerSize:  1,
		lineWidth:   1,
	}
}

func (a *attributes) Name() string          { return a.name }
func (a *attributes) SetName(name string)   { a.name = name }
func (a *attributes) Title() string         { return a.title }
func (a *attributes) SetTitle(title string) { a.title = title }
func (a *attributes) XAxis() engine.Axis    { return a.x }
func (a *attributes) YAxis() engine.Axis    { return a.y }

// X and Y return the concrete axes for the renderer.
func (a *attributes) X() *Axis { return a.x }
func (a *attributes) Y() *Axis { return a.y }

func (a *attributes) SetLineColor(c engine.ColorID) { a.lineColor, a.lineAlpha = c, 1 }
func (a *attributes) SetLineColorAlpha(c engine.ColorID, alpha float64) {
	a.lineColor, a.lineAlpha = c, alpha
}
func (a *attributes) LineColor() (engine.ColorID, float64) { return a.lineColor, a.lineAlpha }

func (a *attributes) SetMarkerColor(c engine.ColorID) { a.markerColor, a.markerAlpha = c, 1 }
func (a *attributes) SetMarkerColorAlpha(c engine.ColorID, alpha float64) {
	a.markerColor, a.markerAlpha = c, alpha
}
func (a *attributes) MarkerColor() (engine.ColorID, float64) { return a.markerColor, a.markerAlpha }

func (a *attributes) SetFillColor(c engine.ColorID) {
	a.fillColor, a.fillAlpha, a.filled = c, 1, true
}
func (a *attributes) SetFillColorAlpha(c engine.ColorID, alpha float64) {
	a.fillColor, a.fillAlpha, a.filled = c, alpha, true
}

// FillColor reports the fill color and whether one was ever set.
func (a *attributes) FillColor() (engine.ColorID, float64, bool) {
	return a.fillColor, a.fillAlpha, a.filled
}

func (a *attributes) SetMarkerStyle(m engine.MarkerCode) { a.markerStyle = m }
func (a *attributes) MarkerStyle() engine.MarkerCode     { return a.markerStyle }
func (a *attributes) SetMarkerSize(size float64)         { a.markerSize = size }
func (a *attributes) MarkerSize() float64                { return a.markerSize }
func (a *attributes) SetLineWidth(width float64)         { a.lineWidth = width }
func (a *attributes) LineWidth() float64                 { return a.lineWidth }
