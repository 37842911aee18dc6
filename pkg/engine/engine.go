// Package engine declares what rootplot needs from a plotting engine.
// The style, pad and hist packages only talk to these interfaces; the
// canvas package is one implementation of them.
package engine

import "errors"

// ColorID is an engine-native color handle.
type ColorID int

// Stock colors every engine is expected to know by number.
const (
	White ColorID = iota
	Black
	Red
	Green
	Blue
	Yellow
	Magenta
	Cyan
	DarkGreen
	Purple
)

// FontCode is an engine-native font number (font id * 10 + precision).
type FontCode int

const (
	FontHelvetica FontCode = 43
	FontTimes     FontCode = 133
)

// MarkerCode is an engine-native marker number.
type MarkerCode int

const (
	MarkerFilledCircle   MarkerCode = 20
	MarkerFilledSquare   MarkerCode = 21
	MarkerFilledTriangle MarkerCode = 22
	MarkerOpenCircle     MarkerCode = 24
	MarkerOpenSquare     MarkerCode = 25
	MarkerOpenTriangle   MarkerCode = 26
)

// FillStyle is an engine-native fill pattern.
type FillStyle int

const (
	FillHollow FillStyle = 0
	FillSolid  FillStyle = 1001
)

// Axis is the presentation state of one axis of a drawable.
type Axis interface {
	SetTitle(title string)
	Title() string
	CenterTitle(center bool)
	SetTitleOffset(offset float64)
	TitleOffset() float64
	SetTitleSize(size float64)
	SetTitleFont(font FontCode)
	SetLabelOffset(offset float64)
	LabelOffset() float64
	SetLabelSize(size float64)
	SetLabelFont(font FontCode)
	SetMoreLogLabels(more bool)
	SetNoExponent(noExponent bool)
	SetRangeUser(lo, hi float64)
}

// Drawable is anything with axes and line, marker and fill attributes.
type Drawable interface {
	Name() string
	Title() string
	SetTitle(title string)

	XAxis() Axis
	YAxis() Axis
	// ZAxis reports whether the drawable has a third axis at all.
	ZAxis() (Axis, bool)

	SetLineColor(c ColorID)
	SetLineColorAlpha(c ColorID, alpha float64)
	SetMarkerColor(c ColorID)
	SetMarkerColorAlpha(c ColorID, alpha float64)
	SetFillColor(c ColorID)
	SetFillColorAlpha(c ColorID, alpha float64)
	SetMarkerStyle(m MarkerCode)
	SetMarkerSize(size float64)
	SetLineWidth(width float64)
}

// Pad is a plotting region. Sub-pads are numbered from 1; pad 0 is the
// pad itself.
type Pad interface {
	SetLogx(on bool)
	SetLogy(on bool)
	SetLogz(on bool)
	SetGridx(on bool)
	SetGridy(on bool)

	SetMargin(left, right, bottom, top float64)
	SetTopMargin(m float64)
	SetRightMargin(m float64)
	SetBottomMargin(m float64)
	SetLeftMargin(m float64)
	TopMargin() float64
	RightMargin() float64
	BottomMargin() float64
	LeftMargin() float64

	// SetPad places the pad inside its parent in parent NDC.
	SetPad(x1, y1, x2, y2 float64)
	SetFillStyle(s FillStyle)

	Divide(nx, ny int)
	// Cd selects sub-pad i as the current pad and returns it.
	Cd(i int) (Pad, error)
	SubPad(i int) (Pad, error)

	DrawTextNDC(text string, x, y float64, font FontCode, size float64)
	// DrawText places text at (x, y) in the user coordinates of the
	// pad's frame.
	DrawText(text string, x, y float64, font FontCode, size float64)
}

// Histogram is a 1-D binned content store. Bin 0 is underflow and bin
// NBins()+1 is overflow.
type Histogram interface {
	Name() string
	NBins() int
	XMin() float64
	XMax() float64
	BinCenter(i int) float64
	BinContent(i int) float64
	SetBinContent(i int, v float64)
}

// HistogramFactory allocates empty histograms.
type HistogramFactory interface {
	NewH1D(name, title string, nbins int, xmin, xmax float64) Histogram
}

// ColorAllocator turns a normalized RGB triple into a color handle.
// Asking twice for the same triple yields the same handle.
type ColorAllocator interface {
	GetColor(r, g, b float64) ColorID
}

// GlobalStyle is the engine's process-wide default style.
type GlobalStyle interface {
	SetOptStat(mode int)
	SetTitleFont(font FontCode)
	SetTitleSize(size float64)
	SetTitleBorderSize(size int)
	SetLegendFont(font FontCode)
	SetLegendTextSize(size float64)
	SetTitleAlign(align int)
	SetTitleX(x float64)
	SetTitleY(y float64)
	SetTitleW(w float64)
	SetTitleH(h float64)
	SetGridWidth(width float64)
	SetGridStyle(style int)
	SetGridColor(c ColorID)
}

// Gray is the engine's default grid color.
const Gray ColorID = 920

// ErrNoSuchPad is returned when a sub-pad number does not exist.
var ErrNoSuchPad = errors.New("no such pad")
