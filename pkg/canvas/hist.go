package canvas

import (
	"fmt"
	"math"

	"github.com/acaird/rootplot/pkg/engine"
	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
)

// H1D is a one dimensional histogram with fixed width bins. Bin 0 is
// underflow and bin NBins()+1 is overflow.
type H1D struct {
	attributes
	nbins      int
	xmin, xmax float64
	edges      []float64
	contents   []float64
}

func NewH1D(name, title string, nbins int, xmin, xmax float64) *H1D {
	if nbins < 1 {
		nbins = 1
	}
	return &H1D{
		attributes: newAttributes(name, title),
		nbins:      nbins,
		xmin:       xmin,
		xmax:       xmax,
		edges:      vec.Linspace(xmin, xmax, nbins+1),
		contents:   make([]float64, nbins+2),
	}
}

func (h *H1D) ZAxis() (engine.Axis, bool) { return nil, false }

func (h *H1D) NBins() int     { return h.nbins }
func (h *H1D) XMin() float64  { return h.xmin }
func (h *H1D) XMax() float64  { return h.xmax }
func (h *H1D) width() float64 { return (h.XMax() - h.XMin()) / float64(h.nbins) }

// BinLowEdge returns the lower edge of bin i.
func (h *H1D) BinLowEdge(i int) float64 {
	if i >= 1 && i <= h.nbins {
		return h.edges[i-1]
	}
	return h.XMin() + float64(i-1)*h.width()
}

func (h *H1D) BinCenter(i int) float64 {
	return h.XMin() + (float64(i)-0.5)*h.width()
}

func (h *H1D) BinContent(i int) float64 {
	if i < 0 || i > h.nbins+1 {
		return 0
	}
	return h.contents[i]
}

func (h *H1D) SetBinContent(i int, v float64) {
	if i < 0 || i > h.nbins+1 {
		return
	}
	h.contents[i] = v
}

// FindBin returns the bin x falls into, including under- and overflow.
// NaN goes to the underflow bin.
func (h *H1D) FindBin(x float64) int {
	switch {
	case x < h.XMin() || math.IsNaN(x):
		return 0
	case x >= h.XMax():
		return h.nbins + 1
	}
	return 1 + int((x-h.XMin())/h.width())
}

// Fill adds one entry at x.
func (h *H1D) Fill(x float64) {
	h.contents[h.FindBin(x)]++
}

// Mean is the content-weighted mean of the bin centers, ignoring under-
// and overflow.
func (h *H1D) Mean() float64 {
	s := stats.Sample{
		Xs:      make([]float64, h.nbins),
		Weights: make([]float64, h.nbins),
	}
	var total float64
	for i := 1; i <= h.nbins; i++ {
		s.Xs[i-1] = h.BinCenter(i)
		s.Weights[i-1] = math.Abs(h.contents[i])
		total += s.Weights[i-1]
	}
	if total == 0 {
		return math.NaN()
	}
	return s.Mean()
}

func (h *H1D) String() string {
	return fmt.Sprintf("%s: nbins = %d xmin = %g xmax = %g", h.name, h.nbins, h.XMin(), h.XMax())
}

func (h *H1D) extent() (xlo, xhi, ylo, yhi float64, ok bool) {
	ylo, yhi = 0, 0
	for i := 1; i <= h.nbins; i++ {
		ylo, yhi = min(ylo, h.contents[i]), max(yhi, h.contents[i])
	}
	if yhi == ylo {
		yhi = ylo + 1
	}
	return h.XMin(), h.XMax(), ylo, yhi * 1.05, true
}

// H2D is a two dimensional histogram. It has a z axis for the content.
type H2D struct {
	attributes
	z        *Axis
	nx, ny   int
	xmin     float64
	xmax     float64
	ymin     float64
	ymax     float64
	contents [][]float64
}

func NewH2D(name, title string, nx int, xmin, xmax float64, ny int, ymin, ymax float64) *H2D {
	nx, ny = max(nx, 1), max(ny, 1)
	contents := make([][]float64, nx+2)
	for i := range contents {
		contents[i] = make([]float64, ny+2)
	}
	return &H2D{
		attributes: newAttributes(name, title),
		z:          newAxis(),
		nx:         nx,
		ny:         ny,
		xmin:       xmin,
		xmax:       xmax,
		ymin:       ymin,
		ymax:       ymax,
		contents:   contents,
	}
}

func (h *H2D) ZAxis() (engine.Axis, bool) { return h.z, true }

// Z returns the concrete z axis for the renderer.
func (h *H2D) Z() *Axis { return h.z }

func (h *H2D) NBinsX() int { return h.nx }
func (h *H2D) NBinsY() int { return h.ny }

func findBin(x, lo, hi float64, n int) int {
	switch {
	case x < lo:
		return 0
	case x >= hi:
		return n + 1
	}
	return 1 + int((x-lo)/(hi-lo)*float64(n))
}

func (h *H2D) Fill(x, y float64) {
	h.contents[findBin(x, h.xmin, h.xmax, h.nx)][findBin(y, h.ymin, h.ymax, h.ny)]++
}

func (h *H2D) BinContent(ix, iy int) float64 {
	if ix < 0 || ix > h.nx+1 || iy < 0 || iy > h.ny+1 {
		return 0
	}
	return h.contents[ix][iy]
}

func (h *H2D) SetBinContent(ix, iy int, v float64) {
	if ix < 0 || ix > h.nx+1 || iy < 0 || iy > h.ny+1 {
		return
	}
	h.contents[ix][iy] = v
}

// contentRange returns the smallest and largest in-range bin contents.
func (h *H2D) contentRange() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for ix := 1; ix <= h.nx; ix++ {
		for iy := 1; iy <= h.ny; iy++ {
			lo, hi = min(lo, h.contents[ix][iy]), max(hi, h.contents[ix][iy])
		}
	}
	return lo, hi
}

func (h *H2D) extent() (xlo, xhi, ylo, yhi float64, ok bool) {
	return h.xmin, h.xmax, h.ymin, h.ymax, true
}
