package canvas

import (
	"github.com/acaird/rootplot/pkg/engine"
)

// Graph is a sequence of (x, y) points drawn as a curve.
type Graph struct {
	attributes
	xs, ys []float64
}

func NewGraph(name string, xs, ys []float64) *Graph {
	g := &Graph{attributes: newAttributes(name, "")}
	for i := 0; i < min(len(xs), len(ys)); i++ {
		g.AddPoint(xs[i], ys[i])
	}
	return g
}

// ZAxis always reports false; graphs are two dimensional.
func (g *Graph) ZAxis() (engine.Axis, bool) { return nil, false }

// N returns the number of points.
func (g *Graph) N() int { return len(g.xs) }

// SetPoint sets point i, growing the graph with zero points as needed.
func (g *Graph) SetPoint(i int, x, y float64) {
	for len(g.xs) <= i {
		g.xs = append(g.xs, 0)
		g.ys = append(g.ys, 0)
	}
	g.xs[i], g.ys[i] = x, y
}

func (g *Graph) AddPoint(x, y float64) { g.SetPoint(g.N(), x, y) }

// Point returns point i.
func (g *Graph) Point(i int) (x, y float64) { return g.xs[i], g.ys[i] }

func (g *Graph) extent() (xlo, xhi, ylo, yhi float64, ok bool) {
	if len(g.xs) == 0 {
		return 0, 0, 0, 0, false
	}
	xlo, xhi, ylo, yhi = g.xs[0], g.xs[0], g.ys[0], g.ys[0]
	for i := range g.xs {
		xlo, xhi = min(xlo, g.xs[i]), max(xhi, g.xs[i])
		ylo, yhi = min(ylo, g.ys[i]), max(yhi, g.ys[i])
	}
	return xlo, xhi, ylo, yhi, true
}
