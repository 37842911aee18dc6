package canvas

import (
	"github.com/acaird/rootplot/pkg/engine"
)

// LegendEntry is one line of a legend. Option holds any of 'l' (line),
// 'p' (marker) and 'f' (fill box).
type LegendEntry struct {
	Object engine.Drawable
	Label  string
	Option string
}

// Legend is a box of entries placed in pad NDC.
type Legend struct {
	X1, Y1, X2, Y2 float64
	entries        []LegendEntry
}

func NewLegend(x1, y1, x2, y2 float64) *Legend {
	return &Legend{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// DefaultLegend returns a legend in the top right corner.
func DefaultLegend() *Legend {
	return NewLegend(0.7, 0.8, 0.9, 0.9)
}

func (l *Legend) Name() string { return "legend" }

func (l *Legend) AddEntry(obj engine.Drawable, label, option string) {
	l.entries = append(l.entries, LegendEntry{Object: obj, Label: label, Option: option})
}

// Add adds an entry per object, labelled with its title or, failing
// that, its name. Graphs are always shown with a marker; 1-D histograms
// get a line and marker on top of option.
func (l *Legend) Add(option string, objs ...engine.Drawable) {
	for _, obj := range objs {
		label := obj.Title()
		if label == "" {
			label = obj.Name()
		}
		if label == "" {
			label = "No title"
		}
		opt := option
		switch obj.(type) {
		case *Graph:
			opt = "p"
		case *H1D:
			opt += "lp"
		}
		l.AddEntry(obj, label, opt)
	}
}

func (l *Legend) Entries() []LegendEntry {
	return l.entries
}
