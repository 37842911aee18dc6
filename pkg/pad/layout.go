package pad

import (
	"errors"
	"fmt"

	"github.com/acaird/rootplot/pkg/engine"
)

// Minification shrinks a split canvas so the panels keep a clean border.
const Minification = 0.95

// DefaultTopFraction is the share of the height given to the top panel.
const DefaultTopFraction = 0.7

var ErrInvalidFraction = errors.New("top fraction must be between 0 and 1")

// Rect is a pad placement in parent NDC.
type Rect struct {
	X1, Y1, X2, Y2 float64
}

// Panel is the placement and margins of one panel of a split.
type Panel struct {
	Rect    Rect
	Margins Margins
}

var (
	topMargins    = Margins{Top: 0, Right: 0.03, Bottom: 0, Left: 0.15}
	bottomMargins = Margins{Top: 0.04, Right: 0.03, Bottom: 0.26, Left: 0.15}
)

// TopBottomGeometry computes the two panels of a top/bottom split in
// which the top panel takes topFraction of the (minified) height. The
// panels share the edge at (1-topFraction)*Minification.
func TopBottomGeometry(topFraction float64) (top, bottom Panel, err error) {
	if !(topFraction > 0 && topFraction < 1) {
		return Panel{}, Panel{}, fmt.Errorf("top fraction %g: %w", topFraction, ErrInvalidFraction)
	}
	edge := (1 - topFraction) * Minification
	top = Panel{
		Rect:    Rect{X1: 0, Y1: edge, X2: Minification, Y2: Minification},
		Margins: topMargins,
	}
	bottom = Panel{
		Rect:    Rect{X1: 0, Y1: 0, X2: Minification, Y2: edge},
		Margins: bottomMargins,
	}
	return top, bottom, nil
}

// DivideTopBottom splits p into a top panel (1) and a bottom panel (2)
// with transparent backgrounds, typically a spectrum over its ratio.
// p is selected as the current pad first.
func DivideTopBottom(p engine.Pad, topFraction float64) (top, bottom engine.Pad, err error) {
	tg, bg, err := TopBottomGeometry(topFraction)
	if err != nil {
		return nil, nil, err
	}
	if _, err := p.Cd(0); err != nil {
		return nil, nil, err
	}
	p.Divide(1, 2)
	if top, err = p.SubPad(1); err != nil {
		return nil, nil, err
	}
	if bottom, err = p.SubPad(2); err != nil {
		return nil, nil, err
	}
	for _, panel := range []struct {
		pad engine.Pad
		geo Panel
	}{{top, tg}, {bottom, bg}} {
		r := panel.geo.Rect
		panel.pad.SetPad(r.X1, r.Y1, r.X2, r.Y2)
		Transparent(panel.pad)
		SetMargins(panel.pad, panel.geo.Margins)
	}
	return top, bottom, nil
}
