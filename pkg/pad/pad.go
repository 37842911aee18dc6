// Package pad configures plotting regions: log and grid toggles,
// margins, panel splits and text.
package pad

import (
	"strings"

	"github.com/acaird/rootplot/pkg/engine"
	"github.com/acaird/rootplot/pkg/style"
)

// ErrNoSuchPad is returned when moving to a panel that does not exist.
var ErrNoSuchPad = engine.ErrNoSuchPad

// SetLogScale turns logarithmic mode on or off for each axis named in
// axes ("x", "xy", "XYZ", ...). Axes not named are left alone.
func SetLogScale(p engine.Pad, axes string, enabled bool) {
	for _, a := range style.ParseAxes(axes) {
		switch a {
		case style.X:
			p.SetLogx(enabled)
		case style.Y:
			p.SetLogy(enabled)
		case style.Z:
			p.SetLogz(enabled)
		}
	}
}

// LogOff makes every axis linear.
func LogOff(p engine.Pad) {
	SetLogScale(p, "xyz", false)
}

// SetGrid turns grid lines on or off along the x and/or y axes named in
// axes. A z in axes is ignored.
func SetGrid(p engine.Pad, axes string, enabled bool) {
	axes = strings.ToLower(axes)
	if strings.Contains(axes, "x") {
		p.SetGridx(enabled)
	}
	if strings.Contains(axes, "y") {
		p.SetGridy(enabled)
	}
}

func GridOff(p engine.Pad) {
	SetGrid(p, "xy", false)
}

// Margins are pad margins as fractions of the pad size.
type Margins struct {
	Top, Right, Bottom, Left float64
}

var DefaultMargins = Margins{Top: 0.1, Right: 0.05, Bottom: 0.1, Left: 0.1}

func SetMargins(p engine.Pad, m Margins) {
	p.SetMargin(m.Left, m.Right, m.Bottom, m.Top)
}

func GetMargins(p engine.Pad) Margins {
	return Margins{
		Top:    p.TopMargin(),
		Right:  p.RightMargin(),
		Bottom: p.BottomMargin(),
		Left:   p.LeftMargin(),
	}
}

func SetTopMargin(p engine.Pad, m float64)    { p.SetTopMargin(m) }
func SetRightMargin(p engine.Pad, m float64)  { p.SetRightMargin(m) }
func SetBottomMargin(p engine.Pad, m float64) { p.SetBottomMargin(m) }
func SetLeftMargin(p engine.Pad, m float64)   { p.SetLeftMargin(m) }
func TopMargin(p engine.Pad) float64          { return p.TopMargin() }
func RightMargin(p engine.Pad) float64        { return p.RightMargin() }
func BottomMargin(p engine.Pad) float64       { return p.BottomMargin() }
func LeftMargin(p engine.Pad) float64         { return p.LeftMargin() }

// Transparent stops the pad from painting its background.
func Transparent(p engine.Pad) {
	p.SetFillStyle(engine.FillHollow)
}

// DivideGrid splits p into nx columns and ny rows of panels.
func DivideGrid(p engine.Pad, nx, ny int) {
	p.Divide(nx, ny)
}

// MoveToPanel selects panel i of p for drawing; 0 selects p itself.
func MoveToPanel(p engine.Pad, i int) (engine.Pad, error) {
	return p.Cd(i)
}
