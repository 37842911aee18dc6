package pad

import "github.com/acaird/rootplot/pkg/engine"

// TextStyle is the font used by Text.
type TextStyle struct {
	Font engine.FontCode
	Size float64
}

var DefaultTextStyle = TextStyle{Font: engine.FontHelvetica, Size: 12}

// Text writes s at (x, y) in pad NDC. A zero TextStyle means
// DefaultTextStyle.
func Text(p engine.Pad, ts TextStyle, s string, x, y float64) {
	if ts == (TextStyle{}) {
		ts = DefaultTextStyle
	}
	p.DrawTextNDC(s, x, y, ts.Font, ts.Size)
}

// TextAt writes s at (x, y) in the user coordinates of the data drawn
// on the pad.
func TextAt(p engine.Pad, ts TextStyle, s string, x, y float64) {
	if ts == (TextStyle{}) {
		ts = DefaultTextStyle
	}
	p.DrawText(s, x, y, ts.Font, ts.Size)
}
