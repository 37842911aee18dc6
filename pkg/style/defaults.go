package style

import "github.com/acaird/rootplot/pkg/engine"

// InitializeDefaultStyle sets the process-wide defaults: no statistics
// box, a borderless title in the top left, helvetica titles and
// legends, and dotted gray grid lines. Call it once before drawing.
func InitializeDefaultStyle(g engine.GlobalStyle) {
	g.SetOptStat(0)

	g.SetTitleFont(DefaultFont)
	g.SetTitleSize(DefaultFontSize)
	g.SetTitleBorderSize(0)
	g.SetTitleAlign(12)
	g.SetTitleX(0.1)
	g.SetTitleY(0.925)
	g.SetTitleW(0.85)
	g.SetTitleH(0.05)

	g.SetLegendFont(DefaultFont)
	g.SetLegendTextSize(DefaultFontSize)

	g.SetGridWidth(1)
	g.SetGridStyle(3)
	g.SetGridColor(engine.Gray)
}
