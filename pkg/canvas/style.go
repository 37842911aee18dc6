package canvas

import (
	"github.com/acaird/rootplot/pkg/engine"
)

// Style is the engine wide default style. The renderer reads it for
// titles, legends and grids.
type Style struct {
	OptStat         int
	TitleFont       engine.FontCode
	TitleSize       float64
	TitleBorderSize int
	LegendFont      engine.FontCode
	LegendTextSize  float64
	TitleAlign      int
	TitleX          float64
	TitleY          float64
	TitleW          float64
	TitleH          float64
	GridWidth       float64
	GridStyle       int
	GridColor       engine.ColorID
}

// NewStyle returns the engine's built-in defaults, before any
// rootplot styling is applied.
func NewStyle() *Style {
	return &Style{
		OptStat:         1,
		TitleFont:       42,
		TitleSize:       0.05,
		TitleBorderSize: 2,
		LegendFont:      42,
		LegendTextSize:  0.035,
		TitleAlign:      13,
		TitleX:          0.01,
		TitleY:          0.995,
		GridWidth:       1,
		GridStyle:       3,
		GridColor:       engine.Black,
	}
}

func (s *Style) SetOptStat(mode int)                { s.OptStat = mode }
func (s *Style) SetTitleFont(font engine.FontCode)  { s.TitleFont = font }
func (s *Style) SetTitleSize(size float64)          { s.TitleSize = size }
func (s *Style) SetTitleBorderSize(size int)        { s.TitleBorderSize = size }
func (s *Style) SetLegendFont(font engine.FontCode) { s.LegendFont = font }
func (s *Style) SetLegendTextSize(size float64)     { s.LegendTextSize = size }
func (s *Style) SetTitleAlign(align int)            { s.TitleAlign = align }
func (s *Style) SetTitleX(x float64)                { s.TitleX = x }
func (s *Style) SetTitleY(y float64)                { s.TitleY = y }
func (s *Style) SetTitleW(w float64)                { s.TitleW = w }
func (s *Style) SetTitleH(h float64)                { s.TitleH = h }
func (s *Style) SetGridWidth(width float64)         { s.GridWidth = width }
func (s *Style) SetGridStyle(style int)             { s.GridStyle = style }
func (s *Style) SetGridColor(c engine.ColorID)      { s.GridColor = c }
