package canvas

import (
	"context"
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/acaird/rootplot/pkg/engine"
	"github.com/acaird/rootplot/pkg/logging"
	"github.com/aclements/go-gg/palette"
	"github.com/aclements/go-moremath/scale"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
	"go.uber.org/zap"
)

// rect is a pixel rectangle, y growing downwards.
type rect struct {
	x, y, w, h float64
}

// sub returns the part of r covered by the NDC box (x1,y1)-(x2,y2).
func (r rect) sub(x1, y1, x2, y2 float64) rect {
	return rect{
		x: r.x + x1*r.w,
		y: r.y + (1-y2)*r.h,
		w: (x2 - x1) * r.w,
		h: (y2 - y1) * r.h,
	}
}

// at converts NDC to pixels.
func (r rect) at(x, y float64) (float64, float64) {
	return r.x + x*r.w, r.y + (1-y)*r.h
}

// frame is the data area of a pad and the ranges mapped onto it.
type frame struct {
	rect
	xlo, xhi   float64
	ylo, yhi   float64
	logx, logy bool
}

func project(v, lo, hi float64, log bool) float64 {
	if log {
		v = math.Log10(max(v, lo))
		lo, hi = math.Log10(lo), math.Log10(hi)
	}
	return (v - lo) / (hi - lo)
}

func (f frame) mapX(v float64) float64 {
	return f.x + project(v, f.xlo, f.xhi, f.logx)*f.w
}

func (f frame) mapY(v float64) float64 {
	return f.y + f.h - project(v, f.ylo, f.yhi, f.logy)*f.h
}

func (f frame) contains(x, y float64) bool {
	return x >= f.xlo && x <= f.xhi && y >= f.ylo && y <= f.yhi
}

type extenter interface {
	extent() (xlo, xhi, ylo, yhi float64, ok bool)
}

type axesHolder interface {
	X() *Axis
	Y() *Axis
}

// styled is the attribute state the renderer reads off a drawable.
type styled interface {
	LineColor() (engine.ColorID, float64)
	MarkerColor() (engine.ColorID, float64)
	FillColor() (engine.ColorID, float64, bool)
	MarkerStyle() engine.MarkerCode
	MarkerSize() float64
	LineWidth() float64
}

type renderer struct {
	gc     *draw2dimg.GraphicContext
	pal    *Palette
	style  *Style
	logger *zap.Logger
}

var black = color.RGBA{0, 0, 0, 255}

// Render draws the canvas, its pads and everything on them.
func (c *Canvas) Render(ctx context.Context) *image.RGBA {
	logger := logging.From(ctx)
	imageData := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	gc := draw2dimg.NewGraphicContext(imageData)
	gc.SetDPI(72)
	registerFonts()

	r := &renderer{gc: gc, pal: c.engine.Palette, style: c.engine.Style, logger: logger}
	r.drawPad(c.Pad, rect{0, 0, float64(c.width), float64(c.height)})
	return imageData
}

func (r *renderer) drawPad(p *Pad, parent rect) {
	gc := r.gc
	area := parent.sub(p.x1, p.y1, p.x2, p.y2)
	if p.fill != engine.FillHollow {
		gc.SetFillColor(r.pal.Color(p.fillColor, 1))
		draw2dkit.Rectangle(gc, area.x, area.y, area.x+area.w, area.y+area.h)
		gc.Fill()
	}
	r.drawContents(p, area)
	for _, sub := range p.subpads {
		r.drawPad(sub, area)
	}
}

func (r *renderer) drawContents(p *Pad, area rect) {
	f := frame{
		rect: rect{
			x: area.x + p.left*area.w,
			y: area.y + p.top*area.h,
			w: area.w * (1 - p.left - p.right),
			h: area.h * (1 - p.top - p.bottom),
		},
		logx: p.logx,
		logy: p.logy,
	}

	framed := false
	var axes axesHolder
	for _, prim := range p.prims {
		_, hasExtent := prim.obj.(extenter)
		if a, ok := prim.obj.(axesHolder); ok && hasExtent {
			axes = a
			break
		}
	}
	if axes != nil && f.w > 0 && f.h > 0 && r.computeRange(&f, p.prims, axes) {
		framed = true
		xMajor, xMinor := ticks(f.xlo, f.xhi, f.logx, axes.X().MoreLogLabels())
		yMajor, yMinor := ticks(f.ylo, f.yhi, f.logy, axes.Y().MoreLogLabels())
		r.drawGrid(f, p.gridx, p.gridy, xMajor, yMajor)
		for _, prim := range p.prims {
			switch obj := prim.obj.(type) {
			case *Graph:
				r.drawGraph(f, obj, prim.option)
			case *H1D:
				r.drawH1D(f, obj, prim.option)
			case *H2D:
				r.drawH2D(f, area, obj, p.logz)
			}
		}
		r.drawFrame(f, xMajor, xMinor, yMajor, yMinor)
		r.drawAxisLabels(f, area, axes.X(), axes.Y(), xMajor, yMajor)
		if d, ok := axes.(engine.Drawable); ok {
			r.drawTitle(area, d.Title())
		}
	}

	for _, prim := range p.prims {
		if l, ok := prim.obj.(*Legend); ok {
			r.drawLegend(area, l)
		}
	}
	for _, t := range p.texts {
		x, y := area.at(t.x, t.y)
		if t.user {
			if !framed {
				r.logger.Debug("no frame for text in user coordinates", zap.String("text", t.s))
				continue
			}
			x, y = f.mapX(t.x), f.mapY(t.y)
		}
		r.setFont(t.font, t.size, area.h, black)
		r.gc.FillStringAt(t.s, x, y)
	}
}

// computeRange fills in the frame's data ranges from everything drawn,
// then applies the user ranges of the first drawable's axes.
func (r *renderer) computeRange(f *frame, prims []primitive, axes axesHolder) bool {
	found := false
	for _, prim := range prims {
		e, ok := prim.obj.(extenter)
		if !ok {
			continue
		}
		xlo, xhi, ylo, yhi, ok := e.extent()
		if !ok {
			continue
		}
		if !found {
			f.xlo, f.xhi, f.ylo, f.yhi = xlo, xhi, ylo, yhi
			found = true
			continue
		}
		f.xlo, f.xhi = min(f.xlo, xlo), max(f.xhi, xhi)
		f.ylo, f.yhi = min(f.ylo, ylo), max(f.yhi, yhi)
	}
	if !found {
		return false
	}
	if lo, hi, ok := axes.X().RangeUser(); ok {
		f.xlo, f.xhi = lo, hi
	}
	if lo, hi, ok := axes.Y().RangeUser(); ok {
		f.ylo, f.yhi = lo, hi
	}
	f.xlo, f.xhi = fixRange(f.xlo, f.xhi, f.logx)
	f.ylo, f.yhi = fixRange(f.ylo, f.yhi, f.logy)
	r.logger.Debug("pad range",
		zap.Float64("xlo", f.xlo), zap.Float64("xhi", f.xhi),
		zap.Float64("ylo", f.ylo), zap.Float64("yhi", f.yhi))
	return true
}

// fixRange makes [lo, hi] non-empty and, for log axes, positive.
func fixRange(lo, hi float64, log bool) (float64, float64) {
	if log {
		if hi <= 0 {
			hi = 1
		}
		if lo <= 0 {
			lo = hi * 1e-3
		}
	}
	if lo == hi {
		if log {
			return lo / 10, hi * 10
		}
		return lo - 1, hi + 1
	}
	return lo, hi
}

// ticks returns the major and minor tick positions in [lo, hi].
func ticks(lo, hi float64, log, moreLog bool) (major, minor []float64) {
	if !log {
		s := scale.Linear{Min: lo, Max: hi}
		ma, mi := s.Ticks(scale.TickOptions{Max: 8})
		return inside(ma, lo, hi), inside(mi, lo, hi)
	}
	for e := math.Floor(math.Log10(lo)); e <= math.Ceil(math.Log10(hi)); e++ {
		decade := math.Pow(10, e)
		for m := 1; m <= 9; m++ {
			v := float64(m) * decade
			if v < lo || v > hi {
				continue
			}
			if m == 1 || (moreLog && (m == 2 || m == 5)) {
				major = append(major, v)
			} else {
				minor = append(minor, v)
			}
		}
	}
	return major, minor
}

func inside(vs []float64, lo, hi float64) []float64 {
	out := vs[:0:0]
	eps := (hi - lo) * 1e-9
	for _, v := range vs {
		if v >= lo-eps && v <= hi+eps {
			out = append(out, v)
		}
	}
	return out
}

func formatTick(v float64, noExponent bool) string {
	s := strconv.FormatFloat(v, 'g', 6, 64)
	if noExponent && strings.Contains(s, "e") {
		s = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return s
}

func (r *renderer) setFont(code engine.FontCode, size, padHeight float64, c color.Color) float64 {
	px := fontPixels(code, size, padHeight)
	r.gc.SetFontData(fontData(code))
	r.gc.SetFontSize(px)
	r.gc.SetFillColor(c)
	return px
}

func (r *renderer) textWidth(s string) float64 {
	left, _, right, _ := r.gc.GetStringBounds(s)
	return right - left
}

func (r *renderer) drawGrid(f frame, gridx, gridy bool, xMajor, yMajor []float64) {
	if !gridx && !gridy {
		return
	}
	gc := r.gc
	gc.SetStrokeColor(r.pal.Color(r.style.GridColor, 1))
	gc.SetLineWidth(r.style.GridWidth)
	if r.style.GridStyle > 1 {
		gc.SetLineDash([]float64{2, 3}, 0)
	}
	if gridx {
		for _, v := range xMajor {
			x := f.mapX(v)
			gc.MoveTo(x, f.y)
			gc.LineTo(x, f.y+f.h)
			gc.Stroke()
		}
	}
	if gridy {
		for _, v := range yMajor {
			y := f.mapY(v)
			gc.MoveTo(f.x, y)
			gc.LineTo(f.x+f.w, y)
			gc.Stroke()
		}
	}
	gc.SetLineDash(nil, 0)
}

func (r *renderer) drawFrame(f frame, xMajor, xMinor, yMajor, yMinor []float64) {
	gc := r.gc
	gc.SetStrokeColor(black)
	gc.SetLineWidth(1)
	draw2dkit.Rectangle(gc, f.x, f.y, f.x+f.w, f.y+f.h)
	gc.Stroke()

	majorLen, minorLen := 0.03*f.h, 0.015*f.h
	tic := func(vs []float64, length float64, horizontal bool) {
		for _, v := range vs {
			if horizontal {
				x := f.mapX(v)
				gc.MoveTo(x, f.y+f.h)
				gc.LineTo(x, f.y+f.h-length)
			} else {
				y := f.mapY(v)
				gc.MoveTo(f.x, y)
				gc.LineTo(f.x+length, y)
			}
			gc.Stroke()
		}
	}
	tic(xMajor, majorLen, true)
	tic(xMinor, minorLen, true)
	tic(yMajor, majorLen*f.w/f.h, false)
	tic(yMinor, minorLen*f.w/f.h, false)
}

func (r *renderer) drawAxisLabels(f frame, area rect, xa, ya *Axis, xMajor, yMajor []float64) {
	gc := r.gc

	// x axis: labels under the frame, title under the labels
	labelPx := r.setFont(xa.labelFont, xa.labelSize, area.h, black)
	labelY := f.y + f.h + xa.labelOffset*area.h + labelPx
	for _, v := range xMajor {
		s := formatTick(v, xa.noExponent)
		gc.FillStringAt(s, f.mapX(v)-r.textWidth(s)/2, labelY)
	}
	if xa.title != "" {
		titlePx := r.setFont(xa.titleFont, xa.titleSize, area.h, black)
		w := r.textWidth(xa.title)
		x := f.x + f.w - w
		if xa.centered {
			x = f.x + (f.w-w)/2
		}
		gc.FillStringAt(xa.title, x, labelY+4+xa.titleOffset*titlePx)
	}

	// y axis: labels right aligned left of the frame, title rotated
	labelPx = r.setFont(ya.labelFont, ya.labelSize, area.h, black)
	var maxWidth float64
	for _, v := range yMajor {
		s := formatTick(v, ya.noExponent)
		w := r.textWidth(s)
		maxWidth = max(maxWidth, w)
		gc.FillStringAt(s, f.x-ya.labelOffset*area.w-w-3, f.mapY(v)+labelPx/2)
	}
	if ya.title != "" {
		titlePx := r.setFont(ya.titleFont, ya.titleSize, area.h, black)
		w := r.textWidth(ya.title)
		x := f.x - ya.labelOffset*area.w - maxWidth - 4 - ya.titleOffset*titlePx*0.25
		y := f.y + w
		if ya.centered {
			y = f.y + (f.h+w)/2
		}
		gc.Save()
		gc.Translate(x, y)
		gc.Rotate(-math.Pi / 2)
		gc.FillStringAt(ya.title, 0, 0)
		gc.Restore()
	}
}

func (r *renderer) drawTitle(area rect, title string) {
	if title == "" {
		return
	}
	px := r.setFont(r.style.TitleFont, r.style.TitleSize, area.h, black)
	x, y := area.at(r.style.TitleX, r.style.TitleY)
	w := r.textWidth(title)
	switch r.style.TitleAlign / 10 {
	case 2:
		x -= w / 2
	case 3:
		x -= w
	}
	switch r.style.TitleAlign % 10 {
	case 2:
		y += px / 2
	case 3:
		y += px
	}
	r.gc.FillStringAt(title, x, y)
}

func (r *renderer) drawMarker(x, y float64, style engine.MarkerCode, size float64, c color.Color) {
	gc := r.gc
	radius := 4 * size
	gc.SetStrokeColor(c)
	gc.SetFillColor(c)
	gc.SetLineWidth(1)
	switch style {
	case engine.MarkerFilledCircle, engine.MarkerOpenCircle, 8:
		draw2dkit.Circle(gc, x, y, radius)
	case engine.MarkerFilledSquare, engine.MarkerOpenSquare:
		draw2dkit.Rectangle(gc, x-radius, y-radius, x+radius, y+radius)
	case engine.MarkerFilledTriangle, engine.MarkerOpenTriangle:
		gc.MoveTo(x, y-radius)
		gc.LineTo(x+radius, y+radius)
		gc.LineTo(x-radius, y+radius)
		gc.Close()
	default:
		draw2dkit.Rectangle(gc, x-0.5, y-0.5, x+0.5, y+0.5)
		gc.Fill()
		return
	}
	if style >= engine.MarkerOpenCircle {
		gc.Stroke()
	} else {
		gc.Fill()
	}
}

func (r *renderer) drawGraph(f frame, g *Graph, option string) {
	gc := r.gc
	opt := strings.ToLower(option)
	line := opt == "" || strings.ContainsAny(opt, "lc")
	markers := opt == "" || strings.Contains(opt, "p")

	if line && g.N() > 1 {
		c, alpha := g.LineColor()
		gc.SetStrokeColor(r.pal.Color(c, alpha))
		gc.SetLineWidth(g.LineWidth())
		x, y := g.Point(0)
		gc.MoveTo(f.mapX(x), f.mapY(y))
		for i := 1; i < g.N(); i++ {
			x, y = g.Point(i)
			gc.LineTo(f.mapX(x), f.mapY(y))
		}
		gc.Stroke()
	}
	if markers {
		c, alpha := g.MarkerColor()
		for i := 0; i < g.N(); i++ {
			x, y := g.Point(i)
			if !f.contains(x, y) {
				continue
			}
			r.drawMarker(f.mapX(x), f.mapY(y), g.MarkerStyle(), g.MarkerSize(), r.pal.Color(c, alpha))
		}
	}
}

func (r *renderer) drawH1D(f frame, h *H1D, option string) {
	gc := r.gc
	base := f.ylo
	if !f.logy {
		base = max(f.ylo, min(0, f.yhi))
	}
	outline := func() {
		gc.MoveTo(f.mapX(h.XMin()), f.mapY(base))
		for i := 1; i <= h.NBins(); i++ {
			v := min(max(h.BinContent(i), f.ylo), f.yhi)
			gc.LineTo(f.mapX(h.BinLowEdge(i)), f.mapY(v))
			gc.LineTo(f.mapX(h.BinLowEdge(i+1)), f.mapY(v))
		}
		gc.LineTo(f.mapX(h.XMax()), f.mapY(base))
	}

	if c, alpha, filled := h.FillColor(); filled {
		gc.SetFillColor(r.pal.Color(c, alpha))
		outline()
		gc.Close()
		gc.Fill()
	}
	c, alpha := h.LineColor()
	gc.SetStrokeColor(r.pal.Color(c, alpha))
	gc.SetLineWidth(h.LineWidth())
	outline()
	gc.Stroke()

	if opt := strings.ToLower(option); strings.ContainsAny(opt, "pe") {
		c, alpha := h.MarkerColor()
		for i := 1; i <= h.NBins(); i++ {
			x, y := h.BinCenter(i), h.BinContent(i)
			if !f.contains(x, y) {
				continue
			}
			r.drawMarker(f.mapX(x), f.mapY(y), h.MarkerStyle(), h.MarkerSize(), r.pal.Color(c, alpha))
		}
	}
}

func (r *renderer) drawH2D(f frame, area rect, h *H2D, logz bool) {
	gc := r.gc
	lo, hi := h.contentRange()
	if zlo, zhi, ok := h.z.RangeUser(); ok {
		lo, hi = zlo, zhi
	}
	lo, hi = fixRange(lo, hi, logz)
	dx := (h.xmax - h.xmin) / float64(h.nx)
	dy := (h.ymax - h.ymin) / float64(h.ny)
	for ix := 1; ix <= h.nx; ix++ {
		for iy := 1; iy <= h.ny; iy++ {
			v := h.contents[ix][iy]
			if v == 0 || v < lo {
				continue
			}
			t := min(project(v, lo, hi, logz), 1)
			x1 := f.mapX(h.xmin + float64(ix-1)*dx)
			x2 := f.mapX(h.xmin + float64(ix)*dx)
			y1 := f.mapY(h.ymin + float64(iy-1)*dy)
			y2 := f.mapY(h.ymin + float64(iy)*dy)
			gc.SetFillColor(palette.Viridis.Map(t))
			draw2dkit.Rectangle(gc, x1, y2, x2, y1)
			gc.Fill()
		}
	}

	// palette bar in the right margin
	const steps = 50
	bx := f.x + f.w + 0.01*area.w
	bw := 0.03 * area.w
	for i := 0; i < steps; i++ {
		y1 := f.y + f.h - float64(i)*f.h/steps
		y2 := f.y + f.h - float64(i+1)*f.h/steps
		gc.SetFillColor(palette.Viridis.Map((float64(i) + 0.5) / steps))
		draw2dkit.Rectangle(gc, bx, y2, bx+bw, y1)
		gc.Fill()
	}
	gc.SetStrokeColor(black)
	gc.SetLineWidth(1)
	draw2dkit.Rectangle(gc, bx, f.y, bx+bw, f.y+f.h)
	gc.Stroke()
	r.setFont(h.z.labelFont, h.z.labelSize, area.h, black)
	gc.FillStringAt(formatTick(lo, h.z.noExponent), bx+bw+2, f.y+f.h)
	gc.FillStringAt(formatTick(hi, h.z.noExponent), bx+bw+2, f.y+fontPixels(h.z.labelFont, h.z.labelSize, area.h))
}

func (r *renderer) drawLegend(area rect, l *Legend) {
	gc := r.gc
	box := area.sub(l.X1, l.Y1, l.X2, l.Y2)
	gc.SetFillColor(color.RGBA{255, 255, 255, 255})
	gc.SetStrokeColor(black)
	gc.SetLineWidth(1)
	draw2dkit.Rectangle(gc, box.x, box.y, box.x+box.w, box.y+box.h)
	gc.FillStroke()

	entries := l.Entries()
	if len(entries) == 0 {
		return
	}
	rowH := box.h / float64(len(entries))
	for i, e := range entries {
		cy := box.y + (float64(i)+0.5)*rowH
		sx1, sx2 := box.x+0.05*box.w, box.x+0.25*box.w
		if s, ok := e.Object.(styled); ok {
			if c, alpha, filled := s.FillColor(); filled && strings.Contains(e.Option, "f") {
				gc.SetFillColor(r.pal.Color(c, alpha))
				draw2dkit.Rectangle(gc, sx1, cy-rowH/4, sx2, cy+rowH/4)
				gc.Fill()
			}
			if strings.Contains(e.Option, "l") {
				c, alpha := s.LineColor()
				gc.SetStrokeColor(r.pal.Color(c, alpha))
				gc.SetLineWidth(s.LineWidth())
				gc.MoveTo(sx1, cy)
				gc.LineTo(sx2, cy)
				gc.Stroke()
			}
			if strings.Contains(e.Option, "p") {
				c, alpha := s.MarkerColor()
				r.drawMarker((sx1+sx2)/2, cy, s.MarkerStyle(), s.MarkerSize(), r.pal.Color(c, alpha))
			}
		}
		px := r.setFont(r.style.LegendFont, r.style.LegendTextSize, area.h, black)
		gc.FillStringAt(e.Label, box.x+0.3*box.w, cy+px/3)
	}
}
