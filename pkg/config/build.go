package config

import (
	"context"
	"fmt"
	"slices"

	"github.com/acaird/rootplot/pkg/canvas"
	"github.com/acaird/rootplot/pkg/colors"
	"github.com/acaird/rootplot/pkg/data"
	"github.com/acaird/rootplot/pkg/engine"
	"github.com/acaird/rootplot/pkg/hist"
	"github.com/acaird/rootplot/pkg/logging"
	"github.com/acaird/rootplot/pkg/pad"
	"github.com/acaird/rootplot/pkg/style"
	"go.uber.org/zap"
)

// drawable is what a series becomes once loaded.
type drawable interface {
	engine.Drawable
	canvas.Object
}

// Build sets up the global style of e, creates the canvas, loads every
// series and draws it on its panel, styled as configured.
func (p *Plot) Build(ctx context.Context, e *canvas.Engine) (*canvas.Canvas, error) {
	logger := logging.From(ctx)
	style.InitializeDefaultStyle(e.Style)
	c := e.NewCanvas(p.Name, p.Title, p.Width, p.Height)

	switch p.Layout.Kind {
	case LayoutGrid:
		pad.DivideGrid(c.Pad, p.Layout.NX, p.Layout.NY)
	case LayoutTopBottom:
		if _, _, err := pad.DivideTopBottom(c.Pad, p.Layout.TopFraction); err != nil {
			return nil, err
		}
	}

	r := colors.NewResolver(e)
	for i, panel := range p.Panels {
		n := i + 1
		if p.Layout.Kind == LayoutSingle {
			n = 0
		}
		target, err := pad.MoveToPanel(c.Pad, n)
		if err != nil {
			return nil, fmt.Errorf("panel %d: %w", i+1, err)
		}
		if err := p.buildPanel(ctx, c, target, r, panel); err != nil {
			return nil, fmt.Errorf("panel %d: %w", i+1, err)
		}
		logger.Debug("built panel", zap.Int("panel", i+1), zap.Int("series", len(panel.Series)))
	}
	return c, nil
}

func (p *Plot) buildPanel(ctx context.Context, c *canvas.Canvas, target engine.Pad, r *colors.Resolver, panel Panel) error {
	pad.SetLogScale(target, panel.Log, true)
	pad.SetGrid(target, panel.Grid, true)
	if panel.Margins != nil {
		pad.SetMargins(target, *panel.Margins)
	}

	axisOpts := panel.options()
	var drawn []engine.Drawable
	for j, s := range panel.Series {
		d, err := p.load(ctx, s)
		if err != nil {
			return fmt.Errorf("series %d: %w", j+1, err)
		}
		if s.Title != "" {
			d.SetTitle(s.Title)
		}
		st := style.New(d)
		if err := st.Apply(ctx, append(slices.Clip(axisOpts), s.options(r)...)...); err != nil {
			return fmt.Errorf("series %d: %w", j+1, err)
		}
		c.Draw(d, s.Option)
		drawn = append(drawn, d)
	}

	if panel.Legend && len(drawn) > 0 {
		l := canvas.DefaultLegend()
		l.Add("", drawn...)
		c.Draw(l, "")
	}
	// the first drawable's title is the panel title
	if panel.Title != "" && len(drawn) > 0 {
		drawn[0].SetTitle(panel.Title)
	}
	for _, t := range panel.Texts {
		ts := pad.TextStyle{}
		if t.Size > 0 {
			ts = pad.TextStyle{Font: style.DefaultFont, Size: t.Size}
		}
		if t.User {
			pad.TextAt(target, ts, t.Text, t.X, t.Y)
		} else {
			pad.Text(target, ts, t.Text, t.X, t.Y)
		}
	}
	return nil
}

func (p *Plot) load(ctx context.Context, s Series) (drawable, error) {
	path := p.Path(s.File)
	switch s.Kind {
	case KindHist:
		b := data.Binning{NBins: s.Bins, XMin: s.Min, XMax: s.Max}
		h, err := data.LoadHistogram(ctx, path, s.Columns[0], b, s.Delimiter)
		if err != nil {
			return nil, err
		}
		if s.DivideBy != "" {
			d, err := data.LoadHistogram(ctx, p.Path(s.DivideBy), s.Columns[0], b, s.Delimiter)
			if err != nil {
				return nil, err
			}
			if err := hist.DivideBinwise(h, d); err != nil {
				return nil, err
			}
		}
		return h, nil
	default:
		cols := data.Columns{X: s.Columns[0], Y: s.Columns[1]}
		g, err := data.LoadGraph(ctx, path, cols, s.Delimiter)
		if err != nil {
			return nil, err
		}
		return g, nil
	}
}

// options are the axis settings shared by every series of the panel.
func (panel Panel) options() []style.Option {
	var opts []style.Option
	if panel.XLabel != "" {
		opts = append(opts, style.WithLabel(style.X, panel.XLabel, panel.CenterTitles))
	}
	if panel.YLabel != "" {
		opts = append(opts, style.WithLabel(style.Y, panel.YLabel, panel.CenterTitles))
	}
	if panel.ZLabel != "" {
		opts = append(opts, style.WithLabel(style.Z, panel.ZLabel, panel.CenterTitles))
	}
	if panel.CenterTitles {
		opts = append(opts, style.CenteredTitles())
	}
	if panel.XOffset != 0 {
		opts = append(opts, style.WithOffset(style.X, panel.XOffset))
	}
	if panel.YOffset != 0 {
		opts = append(opts, style.WithOffset(style.Y, panel.YOffset))
	}
	switch {
	case panel.Font != "":
		f := style.FontSpec{Family: style.FontFamily(panel.Font), SizePixels: panel.FontSize}
		opts = append(opts, style.WithFontSpec(f))
	case panel.FontSize > 0:
		opts = append(opts, style.WithFontSize(panel.FontSize))
	}
	if len(panel.XRange) == 2 {
		opts = append(opts, style.WithRange(style.X, panel.XRange[0], panel.XRange[1]))
	}
	if len(panel.YRange) == 2 {
		opts = append(opts, style.WithRange(style.Y, panel.YRange[0], panel.YRange[1]))
	}
	if panel.MoreLog != "" {
		opts = append(opts, style.WithMoreLogLabels(panel.MoreLog))
	}
	if panel.NoExponent != "" {
		opts = append(opts, style.WithNoExponent(panel.NoExponent))
	}
	if panel.HideXAxis {
		opts = append(opts, style.HiddenXAxis())
	}
	return opts
}

func (s Series) options(r *colors.Resolver) []style.Option {
	var opts []style.Option
	if s.Color != "" {
		opts = append(opts, style.WithColor(r, colors.Parse(s.Color), *s.Alpha))
	}
	if s.FillColor != "" {
		opts = append(opts, style.WithFillColor(r, colors.Parse(s.FillColor), *s.FillAlpha))
	}
	if s.Marker != "" {
		opts = append(opts, style.WithMarker(s.Marker))
	}
	if s.MarkerSize > 0 {
		opts = append(opts, style.WithMarkerSize(s.MarkerSize))
	}
	if s.LineWidth > 0 {
		opts = append(opts, style.WithLineWidth(s.LineWidth))
	}
	return opts
}
