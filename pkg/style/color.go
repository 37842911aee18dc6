package style

import (
	"context"

	"github.com/acaird/rootplot/pkg/colors"
	"github.com/acaird/rootplot/pkg/logging"
	"go.uber.org/zap"
)

// SetColor sets the line and marker color. Names the resolver does not
// know are logged and leave the colors as they were.
func (p *Plot) SetColor(ctx context.Context, r *colors.Resolver, v colors.Value, alpha float64) colors.Descriptor {
	d := r.Resolve(v, alpha)
	if !d.HasID {
		unresolved(ctx, p, d)
		return d
	}
	if d.Opaque() {
		p.d.SetLineColor(d.ID)
		p.d.SetMarkerColor(d.ID)
	} else {
		p.d.SetLineColorAlpha(d.ID, d.Alpha)
		p.d.SetMarkerColorAlpha(d.ID, d.Alpha)
	}
	return d
}

// SetFillColor sets the fill color, resolving v the same way SetColor
// does.
func (p *Plot) SetFillColor(ctx context.Context, r *colors.Resolver, v colors.Value, alpha float64) colors.Descriptor {
	d := r.Resolve(v, alpha)
	if !d.HasID {
		unresolved(ctx, p, d)
		return d
	}
	if d.Opaque() {
		p.d.SetFillColor(d.ID)
	} else {
		p.d.SetFillColorAlpha(d.ID, d.Alpha)
	}
	return d
}

func unresolved(ctx context.Context, p *Plot, d colors.Descriptor) {
	logging.From(ctx).Warn("color is not available; leaving it unchanged",
		zap.String("color", d.Value.String()),
		zap.String("drawable", p.d.Name()))
}

// Clean applies the house style: helvetica at 15 pixels, width 2 lines
// in teal.
func (p *Plot) Clean(ctx context.Context, r *colors.Resolver) error {
	if err := p.ApplyFont(string(Helvetica)); err != nil {
		return err
	}
	p.SetFontSize(15)
	p.SetLineWidth(2)
	p.SetColor(ctx, r, colors.Named("teal"), 1)
	return nil
}
