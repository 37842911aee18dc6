package style

import (
	"context"
	"fmt"

	"github.com/acaird/rootplot/pkg/colors"
)

// Option is one styling step applied to a Plot.
type Option func(ctx context.Context, p *Plot) error

// Apply runs opts in order and stops at the first error.
func (p *Plot) Apply(ctx context.Context, opts ...Option) error {
	for i, opt := range opts {
		if err := opt(ctx, p); err != nil {
			return fmt.Errorf("style option %d on %s: %w", i, p.d.Name(), err)
		}
	}
	return nil
}

func WithTitle(title string) Option {
	return func(_ context.Context, p *Plot) error {
		p.SetTitle(title)
		return nil
	}
}

func WithLabel(a Axis, text string, centered bool) Option {
	return func(_ context.Context, p *Plot) error {
		p.SetAxisLabel(a, text, centered)
		return nil
	}
}

func WithOffset(a Axis, offset float64) Option {
	return func(_ context.Context, p *Plot) error {
		p.SetAxisOffset(a, offset)
		return nil
	}
}

func WithFontSize(pixels int) Option {
	return func(_ context.Context, p *Plot) error {
		p.SetFontSize(pixels)
		return nil
	}
}

func WithFont(family string) Option {
	return func(_ context.Context, p *Plot) error {
		return p.ApplyFont(family)
	}
}

func WithFontSpec(f FontSpec) Option {
	return func(_ context.Context, p *Plot) error {
		return p.ApplyFontSpec(f)
	}
}

// WithMarker takes a marker name as understood by ParseMarker.
func WithMarker(name string) Option {
	return func(_ context.Context, p *Plot) error {
		m, err := ParseMarker(name)
		if err != nil {
			return err
		}
		return p.SetMarker(m)
	}
}

func WithMarkerSize(size float64) Option {
	return func(_ context.Context, p *Plot) error {
		p.SetMarkerSize(size)
		return nil
	}
}

func WithLineWidth(width float64) Option {
	return func(_ context.Context, p *Plot) error {
		p.SetLineWidth(width)
		return nil
	}
}

func WithColor(r *colors.Resolver, v colors.Value, alpha float64) Option {
	return func(ctx context.Context, p *Plot) error {
		p.SetColor(ctx, r, v, alpha)
		return nil
	}
}

func WithFillColor(r *colors.Resolver, v colors.Value, alpha float64) Option {
	return func(ctx context.Context, p *Plot) error {
		p.SetFillColor(ctx, r, v, alpha)
		return nil
	}
}

func WithRange(a Axis, lo, hi float64) Option {
	return func(_ context.Context, p *Plot) error {
		p.SetRange(a, lo, hi)
		return nil
	}
}

func CenteredTitles() Option {
	return func(_ context.Context, p *Plot) error {
		p.CenterAllAxisTitles()
		return nil
	}
}

func HiddenXAxis() Option {
	return func(_ context.Context, p *Plot) error {
		p.HideXAxis()
		return nil
	}
}

func WithMoreLogLabels(axes string) Option {
	return func(_ context.Context, p *Plot) error {
		p.MoreLogLabels(axes)
		return nil
	}
}

func WithNoExponent(axes string) Option {
	return func(_ context.Context, p *Plot) error {
		p.NoExponent(axes)
		return nil
	}
}
