// Package config reads plot jobs from TOML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/acaird/rootplot/pkg/canvas"
	"github.com/acaird/rootplot/pkg/pad"
	"github.com/acaird/rootplot/pkg/style"
	"go.uber.org/multierr"
)

// Layout kinds.
const (
	LayoutSingle    = "single"
	LayoutGrid      = "grid"
	LayoutTopBottom = "topbottom"
)

// Series kinds.
const (
	KindGraph = "graph"
	KindHist  = "hist"
)

// Plot is one output image.
type Plot struct {
	Output string  `toml:"output"`
	Name   string  `toml:"name"`
	Title  string  `toml:"title"`
	Width  int     `toml:"width"`
	Height int     `toml:"height"`
	Layout Layout  `toml:"layout"`
	Panels []Panel `toml:"panel"`

	// dir is where relative data paths are looked up.
	dir string
}

// Layout says how the canvas is split into panels.
type Layout struct {
	Kind        string  `toml:"kind"`
	NX          int     `toml:"nx"`
	NY          int     `toml:"ny"`
	TopFraction float64 `toml:"top_fraction"`
}

// Panel is what goes on one pad.
type Panel struct {
	Title        string       `toml:"title"`
	XLabel       string       `toml:"x_label"`
	YLabel       string       `toml:"y_label"`
	ZLabel       string       `toml:"z_label"`
	CenterTitles bool         `toml:"center_titles"`
	HideXAxis    bool         `toml:"hide_x_axis"`
	XOffset      float64      `toml:"x_offset"`
	YOffset      float64      `toml:"y_offset"`
	Font         string       `toml:"font"`
	FontSize     int          `toml:"font_size"`
	XRange       []float64    `toml:"x_range"`
	YRange       []float64    `toml:"y_range"`
	Log          string       `toml:"log"`
	Grid         string       `toml:"grid"`
	MoreLog      string       `toml:"more_log_labels"`
	NoExponent   string       `toml:"no_exponent"`
	Margins      *pad.Margins `toml:"margins"`
	Legend       bool         `toml:"legend"`
	Texts        []Text       `toml:"text"`
	Series       []Series     `toml:"series"`
}

// Text is a label placed in pad NDC, or in the data coordinates of the
// panel when User is set.
type Text struct {
	Text string  `toml:"text"`
	X    float64 `toml:"x"`
	Y    float64 `toml:"y"`
	Size float64 `toml:"size"`
	User bool    `toml:"user"`
}

// Series is one data file drawn on a panel.
type Series struct {
	File      string  `toml:"file"`
	Kind      string  `toml:"kind"`
	Columns   []int   `toml:"columns"`
	Delimiter string  `toml:"delimiter"`
	Option    string  `toml:"option"`
	Title     string  `toml:"title"`
	Bins      int     `toml:"bins"`
	Min       float64 `toml:"min"`
	Max       float64 `toml:"max"`
	DivideBy  string  `toml:"divide_by"`

	Color      string   `toml:"color"`
	Alpha      *float64 `toml:"alpha"`
	FillColor  string   `toml:"fill_color"`
	FillAlpha  *float64 `toml:"fill_alpha"`
	Marker     string   `toml:"marker"`
	MarkerSize float64  `toml:"marker_size"`
	LineWidth  float64  `toml:"line_width"`
}

// Parse decodes a plot from TOML text. Relative data paths are taken
// relative to dir. The plot is validated; keys nobody reads are errors.
func Parse(data, dir string) (*Plot, error) {
	var p Plot
	md, err := toml.Decode(data, &p)
	if err != nil {
		return nil, fmt.Errorf("error decoding configuration: %w", err)
	}
	p.dir = dir
	p.setDefaults()

	var errs error
	for _, key := range md.Undecoded() {
		errs = multierr.Append(errs, fmt.Errorf("unknown key %q", key.String()))
	}
	errs = multierr.Append(errs, p.Validate())
	if errs != nil {
		return nil, errs
	}
	return &p, nil
}

// Load reads and validates the plot file at path. Without an output
// path the image goes next to the file, with a .png extension.
func Load(path string) (*Plot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading configuration: %w", err)
	}
	p, err := Parse(string(data), filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if p.Output == "" {
		p.Output = strings.TrimSuffix(path, filepath.Ext(path)) + ".png"
	}
	return p, nil
}

func (p *Plot) setDefaults() {
	if p.Name == "" {
		p.Name = "c"
	}
	if p.Width == 0 {
		p.Width = canvas.DefaultCanvasWidth
	}
	if p.Height == 0 {
		p.Height = canvas.DefaultCanvasHeight
	}
	if p.Layout.Kind == "" {
		p.Layout.Kind = LayoutSingle
		switch {
		case p.Layout.NX > 0 || p.Layout.NY > 0:
			p.Layout.Kind = LayoutGrid
		case p.Layout.TopFraction != 0:
			p.Layout.Kind = LayoutTopBottom
		}
	}
	p.Layout.Kind = strings.ToLower(p.Layout.Kind)
	if p.Layout.Kind == LayoutTopBottom && p.Layout.TopFraction == 0 {
		p.Layout.TopFraction = pad.DefaultTopFraction
	}
	if p.Layout.Kind == LayoutGrid {
		p.Layout.NX, p.Layout.NY = max(p.Layout.NX, 1), max(p.Layout.NY, 1)
	}
	for i := range p.Panels {
		for j := range p.Panels[i].Series {
			s := &p.Panels[i].Series[j]
			if s.Kind == "" {
				s.Kind = KindGraph
			}
			s.Kind = strings.ToLower(s.Kind)
			if s.Columns == nil {
				s.Columns = []int{0, 1}
			}
			if s.Delimiter == "" {
				s.Delimiter = " "
			}
			if s.Alpha == nil {
				s.Alpha = ptr(1.0)
			}
			if s.FillAlpha == nil {
				s.FillAlpha = ptr(1.0)
			}
		}
	}
}

func ptr[T any](v T) *T { return &v }

// Path resolves a data path from the configuration.
func (p *Plot) Path(file string) string {
	if filepath.IsAbs(file) || p.dir == "" {
		return file
	}
	return filepath.Join(p.dir, file)
}

// Validate reports every problem with the plot at once.
func (p *Plot) Validate() error {
	var errs error
	add := func(format string, args ...any) {
		errs = multierr.Append(errs, fmt.Errorf(format, args...))
	}

	if p.Width < 0 || p.Height < 0 {
		add("canvas size %dx%d is negative", p.Width, p.Height)
	}
	if filepath.Ext(p.Output) != "" && strings.ToLower(filepath.Ext(p.Output)) != ".png" {
		add("output %q: only .png is supported", p.Output)
	}
	if len(p.Panels) == 0 {
		add("no panels")
	}

	switch p.Layout.Kind {
	case LayoutSingle:
		if len(p.Panels) > 1 {
			add("single layout has %d panels", len(p.Panels))
		}
	case LayoutGrid:
		if n := p.Layout.NX * p.Layout.NY; len(p.Panels) > n {
			add("%d panels do not fit a %dx%d grid", len(p.Panels), p.Layout.NX, p.Layout.NY)
		}
	case LayoutTopBottom:
		if _, _, err := pad.TopBottomGeometry(p.Layout.TopFraction); err != nil {
			errs = multierr.Append(errs, err)
		}
		if len(p.Panels) > 2 {
			add("topbottom layout has %d panels", len(p.Panels))
		}
	default:
		add("unknown layout %q", p.Layout.Kind)
	}

	for i, panel := range p.Panels {
		errs = multierr.Append(errs, panel.validate(fmt.Sprintf("panel %d", i+1)))
	}
	return errs
}

func validAxes(s, allowed string) bool {
	for _, r := range strings.ToLower(s) {
		if !strings.ContainsRune(allowed, r) {
			return false
		}
	}
	return true
}

func (panel Panel) validate(where string) error {
	var errs error
	add := func(format string, args ...any) {
		errs = multierr.Append(errs, fmt.Errorf(where+": "+format, args...))
	}
	if panel.Font != "" {
		if _, err := style.ParseFontFamily(panel.Font); err != nil {
			add("%w", err)
		}
	}
	if panel.FontSize < 0 {
		add("font size %d", panel.FontSize)
	}
	for name, r := range map[string][]float64{"x_range": panel.XRange, "y_range": panel.YRange} {
		if r != nil && len(r) != 2 {
			add("%s needs two values, got %d", name, len(r))
		}
	}
	if !validAxes(panel.Log, "xyz") {
		add("log %q: %w", panel.Log, style.ErrInvalidAxis)
	}
	if !validAxes(panel.Grid, "xy") {
		add("grid %q: %w", panel.Grid, style.ErrInvalidAxis)
	}
	if !validAxes(panel.MoreLog, "xy") {
		add("more_log_labels %q: %w", panel.MoreLog, style.ErrInvalidAxis)
	}
	if !validAxes(panel.NoExponent, "xyz") {
		add("no_exponent %q: %w", panel.NoExponent, style.ErrInvalidAxis)
	}
	for j, s := range panel.Series {
		errs = multierr.Append(errs, s.validate(fmt.Sprintf("%s series %d", where, j+1)))
	}
	return errs
}

func (s Series) validate(where string) error {
	var errs error
	add := func(format string, args ...any) {
		errs = multierr.Append(errs, fmt.Errorf(where+": "+format, args...))
	}
	if s.File == "" {
		add("no file")
	}
	for _, c := range s.Columns {
		if c < 0 {
			add("negative column %d", c)
		}
	}
	switch s.Kind {
	case KindGraph:
		if len(s.Columns) != 2 {
			add("graph needs two columns, got %d", len(s.Columns))
		}
		if s.DivideBy != "" {
			add("divide_by only applies to histograms")
		}
	case KindHist:
		if len(s.Columns) < 1 {
			add("hist needs a column")
		}
		if s.Bins < 1 {
			add("hist needs bins > 0, got %d", s.Bins)
		}
		if s.Min >= s.Max {
			add("hist range %g..%g is empty", s.Min, s.Max)
		}
	default:
		add("unknown kind %q", s.Kind)
	}
	if s.Marker != "" {
		if _, err := style.ParseMarker(s.Marker); err != nil {
			add("%w", err)
		}
	}
	return errs
}
