package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/acaird/rootplot/pkg/canvas"
	"github.com/acaird/rootplot/pkg/engine"
	"github.com/acaird/rootplot/pkg/pad"
	"github.com/acaird/rootplot/pkg/style"
	"go.uber.org/multierr"
)

const ratioPlot = `
output = "ratio.png"
title = "ratio"

[layout]
kind = "topbottom"

[[panel]]
title = "spectrum"
y_label = "counts"
hide_x_axis = true
log = "y"
legend = true
font = "Times New Roman"

  [[panel.series]]
  file = "a.dat"
  title = "run A"
  color = "SteelBlue"
  marker = "open_circle"

  [[panel.series]]
  file = "b.dat"
  color = "tomato"
  alpha = 0.5

[[panel]]
x_label = "energy"
y_label = "ratio"
grid = "y"

  [panel.margins]
  top = 0.05
  right = 0.03
  bottom = 0.3
  left = 0.15

  [[panel.series]]
  file = "a.dat"
  kind = "hist"
  columns = [0]
  bins = 4
  min = 0
  max = 4
  divide_by = "b.dat"
  fill_color = "4"

  [[panel.text]]
  text = "unity"
  x = 0.2
  y = 1
  user = true
`

func writeData(t *testing.T, dir string) {
	t.Helper()
	files := map[string]string{
		"a.dat": "0.5 1\n1.5 2\n2.5 3\n2.7 4\n",
		"b.dat": "0.5 2\n1.5 2\n3.5 1\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestParseDefaults(t *testing.T) {
	p, err := Parse(ratioPlot, "")
	if err != nil {
		t.Fatal(err)
	}
	if p.Width != 600 || p.Height != 600 {
		t.Errorf("size = %dx%d", p.Width, p.Height)
	}
	if p.Layout.TopFraction != pad.DefaultTopFraction {
		t.Errorf("top fraction = %v", p.Layout.TopFraction)
	}
	s := p.Panels[0].Series[1]
	if s.Kind != KindGraph || len(s.Columns) != 2 || s.Delimiter != " " || *s.Alpha != 0.5 || *s.FillAlpha != 1 {
		t.Errorf("series defaults = %+v", s)
	}
	if m := p.Panels[1].Margins; m == nil || m.Bottom != 0.3 {
		t.Errorf("margins = %+v", m)
	}
}

func TestValidateCollectsEverything(t *testing.T) {
	bad := `
output = "plot.jpg"
colour = "red"

[layout]
kind = "topbottom"
top_fraction = 1.2

[[panel]]
font = "klingon"
log = "xw"
x_range = [1]

  [[panel.series]]
  kind = "hist"
  marker = "star"
`
	_, err := Parse(bad, "")
	if err == nil {
		t.Fatal("no error")
	}
	errs := multierr.Errors(err)
	if len(errs) < 8 {
		t.Errorf("got %d errors, want at least 8:\n%v", len(errs), err)
	}
	for _, target := range []error{style.ErrUnknownFont, style.ErrUnknownMarker, style.ErrInvalidAxis, pad.ErrInvalidFraction} {
		if !errors.Is(err, target) {
			t.Errorf("errors do not include %v", target)
		}
	}
	if !strings.Contains(err.Error(), `unknown key "colour"`) {
		t.Errorf("undecoded key not reported: %v", err)
	}
}

func TestLoadDefaultOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "job.toml")
	cfg := "[[panel]]\n[[panel.series]]\nfile = \"a.dat\"\n"
	if err := os.WriteFile(path, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if p.Output != filepath.Join(dir, "job.png") {
		t.Errorf("output = %q", p.Output)
	}
	if p.Path("a.dat") != filepath.Join(dir, "a.dat") {
		t.Errorf("path = %q", p.Path("a.dat"))
	}
}

func TestBuild(t *testing.T) {
	dir := t.TempDir()
	writeData(t, dir)
	p, err := Parse(ratioPlot, dir)
	if err != nil {
		t.Fatal(err)
	}
	e := canvas.New()
	c, err := p.Build(context.Background(), e)
	if err != nil {
		t.Fatal(err)
	}
	if e.Style.TitleAlign != 12 {
		t.Error("default style not initialized")
	}

	pads := c.Pads()
	if len(pads) != 2 {
		t.Fatalf("%d pads", len(pads))
	}
	top, bottom := pads[0], pads[1]
	if _, logy, _ := top.Log(); !logy {
		t.Error("top pad not log y")
	}
	if _, gridy := bottom.Grid(); !gridy {
		t.Error("bottom pad has no y grid")
	}
	if bottom.BottomMargin() != 0.3 {
		t.Errorf("bottom margin = %v", bottom.BottomMargin())
	}

	objs := top.Objects()
	if len(objs) != 3 {
		t.Fatalf("top pad has %d objects, want 2 graphs and a legend", len(objs))
	}
	g := objs[0].(*canvas.Graph)
	if g.Title() != "spectrum" || g.N() != 4 {
		t.Errorf("graph title %q with %d points", g.Title(), g.N())
	}
	if g.X().LabelOffset() != style.HiddenOffset || g.Y().Title() != "counts" {
		t.Error("axis style not applied")
	}
	if g.MarkerStyle() != engine.MarkerOpenCircle || g.X().LabelFont() != engine.FontTimes {
		t.Errorf("marker %d font %d", g.MarkerStyle(), g.X().LabelFont())
	}
	if _, alpha := objs[1].(*canvas.Graph).LineColor(); alpha != 0.5 {
		t.Errorf("second graph alpha = %v", alpha)
	}
	entries := objs[2].(*canvas.Legend).Entries()
	if len(entries) != 2 || entries[0].Label != "run A" || entries[1].Label != "graph_b" {
		t.Errorf("legend = %+v", entries)
	}

	h := bottom.Objects()[0].(*canvas.H1D)
	// a: 1, 1, 2, 0 and b: 1, 1, 0, 1 in bins 1..4
	for i, want := range []float64{0, 1, 1, 2, 0, 0} {
		if got := h.BinContent(i); got != want {
			t.Errorf("ratio bin %d = %v, want %v", i, got, want)
		}
	}
	if id, _, filled := h.FillColor(); id != engine.Blue || !filled {
		t.Errorf("fill = %d %v", id, filled)
	}
}

func TestBuildRenders(t *testing.T) {
	dir := t.TempDir()
	writeData(t, dir)
	p, err := Parse(ratioPlot, dir)
	if err != nil {
		t.Fatal(err)
	}
	c, err := p.Build(context.Background(), canvas.New())
	if err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, p.Output)
	if err := c.SaveAs(context.Background(), out); err != nil {
		t.Fatal(err)
	}
	if fi, err := os.Stat(out); err != nil || fi.Size() == 0 {
		t.Errorf("output: %v", err)
	}
}

func TestTopFractionNaN(t *testing.T) {
	cfg := "[layout]\ntop_fraction = nan\n[[panel]]\n[[panel.series]]\nfile = \"a.dat\"\n"
	if _, err := Parse(cfg, ""); !errors.Is(err, pad.ErrInvalidFraction) {
		t.Errorf("err = %v", err)
	}
}

func TestExplicitZeroAlpha(t *testing.T) {
	dir := t.TempDir()
	writeData(t, dir)
	cfg := `
[[panel]]
  [[panel.series]]
  file = "a.dat"
  color = "red"
  alpha = 0.0
  fill_color = "blue"
  fill_alpha = 0.0

  [[panel.series]]
  file = "b.dat"
  color = "red"
`
	p, err := Parse(cfg, dir)
	if err != nil {
		t.Fatal(err)
	}
	if s := p.Panels[0].Series; *s[0].Alpha != 0 || *s[0].FillAlpha != 0 || *s[1].Alpha != 1 {
		t.Fatalf("alphas = %v %v %v", *s[0].Alpha, *s[0].FillAlpha, *s[1].Alpha)
	}
	c, err := p.Build(context.Background(), canvas.New())
	if err != nil {
		t.Fatal(err)
	}
	objs := c.Objects()
	hidden, opaque := objs[0].(*canvas.Graph), objs[1].(*canvas.Graph)
	if id, alpha := hidden.LineColor(); id != engine.Red || alpha != 0 {
		t.Errorf("line color = %d alpha %v, want red with alpha 0", id, alpha)
	}
	if _, alpha := hidden.MarkerColor(); alpha != 0 {
		t.Errorf("marker alpha = %v", alpha)
	}
	if _, alpha, filled := hidden.FillColor(); !filled || alpha != 0 {
		t.Errorf("fill alpha = %v filled %v", alpha, filled)
	}
	if _, alpha := opaque.LineColor(); alpha != 1 {
		t.Errorf("default alpha = %v", alpha)
	}
}
