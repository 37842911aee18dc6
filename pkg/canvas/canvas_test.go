package canvas

import (
	"context"
	"errors"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/acaird/rootplot/pkg/engine"
	"github.com/acaird/rootplot/pkg/logging"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestPaletteIdempotent(t *testing.T) {
	p := NewPalette()
	a := p.GetColor(0.2, 0.4, 0.6)
	b := p.GetColor(0.2, 0.4, 0.6)
	c := p.GetColor(0.6, 0.4, 0.2)
	if a != b {
		t.Errorf("same triple gave %d and %d", a, b)
	}
	if a < 1000 || c == a {
		t.Errorf("ids %d %d", a, c)
	}
	if got := p.GetColor(1, 0, 0); got != engine.Red {
		t.Errorf("pure red = %d, want stock red", got)
	}
	if rgba, ok := p.RGBA(engine.Gray); !ok || rgba.R != rgba.G {
		t.Errorf("gray = %v %v", rgba, ok)
	}
}

func TestDivideAndCd(t *testing.T) {
	c := New().NewCanvas("c", "", 0, 0)
	if w, h := c.Size(); w != DefaultCanvasWidth || h != DefaultCanvasHeight {
		t.Errorf("size = %dx%d", w, h)
	}
	c.Divide(2, 2)
	if len(c.Pads()) != 4 {
		t.Fatalf("%d pads", len(c.Pads()))
	}
	x1, y1, _, _ := c.Pads()[3].Geometry()
	if x1 < 0.5 || y1 > 0.5 {
		t.Errorf("pad 4 at %v,%v, want bottom right", x1, y1)
	}
	if _, err := c.Cd(3); err != nil {
		t.Fatal(err)
	}
	g := NewGraph("g", []float64{1}, []float64{2})
	c.Draw(g, "")
	if objs := c.Pads()[2].Objects(); len(objs) != 1 || objs[0] != g {
		t.Errorf("pad 3 objects = %v", objs)
	}
	if _, err := c.Cd(5); !errors.Is(err, engine.ErrNoSuchPad) {
		t.Errorf("err = %v", err)
	}
	if _, err := c.Cd(0); err != nil || c.Current() != c.Pad {
		t.Errorf("cd(0): %v", err)
	}
}

func TestH2DDrawsAsColz(t *testing.T) {
	c := New().NewCanvas("c", "", 0, 0)
	c.Draw(NewH2D("h", "", 2, 0, 1, 2, 0, 1), "")
	if c.prims[0].option != "colz" || c.RightMargin() != 0.15 {
		t.Errorf("option %q right margin %v", c.prims[0].option, c.RightMargin())
	}
}

func TestLegendAdd(t *testing.T) {
	g := NewGraph("g1", nil, nil)
	h := NewH1D("h1", "", 2, 0, 1)
	titled := NewGraph("g2", nil, nil)
	titled.SetTitle("data")
	anon := NewGraph("", nil, nil)

	l := DefaultLegend()
	l.Add("f", g, h, titled, anon)
	want := []LegendEntry{
		{g, "g1", "p"},
		{h, "h1", "flp"},
		{titled, "data", "p"},
		{anon, "No title", "p"},
	}
	got := l.Entries()
	if len(got) != len(want) {
		t.Fatalf("%d entries", len(got))
	}
	for i := range want {
		if got[i].Label != want[i].Label || got[i].Option != want[i].Option || got[i].Object != want[i].Object {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestH1D(t *testing.T) {
	h := NewH1D("h", "", 4, 0, 2)
	for _, x := range []float64{-1, 0.1, 0.6, 0.7, 1.9, 2, 5} {
		h.Fill(x)
	}
	for i, want := range []float64{1, 1, 2, 0, 1, 2} {
		if got := h.BinContent(i); got != want {
			t.Errorf("bin %d = %v, want %v", i, got, want)
		}
	}
	h.Fill(math.NaN())
	if got := h.BinContent(0); got != 2 {
		t.Errorf("underflow after NaN = %v, want 2", got)
	}
	if c := h.BinCenter(1); c != 0.25 {
		t.Errorf("center 1 = %v", c)
	}
	if e := h.BinLowEdge(3); e != 1 {
		t.Errorf("low edge 3 = %v", e)
	}
	if m := h.Mean(); math.Abs(m-(0.25+2*0.75+1.75)/4) > 1e-12 {
		t.Errorf("mean = %v", m)
	}
	if m := NewH1D("e", "", 3, 0, 1).Mean(); !math.IsNaN(m) {
		t.Errorf("empty mean = %v", m)
	}
}

func TestFontSelection(t *testing.T) {
	if fontData(engine.FontHelvetica).Name != fontData(42).Name {
		t.Error("precision changes the face")
	}
	if fontData(engine.FontTimes).Name == fontData(engine.FontHelvetica).Name {
		t.Error("times and helvetica share a face")
	}
	if px := fontPixels(engine.FontHelvetica, 16, 400); px != 16 {
		t.Errorf("precision 3 size = %v, want 16 pixels", px)
	}
	if px := fontPixels(42, 0.05, 400); px != 20 {
		t.Errorf("relative size = %v, want 20", px)
	}
}

func TestSaveAs(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	ctx := logging.With(context.Background(), zap.New(core))

	e := New()
	c := e.NewCanvas("c", "", 200, 150)
	c.Divide(2, 1)
	c.Cd(1)
	g := NewGraph("g", []float64{1, 2, 3}, []float64{1, 10, 100})
	g.X().SetTitle("x")
	c.Pads()[0].SetLogy(true)
	c.Draw(g, "lp")
	c.Draw(DefaultLegend(), "")
	c.Cd(2)
	h := NewH1D("h", "hist", 5, 0, 5)
	h.Fill(2.5)
	h.SetFillColor(e.GetColor(0.5, 0.5, 0.5))
	c.Draw(h, "")
	c.DrawTextNDC("note", 0.1, 0.1, engine.FontHelvetica, 12)
	c.Current().DrawTextNDC("bins", 0.5, 0.9, engine.FontHelvetica, 12)
	c.Current().DrawText("bin", 2.5, 1, engine.FontHelvetica, 12)
	c.Pads()[0].DrawText("peak", 2, 10, engine.FontTimes, 14)
	c.DrawText("no frame", 1, 1, engine.FontHelvetica, 12)
	if ts := c.Pads()[1].texts; len(ts) != 2 || ts[0].user || !ts[1].user {
		t.Errorf("texts = %+v", ts)
	}

	path := filepath.Join(t.TempDir(), "out.png")
	if err := c.SaveAs(ctx, path); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 150 {
		t.Errorf("image is %v", b)
	}
	if logs.FilterMessage("wrote canvas").Len() != 1 {
		t.Error("save not logged")
	}

	if err := c.SaveAs(ctx, filepath.Join(t.TempDir(), "out.pdf")); err == nil {
		t.Error("pdf accepted")
	}
}
