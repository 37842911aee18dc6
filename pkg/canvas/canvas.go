// Package canvas is an in-memory plotting engine: canvases divided into
// pads, on which graphs, histograms, legends and text are drawn and
// then rendered to PNG with draw2d.
package canvas

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/acaird/rootplot/pkg/engine"
	"github.com/acaird/rootplot/pkg/logging"
	"github.com/llgcode/draw2d/draw2dimg"
	"go.uber.org/zap"
)

const (
	DefaultCanvasWidth  = 600
	DefaultCanvasHeight = 600
)

// Engine owns the state shared by every canvas: the color table and the
// global style.
type Engine struct {
	Palette *Palette
	Style   *Style
}

func New() *Engine {
	return &Engine{
		Palette: NewPalette(),
		Style:   NewStyle(),
	}
}

func (e *Engine) GetColor(r, g, b float64) engine.ColorID {
	return e.Palette.GetColor(r, g, b)
}

func (e *Engine) NewH1D(name, title string, nbins int, xmin, xmax float64) engine.Histogram {
	return NewH1D(name, title, nbins, xmin, xmax)
}

// Canvas is the top level pad, with a size in pixels.
type Canvas struct {
	*Pad
	name    string
	title   string
	width   int
	height  int
	engine  *Engine
	current *Pad
}

// NewCanvas creates a canvas; a zero width or height uses the default.
func (e *Engine) NewCanvas(name, title string, width, height int) *Canvas {
	if width <= 0 {
		width = DefaultCanvasWidth
	}
	if height <= 0 {
		height = DefaultCanvasHeight
	}
	c := &Canvas{
		name:   name,
		title:  title,
		width:  width,
		height: height,
		engine: e,
	}
	c.Pad = newPad(c, 0, 0, 0, 1, 1)
	c.current = c.Pad
	return c
}

func (c *Canvas) Name() string              { return c.name }
func (c *Canvas) Title() string             { return c.title }
func (c *Canvas) Size() (width, height int) { return c.width, c.height }

// Current returns the pad last selected with Cd.
func (c *Canvas) Current() *Pad { return c.current }

// Draw draws obj on the current pad.
func (c *Canvas) Draw(obj Object, option string) {
	c.current.Draw(obj, option)
}

// SaveAs renders the canvas and writes it to path. Only PNG output is
// supported.
func (c *Canvas) SaveAs(ctx context.Context, path string) error {
	logger := logging.From(ctx)
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".png" {
		return fmt.Errorf("save %s: unsupported format %q", path, ext)
	}
	img := c.Render(ctx)
	if err := draw2dimg.SaveToPngFile(path, img); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	logger.Info("wrote canvas", zap.String("canvas", c.name), zap.String("file", path))
	return nil
}

// SaveDrawable draws d alone on a fresh canvas of the given size and
// saves it to path.
func (e *Engine) SaveDrawable(ctx context.Context, d Object, path, option string, width, height int) error {
	c := e.NewCanvas("c", "Canvas", width, height)
	c.Draw(d, option)
	return c.SaveAs(ctx, path)
}
