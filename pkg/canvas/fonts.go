package canvas

import (
	"sync"

	"github.com/acaird/rootplot/pkg/engine"
	"github.com/golang/freetype/truetype"
	"github.com/llgcode/draw2d"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// Go fonts stand in for the engine's font families: sans for
// helvetica, medium for the times/roman family and mono for courier.
var faces = map[string][]byte{
	"GoRegular": goregular.TTF,
	"GoItalic":  goitalic.TTF,
	"GoBold":    gobold.TTF,
	"GoMedium":  gomedium.TTF,
	"GoMono":    gomono.TTF,
}

var registerOnce sync.Once

func registerFonts() {
	registerOnce.Do(func() {
		for name, ttf := range faces {
			f, err := truetype.Parse(ttf)
			if err != nil {
				continue
			}
			draw2d.RegisterFont(draw2d.FontData{Name: name, Style: draw2d.FontStyleNormal}, f)
		}
	})
}

// fontData maps a font code to a registered face. The code's tens are
// the family, the units its precision.
func fontData(code engine.FontCode) draw2d.FontData {
	name := "GoRegular"
	switch code / 10 {
	case 1, 2, 3, 13:
		name = "GoMedium"
	case 5, 7:
		name = "GoItalic"
	case 6:
		name = "GoBold"
	case 8, 9, 10, 11:
		name = "GoMono"
	}
	return draw2d.FontData{Name: name, Style: draw2d.FontStyleNormal}
}

// fontPixels converts an engine text size to pixels. Precision 3 fonts
// are sized in pixels, the others as a fraction of the pad height.
func fontPixels(code engine.FontCode, size, padHeight float64) float64 {
	if code%10 == 3 {
		return size
	}
	return size * padHeight
}
