// Package colors resolves human readable color names to engine colors.
package colors

import (
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Table holds the named colors in 0-255 RGB. The misspelled "lavendar"
// is a real key; plot scripts use it.
var Table = map[string][3]uint8{
	"white":                {255, 255, 255},
	"whitesmoke":           {245, 245, 245},
	"ghostwhite":           {248, 248, 255},
	"aliceblue":            {240, 248, 255},
	"lavendar":             {230, 230, 250},
	"azure":                {240, 255, 255},
	"lightcyan":            {224, 255, 255},
	"mintcream":            {245, 255, 250},
	"honeydew":             {240, 255, 240},
	"ivory":                {255, 255, 240},
	"beige":                {245, 245, 220},
	"lightyellow":          {255, 255, 224},
	"lightgoldenrodyellow": {250, 250, 210},
	"lemonchiffon":         {255, 250, 205},
	"floralwhite":          {255, 250, 240},
	"oldlace":              {253, 245, 230},
	"cornsilk":             {255, 248, 220},
	"papayawhite":          {255, 239, 213},
	"blanchedalmond":       {255, 235, 205},
	"bisque":               {255, 228, 196},
	"snow":                 {255, 250, 250},
	"linen":                {250, 240, 230},
	"antiquewhite":         {250, 235, 215},
	"seashell":             {255, 245, 238},
	"lavenderblush":        {255, 240, 245},
	"mistyrose":            {255, 228, 225},
	"gainsboro":            {220, 220, 220},
	"lightgray":            {211, 211, 211},
	"lightsteelblue":       {176, 196, 222},
	"lightblue":            {173, 216, 230},
	"lightskyblue":         {135, 206, 250},
	"powderblue":           {176, 224, 230},
	"paleturquoise":        {175, 238, 238},
	"skyblue":              {135, 206, 235},
	"mediumaquamarine":     {102, 205, 170},
	"aquamarine":           {127, 255, 212},
	"palegreen":            {152, 251, 152},
	"lightgreen":           {144, 238, 144},
	"khaki":                {240, 230, 140},
	"palegoldenrod":        {238, 232, 170},
	"moccasin":             {255, 228, 181},
	"navajowhite":          {255, 222, 173},
	"peachpuff":            {255, 218, 185},
	"wheat":                {245, 222, 179},
	"pink":                 {255, 192, 203},
	"lightpink":            {255, 182, 193},
	"thistle":              {216, 191, 216},
	"plum":                 {221, 160, 221},
	"silver":               {192, 192, 192},
	"darkgray":             {169, 169, 169},
	"lightslategray":       {119, 136, 153},
	"slategray":            {112, 128, 144},
	"slateblue":            {106, 90, 205},
	"steelblue":            {70, 130, 180},
	"mediumslateblue":      {123, 104, 238},
	"royalblue":            {65, 105, 225},
	"blue":                 {0, 0, 255},
	"dodgerblue":           {30, 144, 255},
	"cornflowerblue":       {100, 149, 237},
	"deepskyblue":          {0, 191, 255},
	"cyan":                 {0, 255, 255},
	"aqua":                 {0, 255, 255},
	"turquoise":            {64, 224, 208},
	"mediumturquoise":      {72, 209, 204},
	"darkturquoise":        {0, 206, 209},
	"lightseagreen":        {32, 178, 170},
	"mediumspringgreen":    {0, 250, 154},
	"springgreen":          {0, 255, 127},
	"lime":                 {0, 255, 0},
	"limegreen":            {50, 205, 50},
	"yellowgreen":          {154, 205, 50},
	"lawngreen":            {124, 252, 0},
	"chartreuse":           {127, 255, 0},
	"greenyellow":          {173, 255, 47},
	"yellow":               {255, 255, 0},
	"gold":                 {255, 215, 0},
	"orange":               {255, 165, 0},
	"darkorange":           {255, 140, 0},
	"goldenrod":            {218, 165, 32},
	"burlywood":            {222, 184, 135},
	"tan":                  {210, 180, 140},
	"sandybrown":           {244, 164, 96},
	"darksalmon":           {233, 150, 122},
	"lightcoral":           {240, 128, 128},
	"salmon":               {250, 128, 114},
	"lightsalmon":          {255, 160, 122},
	"coral":                {255, 127, 80},
	"tomato":               {255, 99, 71},
	"orangered":            {255, 69, 0},
	"red":                  {255, 0, 0},
	"deeppink":             {255, 20, 147},
	"hotpink":              {255, 105, 180},
	"palevioletred":        {219, 112, 147},
	"violet":               {238, 130, 238},
	"orchid":               {218, 112, 214},
	"magenta":              {255, 0, 255},
	"fuchsia":              {255, 0, 255},
	"mediumorchid":         {186, 85, 211},
	"darkorchid":           {153, 50, 204},
	"darkviolet":           {148, 0, 211},
	"blueviolet":           {138, 43, 226},
	"mediumpurple":         {147, 112, 219},
	"gray":                 {128, 128, 128},
	"mediumblue":           {0, 0, 205},
	"darkcyan":             {0, 139, 139},
	"cadetblue":            {95, 158, 160},
	"darkseagreen":         {143, 188, 143},
	"mediumseagreen":       {60, 179, 113},
	"teal":                 {0, 128, 128},
	"forestgreen":          {34, 139, 34},
	"seagreen":             {46, 139, 87},
	"darkkhaki":            {189, 183, 107},
	"peru":                 {205, 133, 63},
	"crimson":              {220, 20, 60},
	"indianred":            {205, 92, 92},
	"rosybrown":            {188, 143, 143},
	"mediumvioletred":      {199, 21, 133},
	"dimgray":              {105, 105, 105},
	"black":                {0, 0, 0},
	"midnightblue":         {25, 25, 112},
	"darkslateblue":        {72, 61, 139},
	"darkblue":             {0, 0, 139},
	"navy":                 {0, 0, 128},
	"darkslategray":        {47, 79, 79},
	"green":                {0, 128, 0},
	"darkgreen":            {0, 100, 0},
	"darkolivegreen":       {85, 107, 47},
	"olivedrab":            {107, 142, 35},
	"olive":                {128, 128, 0},
	"darkgoldenrod":        {184, 134, 11},
	"chocolate":            {210, 105, 30},
	"sienna":               {160, 82, 45},
	"saddlebrown":          {139, 69, 19},
	"firebrick":            {178, 34, 34},
	"brown":                {165, 42, 42},
	"maroon":               {128, 0, 0},
	"darkred":              {139, 0, 0},
	"darkmagenta":          {139, 0, 139},
	"purple":               {128, 0, 128},
	"indigo":               {75, 0, 130},
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// RGB255 returns the table entry for name, ignoring case.
func RGB255(name string) ([3]uint8, bool) {
	rgb, ok := Table[normalize(name)]
	return rgb, ok
}

// Lookup returns the normalized ([0,1] per channel) color for name.
func Lookup(name string) (colorful.Color, bool) {
	rgb, ok := RGB255(name)
	if !ok {
		return colorful.Color{}, false
	}
	return colorful.Color{
		R: float64(rgb[0]) / 255.0,
		G: float64(rgb[1]) / 255.0,
		B: float64(rgb[2]) / 255.0,
	}, true
}

// Names returns every color name in the table, sorted.
func Names() []string {
	names := make([]string, 0, len(Table))
	for name := range Table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
