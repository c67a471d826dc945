package css

import (
	"fmt"
	"image/color"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Color is an RGBA color with components in 0.0…1.0 (not pre-multiplied).
// Color implements image/color.Color.
type Color struct {
	R, G, B, A float64
}

// Transparent is the fully transparent color.
var Transparent = Color{}

// RGB creates an opaque color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, 1}
}

// NRGBA converts c to an 8-bit non-alpha-premultiplied color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: to8bit(c.R),
		G: to8bit(c.G),
		B: to8bit(c.B),
		A: to8bit(c.A),
	}
}

// RGBA is part of interface image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

func (c Color) String() string {
	if c == Transparent {
		return "transparent"
	}
	n := c.NRGBA()
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", n.R, n.G, n.B,
		strconv.FormatFloat(c.A, 'f', -1, 64))
}

func to8bit(f float64) uint8 {
	return uint8(math.Round(clamp01(f) * 255))
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	} else if f > 1 {
		return 1
	}
	return f
}

// --- Parsing ---------------------------------------------------------------

var (
	rgbPattern  = regexp.MustCompile(`^rgb\( *(\d+) *, *(\d+) *, *(\d+) *\)$`)
	rgbaPattern = regexp.MustCompile(`^rgba\( *(\d+) *, *(\d+) *, *(\d+) *, *(\d+(?:\.\d+)?) *\)$`)
	hslPattern  = regexp.MustCompile(`^hsla?\( *(\d+(?:\.\d*)?) *, *(\d+(?:\.\d*)?)% *, *(\d+(?:\.\d*)?)% *(?:, *(\d+(?:\.\d+)?) *)?\)$`)
	hexPattern  = regexp.MustCompile(`^#([a-fA-F0-9]{6})$`)
)

// ParseColor parses a color in one of the formats
//
//     rgb(r, g, b)          r,g,b in 0…255
//     rgba(r, g, b, a)      a in 0.0…1.0
//     hsl(h, s%, l%)        h in 0…360, s,l in 0…100
//     hsla(h, s%, l%, a)
//     #RRGGBB
//     transparent
//     <name>                see ColorNames
func ParseColor(s string) (Color, error) {
	if s == "transparent" {
		return Transparent, nil
	}
	if rgb, ok := namedColors[s]; ok {
		return RGB(uint8(rgb>>16), uint8(rgb>>8), uint8(rgb)), nil
	}
	if m := hexPattern.FindStringSubmatch(s); m != nil {
		rgb, _ := strconv.ParseUint(m[1], 16, 32)
		return RGB(uint8(rgb>>16), uint8(rgb>>8), uint8(rgb)), nil
	}
	if m := rgbPattern.FindStringSubmatch(s); m != nil {
		return Color{byteComp(m[1]), byteComp(m[2]), byteComp(m[3]), 1}, nil
	}
	if m := rgbaPattern.FindStringSubmatch(s); m != nil {
		return Color{byteComp(m[1]), byteComp(m[2]), byteComp(m[3]), floatComp(m[4])}, nil
	}
	if m := hslPattern.FindStringSubmatch(s); m != nil {
		isHsla := strings.HasPrefix(s, "hsla")
		if isHsla != (m[4] != "") {
			return Color{}, fmt.Errorf("malformed color: %q", s)
		}
		h, _ := strconv.ParseFloat(m[1], 64)
		sat, _ := strconv.ParseFloat(m[2], 64)
		l, _ := strconv.ParseFloat(m[3], 64)
		c := HSL(h, sat/100, l/100)
		if isHsla {
			c.A = floatComp(m[4])
		}
		return c, nil
	}
	tracer().Debugf("not a color: %q", s)
	return Color{}, fmt.Errorf("not a color: %q", s)
}

func byteComp(s string) float64 {
	n, _ := strconv.Atoi(s)
	if n > 255 {
		n = 255
	}
	return float64(n) / 255
}

func floatComp(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return clamp01(f)
}

// HSL creates an opaque color from hue (degrees), saturation and lightness
// (both 0.0…1.0).
func HSL(h, s, l float64) Color {
	h = math.Mod(h, 360) / 360
	s, l = clamp01(s), clamp01(l)
	if s == 0 {
		return Color{l, l, l, 1}
	}
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	return Color{
		R: hue2rgb(p, q, h+1.0/3),
		G: hue2rgb(p, q, h),
		B: hue2rgb(p, q, h-1.0/3),
		A: 1,
	}
}

func hue2rgb(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 0.5:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

// ColorNames returns all color names known to ParseColor, sorted.
func ColorNames() []string {
	names := make([]string, 0, len(namedColors))
	for n := range namedColors {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// https://www.quackit.com/css/css_color_codes.cfm
var namedColors = map[string]uint32{
	// reds
	"indianred": 0xcd5c5c, "lightcoral": 0xf08080, "salmon": 0xfa8072,
	"darksalmon": 0xe9967a, "lightsalmon": 0xffa07a, "crimson": 0xdc143c,
	"red": 0xff0000, "firebrick": 0xb22222, "darkred": 0x8b0000,
	// pinks
	"pink": 0xffc0cb, "lightpink": 0xffb6c1, "hotpink": 0xff69b4,
	"deeppink": 0xff1493, "mediumvioletred": 0xc71585, "palevioletred": 0xdb7093,
	// oranges
	"coral": 0xff7f50, "tomato": 0xff6347, "orangered": 0xff4500,
	"darkorange": 0xff8c00, "orange": 0xffa500,
	// yellows
	"gold": 0xffd700, "yellow": 0xffff00, "lightyellow": 0xffffe0,
	"lemonchiffon": 0xfffacd, "lightgoldenrodyellow": 0xfafad2, "papayawhip": 0xffefd5,
	"moccasin": 0xffe4b5, "peachpuff": 0xffdab9, "palegoldenrod": 0xeee8aa,
	"khaki": 0xf0e68c, "darkkhaki": 0xbdb76b,
	// purples
	"lavender": 0xe6e6fa, "thistle": 0xd8bfd8, "plum": 0xdda0dd, "violet": 0xee82ee,
	"orchid": 0xda70d6, "fuchsia": 0xff00ff, "magenta": 0xff00ff,
	"mediumorchid": 0xba55d3, "mediumpurple": 0x9370db, "blueviolet": 0x8a2be2,
	"darkviolet": 0x9400d3, "darkorchid": 0x9932cc, "darkmagenta": 0x8b008b,
	"purple": 0x800080, "rebeccapurple": 0x663399, "indigo": 0x4b0082,
	"mediumslateblue": 0x7b68ee, "slateblue": 0x6a5acd, "darkslateblue": 0x483d8b,
	// greens
	"greenyellow": 0xadff2f, "chartreuse": 0x7fff00, "lawngreen": 0x7cfc00,
	"lime": 0x00ff00, "limegreen": 0x32cd32, "palegreen": 0x98fb98,
	"lightgreen": 0x90ee90, "mediumspringgreen": 0x00fa9a, "springgreen": 0x00ff7f,
	"mediumseagreen": 0x3cb371, "seagreen": 0x2e8b57, "forestgreen": 0x228b22,
	"green": 0x008000, "darkgreen": 0x006400, "yellowgreen": 0x9acd32,
	"olivedrab": 0x6b8e23, "olive": 0x808000, "darkolivegreen": 0x556b2f,
	"mediumaquamarine": 0x66cdaa, "darkseagreen": 0x8fbc8f, "lightseagreen": 0x20b2aa,
	"darkcyan": 0x008b8b, "teal": 0x008080,
	// blues
	"aqua": 0x00ffff, "cyan": 0x00ffff, "lightcyan": 0xe0ffff,
	"paleturquoise": 0xafeeee, "aquamarine": 0x7fffd4, "turquoise": 0x40e0d0,
	"mediumturquoise": 0x48d1cc, "darkturquoise": 0x00ced1, "cadetblue": 0x5f9ea0,
	"steelblue": 0x4682b4, "lightsteelblue": 0xb0c4de, "powderblue": 0xb0e0e6,
	"lightblue": 0xadd8e6, "skyblue": 0x87ceeb, "lightskyblue": 0x87cefa,
	"deepskyblue": 0x00bfff, "dodgerblue": 0x1e90ff, "cornflowerblue": 0x6495ed,
	"royalblue": 0x4169e1, "blue": 0x0000ff, "mediumblue": 0x0000cd,
	"darkblue": 0x00008b, "navy": 0x000080, "midnightblue": 0x191970,
	// browns
	"cornsilk": 0xfff8dc, "blanchedalmond": 0xffebcd, "bisque": 0xffe4c4,
	"navajowhite": 0xffdead, "wheat": 0xf5deb3, "burlywood": 0xdeb887,
	"tan": 0xd2b48c, "rosybrown": 0xbc8f8f, "sandybrown": 0xf4a460,
	"goldenrod": 0xdaa520, "darkgoldenrod": 0xb8860b, "peru": 0xcd853f,
	"chocolate": 0xd2691e, "saddlebrown": 0x8b4513, "sienna": 0xa0522d,
	"brown": 0xa52a2a, "maroon": 0x800000,
	// whites
	"white": 0xffffff, "snow": 0xfffafa, "honeydew": 0xf0fff0, "mintcream": 0xf5fffa,
	"azure": 0xf0ffff, "aliceblue": 0xf0f8ff, "ghostwhite": 0xf8f8ff,
	"whitesmoke": 0xf5f5f5, "seashell": 0xfff5ee, "beige": 0xf5f5dc,
	"oldlace": 0xfdf5e6, "floralwhite": 0xfffaf0, "ivory": 0xfffff0,
	"antiquewhite": 0xfaebd7, "linen": 0xfaf0e6, "lavenderblush": 0xfff0f5,
	"mistyrose": 0xffe4e1,
	// grays
	"gainsboro": 0xdcdcdc, "lightgray": 0xd3d3d3, "lightgrey": 0xd3d3d3,
	"silver": 0xc0c0c0, "darkgray": 0xa9a9a9, "darkgrey": 0xa9a9a9,
	"gray": 0x808080, "grey": 0x808080, "dimgray": 0x696969, "dimgrey": 0x696969,
	"lightslategray": 0x778899, "lightslategrey": 0x778899, "slategray": 0x708090,
	"slategrey": 0x708090, "darkslategray": 0x2f4f4f, "darkslategrey": 0x2f4f4f,
	"black": 0x000000,
}
