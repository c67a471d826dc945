package style

import (
	"github.com/npillmayer/uistyle/css"
)

// Expand applies a list of declarations, in order, to an empty property
// map. Shorthand properties are split up into their individual (fine
// grained) longhand properties:
//
//    margin, padding   top/right/bottom/left, see SplitTRBL
//    border            optional leading width → border-width,
//                      remaining colors → border-{top,right,bottom,left}-color
//    border-color      border-{top,right,bottom,left}-color
//    font              font-style, font-weight, font-size, font-family
//    background        colors → background-color, others → background-image
//    height            height, min-height, max-height
//    overflow          overflow-x, overflow-y ("scroll" scrolls vertically only)
//
// All other properties, including width, are copied. Later declarations
// overwrite earlier ones. Properties with a final value of `initial` are
// dropped.
func Expand(decls []Declaration) PropertyMap {
	pmap := make(PropertyMap)
	for _, d := range decls {
		expandDeclaration(pmap, d.Property, d.Value)
	}
	for k, v := range pmap {
		if v.IsInitial() {
			delete(pmap, k)
		}
	}
	return pmap
}

func expandDeclaration(pmap PropertyMap, key string, v Value) {
	switch key {
	case "margin", "padding":
		setFour(pmap, key, "", SplitTRBL(v.Items()))
	case "border":
		items := v.Items()
		if len(items) > 0 && css.IsNumeric(items[0]) {
			pmap["border-width"] = Scalar(items[0])
			items = items[1:]
		}
		if len(items) > 0 {
			setFour(pmap, "border", "color", SplitTRBL(items))
		}
	case "border-color":
		setFour(pmap, "border", "color", SplitTRBL(v.Items()))
	case "font":
		f := SplitFont(v)
		pmap["font-style"] = Scalar(f[0])
		pmap["font-weight"] = Scalar(f[1])
		pmap["font-size"] = Scalar(f[2])
		pmap["font-family"] = Scalar(f[3])
	case "background":
		for _, x := range v.Items() {
			key := css.Otherwise(css.ValuePattern[string](x),
				css.Patterns[string]{Color: "background-color"}, "background-image")
			pmap[key] = Scalar(x)
		}
	case "height":
		pmap["height"] = v
		pmap["min-height"] = v
		pmap["max-height"] = v
	case "overflow":
		if !v.IsSequence() && v.First() == css.Keyword("scroll") {
			pmap["overflow-x"] = Keyword("auto")
			pmap["overflow-y"] = Keyword("scroll")
		} else {
			pmap["overflow-x"] = v
			pmap["overflow-y"] = v
		}
	default: // including width
		pmap[key] = v
	}
}

func setFour(pmap PropertyMap, pre, suf string, vals [4]css.Value) {
	if vals[0] == nil {
		tracer().Debugf("no values to expand for %s-%s", pre, suf)
		return
	}
	for i, dir := range fourDirs {
		pmap[p(pre, suf, dir)] = Scalar(vals[i])
	}
}

// SplitTRBL distributes up to four values to top, right, bottom and left:
//
//    a         → a a a a
//    a b       → a b a b
//    a b c     → a b c b
//    a b c d…  → a b c d
//
// For the logic behind this, refer to e.g.
// https://www.w3schools.com/css/css_padding.asp .
// An empty list yields four nil values.
func SplitTRBL(vs []css.Value) [4]css.Value {
	switch len(vs) {
	case 0:
		return [4]css.Value{}
	case 1:
		return [4]css.Value{vs[0], vs[0], vs[0], vs[0]}
	case 2:
		return [4]css.Value{vs[0], vs[1], vs[0], vs[1]}
	case 3:
		return [4]css.Value{vs[0], vs[1], vs[2], vs[1]}
	}
	return [4]css.Value{vs[0], vs[1], vs[2], vs[3]}
}

// SplitFont splits a font shorthand into style, weight, size and family.
// A scalar names a system font (see DefaultFont), a sequence is filled up
// from the default font where values are missing.
func SplitFont(v Value) [4]css.Value {
	if !v.IsSequence() {
		name := ""
		if x := v.First(); x != nil {
			name = x.String()
		}
		return DefaultFont(name)
	}
	f := DefaultFont("default")
	for i, x := range v.Items() {
		if i >= 4 {
			break
		}
		if css.Truthy(x) {
			f[i] = x
		}
	}
	return f
}

var fourDirs = [4]string{"top", "right", "bottom", "left"}

func p(prefix string, suffix string, tag string) string {
	if suffix == "" {
		return prefix + "-" + tag
	}
	if prefix == "" {
		return tag + "-" + suffix
	}
	return prefix + "-" + tag + "-" + suffix
}
