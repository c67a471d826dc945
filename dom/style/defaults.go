package style

import (
	"github.com/npillmayer/uistyle/css"
)

// System fonts. Every entry is (style, weight, size, family).
var defaultFonts = map[string][4]css.Value{
	"default":       {css.Keyword("normal"), css.Keyword("normal"), css.Number(12), css.Keyword("sans-serif")},
	"caption":       {css.Keyword("normal"), css.Keyword("normal"), css.Number(12), css.Keyword("sans-serif")},
	"icon":          {css.Keyword("normal"), css.Keyword("normal"), css.Number(12), css.Keyword("sans-serif")},
	"menu":          {css.Keyword("normal"), css.Keyword("normal"), css.Number(12), css.Keyword("sans-serif")},
	"message-box":   {css.Keyword("normal"), css.Keyword("normal"), css.Number(12), css.Keyword("sans-serif")},
	"small-caption": {css.Keyword("normal"), css.Keyword("normal"), css.Number(12), css.Keyword("sans-serif")},
	"status-bar":    {css.Keyword("normal"), css.Keyword("normal"), css.Number(12), css.Keyword("sans-serif")},
}

// DefaultFont returns the font settings of a system font. Unknown names
// return the default font.
func DefaultFont(name string) [4]css.Value {
	if f, ok := defaultFonts[name]; ok {
		return f
	}
	return defaultFonts["default"]
}

// IsSystemFont checks if name denotes a system font.
func IsSystemFont(name string) bool {
	_, ok := defaultFonts[name]
	return ok
}

// DefaultStyling returns the properties every element starts with.
func DefaultStyling() PropertyMap {
	return PropertyMap{
		"background-color": Scalar(css.Transparent),
		"display":          Keyword("inline"),
	}
}

// DisplayForElement returns the default `display` property for an element
// type, in the manner of user agent stylesheets for HTML.
func DisplayForElement(tag string) Value {
	switch tag {
	case "head", "style", "script", "title", "meta", "link":
		return Keyword("none")
	case "html", "aside", "body", "div", "h1", "h2", "h3",
		"h4", "h5", "h6", "ol", "p", "section", "ul", "li",
		"header", "footer", "nav", "form", "table":
		return Keyword("block")
	case "i", "b", "span", "strong", "em", "a", "label", "button", "input", "img":
		return Keyword("inline")
	case "":
		return Keyword("inline") // text
	}
	tracer().Debugf("unknown element type %s will be set to display: block", tag)
	return Keyword("block")
}
