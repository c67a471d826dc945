package style

import (
	"fmt"
	"sort"
	"strings"
)

// PropertyMap holds computed styles: longhand property names mapped to
// values. nil is a legal (empty) property map.
type PropertyMap map[string]Value

// Get returns the value for a property, together with an indicator
// wether it has been found in the map.
func (pmap PropertyMap) Get(key string) (Value, bool) {
	v, ok := pmap[key]
	return v, ok
}

// Keys returns the property names, sorted.
func (pmap PropertyMap) Keys() []string {
	keys := make([]string, 0, len(pmap))
	for k := range pmap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Equal compares two property maps.
func (pmap PropertyMap) Equal(other PropertyMap) bool {
	if len(pmap) != len(other) {
		return false
	}
	for k, v := range pmap {
		if w, ok := other[k]; !ok || !v.Equal(w) {
			return false
		}
	}
	return true
}

// Declarations returns the properties as declarations, sorted by property name.
func (pmap PropertyMap) Declarations() []Declaration {
	decls := make([]Declaration, 0, len(pmap))
	for _, k := range pmap.Keys() {
		decls = append(decls, Declaration{Property: k, Value: pmap[k]})
	}
	return decls
}

// Group returns the subset of properties belonging to a property group.
func (pmap PropertyMap) Group(groupname string) PropertyMap {
	var g PropertyMap
	for k, v := range pmap {
		if GroupNameFromPropertyKey(k) == groupname {
			if g == nil {
				g = make(PropertyMap)
			}
			g[k] = v
		}
	}
	return g
}

// String lists the properties by property group; used for debugging.
func (pmap PropertyMap) String() string {
	groups := make(map[string][]string)
	for _, k := range pmap.Keys() {
		g := GroupNameFromPropertyKey(k)
		groups[g] = append(groups[g], fmt.Sprintf("  %s = %s\n", k, pmap[k]))
	}
	names := make([]string, 0, len(groups))
	for g := range groups {
		names = append(names, g)
	}
	sort.Strings(names)
	var b strings.Builder
	b.WriteString("Property Map = {\n")
	for _, g := range names {
		b.WriteString("[" + g + "] =\n")
		for _, line := range groups[g] {
			b.WriteString(line)
		}
	}
	b.WriteString("}")
	return b.String()
}

// --- CSS Property Groups ----------------------------------------------

// GroupNameFromPropertyKey returns the style property group name for a
// style property.
// Example:
//    GroupNameFromPropertyKey("margin-top") => "Margins"
//
// Unknown style property keys will return a group name of "X".
func GroupNameFromPropertyKey(key string) string {
	groupname, found := groupNameFromPropertyKey[key]
	if !found {
		groupname = PGX
	}
	return groupname
}

// Symbolic names for string literals, denoting property groups.
const (
	PGMargins   = "Margins"
	PGPadding   = "Padding"
	PGBorder    = "Border"
	PGDimension = "Dimension"
	PGDisplay   = "Display"
	PGFlex      = "Flex"
	PGColor     = "Color"
	PGFont      = "Font"
	PGText      = "Text"
	PGX         = "X"
)

var groupNameFromPropertyKey = map[string]string{
	"margin-top":          PGMargins, // Margins
	"margin-left":         PGMargins,
	"margin-right":        PGMargins,
	"margin-bottom":       PGMargins,
	"padding-top":         PGPadding, // Padding
	"padding-left":        PGPadding,
	"padding-right":       PGPadding,
	"padding-bottom":      PGPadding,
	"border-width":        PGBorder, // Border
	"border-radius":       PGBorder,
	"border-top-color":    PGBorder,
	"border-left-color":   PGBorder,
	"border-right-color":  PGBorder,
	"border-bottom-color": PGBorder,
	"width":               PGDimension, // Dimension
	"height":              PGDimension,
	"min-width":           PGDimension,
	"min-height":          PGDimension,
	"max-width":           PGDimension,
	"max-height":          PGDimension,
	"display":             PGDisplay, // Display
	"position":            PGDisplay,
	"left":                PGDisplay,
	"top":                 PGDisplay,
	"right":               PGDisplay,
	"bottom":              PGDisplay,
	"overflow-x":          PGDisplay,
	"overflow-y":          PGDisplay,
	"z-index":             PGDisplay,
	"object-fit":          PGDisplay,
	"flex-direction":      PGFlex, // Flex
	"flex-wrap":           PGFlex,
	"flex-grow":           PGFlex,
	"flex-shrink":         PGFlex,
	"flex-basis":          PGFlex,
	"justify-content":     PGFlex,
	"align-content":       PGFlex,
	"align-items":         PGFlex,
	"color":               PGColor, // Color
	"background-color":    PGColor,
	"background-image":    PGColor,
	"font-style":          PGFont, // Font
	"font-weight":         PGFont,
	"font-size":           PGFont,
	"font-family":         PGFont,
	"white-space":         PGText, // Text
	"text-shadow":         PGText,
	"content":             PGText,
	"cursor":              PGText,
}

// IsInherited returns wether the standard behaviour for a propery is to be
// inherited or not, i.e., a call to retrieve its value will cascade to the
// parent element.
func IsInherited(key string) bool {
	if strings.HasPrefix(key, "font-") {
		return true
	}
	switch key {
	case "color", "cursor", "white-space", "text-shadow":
		return true
	}
	return false
}
