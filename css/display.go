package css

import (
	"fmt"
	"strings"
)

// DisplayMode is a type for property "display", holding outer and inner
// modes as flags.
type DisplayMode uint16

// Flags for outer and inner display modes.
const (
	NoMode        DisplayMode = iota   // unset or error condition
	DisplayNone   DisplayMode = 0x0001 // display: none
	BlockMode     DisplayMode = 0x0002 // outer block context
	InlineMode    DisplayMode = 0x0004 // outer inline context
	FlowMode      DisplayMode = 0x0010 // inner flow layout
	FlexMode      DisplayMode = 0x0020 // inner display = flexbox
	TableMode     DisplayMode = 0x0040 // inner display = table
	TableRowMode  DisplayMode = 0x0080 // table-row
	TableCellMode DisplayMode = 0x0100 // table-cell
)

var allDisplayModes = []DisplayMode{
	DisplayNone, BlockMode, InlineMode, FlowMode, FlexMode,
	TableMode, TableRowMode, TableCellMode,
}

var displayNames = map[DisplayMode]string{
	DisplayNone:   "none",
	BlockMode:     "block",
	InlineMode:    "inline",
	FlowMode:      "flow",
	FlexMode:      "flexbox",
	TableMode:     "table",
	TableRowMode:  "table-row",
	TableCellMode: "table-cell",
}

// Outer returns the outer mode.
func (disp DisplayMode) Outer() DisplayMode {
	return disp & 0x000f
}

// Inner returns the inner mode.
func (disp DisplayMode) Inner() DisplayMode {
	return disp & 0xfff0
}

// IsBlockLevel is true for modes with an outer display level of BlockMode.
func (disp DisplayMode) IsBlockLevel() bool {
	return disp.Outer() == BlockMode
}

// Contains checks if a display mode contains a given atomic mode.
// Returns false for d = NoMode.
func (disp DisplayMode) Contains(d DisplayMode) bool {
	return d != NoMode && (disp&d > 0)
}

// Overlaps returns true if a given display mode shares at least one atomic
// mode flag with disp.
func (disp DisplayMode) Overlaps(d DisplayMode) bool {
	for _, m := range allDisplayModes {
		if disp.Contains(m) && d.Contains(m) {
			return true
		}
	}
	return false
}

func (disp DisplayMode) String() string {
	if disp == NoMode {
		return "NoMode"
	}
	var names []string
	for _, m := range allDisplayModes {
		if disp.Contains(m) {
			names = append(names, displayNames[m])
		}
	}
	return strings.Join(names, " ")
}

// Symbol returns a Unicode symbol for a mode, used in tree dumps.
func (disp DisplayMode) Symbol() string {
	switch {
	case disp == NoMode:
		return "–"
	case disp.Contains(DisplayNone):
		return "∅"
	case disp.Contains(FlexMode):
		return "▤"
	case disp.Overlaps(TableMode | TableRowMode | TableCellMode):
		return "▥"
	case disp.Contains(BlockMode):
		return "▩"
	case disp.Contains(InlineMode):
		return "►"
	}
	return "?"
}

// ParseDisplay returns mode flags for a value of property "display".
// Unknown modes are reported as errors, together with BlockMode as a
// fallback.
func ParseDisplay(v Value) (DisplayMode, error) {
	if v == nil {
		return NoMode, nil
	}
	k, ok := v.(Keyword)
	if !ok {
		return BlockMode | FlowMode, fmt.Errorf("unknown display mode: %v", v)
	}
	switch k {
	case "none":
		return DisplayNone, nil
	case "block":
		return BlockMode | FlowMode, nil
	case "inline":
		return InlineMode | FlowMode, nil
	case "flexbox":
		return BlockMode | FlexMode, nil
	case "table":
		return BlockMode | TableMode, nil
	case "table-row":
		return BlockMode | TableRowMode, nil
	case "table-cell":
		return BlockMode | TableCellMode, nil
	}
	return BlockMode | FlowMode, fmt.Errorf("unknown display mode: %s", k)
}
