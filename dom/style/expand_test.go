package style

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uistyle/css"
	"github.com/stretchr/testify/assert"
)

func num(n float64) css.Value { return css.Number(n) }
func px(n float64) css.Value  { return css.Dimen(n, css.PX) }
func color(s string) css.Value {
	c, err := css.ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func TestExpandTRBL(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.style")
	defer teardown()
	//
	for _, x := range []struct {
		v      Value
		t, r   css.Value
		bt, l  css.Value
	}{
		{Scalar(num(1)), num(1), num(1), num(1), num(1)},
		{Sequence(num(1)), num(1), num(1), num(1), num(1)},
		{Sequence(num(1), num(2)), num(1), num(2), num(1), num(2)},
		{Sequence(num(1), num(2), num(3)), num(1), num(2), num(3), num(2)},
		{Sequence(num(1), num(2), num(3), num(4)), num(1), num(2), num(3), num(4)},
		{Sequence(num(1), num(2), num(3), num(4), num(5)), num(1), num(2), num(3), num(4)},
	} {
		pmap := Expand([]Declaration{{"margin", x.v}})
		got := []css.Value{
			pmap["margin-top"].First(), pmap["margin-right"].First(),
			pmap["margin-bottom"].First(), pmap["margin-left"].First(),
		}
		assert.Equal(t, []css.Value{x.t, x.r, x.bt, x.l}, got, "margin: %s", x.v)
		if len(pmap) != 4 {
			t.Errorf("expected exactly 4 margin properties, have %d", len(pmap))
		}
	}
}

func TestExpandBorder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.style")
	defer teardown()
	//
	pmap := Expand([]Declaration{{"border", Sequence(px(1), color("red"), color("blue"))}})
	if w := pmap["border-width"]; !w.Equal(Scalar(px(1))) {
		t.Errorf("expected border-width 1px, is %v", w)
	}
	if c := pmap["border-top-color"].First(); c != color("red") {
		t.Errorf("expected top color red, is %v", c)
	}
	if c := pmap["border-right-color"].First(); c != color("blue") {
		t.Errorf("expected right color blue, is %v", c)
	}
	if c := pmap["border-left-color"].First(); c != color("blue") {
		t.Errorf("expected left color blue, is %v", c)
	}
	// bare color
	pmap = Expand([]Declaration{{"border", Scalar(color("green"))}})
	if _, ok := pmap["border-width"]; ok {
		t.Errorf("expected no border-width for bare color")
	}
	if len(pmap) != 4 || pmap["border-bottom-color"].First() != color("green") {
		t.Errorf("expected 4 green border colors, have %v", pmap)
	}
	// bare width
	pmap = Expand([]Declaration{{"border", Scalar(num(2))}})
	if len(pmap) != 1 || !pmap["border-width"].Equal(Scalar(num(2))) {
		t.Errorf("expected border-width 2 only, have %v", pmap)
	}
	pmap = Expand([]Declaration{{"border-color", Sequence(color("red"), color("blue"))}})
	if pmap["border-bottom-color"].First() != color("red") || pmap["border-left-color"].First() != color("blue") {
		t.Errorf("expected TRBL border colors, have %v", pmap)
	}
}

func TestExpandFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.style")
	defer teardown()
	//
	pmap := Expand([]Declaration{{"font", Sequence(css.Keyword("italic"), css.Keyword("bold"))}})
	assert.Equal(t, Keyword("italic"), pmap["font-style"])
	assert.Equal(t, Keyword("bold"), pmap["font-weight"])
	assert.Equal(t, Scalar(num(12)), pmap["font-size"])
	assert.Equal(t, Keyword("sans-serif"), pmap["font-family"])
	pmap = Expand([]Declaration{{"font", Keyword("caption")}})
	assert.Equal(t, Scalar(num(12)), pmap["font-size"])
	assert.Equal(t, Keyword("normal"), pmap["font-style"])
}

func TestExpandDimensionsAndOverflow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.style")
	defer teardown()
	//
	pmap := Expand([]Declaration{
		{"width", Scalar(px(100))},
		{"height", Scalar(px(50))},
		{"overflow", Keyword("scroll")},
	})
	assert.Equal(t, []string{"height", "max-height", "min-height", "overflow-x", "overflow-y", "width"}, pmap.Keys())
	assert.Equal(t, Scalar(px(50)), pmap["max-height"])
	assert.Equal(t, Keyword("auto"), pmap["overflow-x"])
	assert.Equal(t, Keyword("scroll"), pmap["overflow-y"])
	pmap = Expand([]Declaration{{"overflow", Keyword("hidden")}})
	assert.Equal(t, Keyword("hidden"), pmap["overflow-x"])
	assert.Equal(t, Keyword("hidden"), pmap["overflow-y"])
}

func TestExpandBackground(t *testing.T) {
	pmap := Expand([]Declaration{{"background", Sequence(color("red"), css.URL("img.png"))}})
	assert.Equal(t, Scalar(color("red")), pmap["background-color"])
	assert.Equal(t, Scalar(css.URL("img.png")), pmap["background-image"])
}

func TestExpandCascadeAndInitial(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.style")
	defer teardown()
	//
	pmap := Expand([]Declaration{
		{"color", Scalar(color("red"))},
		{"margin", Scalar(num(5))},
		{"margin-left", Scalar(num(7))},
		{"color", Scalar(color("blue"))},
		{"padding", Keyword("initial")},
		{"display", Keyword("block")},
		{"display", Keyword("initial")},
	})
	if c := pmap["color"].First(); c != color("blue") {
		t.Errorf("expected later color to win, is %v", c)
	}
	if m := pmap["margin-left"].First(); m != num(7) {
		t.Errorf("expected margin-left 7, is %v", m)
	}
	for _, k := range []string{"display", "padding-top", "padding-left"} {
		if _, ok := pmap[k]; ok {
			t.Errorf("expected %s to be dropped as initial", k)
		}
	}
}

func TestPropertyMap(t *testing.T) {
	pmap := PropertyMap{
		"margin-top": Scalar(num(1)),
		"color":      Scalar(color("red")),
		"foo":        Keyword("bar"),
	}
	if g := pmap.Group(PGMargins); len(g) != 1 {
		t.Errorf("expected one margin property, have %v", g)
	}
	if GroupNameFromPropertyKey("foo") != PGX {
		t.Errorf("expected unknown property to be in group X")
	}
	decls := pmap.Declarations()
	if len(decls) != 3 || decls[0].Property != "color" {
		t.Errorf("expected sorted declarations, have %v", decls)
	}
	if !pmap.Equal(Expand(decls)) {
		t.Errorf("expected re-expansion of longhands to be identity")
	}
	t.Logf("\n%s", pmap)
	if !IsInherited("font-size") || IsInherited("margin-top") {
		t.Errorf("expected fonts to be inherited and margins not")
	}
}

func TestValueShape(t *testing.T) {
	if Sequence(num(1)).Equal(Scalar(num(1))) {
		t.Errorf("expected sequence and scalar to differ")
	}
	if !Keyword("initial").IsInitial() || Sequence(css.Initial).IsInitial() {
		t.Errorf("expected only scalar initial to be initial")
	}
	if (Value{}).First() != nil || !(Value{}).IsEmpty() {
		t.Errorf("expected zero value to be empty")
	}
	if s := Sequence(px(1), color("red")).String(); s != "1px #ff0000" {
		t.Errorf("expected '1px #ff0000', is %q", s)
	}
}
