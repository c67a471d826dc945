package css_test

import (
	"image/color"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uistyle/css"
)

func TestNumberUnit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.css")
	defer teardown()
	//
	for _, x := range []struct {
		in  string
		out css.NumberUnit
	}{
		{"12", css.Number(12)},
		{"-5px", css.Dimen(-5, css.PX)},
		{"0.5vw", css.Dimen(0.5, css.VW)},
		{"100%", css.Dimen(100, css.Percent)},
		{"3pt", css.Dimen(3, css.PT)},
	} {
		n, err := css.ParseNumberUnit(x.in)
		if err != nil {
			t.Errorf("expected %q to parse, got %v", x.in, err)
		} else if n != x.out {
			t.Errorf("expected %q to be %v, is %v", x.in, x.out, n)
		}
	}
	for _, bad := range []string{".5", "5em", "px", "1.", ""} {
		if _, err := css.ParseNumberUnit(bad); err == nil {
			t.Errorf("expected %q to be rejected", bad)
		}
	}
}

func TestNumberMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.css")
	defer teardown()
	//
	var f float64
	n := css.Dimen(10, css.PX)
	switch m := n.Match(); m {
	case m.Unitless(&f):
		t.Errorf("expected 10px not to match unit-less numbers")
	case m.Unit(css.PX, &f):
		if f != 10 {
			t.Errorf("expected f = 10, is %v", f)
		}
	default:
		t.Errorf("expected 10px to match unit px")
	}
	v := css.Dimen(50, css.VH)
	switch m := v.Match(); m {
	case m.ViewRelative(&f):
		t.Logf("view relative %v", f)
	default:
		t.Errorf("expected 50vh to be view relative")
	}
}

func TestParseColor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.css")
	defer teardown()
	//
	for _, x := range []struct {
		in  string
		out color.NRGBA
	}{
		{"red", color.NRGBA{0xff, 0, 0, 0xff}},
		{"#1e90ff", color.NRGBA{0x1e, 0x90, 0xff, 0xff}},
		{"rgb(0, 128, 255)", color.NRGBA{0, 128, 255, 255}},
		{"rgba(10,20,30,0.5)", color.NRGBA{10, 20, 30, 128}},
		{"hsl(0, 100%, 50%)", color.NRGBA{0xff, 0, 0, 0xff}},
		{"hsl(120, 100%, 25%)", color.NRGBA{0, 0x80, 0, 0xff}},
		{"hsla(240, 100%, 50%, 0)", color.NRGBA{0, 0, 0xff, 0}},
		{"transparent", color.NRGBA{}},
	} {
		c, err := css.ParseColor(x.in)
		if err != nil {
			t.Errorf("expected %q to parse, got %v", x.in, err)
			continue
		}
		if c.NRGBA() != x.out {
			t.Errorf("expected %q to be %v, is %v", x.in, x.out, c.NRGBA())
		}
	}
	if _, err := css.ParseColor("reddish"); err == nil {
		t.Errorf("expected unknown color name to be rejected")
	}
	if _, err := css.ParseColor("hsla(1, 2%, 3%)"); err == nil {
		t.Errorf("expected hsla without alpha to be rejected")
	}
}

func TestColorString(t *testing.T) {
	c, _ := css.ParseColor("dodgerblue")
	if c.String() != "#1e90ff" {
		t.Errorf("expected #1e90ff, is %s", c)
	}
	if css.Transparent.String() != "transparent" {
		t.Errorf("expected 'transparent', is %s", css.Transparent)
	}
	var _ color.Color = c
}

func TestValuePattern(t *testing.T) {
	patterns := css.Patterns[string]{
		Color:   "background-color",
		Default: "?",
	}
	red, _ := css.ParseColor("red")
	if g := css.ValuePattern[string](red).OneOf(patterns); g != "background-color" {
		t.Errorf("expected color pattern, is %q", g)
	}
	u := css.URL("img.png")
	if g := css.Otherwise(css.ValuePattern[string](u), patterns, "background-image"); g != "background-image" {
		t.Errorf("expected fallback pattern, is %q", g)
	}
	if !css.IsInitial(css.Keyword("initial")) || css.IsInitial(css.Keyword("inline")) {
		t.Errorf("expected IsInitial to detect keyword initial only")
	}
}
