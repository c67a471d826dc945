package cssom

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uistyle/css"
	"github.com/npillmayer/uistyle/dom/style"
	"github.com/npillmayer/uistyle/selector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSheet(t *testing.T, text string, indexed bool) *Stylesheet {
	opts := DefaultOptions()
	opts.Indexed = indexed
	s, err := FromText(text, opts)
	require.NoError(t, err)
	return s
}

func colorValue(name string) style.Value {
	c, err := css.ParseColor(name)
	if err != nil {
		panic(err)
	}
	return style.Scalar(c)
}

func numValue(n float64) style.Value {
	return style.Scalar(css.Number(n))
}

func TestCascadeScenarios(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.cssom")
	defer teardown()
	//
	for _, indexed := range []bool{true, false} {
		s := mustSheet(t, "button{color:red;} button:hover{color:blue;}", indexed)
		pmap := ComputeStyle(selector.Chain{"button"}, s)
		assert.Equal(t, colorValue("red"), pmap["color"])
		pmap = ComputeStyle(selector.Chain{"button:hover"}, s)
		assert.Equal(t, colorValue("blue"), pmap["color"])
		//
		s = mustSheet(t, "* {margin:0;} .box{margin:1 2;}", indexed)
		pmap = ComputeStyle(selector.Chain{"div.box"}, s)
		assert.Equal(t, style.PropertyMap{
			"margin-top":    numValue(1),
			"margin-right":  numValue(2),
			"margin-bottom": numValue(1),
			"margin-left":   numValue(2),
		}, pmap)
	}
}

func TestDescendantAndChild(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.cssom")
	defer teardown()
	//
	chain := selector.Chain{"div", "span"} // span is a child of div
	for _, indexed := range []bool{true, false} {
		for _, x := range []struct {
			text  string
			match bool
		}{
			{"div span {color:red;}", true},
			{"div > p {color:red;}", false},
			{"div > span {color:red;}", true},
			{"body > span {color:red;}", false},
			{"div div span {color:red;}", false},
		} {
			s := mustSheet(t, x.text, indexed)
			if m := s.HasMatches(chain); m != x.match {
				t.Errorf("indexed=%v: expected %q to match %v = %v, is %v", indexed, x.text, chain, x.match, m)
			}
			if _, ok := ComputeStyle(chain, s)["color"]; ok != x.match {
				t.Errorf("indexed=%v: expected color set = %v for %q", indexed, x.match, x.text)
			}
		}
	}
}

func TestCascadeOrderIgnoresSpecificity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.cssom")
	defer teardown()
	//
	for _, indexed := range []bool{true, false} {
		s := mustSheet(t, "#main.x { color: red; } div { color: blue; }", indexed)
		pmap := ComputeStyle(selector.Chain{"div.x#main"}, s)
		assert.Equal(t, colorValue("blue"), pmap["color"], "indexed=%v", indexed)
		matches := s.MatchingSelectors(selector.Chain{"div.x#main"})
		require.Len(t, matches, 2)
		if !matches[1].Specificity.Less(matches[0].Specificity) {
			t.Errorf("expected later rule to be less specific, have %v", matches)
		}
	}
}

func TestInitialIsDropped(t *testing.T) {
	s := mustSheet(t, "div{color:red; width: 10; height: 10;} div.x{color:initial;}", true)
	pmap := ComputeStyle(selector.Chain{"div.x"}, s)
	if _, ok := pmap["color"]; ok {
		t.Errorf("expected color to be dropped, is %v", pmap["color"])
	}
	assert.Equal(t, []string{"height", "max-height", "min-height", "width"}, pmap.Keys())
}

const equivalenceSheet = `
* { margin: 0; }
div { padding: 1 2; }
div.box, span.box { border: 1px red; }
div > span { color: blue; }
div span { color: green; }
body div > .x:hover { cursor: pointer; }
#main .item[data-k="v"] { width: 10; }
p::before { content: "x"; }
ul > li > a[href] { font: italic bold 14 serif; }
button:hover:active { background: #102030 url("img.png"); }
div, div#main, body > div { overflow: scroll; }
`

func TestIndexedEqualsRecursive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.cssom")
	defer teardown()
	//
	indexed := mustSheet(t, equivalenceSheet, true)
	recursive := mustSheet(t, equivalenceSheet, false)
	chains := []selector.Chain{
		{"div"}, {"span"}, {"div", "span"}, {"div", "p", "span"},
		{"body", "div", "span.x:hover"}, {"body", "div", "p", "span.x:hover"},
		{"body", "div#main"}, {"html", "body", "div#main.box", "span.item[data-k][data-k=\"v\"]"},
		{"div#main", `span.item[data-k="w"]`}, {"p::before"}, {"p"},
		{"ul", "li", "a[href]"}, {"ul", "li", "p", "a[href]"}, {"button:active:hover"},
		{"button:hover"}, {"div.box"}, {""}, {"div", ""}, {"div", "div", "span.box"},
	}
	for _, chain := range chains {
		a, b := indexed.MatchingSelectors(chain), recursive.MatchingSelectors(chain)
		if len(a) != len(b) {
			t.Errorf("%v: indexed has %d matches, recursive %d", chain, len(a), len(b))
			continue
		}
		for i := range a {
			if a[i].Rule.String() != b[i].Rule.String() || a[i].Specificity.IDs != b[i].Specificity.IDs ||
				a[i].Specificity.Classes != b[i].Specificity.Classes || a[i].Specificity.Types != b[i].Specificity.Types {
				t.Errorf("%v: match %d differs: %v vs %v", chain, i, a[i], b[i])
			}
		}
		pa, pb := ComputeStyle(chain, indexed), ComputeStyle(chain, recursive)
		if !pa.Equal(pb) {
			t.Errorf("%v: computed styles differ:\n%s\nvs\n%s", chain, pa, pb)
		}
	}
	pmap := ComputeStyle(selector.Chain{"div", "span"}, indexed)
	assert.Equal(t, colorValue("green"), pmap["color"])
	pmap = ComputeStyle(selector.Chain{"ul", "li", "a[href]"}, indexed)
	assert.Equal(t, style.Scalar(css.Number(14)), pmap["font-size"])
	assert.Equal(t, style.Keyword("serif"), pmap["font-family"])
	if len(ComputeStyle(selector.Chain{""}, indexed)) != 0 {
		t.Errorf("expected text content not to be styled")
	}
	t.Logf("\n%s", indexed.DumpIndex())
}

func TestReparseIsIdempotent(t *testing.T) {
	a := mustSheet(t, equivalenceSheet, true)
	b := mustSheet(t, equivalenceSheet, true)
	for _, chain := range []selector.Chain{{"div", "span"}, {"ul", "li", "a[href]"}, {"button:active:hover"}} {
		if pa, pb := ComputeStyle(chain, a), ComputeStyle(chain, b); !pa.Equal(pb) {
			t.Errorf("%v: expected equal styles, have\n%s\nvs\n%s", chain, pa, pb)
		}
	}
}

func TestFailedLoadLeavesRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.cssom")
	defer teardown()
	//
	s := mustSheet(t, "div { color: red; }", true)
	chain := selector.Chain{"div"}
	before := ComputeStyle(chain, s)
	if err := s.LoadFromText("div { color: blue; } p { margin 1; }"); err == nil {
		t.Fatalf("expected load to fail")
	}
	if len(s.Rules()) != 1 {
		t.Errorf("expected 1 rule set after failed load, have %d", len(s.Rules()))
	}
	if after := ComputeStyle(chain, s); !after.Equal(before) {
		t.Errorf("expected style unchanged, is %s", after)
	}
	if err := s.LoadFromFile(filepath.Join(t.TempDir(), "missing.css")); err == nil {
		t.Errorf("expected missing file to fail")
	}
	assert.False(t, s.Empty())
}

func TestAppendInvalidatesCaches(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.cssom")
	defer teardown()
	//
	for _, indexed := range []bool{true, false} {
		s := mustSheet(t, "div { color: red; }", indexed)
		assert.Equal(t, colorValue("red"), ComputeStyle(selector.Chain{"div"}, s)["color"])
		assert.False(t, HasMatches(selector.Chain{"p"}, s))
		s.Append(mustSheet(t, "div { color: blue; } p { margin: 1; }", indexed))
		assert.Equal(t, colorValue("blue"), ComputeStyle(selector.Chain{"div"}, s)["color"])
		assert.True(t, HasMatches(selector.Chain{"p"}, nil, s))
		s.Append(s)
		if len(s.Rules()) != 6 {
			t.Errorf("expected 6 rule sets after self-append, have %d", len(s.Rules()))
		}
		require.NoError(t, s.LoadFromText("p { margin: 2; }"))
		assert.False(t, s.HasMatches(selector.Chain{"div"}))
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ui.css")
	require.NoError(t, os.WriteFile(path, []byte("/* defaults */\nbutton {\n  cursor: pointer;\n}\n"), 0644))
	s, err := FromFile(path, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, style.Scalar(css.Cursor("pointer")), ComputeStyle(selector.Chain{"button"}, s)["cursor"])
	require.NoError(t, os.WriteFile(path, []byte("button {\n  cursor pointer;\n}\n"), 0644))
	err = s.LoadFromFile(path)
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("expected syntax error on line 2, have %v", err)
	}
}

func TestTrimStyling(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.cssom")
	defer teardown()
	//
	s := mustSheet(t, "a{color:red;} a:hover{color:blue;} a.x{margin:1;} b{color:green;} a[href]{width:1;}", true)
	chain := selector.Chain{"div", "a:hover"}
	trimmed := TrimStyling(chain, selector.DefaultTrim, s)
	if n := len(trimmed.Rules()); n != 3 {
		t.Errorf("expected 3 trimmed rule sets, have %d:\n%s", n, trimmed)
	}
	for _, rs := range s.MatchingRules(chain) {
		found := false
		for _, tr := range trimmed.Rules() {
			found = found || tr == rs
		}
		if !found {
			t.Errorf("expected matching rule set %s to survive trimming", rs)
		}
	}
	if s.Trim(selector.Chain{"div", "a:active"}) != trimmed {
		t.Errorf("expected trimmed styling to be re-used for a:active")
	}
	assert.True(t, ComputeStyle(chain, trimmed).Equal(ComputeStyle(chain, s)))
	s.Append(mustSheet(t, "a{margin:2;}", true))
	if TrimStyling(chain, selector.DefaultTrim, s) == trimmed {
		t.Errorf("expected trimmed styling to be recomputed after append")
	}
}

func TestTrimStylingIsKeptPerSheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.cssom")
	defer teardown()
	//
	base := mustSheet(t, "a{color:red;}", true)
	extra := mustSheet(t, "a:hover{color:blue;}", true)
	chain := selector.Chain{"a:hover"}
	first := TrimStyling(chain, selector.DefaultTrim, base, extra)
	if TrimStyling(chain, selector.DefaultTrim, base, extra) != first {
		t.Errorf("expected trimmed styling to be re-used")
	}
	for i := 0; i < 3; i++ {
		extra.Append(mustSheet(t, "a{margin:1;}", true))
		again := TrimStyling(chain, selector.DefaultTrim, base, extra)
		if again == first {
			t.Errorf("expected trimmed styling to be recomputed after change of second sheet")
		}
		if n := len(again.Rules()); n != 3+i {
			t.Errorf("expected %d trimmed rule sets, have %d", 3+i, n)
		}
		first = again
	}
	base.trimMu.Lock()
	n := len(base.trims)
	base.trimMu.Unlock()
	if n != 1 {
		t.Errorf("expected a single trim entry for one chain, have %d", n)
	}
	if len(extra.trims) != 0 {
		t.Errorf("expected trim entries to live with the first sheet only")
	}
	FromInline("color: red", "a", "", DefaultOptions())
	if base.trims == nil || len(base.trims) != 1 {
		t.Errorf("expected new stylesheets not to touch other sheets' trim entries")
	}
}

func TestProgrammaticStylesheets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.cssom")
	defer teardown()
	//
	opts := DefaultOptions()
	inline, err := FromInline("color: red", "button", "hover", opts)
	require.NoError(t, err)
	assert.Equal(t, colorValue("red"), ComputeStyle(selector.Chain{"button:hover"}, inline)["color"])
	assert.False(t, inline.HasMatches(selector.Chain{"button"}))
	empty, err := FromInline("  ", "", "", opts)
	require.NoError(t, err)
	assert.True(t, empty.Empty())
	//
	pmap := style.PropertyMap{"color": colorValue("blue"), "margin-top": numValue(3)}
	s, err := FromDeclarationMap(pmap, nil, opts)
	require.NoError(t, err)
	assert.Equal(t, pmap, ComputeStyle(selector.Chain{"p"}, s))
	_, err = FromDeclarationMap(pmap, selector.Chain{">", "p"}, opts)
	assert.Error(t, err)
	//
	s, err = FromSelectorDeclarations([]SelectorDeclarations{
		{Selector: selector.Chain{"p"}, Declarations: style.PropertyMap{"width": numValue(1)}},
		{Selector: selector.Chain{"div", ">", "p"}, Declarations: style.PropertyMap{"width": numValue(2)}},
	}, opts)
	require.NoError(t, err)
	assert.Equal(t, numValue(2), ComputeStyle(selector.Chain{"div", "p"}, s)["width"])
	assert.Equal(t, numValue(1), ComputeStyle(selector.Chain{"p"}, s)["width"])
	//
	frozen, err := s.FilterStyling(selector.Chain{"div", "p"})
	require.NoError(t, err)
	require.Len(t, frozen.Rules(), 1)
	assert.Equal(t, numValue(2), ComputeStyle(selector.Chain{"body", "div", "p"}, frozen)["width"])
	//
	combined := CombineStyling(true, s, nil, inline)
	assert.Len(t, combined.Rules(), 3)
	assert.True(t, combined.Options().Inline)
	m := combined.MatchingSelectors(selector.Chain{"button:hover"})
	require.Len(t, m, 1)
	assert.Equal(t, 1, m[0].Specificity.Inline)
}

func TestOptionsFromConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.cssom")
	defer teardown()
	//
	opts, err := OptionsFromConfig(testconfig.Conf{})
	require.NoError(t, err)
	if !opts.Indexed || opts.Inline || opts.Trim != selector.DefaultTrim {
		t.Errorf("expected default options, have %+v", opts)
	}
	opts, err = OptionsFromConfig(testconfig.Conf{
		ConfigIndexed: false,
		ConfigTrim:    "pseudoclasses, attributes",
		ConfigInline:  "true",
	})
	require.NoError(t, err)
	if opts.Indexed || !opts.Inline || opts.Trim != selector.StripPseudoClasses|selector.StripAttributes {
		t.Errorf("expected configured options, have %+v", opts)
	}
	_, err = OptionsFromConfig(testconfig.Conf{ConfigTrim: "colors"})
	assert.Error(t, err)
}
