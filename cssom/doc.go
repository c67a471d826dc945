/*
Package cssom provides stylesheets and the cascade of the style engine.

Overview

A stylesheet is written in a CSS-like dialect:

    button, div.dialog > *.ok {
        color: rgb(20, 20, 20);
        border: 1px red;
        margin: 2 4;
    }
    button:hover { color: dodgerblue; }

Rules are applied top-down: for every element the declarations of all
matching rule sets are concatenated in stylesheet order, and any later
conflicting declaration overrides an earlier one. Specificity is computed
for every match, but does not reorder rule sets. There is no `!important`.

Elements present themselves as selector chains (see package selector), the
simple selectors of their ancestors and of themselves, root first:

    pmap := cssom.ComputeStyle(selector.Chain{"body", "div.dialog", "button:hover"}, sheet)

Stylesheets cache the declaration lists and match results for every chain
they have seen. Computing the style of an element is expected to happen on
every layout pass, so lookups are made cheap; loading or appending rules
drops all caches. A stylesheet may optionally build a trie of its selectors
to speed up finding candidate rule sets (see Options).

Differences to CSS

Whitespace between simple selectors is significant only in that it starts a
new simple selector: `div .x` means `div *.x`. Only the descendant and the
child combinator are supported. Numbers may not start with a decimal point.
A declaration has to be terminated by a semicolon.

There is not very much open source Go code around for supporting us
in implementing a styling engine, except the great work of
https://godoc.org/github.com/andybalholm/cascadia and
https://github.com/aymerick/douceur, the latter of which is used to import
standard CSS (see package douceuradapter).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'uistyle.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("uistyle.cssom")
}
