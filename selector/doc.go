/*
Package selector implements simple selectors, selector chains and the
reference matching algorithm of the style engine.

A simple selector is written like

    button.primary#ok:hover::before[disabled][type="submit"]

and is decomposed into a Part: a type (or "*"), an optional id and sets of
classes, pseudo-classes, pseudo-elements, attributes and attribute values.

A Chain is a root-first sequence of simple selectors. Style rules may
intersperse the child combinator ">" between two simple selectors; two
adjacent simple selectors are joined by the descendant combinator. An
element presents its chain as the simple selectors of its ancestors and of
itself, each being the immediate child of its predecessor:

    Chain{"body", "div.dialog", "button:hover"}      // element chain
    Chain{"div.dialog", ">", "button"}              // style chain

Decomposition, re-joining, stripping of facets and specificity computation
are memoized in a Cache. The cache is keyed by immutable strings, so it never
needs to be invalidated. Default is the process-wide cache; clients which
want isolation create their own with NewCache.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package selector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'uistyle.selector'.
func tracer() tracing.Trace {
	return tracing.Select("uistyle.selector")
}
