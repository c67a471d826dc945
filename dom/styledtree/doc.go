/*
Package styledtree is a straightforward implementation of a styled document tree.

Overview

Build creates a styled tree from an HTML parse tree and a list of
stylesheets. Every element and text node of the HTML tree gets a styled
node, holding its selector chain and its computed style. Properties not set
on a node are looked up from its parent if they are inherited (see
style.IsInherited), or taken from the default styling otherwise.

Dynamic state, e.g. an element being hovered over, changes the selector
chains of elements. After such a change, Restyle computes the styles of a
sub-tree again.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'uistyle.dom'.
func tracer() tracing.Trace {
	return tracing.Select("uistyle.dom")
}
