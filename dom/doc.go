/*
Package dom connects HTML parse trees to the style engine.

Overview

The style engine never inspects elements directly. Instead, every element
presents itself as a selector chain (see package selector): its own simple
selector, prefixed by the simple selectors of its ancestors, root first.
This package builds these chains for nodes of an HTML parse tree
(golang.org/x/net/html).

Dynamic state, like an element being hovered over or focused, is not part of
an HTML parse tree. Clients supply it by a PseudoState function, returning
the active pseudo-classes of an element.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'uistyle.dom'.
func tracer() tracing.Trace {
	return tracing.Select("uistyle.dom")
}
