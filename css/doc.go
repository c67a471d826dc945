/*
Package css provides the value types of style declarations.

Values are opaque to the style engine: it never computes with them, it only
moves them from declarations into computed styles. Consumers (layout, paint)
interpret them, usually with the help of the matchers in this package.

A value is one of

    Keyword     e.g. inline, bold, sans-serif
    NumberUnit  a signed decimal with an optional unit px, vw, vh, pt or %
    Color       RGBA, from rgb(), rgba(), hsl(), hsla(), #RRGGBB, transparent or a color name
    Cursor      a mouse cursor name
    String      a quoted string
    URL         the location of url(…)

The parse functions are pure and safe for concurrent use.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'uistyle.css'.
func tracer() tracing.Trace {
	return tracing.Select("uistyle.css")
}
