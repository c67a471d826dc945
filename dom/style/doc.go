/*
Package style holds style declarations and computed styles.

A declaration binds a property to a value. A value is either a scalar or a
sequence of space-separated values, as in

    border: 1px red;        // sequence
    color: red;             // scalar

Shorthand properties (margin, padding, border, border-color, font,
background, height, overflow) are expanded into longhand properties by
Expand, which is where the cascade happens: Expand consumes declarations in
cascade order and later declarations overwrite earlier ones. The result is a
flat PropertyMap.

Property groups are kept for documentation and debugging output, they do not
structure the computed styles.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'uistyle.style'
func tracer() tracing.Trace {
	return tracing.Select("uistyle.style")
}
