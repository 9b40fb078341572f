/*
Package specimen renders the "Font Families" page of a design-system
styleguide.

The page shows the primary and secondary font families of the toolkit,
their character sets and weights, and the Fibonacci-based font size scale.
Rendering produces golang.org/x/net/html nodes; the matching stylesheet is
available from Stylesheet. All page data are immutable tables, accessible
through functions returning copies.

Rendering is a pure function of its arguments: calling FontFamilies twice
with equal Props yields identical trees.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package specimen

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'specimen.page'.
func tracer() tracing.Trace {
	return tracing.Select("specimen.page")
}
