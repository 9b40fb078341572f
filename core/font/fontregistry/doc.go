/*
Package fontregistry manages a registry for loaded fonts.

Fonts are stored under a normalized name, which combines the family name
with style and weight ("lato-italic-700"). Typecases derived from stored
fonts are cached per size.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fontregistry

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'specimen.font'
func tracer() tracing.Trace {
	return tracing.Select("specimen.font")
}
