/*
Package resources locates fonts for the specimen page.

Fonts are searched in the font registry, among the system fonts, in the
list produced by fontconfig and finally at the Google Fonts service. As
resource loading may be a time-consuming task, some functions in this
package will work in an async/await fashion by returning a promise.
Functions named

   Resolve…(…)

will return a resource-specific promise type, which the client will call later
to receive the loaded resource. The call to the promise-function will then block
until loading has completed or the context is done.

Configuration is read from a schuko.Configuration with keys

   app-key          name of the application's folders in the user's cache and config dirs
   google-api-key   key for the Google Fonts developer API (env GOOGLE_API_KEY as fallback)
   google-fonts-api endpoint of the Google Fonts directory, defaults to the public one
   fontconfig       absolute path of the 'fc-list' binary

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package resources

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'specimen.resources'.
func tracer() tracing.Trace {
	return tracing.Select("specimen.resources")
}
