// Package web serves rendered catalog icons over HTTP.
//
// Routes:
//
//	GET /icons                 sorted icon keys as JSON, optional ?category=
//	GET /icons/search?q=       catalog search as JSON
//	GET /icons/{name}.svg      rendered SVG, styled by ?color=&size=&style=
//	GET /healthz               liveness
package web
