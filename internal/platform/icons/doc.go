// Package icons resolves loosely formatted icon names to styled vector
// graphics.
//
// The built-in catalog maps canonical PascalCase keys (IcAdd, PsJioMart) to
// stateless constructors. A Registry freezes that catalog at startup and a
// Resolver turns caller identifiers such as "ic_add" into a rendered SVG
// element with theme styling applied. Unknown or empty identifiers resolve to
// an empty Result rather than an error so that a missing icon never breaks
// the surrounding render.
package icons

//go:generate go run ../../tools/icondocgen -out docs/icon-catalog.md
