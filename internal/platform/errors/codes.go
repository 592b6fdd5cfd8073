// Package errors provides structured error handling for icon services.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Catalog errors
	CodeCatalogMalformed Code = "CATALOG_MALFORMED"

	// Request errors
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeIconNotFound    Code = "ICON_NOT_FOUND"

	// Theme errors
	CodeThemeInvalid Code = "THEME_INVALID"
)

// HTTPStatus maps domain codes to HTTP status codes.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeInvalidArgument:
		return http.StatusBadRequest
	case CodeIconNotFound:
		return http.StatusNotFound
	case CodeCatalogMalformed, CodeThemeInvalid:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
