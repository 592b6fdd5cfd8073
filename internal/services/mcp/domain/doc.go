// Package domain translates MCP tool and resource calls into icon catalog
// operations.
//
// Each tool is a pair: a Tool function describing the schema and a Handler
// function closing over the resolver or catalog it reads from. Handlers never
// mutate the catalog.
package domain
