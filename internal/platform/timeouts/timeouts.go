// Package timeouts defines the HTTP timeouts shared by the icon services.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Write caps the time spent writing a single response.
const Write = 10 * time.Second

// Idle closes keep-alive connections that stay quiet this long.
const Idle = 60 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second
