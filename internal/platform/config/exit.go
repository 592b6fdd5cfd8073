package config

import (
	"fmt"
	"io"
	"os"
)

// Exitf writes a formatted error message to stderr and exits with code 1.
// It provides a consistent fatal-exit pattern for CLI entry points.
func Exitf(format string, args ...any) {
	os.Exit(Reportf(os.Stderr, 1, format, args...))
}

// Reportf writes a formatted message line to w and returns code, for
// callers that pick their own exit path.
func Reportf(w io.Writer, code int, format string, args ...any) int {
	fmt.Fprintf(w, format+"\n", args...)
	return code
}
