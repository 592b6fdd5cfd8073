// Package main renders and browses the icon catalog from the command line.
package main

import (
	"os"

	"github.com/sunit1986/JioBharatIQ-Server/internal/cmd/iconctl"
)

func main() {
	os.Exit(iconctl.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
