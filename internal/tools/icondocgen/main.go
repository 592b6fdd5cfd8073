// Command icondocgen writes the markdown icon catalog under docs/.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sunit1986/JioBharatIQ-Server/internal/platform/config"
	"github.com/sunit1986/JioBharatIQ-Server/internal/platform/icons"
)

const defaultOut = "docs/icon-catalog.md"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		config.Exitf("icondocgen: %v", err)
	}
}

func run(args []string, stdout io.Writer, stderr io.Writer) error {
	var (
		outPath  string
		rootFlag string
		check    bool
	)
	flags := flag.NewFlagSet("icondocgen", flag.ContinueOnError)
	flags.StringVar(&outPath, "out", defaultOut, "output path for the icon catalog, relative to the module root")
	flags.StringVar(&rootFlag, "root", "", "module root (defaults to locating go.mod)")
	flags.BoolVar(&check, "check", false, "fail when the catalog on disk is stale instead of writing it")
	flags.SetOutput(stderr)
	if err := flags.Parse(args); err != nil {
		return err
	}

	root, err := resolveRoot(rootFlag)
	if err != nil {
		return err
	}
	output := outPath
	if !filepath.IsAbs(output) {
		output = filepath.Join(root, outPath)
	}

	content := []byte(icons.CatalogMarkdown())
	if check {
		existing, err := os.ReadFile(output)
		if err != nil {
			return fmt.Errorf("read catalog: %w", err)
		}
		if !bytes.Equal(existing, content) {
			return fmt.Errorf("%s is stale; run go generate ./internal/platform/icons", outPath)
		}
		return nil
	}

	if err := writeOutput(output, content); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "wrote %s\n", outPath)
	return nil
}

func writeOutput(output string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(output, content, 0o644); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	return nil
}

func resolveRoot(flagRoot string) (string, error) {
	if flagRoot != "" {
		return filepath.Clean(flagRoot), nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working dir: %w", err)
	}
	return findModuleRoot(wd)
}

// findModuleRoot walks upward to the nearest directory holding go.mod.
func findModuleRoot(start string) (string, error) {
	for dir := start; ; {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found above %s", start)
		}
		dir = parent
	}
}
