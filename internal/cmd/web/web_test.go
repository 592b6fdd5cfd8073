package web

import (
	"context"
	"flag"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sunit1986/JioBharatIQ-Server/internal/services/web"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != "localhost:8086" {
		t.Fatalf("expected default http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.ThemeFile != "" {
		t.Fatalf("expected no theme file, got %q", cfg.ThemeFile)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("ICONS_WEB_HTTP_ADDR", "env-http")
	t.Setenv("ICONS_THEME_FILE", "/etc/icons/env.yaml")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-theme", "/etc/icons/flag.yaml"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != "env-http" {
		t.Fatalf("expected env http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.ThemeFile != "/etc/icons/flag.yaml" {
		t.Fatalf("expected flag theme file, got %q", cfg.ThemeFile)
	}
}

func TestParseConfigRejectsUnknownFlag(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	if _, err := ParseConfig(fs, []string{"-auth-addr", "x"}); err == nil {
		t.Fatal("expected error for unknown flag")
	}
}

func TestRunReportsThemeError(t *testing.T) {
	err := Run(context.Background(), web.Config{
		HTTPAddr:  "127.0.0.1:0",
		ThemeFile: filepath.Join(t.TempDir(), "missing.yaml"),
	})
	if err == nil || !strings.Contains(err.Error(), "load theme") {
		t.Fatalf("expected theme error, got %v", err)
	}
}
