// Package web parses web command flags and runs the icon HTTP server.
package web

import (
	"context"
	"flag"

	entrypoint "github.com/sunit1986/JioBharatIQ-Server/internal/platform/cmd"
	"github.com/sunit1986/JioBharatIQ-Server/internal/services/web"
)

// ParseConfig parses environment and flags into a web.Config. Flags
// override ICONS_WEB_* variables.
func ParseConfig(fs *flag.FlagSet, args []string) (web.Config, error) {
	var cfg web.Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return web.Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.ThemeFile, "theme", cfg.ThemeFile, "YAML palette replacing the built-in theme")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return web.Config{}, err
	}
	return cfg, nil
}

// Run starts the icon web server.
func Run(ctx context.Context, cfg web.Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		return web.Run(ctx, cfg)
	})
}
