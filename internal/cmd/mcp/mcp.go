// Package mcp parses MCP command flags and selects stdio or HTTP transport.
package mcp

import (
	"context"
	"flag"
	"strings"

	entrypoint "github.com/sunit1986/JioBharatIQ-Server/internal/platform/cmd"
	"github.com/sunit1986/JioBharatIQ-Server/internal/services/mcp/service"
)

// ParseConfig parses environment and flags into a service.Config. Flags
// override ICONS_MCP_* variables.
func ParseConfig(fs *flag.FlagSet, args []string) (service.Config, error) {
	var cfg service.Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return service.Config{}, err
	}

	transport := string(cfg.Transport)
	allowedHosts := strings.Join(cfg.AllowedHosts, ",")
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP server address (for HTTP transport)")
	fs.StringVar(&transport, "transport", transport, "Transport type: stdio or http")
	fs.StringVar(&allowedHosts, "allowed-hosts", allowedHosts, "Comma separated Host header values accepted besides loopback")
	fs.StringVar(&cfg.ThemeFile, "theme", cfg.ThemeFile, "YAML palette replacing the built-in theme")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return service.Config{}, err
	}
	cfg.Transport = service.TransportKind(strings.ToLower(strings.TrimSpace(transport)))
	cfg.AllowedHosts = splitHosts(allowedHosts)
	return cfg, nil
}

func splitHosts(raw string) []string {
	var hosts []string
	for _, host := range strings.Split(raw, ",") {
		if host = strings.TrimSpace(host); host != "" {
			hosts = append(hosts, host)
		}
	}
	return hosts
}

// Run starts the MCP protocol adapter.
func Run(ctx context.Context, cfg service.Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceMCP, func(ctx context.Context) error {
		return service.Run(ctx, cfg)
	})
}
