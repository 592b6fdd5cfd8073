package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sunit1986/JioBharatIQ-Server/internal/platform/icons"
	"github.com/sunit1986/JioBharatIQ-Server/internal/platform/logging"
	"github.com/sunit1986/JioBharatIQ-Server/internal/platform/theme"
	"github.com/sunit1986/JioBharatIQ-Server/internal/services/mcp/domain"
)

const (
	// serverName identifies this MCP server to clients.
	serverName = "JioBharatIQ Icons MCP"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

type mcpRegistrationKind int

const (
	mcpRegistrationKindTools mcpRegistrationKind = iota
	mcpRegistrationKindResources
)

func (k mcpRegistrationKind) String() string {
	if k == mcpRegistrationKindResources {
		return "resources"
	}
	return "tools"
}

type mcpRegistrationModule struct {
	name     string
	kind     mcpRegistrationKind
	register func(*mcp.Server) error
}

const (
	mcpIconToolsModuleName     = "icon-tools"
	mcpIconResourcesModuleName = "icon-resources"
)

// TransportKind identifies the MCP transport implementation.
type TransportKind string

const (
	// TransportStdio uses standard input/output for MCP.
	TransportStdio TransportKind = "stdio"
	// TransportHTTP runs MCP over streamable HTTP for remote clients.
	TransportHTTP TransportKind = "http"
)

// Config configures the MCP server.
type Config struct {
	Transport TransportKind `env:"ICONS_MCP_TRANSPORT" envDefault:"stdio"`
	// HTTPAddr is the listen address for the HTTP transport.
	HTTPAddr string `env:"ICONS_MCP_HTTP_ADDR" envDefault:"localhost:8081"`
	// AllowedHosts extends the loopback hosts accepted in Host headers.
	AllowedHosts []string `env:"ICONS_MCP_ALLOWED_HOSTS" envSeparator:","`
	// ThemeFile replaces the embedded palette when set.
	ThemeFile string `env:"ICONS_THEME_FILE"`
}

// Server hosts the MCP server.
type Server struct {
	mcpServer *mcp.Server
	resolver  *icons.Resolver
	catalog   []icons.Definition
	log       *logging.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithResolver replaces the resolver used by render_icon and icon resources.
func WithResolver(resolver *icons.Resolver) Option {
	return func(s *Server) {
		if resolver != nil {
			s.resolver = resolver
		}
	}
}

// WithCatalog replaces the definitions searched and listed by the tools.
func WithCatalog(defs []icons.Definition) Option {
	return func(s *Server) {
		if defs != nil {
			s.catalog = defs
		}
	}
}

// WithLogger sets the logger.
func WithLogger(log *logging.Logger) Option {
	return func(s *Server) {
		if log != nil {
			s.log = log
		}
	}
}

// New creates an MCP server exposing the icon tools and resources.
func New(opts ...Option) (*Server, error) {
	server := &Server{
		catalog: icons.Catalog(),
		log:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(server)
	}
	if server.resolver == nil {
		server.resolver = icons.NewResolver(nil)
	}

	server.mcpServer = mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, &mcp.ServerOptions{
		CompletionHandler: server.completionHandler,
	})
	for _, module := range newMCPRegistrationModules(server) {
		if err := module.register(server.mcpServer); err != nil {
			return nil, fmt.Errorf("register MCP module %q: %w", module.name, err)
		}
		server.log.WithFields(map[string]any{"module": module.name, "kind": module.kind.String()}).Debug("registered MCP module")
	}
	return server, nil
}

// NewFromConfig creates a server whose resolver uses the configured theme.
func NewFromConfig(cfg Config, log *logging.Logger) (*Server, error) {
	opts := []Option{WithLogger(log)}
	if cfg.ThemeFile != "" {
		th, err := theme.Load(cfg.ThemeFile)
		if err != nil {
			return nil, fmt.Errorf("load theme: %w", err)
		}
		opts = append(opts, WithResolver(icons.NewResolver(nil, icons.WithTheme(th))))
	}
	return New(opts...)
}

func newMCPRegistrationModules(server *Server) []mcpRegistrationModule {
	return []mcpRegistrationModule{
		{
			name: mcpIconToolsModuleName,
			kind: mcpRegistrationKindTools,
			register: func(target *mcp.Server) error {
				mcp.AddTool(target, domain.RenderIconTool(), domain.RenderIconHandler(server.resolver, server.log))
				mcp.AddTool(target, domain.FindIconTool(), domain.FindIconHandler(server.catalog))
				mcp.AddTool(target, domain.ListIconsTool(), domain.ListIconsHandler(server.catalog))
				return nil
			},
		},
		{
			name: mcpIconResourcesModuleName,
			kind: mcpRegistrationKindResources,
			register: func(target *mcp.Server) error {
				target.AddResourceTemplate(domain.IconResourceTemplate(), domain.IconResourceHandler(server.resolver))
				return nil
			},
		},
	}
}

// completionHandler completes the name argument of icon resources with
// catalog keys in snake case.
func (s *Server) completionHandler(_ context.Context, req *mcp.CompleteRequest) (*mcp.CompleteResult, error) {
	values := []string{}
	if req != nil && req.Params != nil && req.Params.Argument.Name == "name" {
		result, err := icons.Find(s.catalog, req.Params.Argument.Value, icons.MaxSearchLimit)
		if err == nil {
			for _, match := range result.Matches {
				values = append(values, match.Name)
			}
		}
	}
	return &mcp.CompleteResult{
		Completion: mcp.CompletionResultDetails{
			Values: values,
			Total:  len(values),
		},
	}, nil
}

// Run is the service entrypoint for MCP and blocks until context
// cancellation.
func Run(ctx context.Context, cfg Config) error {
	log := logging.FromContext(ctx)
	if cfg.Transport == "" {
		cfg.Transport = TransportStdio
	}
	server, err := NewFromConfig(cfg, log)
	if err != nil {
		return err
	}

	switch cfg.Transport {
	case TransportStdio:
		log.Info("serving MCP on stdio")
		return server.serveWithTransport(ctx, &mcp.StdioTransport{})
	case TransportHTTP:
		return NewHTTPTransport(cfg, server.mcpServer, log).Start(ctx)
	default:
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}
}

// Serve starts the MCP server on stdio and blocks until it stops or the
// context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

// serveWithTransport starts the MCP server using the provided transport.
// Context cancellation is a clean exit.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}
