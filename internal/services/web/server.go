package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sunit1986/JioBharatIQ-Server/internal/platform/icons"
	"github.com/sunit1986/JioBharatIQ-Server/internal/platform/logging"
	"github.com/sunit1986/JioBharatIQ-Server/internal/platform/theme"
	"github.com/sunit1986/JioBharatIQ-Server/internal/platform/timeouts"
)

// Config configures the web server.
type Config struct {
	HTTPAddr string `env:"ICONS_WEB_HTTP_ADDR" envDefault:"localhost:8086"`
	// ThemeFile replaces the embedded palette when set.
	ThemeFile string `env:"ICONS_THEME_FILE"`
}

// Server is the icon HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	log        *logging.Logger
}

// NewServer builds a server for config that renders with resolver. A nil
// resolver renders from the built-in catalog.
func NewServer(config Config, resolver *icons.Resolver, log *logging.Logger) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if log == nil {
		log = logging.Nop()
	}

	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           NewHandler(resolver, icons.Catalog(), log),
		ReadHeaderTimeout: timeouts.ReadHeader,
		WriteTimeout:      timeouts.Write,
		IdleTimeout:       timeouts.Idle,
	}

	return &Server{
		httpAddr:   httpAddr,
		httpServer: httpServer,
		log:        log,
	}, nil
}

// ListenAndServe serves HTTP until ctx ends, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	s.log.With("addr", s.httpAddr).Info("icon web server listening")
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Run builds a server from cfg and serves until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	log := logging.FromContext(ctx)
	opts := []icons.ResolverOption{}
	if cfg.ThemeFile != "" {
		th, err := theme.Load(cfg.ThemeFile)
		if err != nil {
			return fmt.Errorf("load theme: %w", err)
		}
		opts = append(opts, icons.WithTheme(th))
	}

	server, err := NewServer(cfg, icons.NewResolver(nil, opts...), log)
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}
	return server.ListenAndServe(ctx)
}
