package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sunit1986/JioBharatIQ-Server/internal/platform/logging"
	"github.com/sunit1986/JioBharatIQ-Server/internal/platform/timeouts"
)

var listenTCP = net.Listen

const defaultHTTPAddr = "localhost:8081"

// HTTPTransport serves MCP over the streamable HTTP transport at /mcp with
// a health check at /mcp/health.
//
// Requests whose Host header is not loopback or explicitly allowed are
// rejected to block DNS rebinding.
type HTTPTransport struct {
	addr         string
	allowedHosts map[string]struct{}
	server       *mcp.Server
	log          *logging.Logger
}

// NewHTTPTransport creates an HTTP transport for server.
func NewHTTPTransport(cfg Config, server *mcp.Server, log *logging.Logger) *HTTPTransport {
	addr := strings.TrimSpace(cfg.HTTPAddr)
	if addr == "" {
		addr = defaultHTTPAddr
	}
	if log == nil {
		log = logging.Nop()
	}
	return &HTTPTransport{
		addr:         addr,
		allowedHosts: parseAllowedHosts(cfg.AllowedHosts),
		server:       server,
		log:          log,
	}
}

// Handler returns the HTTP handler for the transport.
func (t *HTTPTransport) Handler() http.Handler {
	streamable := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return t.server
	}, nil)

	mux := http.NewServeMux()
	mux.Handle("/mcp", t.requireAllowedHost(streamable))
	mux.Handle("/mcp/health", t.requireAllowedHost(http.HandlerFunc(t.handleHealth)))
	return mux
}

// Start listens on the configured address and serves until ctx ends, then
// shuts down gracefully.
func (t *HTTPTransport) Start(ctx context.Context) error {
	if t == nil || t.server == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	listener, err := listenTCP("tcp", t.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", t.addr, err)
	}
	return t.serve(ctx, listener)
}

func (t *HTTPTransport) serve(ctx context.Context, listener net.Listener) error {
	httpServer := &http.Server{
		Handler:           t.Handler(),
		ReadHeaderTimeout: timeouts.ReadHeader,
		IdleTimeout:       timeouts.Idle,
	}

	serveErr := make(chan error, 1)
	go func() {
		t.log.With("addr", listener.Addr().String()).Info("serving MCP over HTTP")
		serveErr <- httpServer.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown MCP HTTP server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve MCP HTTP: %w", err)
	}
}

func (t *HTTPTransport) requireAllowedHost(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !t.isAllowedHostHeader(r.Host) {
			t.log.With("host", r.Host).Warn("rejected MCP request from disallowed host")
			http.Error(w, "Invalid Host header", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (t *HTTPTransport) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		t.log.Error(err, "write health response")
	}
}

// isAllowedHostHeader reports whether host is loopback or configured.
func (t *HTTPTransport) isAllowedHostHeader(host string) bool {
	resolvedHost, ok := normalizeHost(host)
	if !ok {
		return false
	}
	if isLoopbackHost(resolvedHost) {
		return true
	}
	_, ok = t.allowedHosts[strings.ToLower(resolvedHost)]
	return ok
}

// isLoopbackHost reports whether a host is an explicit local loopback name.
func isLoopbackHost(host string) bool {
	switch strings.ToLower(strings.TrimSpace(host)) {
	case "localhost", "127.0.0.1", "::1":
		return true
	default:
		return false
	}
}

func parseAllowedHosts(hosts []string) map[string]struct{} {
	result := make(map[string]struct{}, len(hosts))
	for _, entry := range hosts {
		trimmed := strings.TrimSpace(entry)
		if trimmed == "" {
			continue
		}
		result[strings.ToLower(trimmed)] = struct{}{}
	}
	return result
}

// normalizeHost extracts the hostname portion of a Host header.
func normalizeHost(host string) (string, bool) {
	host = strings.TrimSpace(host)
	if host == "" {
		return "", false
	}

	if strings.HasPrefix(host, "[") {
		if splitHost, _, err := net.SplitHostPort(host); err == nil {
			return splitHost, true
		}
		if strings.HasSuffix(host, "]") {
			return strings.TrimSuffix(strings.TrimPrefix(host, "["), "]"), true
		}
		return "", false
	}

	if strings.Count(host, ":") > 1 {
		return host, true
	}
	if splitHost, _, err := net.SplitHostPort(host); err == nil {
		return splitHost, true
	}
	return host, true
}
