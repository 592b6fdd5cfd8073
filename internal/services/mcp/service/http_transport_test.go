package service

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func TestIsAllowedHostHeader(t *testing.T) {
	transport := NewHTTPTransport(Config{AllowedHosts: []string{" Icons.Example.com ", ""}}, nil, nil)

	tests := []struct {
		host string
		want bool
	}{
		{host: "localhost:8081", want: true},
		{host: "127.0.0.1", want: true},
		{host: "[::1]:8081", want: true},
		{host: "icons.example.com", want: true},
		{host: "ICONS.EXAMPLE.COM:443", want: true},
		{host: "evil.example.com", want: false},
		{host: "", want: false},
		{host: "[::1", want: false},
	}
	for _, tt := range tests {
		if got := transport.isAllowedHostHeader(tt.host); got != tt.want {
			t.Errorf("isAllowedHostHeader(%q) = %v, want %v", tt.host, got, tt.want)
		}
	}
}

func TestNewHTTPTransportDefaultsAddr(t *testing.T) {
	transport := NewHTTPTransport(Config{}, nil, nil)
	if transport.addr != defaultHTTPAddr {
		t.Fatalf("expected default addr %q, got %q", defaultHTTPAddr, transport.addr)
	}
}

func TestHTTPHealth(t *testing.T) {
	srv, err := New()
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	handler := NewHTTPTransport(Config{}, srv.mcpServer, nil).Handler()

	req := httptest.NewRequest(http.MethodGet, "http://localhost/mcp/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || rec.Body.String() != "OK" {
		t.Fatalf("health = %d %q", rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodPost, "http://localhost/mcp/health", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "http://attacker.test/mcp/health", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for disallowed host, got %d", rec.Code)
	}
}

func TestHTTPTransportServesStreamableClients(t *testing.T) {
	srv, err := New()
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	ts := httptest.NewServer(NewHTTPTransport(Config{}, srv.mcpServer, nil).Handler())
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{Endpoint: ts.URL + "/mcp"}, nil)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer session.Close()

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "render_icon",
		Arguments: map[string]any{"name": "ic_search"},
	})
	if err != nil {
		t.Fatalf("call tool: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected tool error: %+v", res.Content)
	}
}

func TestHTTPTransportStartStopsOnCancel(t *testing.T) {
	srv, err := New()
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	transport := NewHTTPTransport(Config{}, srv.mcpServer, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- transport.serve(ctx, listener) }()

	url := "http://" + listener.Addr().String() + "/mcp/health"
	var resp *http.Response
	for i := 0; i < 50; i++ {
		resp, err = http.Get(url)
		if err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("health request: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if string(body) != "OK" {
		t.Fatalf("unexpected health body %q", body)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serve returned error: %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("transport did not stop")
	}
}

func TestHTTPTransportStartRequiresServer(t *testing.T) {
	if err := NewHTTPTransport(Config{}, nil, nil).Start(context.Background()); err == nil {
		t.Fatal("expected missing server error")
	}
}
