package web

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewServerRequiresAddress(t *testing.T) {
	_, err := NewServer(Config{HTTPAddr: "  "}, nil, nil)
	require.ErrorContains(t, err, "http address is required")
}

func TestListenAndServeRequiresServer(t *testing.T) {
	var server *Server
	require.Error(t, server.ListenAndServe(context.Background()))
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	server, err := NewServer(Config{HTTPAddr: "127.0.0.1:0"}, nil, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.ListenAndServe(ctx)
	}()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}

func TestRunRejectsMissingTheme(t *testing.T) {
	err := Run(context.Background(), Config{
		HTTPAddr:  "127.0.0.1:0",
		ThemeFile: filepath.Join(t.TempDir(), "missing.yaml"),
	})
	require.ErrorContains(t, err, "load theme")
}

func TestRunRejectsInvalidTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte("colors: [not, a, map]\n"), 0o644))

	err := Run(context.Background(), Config{HTTPAddr: "127.0.0.1:0", ThemeFile: path})
	require.ErrorContains(t, err, "load theme")
}
