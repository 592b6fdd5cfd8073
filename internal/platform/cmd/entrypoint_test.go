package cmd

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"strings"
	"testing"

	"github.com/sunit1986/JioBharatIQ-Server/internal/platform/logging"
)

type testConfig struct {
	Address string `env:"ICONS_CMD_TEST_ADDRESS" envDefault:"127.0.0.1:8080"`
	Mode    string `env:"ICONS_CMD_TEST_MODE" envDefault:"server"`
}

func TestParseConfigReadsEnvAndFlags(t *testing.T) {
	t.Setenv("ICONS_CMD_TEST_ADDRESS", "env:9000")
	t.Setenv("ICONS_CMD_TEST_MODE", "env-mode")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfgRef := testConfig{}
	if err := ParseConfig(&cfgRef); err != nil {
		t.Fatalf("load config defaults: %v", err)
	}
	fs.StringVar(&cfgRef.Address, "address", cfgRef.Address, "address")
	fs.StringVar(&cfgRef.Mode, "mode", cfgRef.Mode, "mode")

	if err := ParseArgs(fs, []string{"-address", "flag:9001"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if cfgRef.Address != "flag:9001" {
		t.Fatalf("expected flag value for address, got %q", cfgRef.Address)
	}
	if cfgRef.Mode != "env-mode" {
		t.Fatalf("expected env default mode, got %q", cfgRef.Mode)
	}
}

func TestParseConfigFromArgsReadsEnvAndFlags(t *testing.T) {
	t.Setenv("ICONS_CMD_TEST_ADDRESS", "configarg:9000")
	t.Setenv("ICONS_CMD_TEST_MODE", "configarg-mode")

	cfgRef := testConfig{}
	fs := flag.NewFlagSet("configargs", flag.ContinueOnError)
	fs.StringVar(&cfgRef.Address, "address", "", "address")
	fs.StringVar(&cfgRef.Mode, "mode", "", "mode")
	if err := ParseConfigFromArgs(&cfgRef, fs, []string{"-address", "flag:9002"}); err != nil {
		t.Fatalf("parse config and args: %v", err)
	}
	if cfgRef.Address != "flag:9002" {
		t.Fatalf("expected parsed flag address, got %q", cfgRef.Address)
	}
	if cfgRef.Mode != "configarg-mode" {
		t.Fatalf("expected env default mode, got %q", cfgRef.Mode)
	}
}

func TestParseArgsRejectsNilParser(t *testing.T) {
	if err := ParseArgs(nil, []string{}); err == nil {
		t.Fatal("expected parse args to reject nil parser")
	}
}

func TestRunWithTelemetryRejectsMissingInputs(t *testing.T) {
	if err := RunWithTelemetry(context.Background(), "", func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected missing service error")
	}
	if err := RunWithTelemetry(context.Background(), ServiceWeb, nil); err == nil {
		t.Fatal("expected missing run function error")
	}
}

func TestRunWithTelemetryPassesLogger(t *testing.T) {
	t.Setenv("ICONS_OTEL_ENDPOINT", "")

	var buf bytes.Buffer
	log, err := logging.New(logging.Options{Level: "debug", Writer: &buf})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	var got *logging.Logger
	err = RunWithTelemetryAndOptions(context.Background(), ServiceWeb, RunOptions{Logger: log}, func(ctx context.Context) error {
		got = logging.FromContext(ctx)
		return nil
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if got != log {
		t.Fatal("expected run context to carry the configured logger")
	}
	if !strings.Contains(buf.String(), "starting") {
		t.Fatalf("expected startup log, got %q", buf.String())
	}
}

func TestRunWithTelemetryReturnsRunError(t *testing.T) {
	t.Setenv("ICONS_OTEL_ENDPOINT", "")
	t.Setenv("ICONS_LOG_LEVEL", "error")

	want := errors.New("boom")
	err := RunWithTelemetry(context.Background(), ServiceMCP, func(context.Context) error { return want })
	if !errors.Is(err, want) {
		t.Fatalf("expected run error, got %v", err)
	}
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	t.Setenv("ICONS_LOG_LEVEL", "shouting")

	if _, err := NewLogger(ServiceWeb); err == nil {
		t.Fatal("expected invalid level error")
	}
}
