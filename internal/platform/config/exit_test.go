package config_test

import (
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/sunit1986/JioBharatIQ-Server/internal/platform/config"
)

// TestExitf_ExitsWithCode1 verifies that Exitf writes to stderr and exits
// with code 1. It uses the subprocess test pattern because os.Exit cannot be
// intercepted in-process.
func TestExitf_ExitsWithCode1(t *testing.T) {
	if os.Getenv("TEST_EXITF_SUBPROCESS") == "1" {
		config.Exitf("fatal: %s", "something broke")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestExitf_ExitsWithCode1$")
	cmd.Env = append(os.Environ(), "TEST_EXITF_SUBPROCESS=1")

	out, err := cmd.CombinedOutput()

	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected *exec.ExitError, got %T: %v", err, err)
	}
	if exitErr.ExitCode() != 1 {
		t.Fatalf("expected exit code 1, got %d", exitErr.ExitCode())
	}
	if !strings.Contains(string(out), "fatal: something broke") {
		t.Fatalf("expected stderr to contain %q, got %q", "fatal: something broke", string(out))
	}
}

func TestReportfWritesLine(t *testing.T) {
	var b strings.Builder
	if code := config.Reportf(&b, 2, "icon %q not found", "ic_x"); code != 2 {
		t.Fatalf("expected code 2, got %d", code)
	}
	if b.String() != "icon \"ic_x\" not found\n" {
		t.Fatalf("unexpected output %q", b.String())
	}
}
