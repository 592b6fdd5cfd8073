package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	err := New(CodeIconNotFound, "icon missing")
	if !errors.Is(err, New(CodeIconNotFound, "other message")) {
		t.Fatal("expected errors with the same code to match")
	}
	if errors.Is(err, New(CodeInvalidArgument, "icon missing")) {
		t.Fatal("expected errors with different codes not to match")
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(CodeCatalogMalformed, "build registry", cause)
	if !errors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be reachable")
	}
	if err.Error() != "build registry: boom" {
		t.Fatalf("Error() = %q", err.Error())
	}
}

func TestGetCodeThroughWrapping(t *testing.T) {
	err := fmt.Errorf("outer: %w", WithMetadata(CodeIconNotFound, "missing", map[string]string{"key": "IcNope"}))
	if got := GetCode(err); got != CodeIconNotFound {
		t.Fatalf("GetCode = %q, want %q", got, CodeIconNotFound)
	}
	if !IsCode(err, CodeIconNotFound) {
		t.Fatal("expected IsCode to match")
	}
	if got := GetMetadata(err)["key"]; got != "IcNope" {
		t.Fatalf("metadata key = %q", got)
	}
	if got := GetCode(errors.New("plain")); got != CodeUnknown {
		t.Fatalf("GetCode(plain) = %q, want %q", got, CodeUnknown)
	}
	if GetMetadata(errors.New("plain")) != nil {
		t.Fatal("expected nil metadata for plain errors")
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeInvalidArgument, http.StatusBadRequest},
		{CodeIconNotFound, http.StatusNotFound},
		{CodeCatalogMalformed, http.StatusInternalServerError},
		{CodeThemeInvalid, http.StatusInternalServerError},
		{CodeUnknown, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := tt.code.HTTPStatus(); got != tt.want {
			t.Errorf("%s.HTTPStatus() = %d, want %d", tt.code, got, tt.want)
		}
	}
}
