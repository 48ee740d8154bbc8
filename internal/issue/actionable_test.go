// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableErrorMessage(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewErrorContext().
		WithOperation("create virtual environment").
		WithResource(".venv").
		Wrap(cause).
		Build()

	want := "failed to create virtual environment: .venv: permission denied"
	if got := err.Error(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}

	if !errors.Is(err, cause) {
		t.Error("Expected errors.Is to reach the cause through Unwrap")
	}
}

func TestActionableErrorFormatSuggestions(t *testing.T) {
	err := NewErrorContext().
		WithOperation("load configuration").
		WithResource(".env").
		WithSuggestion("Copy .env.example to .env").
		WithSuggestion("Run rwsup from the project directory").
		Build()

	out := err.Format(false)
	if !strings.Contains(out, "• Copy .env.example to .env") {
		t.Errorf("Expected first suggestion bullet in output, got %q", out)
	}
	if !strings.Contains(out, "• Run rwsup from the project directory") {
		t.Errorf("Expected second suggestion bullet in output, got %q", out)
	}
}

func TestActionableErrorFormatVerboseChain(t *testing.T) {
	inner := errors.New("inner")
	wrapped := WrapWithOperation(inner, "probe dependency")

	out := wrapped.Format(true)
	if !strings.Contains(out, "Error chain:") {
		t.Errorf("Expected error chain in verbose output, got %q", out)
	}
	if !strings.Contains(out, "inner") {
		t.Errorf("Expected inner error in chain, got %q", out)
	}
}

func TestWrapWithOperationNil(t *testing.T) {
	if WrapWithOperation(nil, "anything") != nil {
		t.Error("Expected nil for nil cause")
	}
	if WrapWithContext(nil, "anything", "res") != nil {
		t.Error("Expected nil for nil cause")
	}
}
