// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"testing"
)

func TestExitCodeValidate(t *testing.T) {
	for _, code := range []ExitCode{0, 1, 255} {
		if err := code.Validate(); err != nil {
			t.Errorf("Expected %d to be valid, got %v", code, err)
		}
	}

	for _, code := range []ExitCode{-1, 256} {
		err := code.Validate()
		if err == nil {
			t.Errorf("Expected %d to be invalid", code)
			continue
		}
		if !errors.Is(err, ErrInvalidExitCode) {
			t.Errorf("Expected error to wrap ErrInvalidExitCode, got %v", err)
		}
	}
}

func TestExitCodeIsSuccess(t *testing.T) {
	if !ExitCode(0).IsSuccess() {
		t.Error("Expected 0 to be success")
	}
	if ExitCode(1).IsSuccess() {
		t.Error("Expected 1 to not be success")
	}
}

func TestExitCodeString(t *testing.T) {
	if got := ExitCode(42).String(); got != "42" {
		t.Errorf("Expected 42, got %s", got)
	}
}
