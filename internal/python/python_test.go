// SPDX-License-Identifier: MPL-2.0

package python

import (
	"errors"
	"testing"
)

func TestCandidates(t *testing.T) {
	candidates := Candidates()
	if len(candidates) != 2 {
		t.Fatalf("Expected 2 candidates, got %d", len(candidates))
	}
	for _, c := range candidates {
		if c == "" {
			t.Error("Expected non-empty candidate name")
		}
	}
}

func TestFindNoInterpreter(t *testing.T) {
	// An empty PATH guarantees no candidate resolves.
	t.Setenv("PATH", t.TempDir())

	_, err := Find()
	if err == nil {
		t.Fatal("Expected error with empty PATH")
	}
	if !errors.Is(err, ErrInterpreterNotFound) {
		t.Errorf("Expected ErrInterpreterNotFound, got %v", err)
	}
}
