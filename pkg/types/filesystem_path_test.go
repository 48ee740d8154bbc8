// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"testing"
)

func TestFilesystemPathIsValid(t *testing.T) {
	if ok, _ := FilesystemPath("/opt/mount").IsValid(); !ok {
		t.Error("Expected /opt/mount to be valid")
	}
	if ok, _ := FilesystemPath("relative/path").IsValid(); !ok {
		t.Error("Expected relative/path to be valid")
	}

	for _, p := range []FilesystemPath{"", "   ", "\t"} {
		ok, errs := p.IsValid()
		if ok {
			t.Errorf("Expected %q to be invalid", p)
			continue
		}
		if !errors.Is(errs[0], ErrInvalidFilesystemPath) {
			t.Errorf("Expected error to wrap ErrInvalidFilesystemPath, got %v", errs[0])
		}
	}
}
