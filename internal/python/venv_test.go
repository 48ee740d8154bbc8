// SPDX-License-Identifier: MPL-2.0

package python

import (
	"path/filepath"
	"testing"

	"github.com/reflexisdev/rwsup/internal/testutil"
)

func TestVenvExists(t *testing.T) {
	root := filepath.Join(t.TempDir(), ".venv")
	v := NewVenv(root)

	if v.Exists() {
		t.Error("Expected absent directory to not exist")
	}

	// A bare directory without pyvenv.cfg is not an environment.
	testutil.MustMkdirAll(t, root)
	if v.Exists() {
		t.Error("Expected directory without pyvenv.cfg to not count as an environment")
	}

	testutil.MustWriteFile(t, filepath.Join(root, "pyvenv.cfg"), "home = /usr/bin\n")
	if !v.Exists() {
		t.Error("Expected directory with pyvenv.cfg to exist")
	}
}

func TestVenvPaths(t *testing.T) {
	v := NewVenv(".venv")

	if v.Python() == "" {
		t.Error("Expected non-empty interpreter path")
	}
	if v.ActivationScript() == "" {
		t.Error("Expected non-empty activation script path")
	}
	if filepath.Dir(filepath.Dir(v.Python())) != ".venv" {
		t.Errorf("Expected interpreter under the environment root, got %s", v.Python())
	}
}

func TestVenvHasActivationScript(t *testing.T) {
	root := filepath.Join(t.TempDir(), ".venv")
	v := NewVenv(root)

	if v.HasActivationScript() {
		t.Error("Expected no activation script in absent environment")
	}

	testutil.MustWriteFile(t, v.ActivationScript(), "# activate\n")
	if !v.HasActivationScript() {
		t.Error("Expected activation script to be detected")
	}
}
