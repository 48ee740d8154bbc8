// SPDX-License-Identifier: MPL-2.0

package workspace

import (
	"path/filepath"
	"testing"

	"github.com/reflexisdev/rwsup/internal/testutil"
)

func TestListSortsAndFilters(t *testing.T) {
	base := t.TempDir()
	for _, name := range []string{
		"workspace_v3", "workspace_v1", "workspace_v10",
		"workspace_vX",  // non-numeric suffix
		"workspace_v0",  // versions start at 1
		"other_v2",      // wrong prefix
		"workspace_v1b", // trailing garbage
	} {
		testutil.MustMkdirAll(t, filepath.Join(base, name))
	}
	testutil.MustWriteFile(t, filepath.Join(base, "workspace_v5"), "a file, not a workspace\n")

	workspaces, err := List(base, "workspace_v")
	if err != nil {
		t.Fatalf("Expected list to succeed, got %v", err)
	}
	if len(workspaces) != 3 {
		t.Fatalf("Expected 3 workspaces, got %d", len(workspaces))
	}

	versions := []int{workspaces[0].Version, workspaces[1].Version, workspaces[2].Version}
	if versions[0] != 1 || versions[1] != 3 || versions[2] != 10 {
		t.Errorf("Expected versions [1 3 10], got %v", versions)
	}
	if workspaces[2].Name() != "workspace_v10" {
		t.Errorf("Expected workspace_v10, got %s", workspaces[2].Name())
	}
}

func TestListMissingBase(t *testing.T) {
	workspaces, err := List(filepath.Join(t.TempDir(), "absent"), "workspace_v")
	if err != nil {
		t.Fatalf("Expected missing base to not be an error, got %v", err)
	}
	if len(workspaces) != 0 {
		t.Errorf("Expected no workspaces, got %d", len(workspaces))
	}
}

func TestNextReusesGaps(t *testing.T) {
	base := t.TempDir()

	next := Next(base, "workspace_v")
	if next.Version != 1 {
		t.Errorf("Expected first workspace to be version 1, got %d", next.Version)
	}

	testutil.MustMkdirAll(t, filepath.Join(base, "workspace_v1"))
	testutil.MustMkdirAll(t, filepath.Join(base, "workspace_v3"))

	next = Next(base, "workspace_v")
	if next.Version != 2 {
		t.Errorf("Expected gap at version 2 to be reused, got %d", next.Version)
	}
	if next.Path != filepath.Join(base, "workspace_v2") {
		t.Errorf("Expected path under base, got %s", next.Path)
	}
}

func TestLatest(t *testing.T) {
	base := t.TempDir()

	if _, ok, err := Latest(base, "workspace_v"); err != nil || ok {
		t.Errorf("Expected no latest workspace in empty base, got ok=%v err=%v", ok, err)
	}

	testutil.MustMkdirAll(t, filepath.Join(base, "workspace_v2"))
	testutil.MustMkdirAll(t, filepath.Join(base, "workspace_v7"))

	latest, ok, err := Latest(base, "workspace_v")
	if err != nil || !ok {
		t.Fatalf("Expected a latest workspace, got ok=%v err=%v", ok, err)
	}
	if latest.Version != 7 {
		t.Errorf("Expected version 7, got %d", latest.Version)
	}
}

func TestPrimaryRepo(t *testing.T) {
	w := Workspace{Path: filepath.Join("/work", "workspace_v4"), Version: 4}
	if got := w.PrimaryRepo("rws"); got != filepath.Join("/work", "workspace_v4", "rws") {
		t.Errorf("Expected repo under workspace, got %s", got)
	}
}
