// SPDX-License-Identifier: MPL-2.0

package mount

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reflexisdev/rwsup/internal/config"
	"github.com/reflexisdev/rwsup/internal/testutil"
	"github.com/reflexisdev/rwsup/pkg/types"
)

// writeRepoTree fabricates a repository checkout with the WebContent
// sources the entry table links against.
func writeRepoTree(t *testing.T, repo string) {
	t.Helper()
	wc := filepath.Join(repo, "WebContent")

	testutil.MustMkdirAll(t, filepath.Join(wc, "upload"))
	testutil.MustMkdirAll(t, filepath.Join(wc, "images"))
	for _, folder := range staticConfigFolders {
		testutil.MustMkdirAll(t, filepath.Join(wc, "staticconfig", folder))
	}
	testutil.MustWriteFile(t, filepath.Join(wc, "staticconfig", "File_Address.ini"), "[files]\n")
	testutil.MustWriteFile(t, filepath.Join(wc, "WEB-INF", "scheduler.xml"), "<scheduler/>\n")
	testutil.MustMkdirAll(t, filepath.Join(wc, "WEB-INF", "classes", "com", "reflexis", "i18n", "resources"))
	for _, folder := range sharedWebFolders {
		testutil.MustMkdirAll(t, filepath.Join(wc, folder))
	}
}

func testLayout(t *testing.T, tenants ...types.TenantID) Layout {
	t.Helper()
	dir := t.TempDir()
	repo := filepath.Join(dir, "repo")
	writeRepoTree(t, repo)

	return Layout{
		MountRoot:    types.FilesystemPath(filepath.Join(dir, "mount")),
		AppName:      "RWS4",
		ConfigFolder: "knlconfig",
		RepoPath:     types.FilesystemPath(repo),
		Tenants:      tenants,
	}
}

func TestNewLayout(t *testing.T) {
	cfg := config.MountConfig{
		BasePath:     "/opt",
		FolderName:   "mount",
		AppName:      "RWS4",
		ConfigFolder: "knlconfig",
		OwnerIDs:     "111110099 121500199",
	}

	layout, err := NewLayout(cfg, "/work/repo")
	if err != nil {
		t.Fatalf("Expected layout to build, got %v", err)
	}
	if layout.MountRoot.String() != filepath.Join("/opt", "mount") {
		t.Errorf("Expected mount root under base path, got %s", layout.MountRoot)
	}
	if len(layout.Tenants) != 2 {
		t.Errorf("Expected 2 tenants, got %d", len(layout.Tenants))
	}
}

func TestDesiredEntryCounts(t *testing.T) {
	layout := testLayout(t, "A", "B")
	entries := layout.Desired()

	// 13 entries per tenant (A, B, DEFAULT) plus 8 shared entries.
	if len(entries) != 47 {
		t.Fatalf("Expected 47 entries for two tenants, got %d", len(entries))
	}

	counts := map[EntryKind]int{}
	for _, e := range entries {
		counts[e.Kind]++
	}
	if counts[KindDir] != 9 {
		t.Errorf("Expected 9 directories, got %d", counts[KindDir])
	}
	if counts[KindJunction] != 29 {
		t.Errorf("Expected 29 junctions, got %d", counts[KindJunction])
	}
	if counts[KindHardlink] != 6 {
		t.Errorf("Expected 6 hard links, got %d", counts[KindHardlink])
	}
	if counts[KindEmptyFile] != 3 {
		t.Errorf("Expected 3 empty files, got %d", counts[KindEmptyFile])
	}
}

func TestDesiredIncludesDefaultTenantOnce(t *testing.T) {
	layout := testLayout(t, "A")
	suffix := filepath.Join("staticconfig", "DEFAULT")

	var defaultDirs int
	for _, e := range layout.Desired() {
		if e.Kind == KindDir && strings.HasSuffix(e.Target, suffix) {
			defaultDirs++
		}
	}
	if defaultDirs != 1 {
		t.Errorf("Expected exactly one DEFAULT staticconfig directory, got %d", defaultDirs)
	}
}

func TestDesiredOrder(t *testing.T) {
	layout := testLayout(t, "A", "B")
	entries := layout.Desired()

	// Tenant fan-out in configured order, DEFAULT after, shared assets last.
	firstShared := -1
	lastDefault := -1
	for i, e := range entries {
		if strings.Contains(e.Target, string(filepath.Separator)+"DEFAULT") {
			lastDefault = i
		}
		if firstShared == -1 && e.Kind == KindEmptyFile {
			firstShared = i
		}
	}
	if lastDefault == -1 || firstShared == -1 {
		t.Fatal("Expected both DEFAULT and shared entries in the table")
	}
	if lastDefault > firstShared {
		t.Errorf("Expected DEFAULT entries before shared entries, got DEFAULT at %d and shared at %d",
			lastDefault, firstShared)
	}
}

func TestValidateMissingRepo(t *testing.T) {
	layout := testLayout(t, "A")
	layout.RepoPath = types.FilesystemPath(filepath.Join(t.TempDir(), "nowhere"))

	if err := layout.Validate(); !errors.Is(err, ErrSourceRepoMissing) {
		t.Errorf("Expected ErrSourceRepoMissing, got %v", err)
	}
}

func TestValidateEmptyFields(t *testing.T) {
	layout := testLayout(t, "A")
	layout.AppName = ""

	if err := layout.Validate(); !errors.Is(err, ErrIncompleteLayout) {
		t.Errorf("Expected ErrIncompleteLayout, got %v", err)
	}
}

func TestValidateNoTenants(t *testing.T) {
	layout := testLayout(t)

	if err := layout.Validate(); !errors.Is(err, config.ErrNoTenants) {
		t.Errorf("Expected ErrNoTenants, got %v", err)
	}
}

func TestEntryKindString(t *testing.T) {
	if KindJunction.String() != "junction" {
		t.Errorf("Expected junction, got %s", KindJunction)
	}
	if EntryKind(99).String() != "kind(99)" {
		t.Errorf("Expected kind(99), got %s", EntryKind(99))
	}
}
