// SPDX-License-Identifier: MPL-2.0

package mount

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reflexisdev/rwsup/internal/testutil"
	"github.com/reflexisdev/rwsup/pkg/types"
)

func hookLayout(t *testing.T) Layout {
	t.Helper()
	root := filepath.Join(t.TempDir(), "mount")
	testutil.MustMkdirAll(t, root)
	return Layout{
		MountRoot:    types.FilesystemPath(root),
		AppName:      "RWS4",
		ConfigFolder: "knlconfig",
		RepoPath:     "/work/repo",
		Tenants:      []types.TenantID{"A", "B"},
	}
}

func TestRunHookRunsInMountRoot(t *testing.T) {
	layout := hookLayout(t)
	var stdout, stderr bytes.Buffer

	code, err := RunHook(context.Background(), "echo done > hook.out", layout, &stdout, &stderr)
	if err != nil {
		t.Fatalf("Expected hook to run, got %v", err)
	}
	if code != 0 {
		t.Errorf("Expected exit code 0, got %d", code)
	}

	out, err := os.ReadFile(filepath.Join(layout.MountRoot.String(), "hook.out"))
	if err != nil {
		t.Fatalf("Expected hook output in mount root: %v", err)
	}
	if strings.TrimSpace(string(out)) != "done" {
		t.Errorf("Expected hook output, got %q", out)
	}
}

func TestRunHookEnvironment(t *testing.T) {
	layout := hookLayout(t)
	var stdout, stderr bytes.Buffer

	code, err := RunHook(context.Background(), `echo "$RWSUP_APP_NAME:$RWSUP_TENANTS"`, layout, &stdout, &stderr)
	if err != nil {
		t.Fatalf("Expected hook to run, got %v", err)
	}
	if code != 0 {
		t.Errorf("Expected exit code 0, got %d", code)
	}
	if got := strings.TrimSpace(stdout.String()); got != "RWS4:A B" {
		t.Errorf("Expected hook environment in output, got %q", got)
	}
}

func TestRunHookExitCode(t *testing.T) {
	layout := hookLayout(t)
	var stdout, stderr bytes.Buffer

	code, err := RunHook(context.Background(), "exit 3", layout, &stdout, &stderr)
	if err != nil {
		t.Fatalf("Expected non-zero exit to not be an error, got %v", err)
	}
	if code != 3 {
		t.Errorf("Expected exit code 3, got %d", code)
	}
}

func TestRunHookParseError(t *testing.T) {
	layout := hookLayout(t)
	var stdout, stderr bytes.Buffer

	_, err := RunHook(context.Background(), "if then fi (", layout, &stdout, &stderr)
	if err == nil {
		t.Fatal("Expected parse error for malformed script")
	}
}
