// SPDX-License-Identifier: MPL-2.0

// Package workspace manages versioned workspace directories: siblings named
// <prefix><n> (workspace_v1, workspace_v2, ...) under a common base path.
package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Workspace is one versioned workspace directory.
type Workspace struct {
	// Path is the absolute workspace directory.
	Path string
	// Version is the numeric suffix parsed from the directory name.
	Version int
}

// Name returns the workspace directory name.
func (w Workspace) Name() string {
	return filepath.Base(w.Path)
}

// PrimaryRepo returns the primary repository checkout inside the workspace.
func (w Workspace) PrimaryRepo(repoName string) string {
	return filepath.Join(w.Path, repoName)
}

// List returns the existing workspaces under basePath whose names are
// prefix followed by a positive integer, sorted by version. A missing base
// path yields an empty list, not an error.
func List(basePath, prefix string) ([]Workspace, error) {
	entries, err := os.ReadDir(basePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list workspaces in %s: %w", basePath, err)
	}

	var workspaces []Workspace
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}
		version, err := strconv.Atoi(strings.TrimPrefix(entry.Name(), prefix))
		if err != nil || version < 1 {
			continue
		}
		workspaces = append(workspaces, Workspace{
			Path:    filepath.Join(basePath, entry.Name()),
			Version: version,
		})
	}

	sort.Slice(workspaces, func(i, j int) bool {
		return workspaces[i].Version < workspaces[j].Version
	})
	return workspaces, nil
}

// Next returns the first absent versioned workspace path, starting at 1.
// A gap left by a deleted workspace is reused.
func Next(basePath, prefix string) Workspace {
	for version := 1; ; version++ {
		path := filepath.Join(basePath, fmt.Sprintf("%s%d", prefix, version))
		if _, err := os.Stat(path); err != nil {
			return Workspace{Path: path, Version: version}
		}
	}
}

// Latest returns the highest-versioned existing workspace, or false when
// none exist.
func Latest(basePath, prefix string) (Workspace, bool, error) {
	workspaces, err := List(basePath, prefix)
	if err != nil {
		return Workspace{}, false, err
	}
	if len(workspaces) == 0 {
		return Workspace{}, false, nil
	}
	return workspaces[len(workspaces)-1], true, nil
}
