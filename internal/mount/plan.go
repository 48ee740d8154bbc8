// SPDX-License-Identifier: MPL-2.0

package mount

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Diff returns the subset of entries whose target does not yet exist.
// Lstat is used so that a dangling junction still counts as present:
// created links are never inspected or validated after creation.
func Diff(entries []Entry) ([]Entry, error) {
	var missing []Entry
	for _, e := range entries {
		_, err := os.Lstat(e.Target)
		switch {
		case err == nil:
			continue
		case os.IsNotExist(err):
			missing = append(missing, e)
		default:
			return nil, fmt.Errorf("failed to inspect %s: %w", e.Target, err)
		}
	}
	return missing, nil
}

// Apply creates the given entries in order. It stops at the first failure,
// leaving whatever subset was created — there are no retries and no
// rollback; a later run's Diff picks up where this one stopped.
func Apply(ctx context.Context, entries []Entry, logger *log.Logger) error {
	for _, e := range entries {
		select {
		case <-ctx.Done():
			return fmt.Errorf("provisioning canceled: %w", ctx.Err())
		default:
		}

		if err := create(e); err != nil {
			return err
		}
		logger.Info("created", "kind", e.Kind, "target", e.Target)
	}
	return nil
}

// Plan validates the layout, expands the desired entry table, and diffs it
// against the filesystem. The returned slice is what Apply would create.
func Plan(layout Layout) ([]Entry, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	return Diff(layout.Desired())
}

// Provision is the one-shot entry point: plan, then apply the missing
// entries. Returns the entries that were created.
func Provision(ctx context.Context, layout Layout, logger *log.Logger) ([]Entry, error) {
	missing, err := Plan(layout)
	if err != nil {
		return nil, err
	}
	if len(missing) == 0 {
		logger.Info("mount tree already provisioned", "root", layout.MountRoot)
		return nil, nil
	}
	if err := Apply(ctx, missing, logger); err != nil {
		return nil, err
	}
	return missing, nil
}

// create materializes a single entry. Parent directories are created as
// needed; the entry target itself must not exist (Diff guarantees that for
// a single invocation, nothing guards against concurrent runs).
func create(e Entry) error {
	switch e.Kind {
	case KindDir:
		if err := os.MkdirAll(e.Target, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", e.Target, err)
		}
		return nil
	case KindJunction:
		if err := ensureParent(e.Target); err != nil {
			return err
		}
		if err := createJunction(e.Target, e.Source); err != nil {
			return fmt.Errorf("failed to create junction %s -> %s: %w", e.Target, e.Source, err)
		}
		return nil
	case KindHardlink:
		if err := ensureParent(e.Target); err != nil {
			return err
		}
		if err := os.Link(e.Source, e.Target); err != nil {
			return fmt.Errorf("failed to create hard link %s -> %s: %w", e.Target, e.Source, err)
		}
		return nil
	case KindEmptyFile:
		if err := ensureParent(e.Target); err != nil {
			return err
		}
		f, err := os.OpenFile(e.Target, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("failed to create file %s: %w", e.Target, err)
		}
		return f.Close()
	default:
		return fmt.Errorf("unknown entry kind %d for %s", int(e.Kind), e.Target)
	}
}

func ensureParent(target string) error {
	parent := filepath.Dir(target)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return fmt.Errorf("failed to create parent directory %s: %w", parent, err)
	}
	return nil
}
