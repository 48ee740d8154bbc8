// SPDX-License-Identifier: MPL-2.0

package mount

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/reflexisdev/rwsup/internal/config"
	"github.com/reflexisdev/rwsup/pkg/types"
)

// DefaultTenant is the synthetic, always-present tenant used as the
// fallback configuration and image source.
const DefaultTenant types.TenantID = "DEFAULT"

// webContentDir is the canonical source folder inside the repository.
const webContentDir = "WebContent"

var (
	// ErrSourceRepoMissing is returned when the repository's WebContent
	// folder does not exist. Validation happens before any filesystem
	// mutation, so a bad repo path leaves the mount tree untouched.
	ErrSourceRepoMissing = errors.New("source repository WebContent folder not found")
	// ErrIncompleteLayout is returned when a Layout field is empty.
	ErrIncompleteLayout = errors.New("incomplete mount layout")
)

type (
	// EntryKind classifies one desired filesystem entry.
	EntryKind int

	// Entry is one row of the path mapping table: a target path to create,
	// the source it aliases (for links), and how to create it.
	Entry struct {
		// Target is the absolute path to materialize.
		Target string
		// Source is the absolute link source. Empty for Dir and EmptyFile.
		Source string
		// Kind selects the creation operation.
		Kind EntryKind
	}

	// Layout holds the provisioning inputs. Build one with NewLayout and
	// validate it before expanding the entry table.
	Layout struct {
		// MountRoot is <MOUNT_BASE_PATH>/<MOUNT_FOLDER_NAME>.
		MountRoot types.FilesystemPath
		// AppName is the application folder name inside the mount tree.
		AppName string
		// ConfigFolder is the kernel config folder name inside the mount tree.
		ConfigFolder string
		// RepoPath is the primary repository checkout containing WebContent.
		RepoPath types.FilesystemPath
		// Tenants are the owner identifiers, in configured order. DEFAULT is
		// appended implicitly by Desired and must not appear here.
		Tenants []types.TenantID
	}
)

const (
	// KindDir creates a directory (with parents).
	KindDir EntryKind = iota
	// KindJunction creates a directory junction: the target resolves to the
	// source directory's contents.
	KindJunction
	// KindHardlink creates a hard link sharing the source file's content.
	KindHardlink
	// KindEmptyFile creates an empty regular file.
	KindEmptyFile
)

// String returns the lowercase name of the EntryKind.
func (k EntryKind) String() string {
	switch k {
	case KindDir:
		return "dir"
	case KindJunction:
		return "junction"
	case KindHardlink:
		return "hardlink"
	case KindEmptyFile:
		return "file"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// NewLayout derives a Layout from the mount configuration and the primary
// repository path.
func NewLayout(cfg config.MountConfig, repoPath string) (Layout, error) {
	tenants, err := cfg.Tenants()
	if err != nil {
		return Layout{}, err
	}
	return Layout{
		MountRoot:    types.FilesystemPath(filepath.Join(cfg.BasePath, cfg.FolderName)),
		AppName:      cfg.AppName,
		ConfigFolder: cfg.ConfigFolder,
		RepoPath:     types.FilesystemPath(repoPath),
		Tenants:      tenants,
	}, nil
}

// Validate checks the layout before any filesystem mutation: all fields
// populated, tenant ids usable as path segments, and the source WebContent
// folder present on disk.
func (l Layout) Validate() error {
	for _, f := range []struct {
		name  string
		value string
	}{
		{"mount root", l.MountRoot.String()},
		{"app name", l.AppName},
		{"config folder", l.ConfigFolder},
		{"repo path", l.RepoPath.String()},
	} {
		if ok, _ := types.FilesystemPath(f.value).IsValid(); !ok {
			return fmt.Errorf("%w: %s is empty", ErrIncompleteLayout, f.name)
		}
	}

	if len(l.Tenants) == 0 {
		return config.ErrNoTenants
	}
	for _, t := range l.Tenants {
		if ok, errs := t.IsValid(); !ok {
			return errs[0]
		}
	}

	wc := l.webContent()
	if info, err := os.Stat(wc); err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrSourceRepoMissing, wc)
	}
	return nil
}

// Desired expands the layout into the full entry table, in application
// order: each configured tenant, then the DEFAULT tenant, then the shared
// static-web assets and log files.
func (l Layout) Desired() []Entry {
	var entries []Entry
	for _, tenant := range l.Tenants {
		entries = append(entries, l.tenantEntries(tenant)...)
	}
	entries = append(entries, l.tenantEntries(DefaultTenant)...)
	entries = append(entries, l.sharedEntries()...)
	return entries
}

func (l Layout) webContent() string {
	return filepath.Join(l.RepoPath.String(), webContentDir)
}

func (l Layout) app(parts ...string) string {
	return filepath.Join(append([]string{l.MountRoot.String(), l.AppName}, parts...)...)
}

func (l Layout) kernelConfig(parts ...string) string {
	return filepath.Join(append([]string{l.MountRoot.String(), l.ConfigFolder}, parts...)...)
}

// staticConfigFolders are the per-tenant junctions under staticconfig.
var staticConfigFolders = []string{"algorithms", "config", "reports", "templates", "workflows"}

// sharedWebFolders are the static-web asset junctions shared by all tenants.
var sharedWebFolders = []string{"css", "fonts", "dashboard", "scripts", "themes"}

// logFiles are created empty under <app>/logs on the first run.
var logFiles = []string{"application.log", "scheduler.log", "batch.log"}

// tenantEntries is the fan-out applied once per tenant and once for DEFAULT.
func (l Layout) tenantEntries(tenant types.TenantID) []Entry {
	t := tenant.String()
	wc := l.webContent()

	entries := []Entry{
		{Target: l.app("notifications", t), Kind: KindDir},
		{Target: l.app("upload", t), Source: filepath.Join(wc, "upload"), Kind: KindJunction},
		{Target: l.kernelConfig("staticconfig", t), Kind: KindDir},
	}

	for _, folder := range staticConfigFolders {
		entries = append(entries, Entry{
			Target: l.kernelConfig("staticconfig", t, folder),
			Source: filepath.Join(wc, "staticconfig", folder),
			Kind:   KindJunction,
		})
	}
	entries = append(entries,
		Entry{
			Target: l.kernelConfig("staticconfig", t, "File_Address.ini"),
			Source: filepath.Join(wc, "staticconfig", "File_Address.ini"),
			Kind:   KindHardlink,
		},
		Entry{Target: l.app("WEB-INF", t), Kind: KindDir},
		Entry{
			Target: l.app("WEB-INF", t, "scheduler.xml"),
			Source: filepath.Join(wc, "WEB-INF", "scheduler.xml"),
			Kind:   KindHardlink,
		},
		Entry{
			Target: l.app("WEB-INF", t, "classes", "com", "reflexis", "i18n", "resources"),
			Source: filepath.Join(wc, "WEB-INF", "classes", "com", "reflexis", "i18n", "resources"),
			Kind:   KindJunction,
		},
		Entry{
			Target: l.app("staticweb", "images", t),
			Source: filepath.Join(wc, "images"),
			Kind:   KindJunction,
		},
	)
	return entries
}

// sharedEntries are created once, after the tenant fan-out.
func (l Layout) sharedEntries() []Entry {
	wc := l.webContent()

	var entries []Entry
	for _, folder := range sharedWebFolders {
		entries = append(entries, Entry{
			Target: l.app("staticweb", folder),
			Source: filepath.Join(wc, folder),
			Kind:   KindJunction,
		})
	}
	for _, name := range logFiles {
		entries = append(entries, Entry{Target: l.app("logs", name), Kind: KindEmptyFile})
	}
	return entries
}
