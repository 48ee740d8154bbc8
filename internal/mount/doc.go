// SPDX-License-Identifier: MPL-2.0

// Package mount provisions the shared application mount tree: the directory
// skeleton, junction links, and hard links that map a repository's
// WebContent into per-tenant and shared locations.
//
// Provisioning is declarative. Layout describes the inputs (mount root,
// application name, config folder, source repository, tenant list) and
// Desired expands them into the full entry table. Diff compares that table
// against the filesystem in a single pass — every leaf is checked
// individually, so a run interrupted mid-tenant is healed on the next pass
// instead of being skipped because its parent directory already exists.
// Apply then creates only the missing entries, in order, stopping at the
// first failure with no retries.
//
// Idempotence is by existence check, not content comparison: an entry whose
// target path exists is never inspected or recreated.
package mount
