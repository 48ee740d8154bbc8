// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package mount

import "os"

// createJunction creates a directory-level alias from target to source.
// On POSIX systems a symlink gives junction semantics: the target path
// resolves to the source directory's contents.
func createJunction(target, source string) error {
	return os.Symlink(source, target)
}
