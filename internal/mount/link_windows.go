// SPDX-License-Identifier: MPL-2.0

//go:build windows

package mount

import (
	"fmt"
	"os/exec"
)

// createJunction creates an NTFS directory junction. Junctions, unlike
// symlinks, require no elevated privileges on Windows, which is why the
// legacy batch script used mklink /J. os.Symlink would need the
// SeCreateSymbolicLink privilege, so we shell out to cmd instead.
func createJunction(target, source string) error {
	out, err := exec.Command("cmd", "/C", "mklink", "/J", target, source).CombinedOutput()
	if err != nil {
		return fmt.Errorf("mklink /J failed: %w: %s", err, out)
	}
	return nil
}
