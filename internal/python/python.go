// SPDX-License-Identifier: MPL-2.0

package python

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// ErrInterpreterNotFound is returned when no candidate command resolves.
var ErrInterpreterNotFound = errors.New("no python interpreter found")

// Interpreter is a resolved host Python executable.
type Interpreter struct {
	// Command is the candidate name that resolved (e.g. "python3").
	Command string
	// Path is the absolute executable path from the lookup.
	Path string
}

// Candidates returns the interpreter command names tried in order.
// Windows ships the "py" launcher; everywhere else "python3" is the
// conventional name with "python" as the fallback.
func Candidates() []string {
	if runtime.GOOS == "windows" {
		return []string{"py", "python"}
	}
	return []string{"python3", "python"}
}

// Find resolves the first available interpreter from Candidates.
func Find() (*Interpreter, error) {
	for _, name := range Candidates() {
		path, err := exec.LookPath(name)
		if err != nil {
			continue
		}
		return &Interpreter{Command: name, Path: path}, nil
	}
	return nil, fmt.Errorf("%w (tried %s)", ErrInterpreterNotFound, strings.Join(Candidates(), ", "))
}

// Version reports the interpreter version string ("Python 3.12.1").
func (i *Interpreter) Version(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, i.Path, "--version").CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("failed to query interpreter version: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}
