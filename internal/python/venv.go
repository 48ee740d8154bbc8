// SPDX-License-Identifier: MPL-2.0

package python

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/reflexisdev/rwsup/pkg/types"
)

// ErrActivationScriptMissing is returned when a virtual environment exists
// but its activation script does not, which means the environment is broken.
var ErrActivationScriptMissing = errors.New("virtual environment activation script missing")

// Venv wraps one Python virtual environment directory.
type Venv struct {
	// Root is the environment directory (typically ".venv").
	Root string
}

// NewVenv returns a Venv for the given directory.
func NewVenv(root string) *Venv {
	return &Venv{Root: root}
}

// Exists reports whether the environment has been created.
// pyvenv.cfg is written by `python -m venv` and marks a real environment,
// as opposed to a stray directory with the same name.
func (v *Venv) Exists() bool {
	_, err := os.Stat(filepath.Join(v.Root, "pyvenv.cfg"))
	return err == nil
}

// Python returns the path of the environment's interpreter.
func (v *Venv) Python() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(v.Root, "Scripts", "python.exe")
	}
	return filepath.Join(v.Root, "bin", "python")
}

// ActivationScript returns the path of the environment's activation script.
// rwsup never sources it (it invokes the venv interpreter directly), but its
// absence marks a broken environment and aborts the launch.
func (v *Venv) ActivationScript() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(v.Root, "Scripts", "activate.bat")
	}
	return filepath.Join(v.Root, "bin", "activate")
}

// HasActivationScript reports whether the activation script exists.
func (v *Venv) HasActivationScript() bool {
	_, err := os.Stat(v.ActivationScript())
	return err == nil
}

// Create builds the environment with `<interpreter> -m venv <root>` and
// verifies the activation script afterward.
func (v *Venv) Create(ctx context.Context, interp *Interpreter, stdout, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, interp.Path, "-m", "venv", v.Root)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to create virtual environment at %s: %w", v.Root, err)
	}
	if !v.HasActivationScript() {
		return fmt.Errorf("%w: %s", ErrActivationScriptMissing, v.ActivationScript())
	}
	return nil
}

// Remove deletes the environment directory.
func (v *Venv) Remove() error {
	if err := os.RemoveAll(v.Root); err != nil {
		return fmt.Errorf("failed to remove virtual environment at %s: %w", v.Root, err)
	}
	return nil
}

// ProbeModule reports whether module is importable inside the environment.
// Only the exit status matters; import errors are not diagnostics here, they
// just mean dependencies need installing.
func (v *Venv) ProbeModule(ctx context.Context, module string) bool {
	cmd := exec.CommandContext(ctx, v.Python(), "-c", "import "+module)
	return cmd.Run() == nil
}

// InstallRequirements installs the dependency manifest with pip, streaming
// installer output to the given writers.
func (v *Venv) InstallRequirements(ctx context.Context, manifest string, stdout, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, v.Python(), "-m", "pip", "install", "-r", manifest)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to install requirements from %s: %w", manifest, err)
	}
	return nil
}

// RunScript executes a Python script with the environment's interpreter and
// returns its exit code. A non-zero exit is not an error: the caller owns
// exit-code propagation.
func (v *Venv) RunScript(ctx context.Context, script string, args []string, stdin io.Reader, stdout, stderr io.Writer) (types.ExitCode, error) {
	cmd := exec.CommandContext(ctx, v.Python(), append([]string{script}, args...)...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return types.ExitCode(exitErr.ExitCode()), nil
		}
		return 1, fmt.Errorf("failed to execute %s: %w", script, err)
	}
	return 0, nil
}
