// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"context"
	"io"
	"os"

	"github.com/reflexisdev/rwsup/internal/config"
	"github.com/reflexisdev/rwsup/internal/issue"
	"github.com/reflexisdev/rwsup/internal/python"
	"github.com/reflexisdev/rwsup/pkg/types"

	"github.com/charmbracelet/log"
)

type (
	// Confirmer asks a yes/no question. Empty input selects defaultYes.
	Confirmer interface {
		Confirm(label string, defaultYes bool) (bool, error)
	}

	// Environment is the virtual-environment surface the flow depends on.
	// *python.Venv is the production implementation.
	Environment interface {
		Exists() bool
		Create(ctx context.Context, interp *python.Interpreter, stdout, stderr io.Writer) error
		Remove() error
		HasActivationScript() bool
		ActivationScript() string
		ProbeModule(ctx context.Context, module string) bool
		InstallRequirements(ctx context.Context, manifest string, stdout, stderr io.Writer) error
		RunScript(ctx context.Context, script string, args []string, stdin io.Reader, stdout, stderr io.Writer) (types.ExitCode, error)
	}

	// Options are the per-invocation launch inputs.
	Options struct {
		// ConfigFile is the .env path handed to the orchestrator.
		ConfigFile string
		// Args are extra arguments passed through to the orchestrator.
		Args []string
		// Recreate forces environment recreation without prompting.
		Recreate bool
		// Reinstall forces dependency reinstallation without prompting.
		Reinstall bool
		// NonInteractive suppresses prompts; every question takes its default.
		NonInteractive bool
	}

	// Launcher wires the launch flow's dependencies. Nil fields are replaced
	// with production defaults by NewLauncher.
	Launcher struct {
		Config config.LauncherConfig
		Prompt Confirmer
		Logger *log.Logger

		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer

		// FindInterpreter resolves the host interpreter (default python.Find).
		FindInterpreter func() (*python.Interpreter, error)
		// NewEnvironment opens the virtual environment at root.
		NewEnvironment func(root string) Environment
	}
)

// NewLauncher builds a Launcher with production defaults for any nil
// dependency.
func NewLauncher(cfg config.LauncherConfig, prompt Confirmer, logger *log.Logger) *Launcher {
	return &Launcher{
		Config:          cfg,
		Prompt:          prompt,
		Logger:          logger,
		Stdin:           os.Stdin,
		Stdout:          os.Stdout,
		Stderr:          os.Stderr,
		FindInterpreter: python.Find,
		NewEnvironment:  func(root string) Environment { return python.NewVenv(root) },
	}
}

// Run executes the full launch flow and returns the orchestrator's exit
// code. Precondition failures (no interpreter, broken environment, missing
// config file) return an error before the orchestrator is started; the
// caller maps those to a non-zero process exit.
func (l *Launcher) Run(ctx context.Context, opts Options) (types.ExitCode, error) {
	interp, err := l.FindInterpreter()
	if err != nil {
		return 1, issue.NewErrorContext().
			WithOperation("locate python interpreter").
			WithSuggestion("Install Python 3 and make sure it is on your PATH").
			Wrap(err).
			Build()
	}
	l.Logger.Debug("resolved interpreter", "command", interp.Command, "path", interp.Path)

	env := l.NewEnvironment(l.Config.VenvDir)
	install, err := l.prepareEnvironment(ctx, env, interp, opts)
	if err != nil {
		return 1, err
	}

	if !env.HasActivationScript() {
		return 1, issue.NewErrorContext().
			WithOperation("verify virtual environment").
			WithResource(env.ActivationScript()).
			WithSuggestion("Delete the environment directory and run `rwsup up` again").
			Wrap(python.ErrActivationScriptMissing).
			Build()
	}

	if install {
		if _, statErr := os.Stat(l.Config.RequirementsFile); statErr != nil {
			return 1, issue.NewErrorContext().
				WithOperation("install dependencies").
				WithResource(l.Config.RequirementsFile).
				WithSuggestion("Create the requirements manifest or point REQUIREMENTS_FILE at it").
				Wrap(statErr).
				Build()
		}
		l.Logger.Info("installing dependencies", "manifest", l.Config.RequirementsFile)
		if err := env.InstallRequirements(ctx, l.Config.RequirementsFile, l.Stdout, l.Stderr); err != nil {
			return 1, err
		}
	} else {
		l.Logger.Info("dependencies already satisfied", "marker", l.Config.MarkerModule)
	}

	// Last gate before hand-off: the orchestrator is useless without its
	// configuration file.
	if _, statErr := os.Stat(opts.ConfigFile); statErr != nil {
		return 1, issue.NewErrorContext().
			WithOperation("verify configuration file").
			WithResource(opts.ConfigFile).
			WithSuggestion("Copy .env.example to .env and configure it for this machine").
			Wrap(statErr).
			Build()
	}

	l.Logger.Info("starting orchestrator", "script", l.Config.Orchestrator)
	code, err := env.RunScript(ctx, l.Config.Orchestrator, opts.Args, l.Stdin, l.Stdout, l.Stderr)
	if err != nil {
		return 1, issue.WrapWithContext(err, "run orchestrator", l.Config.Orchestrator)
	}
	return code, nil
}

// prepareEnvironment brings the virtual environment into a usable state and
// reports whether a dependency install is required.
func (l *Launcher) prepareEnvironment(ctx context.Context, env Environment, interp *python.Interpreter, opts Options) (install bool, err error) {
	if !env.Exists() {
		l.Logger.Info("creating virtual environment", "dir", l.Config.VenvDir)
		if err := env.Create(ctx, interp, l.Stdout, l.Stderr); err != nil {
			return false, issue.WrapWithContext(err, "create virtual environment", l.Config.VenvDir)
		}
		return true, nil
	}

	recreate := opts.Recreate
	if !recreate && !opts.NonInteractive {
		recreate, err = l.Prompt.Confirm("Virtual environment exists. Recreate it?", false)
		if err != nil {
			return false, err
		}
	}
	if recreate {
		l.Logger.Info("recreating virtual environment", "dir", l.Config.VenvDir)
		if err := env.Remove(); err != nil {
			return false, err
		}
		if err := env.Create(ctx, interp, l.Stdout, l.Stderr); err != nil {
			return false, issue.WrapWithContext(err, "recreate virtual environment", l.Config.VenvDir)
		}
		return true, nil
	}

	// Reusing: the marker module decides whether dependencies are present.
	if !env.ProbeModule(ctx, l.Config.MarkerModule) {
		l.Logger.Info("marker module not importable, forcing install", "marker", l.Config.MarkerModule)
		return true, nil
	}
	reinstall := opts.Reinstall
	if !reinstall && !opts.NonInteractive {
		reinstall, err = l.Prompt.Confirm("Dependencies look installed. Reinstall them?", false)
		if err != nil {
			return false, err
		}
	}
	return reinstall, nil
}
