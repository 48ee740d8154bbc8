// SPDX-License-Identifier: MPL-2.0

package main

import (
	"github.com/reflexisdev/rwsup/internal/launch"
	"github.com/reflexisdev/rwsup/internal/prompt"

	"github.com/spf13/cobra"
)

var (
	upRecreate       bool
	upReinstall      bool
	upNonInteractive bool

	// upCmd bootstraps the Python environment and runs the orchestrator.
	upCmd = &cobra.Command{
		Use:   "up [-- orchestrator args...]",
		Short: "Bootstrap the Python environment and run the orchestrator",
		Long: `Ensure a usable Python virtual environment exists, install the
dependency manifest when needed, and run the workspace automation
orchestrator. The orchestrator's exit code becomes rwsup's exit code.

With an existing environment, rwsup asks before recreating it and before
reinstalling dependencies; empty input answers "no". Use --yes for
non-interactive runs, or --recreate / --reinstall to force either action.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fail(err)
			}

			launcher := launch.NewLauncher(cfg.Launcher, prompt.Terminal{}, logger)
			code, err := launcher.Run(cmd.Context(), launch.Options{
				ConfigFile:     configFilePath(),
				Args:           args,
				Recreate:       upRecreate,
				Reinstall:      upReinstall,
				NonInteractive: upNonInteractive,
			})
			if err != nil {
				return fail(err)
			}
			if !code.IsSuccess() {
				return &ExitError{Code: code}
			}
			return nil
		},
	}
)

func init() {
	upCmd.Flags().BoolVar(&upRecreate, "recreate", false, "recreate the virtual environment without prompting")
	upCmd.Flags().BoolVar(&upReinstall, "reinstall", false, "reinstall dependencies without prompting")
	upCmd.Flags().BoolVarP(&upNonInteractive, "yes", "y", false, "never prompt; every question takes its default answer")
}
