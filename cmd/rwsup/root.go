// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/reflexisdev/rwsup/internal/config"
	"github.com/reflexisdev/rwsup/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug logging and full error chains.
	verbose bool
	// cfgFile allows specifying a custom config file.
	cfgFile string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})

	// rootCmd represents the base command when called without any subcommands.
	rootCmd = &cobra.Command{
		Use:   "rwsup",
		Short: "Bootstrap RWS development workspaces",
		Long: TitleStyle.Render("rwsup") + SubtitleStyle.Render(" - RWS workspace bootstrapper") + `

rwsup replaces the legacy run.bat/rws4-win.bat scripts. It prepares the
Python environment for the workspace automation orchestrator, provisions
the shared application mount tree (directories, junctions, hard links),
and deploys configuration templates into the repository checkout.

Configuration comes from the .env file in the working directory; the same
file drives the Python orchestrator.

` + SubtitleStyle.Render("Examples:") + `
  rwsup up                   Bootstrap the environment and run the orchestrator
  rwsup provision --dry-run  Show which mount entries would be created
  rwsup provision            Create the missing mount entries
  rwsup deploy               Render and deploy config templates
  rwsup workspace list       List versioned workspaces
  rwsup config validate      Check the .env file`,
	}
)

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default .env in the working directory)")

	rootCmd.AddCommand(upCmd)
	rootCmd.AddCommand(provisionCmd)
	rootCmd.AddCommand(deployCmd)
	rootCmd.AddCommand(workspaceCmd)
	rootCmd.AddCommand(configCmd)
}

func initLogging() {
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the root command through fang and maps ExitError to the
// process exit code, so orchestrator exit codes pass through unchanged.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// loadConfig loads the configuration honoring the --config flag.
func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		path = config.DefaultConfigFile
	}
	return config.Load(path)
}

// configFilePath is the effective config file path for this invocation.
func configFilePath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.DefaultConfigFile
}

// formatErrorForDisplay renders ActionableErrors with their suggestions;
// other errors print as-is.
func formatErrorForDisplay(err error) string {
	var actionable *issue.ActionableError
	if errors.As(err, &actionable) {
		return actionable.Format(verbose)
	}
	return err.Error()
}

// fail wraps err for display and exits with code 1 via ExitError.
func fail(err error) error {
	fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err))
	return &ExitError{Code: 1}
}
