// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"

	"github.com/reflexisdev/rwsup/internal/config"
	"github.com/reflexisdev/rwsup/internal/issue"
	"github.com/reflexisdev/rwsup/internal/resources"
	"github.com/reflexisdev/rwsup/internal/workspace"

	"github.com/spf13/cobra"
)

var (
	deployTemplatesDir string
	deployWorkspace    string

	// deployCmd renders config templates into the repository checkout.
	deployCmd = &cobra.Command{
		Use:   "deploy",
		Short: "Render and deploy configuration templates into the repository",
		Long: `Render the configuration templates (config.properties,
rfxconfig.properties, context.xml) with values from the .env file and
write them to their locations inside the primary repository checkout.
Deployed files are overwritten on every run.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fail(err)
			}

			ws, err := resolveWorkspace(cfg)
			if err != nil {
				return fail(err)
			}

			values := resources.Replacements(cfg, ws.Path)
			deployed, err := resources.Deploy(
				deployTemplatesDir,
				ws.PrimaryRepo(cfg.Workspace.RepoPrimaryName),
				values,
				logger,
			)
			if err != nil {
				return fail(err)
			}

			fmt.Printf("%s %d file(s) into %s\n",
				SuccessStyle.Render("Deployed:"), len(deployed), ws.Name())
			return nil
		},
	}
)

func init() {
	deployCmd.Flags().StringVar(&deployTemplatesDir, "templates", "resources", "directory holding the config templates")
	deployCmd.Flags().StringVar(&deployWorkspace, "workspace", "", "workspace name (default: latest)")
}

// resolveWorkspace picks the target workspace: --workspace by name, or the
// latest versioned one.
func resolveWorkspace(cfg *config.Config) (workspace.Workspace, error) {
	workspaces, err := workspace.List(cfg.Workspace.BasePath, cfg.Workspace.Prefix)
	if err != nil {
		return workspace.Workspace{}, err
	}

	if deployWorkspace != "" {
		for _, ws := range workspaces {
			if ws.Name() == deployWorkspace {
				return ws, nil
			}
		}
		return workspace.Workspace{}, issue.NewErrorContext().
			WithOperation("resolve workspace").
			WithResource(deployWorkspace).
			WithSuggestion("Run `rwsup workspace list` to see existing workspaces").
			Build()
	}

	if len(workspaces) == 0 {
		return workspace.Workspace{}, issue.NewErrorContext().
			WithOperation("resolve workspace").
			WithResource(cfg.Workspace.BasePath).
			WithSuggestion("Run `rwsup up` first to create a workspace").
			Build()
	}
	return workspaces[len(workspaces)-1], nil
}
