// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"

	"github.com/reflexisdev/rwsup/internal/workspace"

	"github.com/spf13/cobra"
)

var (
	// workspaceCmd groups workspace inspection subcommands.
	workspaceCmd = &cobra.Command{
		Use:   "workspace",
		Short: "Inspect versioned workspaces",
	}

	workspaceListCmd = &cobra.Command{
		Use:   "list",
		Short: "List existing workspaces and the next free slot",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fail(err)
			}

			workspaces, err := workspace.List(cfg.Workspace.BasePath, cfg.Workspace.Prefix)
			if err != nil {
				return fail(err)
			}

			if len(workspaces) == 0 {
				fmt.Println("No workspaces yet under " + cfg.Workspace.BasePath)
			} else {
				fmt.Println(TitleStyle.Render("Workspaces"))
				for _, ws := range workspaces {
					fmt.Printf("  %s %s\n", ws.Name(), FaintStyle.Render(ws.Path))
				}
			}

			next := workspace.Next(cfg.Workspace.BasePath, cfg.Workspace.Prefix)
			fmt.Printf("Next: %s\n", next.Name())
			return nil
		},
	}

	workspaceNextCmd = &cobra.Command{
		Use:   "next",
		Short: "Print the next free workspace path",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fail(err)
			}
			fmt.Println(workspace.Next(cfg.Workspace.BasePath, cfg.Workspace.Prefix).Path)
			return nil
		},
	}
)

func init() {
	workspaceCmd.AddCommand(workspaceListCmd)
	workspaceCmd.AddCommand(workspaceNextCmd)
}
