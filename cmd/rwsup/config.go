// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// configCmd groups configuration inspection subcommands.
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Inspect the rwsup configuration",
	}

	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fail(err)
			}

			tenants, err := cfg.Mount.Tenants()
			if err != nil {
				return fail(err)
			}

			fmt.Println(TitleStyle.Render("Workspace"))
			fmt.Printf("  base path:  %s\n", cfg.Workspace.BasePath)
			fmt.Printf("  prefix:     %s\n", cfg.Workspace.Prefix)
			fmt.Printf("  repo:       %s\n", cfg.Workspace.RepoPrimaryName)

			fmt.Println(TitleStyle.Render("Mount"))
			fmt.Printf("  base path:  %s\n", cfg.Mount.BasePath)
			fmt.Printf("  folder:     %s\n", cfg.Mount.FolderName)
			fmt.Printf("  app:        %s\n", cfg.Mount.AppName)
			fmt.Printf("  config:     %s\n", cfg.Mount.ConfigFolder)
			fmt.Printf("  tenants:    %v\n", tenants)

			fmt.Println(TitleStyle.Render("Launcher"))
			fmt.Printf("  venv:       %s\n", cfg.Launcher.VenvDir)
			fmt.Printf("  manifest:   %s\n", cfg.Launcher.RequirementsFile)
			fmt.Printf("  entry:      %s\n", cfg.Launcher.Orchestrator)
			fmt.Printf("  marker:     %s\n", cfg.Launcher.MarkerModule)
			return nil
		},
	}

	configValidateCmd = &cobra.Command{
		Use:   "validate",
		Short: "Validate the .env file",
		RunE: func(_ *cobra.Command, _ []string) error {
			if _, err := loadConfig(); err != nil {
				return fail(err)
			}
			fmt.Println(SuccessStyle.Render("OK:") + " configuration is valid")
			return nil
		},
	}
)

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)
}
