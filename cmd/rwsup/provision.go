// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"

	"github.com/reflexisdev/rwsup/internal/config"
	"github.com/reflexisdev/rwsup/internal/issue"
	"github.com/reflexisdev/rwsup/internal/mount"
	"github.com/reflexisdev/rwsup/internal/workspace"

	"github.com/spf13/cobra"
)

var (
	provisionDryRun bool
	provisionRepo   string

	// provisionCmd materializes the shared application mount tree.
	provisionCmd = &cobra.Command{
		Use:   "provision",
		Short: "Provision the shared application mount tree",
		Long: `Create the mount tree that maps the repository's WebContent into
per-tenant and shared locations: a notifications and WEB-INF skeleton,
upload/staticconfig/images junctions per tenant plus the DEFAULT tenant,
shared static-web asset junctions, and empty log files.

Provisioning is idempotent: the full desired tree is diffed against the
filesystem and only missing entries are created. Existing entries are
never inspected or recreated. Use --dry-run to see the diff.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fail(err)
			}

			repoPath, err := resolveRepoPath(cfg)
			if err != nil {
				return fail(err)
			}

			layout, err := mount.NewLayout(cfg.Mount, repoPath)
			if err != nil {
				return fail(err)
			}

			if provisionDryRun {
				missing, err := mount.Plan(layout)
				if err != nil {
					return fail(err)
				}
				printPlan(missing)
				return nil
			}

			created, err := mount.Provision(cmd.Context(), layout, logger)
			if err != nil {
				return fail(err)
			}
			fmt.Printf("%s %d entries created under %s\n",
				SuccessStyle.Render("Provisioned:"), len(created), layout.MountRoot)

			runPostProvisionHook(cmd, cfg, layout)
			return nil
		},
	}
)

func init() {
	provisionCmd.Flags().BoolVar(&provisionDryRun, "dry-run", false, "show missing entries without creating anything")
	provisionCmd.Flags().StringVar(&provisionRepo, "repo", "", "primary repository path (default: latest workspace's checkout)")
}

// resolveRepoPath picks the source repository: the --repo flag when given,
// otherwise the primary checkout inside the latest versioned workspace.
func resolveRepoPath(cfg *config.Config) (string, error) {
	if provisionRepo != "" {
		return provisionRepo, nil
	}

	ws, ok, err := workspace.Latest(cfg.Workspace.BasePath, cfg.Workspace.Prefix)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", issue.NewErrorContext().
			WithOperation("locate primary repository").
			WithResource(cfg.Workspace.BasePath).
			WithSuggestion("Run `rwsup up` first to create a workspace").
			WithSuggestion("Or pass the repository path explicitly with --repo").
			Build()
	}
	return ws.PrimaryRepo(cfg.Workspace.RepoPrimaryName), nil
}

func printPlan(missing []mount.Entry) {
	if len(missing) == 0 {
		fmt.Println(SuccessStyle.Render("Nothing to do:") + " mount tree is fully provisioned")
		return
	}
	fmt.Println(TitleStyle.Render(fmt.Sprintf("%d missing entries", len(missing))))
	for _, e := range missing {
		if e.Source != "" {
			fmt.Printf("  %-9s %s %s\n", e.Kind, e.Target, FaintStyle.Render("-> "+e.Source))
		} else {
			fmt.Printf("  %-9s %s\n", e.Kind, e.Target)
		}
	}
}

// runPostProvisionHook runs the configured hook, if any. Hook failures are
// warnings: the tree is already provisioned at this point.
func runPostProvisionHook(cmd *cobra.Command, cfg *config.Config, layout mount.Layout) {
	script := cfg.Mount.PostProvisionHook
	if script == "" {
		return
	}

	logger.Debug("running post-provision hook")
	code, err := mount.RunHook(cmd.Context(), script, layout, os.Stdout, os.Stderr)
	switch {
	case err != nil:
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err))
	case !code.IsSuccess():
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+fmt.Sprintf("post-provision hook exited with status %s", code))
	}
}
