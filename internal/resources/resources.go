// SPDX-License-Identifier: MPL-2.0

// Package resources renders configuration templates and deploys them into
// the primary repository checkout. Templates use ${KEY} placeholders that
// are substituted from the loaded configuration; placeholders without a
// value are left intact so a missed key is visible in the deployed file.
package resources

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/reflexisdev/rwsup/internal/config"

	"github.com/charmbracelet/log"
)

// Deployment maps one template file to its target path inside the repo.
type Deployment struct {
	// Template is the file name inside the templates directory.
	Template string
	// Target is the destination path relative to the repository root.
	Target string
}

// Deployments is the fixed deployment table.
var Deployments = []Deployment{
	{Template: "config.properties", Target: filepath.Join("src", "config.properties")},
	{Template: "rfxconfig.properties", Target: filepath.Join("src", "rfxconfig.properties")},
	{Template: "context.xml", Target: filepath.Join("WebContent", "META-INF", "context.xml")},
}

// Render substitutes every ${KEY} whose KEY appears in values. Only the
// exact ${KEY} form is replaced; bare $KEY and unknown placeholders pass
// through unchanged.
func Render(template string, values map[string]string) string {
	out := template
	for key, value := range values {
		out = strings.ReplaceAll(out, "${"+key+"}", value)
	}
	return out
}

// Replacements builds the substitution map from the configuration and the
// workspace the repository lives in. The keys mirror the placeholders used
// by the legacy templates.
func Replacements(cfg *config.Config, workspacePath string) map[string]string {
	d := cfg.Deploy
	repoPath := filepath.Join(workspacePath, cfg.Workspace.RepoPrimaryName)

	return map[string]string{
		"DB_URL":       d.DBURL,
		"DB_USERNAME":  d.DBUsername,
		"DB_PASSWORD":  d.DBPassword,
		"DB_DRIVER":    d.DBDriver,
		"DB_NAME":      d.DBName,
		"DB_JNDI_NAME": d.DBJNDIName,

		"CONTEXT_PATH":       d.ContextPath,
		"CONTEXT_DOCBASE":    d.ContextDocbase,
		"CONTEXT_RELOADABLE": d.ContextReloadable,

		"SERVER_HOST": d.ServerHost,
		"SERVER_PORT": d.ServerPort,
		"TOMCAT_PORT": d.TomcatPort,
		"TOMCAT_HOME": d.TomcatHome,
		"JAVA_HOME":   d.JavaHome,

		"APP_NAME":     cfg.Mount.AppName,
		"APP_BASE_URL": d.AppBaseURL,

		"RFX_APP_NAME":                   d.RfxAppName,
		"RFX_APP_URL":                    d.RfxAppURL,
		"RFX_BATCH_PROFILE_MODE":         d.RfxProfileMode,
		"RFX_LOAD_SPECIFIC_OWNERS":       d.RfxOwners,
		"RFX_KERNEL_WEB_URL":             d.KernelWebURL,
		"RFX_KERNEL_DEFAULT_DOMAIN":      d.KernelDomain,
		"RFX_KERNEL_CONNECTION_USER":     d.KernelUser,
		"RFX_KERNEL_CONNECTION_PASSWORD": d.KernelPassword,

		"MOUNT_BASE_PATH":      cfg.Mount.BasePath,
		"MOUNT_FOLDER_NAME":    cfg.Mount.FolderName,
		"KERNEL_CONFIG_FOLDER": cfg.Mount.ConfigFolder,
		"RWS4_OWNER_IDS":       cfg.Mount.OwnerIDs,

		"WORKSPACE_BASE_PATH": cfg.Workspace.BasePath,
		"WORKSPACE_PATH":      workspacePath,
		"REPO_PRIMARY_NAME":   cfg.Workspace.RepoPrimaryName,
		"REPO_PRIMARY_PATH":   repoPath,
	}
}

// Deploy renders every entry of the deployment table from templatesDir into
// repoPath. A missing template is skipped with a warning; a missing repo is
// an error. Deployed files are overwritten — the templates are the source
// of truth, unlike mount entries which are create-once.
func Deploy(templatesDir, repoPath string, values map[string]string, logger *log.Logger) ([]string, error) {
	if info, err := os.Stat(repoPath); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("primary repository not found at %s", repoPath)
	}

	var deployed []string
	for _, d := range Deployments {
		templatePath := filepath.Join(templatesDir, d.Template)
		raw, err := os.ReadFile(templatePath)
		if err != nil {
			if os.IsNotExist(err) {
				logger.Warn("template not found, skipping", "template", d.Template)
				continue
			}
			return deployed, fmt.Errorf("failed to read template %s: %w", templatePath, err)
		}

		target := filepath.Join(repoPath, d.Target)
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return deployed, fmt.Errorf("failed to create target directory for %s: %w", target, err)
		}
		if err := os.WriteFile(target, []byte(Render(string(raw), values)), 0o644); err != nil {
			return deployed, fmt.Errorf("failed to write %s: %w", target, err)
		}

		deployed = append(deployed, d.Target)
		logger.Info("deployed", "template", d.Template, "target", d.Target)
	}
	return deployed, nil
}
