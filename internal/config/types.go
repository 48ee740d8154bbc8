// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reflexisdev/rwsup/pkg/types"
)

// DefaultConfigFile is the configuration file consumed by rwsup and by the
// Python orchestrator it launches.
const DefaultConfigFile = ".env"

var (
	// ErrConfigFileNotFound is returned when the .env file does not exist.
	ErrConfigFileNotFound = errors.New("config file not found")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrNoTenants is returned when the owner id list resolves to zero tenants.
	ErrNoTenants = errors.New("no tenants configured")
)

type (
	// Config is the explicit configuration for all rwsup commands. It replaces
	// the externally substituted placeholders of the legacy batch scripts with
	// a single validated struct.
	Config struct {
		Workspace WorkspaceConfig `mapstructure:",squash"`
		Mount     MountConfig     `mapstructure:",squash"`
		Launcher  LauncherConfig  `mapstructure:",squash"`
		Deploy    DeployConfig    `mapstructure:",squash"`
	}

	// WorkspaceConfig configures versioned workspace directories.
	WorkspaceConfig struct {
		// BasePath is the directory holding all versioned workspaces.
		BasePath string `mapstructure:"WORKSPACE_BASE_PATH" validate:"required"`
		// Prefix is the workspace directory name prefix ("workspace_v" -> workspace_v1).
		Prefix string `mapstructure:"WORKSPACE_PREFIX" validate:"required"`
		// LogDir is where rwsup writes its own run logs.
		LogDir string `mapstructure:"LOG_DIR" validate:"required"`
		// RepoPrimaryName is the directory name of the primary repository checkout.
		RepoPrimaryName string `mapstructure:"REPO_PRIMARY_NAME" validate:"required"`
	}

	// MountConfig configures the provisioned mount tree.
	MountConfig struct {
		// BasePath is the directory under which the mount folder is created.
		BasePath string `mapstructure:"MOUNT_BASE_PATH" validate:"required"`
		// FolderName is the mount folder name under BasePath.
		FolderName string `mapstructure:"MOUNT_FOLDER_NAME" validate:"required"`
		// AppName is the application folder name inside the mount tree.
		AppName string `mapstructure:"APP_NAME" validate:"required"`
		// ConfigFolder is the kernel configuration folder name inside the mount tree.
		ConfigFolder string `mapstructure:"KERNEL_CONFIG_FOLDER" validate:"required"`
		// OwnerIDs is the space-separated list of tenant identifiers.
		OwnerIDs string `mapstructure:"RWS4_OWNER_IDS" validate:"required"`
		// PostProvisionHook is an optional shell snippet run after a successful
		// provisioning pass. Empty means no hook.
		PostProvisionHook string `mapstructure:"POST_PROVISION_HOOK"`
	}

	// LauncherConfig configures the Python launcher.
	LauncherConfig struct {
		// VenvDir is the virtual environment directory, relative to the working directory.
		VenvDir string `mapstructure:"VENV_DIR" validate:"required"`
		// RequirementsFile is the pip dependency manifest.
		RequirementsFile string `mapstructure:"REQUIREMENTS_FILE" validate:"required"`
		// Orchestrator is the Python entry point executed after bootstrap.
		Orchestrator string `mapstructure:"ORCHESTRATOR" validate:"required"`
		// MarkerModule is the import probed to decide whether dependencies are
		// already installed in an existing virtual environment.
		MarkerModule string `mapstructure:"MARKER_MODULE" validate:"required"`
	}

	// DeployConfig carries the values substituted into config templates by
	// `rwsup deploy`. The keys mirror the placeholders used in the templates.
	DeployConfig struct {
		DBURL             string `mapstructure:"DB_URL"`
		DBUsername        string `mapstructure:"DB_USERNAME"`
		DBPassword        string `mapstructure:"DB_PASSWORD"`
		DBDriver          string `mapstructure:"DB_DRIVER"`
		DBName            string `mapstructure:"DB_NAME"`
		DBJNDIName        string `mapstructure:"DB_JNDI_NAME"`
		ContextPath       string `mapstructure:"CONTEXT_PATH"`
		ContextDocbase    string `mapstructure:"CONTEXT_DOCBASE"`
		ContextReloadable string `mapstructure:"CONTEXT_RELOADABLE"`
		ServerHost        string `mapstructure:"SERVER_HOST"`
		ServerPort        string `mapstructure:"SERVER_PORT"`
		TomcatPort        string `mapstructure:"TOMCAT_PORT"`
		TomcatHome        string `mapstructure:"TOMCAT_HOME"`
		JavaHome          string `mapstructure:"JAVA_HOME"`
		AppBaseURL        string `mapstructure:"APP_BASE_URL"`
		RfxAppName        string `mapstructure:"RFX_APP_NAME"`
		RfxAppURL         string `mapstructure:"RFX_APP_URL"`
		RfxProfileMode    string `mapstructure:"RFX_BATCH_PROFILE_MODE"`
		RfxOwners         string `mapstructure:"RFX_LOAD_SPECIFIC_OWNERS"`
		KernelWebURL      string `mapstructure:"RFX_KERNEL_WEB_URL"`
		KernelDomain      string `mapstructure:"RFX_KERNEL_DEFAULT_DOMAIN"`
		KernelUser        string `mapstructure:"RFX_KERNEL_CONNECTION_USER"`
		KernelPassword    string `mapstructure:"RFX_KERNEL_CONNECTION_PASSWORD"`
	}

	// InvalidConfigError aggregates validation failures for a loaded Config.
	InvalidConfigError struct {
		Errors []error
	}
)

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, err := range e.Errors {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// Tenants parses the space-separated owner id list into tenant identifiers.
// Consecutive whitespace is tolerated. Returns ErrNoTenants for an empty
// list and an InvalidTenantIDError for any token unsafe as a path segment.
func (m MountConfig) Tenants() ([]types.TenantID, error) {
	fields := strings.Fields(m.OwnerIDs)
	if len(fields) == 0 {
		return nil, ErrNoTenants
	}

	tenants := make([]types.TenantID, 0, len(fields))
	for _, f := range fields {
		id := types.TenantID(f)
		if ok, errs := id.IsValid(); !ok {
			return nil, errs[0]
		}
		tenants = append(tenants, id)
	}
	return tenants, nil
}

// Validate runs the semantic checks that struct tags cannot express.
// It aggregates all failures into a single InvalidConfigError.
func (c *Config) Validate() error {
	var errs []error

	if _, err := c.Mount.Tenants(); err != nil {
		errs = append(errs, err)
	}

	for _, p := range []struct {
		key   string
		value string
	}{
		{"WORKSPACE_BASE_PATH", c.Workspace.BasePath},
		{"MOUNT_BASE_PATH", c.Mount.BasePath},
	} {
		if ok, _ := types.FilesystemPath(p.value).IsValid(); !ok {
			errs = append(errs, fmt.Errorf("%s: %w", p.key, types.ErrInvalidFilesystemPath))
		}
	}

	if len(errs) > 0 {
		return &InvalidConfigError{Errors: errs}
	}
	return nil
}
