// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/reflexisdev/rwsup/internal/issue"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// defaults mirror the fallback values of the legacy automation config.
// Keys without an entry here are required in the .env file.
var defaults = map[string]string{
	"WORKSPACE_PREFIX":  "workspace_v",
	"LOG_DIR":           "logs",
	"REPO_PRIMARY_NAME": "repo_primary",

	"MOUNT_FOLDER_NAME":    "mount",
	"APP_NAME":             "RWS4",
	"KERNEL_CONFIG_FOLDER": "knlconfig",
	"RWS4_OWNER_IDS":       "111110099 121500199",

	"VENV_DIR":          ".venv",
	"REQUIREMENTS_FILE": "requirements.txt",
	"ORCHESTRATOR":      "automation.py",
	"MARKER_MODULE":     "dotenv",

	"DB_URL":                    "jdbc:postgresql://localhost:5432/mydb",
	"DB_USERNAME":               "dbuser",
	"DB_DRIVER":                 "org.postgresql.Driver",
	"DB_NAME":                   "mydb",
	"DB_JNDI_NAME":              "jdbc/RWS4",
	"CONTEXT_PATH":              "/RWS4",
	"CONTEXT_DOCBASE":           "RWS4",
	"CONTEXT_RELOADABLE":        "true",
	"SERVER_HOST":               "localhost",
	"SERVER_PORT":               "8080",
	"TOMCAT_PORT":               "8080",
	"APP_BASE_URL":              "http://localhost:8080",
	"RFX_APP_NAME":              "RWS4",
	"RFX_APP_URL":               "http://localhost:8080/RWS4",
	"RFX_BATCH_PROFILE_MODE":    "DEMO",
	"RFX_LOAD_SPECIFIC_OWNERS":  "111110099",
	"RFX_KERNEL_DEFAULT_DOMAIN": "REFLEXIS",
}

// Load reads the config file at path (dotenv format), applies defaults, lets
// real environment variables override file values, and validates the result.
//
// A missing file is a hard failure: the orchestrator cannot run without it,
// so rwsup refuses to proceed rather than guess at paths.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFile
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(path).
				WithSuggestion("Copy .env.example to .env and configure it for this machine").
				WithSuggestion("Run rwsup from the directory containing your .env file").
				Wrap(ErrConfigFileNotFound).
				Build()
		}
		return nil, issue.WrapWithContext(err, "load configuration", path)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, issue.WrapWithContext(err, "parse configuration", path)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, issue.WrapWithContext(err, "decode configuration", path)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(path).
			WithSuggestion("Set the missing keys in your .env file").
			Wrap(describeValidationError(err)).
			Build()
	}

	if err := cfg.Validate(); err != nil {
		return nil, issue.WrapWithContext(err, "validate configuration", path)
	}

	return cfg, nil
}

// describeValidationError rewrites validator's struct-field errors in terms
// of the .env keys the user actually writes.
func describeValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if key, ok := fieldKeys[fe.StructField()]; ok {
			missing = append(missing, key)
		} else {
			missing = append(missing, fe.StructField())
		}
	}
	return fmt.Errorf("%w: missing required keys: %v", ErrInvalidConfig, missing)
}

// fieldKeys maps required struct fields back to their .env keys for error
// messages. Only fields with a `validate:"required"` tag need an entry.
var fieldKeys = map[string]string{
	"BasePath":         "WORKSPACE_BASE_PATH or MOUNT_BASE_PATH",
	"Prefix":           "WORKSPACE_PREFIX",
	"LogDir":           "LOG_DIR",
	"RepoPrimaryName":  "REPO_PRIMARY_NAME",
	"FolderName":       "MOUNT_FOLDER_NAME",
	"AppName":          "APP_NAME",
	"ConfigFolder":     "KERNEL_CONFIG_FOLDER",
	"OwnerIDs":         "RWS4_OWNER_IDS",
	"VenvDir":          "VENV_DIR",
	"RequirementsFile": "REQUIREMENTS_FILE",
	"Orchestrator":     "ORCHESTRATOR",
	"MarkerModule":     "MARKER_MODULE",
}
