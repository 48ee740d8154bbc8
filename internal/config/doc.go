// SPDX-License-Identifier: MPL-2.0

// Package config loads and validates rwsup configuration.
//
// Configuration lives in a dotenv-format .env file in the working directory.
// The same file is consumed by the Python orchestrator, so the format and key
// names are fixed by that contract; rwsup reads only the keys it needs and
// leaves the rest untouched. Real environment variables override file values.
//
// Loading is a three-step pipeline: viper defaults, file read, then
// validation (struct tags via go-playground/validator, followed by semantic
// checks that produce sentinel-wrapped errors).
package config
