// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidTenantID is the sentinel error wrapped by InvalidTenantIDError.
var ErrInvalidTenantID = errors.New("invalid tenant id")

type (
	// TenantID identifies one logical application instance (an "owner")
	// sharing the provisioned mount tree. The value is an opaque token; it
	// becomes a path segment during provisioning, so it must be non-empty
	// and must not contain whitespace or path separators.
	TenantID string

	// InvalidTenantIDError is returned when a TenantID value is empty or
	// contains characters that are unsafe as a path segment.
	InvalidTenantIDError struct {
		Value TenantID
	}
)

// String returns the string representation of the TenantID.
func (t TenantID) String() string { return string(t) }

// IsValid returns whether the TenantID is valid.
// A valid tenant id is non-empty and contains no whitespace, path
// separators, or relative-path tokens.
func (t TenantID) IsValid() (bool, []error) {
	s := string(t)
	switch {
	case strings.TrimSpace(s) == "":
		return false, []error{&InvalidTenantIDError{Value: t}}
	case strings.ContainsAny(s, " \t/\\"):
		return false, []error{&InvalidTenantIDError{Value: t}}
	case s == "." || s == "..":
		return false, []error{&InvalidTenantIDError{Value: t}}
	}
	return true, nil
}

// Error implements the error interface for InvalidTenantIDError.
func (e *InvalidTenantIDError) Error() string {
	return fmt.Sprintf("invalid tenant id %q: must be a non-empty token without whitespace or path separators", e.Value)
}

// Unwrap returns ErrInvalidTenantID for errors.Is() compatibility.
func (e *InvalidTenantIDError) Unwrap() error { return ErrInvalidTenantID }
