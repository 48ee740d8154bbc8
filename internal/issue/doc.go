// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error types for rwsup.
//
// ActionableError is the main type: an error that carries the operation that
// failed, the resource involved, and suggestions for how to fix the problem.
// Command handlers render it with Format, which adds the suggestion bullets
// and, in verbose mode, the full error chain.
package issue
