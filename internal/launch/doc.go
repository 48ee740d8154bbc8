// SPDX-License-Identifier: MPL-2.0

// Package launch implements the workspace bootstrap flow: resolve a host
// Python interpreter, bring the project virtual environment into a usable
// state (create, reuse, or recreate), make sure dependencies are installed,
// and hand off to the Python orchestrator, surfacing its exit code
// unchanged.
//
// The flow is interactive at two points (recreate? reinstall?), both
// defaulting to "no" on empty input. The prompts and the virtual-environment
// operations sit behind small interfaces so the decision logic is testable
// without a Python installation.
package launch
