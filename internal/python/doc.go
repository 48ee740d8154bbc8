// SPDX-License-Identifier: MPL-2.0

// Package python locates a host Python interpreter and manages the project
// virtual environment.
//
// Discovery tries a short per-OS candidate list (the Windows launcher "py"
// first on Windows, "python3" first elsewhere) and fails fast when none
// resolve. Venv wraps one virtual environment directory and knows how to
// create it, probe whether a module is importable inside it, install the
// requirements manifest, and run a script with the environment's
// interpreter. All blocking operations take a context.Context.
package python
