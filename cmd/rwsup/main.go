// SPDX-License-Identifier: MPL-2.0

// rwsup bootstraps a local RWS development workspace: it manages the Python
// virtual environment for the automation orchestrator, provisions the
// shared application mount tree, and deploys configuration templates.
package main

func main() {
	Execute()
}
