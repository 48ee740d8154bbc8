// SPDX-License-Identifier: MPL-2.0

package mount

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/reflexisdev/rwsup/pkg/types"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// hookEnv carries the provisioning context into the hook script.
type hookEnv struct {
	MountRoot string
	AppName   string
	Tenants   []types.TenantID
}

// RunHook executes the post-provision hook script in the mount root using
// the embedded shell interpreter, so hooks behave the same on Windows and
// POSIX hosts. The script sees RWSUP_MOUNT_ROOT, RWSUP_APP_NAME and
// RWSUP_TENANTS on top of the process environment.
//
// The returned exit code is the script's own; parse failures and
// interpreter setup failures return an error with code 1.
func RunHook(ctx context.Context, script string, layout Layout, stdout, stderr io.Writer) (types.ExitCode, error) {
	prog, err := syntax.NewParser().Parse(strings.NewReader(script), "post-provision-hook")
	if err != nil {
		return 1, fmt.Errorf("failed to parse post-provision hook: %w", err)
	}

	env := hookEnv{
		MountRoot: layout.MountRoot.String(),
		AppName:   layout.AppName,
		Tenants:   layout.Tenants,
	}
	runner, err := interp.New(
		interp.Dir(env.MountRoot),
		interp.Env(expand.ListEnviron(env.environ()...)),
		interp.StdIO(nil, stdout, stderr),
	)
	if err != nil {
		return 1, fmt.Errorf("failed to create hook interpreter: %w", err)
	}

	if err := runner.Run(ctx, prog); err != nil {
		var status interp.ExitStatus
		if errors.As(err, &status) {
			return types.ExitCode(status), nil
		}
		return 1, fmt.Errorf("post-provision hook failed: %w", err)
	}
	return 0, nil
}

// environ is the process environment plus the hook variables.
func (e hookEnv) environ() []string {
	tenants := make([]string, 0, len(e.Tenants))
	for _, t := range e.Tenants {
		tenants = append(tenants, t.String())
	}
	return append(os.Environ(),
		"RWSUP_MOUNT_ROOT="+e.MountRoot,
		"RWSUP_APP_NAME="+e.AppName,
		"RWSUP_TENANTS="+strings.Join(tenants, " "),
	)
}
