package testscmd

import (
	"mogpkit/cli/mogpctl/internal/cmdregistry"
	"mogpkit/cli/mogpctl/internal/runner"
)

// Register adds the tests target to the registry.
func Register(r *cmdregistry.Registry) {
	r.Register("tests", "Run the unit test suite", handle)
}

func handle(ctx *cmdregistry.Context) error {
	code := runner.Host(ctx.DryRun, ctx.Runner, ctx.RunnerArgs...)
	if code != 0 {
		return &cmdregistry.ActionError{Code: code}
	}
	return nil
}
