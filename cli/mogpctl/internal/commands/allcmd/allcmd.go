package allcmd

import (
	"mogpkit/cli/mogpctl/internal/cmdregistry"
)

// Register adds the all target to the registry.
//
// The brief still reads "and benchmarks" to match the published help text,
// but the action only delegates to tests. TODO: add a benchmarks target and
// chain it here once the suite grows one.
func Register(r *cmdregistry.Registry) {
	r.Register("all", "Run unit tests and benchmarks", handle)
}

func handle(ctx *cmdregistry.Context) error {
	return ctx.Registry.Dispatch("tests", ctx)
}
