package helpcmd

import (
	"fmt"
	"io"
	"os"

	"mogpkit/cli/mogpctl/internal/cmdregistry"
)

// Register adds the help target to the registry.
func Register(r *cmdregistry.Registry) {
	r.Register("help", "Show this help message", handle)
}

func handle(ctx *cmdregistry.Context) error {
	w := ctx.Stdout
	if w == nil {
		w = os.Stdout
	}
	return Render(w, ctx.Registry.Entries())
}

// Render writes the target listing: one line per entry, registration order,
// name column padded so the descriptions align.
func Render(w io.Writer, entries []*cmdregistry.Entry) error {
	if _, err := fmt.Fprintf(w, "Usage: mogpctl [--dry-run] <target>\n\nTargets:\n"); err != nil {
		return err
	}
	width := 0
	for _, e := range entries {
		if len(e.Name) > width {
			width = len(e.Name)
		}
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "  %-*s  %s\n", width, e.Name, e.Brief); err != nil {
			return err
		}
	}
	return nil
}
