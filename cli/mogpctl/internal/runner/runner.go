package runner

import (
	"fmt"
	"os"
	"strings"

	"mogpkit/cli/mogpctl/internal/execx"
)

// Host executes a host binary with stdio forwarded and returns its exit code.
// When dry is true it only prints the command to stderr and reports success.
// No timeout is imposed; if the child hangs, it hangs.
func Host(dry bool, name string, args ...string) int {
	if dry {
		fmt.Fprintln(os.Stderr, "+ "+name+" "+strings.Join(args, " "))
		return 0
	}
	res := execx.Run(name, args...)
	return res.Code
}
