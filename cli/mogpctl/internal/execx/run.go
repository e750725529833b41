package execx

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

type Result struct {
	Code int
	Err  error
}

// Run executes name in the current working directory with stdio attached to
// the host process, so the child's output reaches the console unmodified.
func Run(name string, args ...string) Result {
	return RunCtx(context.Background(), name, args...)
}

func RunCtx(ctx context.Context, name string, args ...string) Result {
	logrus.Debugf("+ %s", strings.Join(append([]string{name}, args...), " "))
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	code := 0
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok {
			code = ee.ExitCode()
		} else {
			code = 1
		}
	}
	return Result{Code: code, Err: err}
}

// Capture runs a command and returns stdout as string and exit code. Nothing
// is streamed to the host.
func Capture(ctx context.Context, name string, args ...string) (string, Result) {
	logrus.Debugf("+ %s", strings.Join(append([]string{name}, args...), " "))
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.Output()
	code := 0
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok {
			code = ee.ExitCode()
		} else {
			code = 1
		}
	}
	return string(out), Result{Code: code, Err: err}
}
