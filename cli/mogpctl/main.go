package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"mogpkit/cli/mogpctl/internal/cmdregistry"
	allcmd "mogpkit/cli/mogpctl/internal/commands/allcmd"
	helpcmd "mogpkit/cli/mogpctl/internal/commands/helpcmd"
	testscmd "mogpkit/cli/mogpctl/internal/commands/testscmd"
	"mogpkit/cli/mogpctl/internal/config"
)

// newRegistry declares the target table. Registration order is the order the
// help listing displays.
func newRegistry() *cmdregistry.Registry {
	r := cmdregistry.New()
	helpcmd.Register(r)
	allcmd.Register(r)
	testscmd.Register(r)
	return r
}

// parseArgs splits os.Args-style input into the selected target and flags.
// An empty target means no target was named; more than one is an error.
func parseArgs(args []string) (target string, dryRun bool, err error) {
	names := make([]string, 0, len(args))
	for _, a := range args {
		switch a {
		case "--dry-run":
			dryRun = true
		case "-h", "--help":
			names = append(names, "help")
		default:
			names = append(names, a)
		}
	}
	if len(names) > 1 {
		return "", false, fmt.Errorf("expected a single target, got %d", len(names))
	}
	if len(names) == 1 {
		target = names[0]
	}
	return target, dryRun, nil
}

func main() {
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(logrus.WarnLevel)
	if os.Getenv("MOGPCTL_DEBUG") == "1" {
		logrus.SetLevel(logrus.DebugLevel)
	}

	target, dryRun, err := parseArgs(os.Args[1:])
	if err != nil {
		die("mogpctl: " + err.Error())
	}
	if target == "" {
		target = "help"
	}

	cfg, path, err := config.Read()
	if err != nil {
		die(fmt.Sprintf("mogpctl: read config %s: %v", path, err))
	}
	runnerName, runnerArgs := cfg.Command()
	logrus.Debugf("[mogpctl] target=%s runner=%s", target, runnerName)

	reg := newRegistry()
	ctx := &cmdregistry.Context{
		DryRun:     dryRun,
		Registry:   reg,
		Runner:     runnerName,
		RunnerArgs: runnerArgs,
		Stdout:     os.Stdout,
	}
	if err := reg.Dispatch(target, ctx); err != nil {
		var ae *cmdregistry.ActionError
		if errors.As(err, &ae) {
			// child output already reached the console; only the code remains
			os.Exit(ae.Code)
		}
		die("mogpctl: " + err.Error())
	}
}

func die(msg string) { fmt.Fprintln(os.Stderr, msg); os.Exit(2) }
