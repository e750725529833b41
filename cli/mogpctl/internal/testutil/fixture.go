package testutil

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// CmdResult captures stdout, stderr, and the exit code of a CLI invocation.
type CmdResult struct {
	Stdout string
	Stderr string
	Code   int
	Err    error
}

// Success reports whether the invocation exited zero.
func (r CmdResult) Success() bool { return r.Code == 0 }

// Fixture builds the mogpctl binary once and runs it against a stub test
// runner placed first on PATH, so no real test tool is needed.
type Fixture struct {
	t       *testing.T
	bin     string
	stubBin string
	work    string
	cfgPath string
}

// NewFixture compiles mogpctl into a temp dir and prepares an isolated
// environment: a private working directory, a stub bin dir on PATH, and a
// config path pointing nowhere so the host's config cannot leak in.
func NewFixture(t *testing.T) *Fixture {
	t.Helper()

	requireBinary(t, "go")

	root, err := findRepoRoot()
	if err != nil {
		t.Fatalf("detect repo root: %v", err)
	}

	tmp := t.TempDir()
	bin := filepath.Join(tmp, "mogpctl")
	build := exec.Command("go", "build", "-o", bin, "mogpkit/cli/mogpctl")
	build.Dir = root
	if out, err := build.CombinedOutput(); err != nil {
		t.Fatalf("build mogpctl: %v\n%s", err, out)
	}

	stubBin := filepath.Join(tmp, "bin")
	if err := os.MkdirAll(stubBin, 0o755); err != nil {
		t.Fatalf("mkdir stub bin: %v", err)
	}
	work := filepath.Join(tmp, "work")
	if err := os.MkdirAll(work, 0o755); err != nil {
		t.Fatalf("mkdir work dir: %v", err)
	}

	return &Fixture{
		t:       t,
		bin:     bin,
		stubBin: stubBin,
		work:    work,
		cfgPath: filepath.Join(tmp, "no-such-config.yaml"),
	}
}

// StubRunner installs a fake pytest on the fixture PATH with the given shell
// body (e.g. "echo 1 passed" or "echo boom >&2\nexit 5").
func (f *Fixture) StubRunner(body string) {
	f.t.Helper()
	script := "#!/bin/sh\n" + body + "\n"
	path := filepath.Join(f.stubBin, "pytest")
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		f.t.Fatalf("write stub runner: %v", err)
	}
}

// WriteConfig points MOGPCTL_CONFIG at a file with the given YAML content for
// subsequent Run calls.
func (f *Fixture) WriteConfig(content string) {
	f.t.Helper()
	path := filepath.Join(f.work, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		f.t.Fatalf("write config: %v", err)
	}
	f.cfgPath = path
}

// Run executes mogpctl with the given arguments in the fixture's working
// directory and returns the captured streams and exit code.
func (f *Fixture) Run(args ...string) CmdResult {
	f.t.Helper()
	cmd := exec.Command(f.bin, args...)
	cmd.Dir = f.work
	cmd.Env = append(environWithout("PATH", "MOGPCTL_CONFIG", "MOGPCTL_DEBUG"),
		"PATH="+f.stubBin+string(os.PathListSeparator)+os.Getenv("PATH"),
		"MOGPCTL_CONFIG="+f.cfgPath,
	)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	code := 0
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok {
			code = ee.ExitCode()
		} else {
			code = -1
		}
	}
	return CmdResult{Stdout: stdout.String(), Stderr: stderr.String(), Code: code, Err: err}
}

func environWithout(keys ...string) []string {
	env := os.Environ()
	out := env[:0]
	for _, kv := range env {
		drop := false
		for _, k := range keys {
			if strings.HasPrefix(kv, k+"=") {
				drop = true
				break
			}
		}
		if !drop {
			out = append(out, kv)
		}
	}
	return out
}

func requireBinary(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not available: %v", name, err)
	}
}

func findRepoRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
		if err == nil && strings.HasPrefix(string(data), "module mogpkit") {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("repository root not found")
}
