package integration

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"mogpkit/cli/mogpctl/internal/testutil"
)

func TestNoArgumentRendersHelp(t *testing.T) {
	f := testutil.NewFixture(t)
	res := f.Run()
	require.Equal(t, 0, res.Code)
	for _, name := range []string{"help", "all", "tests"} {
		require.Contains(t, res.Stdout, "\n  "+name+" ", "listing should have a line for %s", name)
	}
}

func TestHelpMatchesNoArgumentInvocation(t *testing.T) {
	f := testutil.NewFixture(t)
	bare := f.Run()
	help := f.Run("help")
	require.Equal(t, 0, help.Code)
	require.Equal(t, bare.Stdout, help.Stdout)

	again := f.Run("help")
	require.Equal(t, help.Stdout, again.Stdout, "help output must be idempotent")
}

func TestTestsForwardsPassingRun(t *testing.T) {
	f := testutil.NewFixture(t)
	f.StubRunner("echo 14 passed in 0.22s")
	res := f.Run("tests")
	require.Equal(t, 0, res.Code)
	require.Contains(t, res.Stdout, "14 passed")
}

func TestTestsForwardsFailingRun(t *testing.T) {
	f := testutil.NewFixture(t)
	f.StubRunner("echo FAILED test_GaussianProcess >&2\nexit 5")
	res := f.Run("tests")
	require.Equal(t, 5, res.Code)
	require.Contains(t, res.Stderr, "FAILED test_GaussianProcess")
}

func TestUnknownTargetRunsNothing(t *testing.T) {
	f := testutil.NewFixture(t)
	f.StubRunner("echo RUNNER-EXECUTED")
	res := f.Run("bogus")
	require.NotEqual(t, 0, res.Code)
	require.Contains(t, res.Stderr, "bogus")
	require.NotContains(t, res.Stdout, "RUNNER-EXECUTED")
	require.NotContains(t, res.Stderr, "RUNNER-EXECUTED")
}

func TestAllMatchesDirectTestsInvocation(t *testing.T) {
	f := testutil.NewFixture(t)
	f.StubRunner("echo FAILED test_GaussianProcess >&2\nexit 5")
	direct := f.Run("tests")
	viaAll := f.Run("all")
	require.Equal(t, direct.Code, viaAll.Code)
	require.Equal(t, direct.Stdout, viaAll.Stdout)
	require.Equal(t, direct.Stderr, viaAll.Stderr)

	f.StubRunner("exit 0")
	require.Equal(t, 0, f.Run("all").Code)
}

func TestDryRunPrintsWithoutExecuting(t *testing.T) {
	f := testutil.NewFixture(t)
	f.StubRunner("echo RUNNER-EXECUTED\nexit 5")
	res := f.Run("--dry-run", "tests")
	require.Equal(t, 0, res.Code)
	require.Contains(t, res.Stderr, "+ pytest")
	require.NotContains(t, res.Stdout, "RUNNER-EXECUTED")
}

func TestConfigOverridesRunner(t *testing.T) {
	f := testutil.NewFixture(t)
	f.StubRunner("echo WRONG-RUNNER\nexit 9")
	f.WriteConfig("test_runner: sh\ntest_args: [\"-c\", \"echo custom runner ran\"]\n")
	res := f.Run("tests")
	require.Equal(t, 0, res.Code)
	require.Contains(t, res.Stdout, "custom runner ran")
	require.NotContains(t, res.Stdout, "WRONG-RUNNER")
}

func TestTrailingArgumentsRejected(t *testing.T) {
	f := testutil.NewFixture(t)
	f.StubRunner("echo RUNNER-EXECUTED")
	res := f.Run("tests", "extra")
	require.NotEqual(t, 0, res.Code)
	require.True(t, strings.Contains(res.Stderr, "single target"), "stderr: %s", res.Stderr)
	require.NotContains(t, res.Stdout, "RUNNER-EXECUTED")
}
