// Package runner centralizes the helper that executes host commands on behalf
// of target handlers.
//
// The wrapper keeps consistent dry-run logging and exit-code semantics across
// the CLI: the child's streams pass through untouched, its exit code is
// returned verbatim, and a failing command is never retried.
package runner
