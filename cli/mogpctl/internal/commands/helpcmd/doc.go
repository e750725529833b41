// Package helpcmd registers the "help" target. It renders the listing of
// every registered target with its one-line description, in registration
// order, and is also the default action when mogpctl runs without arguments.
// The listing is read-only and idempotent: repeated invocations produce
// byte-identical output.
package helpcmd
