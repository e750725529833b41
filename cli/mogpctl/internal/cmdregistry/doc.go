// Package cmdregistry defines a lightweight target registry used by the CLI
// entrypoint. It maps string target names to handler functions that accept a
// shared Context payload, and keeps registration order so the help listing
// can enumerate targets the way they were declared. Individual target
// implementations live in separate packages while main.go stays focused on
// argument parsing.
package cmdregistry
