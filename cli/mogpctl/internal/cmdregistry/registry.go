package cmdregistry

import (
	"fmt"
	"io"
)

// Context carries the pre-parsed data and handles that target handlers need.
type Context struct {
	DryRun bool
	// Registry lets a handler delegate to another target (e.g. all -> tests)
	// without duplicating its logic.
	Registry *Registry
	// Runner is the external test tool binary; RunnerArgs are passed through
	// to it on every invocation.
	Runner     string
	RunnerArgs []string
	Stdout     io.Writer
}

// Handler executes a target given the shared context.
type Handler func(*Context) error

// Entry is one registered target: a unique name, a one-line description shown
// by the help listing, and the handler bound to the name.
type Entry struct {
	Name    string
	Brief   string
	Handler Handler
}

// Registry maps target names to entries and remembers registration order.
// Registration order is the display order of the help listing.
type Registry struct {
	byName  map[string]*Entry
	ordered []*Entry
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{byName: make(map[string]*Entry)}
}

// Register adds a target. It panics if name already exists.
func (r *Registry) Register(name, brief string, h Handler) {
	if _, exists := r.byName[name]; exists {
		panic(fmt.Sprintf("target %s already registered", name))
	}
	e := &Entry{Name: name, Brief: brief, Handler: h}
	r.byName[name] = e
	r.ordered = append(r.ordered, e)
}

// Lookup returns the entry and whether it exists.
func (r *Registry) Lookup(name string) (*Entry, bool) {
	e, ok := r.byName[name]
	return e, ok
}

// Entries returns all targets in registration order.
func (r *Registry) Entries() []*Entry {
	out := make([]*Entry, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Dispatch resolves name and runs its handler. An unregistered name yields an
// *UnknownTargetError without running anything.
func (r *Registry) Dispatch(name string, ctx *Context) error {
	e, ok := r.byName[name]
	if !ok {
		return &UnknownTargetError{Name: name}
	}
	return e.Handler(ctx)
}

// UnknownTargetError reports a requested name with no matching entry.
type UnknownTargetError struct {
	Name string
}

func (e *UnknownTargetError) Error() string {
	return fmt.Sprintf("unknown target %q", e.Name)
}

// ActionError reports a target action that exited non-zero. The process must
// exit with the same code, without translating or retrying.
type ActionError struct {
	Code int
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("action exited with code %d", e.Code)
}
