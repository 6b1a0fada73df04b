// Package environment implements the frame chain spec.md §4.4 describes:
// a singly-linked chain of lexical scopes, reference-shared so a closure's
// captured frame stays alive and observable after its defining block exits.
package environment

import "github.com/monkeylang/monkey/object"

// Environment is a single frame's name-to-value mapping, linked to its
// parent. Frames are never copied (unlike go-mix's Scope.Copy): a
// Function value stores a pointer to the frame active at its creation
// site, so later Let bindings in that frame are visible to every closure
// sharing it (spec.md §9's closure-capture requirement).
type Environment struct {
	store  map[string]object.Object
	parent *Environment
}

// New creates a root frame with no parent.
func New() *Environment {
	return &Environment{store: make(map[string]object.Object)}
}

// NewEnclosed creates a frame whose parent is outer — used both for a
// function call's frame and any other nested scope (spec.md §4.4).
func NewEnclosed(outer *Environment) *Environment {
	return &Environment{store: make(map[string]object.Object), parent: outer}
}

// Get walks the frame chain parent-ward looking for name.
func (e *Environment) Get(name string) (object.Object, bool) {
	obj, ok := e.store[name]
	if !ok && e.parent != nil {
		return e.parent.Get(name)
	}
	return obj, ok
}

// Define creates a new binding in this frame only. It never mutates a
// parent frame, and it fails if name is already bound in this frame
// (spec.md §4.3, §4.4: Let redefinition in the same scope is an error;
// shadowing a parent frame's name is allowed).
func (e *Environment) Define(name string, value object.Object) bool {
	if _, exists := e.store[name]; exists {
		return false
	}
	e.store[name] = value
	return true
}

// Bindings returns the names bound directly in this frame, for the
// `dbg!` environment dump (no ordering guarantee).
func (e *Environment) Bindings() map[string]object.Object {
	return e.store
}

// Parent returns the enclosing frame, or nil at the root.
func (e *Environment) Parent() *Environment {
	return e.parent
}
