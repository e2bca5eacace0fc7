// Package viewstate implements the placeholder view state machine: a registry of named panels and a
// scheduler that applies debounced, cancellable transitions one at a time.
package viewstate

import (
	"github.com/samber/mo"
)

// Well known placeholder keys.
const (
	KeyLoading = "loading"
	KeyError   = "error"
	KeyEmpty   = "empty"
)

// keyNone names the None target in the scheduling key space.
const keyNone = "none"

// Identity is either None (show the primary content) or a named placeholder.
type Identity struct {
	key mo.Option[string]
}

// None hides every placeholder.
var None = Identity{key: mo.None[string]()}

// Named returns the identity of the placeholder registered under key.
func Named(key string) Identity {
	return Identity{key: mo.Some(key)}
}

// Key returns the placeholder key, if any.
func (i Identity) Key() (string, bool) {
	return i.key.Get()
}

// IsNone reports whether i hides every placeholder.
func (i Identity) IsNone() bool {
	return i.key.IsAbsent()
}

// Is reports whether i is the named placeholder key.
func (i Identity) Is(key string) bool {
	k, ok := i.key.Get()
	return ok && k == key
}

// Equal compares by key; None only equals None.
func (i Identity) Equal(other Identity) bool {
	a, aok := i.key.Get()
	b, bok := other.key.Get()
	if aok != bok {
		return false
	}
	return a == b
}

func (i Identity) String() string {
	return i.key.OrElse(keyNone)
}

// Result describes how a transition request ended.
type Result int

const (
	// Applied means the visual application ran to completion.
	Applied Result = iota
	// Unchanged means the target was already current.
	Unchanged
	// Superseded means a newer request cancelled this one before it started.
	Superseded
	// Discarded means the scheduler closed before the request ran.
	Discarded
)

func (r Result) String() string {
	switch r {
	case Applied:
		return "applied"
	case Unchanged:
		return "unchanged"
	case Superseded:
		return "superseded"
	case Discarded:
		return "discarded"
	default:
		return "unknown"
	}
}

// Completion is invoked exactly once per transition request.
type Completion func(Result)
