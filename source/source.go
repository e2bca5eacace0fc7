// Package source defines the content model and the interface implemented by content providers.
package source

import (
	"context"
	"errors"
)

// ErrNoTarget is returned by sources that cannot load without a target.
var ErrNoTarget = errors.New("target is required")

// Source loads the items shown by the content view.
type Source interface {
	// Name returns the human readable provider name.
	Name() string

	// ID returns the unique identifier of the source.
	ID() string

	// Load fetches the items for target. An empty, nil-error result renders the empty placeholder.
	Load(ctx context.Context, target string) ([]*Item, error)
}
