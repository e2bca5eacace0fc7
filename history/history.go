// Package history remembers the targets that were loaded successfully.
package history

import (
	"fmt"
	"slices"
	"time"

	"github.com/statepane/statepane/filesystem"
	"github.com/statepane/statepane/source"
	"github.com/statepane/statepane/where"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Limit is the number of targets kept.
const Limit = 50

// SavedTarget is a target that produced content.
type SavedTarget struct {
	SourceID   string    `json:"source_id"`
	SourceName string    `json:"source_name"`
	Target     string    `json:"target"`
	Items      int       `json:"items"`
	LoadedAt   time.Time `json:"loaded_at"`
}

func (s *SavedTarget) encode() string {
	return fmt.Sprintf("%s (%s)", s.Target, s.SourceID)
}

func (s *SavedTarget) String() string {
	return fmt.Sprintf("%s : %s", s.SourceName, s.Target)
}

var cacher = gache.New[map[string]*SavedTarget](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns every saved target by key.
func Get() (map[string]*SavedTarget, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*SavedTarget), nil
	}
	return cached, nil
}

// Recent returns saved targets, most recent first.
func Recent() ([]*SavedTarget, error) {
	saved, err := Get()
	if err != nil {
		return nil, err
	}

	recent := lo.Values(saved)
	slices.SortFunc(recent, func(a, b *SavedTarget) int {
		return b.LoadedAt.Compare(a.LoadedAt)
	})
	return recent, nil
}

// Last returns the most recently loaded target.
func Last() mo.Option[*SavedTarget] {
	recent, err := Recent()
	if err != nil || len(recent) == 0 {
		return mo.None[*SavedTarget]()
	}
	return mo.Some(recent[0])
}

// Save records that target loaded items from src. Only the newest Limit targets are kept.
func Save(src source.Source, target string, items int) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	record := &SavedTarget{
		SourceID:   src.ID(),
		SourceName: src.Name(),
		Target:     target,
		Items:      items,
		LoadedAt:   time.Now(),
	}
	saved[record.encode()] = record

	if len(saved) > Limit {
		recent := lo.Values(saved)
		slices.SortFunc(recent, func(a, b *SavedTarget) int {
			return b.LoadedAt.Compare(a.LoadedAt)
		})
		for _, old := range recent[Limit:] {
			delete(saved, old.encode())
		}
	}

	return cacher.Set(saved)
}

// Remove deletes a saved target.
func Remove(target *SavedTarget) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, target.encode())
	return cacher.Set(saved)
}
