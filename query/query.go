// Package query remembers typed targets and suggests them back.
package query

import (
	"strings"
	"sync"

	"github.com/statepane/statepane/filesystem"
	"github.com/statepane/statepane/key"
	"github.com/statepane/statepane/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

type queryRecord struct {
	Rank  int    `json:"rank"`
	Query string `json:"query"`
}

var cacher = gache.New[map[string]*queryRecord](
	&gache.Options{
		Path:       where.Queries(),
		FileSystem: &filesystem.GacheFs{},
	},
)

var (
	suggestionMu    sync.Mutex
	suggestionCache = make(map[string][]*queryRecord)
)

func invalidate() {
	suggestionMu.Lock()
	defer suggestionMu.Unlock()
	clear(suggestionCache)
}

// Remember records a target or increases its rank by weight.
func Remember(q string, weight int) error {
	q = sanitize(q)
	if q == "" {
		return nil
	}

	cached, expired, err := cacher.Get()
	if expired || err != nil || cached == nil {
		cached = make(map[string]*queryRecord)
	}

	if record, ok := cached[q]; ok {
		record.Rank += weight
	} else {
		cached[q] = &queryRecord{Rank: weight, Query: q}
	}

	invalidate()
	return cacher.Set(cached)
}

// Forget removes a target from the suggestions.
func Forget(q string) error {
	cached, expired, err := cacher.Get()
	if err != nil {
		return err
	}
	if expired || cached == nil {
		return nil
	}

	delete(cached, sanitize(q))
	invalidate()
	return cacher.Set(cached)
}

// Suggest returns the best suggestion for a partial target.
func Suggest(q string) mo.Option[string] {
	suggestions := SuggestMany(q)
	if len(suggestions) == 0 {
		return mo.None[string]()
	}
	return mo.Some(suggestions[0])
}

// SuggestMany returns suggestions that fuzzy match q, highest rank first.
func SuggestMany(q string) []string {
	if !viper.GetBool(key.SearchShowSuggestions) {
		return []string{}
	}

	q = sanitize(q)

	suggestionMu.Lock()
	records, ok := suggestionCache[q]
	suggestionMu.Unlock()

	if !ok {
		cached, expired, err := cacher.Get()
		if err != nil || expired || cached == nil {
			return []string{}
		}

		for _, record := range cached {
			if fuzzy.Match(q, record.Query) {
				records = append(records, record)
			}
		}

		slices.SortFunc(records, func(a, b *queryRecord) int {
			if a.Rank != b.Rank {
				return b.Rank - a.Rank
			}
			return strings.Compare(a.Query, b.Query)
		})

		suggestionMu.Lock()
		suggestionCache[q] = records
		suggestionMu.Unlock()
	}

	return lo.Map(records, func(r *queryRecord, _ int) string {
		return r.Query
	})
}

func sanitize(q string) string {
	return strings.TrimSpace(strings.ToLower(q))
}
