package custom

import (
	"fmt"
	"sort"

	"github.com/statepane/statepane/source"
	lua "github.com/yuin/gopher-lua"
)

func getString(table *lua.LTable, key string) string {
	val := table.RawGetString(key)
	if val.Type() == lua.LTString {
		return val.String()
	}
	return ""
}

func itemFromTable(table *lua.LTable) (*source.Item, error) {
	title := getString(table, "title")
	if title == "" {
		// scripts ported from search based sources use name
		title = getString(table, "name")
	}

	if title == "" {
		return nil, fmt.Errorf("item must have a title")
	}

	return &source.Item{
		Title:       title,
		Description: getString(table, "description"),
		URL:         getString(table, "url"),
	}, nil
}

// itemsFromTable reads the array part of table in order. Invalid entries are skipped, but if none
// are valid the first error is returned.
func itemsFromTable(table *lua.LTable) ([]*source.Item, error) {
	type indexed struct {
		at   int
		item *source.Item
	}

	var (
		found []indexed
		errs  []error
	)

	table.ForEach(func(k, v lua.LValue) {
		n, ok := k.(lua.LNumber)
		if !ok || v.Type() != lua.LTTable {
			return
		}

		item, err := itemFromTable(v.(*lua.LTable))
		if err != nil {
			errs = append(errs, fmt.Errorf("item %d: %w", int(n), err))
			return
		}

		found = append(found, indexed{at: int(n), item: item})
	})

	if len(found) == 0 && len(errs) > 0 {
		return nil, errs[0]
	}

	sort.Slice(found, func(i, j int) bool {
		return found[i].at < found[j].at
	})

	items := make([]*source.Item, len(found))
	for i, f := range found {
		items[i] = f.item
	}

	return source.Indexed(items), nil
}
