package source

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Item is a single row of loaded content.
type Item struct {
	Title       string `json:"title" jsonschema:"description=Display title"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty" jsonschema:"format=uri"`
	Index       uint16 `json:"index"`
	Source      Source `json:"-"`
}

func (i *Item) String() string {
	return i.Title
}

// Label returns the title prefixed by the 1-based index.
func (i *Item) Label() string {
	return fmt.Sprintf("%d. %s", i.Index+1, i.Title)
}

// Indexed assigns sequential indexes, drops items without a title, and trims whitespace.
func Indexed(items []*Item) []*Item {
	items = lo.Filter(items, func(item *Item, _ int) bool {
		return item != nil && strings.TrimSpace(item.Title) != ""
	})

	for i, item := range items {
		item.Title = strings.TrimSpace(item.Title)
		item.Description = strings.TrimSpace(item.Description)
		item.Index = uint16(i)
	}

	return items
}
