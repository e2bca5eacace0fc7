package tui

import (
	"fmt"

	"github.com/statepane/statepane/history"
	"github.com/statepane/statepane/icon"
	"github.com/statepane/statepane/key"
	"github.com/statepane/statepane/provider"
	"github.com/statepane/statepane/source"
	"github.com/statepane/statepane/style"
	"github.com/spf13/viper"
)

// listItem adapts providers, content items and saved targets to list.Item.
type listItem struct {
	internal any
}

func (t *listItem) Title() string {
	switch e := t.internal.(type) {
	case *provider.Provider:
		if e.IsCustom {
			return fmt.Sprintf("%s %s", e.Name, style.Faint(icon.Get(icon.Lua)))
		}
		return fmt.Sprintf("%s %s", e.Name, style.Faint(icon.Get(icon.Go)))
	case *source.Item:
		return e.Label()
	case *history.SavedTarget:
		return e.Target
	default:
		return t.FilterValue()
	}
}

func (t *listItem) Description() string {
	switch e := t.internal.(type) {
	case *provider.Provider:
		return e.Description
	case *source.Item:
		if viper.GetBool(key.TUIShowURLs) && e.URL != "" {
			if e.Description == "" {
				return style.Fg(style.FaintColor)(e.URL)
			}
			return fmt.Sprintf("%s %s", e.Description, style.Fg(style.FaintColor)(e.URL))
		}
		return e.Description
	case *history.SavedTarget:
		return fmt.Sprintf("%s • %d items", e.SourceName, e.Items)
	default:
		return ""
	}
}

func (t *listItem) FilterValue() string {
	switch e := t.internal.(type) {
	case *provider.Provider:
		return e.Name
	case *source.Item:
		return e.Title
	case *history.SavedTarget:
		return e.Target
	case string:
		return e
	default:
		return ""
	}
}
