// Package builtin implements the sources shipped with statepane.
package builtin

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/statepane/statepane/source"
	"gopkg.in/yaml.v3"
)

type format int

const (
	formatLines format = iota
	formatJSON
	formatYAML
)

func decode(data []byte, f format) ([]*source.Item, error) {
	var doc any

	switch f {
	case formatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case formatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return source.Indexed(fromLines(data)), nil
	}

	items, err := fromDocument(doc)
	if err != nil {
		return nil, err
	}

	return source.Indexed(items), nil
}

// fromDocument accepts a list of strings or objects, optionally wrapped in {"items": [...]}.
func fromDocument(doc any) ([]*source.Item, error) {
	switch v := doc.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		inner, ok := v["items"]
		if !ok {
			return nil, fmt.Errorf("expected a list or an object with items")
		}
		return fromDocument(inner)
	case []any:
		items := make([]*source.Item, 0, len(v))
		for i, entry := range v {
			item, err := fromEntry(entry)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i+1, err)
			}
			items = append(items, item)
		}
		return items, nil
	default:
		return nil, fmt.Errorf("expected a list, got %T", doc)
	}
}

func fromEntry(entry any) (*source.Item, error) {
	switch v := entry.(type) {
	case string:
		return lineItem(v), nil
	case map[string]any:
		str := func(key string) string {
			if s, ok := v[key].(string); ok {
				return s
			}
			return ""
		}

		title := str("title")
		if title == "" {
			title = str("name")
		}

		return &source.Item{
			Title:       title,
			Description: str("description"),
			URL:         str("url"),
		}, nil
	default:
		return &source.Item{Title: fmt.Sprint(v)}, nil
	}
}

func fromLines(data []byte) []*source.Item {
	var items []*source.Item

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		items = append(items, lineItem(line))
	}

	return items
}

// lineItem links lines that are absolute URLs.
func lineItem(line string) *source.Item {
	item := &source.Item{Title: line}
	if u, err := url.Parse(line); err == nil && u.IsAbs() && u.Host != "" {
		item.URL = line
	}
	return item
}
