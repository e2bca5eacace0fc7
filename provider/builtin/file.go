package builtin

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/statepane/statepane/filesystem"
	"github.com/statepane/statepane/source"
)

// FileName is the name of the file source.
const FileName = "file"

// File loads the file at the path given as target, by extension: .json, .yaml and .yml are decoded
// as item lists, anything else is read line by line.
type File struct{}

func NewFile() *File {
	return &File{}
}

func (*File) Name() string { return FileName }
func (*File) ID() string   { return FileName + " builtin" }

func (f *File) Load(ctx context.Context, target string) ([]*source.Item, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return nil, source.ErrNoTarget
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := filesystem.API().ReadFile(target)
	if err != nil {
		return nil, err
	}

	items, err := decode(data, formatOfPath(target))
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		item.Source = f
	}
	return items, nil
}

func formatOfPath(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return formatJSON
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatLines
	}
}
