// Package provider lists the built-in and custom content sources.
package provider

import (
	"path/filepath"
	"sort"

	"github.com/statepane/statepane/filesystem"
	"github.com/statepane/statepane/log"
	"github.com/statepane/statepane/provider/builtin"
	"github.com/statepane/statepane/provider/custom"
	"github.com/statepane/statepane/source"
	"github.com/statepane/statepane/util"
	"github.com/statepane/statepane/where"
)

// CustomProviderExtension is the file extension of custom sources.
const CustomProviderExtension = ".lua"

// Provider describes a source that can be created on demand.
type Provider struct {
	ID           string
	Name         string
	Description  string
	IsCustom     bool
	CreateSource func() (source.Source, error)
}

func (p *Provider) String() string {
	return p.Name
}

// Builtins returns the sources shipped with statepane.
func Builtins() []*Provider {
	return []*Provider{
		{
			ID:           builtin.NewDemo().ID(),
			Name:         builtin.DemoName,
			Description:  "Synthetic results, target OUTCOME[@LATENCY]",
			CreateSource: func() (source.Source, error) { return builtin.NewDemo(), nil },
		},
		{
			ID:           builtin.NewFile().ID(),
			Name:         builtin.FileName,
			Description:  "Items from a JSON, YAML or text file",
			CreateSource: func() (source.Source, error) { return builtin.NewFile(), nil },
		},
		{
			ID:           (&builtin.HTTP{}).ID(),
			Name:         builtin.HTTPName,
			Description:  "Items from a JSON, YAML or text URL",
			CreateSource: func() (source.Source, error) { return builtin.NewHTTP(), nil },
		},
	}
}

// Customs returns the Lua sources found in the sources directory.
func Customs() []*Provider {
	providers, err := CustomProviders()
	if err != nil {
		log.Warnf("provider: listing custom sources: %v", err)
	}
	return providers
}

// All returns built-in providers followed by custom ones. A custom source shadowed by a built-in
// name is skipped.
func All() []*Provider {
	all := Builtins()
	names := make(map[string]bool, len(all))
	for _, p := range all {
		names[p.Name] = true
	}

	for _, p := range Customs() {
		if names[p.Name] {
			log.Warnf("provider: custom source %s is shadowed by a built-in one", p.Name)
			continue
		}
		all = append(all, p)
	}

	return all
}

// Get finds a provider by name.
func Get(name string) (*Provider, bool) {
	for _, p := range All() {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// CustomProviders lists *.lua files in the sources directory, sorted by name.
func CustomProviders() ([]*Provider, error) {
	files, err := filesystem.API().ReadDir(where.Sources())
	if err != nil {
		return nil, err
	}

	var providers []*Provider
	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != CustomProviderExtension {
			continue
		}

		path := filepath.Join(where.Sources(), f.Name())
		name := util.FileStem(f.Name())

		providers = append(providers, &Provider{
			ID:          custom.IDfromName(name),
			Name:        name,
			Description: path,
			IsCustom:    true,
			CreateSource: func() (source.Source, error) {
				return custom.LoadSource(path)
			},
		})
	}

	sort.Slice(providers, func(i, j int) bool {
		return providers[i].Name < providers[j].Name
	})

	return providers, nil
}
