// Package custom runs user supplied Lua scripts as content sources.
package custom

import (
	"fmt"

	"github.com/statepane/statepane/constant"
	"github.com/statepane/statepane/internal/scraper"
	"github.com/statepane/statepane/source"
	"github.com/statepane/statepane/util"
	libs "github.com/metafates/mangal-lua-libs"
	lua "github.com/yuin/gopher-lua"
)

// IDfromName returns the source ID of the script named name.
func IDfromName(name string) string {
	return name + " custom"
}

// LoadSource runs the script at path and checks that it defines Load.
func LoadSource(path string) (source.Source, error) {
	state := lua.NewState()
	libs.Preload(state)
	registerTLSClient(state)

	if err := scraper.PreCompileAndLoad(state, path); err != nil {
		state.Close()
		return nil, err
	}

	name := util.FileStem(path)

	if state.GetGlobal(constant.LoadFn).Type() != lua.LTFunction {
		state.Close()
		return nil, fmt.Errorf("function %s is required but not defined in %s", constant.LoadFn, name)
	}

	return newLuaSource(name, state), nil
}
