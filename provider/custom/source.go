package custom

import (
	"context"
	"fmt"
	"sync"

	"github.com/statepane/statepane/constant"
	"github.com/statepane/statepane/log"
	"github.com/statepane/statepane/source"
	lua "github.com/yuin/gopher-lua"
)

// luaSource serializes calls, an LState is not safe for concurrent use.
type luaSource struct {
	name string

	mu    sync.Mutex
	state *lua.LState
}

func newLuaSource(name string, state *lua.LState) *luaSource {
	return &luaSource{
		name:  name,
		state: state,
	}
}

func (s *luaSource) Name() string {
	return s.name
}

func (s *luaSource) ID() string {
	return IDfromName(s.name)
}

// Load calls the script's Load(target). Cancelling ctx interrupts the script.
func (s *luaSource) Load(ctx context.Context, target string) ([]*source.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.SetContext(ctx)
	defer s.state.RemoveContext()

	val, err := s.call(constant.LoadFn, lua.LTTable, lua.LString(target))
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}

	items, err := itemsFromTable(val.(*lua.LTable))
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		item.Source = s
	}

	log.Debugf("custom: %s loaded %d items for %q", s.name, len(items), target)
	return items, nil
}

func (s *luaSource) call(fn string, retType lua.LValueType, args ...lua.LValue) (lua.LValue, error) {
	luaFn := s.state.GetGlobal(fn)
	if luaFn.Type() != lua.LTFunction {
		return nil, fmt.Errorf("function %s is not defined", fn)
	}

	err := s.state.CallByParam(lua.P{
		Fn:      luaFn,
		NRet:    1,
		Protect: true,
	}, args...)
	if err != nil {
		return nil, err
	}

	retval := s.state.Get(-1)
	s.state.Pop(1)

	if retval.Type() != retType {
		return nil, fmt.Errorf("%s returned %s, expected %s", fn, retval.Type(), retType)
	}

	return retval, nil
}
