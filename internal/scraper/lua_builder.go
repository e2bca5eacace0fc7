// Package scraper compiles Lua sources and keeps their scripts up to date.
package scraper

import (
	"bytes"
	"sync"

	"github.com/statepane/statepane/filesystem"
	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"
)

var (
	mu     sync.Mutex
	protos = make(map[string]cached)
)

type cached struct {
	source []byte
	proto  *lua.FunctionProto
}

// Compile returns the compiled prototype of the script at path. Prototypes are cached until the
// script content changes.
func Compile(path string) (*lua.FunctionProto, error) {
	content, err := filesystem.API().ReadFile(path)
	if err != nil {
		return nil, err
	}

	mu.Lock()
	defer mu.Unlock()

	if c, ok := protos[path]; ok && bytes.Equal(c.source, content) {
		return c.proto, nil
	}

	chunk, err := parse.Parse(bytes.NewReader(content), path)
	if err != nil {
		return nil, err
	}

	proto, err := lua.Compile(chunk, path)
	if err != nil {
		return nil, err
	}

	protos[path] = cached{source: content, proto: proto}
	return proto, nil
}

// PreCompileAndLoad runs the script at path in L.
func PreCompileAndLoad(L *lua.LState, path string) error {
	proto, err := Compile(path)
	if err != nil {
		return err
	}

	L.Push(L.NewFunctionFromProto(proto))
	return L.PCall(0, lua.MultRet, nil)
}
