// Package scripting turns Lua chunks into shaders.
//
// A script defines a global function shade(x, y, cell) returning the new
// cell as a string, or nil to leave the cell untouched. The buffer being
// shaded is readable through the buffer table:
//
//	buffer.at(x, y)   -- cell content, "" when empty or out of range
//	buffer.width()
//	buffer.height()
package scripting

import (
	"errors"
	"fmt"

	"github.com/idursun/clgl/internal/render"
	"github.com/idursun/clgl/internal/screen"
	lua "github.com/yuin/gopher-lua"
)

const entryPoint = "shade"

var ErrNoEntryPoint = errors.New("lua: script must define a function shade(x, y, cell)")

// Script is a compiled shader. It owns a Lua state and is not safe for
// concurrent use.
type Script struct {
	L   *lua.LState
	fn  *lua.LFunction
	buf *screen.Buffer
	err error
}

// Compile runs src once and looks up its shade function.
func Compile(src string) (*Script, error) {
	L := lua.NewState()
	s := &Script{L: L}
	registerAPI(L, s)

	if err := L.DoString(src); err != nil {
		L.Close()
		return nil, fmt.Errorf("lua: %w", err)
	}
	fn, ok := L.GetGlobal(entryPoint).(*lua.LFunction)
	if !ok {
		L.Close()
		return nil, ErrNoEntryPoint
	}
	s.fn = fn
	return s, nil
}

// MustCompile is like Compile but panics on error. It is meant for sources
// that have already been checked with Compile.
func MustCompile(src string) *Script {
	s, err := Compile(src)
	if err != nil {
		panic(fmt.Sprintf("clgl: %v", err))
	}
	return s
}

// Shader returns s as a render.Shader.
func (s *Script) Shader() render.Shader {
	return s.Shade
}

// Shade calls the script for one cell. A runtime error leaves the cell
// untouched and is kept for Err.
func (s *Script) Shade(x, y int, current screen.Cell, buf *screen.Buffer) (screen.Cell, bool) {
	s.buf = buf
	defer func() { s.buf = nil }()

	err := s.L.CallByParam(lua.P{
		Fn:      s.fn,
		NRet:    1,
		Protect: true,
	}, lua.LNumber(x), lua.LNumber(y), lua.LString(current))
	if err != nil {
		if s.err == nil {
			s.err = fmt.Errorf("lua: shade(%d, %d): %w", x, y, err)
		}
		return "", false
	}

	ret := s.L.Get(-1)
	s.L.Pop(1)
	if !lua.LVCanConvToString(ret) {
		return "", false
	}
	return screen.Cell(lua.LVAsString(ret)), true
}

// Err returns the first runtime error raised by the script.
func (s *Script) Err() error {
	return s.err
}

func (s *Script) Close() {
	if s.L != nil {
		s.L.Close()
		s.L = nil
	}
}

func registerAPI(L *lua.LState, s *Script) {
	bufferTable := L.NewTable()
	bufferTable.RawSetString("at", L.NewFunction(func(L *lua.LState) int {
		x, y := L.CheckInt(1), L.CheckInt(2)
		if s.buf == nil {
			L.Push(lua.LString(""))
			return 1
		}
		L.Push(lua.LString(s.buf.At(x, y)))
		return 1
	}))
	bufferTable.RawSetString("width", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LNumber(s.size(true)))
		return 1
	}))
	bufferTable.RawSetString("height", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LNumber(s.size(false)))
		return 1
	}))
	L.SetGlobal("buffer", bufferTable)
}

func (s *Script) size(width bool) int {
	switch {
	case s.buf == nil:
		return 0
	case width:
		return s.buf.Width()
	default:
		return s.buf.Height()
	}
}
