// Package lua hosts site extension scripts for BenchScript tooling.
package lua

import (
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"
)

// State wraps a gopher-lua interpreter restricted to the safe core
// libraries.
//
// gopher-lua's LState is not goroutine-safe. The mutex serializes access
// from Go code; Lua execution itself is single-threaded.
type State struct {
	L *lua.LState

	mu      sync.Mutex
	sandbox *Sandbox
	closed  bool
}

// NewState creates a sandboxed Lua state.
func NewState() (*State, error) {
	L := lua.NewState(lua.Options{
		SkipOpenLibs: true, // opened selectively below
	})

	openSafeLibraries(L)

	s := &State{L: L}
	s.sandbox = NewSandbox(L)
	s.sandbox.Install()

	return s, nil
}

// openSafeLibraries opens only the safe Lua standard libraries.
func openSafeLibraries(L *lua.LState) {
	// package must come first: require and preload live there. The
	// sandbox clears its filesystem loaders right after.
	lua.OpenPackage(L)

	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	// Intentionally not opened: io, os, debug. Extension scripts
	// contribute keywords and doc entries, nothing more.
}

// DoFile executes a Lua file. The call blocks until completion or error.
func (s *State) DoFile(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStateClosed
	}

	return s.doWithRecovery(func() error {
		return s.L.DoFile(path)
	})
}

// DoString executes a Lua chunk. The call blocks until completion or error.
func (s *State) DoString(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStateClosed
	}

	return s.doWithRecovery(func() error {
		return s.L.DoString(code)
	})
}

// doWithRecovery executes a function with panic recovery.
func (s *State) doWithRecovery(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn()
}

// GetGlobal returns a global variable value.
func (s *State) GetGlobal(name string) lua.LValue {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return lua.LNil
	}

	return s.L.GetGlobal(name)
}

// SetGlobal sets a global variable.
func (s *State) SetGlobal(name string, value lua.LValue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	s.L.SetGlobal(name, value)
}

// RegisterModule registers a module table with the given functions. The
// module is set as a global and preloaded so require(name) resolves it.
func (s *State) RegisterModule(name string, funcs map[string]lua.LGFunction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	mod := s.L.SetFuncs(s.L.NewTable(), funcs)
	s.L.SetGlobal(name, mod)
	s.L.PreloadModule(name, func(L *lua.LState) int {
		L.Push(mod)
		return 1
	})
}

// Sandbox returns the sandbox installed in this state.
func (s *State) Sandbox() *Sandbox {
	return s.sandbox
}

// LuaState returns the underlying gopher-lua state.
//
// Direct access bypasses the mutex and the sandbox; the caller owns
// thread-safety and cleanup.
func (s *State) LuaState() *lua.LState {
	return s.L
}

// IsClosed returns true if the state has been closed.
func (s *State) IsClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Close releases the Lua state. After Close, execution methods return
// ErrStateClosed.
func (s *State) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.L.Close()
	s.closed = true
	return nil
}
