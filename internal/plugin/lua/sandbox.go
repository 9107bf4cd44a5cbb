package lua

import (
	lua "github.com/yuin/gopher-lua"
)

// safeModules are the built-in modules require may load.
var safeModules = map[string]bool{
	"string": true,
	"table":  true,
	"math":   true,
}

// Sandbox restricts Lua execution to safe operations. Extension scripts
// run with no filesystem, process, or network surface.
type Sandbox struct {
	L *lua.LState
}

// NewSandbox creates a sandbox for the Lua state.
func NewSandbox(L *lua.LState) *Sandbox {
	return &Sandbox{L: L}
}

// Install sets up the sandbox restrictions.
func (s *Sandbox) Install() {
	// Remove functions that load code from outside the script.
	dangerousFuncs := []string{
		"dofile",     // load and execute file
		"loadfile",   // load file as function
		"load",       // load string as function
		"loadstring", // deprecated alias, may exist
	}
	for _, name := range dangerousFuncs {
		s.L.SetGlobal(name, lua.LNil)
	}

	s.installSafeRequire()
}

// installSafeRequire replaces require with a whitelist-based version.
//
// package.path and package.cpath are cleared so nothing loads from disk;
// package.loaded keeps only the safe built-ins. After this, require
// resolves safe built-in modules and preloaded modules (RegisterModule)
// and nothing else.
func (s *Sandbox) installSafeRequire() {
	pkg := s.L.GetGlobal("package")
	if pkgTable, ok := pkg.(*lua.LTable); ok {
		s.L.SetField(pkgTable, "path", lua.LString(""))
		s.L.SetField(pkgTable, "cpath", lua.LString(""))

		safeLoaded := map[string]bool{
			"_G": true, "package": true,
			"string": true, "table": true, "math": true,
		}
		loaded := s.L.GetField(pkgTable, "loaded")
		if loadedTbl, ok := loaded.(*lua.LTable); ok {
			var keysToRemove []string
			loadedTbl.ForEach(func(k, _ lua.LValue) {
				if ks, ok := k.(lua.LString); ok {
					if !safeLoaded[string(ks)] {
						keysToRemove = append(keysToRemove, string(ks))
					}
				}
			})
			for _, key := range keysToRemove {
				loadedTbl.RawSetString(key, lua.LNil)
			}
		}
	}

	// Original require still resolves loaded and preloaded modules once
	// the filesystem loaders have nothing to find.
	originalRequire := s.L.GetGlobal("require")

	s.L.SetGlobal("require", s.L.NewFunction(func(L *lua.LState) int {
		modName := L.CheckString(1)

		if safeModules[modName] || modName == ModuleName {
			L.Push(originalRequire)
			L.Push(lua.LString(modName))
			L.Call(1, 1)
			return 1
		}

		// L.RaiseError does a longjmp; the return is unreachable.
		L.RaiseError("module %q is not available", modName)
		return 0
	}))
}
