package lua

import (
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/benchedit/internal/help"
	"github.com/dshills/benchedit/internal/lang"
)

// ModuleName is the name extension scripts see the bench module under.
const ModuleName = "be"

// Setting keys accepted by be.set.
const (
	SettingTabWidth      = "tab_width"
	SettingCommentPrefix = "comment_prefix"
	SettingTheme         = "theme"
)

// Contrib accumulates what extension scripts contribute.
type Contrib struct {
	// Openers are extra block-opening keywords.
	Openers []string

	// Closers are extra block-closing keywords.
	Closers []string

	// Docs are extra help entries.
	Docs []help.Entry

	// Settings holds overrides keyed by the Setting* constants.
	Settings map[string]string
}

// NewContrib returns an empty contribution set.
func NewContrib() *Contrib {
	return &Contrib{Settings: make(map[string]string)}
}

// Empty reports whether no contributions were made.
func (c *Contrib) Empty() bool {
	return len(c.Openers) == 0 && len(c.Closers) == 0 &&
		len(c.Docs) == 0 && len(c.Settings) == 0
}

// installBenchModule registers the be module in the state. Calls made by
// scripts record into contrib; argument errors surface as Lua errors in
// the calling script.
func installBenchModule(s *State, contrib *Contrib) {
	s.RegisterModule(ModuleName, map[string]lua.LGFunction{
		"opener": func(L *lua.LState) int {
			contrib.Openers = append(contrib.Openers, checkKeyword(L))
			return 0
		},
		"closer": func(L *lua.LState) int {
			contrib.Closers = append(contrib.Closers, checkKeyword(L))
			return 0
		},
		"doc": func(L *lua.LState) int {
			name := strings.TrimSpace(L.CheckString(1))
			if name == "" {
				L.ArgError(1, "doc name must not be empty")
			}
			contrib.Docs = append(contrib.Docs, help.Entry{
				Name:      name,
				Signature: L.CheckString(2),
				Summary:   L.CheckString(3),
				Category:  help.CategoryExtension,
			})
			return 0
		},
		"set": func(L *lua.LState) int {
			key := L.CheckString(1)
			switch key {
			case SettingTabWidth, SettingCommentPrefix, SettingTheme:
			default:
				L.ArgError(1, "unknown setting "+key)
			}
			value := L.CheckAny(2)
			switch value.Type() {
			case lua.LTString, lua.LTNumber:
				contrib.Settings[key] = value.String()
			default:
				L.ArgError(2, "setting value must be a string or number")
			}
			return 0
		},
	})
}

// checkKeyword validates and normalizes a contributed keyword argument.
func checkKeyword(L *lua.LState) string {
	word := strings.TrimSpace(L.CheckString(1))
	if !lang.ValidKeyword(word) {
		L.ArgError(1, "keyword must be a bare identifier")
	}
	return strings.ToLower(word)
}
