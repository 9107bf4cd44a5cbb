// Package lua hosts site extension scripts for BenchScript tooling.
//
// Installations with site-specific language extensions drop Lua scripts in
// the plugin directory. init.lua runs first, then any other .lua files in
// name order. Scripts run in a sandboxed interpreter with only the base,
// table, string, and math libraries open; dofile, loadfile, and load are
// removed and require resolves only the safe built-ins and the be module.
//
// Scripts shape the tool through the be module:
//
//	be.opener("acquire")                 -- extra block-opening keyword
//	be.closer("release")                 -- extra block-closing keyword
//	be.doc("acquire", "acquire SCOPE",
//	       "Opens a scope acquisition block.")
//	be.set("tab_width", 2)               -- tab_width, comment_prefix, theme
//
// The Runtime collects the contributions, assigns each loaded script an
// instance ID, and hands the result to configuration assembly. A failing
// script is logged and skipped; it never takes the tool down.
package lua
