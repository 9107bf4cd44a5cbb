// Package config loads and validates benchedit configuration.
//
// Effective settings are assembled from three layers, later layers
// winning:
//
//	defaults  ->  config.toml  ->  environment (BENCHEDIT_*)
//
// The config file is TOML, found at the platform config location
// (~/.config/benchedit/config.toml on Unix) unless an explicit path is
// given. A missing file is not an error. A local .env file is honored
// before environment variables are read.
//
//	[editor]
//	tab_width = 4
//	indent_style = "spaces"
//	trim_trailing_space = false
//
//	[language]
//	comment_prefix = "!"
//	extra_openers = ["acquire"]
//	extra_closers = ["release"]
//	doc_paths = ["~/bench/docs"]
//
//	[ui]
//	theme = "default"
//
//	[plugin]
//	enabled = true
//	dir = "~/.config/benchedit/plugins"
//
//	[log]
//	level = "info"
//	file = ""
package config
