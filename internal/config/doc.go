// Package config loads stackedit settings.
//
// Settings come from three places, later ones overriding earlier ones:
//
//  1. Built-in defaults (Default)
//  2. A TOML file (Load)
//  3. STACKEDIT_* environment variables (ApplyEnv)
//
// Command-line flags are applied by the caller on top of the result.
//
// Example file:
//
//	[buffer]
//	store = "dualstack"
//	initial_capacity = 16
//
//	[repl]
//	prompt = "> "
//	cursor_marker = "|"
//
//	[log]
//	level = "info"
//
// A missing file is not an error; Load returns the defaults. Unknown keys are
// rejected so that typos surface early.
package config
