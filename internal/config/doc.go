// Package config resolves lockpipe's settings.
//
// Settings come from four layers, lowest precedence first: built-in
// defaults, an optional config file, LOCKPIPE_* environment variables, and
// command-line flags (applied by the cli package). The config file may be
// YAML (.yaml, .yml) or JSON with comments (any other extension).
package config
