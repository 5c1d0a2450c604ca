// Package logging builds the zap logger used by the lockpipe CLI.
//
// Two settings control it. The filter picks the lowest level that is
// written ("trace", "debug", "info", "warn", "error" or "off") and accepts
// the comma-separated directive form "target=level,level". The style decides
// whether levels are coloured: "auto" colours only when the output is a
// terminal, "always" and "never" force the choice.
//
// Output is a console encoding without timestamps or callers, written to
// stderr by default.
package logging
