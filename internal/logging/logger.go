package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Name is the logger name printed with every line.
const Name = "lockpipe"

// Target is what filter directives are matched against. Matching is by
// prefix, so "lockpipe=debug" and "lockpipes=debug" both select lockpipe's
// events while "lockpipes::other=debug" does not.
const Target = "lockpipes"

// Style controls coloured output.
type Style string

const (
	StyleAuto   Style = "auto"
	StyleAlways Style = "always"
	StyleNever  Style = "never"
)

// ParseStyle converts a string to a Style. Matching is case-insensitive.
func ParseStyle(s string) (Style, error) {
	style := Style(strings.ToLower(strings.TrimSpace(s)))
	switch style {
	case StyleAuto, StyleAlways, StyleNever:
		return style, nil
	default:
		return "", fmt.Errorf("invalid log style: %q (valid: auto, always, never)", s)
	}
}

// Filter is a parsed log filter.
type Filter struct {
	// Level is the lowest level written.
	Level zapcore.Level

	// Off disables all output. Level is ignored when set.
	Off bool
}

// Enabled reports whether entries at lvl are written.
func (f Filter) Enabled(lvl zapcore.Level) bool {
	return !f.Off && f.Level.Enabled(lvl)
}

// ParseFilter parses a filter such as "debug" or "other=trace,lockpipe=warn".
//
// A bare level applies to every target. A "target=level" directive applies
// when target is a prefix of Target. Among the directives that apply, the one
// with the longest target wins, so a scoped directive always beats a bare
// level; ties go to the later directive. A filter in which no directive
// applies disables output.
func ParseFilter(s string) (Filter, error) {
	if strings.TrimSpace(s) == "" {
		return Filter{Level: zapcore.InfoLevel}, nil
	}

	var (
		filter  = Filter{Off: true}
		longest = -1
	)

	for _, directive := range strings.Split(s, ",") {
		directive = strings.TrimSpace(directive)
		if directive == "" {
			continue
		}

		target, level, scoped := strings.Cut(directive, "=")
		if !scoped {
			level, target = target, ""
		}
		target = strings.TrimSpace(target)

		// Parse before matching, so typos in other targets are reported too.
		f, err := parseLevel(level)
		if err != nil {
			return Filter{}, err
		}

		if !strings.HasPrefix(Target, target) || len(target) < longest {
			continue
		}
		filter, longest = f, len(target)
	}

	return filter, nil
}

// parseLevel converts a single level name to a Filter. "trace" has no zap
// equivalent and maps to debug.
func parseLevel(s string) (Filter, error) {
	switch name := strings.ToLower(strings.TrimSpace(s)); name {
	case "off":
		return Filter{Off: true}, nil
	case "trace":
		return Filter{Level: zapcore.DebugLevel}, nil
	case "debug", "info", "warn", "error":
		var l zapcore.Level
		if err := l.UnmarshalText([]byte(name)); err != nil {
			return Filter{}, err
		}
		return Filter{Level: l}, nil
	default:
		return Filter{}, fmt.Errorf("invalid log level: %q (valid: trace, debug, info, warn, error, off)", s)
	}
}

// Config defines logger configuration.
type Config struct {
	Filter string
	Style  string

	// Output receives log lines. Defaults to os.Stderr.
	Output io.Writer
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Filter: "info",
		Style:  string(StyleAuto),
		Output: os.Stderr,
	}
}

// New creates a logger from cfg.
func New(cfg Config) (*zap.Logger, error) {
	filter, err := ParseFilter(cfg.Filter)
	if err != nil {
		return nil, err
	}
	style, err := ParseStyle(cfg.Style)
	if err != nil {
		return nil, err
	}
	if filter.Off {
		return zap.NewNop(), nil
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig(useColor(style, out))),
		zapcore.Lock(zapcore.AddSync(out)),
		zap.LevelEnablerFunc(filter.Enabled),
	)
	return zap.New(core).Named(Name), nil
}

// useColor resolves StyleAuto against the output: colour only when it is a
// terminal.
func useColor(style Style, out io.Writer) bool {
	switch style {
	case StyleAlways:
		return true
	case StyleNever:
		return false
	}

	f, ok := out.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// encoderConfig returns a console encoder configuration without timestamps
// or callers.
func encoderConfig(color bool) zapcore.EncoderConfig {
	level := zapcore.CapitalLevelEncoder
	if color {
		level = zapcore.CapitalColorLevelEncoder
	}

	return zapcore.EncoderConfig{
		LevelKey:         "L",
		NameKey:          "N",
		MessageKey:       "M",
		StacktraceKey:    zapcore.OmitKey,
		TimeKey:          zapcore.OmitKey,
		CallerKey:        zapcore.OmitKey,
		FunctionKey:      zapcore.OmitKey,
		LineEnding:       zapcore.DefaultLineEnding,
		ConsoleSeparator: " ",
		EncodeLevel:      level,
		EncodeDuration:   zapcore.StringDurationEncoder,
	}
}
