package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mstoykov/envconfig"
	"github.com/spf13/afero"

	"github.com/biomejs/biome-sub001/internal/lint"
	"github.com/biomejs/biome-sub001/internal/trace"
)

// FileName is the configuration file looked up by Find.
const FileName = "grit.toml"

// Config is the tool configuration.
type Config struct {
	Check  CheckConfig  `toml:"check"`
	Output OutputConfig `toml:"output"`
	Trace  TraceConfig  `toml:"trace"`
	Lint   LintConfig   `toml:"lint"`

	// Source is the file the values came from, "" for defaults only.
	Source string `toml:"-"`
}

type CheckConfig struct {
	MaxDiagnostics int  `toml:"max_diagnostics"`
	Jobs           int  `toml:"jobs"`
	DebugDepth     int  `toml:"debug_depth"`
	Invariants     bool `toml:"invariants"`
}

type OutputConfig struct {
	Format   string `toml:"format"`    // pretty | json | short
	Color    string `toml:"color"`     // auto | on | off
	PathMode string `toml:"path_mode"` // auto | absolute | relative | basename
}

type TraceConfig struct {
	Level  string `toml:"level"`
	Mode   string `toml:"mode"`
	Output string `toml:"output"`
}

type LintConfig struct {
	Rules []string `toml:"rules"`
}

// Default returns the configuration used without a file.
func Default() Config {
	return Config{
		Check: CheckConfig{
			MaxDiagnostics: 100,
			Jobs:           runtime.GOMAXPROCS(0),
			DebugDepth:     16,
		},
		Output: OutputConfig{Format: "pretty", Color: "auto", PathMode: "auto"},
		Trace:  TraceConfig{Level: "off", Mode: "stream", Output: "-"},
	}
}

// envOverrides lists the GRIT_* variables; nil fields are unset.
type envOverrides struct {
	MaxDiagnostics *int    `envconfig:"GRIT_MAX_DIAGNOSTICS"`
	Jobs           *int    `envconfig:"GRIT_JOBS"`
	DebugDepth     *int    `envconfig:"GRIT_DEBUG_DEPTH"`
	Invariants     *bool   `envconfig:"GRIT_INVARIANTS"`
	Format         *string `envconfig:"GRIT_FORMAT"`
	Color          *string `envconfig:"GRIT_COLOR"`
	PathMode       *string `envconfig:"GRIT_PATH_MODE"`
	TraceLevel     *string `envconfig:"GRIT_TRACE_LEVEL"`
	TraceMode      *string `envconfig:"GRIT_TRACE_MODE"`
	TraceOutput    *string `envconfig:"GRIT_TRACE_OUTPUT"`
	Rules          *string `envconfig:"GRIT_LINT_RULES"`
}

// Load reads path from fs on top of the defaults. An empty path searches
// upward from dir for grit.toml; a missing file leaves the defaults.
func Load(fs afero.Fs, path, dir string) (Config, error) {
	cfg := Default()
	if path == "" {
		found, ok, err := Find(fs, dir)
		if err != nil {
			return cfg, err
		}
		if !ok {
			return cfg, nil
		}
		path = found
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := Decode(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Source = path
	return cfg, nil
}

// Decode parses TOML into cfg, keeping the values the document omits.
func Decode(data []byte, cfg *Config) error {
	meta, err := toml.Decode(string(data), cfg)
	if err != nil {
		return fmt.Errorf("failed to parse TOML: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return cfg.Validate()
}

// LookupFunc reads one environment variable.
type LookupFunc func(key string) (string, bool)

// ApplyEnv applies the GRIT_* variables found by lookup; nil means the
// process environment.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	var env envOverrides
	if err := envconfig.Process("", &env, func(key string) (string, bool) {
		return lookup(key)
	}); err != nil {
		return fmt.Errorf("environment: %w", err)
	}
	setInt := func(dst *int, v *int) {
		if v != nil {
			*dst = *v
		}
	}
	setStr := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	setInt(&c.Check.MaxDiagnostics, env.MaxDiagnostics)
	setInt(&c.Check.Jobs, env.Jobs)
	setInt(&c.Check.DebugDepth, env.DebugDepth)
	if env.Invariants != nil {
		c.Check.Invariants = *env.Invariants
	}
	setStr(&c.Output.Format, env.Format)
	setStr(&c.Output.Color, env.Color)
	setStr(&c.Output.PathMode, env.PathMode)
	setStr(&c.Trace.Level, env.TraceLevel)
	setStr(&c.Trace.Mode, env.TraceMode)
	setStr(&c.Trace.Output, env.TraceOutput)
	if env.Rules != nil {
		c.Lint.Rules = splitList(*env.Rules)
	}
	return c.Validate()
}

func splitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	var errs []error
	if c.Check.MaxDiagnostics < 0 {
		errs = append(errs, fmt.Errorf("check.max_diagnostics must not be negative, got %d", c.Check.MaxDiagnostics))
	}
	if c.Check.Jobs < 0 {
		errs = append(errs, fmt.Errorf("check.jobs must not be negative, got %d", c.Check.Jobs))
	}
	if c.Check.DebugDepth < 0 {
		errs = append(errs, fmt.Errorf("check.debug_depth must not be negative, got %d", c.Check.DebugDepth))
	}
	oneOf := func(key, v string, allowed ...string) {
		for _, a := range allowed {
			if v == a {
				return
			}
		}
		errs = append(errs, fmt.Errorf("%s: %q is not one of %s", key, v, strings.Join(allowed, ", ")))
	}
	oneOf("output.format", c.Output.Format, "pretty", "json", "short")
	oneOf("output.color", c.Output.Color, "auto", "on", "off")
	oneOf("output.path_mode", c.Output.PathMode, "auto", "absolute", "relative", "basename")
	if _, err := trace.ParseLevel(c.Trace.Level); err != nil {
		errs = append(errs, fmt.Errorf("trace.level: %w", err))
	}
	if _, err := trace.ParseMode(c.Trace.Mode); err != nil {
		errs = append(errs, fmt.Errorf("trace.mode: %w", err))
	}
	if _, err := lint.ParseRuleSet(c.Lint.Rules); err != nil {
		errs = append(errs, fmt.Errorf("lint.rules: %w", err))
	}
	return errors.Join(errs...)
}

// Jobs returns the worker count, at least one.
func (c *Config) Jobs() int {
	if c.Check.Jobs <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return c.Check.Jobs
}
