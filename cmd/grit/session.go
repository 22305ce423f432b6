package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/biomejs/biome-sub001/internal/config"
	"github.com/biomejs/biome-sub001/internal/diagfmt"
	"github.com/biomejs/biome-sub001/internal/observ"
	"github.com/biomejs/biome-sub001/internal/prof"
	"github.com/biomejs/biome-sub001/internal/trace"
)

const configFileHint = config.FileName

// session is the state shared by the commands of one run.
type session struct {
	fs       afero.Fs
	cfg      config.Config
	log      *logrus.Logger
	color    bool
	quiet    bool
	pathMode diagfmt.PathMode
	// timer is nil unless --timings is set.
	timer    *observ.Timer
	tracer   trace.Tracer
	cleanups []func()
	errOut   io.Writer
}

var sess = session{fs: afero.NewOsFs(), errOut: os.Stderr}

// setupSession resolves the configuration and starts logging, tracing and
// profiling before any subcommand runs.
func setupSession(cmd *cobra.Command, _ []string) error {
	flags := cmd.Root().PersistentFlags()
	sess.errOut = cmd.ErrOrStderr()

	cfg, err := loadConfig(sess.fs, flags)
	if err != nil {
		return err
	}
	sess.cfg = cfg

	if sess.quiet, err = flags.GetBool("quiet"); err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if sess.pathMode, err = diagfmt.ParsePathMode(cfg.Output.PathMode); err != nil {
		return err
	}
	sess.color = useColor(cfg.Output.Color, os.Stderr)
	color.NoColor = !sess.color

	if sess.log, err = newLogger(flags, sess.errOut, sess.color); err != nil {
		return err
	}
	sess.log.WithFields(logrus.Fields{
		"config": valueOr(cfg.Source, "defaults"),
		"jobs":   cfg.Jobs(),
	}).Debug("configuration loaded")

	timings, err := flags.GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	if timings {
		sess.timer = observ.NewTimer()
	}

	if err := setupTracing(cmd); err != nil {
		return err
	}
	return setupProfiling(cmd)
}

// loadConfig layers grit.toml, GRIT_* variables and explicitly set flags.
func loadConfig(fs afero.Fs, flags *pflag.FlagSet) (config.Config, error) {
	path, err := flags.GetString("config")
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	dir, err := os.Getwd()
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(fs, path, dir)
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(nil); err != nil {
		return cfg, err
	}
	if err := applyFlags(&cfg, flags); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// applyFlags overrides cfg with the flags given on the command line.
func applyFlags(cfg *config.Config, flags *pflag.FlagSet) error {
	strs := []struct {
		flag string
		dst  *string
	}{
		{"color", &cfg.Output.Color},
		{"path-mode", &cfg.Output.PathMode},
		{"trace", &cfg.Trace.Output},
		{"trace-level", &cfg.Trace.Level},
		{"trace-mode", &cfg.Trace.Mode},
	}
	for _, s := range strs {
		if !flags.Changed(s.flag) {
			continue
		}
		v, err := flags.GetString(s.flag)
		if err != nil {
			return fmt.Errorf("failed to get %s flag: %w", s.flag, err)
		}
		*s.dst = v
	}
	if flags.Changed("max-diagnostics") {
		v, err := flags.GetInt("max-diagnostics")
		if err != nil {
			return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
		}
		cfg.Check.MaxDiagnostics = v
	}
	// файл трассировки без уровня включает фазы
	if flags.Changed("trace") && !flags.Changed("trace-level") && cfg.Trace.Level == "off" {
		cfg.Trace.Level = "phase"
	}
	return nil
}

func newLogger(flags *pflag.FlagSet, out io.Writer, colored bool) (*logrus.Logger, error) {
	levelStr, err := flags.GetString("log-level")
	if err != nil {
		return nil, fmt.Errorf("failed to get log-level flag: %w", err)
	}
	formatStr, err := flags.GetString("log-format")
	if err != nil {
		return nil, fmt.Errorf("failed to get log-format flag: %w", err)
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		return nil, err
	}
	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(level)
	switch formatStr {
	case "text":
		log.SetFormatter(&logrus.TextFormatter{DisableColors: !colored, FullTimestamp: true})
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("invalid log format %q (expected text|json)", formatStr)
	}
	return log, nil
}

// setupTracing attaches the configured tracer to the command context.
func setupTracing(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()
	ringSize, err := flags.GetInt("trace-ring-size")
	if err != nil {
		return fmt.Errorf("failed to get trace-ring-size flag: %w", err)
	}
	heartbeatInterval, err := flags.GetDuration("trace-heartbeat")
	if err != nil {
		return fmt.Errorf("failed to get trace-heartbeat flag: %w", err)
	}

	level, err := trace.ParseLevel(sess.cfg.Trace.Level)
	if err != nil {
		return fmt.Errorf("invalid trace level: %w", err)
	}
	mode, err := trace.ParseMode(sess.cfg.Trace.Mode)
	if err != nil {
		return fmt.Errorf("invalid trace mode: %w", err)
	}
	tracer, err := trace.New(trace.Config{
		Level:      level,
		Mode:       mode,
		OutputPath: sess.cfg.Trace.Output,
		Fs:         sess.fs,
		RingSize:   ringSize,
		Heartbeat:  heartbeatInterval,
	})
	if err != nil {
		return fmt.Errorf("failed to create tracer: %w", err)
	}
	sess.tracer = tracer
	cmd.SetContext(trace.WithTracer(cmd.Context(), tracer))
	if !tracer.Enabled() {
		return nil
	}

	var heartbeat *trace.Heartbeat
	if heartbeatInterval > 0 {
		heartbeat = trace.StartHeartbeat(tracer, heartbeatInterval)
	}
	sess.cleanups = append(sess.cleanups, func() {
		if heartbeat != nil {
			heartbeat.Stop()
		}
		if err := tracer.Flush(); err != nil {
			sess.log.WithError(err).Warn("trace: flush failed")
		}
		if err := tracer.Close(); err != nil {
			sess.log.WithError(err).Warn("trace: close failed")
		}
	})
	return nil
}

// setupProfiling starts the profiles named by the persistent flags.
func setupProfiling(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()
	var opts prof.Options
	for _, f := range []struct {
		name string
		dst  *string
	}{
		{"cpu-profile", &opts.CPU},
		{"mem-profile", &opts.Mem},
		{"runtime-trace", &opts.Trace},
	} {
		v, err := flags.GetString(f.name)
		if err != nil {
			return fmt.Errorf("failed to get %s flag: %w", f.name, err)
		}
		*f.dst = v
	}
	if opts == (prof.Options{}) {
		return nil
	}
	session, err := prof.Start(sess.fs, opts)
	if err != nil {
		return fmt.Errorf("failed to start profiling: %w", err)
	}
	sess.cleanups = append(sess.cleanups, func() {
		if err := session.Stop(); err != nil {
			sess.log.WithError(err).Warn("failed to write profiles")
		}
	})
	return nil
}

// close runs the cleanups in reverse order. After a failed run the ring
// tracer, if any, is dumped to stderr.
func (s *session) close(runErr error) {
	if runErr != nil && s.tracer != nil {
		if ring, ok := trace.Ring(s.tracer); ok {
			fmt.Fprintln(s.errOut, "--- trace ring ---")
			if err := ring.Dump(s.errOut, trace.FormatText); err != nil && s.log != nil {
				s.log.WithError(err).Warn("trace: ring dump failed")
			}
		}
	}
	for i := len(s.cleanups) - 1; i >= 0; i-- {
		s.cleanups[i]()
	}
	s.cleanups = nil
}

func useColor(mode string, f *os.File) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		_, noColor := os.LookupEnv("NO_COLOR")
		return !noColor && isTerminal(f)
	}
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
