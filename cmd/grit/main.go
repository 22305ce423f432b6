package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/biomejs/biome-sub001/internal/driver"
	"github.com/biomejs/biome-sub001/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "grit",
	Short: "GritQL syntax toolkit",
	Long:  `Grit parses GritQL pattern files into lossless syntax trees, lints them and rewrites them`,

	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupSession,
}

// main registers the subcommands and the persistent flags, runs the command
// and releases the session. A run that only reported diagnostics exits with
// status 1 without an extra message.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(kindsCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "path to "+configFileHint+" (default: search upward from the working directory)")
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.String("path-mode", "auto", "how file paths are printed (auto|absolute|relative|basename)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.Bool("timings", false, "show timing information")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics per file")
	pf.String("log-level", "warning", "log level (panic|fatal|error|warning|info|debug|trace)")
	pf.String("log-format", "text", "log format (text|json)")
	pf.String("trace", "", "trace output file (- for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-mode", "stream", "trace storage (stream|ring|both)")
	pf.Int("trace-ring-size", 4096, "events kept by the ring tracer")
	pf.Duration("trace-heartbeat", 0, "interval of trace heartbeats (0 disables them)")
	pf.String("cpu-profile", "", "write a CPU profile to file")
	pf.String("mem-profile", "", "write a heap profile to file on exit")
	pf.String("runtime-trace", "", "write a runtime trace to file")

	err := rootCmd.ExecuteContext(context.Background())
	sess.close(err)
	if err != nil {
		if !errors.Is(err, driver.ErrHasErrors) {
			fmt.Fprintf(os.Stderr, "grit: %v\n", err)
		}
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
