package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/biomejs/biome-sub001/internal/diag"
	"github.com/biomejs/biome-sub001/internal/driver"
	"github.com/biomejs/biome-sub001/internal/lint"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <path> [path...]",
	Short: "Parse and lint GritQL files",
	Long: `Check parses every .grit file under the given paths in parallel, runs the lint
rules and reports the diagnostics`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "", "diagnostics format (pretty|json|short), default from output.format")
	checkCmd.Flags().StringSlice("rules", nil, "lint rules to run (default from lint.rules)")
	checkCmd.Flags().Bool("no-lint", false, "only report syntax errors")
	checkCmd.Flags().Bool("invariants", false, "verify the tree invariants of every file")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers (0 uses check.jobs)")
	checkCmd.Flags().Bool("stats", false, "print tree statistics per file")
	checkCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	checkCmd.Flags().Bool("suggest", false, "include fix suggestions in output")
	checkCmd.Flags().Bool("warnings-as-errors", false, "fail when warnings are reported")
	checkCmd.Flags().String("ui", "auto", "progress view (auto|on|off)")
}

// checkRequest is the resolved flag set of check, fix and format.
type checkRequest struct {
	paths   []string
	opts    driver.Options
	uiMode  uiMode
	useLint bool
}

func newCheckRequest(cmd *cobra.Command, paths []string) (checkRequest, error) {
	req := checkRequest{paths: paths, uiMode: uiModeOff, useLint: true}
	flags := cmd.Flags()

	rules := sess.cfg.Lint.Rules
	if flags.Lookup("rules") != nil && flags.Changed("rules") {
		var err error
		if rules, err = flags.GetStringSlice("rules"); err != nil {
			return req, fmt.Errorf("failed to get rules flag: %w", err)
		}
	}
	set := lint.DefaultRules
	if len(rules) > 0 {
		var err error
		if set, err = lint.ParseRuleSet(rules); err != nil {
			return req, err
		}
	}
	if flags.Lookup("no-lint") != nil {
		noLint, err := flags.GetBool("no-lint")
		if err != nil {
			return req, fmt.Errorf("failed to get no-lint flag: %w", err)
		}
		req.useLint = !noLint
	}

	invariants := sess.cfg.Check.Invariants
	if flags.Lookup("invariants") != nil && flags.Changed("invariants") {
		var err error
		if invariants, err = flags.GetBool("invariants"); err != nil {
			return req, fmt.Errorf("failed to get invariants flag: %w", err)
		}
	}

	jobs := sess.cfg.Jobs()
	if flags.Lookup("jobs") != nil {
		j, err := flags.GetInt("jobs")
		if err != nil {
			return req, fmt.Errorf("failed to get jobs flag: %w", err)
		}
		if j > 0 {
			jobs = j
		}
	}

	if flags.Lookup("ui") != nil {
		value, err := flags.GetString("ui")
		if err != nil {
			return req, fmt.Errorf("failed to get ui flag: %w", err)
		}
		if req.uiMode, err = readUIMode(value); err != nil {
			return req, err
		}
	}

	dir, err := os.Getwd()
	if err != nil {
		return req, err
	}
	req.opts = driver.Options{
		Fs:             sess.fs,
		BaseDir:        dir,
		Jobs:           jobs,
		MaxDiagnostics: sess.cfg.Check.MaxDiagnostics,
		Lint:           req.useLint,
		Rules:          set,
		Invariants:     invariants,
		Timer:          sess.timer,
		Log:            sess.log,
	}
	return req, nil
}

// run checks the files of req, with the progress view when it is enabled.
func (req checkRequest) run(ctx context.Context) (*driver.Result, error) {
	files, err := driver.ListFiles(req.opts.Fs, req.paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no %s files found", driver.Ext)
	}
	if !shouldUseTUI(req.uiMode) {
		return driver.CheckFiles(ctx, files, req.opts)
	}
	return runCheckWithUI(ctx, "checking", files, req.opts)
}

func runCheck(cmd *cobra.Command, args []string) error {
	req, err := newCheckRequest(cmd, args)
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format == "" {
		format = sess.cfg.Output.Format
	}
	stats, err := cmd.Flags().GetBool("stats")
	if err != nil {
		return fmt.Errorf("failed to get stats flag: %w", err)
	}
	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	suggest, err := cmd.Flags().GetBool("suggest")
	if err != nil {
		return fmt.Errorf("failed to get suggest flag: %w", err)
	}
	warningsAsErrors, err := cmd.Flags().GetBool("warnings-as-errors")
	if err != nil {
		return fmt.Errorf("failed to get warnings-as-errors flag: %w", err)
	}

	res, err := req.run(cmd.Context())
	if err != nil {
		return err
	}

	bag := res.Bag()
	if sess.timer != nil && format == "json" {
		// для json отчёт о времени уходит в диагностику
		withTimings := diag.NewBag(bag.Len() + 1)
		withTimings.Merge(bag)
		withTimings.Add(driver.TimingsDiagnostic("check", len(res.Files), sess.timer.Report()))
		bag = withTimings
	}
	out := cmd.OutOrStdout()
	if err := writeDiagnostics(out, bag, res.FileSet, diagOutput{
		format: format,
		notes:  withNotes,
		fixes:  suggest,
	}); err != nil {
		return err
	}
	if stats {
		writeStats(out, res)
	}
	if sess.timer != nil && format != "json" {
		writeTimings(os.Stderr, sess.timer.Report())
	}
	if !sess.quiet && format == "pretty" {
		printSummary(os.Stderr, len(res.Files), bag)
	}

	if res.HasErrors() || (warningsAsErrors && bag.HasWarnings()) {
		return driver.ErrHasErrors
	}
	return nil
}

func printSummary(w *os.File, files int, bag *diag.Bag) {
	errs := bag.Count(diag.SevError)
	warns := bag.Count(diag.SevWarning)
	fmt.Fprintf(w, "checked %d file(s): %d error(s), %d warning(s)\n", files, errs, warns)
}
