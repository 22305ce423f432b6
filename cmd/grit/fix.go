package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/biomejs/biome-sub001/internal/driver"
	"github.com/biomejs/biome-sub001/internal/fix"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] <path> [path...]",
	Short: "Apply lint fixes to GritQL files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFix,
}

func init() {
	fixCmd.Flags().Bool("all", false, "apply all safe fixes")
	fixCmd.Flags().Bool("once", false, "apply the first available fix (default)")
	fixCmd.Flags().String("id", "", "apply fix with a specific identifier")
	fixCmd.Flags().Bool("dry-run", false, "compute the fixes without writing files")
	fixCmd.Flags().Bool("diff", false, "print a diff of the fixed files (implies --dry-run)")
	fixCmd.Flags().StringSlice("rules", nil, "lint rules whose fixes are considered")
	fixCmd.Flags().Int("jobs", 0, "max parallel workers (0 uses check.jobs)")
}

func runFix(cmd *cobra.Command, args []string) error {
	applyAll, err := cmd.Flags().GetBool("all")
	if err != nil {
		return fmt.Errorf("failed to get all flag: %w", err)
	}
	applyOnce, err := cmd.Flags().GetBool("once")
	if err != nil {
		return fmt.Errorf("failed to get once flag: %w", err)
	}
	targetID, err := cmd.Flags().GetString("id")
	if err != nil {
		return fmt.Errorf("failed to get id flag: %w", err)
	}
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return fmt.Errorf("failed to get dry-run flag: %w", err)
	}
	showDiff, err := cmd.Flags().GetBool("diff")
	if err != nil {
		return fmt.Errorf("failed to get diff flag: %w", err)
	}

	modes := 0
	for _, set := range []bool{applyAll, applyOnce, targetID != ""} {
		if set {
			modes++
		}
	}
	if modes > 1 {
		return errors.New("fix: --all, --once and --id are mutually exclusive")
	}
	opts := fix.ApplyOptions{Mode: fix.ApplyModeOnce, DryRun: dryRun || showDiff}
	switch {
	case applyAll:
		opts.Mode = fix.ApplyModeAll
	case targetID != "":
		opts.Mode = fix.ApplyModeID
		opts.TargetID = targetID
	}

	req, err := newCheckRequest(cmd, args)
	if err != nil {
		return err
	}
	res, err := req.run(cmd.Context())
	if err != nil {
		return err
	}

	applied, changes, applyErr := driver.Fix(res, opts)
	out := cmd.OutOrStdout()
	if showDiff {
		if err := writeDiff(out, changes); err != nil {
			return err
		}
	} else if !sess.quiet {
		if err := writeApplyResult(out, applied); err != nil {
			return err
		}
	}
	if errors.Is(applyErr, fix.ErrNoFixes) {
		if !sess.quiet {
			fmt.Fprintln(out, "no applicable fixes found")
		}
		return nil
	}
	return applyErr
}

func writeApplyResult(w io.Writer, res *fix.ApplyResult) error {
	if res == nil {
		return nil
	}
	if len(res.Applied) > 0 {
		if _, err := fmt.Fprintf(w, "Applied %d fix(es):\n", len(res.Applied)); err != nil {
			return err
		}
		for _, item := range res.Applied {
			location := item.PrimaryPath
			if location == "" {
				location = "(unknown location)"
			}
			if _, err := fmt.Fprintf(w, "  %s [%s] at %s (%d edits, %s)\n",
				item.Title, item.ID, location, item.EditCount, item.Applicability.String()); err != nil {
				return err
			}
		}
	}
	if len(res.FileChanges) > 0 {
		if _, err := fmt.Fprintln(w, "Updated files:"); err != nil {
			return err
		}
		for _, change := range res.FileChanges {
			if _, err := fmt.Fprintf(w, "  %s (%d edits)\n", change.Path, change.EditCount); err != nil {
				return err
			}
		}
	}
	if len(res.Skipped) > 0 {
		if _, err := fmt.Fprintln(w, "Skipped fixes:"); err != nil {
			return err
		}
		for _, skip := range res.Skipped {
			id := skip.ID
			if id == "" {
				id = "(unnamed)"
			}
			if _, err := fmt.Fprintf(w, "  %s [%s]: %s\n", skip.Title, id, skip.Reason); err != nil {
				return err
			}
		}
	}
	return nil
}
