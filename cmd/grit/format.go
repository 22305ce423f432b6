package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/biomejs/biome-sub001/internal/driver"
)

var formatCmd = &cobra.Command{
	Use:   "format [flags] <path> [path...]",
	Short: "Normalize comma spacing in GritQL files",
	Long: `Format rewrites the separators of every list to "a, b" spacing. Files with
syntax errors are left untouched`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFormat,
}

func init() {
	formatCmd.Flags().Bool("check", false, "only report files that need formatting")
	formatCmd.Flags().Bool("diff", false, "print a diff instead of rewriting files")
	formatCmd.Flags().Int("jobs", 0, "max parallel workers (0 uses check.jobs)")
}

func runFormat(cmd *cobra.Command, args []string) error {
	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return fmt.Errorf("failed to get check flag: %w", err)
	}
	showDiff, err := cmd.Flags().GetBool("diff")
	if err != nil {
		return fmt.Errorf("failed to get diff flag: %w", err)
	}

	req, err := newCheckRequest(cmd, args)
	if err != nil {
		return err
	}
	req.opts.Lint = false
	res, err := req.run(cmd.Context())
	if err != nil {
		return err
	}

	write := !check && !showDiff
	changes, err := driver.Format(res, write)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case showDiff:
		if err := writeDiff(out, changes); err != nil {
			return err
		}
	case !sess.quiet:
		verb := "reformatted"
		if check {
			verb = "needs formatting:"
		}
		for _, ch := range changes {
			fmt.Fprintf(out, "%s %s\n", verb, ch.Path)
		}
	}

	for i := range res.Files {
		if fr := &res.Files[i]; fr.Bag.HasErrors() {
			sess.log.WithField("file", fr.Path).Warn("skipped: file has syntax errors")
		}
	}
	if check && len(changes) > 0 {
		return fmt.Errorf("format: %d file(s) need formatting", len(changes))
	}
	return nil
}
