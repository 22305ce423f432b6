package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/biomejs/biome-sub001/internal/diagfmt"
	"github.com/biomejs/biome-sub001/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.grit",
	Short: "Tokenize a GritQL file",
	Long:  `Tokenize prints the tokens of a GritQL file together with their trivia`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	result, err := driver.Tokenize(cmd.Context(), sess.fs, args[0], sess.cfg.Check.MaxDiagnostics)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	// Выводим диагностику в stderr, если есть
	if result.Bag.Len() > 0 {
		if err := writeDiagnostics(os.Stderr, result.Bag, result.FileSet, diagOutput{format: "pretty"}); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	switch format {
	case "pretty":
		err = diagfmt.FormatTokensPretty(out, result.Tokens, result.FileSet)
	case "json":
		err = diagfmt.FormatTokensJSON(out, result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	if err != nil {
		return err
	}
	if result.Bag.HasErrors() {
		return driver.ErrHasErrors
	}
	return nil
}
