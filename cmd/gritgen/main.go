package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/biomejs/biome-sub001/internal/gritgen"
)

var rootCmd = &cobra.Command{
	Use:   "gritgen",
	Short: "Generate the typed Grit syntax layer from grit.ungram",
	Args:  cobra.NoArgs,
	RunE:  runGenerate,
}

func init() {
	rootCmd.Flags().String("grammar", "grit.ungram", "path to the grammar schema")
	rootCmd.Flags().String("out", ".", "output directory for *_gen.go files")
	rootCmd.Flags().Bool("check", false, "fail if the generated files are out of date instead of writing them")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	grammarPath, err := cmd.Flags().GetString("grammar")
	if err != nil {
		return fmt.Errorf("failed to get grammar flag: %w", err)
	}
	outDir, err := cmd.Flags().GetString("out")
	if err != nil {
		return fmt.Errorf("failed to get out flag: %w", err)
	}
	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return fmt.Errorf("failed to get check flag: %w", err)
	}

	fs := afero.NewOsFs()
	g, err := gritgen.Load(fs, grammarPath)
	if err != nil {
		return err
	}
	files, err := g.Generate()
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if check {
		err := gritgen.Check(fs, outDir, files)
		var stale *gritgen.StaleError
		if errors.As(err, &stale) {
			for name, diff := range stale.Files {
				fmt.Fprintf(cmd.ErrOrStderr(), "--- %s\n%s\n", name, diff)
			}
		}
		return err
	}

	changed, err := gritgen.Write(fs, outDir, files)
	if err != nil {
		return err
	}
	nodes, unions, lists, bogus := g.Stats()
	fmt.Fprintf(cmd.OutOrStdout(), "gritgen: %d nodes, %d unions, %d lists, %d bogus; %d file(s) updated\n",
		nodes, unions, lists, bogus, len(changed))
	return nil
}
