package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/biomejs/biome-sub001/internal/ast"
	"github.com/biomejs/biome-sub001/internal/diagfmt"
	"github.com/biomejs/biome-sub001/internal/driver"
	"github.com/biomejs/biome-sub001/internal/grit"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.grit",
	Short: "Parse a GritQL file and print its syntax tree",
	Long: `Parse builds the lossless syntax tree of a GritQL file and prints it as a
raw tree, as typed nodes or serialized to json, yaml or msgpack`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("format", "tree", "output format (tree|typed|json|yaml|msgpack)")
	parseCmd.Flags().Int("depth", 0, "maximum dump depth (0 uses check.debug_depth)")
	parseCmd.Flags().Bool("trivia", false, "include trivia in the raw tree")
	parseCmd.Flags().String("query", "", "gjson path evaluated against the json output")
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	depth, err := cmd.Flags().GetInt("depth")
	if err != nil {
		return fmt.Errorf("failed to get depth flag: %w", err)
	}
	trivia, err := cmd.Flags().GetBool("trivia")
	if err != nil {
		return fmt.Errorf("failed to get trivia flag: %w", err)
	}
	query, err := cmd.Flags().GetString("query")
	if err != nil {
		return fmt.Errorf("failed to get query flag: %w", err)
	}
	if query != "" && format != "json" {
		return fmt.Errorf("parse: --query needs --format=json")
	}
	if depth <= 0 {
		depth = sess.cfg.Check.DebugDepth
	}

	done := sess.timer.Begin("parse")
	result, err := driver.Parse(cmd.Context(), sess.fs, args[0], sess.cfg.Check.MaxDiagnostics)
	done()
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}
	if result.Bag.Len() > 0 {
		if err := writeDiagnostics(os.Stderr, result.Bag, result.FileSet, diagOutput{format: sess.cfg.Output.Format}); err != nil {
			return err
		}
	}

	root := result.Parse.Syntax()
	out := cmd.OutOrStdout()
	switch format {
	case "tree", "typed":
		err = diagfmt.FormatTree(out, root, diagfmt.TreeOpts{Depth: depth, Trivia: trivia, Typed: format == "typed"})
	case "json":
		err = writeJSONTree(out, grit.Wrap(root), query)
	case "yaml":
		err = writeEncoded(out, grit.Wrap(root), ast.EncodeYAML)
	case "msgpack":
		err = writeEncoded(out, grit.Wrap(root), ast.EncodeMsgpack)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	if err != nil {
		return err
	}
	if sess.timer != nil {
		writeTimings(os.Stderr, sess.timer.Report())
	}
	if result.Bag.HasErrors() {
		return driver.ErrHasErrors
	}
	return nil
}

func writeEncoded(w io.Writer, n ast.Node, encode func(ast.Node) ([]byte, error)) error {
	data, err := encode(n)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func writeJSONTree(w io.Writer, n ast.Node, query string) error {
	data, err := ast.EncodeJSON(n)
	if err != nil {
		return err
	}
	if query != "" {
		res := gjson.GetBytes(data, query)
		if !res.Exists() {
			return fmt.Errorf("parse: query %q matched nothing", query)
		}
		data = []byte(res.Raw)
	}
	if !bytes.HasSuffix(data, []byte("\n")) {
		data = append(data, '\n')
	}
	_, err = w.Write(data)
	return err
}
