package main

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/biomejs/biome-sub001/internal/grit"
	"github.com/biomejs/biome-sub001/internal/syntax"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds [flags] [name-filter]",
	Short: "List the syntax kinds of the GritQL grammar",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runKinds,
}

func init() {
	kindsCmd.Flags().String("family", "", "only kinds of this family (token|node|list|bogus)")
	kindsCmd.Flags().String("format", "table", "output format (table|markdown|csv)")
}

func runKinds(cmd *cobra.Command, args []string) error {
	family, err := cmd.Flags().GetString("family")
	if err != nil {
		return fmt.Errorf("failed to get family flag: %w", err)
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	filter := ""
	if len(args) == 1 {
		filter = strings.ToUpper(args[0])
	}

	tbl := table.NewWriter()
	tbl.SetOutputMirror(cmd.OutOrStdout())
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"#", "kind", "family", "layout"})
	count := 0
	for _, info := range grit.Registry.Kinds() {
		if family != "" && info.Family.String() != family {
			continue
		}
		if filter != "" && !strings.Contains(info.Name, filter) {
			continue
		}
		tbl.AppendRow(table.Row{int(info.Kind), info.Name, info.Family.String(), describeLayout(grit.Registry, info)})
		count++
	}
	tbl.AppendFooter(table.Row{"", fmt.Sprintf("%d kinds", count), "", ""})

	switch format {
	case "table":
		tbl.Render()
	case "markdown":
		tbl.RenderMarkdown()
	case "csv":
		tbl.RenderCSV()
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	return nil
}

// describeLayout summarizes a kind: the fixed text of a token, the slots of a
// node or the element and separator of a list.
func describeLayout(reg *syntax.Registry, info syntax.KindInfo) string {
	switch info.Family {
	case syntax.FamilyToken:
		if info.Text != "" {
			return fmt.Sprintf("%q %s", info.Text, info.Class)
		}
		return info.Class.String()
	case syntax.FamilyNode:
		slots := make([]string, len(info.Slots))
		for i, s := range info.Slots {
			slots[i] = s.Name
			if !s.Required {
				slots[i] += "?"
			}
		}
		return strings.Join(slots, " ")
	case syntax.FamilyList:
		layout := info.List.Element.Format(reg) + "*"
		if info.List.Separated() {
			layout += " sep " + reg.Name(info.List.Separator)
			if info.List.AllowTrailing {
				layout += " trailing"
			}
		}
		return layout
	default:
		return ""
	}
}
