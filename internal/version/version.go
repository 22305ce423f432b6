// Package version holds the build identity of the grit tool.
package version

import (
	"fmt"
	"io"
	"runtime"

	"github.com/fatih/color"
)

// These variables can be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	nameColor    = color.New(color.FgYellow, color.Bold)
	versionColor = color.New(color.FgGreen, color.Bold)
	metaColor    = color.New(color.FgBlue)
)

// Info is the serializable build identity.
type Info struct {
	Version   string `json:"version" yaml:"version"`
	GitCommit string `json:"git_commit,omitempty" yaml:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty" yaml:"build_date,omitempty"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Grammar   string `json:"grammar" yaml:"grammar"`
	Kinds     int    `json:"kinds" yaml:"kinds"`
}

// Current returns the identity of this build. grammar and kinds describe the
// language registry compiled in.
func Current(grammar string, kinds int) Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Grammar:   grammar,
		Kinds:     kinds,
	}
}

// Banner writes a one-line description. Colour follows color.NoColor.
func (i Info) Banner(w io.Writer) error {
	line := nameColor.Sprint("grit") + " " + versionColor.Sprint(i.Version)
	if i.GitCommit != "" {
		commit := i.GitCommit
		if len(commit) > 12 {
			commit = commit[:12]
		}
		line += " " + metaColor.Sprint("("+commit+")")
	}
	if i.BuildDate != "" {
		line += " " + metaColor.Sprint("built "+i.BuildDate)
	}
	_, err := fmt.Fprintf(w, "%s\n%s grammar, %d kinds, %s\n", line, i.Grammar, i.Kinds, i.GoVersion)
	return err
}
