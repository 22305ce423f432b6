package version

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestBanner(t *testing.T) {
	orig := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = orig }()

	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	defer func() { Version, GitCommit, BuildDate = origVersion, origCommit, origDate }()

	Version = "1.2.3"
	GitCommit = "abc123def4567890"
	BuildDate = "2024-01-15T10:30:00Z"

	var buf bytes.Buffer
	if err := Current("grit", 210).Banner(&buf); err != nil {
		t.Fatalf("Banner: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("banner = %q", buf.String())
	}
	if lines[0] != "grit 1.2.3 (abc123def456) built 2024-01-15T10:30:00Z" {
		t.Fatalf("first line = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "grit grammar, 210 kinds, go") {
		t.Fatalf("second line = %q", lines[1])
	}
}

func TestBannerWithoutOptionalFields(t *testing.T) {
	orig := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = orig }()

	info := Info{Version: "0.1.0-dev", Grammar: "grit", GoVersion: "go1.25"}
	var buf bytes.Buffer
	if err := info.Banner(&buf); err != nil {
		t.Fatalf("Banner: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "grit 0.1.0-dev\n") {
		t.Fatalf("banner = %q", buf.String())
	}
}
