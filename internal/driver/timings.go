package driver

import (
	"encoding/json"
	"fmt"

	"github.com/biomejs/biome-sub001/internal/diag"
	"github.com/biomejs/biome-sub001/internal/observ"
	"github.com/biomejs/biome-sub001/internal/source"
)

type timingPayload struct {
	Kind    string               `json:"kind"`
	Files   int                  `json:"files"`
	TotalMS float64              `json:"total_ms"`
	Phases  []observ.PhaseReport `json:"phases"`
}

// TimingsDiagnostic packs a timer report into an info diagnostic; the note
// carries the report as JSON.
func TimingsDiagnostic(kind string, files int, report observ.Report) diag.Diagnostic {
	if kind == "" {
		kind = "check"
	}
	payload := timingPayload{Kind: kind, Files: files, TotalMS: report.TotalMS, Phases: report.Phases}
	d := diag.New(diag.SevInfo, diag.ObsTimings, source.Span{}, fmt.Sprintf("timings (%s): total %.2f ms over %d files", kind, report.TotalMS, files))
	data, err := json.Marshal(payload)
	if err != nil {
		return d
	}
	return d.WithNote(source.Span{}, string(data))
}
