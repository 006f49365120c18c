// Package structuring turns freeform resume text into a ResumeRecord using a
// single forward pass of line heuristics.
//
// The pass never fails. Lines no rule recognizes are dropped, so odd input
// yields a sparse record rather than an error.
package structuring

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Stats counts what the scan did with the input. HeaderRegionLines counts the
// leading lines that yielded the name or a contact field.
type Stats struct {
	Lines             int `json:"lines"`
	HeaderRegionLines int `json:"headerRegionLines"`
	SectionHeaders    int `json:"sectionHeaders"`
	DroppedLines      int `json:"droppedLines"`
	EntitiesOpened    int `json:"entitiesOpened"`
	EntitiesFlushed   int `json:"entitiesFlushed"`
}

// Structure converts raw resume text into a ResumeRecord.
// It is deterministic and safe for concurrent use.
func Structure(raw string) types.ResumeRecord {
	rec, _ := StructureWithStats(raw)
	return rec
}

// StructureWithStats is Structure plus scan counters.
func StructureWithStats(raw string) (types.ResumeRecord, Stats) {
	rec := types.NewResumeRecord()
	var stats Stats

	st := initialState()
	for pos, line := range SplitLines(raw) {
		stats.Lines++
		st = step(st, &rec, &stats, pos, line)
	}
	finish(st, &rec, &stats)
	return rec, stats
}

// SplitLines splits text into trimmed, non-empty lines.
func SplitLines(raw string) []string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")

	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
