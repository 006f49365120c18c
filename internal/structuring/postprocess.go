package structuring

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// finish flushes every entity still open at end of input and cleans the record.
func finish(st scanState, rec *types.ResumeRecord, stats *Stats) {
	flushAll(st, rec, stats)

	rec.Summary = strings.TrimSpace(rec.Summary)
	rec.Skills.Technical = dedupe(rec.Skills.Technical)
	rec.Skills.Frameworks = dedupe(rec.Skills.Frameworks)
	rec.Skills.Tools = dedupe(rec.Skills.Tools)
	rec.Skills.Languages = dedupe(rec.Skills.Languages)
	rec.Skills.Soft = dedupe(rec.Skills.Soft)
	rec.Normalize()
}

// dedupe trims items and drops blanks and exact duplicates, keeping first-seen order.
func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
