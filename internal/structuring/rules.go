package structuring

import (
	"github.com/jonathan/resume-builder/internal/types"
)

// lineRule is one predicate/handler pair of the per-line classification order.
// A final rule ends evaluation of the line once it applies.
type lineRule struct {
	name    string
	applies func(st scanState, rec *types.ResumeRecord, pos int, line string) bool
	apply   func(st scanState, rec *types.ResumeRecord, stats *Stats, line string) (scanState, bool)
	final   bool
}

// lineRules is evaluated top to bottom for every line:
//
//  1. name: first name-shaped line of the header region
//  2. contact: header-region contact fields, evaluation continues
//  3. header: section switch, plus any text after the header's colon
//  4. content: handed to the active section
var lineRules = []lineRule{
	{name: "name", applies: nameApplies, apply: applyName, final: true},
	{name: "contact", applies: inHeaderRegion, apply: applyContact},
	{name: "header", applies: headerApplies, apply: applyHeader, final: true},
	{name: "content", applies: always, apply: dispatch, final: true},
}

func inHeaderRegion(st scanState, _ *types.ResumeRecord, pos int, _ string) bool {
	return pos < headerRegionLines && st.section == SectionNone
}

func nameApplies(st scanState, rec *types.ResumeRecord, pos int, line string) bool {
	return inHeaderRegion(st, rec, pos, line) && rec.PersonalInfo.Name == "" && IsNameLine(line)
}

func applyName(st scanState, rec *types.ResumeRecord, stats *Stats, line string) (scanState, bool) {
	rec.PersonalInfo.Name = line
	stats.HeaderRegionLines++
	return st, true
}

func applyContact(st scanState, rec *types.ResumeRecord, stats *Stats, line string) (scanState, bool) {
	found := applyContactFields(&rec.PersonalInfo, line)
	if found {
		stats.HeaderRegionLines++
	}
	return st, found
}

func headerApplies(_ scanState, _ *types.ResumeRecord, _ int, line string) bool {
	return IsSectionHeader(line)
}

// applyHeader switches section. Text after the header's colon is content of the
// new section; skills keep the whole line so the label still picks the bucket.
func applyHeader(st scanState, rec *types.ResumeRecord, stats *Stats, line string) (scanState, bool) {
	section := IdentifySection(line)
	st = enterSection(st, rec, stats, section)

	inline := inlineHeaderContent(line)
	if inline == "" {
		return st, true
	}
	if section == SectionSkills {
		inline = line
	}
	st, _ = dispatch(st, rec, stats, inline)
	return st, true
}

func always(scanState, *types.ResumeRecord, int, string) bool { return true }

// step folds one line into the state.
func step(st scanState, rec *types.ResumeRecord, stats *Stats, pos int, line string) scanState {
	used := false
	for _, r := range lineRules {
		if !r.applies(st, rec, pos, line) {
			continue
		}
		var ok bool
		st, ok = r.apply(st, rec, stats, line)
		used = used || ok
		if r.final {
			break
		}
	}
	if !used {
		stats.DroppedLines++
	}
	return st
}
