package structuring

import (
	"github.com/jonathan/resume-builder/internal/types"
)

// scanState is the full parser state between two lines. At most one entity of
// each kind is open because sections do not nest.
type scanState struct {
	section    Section
	experience *types.ExperienceEntry
	project    *types.ProjectEntry
	education  *types.EducationEntry
}

func initialState() scanState {
	return scanState{section: SectionNone}
}

// flushAll moves every open entity into the record and returns the state with
// all slots cleared.
func flushAll(st scanState, rec *types.ResumeRecord, stats *Stats) scanState {
	st = flushExperience(st, rec, stats)
	st = flushProject(st, rec, stats)
	st = flushEducation(st, rec, stats)
	return st
}

func flushExperience(st scanState, rec *types.ResumeRecord, stats *Stats) scanState {
	if st.experience != nil {
		rec.Experience = append(rec.Experience, *st.experience)
		st.experience = nil
		stats.EntitiesFlushed++
	}
	return st
}

func flushProject(st scanState, rec *types.ResumeRecord, stats *Stats) scanState {
	if st.project != nil {
		rec.Projects = append(rec.Projects, *st.project)
		st.project = nil
		stats.EntitiesFlushed++
	}
	return st
}

func flushEducation(st scanState, rec *types.ResumeRecord, stats *Stats) scanState {
	if st.education != nil {
		rec.Education = append(rec.Education, *st.education)
		st.education = nil
		stats.EntitiesFlushed++
	}
	return st
}

// openExperience flushes the current job and opens a new one.
func openExperience(st scanState, rec *types.ResumeRecord, stats *Stats, entry types.ExperienceEntry) scanState {
	st = flushExperience(st, rec, stats)
	st.experience = &entry
	stats.EntitiesOpened++
	return st
}

// openProject flushes the current project and opens a new one.
func openProject(st scanState, rec *types.ResumeRecord, stats *Stats, entry types.ProjectEntry) scanState {
	st = flushProject(st, rec, stats)
	st.project = &entry
	stats.EntitiesOpened++
	return st
}

// openEducation flushes the current degree and opens a new one.
func openEducation(st scanState, rec *types.ResumeRecord, stats *Stats, entry types.EducationEntry) scanState {
	st = flushEducation(st, rec, stats)
	st.education = &entry
	stats.EntitiesOpened++
	return st
}

// enterSection flushes whatever is open and switches the active section.
func enterSection(st scanState, rec *types.ResumeRecord, stats *Stats, section Section) scanState {
	st = flushAll(st, rec, stats)
	st.section = section
	stats.SectionHeaders++
	return st
}
