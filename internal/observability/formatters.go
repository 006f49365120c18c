// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-builder/internal/github"
	"github.com/jonathan/resume-builder/internal/structuring"
	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to a terminal; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		line = truncate(line, boxWidth-4)
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// PrintRecordSummary outputs the contact block and per-section entry counts
// of a structured resume.
func (p *Printer) PrintRecordSummary(record *types.ResumeRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder
	info := record.PersonalInfo
	writeField(&sb, "Name", info.Name)
	writeField(&sb, "Email", info.Email)
	writeField(&sb, "Phone", info.Phone)
	writeField(&sb, "Location", info.Location)
	writeField(&sb, "LinkedIn", info.LinkedIn)
	writeField(&sb, "GitHub", info.GitHub)
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Experience:     %d\n", len(record.Experience)))
	count := min(len(record.Experience), maxItemsToShow)
	for i := 0; i < count; i++ {
		exp := record.Experience[i]
		line := exp.Title
		if exp.Company != "" {
			line += " @ " + exp.Company
		}
		sb.WriteString(fmt.Sprintf("  • %s\n", line))
	}
	if len(record.Experience) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(record.Experience)-maxItemsToShow))
	}

	sb.WriteString(fmt.Sprintf("Education:      %d\n", len(record.Education)))
	sb.WriteString(fmt.Sprintf("Projects:       %d\n", len(record.Projects)))
	sb.WriteString(fmt.Sprintf("Certifications: %d\n", len(record.Certifications)))
	sb.WriteString(fmt.Sprintf("Awards:         %d\n", len(record.Awards)))
	sb.WriteString(fmt.Sprintf("Publications:   %d\n", len(record.Publications)))
	sb.WriteString(fmt.Sprintf("Languages:      %d\n", len(record.Languages)))
	sb.WriteString(fmt.Sprintf("Volunteer:      %d\n", len(record.Volunteer)))

	skills := record.Skills
	total := len(skills.Technical) + len(skills.Frameworks) + len(skills.Tools) + len(skills.Languages) + len(skills.Soft)
	sb.WriteString(fmt.Sprintf("Skills:         %d", total))
	if total > 0 {
		sb.WriteString(fmt.Sprintf("\n  %s", strings.Join(firstSkills(skills), ", ")))
	}

	p.printBox("STRUCTURED RESUME", sb.String())
}

func writeField(sb *strings.Builder, label, value string) {
	if value == "" {
		value = "-"
	}
	sb.WriteString(fmt.Sprintf("%-10s%s\n", label+":", value))
}

// firstSkills returns up to maxItemsToShow skills across every bucket.
func firstSkills(s types.SkillTaxonomy) []string {
	var out []string
	for _, bucket := range [][]string{s.Technical, s.Frameworks, s.Tools, s.Languages, s.Soft} {
		for _, skill := range bucket {
			if len(out) == maxItemsToShow {
				return out
			}
			out = append(out, skill)
		}
	}
	return out
}

// PrintStats outputs the line and entity counters from one structuring run.
func (p *Printer) PrintStats(stats structuring.Stats) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Lines:            %d\n", stats.Lines))
	sb.WriteString(fmt.Sprintf("Header region:    %d\n", stats.HeaderRegionLines))
	sb.WriteString(fmt.Sprintf("Section headers:  %d\n", stats.SectionHeaders))
	sb.WriteString(fmt.Sprintf("Dropped lines:    %d\n", stats.DroppedLines))
	sb.WriteString(fmt.Sprintf("Entities opened:  %d\n", stats.EntitiesOpened))
	sb.WriteString(fmt.Sprintf("Entities flushed: %d", stats.EntitiesFlushed))

	p.printBox("STRUCTURING STATS", sb.String())
}

// PrintSelectedProjects outputs the GitHub repositories chosen for a job
// with their keyword scores.
func (p *Printer) PrintSelectedProjects(projects []github.ScoredRepository) {
	if len(projects) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Selected %d projects:\n\n", len(projects)))

	for i, proj := range projects {
		repo := proj.Repository
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, repo.Name))
		sb.WriteString(fmt.Sprintf("    Score: %d", proj.Score))
		if repo.Language != "" {
			sb.WriteString(fmt.Sprintf("  Language: %s", repo.Language))
		}
		sb.WriteString("\n")
		if repo.Description != "" {
			sb.WriteString(fmt.Sprintf("    %s\n", truncate(repo.Description, 50)))
		}
		if i < len(projects)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SELECTED GITHUB PROJECTS", strings.TrimSuffix(sb.String(), "\n"))
}
