package structuring

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// sectionHandler consumes one content line for the active section. It reports
// false when the line carried nothing it could use.
type sectionHandler func(st scanState, rec *types.ResumeRecord, stats *Stats, line string) (scanState, bool)

var sectionHandlers map[Section]sectionHandler

func init() {
	sectionHandlers = map[Section]sectionHandler{
		SectionSummary:        handleSummary,
		SectionExperience:     handleExperience,
		SectionEducation:      handleEducation,
		SectionSkills:         handleSkills,
		SectionProjects:       handleProjects,
		SectionCertifications: handleCertifications,
		SectionAwards:         handleAwards,
	}
}

// dispatch routes a content line to the handler of the active section and
// reports whether the line was used.
func dispatch(st scanState, rec *types.ResumeRecord, stats *Stats, line string) (scanState, bool) {
	handler, ok := sectionHandlers[st.section]
	if !ok {
		return st, false
	}
	return handler(st, rec, stats, line)
}

func handleSummary(st scanState, rec *types.ResumeRecord, _ *Stats, line string) (scanState, bool) {
	if rec.Summary != "" {
		rec.Summary += " "
	}
	rec.Summary += line
	return st, true
}

func handleExperience(st scanState, rec *types.ResumeRecord, stats *Stats, line string) (scanState, bool) {
	if IsExperienceHeader(line) {
		return openExperience(st, rec, stats, parseExperienceHeader(line)), true
	}
	if st.experience == nil || !IsBullet(line) {
		return st, false
	}

	bullet := StripBullet(line)
	if bullet == "" {
		return st, false
	}
	if ClassifyBullet(bullet) == BulletAchievement {
		st.experience.Achievements = append(st.experience.Achievements, bullet)
	} else {
		st.experience.Description = append(st.experience.Description, bullet)
	}
	return st, true
}

// parseExperienceHeader builds an entry from "Title | Company | Dates [| Location]".
// A header without enough pipe fields becomes a title-only entry.
func parseExperienceHeader(line string) types.ExperienceEntry {
	entry := types.NewExperienceEntry()
	parts := splitFields(line, "|")
	if len(parts) < 3 {
		entry.Title = strings.TrimSpace(line)
		return entry
	}

	entry.Title = parts[0]
	entry.Company = parts[1]

	dates := datesField(parts)
	if dates < 0 {
		dates = 2
	}
	for i := 2; i < len(parts); i++ {
		if i != dates && entry.Location == "" {
			entry.Location = parts[i]
		}
	}

	entry.StartDate, entry.EndDate = splitDateRange(parts[dates])
	entry.IsCurrent = strings.EqualFold(entry.EndDate, "present") ||
		containsAny(strings.ToLower(parts[dates]), []string{"present", "current"})
	return entry
}

// splitDateRange splits "Start - End". A single date is treated as still running,
// so its end is "Present".
func splitDateRange(text string) (string, string) {
	text = strings.TrimSpace(text)
	if parts := dateRangeSeparator.Split(text, 2); len(parts) == 2 {
		return strings.TrimSpace(parts[0]), defaultEnd(strings.TrimSpace(parts[1]))
	}
	if start, end, found := strings.Cut(text, "-"); found {
		return strings.TrimSpace(start), defaultEnd(strings.TrimSpace(end))
	}
	return text, "Present"
}

func defaultEnd(end string) string {
	if end == "" {
		return "Present"
	}
	return end
}

func handleEducation(st scanState, rec *types.ResumeRecord, stats *Stats, line string) (scanState, bool) {
	if st.education != nil {
		text := StripBullet(line)
		if courses, ok := labeledList(text, "relevant course", "coursework", "courses"); ok {
			st.education.RelevantCourses = append(st.education.RelevantCourses, compact(courses)...)
			return st, true
		}
	}

	if IsEducationHeader(line) {
		entry := parseEducationHeader(line)
		return openEducation(st, rec, stats, entry), true
	}

	if st.education == nil {
		return st, false
	}
	if gpa := extractGPA(line); gpa != "" {
		st.education.GPA = gpa
		return st, true
	}
	if IsBullet(line) {
		if honor := StripBullet(line); honor != "" {
			st.education.Honors = append(st.education.Honors, honor)
			return st, true
		}
	}
	return st, false
}

// parseEducationHeader splits "Degree | Institution | Date" into an entry.
func parseEducationHeader(line string) types.EducationEntry {
	entry := types.NewEducationEntry()
	parts := splitFields(line, "|")
	entry.Degree = strings.TrimSpace(line)
	if len(parts) > 0 {
		entry.Degree = parts[0]
	}
	if len(parts) > 1 {
		entry.Institution = parts[1]
	}
	if len(parts) > 2 {
		entry.GraduationDate = parts[2]
	}
	entry.GPA = extractGPA(line)
	return entry
}

func extractGPA(line string) string {
	if m := gpaPattern.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// labeledList parses "Label: a, b, c" when the label starts with one of the prefixes.
func labeledList(text string, prefixes ...string) ([]string, bool) {
	label, items, found := strings.Cut(text, ":")
	if !found {
		return nil, false
	}
	lower := strings.ToLower(strings.TrimSpace(label))
	for _, p := range prefixes {
		if strings.HasPrefix(lower, p) {
			return splitList(items), true
		}
	}
	return nil, false
}

func handleSkills(st scanState, rec *types.ResumeRecord, _ *Stats, line string) (scanState, bool) {
	text := StripBullet(line)
	_, items, found := strings.Cut(text, ":")
	if !found {
		appendSkills(&rec.Skills, bucketTechnical, splitList(text))
		return st, true
	}

	bucket := bucketTechnical
	lower := strings.ToLower(text)
	for _, cat := range skillCategories {
		if containsAny(lower, cat.keywords) {
			bucket = cat.bucket
			break
		}
	}
	appendSkills(&rec.Skills, bucket, splitList(items))
	return st, true
}

func appendSkills(skills *types.SkillTaxonomy, bucket skillBucket, items []string) {
	switch bucket {
	case bucketFrameworks:
		skills.Frameworks = append(skills.Frameworks, items...)
	case bucketTools:
		skills.Tools = append(skills.Tools, items...)
	case bucketLanguages:
		skills.Languages = append(skills.Languages, items...)
	case bucketSoft:
		skills.Soft = append(skills.Soft, items...)
	default:
		skills.Technical = append(skills.Technical, items...)
	}
}

var gitHubRepoPattern = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[\w.-]+(?:/[\w.-]+)?`)

func handleProjects(st scanState, rec *types.ResumeRecord, stats *Stats, line string) (scanState, bool) {
	if st.project != nil {
		if IsBullet(line) {
			if highlight := StripBullet(line); highlight != "" {
				st.project.Highlights = append(st.project.Highlights, highlight)
				return st, true
			}
			return st, false
		}
		if link, ok := projectLink(line); ok {
			setProjectLinks(st.project, link)
			return st, true
		}
		if mentionsTechnology(line) {
			text := line
			if _, after, found := strings.Cut(line, ":"); found {
				text = after
			}
			st.project.Technologies = compact(splitList(text))
			return st, true
		}
	}

	if IsProjectHeader(line) {
		entry := types.NewProjectEntry()
		entry.Name = strings.TrimSpace(line)
		setProjectLinks(&entry, line)
		return openProject(st, rec, stats, entry), true
	}

	// Lines too short or too long for a project name describe the open project.
	if st.project != nil && !IsBullet(line) && !mentionsTechnology(line) {
		if st.project.Description != "" {
			st.project.Description += " "
		}
		st.project.Description += line
		return st, true
	}
	return st, false
}

// projectLink returns the link when the line is a bare URL, optionally behind a
// "Label: " prefix such as "GitHub: github.com/jane/tool".
func projectLink(line string) (string, bool) {
	text := StripBullet(line)
	lower := strings.ToLower(text)
	if !strings.HasPrefix(lower, "http") && !strings.HasPrefix(lower, "www.") && !strings.HasPrefix(lower, "github.com") {
		if _, rest, found := strings.Cut(text, ": "); found {
			text = strings.TrimSpace(rest)
		}
	}
	if text == "" || strings.ContainsAny(text, " \t") {
		return "", false
	}
	if isURLOnly(text) || gitHubRepoPattern.MatchString(text) {
		return text, true
	}
	return "", false
}

// setProjectLinks fills empty URL fields from links found in text.
func setProjectLinks(p *types.ProjectEntry, text string) {
	if p.RepositoryURL == "" {
		if repo := gitHubRepoPattern.FindString(text); repo != "" {
			p.RepositoryURL = repo
		}
	}
	if p.URL == "" {
		for _, u := range urlPattern.FindAllString(text, -1) {
			if !strings.Contains(strings.ToLower(u), "github.com") {
				p.URL = strings.TrimRight(u, ".")
				break
			}
		}
	}
}

func handleCertifications(st scanState, rec *types.ResumeRecord, _ *Stats, line string) (scanState, bool) {
	if IsBullet(line) {
		return st, false
	}
	rec.Certifications = append(rec.Certifications, types.Certification{Name: line})
	return st, true
}

func handleAwards(st scanState, rec *types.ResumeRecord, _ *Stats, line string) (scanState, bool) {
	if IsBullet(line) {
		return st, false
	}
	rec.Awards = append(rec.Awards, types.Award{Title: line})
	return st, true
}

// splitFields splits on sep and trims every part, keeping empty parts.
func splitFields(line, sep string) []string {
	parts := strings.Split(line, sep)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// splitList splits a comma-separated list and trims every item. Empty items
// are kept here and removed during post-processing.
func splitList(text string) []string {
	return splitFields(text, ",")
}

func compact(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
