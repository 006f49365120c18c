package structuring

import (
	"strings"
	"unicode/utf8"
)

// BulletKind classifies the text of a bullet line.
type BulletKind int

const (
	// BulletDescription is a duty or plain statement.
	BulletDescription BulletKind = iota
	// BulletAchievement is an outcome, detected by verb vocabulary.
	BulletAchievement
)

// IsSectionHeader reports whether the line contains a section keyword.
// The keyword may sit anywhere in the line, so "jane@x.com Experience" is a header.
func IsSectionHeader(line string) bool {
	return headerPattern.MatchString(strings.ToUpper(line))
}

// IdentifySection resolves a header line to its section. A line with no
// section keyword resolves to SectionNone.
func IdentifySection(line string) Section {
	upper := strings.ToUpper(line)
	for _, route := range sectionRoutes {
		if route.pattern.MatchString(upper) {
			return route.section
		}
	}
	return SectionNone
}

// inlineHeaderContent returns the text after the first colon of a header line,
// e.g. "Python, Go" for "Technical Skills: Python, Go".
func inlineHeaderContent(line string) string {
	_, after, found := strings.Cut(line, ":")
	if !found {
		return ""
	}
	return strings.TrimSpace(after)
}

// IsBullet reports whether the line starts with a list marker.
func IsBullet(line string) bool {
	for _, m := range bulletMarkers {
		if strings.HasPrefix(line, m) {
			return true
		}
	}
	return false
}

// StripBullet removes a leading list marker and surrounding whitespace.
func StripBullet(line string) string {
	for _, m := range bulletMarkers {
		if strings.HasPrefix(line, m) {
			return strings.TrimSpace(strings.TrimPrefix(line, m))
		}
	}
	return strings.TrimSpace(line)
}

// ClassifyBullet decides whether bullet text describes an achievement.
func ClassifyBullet(text string) BulletKind {
	if containsAny(strings.ToLower(text), achievementVerbs) {
		return BulletAchievement
	}
	return BulletDescription
}

// IsNameLine reports whether a header-region line looks like a person's name.
func IsNameLine(line string) bool {
	n := utf8.RuneCountInString(line)
	if n < 3 || n >= 50 {
		return false
	}
	if !namePattern.MatchString(line) {
		return false
	}
	if strings.Contains(line, "@") || strings.Contains(strings.ToLower(line), "http") {
		return false
	}
	lower := strings.ToLower(line)
	for _, k := range sectionKeywords {
		if strings.Contains(lower, strings.ToLower(k)) {
			return false
		}
	}
	return true
}

// IsExperienceHeader reports whether a line opens a new job entry: either
// "Title | Company | Dates" (dates in any field after the company) or a short
// capitalized line with no punctuation.
func IsExperienceHeader(line string) bool {
	if IsBullet(line) {
		return false
	}
	if isPipeExperienceHeader(line) {
		return true
	}
	return experienceShortHeader.MatchString(line) && utf8.RuneCountInString(line) < 50
}

func isPipeExperienceHeader(line string) bool {
	parts := splitFields(line, "|")
	if len(parts) < 3 {
		return false
	}
	if !experienceTitleStart.MatchString(parts[0]) || !experienceCompanyStart.MatchString(parts[1]) {
		return false
	}
	return datesField(parts) >= 0
}

// datesField returns the index of the first field after the company that
// looks like a date range, or -1.
func datesField(parts []string) int {
	for i := 2; i < len(parts); i++ {
		if datesLike.MatchString(parts[i]) {
			return i
		}
	}
	return -1
}

// IsEducationHeader reports whether a line opens a new education entry.
func IsEducationHeader(line string) bool {
	return !IsBullet(line) && containsAny(line, degreeKeywords)
}

// IsProjectHeader reports whether a line opens a new project entry.
func IsProjectHeader(line string) bool {
	n := utf8.RuneCountInString(line)
	return !IsBullet(line) && n > 5 && n < 100 && !mentionsTechnology(line)
}

func mentionsTechnology(line string) bool {
	return containsAny(strings.ToLower(line), projectTechKeywords)
}

// isURLOnly reports whether the line is nothing but a link.
func isURLOnly(line string) bool {
	loc := urlPattern.FindStringIndex(line)
	return loc != nil && loc[0] == 0 && loc[1] == len(line)
}
