package ingestion

import (
	"regexp"
	"strings"
)

var (
	spaceRun      = regexp.MustCompile(`[ \t\f\v\x{00A0}]+`)
	blankLineRun  = regexp.MustCompile(`\n\n\n+`)
	headingPrefix = regexp.MustCompile(`^#{1,6}\s+`)
	emphasis      = regexp.MustCompile(`\*\*|__|` + "`")
	ruleLine      = regexp.MustCompile(`^(?:-{3,}|\*{3,}|_{3,}|={3,})$`)
)

// CleanText normalizes line endings and whitespace while keeping one
// document line per output line
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}

	result := strings.Join(lines, "\n")
	result = blankLineRun.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine collapses inner whitespace. Bullet lines keep their indentation
// so nested lists stay readable.
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" {
		return ""
	}

	collapsed := spaceRun.ReplaceAllString(trimmed, " ")
	if isBulletLine(trimmed) {
		return strings.Repeat(" ", len(line)-len(trimmed)) + collapsed
	}
	return collapsed
}

// isBulletLine checks if a line is a bullet list item
func isBulletLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") ||
		strings.HasPrefix(trimmed, "• ") || strings.HasPrefix(trimmed, "· ")
}

// StripMarkdown removes heading markers, emphasis and horizontal rules that
// language models add to plain-text resumes. List markers are kept.
func StripMarkdown(content string) string {
	lines := strings.Split(content, "\n")
	out := lines[:0]
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if ruleLine.MatchString(trimmed) {
			continue
		}
		trimmed = headingPrefix.ReplaceAllString(trimmed, "")
		trimmed = emphasis.ReplaceAllString(trimmed, "")
		out = append(out, strings.TrimSpace(trimmed))
	}
	return strings.Join(out, "\n")
}
