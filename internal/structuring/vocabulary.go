package structuring

import (
	"regexp"
	"strings"
)

// Section identifies the top-level resume block the scan is currently in.
type Section string

// Section values. SectionNone is the state before any header has been seen,
// and after a header whose keyword maps to no section.
const (
	SectionNone           Section = "none"
	SectionSummary        Section = "summary"
	SectionExperience     Section = "experience"
	SectionEducation      Section = "education"
	SectionSkills         Section = "skills"
	SectionProjects       Section = "projects"
	SectionCertifications Section = "certifications"
	SectionAwards         Section = "awards"
)

// headerRegionLines is how many leading lines are scanned for contact details.
const headerRegionLines = 10

// sectionKeywords is the header vocabulary. A line is a section header when its
// upper-cased form contains one of these as a whole-word sequence anywhere in the line.
var sectionKeywords = []string{
	"PROFESSIONAL SUMMARY", "SUMMARY", "OBJECTIVE",
	"EXPERIENCE", "WORK EXPERIENCE", "PROFESSIONAL EXPERIENCE",
	"EDUCATION", "ACADEMIC BACKGROUND",
	"SKILLS", "TECHNICAL SKILLS", "CORE SKILLS",
	"PROJECTS", "KEY PROJECTS", "NOTABLE PROJECTS",
	"CERTIFICATIONS", "CERTIFICATES",
	"AWARDS", "ACHIEVEMENTS", "HONORS",
}

type sectionRoute struct {
	section  Section
	keywords []string
	pattern  *regexp.Regexp
}

// sectionRoutes resolves a header line to a section. First match wins.
var sectionRoutes = []sectionRoute{
	{section: SectionSummary, keywords: []string{"SUMMARY", "OBJECTIVE"}},
	{section: SectionExperience, keywords: []string{"EXPERIENCE"}},
	{section: SectionEducation, keywords: []string{"EDUCATION", "ACADEMIC BACKGROUND"}},
	{section: SectionSkills, keywords: []string{"SKILLS"}},
	{section: SectionProjects, keywords: []string{"PROJECTS"}},
	{section: SectionCertifications, keywords: []string{"CERTIFICATIONS", "CERTIFICATES"}},
	{section: SectionAwards, keywords: []string{"AWARDS", "ACHIEVEMENTS", "HONORS"}},
}

// achievementVerbs mark a bullet as an outcome rather than a duty. Matched as substrings.
var achievementVerbs = []string{
	"increased", "improved", "reduced", "achieved",
	"led", "managed", "delivered", "implemented",
}

// degreeKeywords mark an education entry header. Matched case-sensitively.
var degreeKeywords = []string{"Bachelor", "Master", "PhD", "University", "College"}

// projectTechKeywords mark a technology-list line inside a project.
var projectTechKeywords = []string{"technology", "stack"}

// bulletMarkers are the line prefixes recognized as list items. ASCII markers
// need a trailing space so "**bold**" and "-5%" are not bullets.
var bulletMarkers = []string{"•", "·", "▪", "‣", "◦", "●", "- ", "* ", "– "}

type skillBucket int

const (
	bucketTechnical skillBucket = iota
	bucketFrameworks
	bucketTools
	bucketLanguages
	bucketSoft
)

type skillCategory struct {
	keywords []string
	bucket   skillBucket
}

// skillCategories route a "Category: a, b, c" skills line to a bucket, checked in order.
// Keywords are matched anywhere in the lower-cased line, items included.
var skillCategories = []skillCategory{
	{keywords: []string{"technical", "programming"}, bucket: bucketTechnical},
	{keywords: []string{"framework"}, bucket: bucketFrameworks},
	{keywords: []string{"tools"}, bucket: bucketTools},
	{keywords: []string{"language"}, bucket: bucketLanguages},
	{keywords: []string{"soft", "interpersonal"}, bucket: bucketSoft},
}

var (
	headerPattern = wordPattern(sectionKeywords...)

	emailPattern    = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	phonePattern    = regexp.MustCompile(`\+?[\d\s\-()]{10,}`)
	linkedInPattern = regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`)
	gitHubPattern   = regexp.MustCompile(`(?i)github\.com/[\w-]+`)
	urlPattern      = regexp.MustCompile(`(?i)(?:https?://|www\.)[^\s|,;()<>]+`)
	locationPattern = regexp.MustCompile(`^[A-Z][a-z]+(?:\s[A-Z][a-z]+)*\s*,\s*(?:[A-Z][a-z]+(?:\s[A-Z][a-z]+)*\b|[A-Z]{2}\b)`)
	namePattern     = regexp.MustCompile(`^[A-Z][a-zA-Z\s]+$`)

	experienceTitleStart   = regexp.MustCompile(`^[A-Z]`)
	experienceCompanyStart = regexp.MustCompile(`^[A-Z0-9]`)
	datesLike              = regexp.MustCompile(`\d|(?i:present|current)`)
	experienceShortHeader  = regexp.MustCompile(`^[A-Z][a-zA-Z\s]+$`)
	dateRangeSeparator     = regexp.MustCompile(`\s+[-–—]\s+|\s*[–—]\s*|\s+to\s+`)
	gpaPattern             = regexp.MustCompile(`(?i)\bGPA\b\s*[:\-]?\s*([0-9]+(?:\.[0-9]+)?(?:\s*/\s*[0-9]+(?:\.[0-9]+)?)?)`)
)

func init() {
	for i := range sectionRoutes {
		sectionRoutes[i].pattern = wordPattern(sectionRoutes[i].keywords...)
	}
}

// wordPattern builds a regexp matching any of the keywords on word boundaries.
func wordPattern(keywords ...string) *regexp.Regexp {
	quoted := make([]string, len(keywords))
	for i, k := range keywords {
		quoted[i] = regexp.QuoteMeta(k)
	}
	return regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
