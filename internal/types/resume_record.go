// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ResumeRecord is the structured form of a resume produced from freeform text.
// Every key is always present when marshaled; empty sections are empty arrays.
type ResumeRecord struct {
	PersonalInfo   PersonalInfo          `json:"personalInfo"`
	Summary        string                `json:"summary"`
	Experience     []ExperienceEntry     `json:"experience"`
	Education      []EducationEntry      `json:"education"`
	Skills         SkillTaxonomy         `json:"skills"`
	Projects       []ProjectEntry        `json:"projects"`
	Certifications []Certification       `json:"certifications"`
	Awards         []Award               `json:"awards"`
	Publications   []Publication         `json:"publications"`
	Languages      []LanguageProficiency `json:"languages"`
	Volunteer      []VolunteerEntry      `json:"volunteer"`
}

// PersonalInfo holds contact details found in the document header region
type PersonalInfo struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	LinkedIn  string `json:"linkedin"`
	GitHub    string `json:"github"`
	Portfolio string `json:"portfolio"`
}

// ExperienceEntry represents one job
type ExperienceEntry struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	IsCurrent    bool     `json:"isCurrent"`
	Description  []string `json:"description"`
	Achievements []string `json:"achievements"`
	Technologies []string `json:"technologies"`
}

// EducationEntry represents one degree
type EducationEntry struct {
	Degree          string   `json:"degree"`
	Institution     string   `json:"institution"`
	GraduationDate  string   `json:"graduationDate"`
	GPA             string   `json:"gpa"`
	Honors          []string `json:"honors"`
	RelevantCourses []string `json:"relevantCourses"`
}

// SkillTaxonomy buckets skills by category
type SkillTaxonomy struct {
	Technical  []string `json:"technical"`
	Frameworks []string `json:"frameworks"`
	Tools      []string `json:"tools"`
	Languages  []string `json:"languages"`
	Soft       []string `json:"soft"`
}

// ProjectEntry represents one project
type ProjectEntry struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Technologies  []string `json:"technologies"`
	URL           string   `json:"url"`
	RepositoryURL string   `json:"repositoryUrl"`
	Highlights    []string `json:"highlights"`
}

// Certification represents one certification line
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

// Award represents one award or achievement line
type Award struct {
	Title       string `json:"title"`
	Issuer      string `json:"issuer"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// Publication represents a published work
type Publication struct {
	Title   string   `json:"title"`
	Authors []string `json:"authors"`
	Journal string   `json:"journal"`
	Date    string   `json:"date"`
	URL     string   `json:"url"`
	DOI     string   `json:"doi"`
}

// LanguageProficiency represents a spoken language
type LanguageProficiency struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency"`
}

// VolunteerEntry represents volunteer work
type VolunteerEntry struct {
	Organization string   `json:"organization"`
	Role         string   `json:"role"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Description  []string `json:"description"`
}

// NewResumeRecord returns a record with every list initialized to empty
func NewResumeRecord() ResumeRecord {
	return ResumeRecord{
		Experience:     []ExperienceEntry{},
		Education:      []EducationEntry{},
		Skills:         NewSkillTaxonomy(),
		Projects:       []ProjectEntry{},
		Certifications: []Certification{},
		Awards:         []Award{},
		Publications:   []Publication{},
		Languages:      []LanguageProficiency{},
		Volunteer:      []VolunteerEntry{},
	}
}

// NewSkillTaxonomy returns a taxonomy with every bucket initialized to empty
func NewSkillTaxonomy() SkillTaxonomy {
	return SkillTaxonomy{
		Technical:  []string{},
		Frameworks: []string{},
		Tools:      []string{},
		Languages:  []string{},
		Soft:       []string{},
	}
}

// NewExperienceEntry returns an entry with empty lists
func NewExperienceEntry() ExperienceEntry {
	return ExperienceEntry{
		Description:  []string{},
		Achievements: []string{},
		Technologies: []string{},
	}
}

// NewEducationEntry returns an entry with empty lists
func NewEducationEntry() EducationEntry {
	return EducationEntry{
		Honors:          []string{},
		RelevantCourses: []string{},
	}
}

// NewProjectEntry returns an entry with empty lists
func NewProjectEntry() ProjectEntry {
	return ProjectEntry{
		Technologies: []string{},
		Highlights:   []string{},
	}
}

// Normalize replaces nil slices with empty ones so JSON output keeps a stable shape.
// Records decoded from storage or built by hand may carry nil slices.
func (r *ResumeRecord) Normalize() {
	if r.Experience == nil {
		r.Experience = []ExperienceEntry{}
	}
	for i := range r.Experience {
		e := &r.Experience[i]
		e.Description = nonNil(e.Description)
		e.Achievements = nonNil(e.Achievements)
		e.Technologies = nonNil(e.Technologies)
	}

	if r.Education == nil {
		r.Education = []EducationEntry{}
	}
	for i := range r.Education {
		e := &r.Education[i]
		e.Honors = nonNil(e.Honors)
		e.RelevantCourses = nonNil(e.RelevantCourses)
	}

	r.Skills.Technical = nonNil(r.Skills.Technical)
	r.Skills.Frameworks = nonNil(r.Skills.Frameworks)
	r.Skills.Tools = nonNil(r.Skills.Tools)
	r.Skills.Languages = nonNil(r.Skills.Languages)
	r.Skills.Soft = nonNil(r.Skills.Soft)

	if r.Projects == nil {
		r.Projects = []ProjectEntry{}
	}
	for i := range r.Projects {
		p := &r.Projects[i]
		p.Technologies = nonNil(p.Technologies)
		p.Highlights = nonNil(p.Highlights)
	}

	if r.Certifications == nil {
		r.Certifications = []Certification{}
	}
	if r.Awards == nil {
		r.Awards = []Award{}
	}
	if r.Publications == nil {
		r.Publications = []Publication{}
	}
	for i := range r.Publications {
		r.Publications[i].Authors = nonNil(r.Publications[i].Authors)
	}
	if r.Languages == nil {
		r.Languages = []LanguageProficiency{}
	}
	if r.Volunteer == nil {
		r.Volunteer = []VolunteerEntry{}
	}
	for i := range r.Volunteer {
		r.Volunteer[i].Description = nonNil(r.Volunteer[i].Description)
	}
}

// IsEmpty reports whether nothing was recognized at all
func (r *ResumeRecord) IsEmpty() bool {
	return r.PersonalInfo == (PersonalInfo{}) &&
		r.Summary == "" &&
		len(r.Experience) == 0 &&
		len(r.Education) == 0 &&
		r.Skills.Count() == 0 &&
		len(r.Projects) == 0 &&
		len(r.Certifications) == 0 &&
		len(r.Awards) == 0 &&
		len(r.Publications) == 0 &&
		len(r.Languages) == 0 &&
		len(r.Volunteer) == 0
}

// Count returns the total number of skills across all buckets
func (s SkillTaxonomy) Count() int {
	return len(s.Technical) + len(s.Frameworks) + len(s.Tools) + len(s.Languages) + len(s.Soft)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
