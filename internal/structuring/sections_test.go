package structuring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func TestParseExperienceHeader(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		validate func(*testing.T, types.ExperienceEntry)
	}{
		{
			name: "title company range",
			line: "Software Engineer | Acme | 2020 - Present",
			validate: func(t *testing.T, e types.ExperienceEntry) {
				assert.Equal(t, "Software Engineer", e.Title)
				assert.Equal(t, "Acme", e.Company)
				assert.Equal(t, "2020", e.StartDate)
				assert.Equal(t, "Present", e.EndDate)
				assert.True(t, e.IsCurrent)
				assert.Empty(t, e.Location)
			},
		},
		{
			name: "location before dates",
			line: "Engineer | Acme | Remote | Jan 2020 – Mar 2022",
			validate: func(t *testing.T, e types.ExperienceEntry) {
				assert.Equal(t, "Remote", e.Location)
				assert.Equal(t, "Jan 2020", e.StartDate)
				assert.Equal(t, "Mar 2022", e.EndDate)
				assert.False(t, e.IsCurrent)
			},
		},
		{
			name: "single date runs to present",
			line: "Engineer | Acme | 2021",
			validate: func(t *testing.T, e types.ExperienceEntry) {
				assert.Equal(t, "2021", e.StartDate)
				assert.Equal(t, "Present", e.EndDate)
				assert.True(t, e.IsCurrent)
			},
		},
		{
			name: "to separator",
			line: "Engineer | Acme | 2019 to 2021",
			validate: func(t *testing.T, e types.ExperienceEntry) {
				assert.Equal(t, "2019", e.StartDate)
				assert.Equal(t, "2021", e.EndDate)
			},
		},
		{
			name: "tight hyphen",
			line: "Engineer | Acme | 2019-2021",
			validate: func(t *testing.T, e types.ExperienceEntry) {
				assert.Equal(t, "2019", e.StartDate)
				assert.Equal(t, "2021", e.EndDate)
			},
		},
		{
			name: "short header",
			line: "Acme Corp",
			validate: func(t *testing.T, e types.ExperienceEntry) {
				assert.Equal(t, "Acme Corp", e.Title)
				assert.Empty(t, e.Company)
				assert.NotNil(t, e.Description)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, parseExperienceHeader(tt.line))
		})
	}
}

func TestParseEducationHeader(t *testing.T) {
	e := parseEducationHeader("Bachelor of Science | State University | 2018 | GPA: 3.8")

	assert.Equal(t, "Bachelor of Science", e.Degree)
	assert.Equal(t, "State University", e.Institution)
	assert.Equal(t, "2018", e.GraduationDate)
	assert.Equal(t, "3.8", e.GPA)
}

func TestExtractGPA(t *testing.T) {
	assert.Equal(t, "3.9/4.0", extractGPA("GPA 3.9/4.0"))
	assert.Equal(t, "3.5", extractGPA("Cumulative gpa: 3.5"))
	assert.Equal(t, "", extractGPA("Graduated 2018"))
}

func TestProjectLink(t *testing.T) {
	tests := []struct {
		line string
		want string
		ok   bool
	}{
		{"GitHub: github.com/jane/tool", "github.com/jane/tool", true},
		{"https://tool.dev", "https://tool.dev", true},
		{"Demo: https://tool.dev", "https://tool.dev", true},
		{"A description line", "", false},
		{"Tech Stack: Go, PostgreSQL", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, ok := projectLink(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetProjectLinks(t *testing.T) {
	p := types.NewProjectEntry()
	setProjectLinks(&p, "https://github.com/jane/tool and https://tool.dev")

	assert.Equal(t, "https://github.com/jane/tool", p.RepositoryURL)
	assert.Equal(t, "https://tool.dev", p.URL)

	setProjectLinks(&p, "https://other.dev")
	assert.Equal(t, "https://tool.dev", p.URL, "existing links are kept")
}

func TestHandleSkills_Buckets(t *testing.T) {
	tests := []struct {
		line     string
		validate func(*testing.T, types.SkillTaxonomy)
	}{
		{"Python, Go", func(t *testing.T, s types.SkillTaxonomy) {
			assert.Equal(t, []string{"Python", "Go"}, s.Technical)
		}},
		{"Programming: Go", func(t *testing.T, s types.SkillTaxonomy) {
			assert.Equal(t, []string{"Go"}, s.Technical)
		}},
		{"Frameworks: React, gRPC", func(t *testing.T, s types.SkillTaxonomy) {
			assert.Equal(t, []string{"React", "gRPC"}, s.Frameworks)
		}},
		{"• Tools: Docker", func(t *testing.T, s types.SkillTaxonomy) {
			assert.Equal(t, []string{"Docker"}, s.Tools)
		}},
		{"Spoken Languages: English, Spanish", func(t *testing.T, s types.SkillTaxonomy) {
			assert.Equal(t, []string{"English", "Spanish"}, s.Languages)
		}},
		{"Interpersonal: Mentoring", func(t *testing.T, s types.SkillTaxonomy) {
			assert.Equal(t, []string{"Mentoring"}, s.Soft)
		}},
		{"Other: Figma", func(t *testing.T, s types.SkillTaxonomy) {
			assert.Equal(t, []string{"Figma"}, s.Technical)
		}},
		{"Other: Docker tools, Git", func(t *testing.T, s types.SkillTaxonomy) {
			assert.Equal(t, []string{"Docker tools", "Git"}, s.Tools)
			assert.Empty(t, s.Technical)
		}},
		{"Programming Languages: Go", func(t *testing.T, s types.SkillTaxonomy) {
			assert.Equal(t, []string{"Go"}, s.Technical)
			assert.Empty(t, s.Languages)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			rec := types.NewResumeRecord()
			_, used := handleSkills(scanState{section: SectionSkills}, &rec, &Stats{}, tt.line)
			require.True(t, used)
			tt.validate(t, rec.Skills)
		})
	}
}

func TestDispatch_NoSectionDropsLine(t *testing.T) {
	rec := types.NewResumeRecord()
	st, used := dispatch(initialState(), &rec, &Stats{}, "random text 123")

	assert.False(t, used)
	assert.Equal(t, initialState(), st)
}

func TestHandleExperience_StrayContentIgnored(t *testing.T) {
	rec := types.NewResumeRecord()
	st := scanState{section: SectionExperience}

	_, used := handleExperience(st, &rec, &Stats{}, "• bullet before any job")
	assert.False(t, used)
}
