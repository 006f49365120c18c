package structuring

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

const fullResume = `Jane Doe
San Francisco, CA | jane@example.com | (555) 123-4567
linkedin.com/in/janedoe | github.com/janedoe | https://janedoe.dev
PROFESSIONAL SUMMARY
Backend engineer with eight years building distributed systems.
Focused on reliability.
WORK EXPERIENCE
Senior Engineer | Acme Corp | Jan 2021 - Present | Remote
• Reduced p99 latency by 40%
• Owned the billing service
Software Engineer | Globex | 2017 - 2020
- Implemented event sourcing
EDUCATION
Bachelor of Science in Computer Science | State University | 2017
GPA: 3.8/4.0
Relevant Coursework: Algorithms, Operating Systems
• Dean's List
SKILLS
Programming Languages: Go, Python, Go
Frameworks: gRPC, React
Tools: Docker, Kubernetes
Soft Skills: Mentoring
PROJECTS
Resume Builder
Tech Stack: Go, PostgreSQL
GitHub: github.com/janedoe/resume-builder
• Parses resumes into structured records
CERTIFICATIONS
AWS Certified Solutions Architect
AWARDS
Engineer of the Year 2022`

func TestStructure_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		validate func(*testing.T, types.ResumeRecord)
	}{
		{
			name:  "header summary and one job",
			input: "Jane Doe\njane@x.com\n555-123-4567\nSUMMARY\nExperienced engineer.\nEXPERIENCE\nSoftware Engineer | Acme | 2020 - Present\n• Increased throughput by 30%\n• Built internal tools",
			validate: func(t *testing.T, rec types.ResumeRecord) {
				assert.Equal(t, "Jane Doe", rec.PersonalInfo.Name)
				assert.Equal(t, "jane@x.com", rec.PersonalInfo.Email)
				assert.Equal(t, "555-123-4567", rec.PersonalInfo.Phone)
				assert.Equal(t, "Experienced engineer.", rec.Summary)
				require.Len(t, rec.Experience, 1)
				job := rec.Experience[0]
				assert.Equal(t, "Software Engineer", job.Title)
				assert.Equal(t, "Acme", job.Company)
				assert.Equal(t, "Present", job.EndDate)
				assert.True(t, job.IsCurrent)
				assert.Equal(t, []string{"Increased throughput by 30%"}, job.Achievements)
				assert.Equal(t, []string{"Built internal tools"}, job.Description)
			},
		},
		{
			name:  "consecutive job headers",
			input: "EXPERIENCE\nEngineer | Alpha | 2018 - 2020\n• Led migration\nDeveloper | Beta | 2020 - Present\n• Built APIs",
			validate: func(t *testing.T, rec types.ResumeRecord) {
				require.Len(t, rec.Experience, 2)
				assert.Equal(t, "Alpha", rec.Experience[0].Company)
				assert.Equal(t, "2020", rec.Experience[0].EndDate)
				assert.Equal(t, []string{"Led migration"}, rec.Experience[0].Achievements)
				assert.Equal(t, "Beta", rec.Experience[1].Company)
				assert.Equal(t, []string{"Built APIs"}, rec.Experience[1].Description)
			},
		},
		{
			name:  "location before dates in job header",
			input: "EXPERIENCE\nEngineer | Acme | Remote | 2020 - 2022\n• Built things",
			validate: func(t *testing.T, rec types.ResumeRecord) {
				require.Len(t, rec.Experience, 1)
				job := rec.Experience[0]
				assert.Equal(t, "Engineer", job.Title)
				assert.Equal(t, "Acme", job.Company)
				assert.Equal(t, "Remote", job.Location)
				assert.Equal(t, "2020", job.StartDate)
				assert.Equal(t, "2022", job.EndDate)
				assert.Equal(t, []string{"Built things"}, job.Description)
			},
		},
		{
			name:  "skill category keyword after the colon",
			input: "SKILLS\nOther: Docker tools, Git",
			validate: func(t *testing.T, rec types.ResumeRecord) {
				assert.Equal(t, []string{"Docker tools", "Git"}, rec.Skills.Tools)
				assert.Empty(t, rec.Skills.Technical)
			},
		},
		{
			name:  "name with credential is not a location",
			input: "Jane Doe, PhD\njane@x.com",
			validate: func(t *testing.T, rec types.ResumeRecord) {
				assert.Empty(t, rec.PersonalInfo.Location)
				assert.Equal(t, "jane@x.com", rec.PersonalInfo.Email)
			},
		},
		{
			name:  "inline skills header",
			input: "Technical Skills: Python, Go, Rust",
			validate: func(t *testing.T, rec types.ResumeRecord) {
				assert.Equal(t, []string{"Python", "Go", "Rust"}, rec.Skills.Technical)
			},
		},
		{
			name:  "skills line under skills header",
			input: "SKILLS\nTechnical Skills: Python, Go, Rust",
			validate: func(t *testing.T, rec types.ResumeRecord) {
				assert.Equal(t, []string{"Python", "Go", "Rust"}, rec.Skills.Technical)
			},
		},
		{
			name:  "email and header keyword on one line",
			input: "Jane Doe\njane@x.com Experience\nSoftware Engineer | Acme | 2020 - Present",
			validate: func(t *testing.T, rec types.ResumeRecord) {
				assert.Equal(t, "jane@x.com", rec.PersonalInfo.Email)
				require.Len(t, rec.Experience, 1)
				assert.Equal(t, "Acme", rec.Experience[0].Company)
			},
		},
		{
			name:  "keyword in a bullet switches section",
			input: "EXPERIENCE\nEngineer | Acme | 2020 - Present\n• Improved skills in Education technology\n• Shipped the app",
			validate: func(t *testing.T, rec types.ResumeRecord) {
				require.Len(t, rec.Experience, 1)
				assert.Empty(t, rec.Experience[0].Achievements)
				assert.Empty(t, rec.Experience[0].Description)
			},
		},
		{
			name:  "contact lines after a section are content",
			input: "SUMMARY\nReach me at jane@x.com",
			validate: func(t *testing.T, rec types.ResumeRecord) {
				assert.Empty(t, rec.PersonalInfo.Email)
				assert.Equal(t, "Reach me at jane@x.com", rec.Summary)
			},
		},
		{
			name:  "first name wins",
			input: "Jane Doe\nJohn Smith",
			validate: func(t *testing.T, rec types.ResumeRecord) {
				assert.Equal(t, "Jane Doe", rec.PersonalInfo.Name)
			},
		},
		{
			name:  "skill buckets deduped",
			input: "SKILLS\nGo, go, Go, , Rust\nTools: Git, Git",
			validate: func(t *testing.T, rec types.ResumeRecord) {
				assert.Equal(t, []string{"Go", "go", "Rust"}, rec.Skills.Technical)
				assert.Equal(t, []string{"Git"}, rec.Skills.Tools)
			},
		},
		{
			name:  "crlf input",
			input: "Jane Doe\r\nSUMMARY\r\nShips things.\r\n",
			validate: func(t *testing.T, rec types.ResumeRecord) {
				assert.Equal(t, "Jane Doe", rec.PersonalInfo.Name)
				assert.Equal(t, "Ships things.", rec.Summary)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, Structure(tt.input))
		})
	}
}

func TestStructure_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "   \n\t\n"} {
		rec := Structure(input)

		assert.True(t, rec.IsEmpty())
		assert.Equal(t, types.NewResumeRecord(), rec)
	}
}

func TestStructure_AllKeysPresent(t *testing.T) {
	for _, input := range []string{"", fullResume, "random text 123"} {
		data, err := json.Marshal(Structure(input))
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal(data, &m))

		for _, key := range []string{
			"personalInfo", "summary", "experience", "education", "skills",
			"projects", "certifications", "awards", "publications", "languages", "volunteer",
		} {
			require.Contains(t, m, key)
			assert.NotNil(t, m[key], key)
		}
		skills, ok := m["skills"].(map[string]any)
		require.True(t, ok)
		for _, bucket := range []string{"technical", "frameworks", "tools", "languages", "soft"} {
			assert.NotNil(t, skills[bucket], bucket)
		}
	}
}

func TestStructure_FullResume(t *testing.T) {
	rec, stats := StructureWithStats(fullResume)

	info := rec.PersonalInfo
	assert.Equal(t, "Jane Doe", info.Name)
	assert.Equal(t, "jane@example.com", info.Email)
	assert.Equal(t, "(555) 123-4567", info.Phone)
	assert.Equal(t, "San Francisco, CA", info.Location)
	assert.Equal(t, "linkedin.com/in/janedoe", info.LinkedIn)
	assert.Equal(t, "github.com/janedoe", info.GitHub)
	assert.Equal(t, "https://janedoe.dev", info.Portfolio)

	assert.Equal(t, "Backend engineer with eight years building distributed systems. Focused on reliability.", rec.Summary)

	require.Len(t, rec.Experience, 2)
	acme := rec.Experience[0]
	assert.Equal(t, "Senior Engineer", acme.Title)
	assert.Equal(t, "Acme Corp", acme.Company)
	assert.Equal(t, "Remote", acme.Location)
	assert.Equal(t, "Jan 2021", acme.StartDate)
	assert.True(t, acme.IsCurrent)
	assert.Equal(t, []string{"Reduced p99 latency by 40%"}, acme.Achievements)
	assert.Equal(t, []string{"Owned the billing service"}, acme.Description)
	assert.Equal(t, []string{"Implemented event sourcing"}, rec.Experience[1].Achievements)
	assert.False(t, rec.Experience[1].IsCurrent)

	require.Len(t, rec.Education, 1)
	edu := rec.Education[0]
	assert.Equal(t, "Bachelor of Science in Computer Science", edu.Degree)
	assert.Equal(t, "State University", edu.Institution)
	assert.Equal(t, "2017", edu.GraduationDate)
	assert.Equal(t, "3.8/4.0", edu.GPA)
	assert.Equal(t, []string{"Algorithms", "Operating Systems"}, edu.RelevantCourses)
	assert.Equal(t, []string{"Dean's List"}, edu.Honors)

	assert.Equal(t, []string{"Go", "Python"}, rec.Skills.Technical)
	assert.Equal(t, []string{"gRPC", "React"}, rec.Skills.Frameworks)
	assert.Equal(t, []string{"Docker", "Kubernetes"}, rec.Skills.Tools)
	assert.Equal(t, []string{"Mentoring"}, rec.Skills.Soft)

	require.Len(t, rec.Projects, 1)
	proj := rec.Projects[0]
	assert.Equal(t, "Resume Builder", proj.Name)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, proj.Technologies)
	assert.Equal(t, "github.com/janedoe/resume-builder", proj.RepositoryURL)
	assert.Equal(t, []string{"Parses resumes into structured records"}, proj.Highlights)

	require.Len(t, rec.Certifications, 1)
	assert.Equal(t, "AWS Certified Solutions Architect", rec.Certifications[0].Name)
	require.Len(t, rec.Awards, 1)
	assert.Equal(t, "Engineer of the Year 2022", rec.Awards[0].Title)

	assert.Equal(t, Stats{
		Lines:             31,
		HeaderRegionLines: 3,
		SectionHeaders:    8,
		DroppedLines:      0,
		EntitiesOpened:    4,
		EntitiesFlushed:   4,
	}, stats)
}

func TestStructure_Idempotent(t *testing.T) {
	first := Structure(fullResume)
	second := Structure(fullResume)

	assert.Equal(t, first, second)
}

func TestStructure_EntityAccounting(t *testing.T) {
	inputs := []string{
		fullResume,
		"EXPERIENCE\nAcme Corp\nGlobex\nInitech\nPROJECTS\nFirst Project\nSecond Project",
		"EDUCATION\nBachelor of Arts | College\nMaster of Science | University",
		"PROJECTS\nUnclosed Project\n• still open at end",
		"EXPERIENCE\nAcme Corp\nEXPERIENCE\nGlobex",
	}

	for _, input := range inputs {
		rec, stats := StructureWithStats(input)
		total := len(rec.Experience) + len(rec.Education) + len(rec.Projects)

		assert.Equal(t, stats.EntitiesOpened, stats.EntitiesFlushed)
		assert.Equal(t, total, stats.EntitiesFlushed)
	}
}

func TestStructure_DroppedLines(t *testing.T) {
	_, stats := StructureWithStats("random text 123\nEXPERIENCE\nstray line before a job")

	assert.Equal(t, 2, stats.DroppedLines)
	assert.Equal(t, 1, stats.SectionHeaders)
}

func TestStructure_HeaderRegionCountsFieldLines(t *testing.T) {
	_, stats := StructureWithStats("Jane Doe\nBuilding reliable systems.\njane@x.com\nSUMMARY\nShips things.")

	assert.Equal(t, 2, stats.HeaderRegionLines)
	assert.Equal(t, 1, stats.DroppedLines)
	assert.Equal(t, 1, stats.SectionHeaders)
}

func TestStructure_ConcurrentCalls(t *testing.T) {
	done := make(chan types.ResumeRecord, 8)
	for i := 0; i < 8; i++ {
		go func() { done <- Structure(fullResume) }()
	}

	want := Structure(fullResume)
	for i := 0; i < 8; i++ {
		assert.Equal(t, want, <-done)
	}
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SplitLines("  a \r\n\n b\rc\n\n"))
	assert.Empty(t, SplitLines(strings.Repeat("\n", 5)))
}
