// Package generation assembles the resume-writing prompt from profile sources,
// asks the language model for a resume and structures the answer.
package generation

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-builder/internal/github"
	"github.com/jonathan/resume-builder/internal/prompts"
)

const promptFile = "generation.json"

// readmeExcerptRunes is how much of a README goes into a project summary.
const readmeExcerptRunes = 500

// Input holds every source used to write a resume. Only JobDescription is required.
type Input struct {
	JobDescription string          `json:"job_description" validate:"required"`
	LinkedInText   string          `json:"linkedin_text,omitempty"`
	Posts          []string        `json:"posts,omitempty"`
	GitHub         *github.Profile `json:"github,omitempty"`
	ExistingResume string          `json:"existing_resume,omitempty"`
	MaxProjects    int             `json:"max_projects,omitempty" validate:"gte=0,lte=10"`
}

// Validate validates the Input using the validator.
func (in *Input) Validate() error {
	validate := validator.New()
	if err := validate.Struct(in); err != nil {
		return err
	}
	if strings.TrimSpace(in.JobDescription) == "" {
		return &Error{Message: "job description is blank"}
	}
	return nil
}

// BuildPrompt renders the prompt: preamble, job description, LinkedIn profile,
// LinkedIn posts, relevant GitHub projects, existing resume, instructions.
// Empty sources are left out. It also returns the projects it selected.
func BuildPrompt(in Input) (string, []github.ScoredRepository, error) {
	texts, err := loadTexts()
	if err != nil {
		return "", nil, err
	}
	sep := texts["section-separator"]

	var b strings.Builder
	b.WriteString(texts["preamble"])
	b.WriteString("\n")

	section := func(header string, body ...string) {
		b.WriteString("\n" + sep + "\n" + header + "\n\n")
		b.WriteString(strings.Join(body, "\n"))
		b.WriteString("\n")
	}

	section(texts["section-job-description"], strings.TrimSpace(in.JobDescription))

	if text := strings.TrimSpace(in.LinkedInText); text != "" {
		section(texts["section-linkedin-profile"], text)
	}

	var posts []string
	for _, p := range in.Posts {
		if p = strings.TrimSpace(p); p != "" {
			posts = append(posts, "- "+p)
		}
	}
	if len(posts) > 0 {
		section(texts["section-linkedin-posts"], posts...)
	}

	var selected []github.ScoredRepository
	if in.GitHub != nil {
		selected = github.SelectRelevantProjects(in.GitHub, in.JobDescription, in.MaxProjects)
		if len(selected) > 0 {
			summaries := make([]string, 0, len(selected))
			for _, s := range selected {
				summary, err := ProjectSummary(s.Repository)
				if err != nil {
					return "", nil, err
				}
				summaries = append(summaries, summary)
			}
			section(texts["section-github-projects"], summaries...)
		}
	}

	if text := strings.TrimSpace(in.ExistingResume); text != "" {
		section(texts["section-existing-resume"], text)
	}

	b.WriteString("\n" + sep + "\n" + texts["instructions"] + "\n")
	return b.String(), selected, nil
}

// ProjectSummary renders the prompt block for one repository.
func ProjectSummary(repo github.Repository) (string, error) {
	language := repo.Language
	if language == "" {
		language = "N/A"
	}
	description := repo.Description
	if description == "" {
		description = "No description"
	}
	return prompts.Render(promptFile, "project-summary", map[string]string{
		"Name":        repo.Name,
		"Language":    language,
		"URL":         repo.HTMLURL,
		"Description": description,
		"Readme":      excerpt(strings.TrimSpace(repo.ReadmeContent), readmeExcerptRunes),
	})
}

func excerpt(text string, n int) string {
	if utf8.RuneCountInString(text) <= n {
		return text
	}
	return string([]rune(text)[:n])
}

func loadTexts() (map[string]string, error) {
	keys := []string{
		"preamble",
		"section-separator",
		"section-job-description",
		"section-linkedin-profile",
		"section-linkedin-posts",
		"section-github-projects",
		"section-existing-resume",
		"instructions",
	}
	texts := make(map[string]string, len(keys))
	for _, k := range keys {
		v, err := prompts.Get(promptFile, k)
		if err != nil {
			return nil, err
		}
		texts[k] = v
	}
	return texts, nil
}
