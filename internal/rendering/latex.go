// Package rendering provides functionality to render LaTeX resumes from templates.
package rendering

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/jonathan/resume-builder/internal/types"
)

//go:embed templates/resume.tex
var defaultTemplate string

// TemplateData represents the data structure passed to the LaTeX template.
// Every string is already LaTeX-escaped.
type TemplateData struct {
	Name           string
	Contact        []string
	Summary        string
	Companies      []CompanySection
	Projects       []ProjectSection
	Education      []EducationSection
	Skills         []SkillLine
	Certifications []string
}

// CompanySection represents a company with one or more roles
type CompanySection struct {
	Company  string
	Location string
	Roles    []RoleSection
}

// RoleSection represents a role within a company
type RoleSection struct {
	Title   string
	Dates   string // e.g., "Jan 2020 -- Present"
	Bullets []string
}

// ProjectSection represents one project entry
type ProjectSection struct {
	Name         string
	Description  string
	Technologies []string
	URL          string
	Highlights   []string
}

// EducationSection represents one education entry
type EducationSection struct {
	Institution string
	Degree      string
	Date        string
	GPA         string
}

// SkillLine is one labelled row of the skills section
type SkillLine struct {
	Label string
	Items []string
}

// RenderLaTeX renders a structured resume with the template at templatePath,
// or with the built-in template when templatePath is empty.
func RenderLaTeX(record *types.ResumeRecord, templatePath string) (string, error) {
	if record == nil {
		return "", &RenderError{Message: "no resume record to render"}
	}

	tmpl, err := loadTemplate(templatePath)
	if err != nil {
		return "", err
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, buildTemplateData(record)); err != nil {
		return "", &TemplateError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}

	return result.String(), nil
}

func loadTemplate(templatePath string) (*template.Template, error) {
	if templatePath == "" {
		return newTemplate(defaultTemplate)
	}
	return parseTemplate(templatePath)
}

// parseTemplate reads and parses a LaTeX template file
func parseTemplate(templatePath string) (*template.Template, error) {
	content, err := os.ReadFile(templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &TemplateError{
				Message: fmt.Sprintf("template file not found: %s", templatePath),
				Cause:   err,
			}
		}
		return nil, &TemplateError{
			Message: fmt.Sprintf("failed to read template file: %s", templatePath),
			Cause:   err,
		}
	}
	return newTemplate(string(content))
}

func newTemplate(content string) (*template.Template, error) {
	tmpl, err := template.New("resume").Funcs(template.FuncMap{
		"escape": EscapeLaTeX,
		"join":   strings.Join,
	}).Parse(content)
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse template",
			Cause:   err,
		}
	}
	return tmpl, nil
}

// buildTemplateData escapes the record and reshapes it for the template.
func buildTemplateData(record *types.ResumeRecord) *TemplateData {
	info := record.PersonalInfo
	data := &TemplateData{
		Name:    EscapeLaTeX(info.Name),
		Summary: EscapeLaTeX(record.Summary),
	}

	for _, field := range []string{info.Email, info.Phone, info.Location, info.LinkedIn, info.GitHub, info.Portfolio} {
		if field != "" {
			data.Contact = append(data.Contact, EscapeLaTeX(field))
		}
	}

	data.Companies = groupByCompany(record.Experience)

	for _, p := range record.Projects {
		url := p.URL
		if url == "" {
			url = p.RepositoryURL
		}
		data.Projects = append(data.Projects, ProjectSection{
			Name:         EscapeLaTeX(p.Name),
			Description:  EscapeLaTeX(p.Description),
			Technologies: escapeAll(p.Technologies),
			URL:          EscapeLaTeX(url),
			Highlights:   escapeAll(p.Highlights),
		})
	}

	for _, e := range record.Education {
		data.Education = append(data.Education, EducationSection{
			Institution: EscapeLaTeX(e.Institution),
			Degree:      EscapeLaTeX(e.Degree),
			Date:        EscapeLaTeX(e.GraduationDate),
			GPA:         EscapeLaTeX(e.GPA),
		})
	}

	skills := record.Skills
	for _, line := range []SkillLine{
		{Label: "Technical", Items: skills.Technical},
		{Label: "Frameworks", Items: skills.Frameworks},
		{Label: "Tools", Items: skills.Tools},
		{Label: "Languages", Items: skills.Languages},
		{Label: "Soft Skills", Items: skills.Soft},
	} {
		if len(line.Items) > 0 {
			data.Skills = append(data.Skills, SkillLine{Label: line.Label, Items: escapeAll(line.Items)})
		}
	}

	for _, c := range record.Certifications {
		text := c.Name
		if c.Issuer != "" {
			text += ", " + c.Issuer
		}
		if c.Date != "" {
			text += " (" + c.Date + ")"
		}
		data.Certifications = append(data.Certifications, EscapeLaTeX(text))
	}

	return data
}

// groupByCompany merges consecutive experience entries at the same company
// into one section, keeping record order.
func groupByCompany(entries []types.ExperienceEntry) []CompanySection {
	var companies []CompanySection
	lastCompany := ""

	for _, e := range entries {
		role := RoleSection{
			Title:   EscapeLaTeX(e.Title),
			Dates:   formatDates(e),
			Bullets: escapeAll(append(append([]string{}, e.Description...), e.Achievements...)),
		}

		if len(companies) > 0 && e.Company != "" && strings.EqualFold(e.Company, lastCompany) {
			last := &companies[len(companies)-1]
			last.Roles = append(last.Roles, role)
			continue
		}

		companies = append(companies, CompanySection{
			Company:  EscapeLaTeX(e.Company),
			Location: EscapeLaTeX(e.Location),
			Roles:    []RoleSection{role},
		})
		lastCompany = e.Company
	}

	return companies
}

// formatDates renders an entry's date range, e.g. "2020 -- Present".
func formatDates(e types.ExperienceEntry) string {
	end := e.EndDate
	if e.IsCurrent && end == "" {
		end = "Present"
	}
	switch {
	case e.StartDate == "" && end == "":
		return ""
	case e.StartDate == "":
		return EscapeLaTeX(end)
	case end == "":
		return EscapeLaTeX(e.StartDate)
	}
	return EscapeLaTeX(e.StartDate) + " -- " + EscapeLaTeX(end)
}

func escapeAll(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = EscapeLaTeX(item)
	}
	return out
}
