// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// StructureRequest asks the server to structure raw resume text.
type StructureRequest struct {
	Text    string `json:"text" validate:"max=10485760"`
	Source  string `json:"source,omitempty" validate:"omitempty,oneof=generated upload linkedin manual"`
	Persist bool   `json:"persist,omitempty"`
}

// ScrapeGitHubRequest names the GitHub user to fetch.
type ScrapeGitHubRequest struct {
	Username string `json:"username" validate:"required,min=1,max=39"`
}

// ScrapePostsRequest lists LinkedIn post URLs to scrape.
type ScrapePostsRequest struct {
	URLs []string `json:"urls" validate:"max=20,dive,url"`
}

// PostContent is a single scraped post body, as sent back by the client on generation.
type PostContent struct {
	URL     string `json:"url,omitempty"`
	Content string `json:"content"`
}

// GenerateResumeRequest carries every profile source used to generate a resume.
type GenerateResumeRequest struct {
	GitHubUsername  string        `json:"github_username,omitempty" validate:"omitempty,max=39"`
	LinkedInPDFText string        `json:"linkedin_pdf_text,omitempty"`
	LinkedInPosts   []PostContent `json:"linkedin_posts,omitempty"`
	ExistingResume  string        `json:"existing_resume,omitempty"`
	JobDescription  string        `json:"job_description" validate:"required,min=1"`
	MaxProjects     int           `json:"max_projects,omitempty" validate:"gte=0,lte=10"`
}

// Validate validates the StructureRequest using the validator.
func (r *StructureRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ScrapeGitHubRequest using the validator.
func (r *ScrapeGitHubRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ScrapePostsRequest using the validator.
func (r *ScrapePostsRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the GenerateResumeRequest using the validator.
func (r *GenerateResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
