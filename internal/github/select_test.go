package github

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywords(t *testing.T) {
	got := Keywords("Senior Go engineer with Kubernetes, Go and kubernetes experience.")
	assert.Equal(t, []string{"senior", "engineer", "with", "kubernetes", "experience"}, got)
	assert.Empty(t, Keywords(""))
}

func TestSelectRelevantProjects(t *testing.T) {
	profile := &Profile{Repositories: []Repository{
		{Name: "dotfiles", Description: "my config"},
		{Name: "operator", ReadmeContent: "A Kubernetes operator for Postgres backups"},
		{Name: "api", Description: "REST service on Postgres"},
		{Name: "infra", Description: "Terraform for Kubernetes", ReadmeContent: "postgres clusters"},
		{Name: "blog", Description: "Postgres notes"},
	}}
	job := "We run Kubernetes and Postgres"

	tests := []struct {
		name     string
		profile  *Profile
		max      int
		validate func(*testing.T, []ScoredRepository)
	}{
		{
			name:    "ranked by score with stable ties",
			profile: profile,
			max:     3,
			validate: func(t *testing.T, got []ScoredRepository) {
				require.Len(t, got, 3)
				assert.Equal(t, "operator", got[0].Repository.Name)
				assert.Equal(t, 2, got[0].Score)
				assert.Equal(t, "infra", got[1].Repository.Name)
				assert.Equal(t, "api", got[2].Repository.Name)
				assert.Equal(t, 1, got[2].Score)
			},
		},
		{
			name:    "default max",
			profile: profile,
			max:     0,
			validate: func(t *testing.T, got []ScoredRepository) {
				assert.Len(t, got, DefaultMaxProjects)
			},
		},
		{
			name:    "zero score repositories excluded",
			profile: profile,
			max:     10,
			validate: func(t *testing.T, got []ScoredRepository) {
				assert.Len(t, got, 4)
				for _, s := range got {
					assert.NotEqual(t, "dotfiles", s.Repository.Name)
				}
			},
		},
		{
			name:    "nil profile",
			profile: nil,
			validate: func(t *testing.T, got []ScoredRepository) {
				assert.Nil(t, got)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, SelectRelevantProjects(tt.profile, job, tt.max))
		})
	}
}
