package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ValidPrompt(t *testing.T) {
	ClearCache()

	prompt, err := Get("generation.json", "preamble")
	require.NoError(t, err)
	assert.Contains(t, prompt, "resume writing assistant")
}

func TestGet_InvalidFile(t *testing.T) {
	ClearCache()

	_, err := Get("nonexistent.json", "some-key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")
}

func TestGet_InvalidKey(t *testing.T) {
	ClearCache()

	_, err := Get("generation.json", "nonexistent-key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGet(t *testing.T) {
	ClearCache()

	assert.Panics(t, func() { MustGet("nonexistent.json", "some-key") })
	assert.NotPanics(t, func() {
		assert.NotEmpty(t, MustGet("generation.json", "instructions"))
	})
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		template string
		data     map[string]string
		want     string
	}{
		{"all values", "Hello {{.Name}}, welcome to {{.Company}}!", map[string]string{"Name": "Alice", "Company": "Acme Corp"}, "Hello Alice, welcome to Acme Corp!"},
		{"no placeholders", "No placeholders here", map[string]string{"Key": "Value"}, "No placeholders here"},
		{"missing value kept", "Hello {{.Name}}", map[string]string{}, "Hello {{.Name}}"},
		{"value with braces", "Tech: {{.Language}}", map[string]string{"Language": "{{.Other}}"}, "Tech: {{.Other}}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.template, tt.data))
		})
	}
}

func TestRender_ProjectSummary(t *testing.T) {
	out, err := Render("generation.json", "project-summary", map[string]string{
		"Name":        "resume-builder",
		"Language":    "Go",
		"URL":         "https://github.com/jane/resume-builder",
		"Description": "Structures resumes",
		"Readme":      "Parses text",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Project: resume-builder\nTech: Go")
	assert.Contains(t, out, "README Insights: Parses text...")
}

func TestRender_MissingValues(t *testing.T) {
	_, err := Render("generation.json", "project-summary", map[string]string{"Name": "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Language")
}

func TestList(t *testing.T) {
	ClearCache()

	keys, err := List("generation.json")
	require.NoError(t, err)
	assert.Contains(t, keys, "preamble")
	assert.Contains(t, keys, "instructions")
	assert.IsIncreasing(t, keys)
}
