package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCommand(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		args     []string
		validate func(t *testing.T, stdout string, err error)
	}{
		{
			name:    "plain text is cleaned",
			file:    "resume.txt",
			content: "Jane   Doe\r\n\r\n\r\n\r\nSKILLS\r\nGo, SQL\r\n",
			validate: func(t *testing.T, stdout string, err error) {
				require.NoError(t, err)
				assert.Equal(t, "Jane Doe\n\nSKILLS\nGo, SQL\n", stdout)
			},
		},
		{
			name:    "markdown with structure",
			file:    "resume.md",
			content: cliResume,
			args:    []string{"--structure"},
			validate: func(t *testing.T, stdout string, err error) {
				require.NoError(t, err)
				var out extractResult
				require.NoError(t, json.Unmarshal([]byte(stdout), &out))
				assert.Equal(t, "Jane Doe", out.Record.PersonalInfo.Name)
				assert.Equal(t, 8, out.Stats.Lines)
				require.NotNil(t, out.Metadata)
				assert.Equal(t, "resume.md", out.Metadata.FileName)
				assert.NotEmpty(t, out.Metadata.Hash)
			},
		},
		{
			name:    "unsupported format",
			file:    "resume.rtf",
			content: `{\rtf1}`,
			validate: func(t *testing.T, _ string, err error) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unsupported file format")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			args := append([]string{"extract", path}, tt.args...)
			stdout, _, err := executeCommand(t, "", args...)
			tt.validate(t, stdout, err)
		})
	}
}
