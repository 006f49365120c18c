package schemas

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/jonathan/resume-builder/internal/structuring"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumeRecordSchema_IsValidJSON(t *testing.T) {
	var v map[string]any
	require.NoError(t, json.Unmarshal([]byte(ResumeRecordSchema()), &v))
	assert.Equal(t, "ResumeRecord", v["title"])
}

func TestValidateRecord(t *testing.T) {
	tests := []struct {
		name     string
		record   func() types.ResumeRecord
		validate func(*testing.T, error)
	}{
		{
			name:   "empty record",
			record: types.NewResumeRecord,
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "structured resume",
			record: func() types.ResumeRecord {
				return structuring.Structure("Jane Doe\njane@x.com\nSKILLS\nLanguages: Go, Go, Rust\nEXPERIENCE\nEngineer | Acme | 2020 - Present\n• Led the migration\nPROJECTS\nResume Builder Tool\nTech Stack: Go, Postgres\nEDUCATION\nBachelor of Science | State University | 2018")
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "nil slices violate shape",
			record: func() types.ResumeRecord {
				return types.ResumeRecord{}
			},
			validate: func(t *testing.T, err error) {
				var ve *ValidationError
				require.True(t, errors.As(err, &ve))
				assert.NotEmpty(t, ve.Errors)
			},
		},
		{
			name: "duplicate skills rejected",
			record: func() types.ResumeRecord {
				rec := types.NewResumeRecord()
				rec.Skills.Technical = []string{"Go", "Go"}
				return rec
			},
			validate: func(t *testing.T, err error) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "skills.technical")
			},
		},
		{
			name: "empty skill rejected",
			record: func() types.ResumeRecord {
				rec := types.NewResumeRecord()
				rec.Skills.Tools = []string{""}
				return rec
			},
			validate: func(t *testing.T, err error) {
				require.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, ValidateRecord(tt.record()))
		})
	}
}

func TestValidateRecordJSON_Invalid(t *testing.T) {
	err := ValidateRecordJSON([]byte(`{"summary": 5}`))
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
}

func TestValidationError_Fields(t *testing.T) {
	ve := &ValidationError{Errors: []FieldError{
		{Field: "skills.technical", Message: "array items must be unique"},
		{Field: "summary", Message: "expected string"},
		{Field: "skills.technical", Message: "item too short"},
	}}

	assert.Equal(t, []string{"skills.technical", "summary"}, ve.Fields())
	assert.Contains(t, ve.Error(), "2. summary: expected string")
}
