package resume

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumeValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Resume)
		wantErr string
	}{
		{"valid", func(r *Resume) {}, ""},
		{"missing name", func(r *Resume) { r.Name = "" }, "name is required"},
		{"missing title", func(r *Resume) { r.Title = "" }, "title is required"},
		{"missing summary", func(r *Resume) { r.Summary = "" }, "summary is required"},
		{"name too long", func(r *Resume) { r.Name = strings.Repeat("x", 201) }, "name too long"},
		{
			"too many experience entries",
			func(r *Resume) {
				for i := 0; i < 21; i++ {
					r.Experience = append(r.Experience, Experience{
						Company: "C", Position: "P", Description: "D",
					})
				}
			},
			"too many experience entries",
		},
		{
			"experience missing company",
			func(r *Resume) {
				r.Experience = []Experience{{Position: "P", Description: "D"}}
			},
			"experience[0]: company is required",
		},
		{
			"achievement too long",
			func(r *Resume) {
				r.Experience = []Experience{{
					Company: "C", Position: "P", Description: "D",
					Achievements: []string{strings.Repeat("x", 501)},
				}}
			},
			"achievement too long",
		},
		{
			"education missing institution",
			func(r *Resume) {
				r.Education = []Education{{Degree: "B.Tech"}}
			},
			"education[0]: institution is required",
		},
		{
			"project missing description",
			func(r *Resume) {
				r.Projects = []Project{{Name: "P"}}
			},
			"projects[0]: project description is required",
		},
		{
			"too many languages",
			func(r *Resume) {
				r.Languages = make([]string, 11)
			},
			"too many languages",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validResume()
			tt.mutate(&r)

			err := r.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
