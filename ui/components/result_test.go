package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Rorical/GitLingo/internal/models"
)

func TestRenderResult(t *testing.T) {
	tests := []struct {
		name     string
		result   *models.TranslationResult
		errMsg   string
		contains []string
		excludes []string
	}{
		{
			name:     "empty",
			excludes: []string{"Suggested Command:"},
		},
		{
			name:     "result",
			result:   &models.TranslationResult{Command: "git stash", Description: "Saves changes temporarily"},
			contains: []string{"Suggested Command:", "git stash", "Saves changes temporarily", "Copy"},
		},
		{
			name:     "error",
			errMsg:   "Something went wrong with the server.",
			contains: []string{"Something went wrong with the server."},
			excludes: []string{"Suggested Command:"},
		},
		{
			name:     "result without command",
			result:   &models.TranslationResult{Description: "nothing to run"},
			contains: []string{"nothing to run"},
			excludes: []string{"Copy"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderResult(tt.result, tt.errMsg, 80)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestRenderHeader(t *testing.T) {
	out := RenderHeader()
	assert.Contains(t, out, "GitLingo")
	assert.Contains(t, out, "Translate plain English to Git commands using AI.")
}
