package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Rorical/GitLingo/internal/config"
)

func TestRemoveProfile(t *testing.T) {
	tests := []struct {
		name       string
		profiles   []string
		active     string
		remove     string
		wantActive string
		wantNames  []string
	}{
		{
			name:       "inactive profile",
			profiles:   []string{"default", "staging"},
			active:     "default",
			remove:     "staging",
			wantActive: "default",
			wantNames:  []string{"default"},
		},
		{
			name:       "active profile moves to next",
			profiles:   []string{"default", "local", "staging"},
			active:     "staging",
			remove:     "staging",
			wantActive: "default",
			wantNames:  []string{"default", "local"},
		},
		{
			name:       "last profile recreates default",
			profiles:   []string{"remote"},
			active:     "remote",
			remove:     "remote",
			wantActive: "default",
			wantNames:  []string{"default"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Profiles: map[string]config.Profile{}, ActiveProfile: tt.active}
			for _, name := range tt.profiles {
				cfg.Profiles[name] = config.Profile{Endpoint: "http://" + name + ".local/api"}
			}

			removeProfile(cfg, tt.remove)

			assert.Equal(t, tt.wantActive, cfg.ActiveProfile)
			assert.Equal(t, tt.wantNames, sortedProfileNames(cfg, ""))
		})
	}
}

func TestValidateEndpoint(t *testing.T) {
	assert.NoError(t, validateEndpoint("http://127.0.0.1:5000/api/translate"))
	assert.NoError(t, validateEndpoint("https://gitlingo.example.com/api/translate"))
	assert.Error(t, validateEndpoint("ftp://example.com"))
	assert.Error(t, validateEndpoint("http://"))
	assert.Error(t, validateEndpoint("not a url"))
}

func TestValidateTimeout(t *testing.T) {
	assert.NoError(t, validateTimeout(""))
	assert.NoError(t, validateTimeout("30s"))
	assert.Error(t, validateTimeout("-1s"))
	assert.Error(t, validateTimeout("soon"))
}

func TestDescribeTimeout(t *testing.T) {
	assert.Equal(t, "none", describeTimeout(0))
	assert.Equal(t, "30s", describeTimeout(config.Duration(30*time.Second)))
}
