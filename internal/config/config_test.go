package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `{
		"job_url": "https://example.com/jobs/1",
		"style": "casual",
		"versions": 2,
		"use_browser": true,
		"port": 9090
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/jobs/1", cfg.JobURL)
	assert.Equal(t, "casual", cfg.Style)
	assert.Equal(t, 2, cfg.Versions)
	assert.True(t, cfg.UseBrowser)
	assert.Equal(t, 9090, cfg.Port)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "Empty path", path: ""},
		{name: "Missing file", path: filepath.Join(t.TempDir(), "missing.json")},
		{name: "Malformed JSON", path: writeConfigFile(t, "{not json")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(tt.path)
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	resumePath := filepath.Join(t.TempDir(), "resume.pdf")
	require.NoError(t, os.WriteFile(resumePath, []byte("pdf"), 0o644))

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "Empty config", cfg: Config{}},
		{name: "Valid style", cfg: Config{Style: "enthusiastic"}},
		{name: "Unknown style", cfg: Config{Style: "poetic"}, wantErr: "unknown style"},
		{name: "Negative versions", cfg: Config{Versions: -1}, wantErr: "versions"},
		{name: "Port too large", cfg: Config{Port: 70000}, wantErr: "port"},
		{name: "Resume exists", cfg: Config{Resume: resumePath}},
		{name: "Resume missing", cfg: Config{Resume: "/nonexistent/resume.pdf"}, wantErr: "not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Style: "casual", Port: 9090}
	defaults := Config{
		JobURL:   "https://example.com/jobs/1",
		Style:    "professional",
		Versions: 3,
		Port:     8080,
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "https://example.com/jobs/1", merged.JobURL)
	assert.Equal(t, "casual", merged.Style)
	assert.Equal(t, 3, merged.Versions)
	assert.Equal(t, 9090, merged.Port)
}

func TestMergeWithDefaults_BoolsNotMerged(t *testing.T) {
	cfg := Config{}
	merged := cfg.MergeWithDefaults(Config{UseBrowser: true, Verbose: true})
	assert.False(t, merged.UseBrowser)
	assert.False(t, merged.Verbose)
}
