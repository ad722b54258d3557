package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cold-outreach/internal/schemas"
	"github.com/jonathan/cold-outreach/internal/types"
)

func TestRun_MissingInputs(t *testing.T) {
	tests := []struct {
		name string
		opts RunOptions
	}{
		{name: "Missing job URL", opts: RunOptions{ResumePath: "resume.pdf"}},
		{name: "Missing resume path", opts: RunOptions{JobURL: "https://example.com/jobs/1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Run(context.Background(), tt.opts)
			assert.Error(t, err)
		})
	}
}

func TestRun_UnreadableResume(t *testing.T) {
	_, err := Run(context.Background(), RunOptions{
		JobURL:     "https://example.com/jobs/1",
		ResumePath: filepath.Join(t.TempDir(), "missing.pdf"),
	})
	assert.Error(t, err)
}

func sampleResult() *Result {
	return &Result{
		RunID: uuid.New().String(),
		Job: &types.JobPosting{
			Title:            "Backend Engineer",
			Company:          "Initech",
			Location:         "Remote",
			Description:      "Build services",
			Requirements:     "Python",
			Responsibilities: "Ship features",
			Skills:           []string{"python", "docker"},
			ExperienceLevel:  types.LevelSenior,
			EmploymentType:   types.EmploymentFullTime,
			SourceURL:        "https://example.com/jobs/1",
		},
		Resume: &types.Resume{
			Name:    "Jane Smith",
			Email:   types.EmailNotFound,
			Phone:   "555-123-4567",
			Summary: "Backend engineer.",
			Skills:  []string{"python"},
			Experience: []types.ExperienceEntry{
				{Title: "Engineer", Company: "Globex", Period: "2019 - Present"},
			},
		},
		Match: types.SkillMatchResult{
			MatchedSkills:   []string{"python"},
			MissingSkills:   []string{"docker"},
			MatchPercentage: 50.0,
		},
		Drafts: []types.EmailDraft{
			{
				Subject: "Experienced Backend Engineer - Jane Smith",
				Body:    "Dear hiring team, I build backend services.",
				Style:   types.StyleProfessional,
				Version: 1,
			},
		},
	}
}

func TestWriteArtifacts(t *testing.T) {
	outDir := t.TempDir()
	result := sampleResult()

	runDir, err := writeArtifacts(outDir, result)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(outDir, result.RunID), runDir)

	for _, name := range []string{jobArtifact, resumeArtifact, matchArtifact, emailsArtifact, metadataArtifact} {
		_, err := os.Stat(filepath.Join(runDir, name))
		assert.NoError(t, err, name)
	}

	// Written artifacts validate against the schemas they were checked with.
	assert.NoError(t, schemas.ValidateFile(schemas.JobPosting, filepath.Join(runDir, jobArtifact)))
	assert.NoError(t, schemas.ValidateFile(schemas.Resume, filepath.Join(runDir, resumeArtifact)))
	assert.NoError(t, schemas.ValidateFile(schemas.SkillMatch, filepath.Join(runDir, matchArtifact)))

	metaData, err := os.ReadFile(filepath.Join(runDir, metadataArtifact))
	require.NoError(t, err)
	var meta runMetadata
	require.NoError(t, json.Unmarshal(metaData, &meta))
	assert.Equal(t, result.RunID, meta.RunID)
	assert.Equal(t, "https://example.com/jobs/1", meta.SourceURL)
	assert.Equal(t, 1, meta.Drafts)

	// The metadata digests match the written artifact bytes.
	require.Len(t, meta.Artifacts, 4)
	for _, name := range []string{jobArtifact, resumeArtifact, matchArtifact, emailsArtifact} {
		data, err := os.ReadFile(filepath.Join(runDir, name))
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("%x", sha256.Sum256(data)), meta.Artifacts[name], name)
	}
}

func TestWriteArtifacts_NoDrafts(t *testing.T) {
	result := sampleResult()
	result.Drafts = nil

	runDir, err := writeArtifacts(t.TempDir(), result)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(runDir, emailsArtifact))
	assert.True(t, os.IsNotExist(err))
}

func TestWriteArtifacts_InvalidDraft(t *testing.T) {
	result := sampleResult()
	result.Drafts[0].Subject = ""

	_, err := writeArtifacts(t.TempDir(), result)
	assert.Error(t, err)
}
