package pipeline

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/cold-outreach/internal/schemas"
)

// Artifact file names inside a run directory.
const (
	jobArtifact      = "job.json"
	resumeArtifact   = "resume.json"
	matchArtifact    = "match.json"
	emailsArtifact   = "emails.json"
	metadataArtifact = "metadata.json"
)

// runMetadata describes a completed run for later inspection. Artifacts maps
// each written file to the sha256 hex digest of its content.
type runMetadata struct {
	RunID     string            `json:"run_id"`
	SourceURL string            `json:"source_url"`
	CreatedAt time.Time         `json:"created_at"`
	Drafts    int               `json:"drafts"`
	Artifacts map[string]string `json:"artifact_sha256"`
}

// writeArtifacts persists the run outputs as JSON files under outDir/runID.
// Each structured artifact is validated against its schema before writing.
func writeArtifacts(outDir string, result *Result) (string, error) {
	runDir := filepath.Join(outDir, result.RunID)
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create run directory: %w", err)
	}

	digests := make(map[string]string)

	for _, artifact := range []struct {
		name   string
		schema string
		value  any
	}{
		{jobArtifact, schemas.JobPosting, result.Job},
		{resumeArtifact, schemas.Resume, result.Resume},
		{matchArtifact, schemas.SkillMatch, result.Match},
	} {
		digest, err := writeValidated(runDir, artifact.name, artifact.schema, artifact.value)
		if err != nil {
			return "", err
		}
		digests[artifact.name] = digest
	}

	if len(result.Drafts) > 0 {
		data, err := json.MarshalIndent(result.Drafts, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal %s: %w", emailsArtifact, err)
		}
		for i := range result.Drafts {
			draftJSON, err := json.Marshal(result.Drafts[i])
			if err != nil {
				return "", fmt.Errorf("failed to marshal draft %d: %w", i+1, err)
			}
			if err := schemas.Validate(schemas.EmailDraft, draftJSON); err != nil {
				return "", fmt.Errorf("draft %d failed schema validation: %w", i+1, err)
			}
		}
		if err := os.WriteFile(filepath.Join(runDir, emailsArtifact), data, 0o644); err != nil {
			return "", fmt.Errorf("failed to write %s: %w", emailsArtifact, err)
		}
		digests[emailsArtifact] = fmt.Sprintf("%x", sha256.Sum256(data))
	}

	meta := runMetadata{
		RunID:     result.RunID,
		SourceURL: result.Job.SourceURL,
		CreatedAt: time.Now().UTC(),
		Drafts:    len(result.Drafts),
		Artifacts: digests,
	}
	metaData, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal %s: %w", metadataArtifact, err)
	}
	if err := os.WriteFile(filepath.Join(runDir, metadataArtifact), metaData, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", metadataArtifact, err)
	}

	return runDir, nil
}

// writeValidated marshals, schema-checks and writes one artifact, returning
// the sha256 hex digest of the written bytes.
func writeValidated(runDir, name, schemaName string, v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal %s: %w", name, err)
	}
	if err := schemas.Validate(schemaName, data); err != nil {
		return "", fmt.Errorf("%s failed schema validation: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(runDir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	return fmt.Sprintf("%x", sha256.Sum256(data)), nil
}
