// Package pipeline provides the high-level orchestration for one outreach run:
// fetch the job posting, decode the resume, match skills, compose the email.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cold-outreach/internal/composer"
	"github.com/jonathan/cold-outreach/internal/fetch"
	"github.com/jonathan/cold-outreach/internal/jobposting"
	"github.com/jonathan/cold-outreach/internal/llm"
	"github.com/jonathan/cold-outreach/internal/logger"
	"github.com/jonathan/cold-outreach/internal/matching"
	"github.com/jonathan/cold-outreach/internal/resume"
	"github.com/jonathan/cold-outreach/internal/types"
)

// Step names reported through ProgressEvent and used for artifact files.
const (
	StepFetchJob    = "fetch_job"
	StepParseJob    = "parse_job"
	StepParseResume = "parse_resume"
	StepMatch       = "match"
	StepCompose     = "compose"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	JobURL     string
	ResumePath string
	OutDir     string
	APIKey     string
	Style      types.EmailStyle
	Versions   int
	UseBrowser bool
	Logger     *zap.Logger
	OnProgress ProgressCallback
}

// Result holds everything a completed run produced.
type Result struct {
	RunID  string                `json:"run_id"`
	Job    *types.JobPosting     `json:"job"`
	Resume *types.Resume         `json:"resume"`
	Match  types.SkillMatchResult `json:"match"`
	Drafts []types.EmailDraft    `json:"drafts,omitempty"`
	RunDir string                `json:"run_dir,omitempty"`
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, runID, step, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:    step,
			Message: message,
			RunID:   runID,
			Content: content,
		})
	}
}

// Run executes the full outreach pipeline. The job posting and the resume
// are processed concurrently; composing is skipped when no API key is set.
func Run(ctx context.Context, opts RunOptions) (*Result, error) {
	if opts.JobURL == "" {
		return nil, fmt.Errorf("job URL is required")
	}
	if opts.ResumePath == "" {
		return nil, fmt.Errorf("resume path is required")
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	runID := uuid.New().String()
	log.Info("starting run", zap.String("run_id", runID), zap.String("job_url", opts.JobURL))

	g, gCtx := errgroup.WithContext(ctx)

	var job *types.JobPosting
	var parsed *types.Resume
	var mu sync.Mutex

	g.Go(func() error {
		j, err := ingestJob(gCtx, &opts, runID, log)
		if err != nil {
			return err
		}
		mu.Lock()
		job = j
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		r, err := ingestResume(gCtx, &opts, runID, log)
		if err != nil {
			return err
		}
		mu.Lock()
		parsed = r
		mu.Unlock()
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	match := matching.MatchSkills(job.Skills, parsed.Skills)
	log.Info("matched skills",
		zap.String("run_id", runID),
		zap.Int("matched", len(match.MatchedSkills)),
		zap.Int("missing", len(match.MissingSkills)),
		zap.Float64("percentage", match.MatchPercentage))
	emitProgress(&opts, runID, StepMatch,
		fmt.Sprintf("Matched %d of %d required skills", len(match.MatchedSkills), len(job.Skills)), match)

	result := &Result{
		RunID:  runID,
		Job:    job,
		Resume: parsed,
		Match:  match,
	}

	if opts.APIKey != "" {
		drafts, err := composeDrafts(ctx, &opts, runID, job, parsed, log)
		if err != nil {
			return nil, err
		}
		result.Drafts = drafts
	} else {
		log.Info("no API key set, skipping email composition", zap.String("run_id", runID))
	}

	if opts.OutDir != "" {
		runDir, err := writeArtifacts(opts.OutDir, result)
		if err != nil {
			return nil, fmt.Errorf("writing artifacts failed: %w", err)
		}
		result.RunDir = runDir
		log.Info("wrote artifacts", zap.String("run_id", runID), zap.String("dir", runDir))
	}

	return result, nil
}

// ingestJob fetches the posting markup and parses it. When the static fetch
// fails or returns an SPA shell, the headless browser takes over if enabled.
func ingestJob(ctx context.Context, opts *RunOptions, runID string, log *zap.Logger) (*types.JobPosting, error) {
	markup, err := fetchMarkup(ctx, opts, log)
	if err != nil {
		return nil, fmt.Errorf("fetching job posting failed: %w", err)
	}
	emitProgress(opts, runID, StepFetchJob,
		fmt.Sprintf("Fetched %d bytes from %s", len(markup), opts.JobURL), nil)

	job, err := jobposting.Parse(markup, opts.JobURL)
	if err != nil {
		return nil, fmt.Errorf("parsing job posting failed: %w", err)
	}

	log.Info("parsed job posting",
		zap.String("run_id", runID),
		zap.String("title", job.Title),
		zap.String("company", job.Company),
		zap.Int("skills", len(job.Skills)))
	emitProgress(opts, runID, StepParseJob, jobposting.Summary(job), job)

	return job, nil
}

func fetchMarkup(ctx context.Context, opts *RunOptions, log *zap.Logger) (string, error) {
	result, err := fetch.URL(ctx, opts.JobURL, fetch.DefaultOptions())
	if err != nil {
		if !opts.UseBrowser {
			return "", err
		}
		log.Debug("static fetch failed, retrying with browser", zap.Error(err))
		return fetch.BrowserSimple(ctx, opts.JobURL, false)
	}

	if opts.UseBrowser && fetch.ShouldUseBrowser(result.HTML) {
		log.Debug("page looks like an SPA shell, refetching with browser",
			zap.Int("static_length", len(result.HTML)))
		html, berr := fetch.BrowserSimple(ctx, opts.JobURL, false)
		if berr != nil {
			log.Debug("browser fetch failed, keeping static content", zap.Error(berr))
			return result.HTML, nil
		}
		return html, nil
	}

	return result.HTML, nil
}

func ingestResume(ctx context.Context, opts *RunOptions, runID string, log *zap.Logger) (*types.Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(opts.ResumePath)
	if err != nil {
		return nil, fmt.Errorf("reading resume file failed: %w", err)
	}

	parsed, err := resume.ParseDocument(filepath.Base(opts.ResumePath), data)
	if err != nil {
		return nil, fmt.Errorf("parsing resume failed: %w", err)
	}

	log.Info("parsed resume",
		zap.String("run_id", runID),
		zap.String("name", parsed.Name),
		zap.Int("skills", len(parsed.Skills)),
		zap.Int("experience", len(parsed.Experience)))
	emitProgress(opts, runID, StepParseResume, resume.Summary(parsed), parsed)

	return parsed, nil
}

func composeDrafts(ctx context.Context, opts *RunOptions, runID string, job *types.JobPosting, r *types.Resume, log *zap.Logger) ([]types.EmailDraft, error) {
	client, err := llm.NewClient(ctx, llm.DefaultConfig(), opts.APIKey)
	if err != nil {
		return nil, fmt.Errorf("creating LLM client failed: %w", err)
	}
	defer func() { _ = client.Close() }()

	comp := composer.New(client)

	var drafts []types.EmailDraft
	if opts.Versions > 1 {
		drafts, err = comp.GenerateVersions(ctx, job, r, opts.Versions)
		if err != nil {
			return nil, fmt.Errorf("composing email versions failed: %w", err)
		}
	} else {
		draft, derr := comp.GenerateColdEmail(ctx, job, r, opts.Style)
		if derr != nil {
			return nil, fmt.Errorf("composing email failed: %w", derr)
		}
		drafts = []types.EmailDraft{*draft}
	}

	for i := range drafts {
		log.Info("composed email draft",
			zap.String("run_id", runID),
			zap.String("style", string(drafts[i].Style)),
			zap.String("subject", logger.TruncateForLog(drafts[i].Subject, 80)))
	}
	emitProgress(opts, runID, StepCompose,
		fmt.Sprintf("Composed %d email draft(s)", len(drafts)), drafts)

	return drafts, nil
}
