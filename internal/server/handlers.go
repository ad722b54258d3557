package server

import (
	"encoding/json"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathan/cold-outreach/internal/composer"
	"github.com/jonathan/cold-outreach/internal/fetch"
	"github.com/jonathan/cold-outreach/internal/jobposting"
	"github.com/jonathan/cold-outreach/internal/llm"
	"github.com/jonathan/cold-outreach/internal/matching"
	"github.com/jonathan/cold-outreach/internal/resume"
	"github.com/jonathan/cold-outreach/internal/types"
)

// multipartOverhead is the slack allowed on top of the resume size limit for
// multipart framing.
const multipartOverhead = 1 << 20

// MatchResponse is the response body for POST /match.
type MatchResponse struct {
	Match              types.SkillMatchResult  `json:"match"`
	RelevantExperience []types.ExperienceEntry `json:"relevant_experience,omitempty"`
}

// handleExtractJob fetches a job posting URL and returns the structured posting.
func (s *Server) handleExtractJob(w http.ResponseWriter, r *http.Request) {
	var req types.ExtractJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	markup, err := s.fetchMarkup(r, req.URL, req.UseBrowser)
	if err != nil {
		s.log.Warn("job fetch failed", zap.String("url", req.URL), zap.Error(err))
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	job, err := jobposting.Parse(markup, req.URL)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, job)
}

func (s *Server) fetchMarkup(r *http.Request, url string, useBrowser bool) (string, error) {
	ctx := r.Context()

	result, err := fetch.URL(ctx, url, fetch.DefaultOptions())
	if err != nil {
		if !useBrowser && !s.useBrowser {
			return "", err
		}
		return fetch.BrowserSimple(ctx, url, false)
	}

	if (useBrowser || s.useBrowser) && fetch.ShouldUseBrowser(result.HTML) {
		html, berr := fetch.BrowserSimple(ctx, url, false)
		if berr == nil {
			return html, nil
		}
		s.log.Debug("browser fetch failed, keeping static content", zap.Error(berr))
	}

	return result.HTML, nil
}

// handleParseResume accepts a multipart upload and returns the parsed resume.
// The file is expected in the "file" form field.
func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, resume.MaxFileSize+multipartOverhead)

	if err := r.ParseMultipartForm(resume.MaxFileSize); err != nil {
		s.errorResponse(w, http.StatusRequestEntityTooLarge, "Upload too large or malformed: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing 'file' form field: "+err.Error())
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read upload: "+err.Error())
		return
	}

	parsed, err := resume.ParseDocument(header.Filename, data)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, parsed)
}

// handleMatch computes the skill overlap and relevant experience for a
// previously extracted job and resume.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req types.MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	match := matching.MatchSkills(req.Job.Skills, req.Resume.Skills)
	relevant := matching.RankRelevantExperience(req.Job.Requirements, req.Resume.Experience)

	s.jsonResponse(w, http.StatusOK, MatchResponse{
		Match:              match,
		RelevantExperience: relevant,
	})
}

// handleCompose generates an email draft for a job and resume pair.
func (s *Server) handleCompose(w http.ResponseWriter, r *http.Request) {
	if s.apiKey == "" {
		s.errorResponse(w, http.StatusServiceUnavailable, "Email composition is not configured: missing API key")
		return
	}

	var req types.ComposeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	client, err := llm.NewClient(r.Context(), llm.DefaultConfig(), s.apiKey)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create LLM client: "+err.Error())
		return
	}
	defer func() { _ = client.Close() }()

	draft, err := composer.New(client).GenerateColdEmail(r.Context(), req.Job, req.Resume, req.Style)
	if err != nil {
		s.log.Warn("compose failed", zap.Error(err))
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, draft)
}
