package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/jonathan/resume-builder/internal/generation"
	"github.com/jonathan/resume-builder/internal/logging"
	"github.com/jonathan/resume-builder/internal/types"
)

// Generation stages reported on the stream
const (
	stageGitHub     = "github"
	stageGenerating = "generating"
	stageDone       = "done"
)

// decodeGenerateRequest reads and validates a generation request.
func (s *Server) decodeGenerateRequest(w http.ResponseWriter, r *http.Request) (*types.GenerateResumeRequest, error) {
	if s.generator == nil {
		return nil, &ErrUnavailable{Feature: "resume generation"}
	}

	var req types.GenerateResumeRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.JobDescription) == "" {
		return nil, &ErrValidation{Field: "job_description", Message: "must not be blank"}
	}
	return &req, nil
}

// buildInput turns a request into generation input, fetching the GitHub
// profile when a username is given. progress is called before each slow step.
func (s *Server) buildInput(ctx context.Context, req *types.GenerateResumeRequest, progress func(stage, message string)) (generation.Input, error) {
	in := generation.Input{
		JobDescription: req.JobDescription,
		LinkedInText:   req.LinkedInPDFText,
		ExistingResume: req.ExistingResume,
		MaxProjects:    req.MaxProjects,
	}
	for _, p := range req.LinkedInPosts {
		if content := strings.TrimSpace(p.Content); content != "" {
			in.Posts = append(in.Posts, content)
		}
	}

	username := strings.TrimSpace(req.GitHubUsername)
	if username == "" {
		return in, nil
	}
	if s.github == nil {
		return in, &ErrUnavailable{Feature: "GitHub"}
	}

	progress(stageGitHub, "fetching GitHub profile for "+username)
	profile, err := s.github.FetchProfile(ctx, username)
	if err != nil {
		return in, err
	}
	in.GitHub = profile
	return in, nil
}

// handleGenerateResume generates a resume and returns it with its structured record
func (s *Server) handleGenerateResume(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeGenerateRequest(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	in, err := s.buildInput(r.Context(), req, func(string, string) {})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.generator.Generate(r.Context(), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleGenerateResumeStream generates a resume and streams progress via SSE.
// Request errors are plain JSON responses; once the stream has started,
// failures arrive as an error event.
func (s *Server) handleGenerateResumeStream(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeGenerateRequest(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger := logging.FromContext(r.Context())
	progress := func(stage, message string) {
		if err := sse.WriteProgress(stage, message); err != nil {
			logger.Warn().Err(err).Str("stage", stage).Msg("error writing SSE event")
		}
	}

	in, err := s.buildInput(r.Context(), req, progress)
	if err != nil {
		logger.Error().Err(err).Msg("generation input failed")
		sse.WriteError(err)
		return
	}

	progress(stageGenerating, "generating resume")
	result, err := s.generator.Generate(r.Context(), in)
	if err != nil {
		logger.Error().Err(err).Msg("generation failed")
		sse.WriteError(err)
		return
	}

	progress(stageDone, "resume generated")
	if err := sse.WriteResult(result); err != nil {
		logger.Warn().Err(err).Msg("error writing SSE result")
	}
}
