package server

import (
	"net/http"
	"strings"

	"github.com/jonathan/resume-builder/internal/fetch"
	"github.com/jonathan/resume-builder/internal/types"
)

// PostsResponse is returned by POST /scrape-linkedin-posts
type PostsResponse struct {
	Posts []fetch.Post `json:"posts"`
}

// handleScrapeGitHub returns a GitHub user's profile and repositories
func (s *Server) handleScrapeGitHub(w http.ResponseWriter, r *http.Request) {
	if s.github == nil {
		s.writeError(w, r, &ErrUnavailable{Feature: "GitHub"})
		return
	}

	var req types.ScrapeGitHubRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	if err := req.Validate(); err != nil {
		s.writeError(w, r, err)
		return
	}

	profile, err := s.github.FetchProfile(r.Context(), req.Username)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, profile)
}

// handleScrapeLinkedInPosts renders each post URL and returns the post bodies
// that could be extracted. Unreadable posts are left out.
func (s *Server) handleScrapeLinkedInPosts(w http.ResponseWriter, r *http.Request) {
	if s.posts == nil {
		s.writeError(w, r, &ErrUnavailable{Feature: "post scraping"})
		return
	}

	var req types.ScrapePostsRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, r, err)
		return
	}

	posts := s.posts.ScrapePosts(r.Context(), req.URLs)
	if posts == nil {
		posts = []fetch.Post{}
	}

	s.jsonResponse(w, http.StatusOK, PostsResponse{Posts: posts})
}
