package api

import (
	"net/http"
	"strings"

	"github.com/phrazzld/quire/internal/api/shared"
	"github.com/phrazzld/quire/internal/service"
)

// PostHandler serves read-only JSON views of posts.
type PostHandler struct {
	posts service.PostService
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(posts service.PostService) *PostHandler {
	if posts == nil {
		panic("posts cannot be nil")
	}
	return &PostHandler{posts: posts}
}

// ListPosts handles GET /api/posts. The optional q parameter filters posts
// whose name contains it.
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	posts, err := h.posts.ListPosts(r.Context(), query)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list posts")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, postsToSummaries(posts))
}

// GetPost handles GET /api/posts/{id}.
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	post, err := h.posts.GetPost(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, postToResponse(post))
}
