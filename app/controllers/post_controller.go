package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"pulsewave/app/auth"
	"pulsewave/app/models"
	"pulsewave/app/services"
)

// PostController handles HTTP requests for the feed
type PostController struct {
	postService *services.PostService
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService) *PostController {
	return &PostController{postService: postService}
}

// feedResponse is the GET /api/posts body. Fallback marks a degraded fetch
// served from seed data.
type feedResponse struct {
	Posts    []*models.Post `json:"posts"`
	Fallback bool           `json:"fallback,omitempty"`
	Error    string         `json:"error,omitempty"`
}

// Index lists the feed, newest first. A datastore failure is absorbed: the
// client gets the seed set with fallback=true and a 200, never an error
// status.
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.postService.ListPosts(services.DefaultFeedLimit)
	if err != nil {
		log.Printf("[api/posts] fetch error: %v", err)
		seeds := models.SeedPosts(time.Now())
		fallback := make([]*models.Post, len(seeds))
		for i := range seeds {
			fallback[i] = &seeds[i]
		}
		sendJSON(w, http.StatusOK, feedResponse{
			Posts:    fallback,
			Fallback: true,
			Error:    "The datastore is not available.",
		})
		return
	}
	if posts == nil {
		posts = []*models.Post{}
	}
	sendJSON(w, http.StatusOK, feedResponse{Posts: posts})
}

type createRequest struct {
	Content string           `json:"content"`
	Tags    services.TagList `json:"tags"`
}

// Create handles an authenticated composer submission.
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.FromContext(r.Context())
	if !ok {
		sendError(w, "Unauthorized.", http.StatusUnauthorized)
		return
	}

	var payload createRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		sendError(w, "Invalid JSON.", http.StatusBadRequest)
		return
	}

	post, err := pc.postService.CreatePost(session, payload.Content, payload.Tags.Join())
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			sendError(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Printf("[api/posts] insert error: %v", err)
		sendError(w, "Failed to create post.", http.StatusInternalServerError)
		return
	}

	sendJSON(w, http.StatusCreated, map[string]*models.Post{"post": post})
}

type reactRequest struct {
	Field string `json:"field"`
}

// React applies a single reaction increment and returns the canonical post.
func (pc *PostController) React(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var payload reactRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		sendError(w, "Invalid field.", http.StatusBadRequest)
		return
	}

	post, err := pc.postService.React(id, payload.Field)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			sendError(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Printf("[api/posts/%s] increment error: %v", id, err)
		sendError(w, "Failed to update reaction.", http.StatusInternalServerError)
		return
	}

	sendJSON(w, http.StatusOK, map[string]*models.Post{"post": post})
}
