package services

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"pulsewave/app/auth"
	"pulsewave/app/models"
	"pulsewave/app/pulse"
	"pulsewave/app/repositories"
)

// ErrValidation marks failures caused by bad input. Controllers translate
// it to 400; everything else on the write path is a 500.
var ErrValidation = errors.New("validation failed")

type validationError struct {
	msg string
}

func (e validationError) Error() string { return e.msg }

func (e validationError) Is(target error) bool { return target == ErrValidation }

func invalidf(format string, args ...interface{}) error {
	return validationError{msg: fmt.Sprintf(format, args...)}
}

// DefaultFeedLimit caps how many posts a single fetch returns.
const DefaultFeedLimit = 100

// PostService handles business logic for the feed
type PostService struct {
	postRepo repositories.PostRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// CreatePost creates a post on behalf of an authenticated session. Author
// and handle are derived from the identity, never taken from the payload.
func (s *PostService) CreatePost(session *auth.Session, content, tagsInput string) (*models.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, invalidf("Content is required.")
	}
	if utf8.RuneCountInString(content) > pulse.MaxCharacters {
		return nil, invalidf("Content exceeds character limit.")
	}

	author := strings.TrimSpace(session.Name)
	if author == "" {
		author = "Guest"
	}

	derived := pulse.DeriveHandleFromIdentity(session.Name, session.Email)
	if derived == "" {
		derived = session.ID
	}
	handle := pulse.NormalizeHandle(derived)
	if handle == "" {
		handle = "@guest"
	}

	userID := session.ID
	if userID == "" {
		userID = session.Email
	}

	post := &models.Post{
		Author:    author,
		Handle:    handle,
		Content:   content,
		Tags:      pulse.ParseTags(tagsInput),
		AvatarHue: pulse.AvatarHueFromHandle(handle),
		UserID:    userID,
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// ListPosts retrieves the feed, newest first.
func (s *PostService) ListPosts(limit int) ([]*models.Post, error) {
	if limit < 1 || limit > DefaultFeedLimit {
		limit = DefaultFeedLimit
	}
	return s.postRepo.List(limit)
}

// React applies a single reaction increment and returns the canonical
// updated post.
func (s *PostService) React(id, field string) (*models.Post, error) {
	if !models.IsReactionField(field) {
		return nil, invalidf("Invalid field.")
	}
	return s.postRepo.Increment(id, field)
}

// SeedPosts inserts the fixed demo posts, returning how many were written.
func (s *PostService) SeedPosts() (int, error) {
	seeds := models.SeedPosts(time.Now())
	for i := range seeds {
		if err := s.postRepo.Create(&seeds[i]); err != nil {
			return i, err
		}
	}
	return len(seeds), nil
}
