package mock

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"pulsewave/app/models"
	"pulsewave/app/repositories"
)

// PostRepository is a map-backed PostRepository for tests.
type PostRepository struct {
	posts map[string]*models.Post
	mutex sync.RWMutex

	// FailNext makes the next call return an error, for exercising the
	// degraded paths (seed fallback, reaction rollback).
	FailNext bool
}

func NewPostRepository() *PostRepository {
	return &PostRepository{
		posts: make(map[string]*models.Post),
	}
}

func (m *PostRepository) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.posts = make(map[string]*models.Post)
}

func (m *PostRepository) failed() bool {
	if m.FailNext {
		m.FailNext = false
		return true
	}
	return false
}

func (m *PostRepository) Create(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.failed() {
		return fmt.Errorf("store unavailable")
	}

	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	post.BeforeCreate()
	clone := *post
	m.posts[post.ID] = &clone
	return nil
}

func (m *PostRepository) GetByID(id string) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.failed() {
		return nil, fmt.Errorf("store unavailable")
	}

	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	clone := *post
	return &clone, nil
}

func (m *PostRepository) List(limit int) ([]*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.failed() {
		return nil, fmt.Errorf("store unavailable")
	}

	var posts []*models.Post
	for _, post := range m.posts {
		clone := *post
		posts = append(posts, &clone)
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	if limit > 0 && len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

func (m *PostRepository) Increment(id, field string) (*models.Post, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.failed() {
		return nil, fmt.Errorf("store unavailable")
	}

	if !models.IsReactionField(field) {
		return nil, fmt.Errorf("invalid reaction field %q", field)
	}
	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	if err := post.Bump(field); err != nil {
		return nil, err
	}
	clone := *post
	return &clone, nil
}
