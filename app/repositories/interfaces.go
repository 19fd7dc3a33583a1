package repositories

import (
	"errors"

	"pulsewave/app/models"
)

var (
	ErrNotFound = errors.New("record not found")
)

// PostRepository defines the interface for post data access
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id string) (*models.Post, error)
	List(limit int) ([]*models.Post, error)
	Increment(id, field string) (*models.Post, error)
}
