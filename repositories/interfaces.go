package repositories

import (
	"context"
	"errors"

	"github.com/cppla/blog/models"
)

// ErrNotFound is returned by lookups that match no row.
var ErrNotFound = errors.New("record not found")

// PostRepository defines the interface for post data access
type PostRepository interface {
	FindAll(ctx context.Context) ([]models.Post, error)
	FindByID(ctx context.Context, id uint) (*models.Post, error)
	Save(ctx context.Context, post *models.Post) (*models.Post, error)
	DeleteByID(ctx context.Context, id uint) error
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	FindByPostID(ctx context.Context, postID uint) ([]models.Comment, error)
	Save(ctx context.Context, comment *models.Comment) (*models.Comment, error)
}
