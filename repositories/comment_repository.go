package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cppla/blog/models"
)

// GormCommentRepository implements CommentRepository on a relational store.
type GormCommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new GormCommentRepository
func NewCommentRepository(db *gorm.DB) *GormCommentRepository {
	return &GormCommentRepository{db: db}
}

// FindByPostID returns the comments of a post in id order, each with its post attached.
// It does not check that the post exists.
func (r *GormCommentRepository) FindByPostID(ctx context.Context, postID uint) ([]models.Comment, error) {
	comments := []models.Comment{}
	err := r.db.WithContext(ctx).
		Preload("Post").
		Where("post_id = ?", postID).
		Order("id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("list comments of post %d: %w", postID, err)
	}
	return comments, nil
}

// Save inserts a comment without id or updates the content and owner of an existing one.
// The attached post is never written through a comment.
func (r *GormCommentRepository) Save(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	db := r.db.WithContext(ctx).Omit(clause.Associations)
	if comment.ID == 0 {
		if err := db.Create(comment).Error; err != nil {
			return nil, fmt.Errorf("insert comment: %w", err)
		}
		return comment, nil
	}
	if err := db.Model(comment).Select("content", "post_id", "updated_at").Updates(comment).Error; err != nil {
		return nil, fmt.Errorf("update comment %d: %w", comment.ID, err)
	}
	return comment, nil
}

var (
	_ PostRepository    = (*GormPostRepository)(nil)
	_ CommentRepository = (*GormCommentRepository)(nil)
)
