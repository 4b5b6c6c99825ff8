package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cppla/blog/models"
)

// GormPostRepository implements PostRepository on a relational store.
type GormPostRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new GormPostRepository
func NewPostRepository(db *gorm.DB) *GormPostRepository {
	return &GormPostRepository{db: db}
}

func orderComments(db *gorm.DB) *gorm.DB {
	return db.Order("comments.id ASC")
}

// FindAll returns every post with its comments, in id order.
func (r *GormPostRepository) FindAll(ctx context.Context) ([]models.Post, error) {
	posts := []models.Post{}
	if err := r.db.WithContext(ctx).Preload("Comments", orderComments).Order("posts.id ASC").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// FindByID loads a post and its comments. A missing post yields ErrNotFound.
func (r *GormPostRepository) FindByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).Preload("Comments", orderComments).First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load post %d: %w", id, err)
	}
	return &post, nil
}

// Save inserts a post without id, or updates title and content of an existing one.
// Comments without id are inserted with the post and comments detached since the
// post was loaded are deleted, all in one transaction.
func (r *GormPostRepository) Save(ctx context.Context, post *models.Post) (*models.Post, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if post.ID == 0 {
			if err := tx.Omit(clause.Associations).Create(post).Error; err != nil {
				return fmt.Errorf("insert post: %w", err)
			}
		} else {
			res := tx.Model(post).Omit(clause.Associations).Select("title", "content", "updated_at").Updates(post)
			if res.Error != nil {
				return fmt.Errorf("update post %d: %w", post.ID, res.Error)
			}
		}

		for i := range post.Comments {
			c := &post.Comments[i]
			if c.ID != 0 {
				continue
			}
			c.PostID = post.ID
			if err := tx.Omit(clause.Associations).Create(c).Error; err != nil {
				return fmt.Errorf("insert comment for post %d: %w", post.ID, err)
			}
		}

		if orphans := post.OrphanedCommentIDs(); len(orphans) > 0 {
			if err := tx.Where("post_id = ? AND id IN ?", post.ID, orphans).Delete(&models.Comment{}).Error; err != nil {
				return fmt.Errorf("remove orphaned comments of post %d: %w", post.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	post.MarkPersisted()
	return post, nil
}

// DeleteByID removes a post and every comment it owns. Unknown ids are a no-op.
func (r *GormPostRepository) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return fmt.Errorf("delete comments of post %d: %w", id, err)
		}
		if err := tx.Delete(&models.Post{}, id).Error; err != nil {
			return fmt.Errorf("delete post %d: %w", id, err)
		}
		return nil
	})
}
