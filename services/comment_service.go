package services

import (
	"context"
	"errors"

	"github.com/cppla/blog/models"
	"github.com/cppla/blog/repositories"
)

// CommentService handles comments of existing posts.
type CommentService struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// GetCommentsByPostID lists the comments of a post. An unknown post yields an empty list.
func (s *CommentService) GetCommentsByPostID(ctx context.Context, postID uint) ([]models.Comment, error) {
	return s.commentRepo.FindByPostID(ctx, postID)
}

// AddComment attaches comment to the post and stores it.
// The returned comment's post lists the new comment too.
func (s *CommentService) AddComment(ctx context.Context, postID uint, comment *models.Comment) (*models.Comment, error) {
	post, err := s.postRepo.FindByID(ctx, postID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := comment.SetPost(post); err != nil {
		return nil, err
	}
	saved, err := s.commentRepo.Save(ctx, comment)
	if err != nil {
		return nil, err
	}
	if err := post.AddComment(saved); err != nil {
		return nil, err
	}
	return saved, nil
}
