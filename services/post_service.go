package services

import (
	"context"
	"errors"

	"github.com/cppla/blog/models"
	"github.com/cppla/blog/repositories"
)

// PostService exposes post operations to the HTTP layer.
type PostService struct {
	postRepo repositories.PostRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// GetAllPosts returns every post with its comments.
func (s *PostService) GetAllPosts(ctx context.Context) ([]models.Post, error) {
	return s.postRepo.FindAll(ctx)
}

// GetPostByID returns ErrPostNotFound when id is unknown.
func (s *PostService) GetPostByID(ctx context.Context, id uint) (*models.Post, error) {
	post, err := s.postRepo.FindByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	return post, nil
}

// CreatePost stores a new post and returns it with its id.
func (s *PostService) CreatePost(ctx context.Context, post *models.Post) (*models.Post, error) {
	post.SetComments(post.Comments)
	return s.postRepo.Save(ctx, post)
}

// UpdatePost copies title and content from details onto the stored post.
// Nothing is written when the post does not exist.
func (s *PostService) UpdatePost(ctx context.Context, id uint, details *models.Post) (*models.Post, error) {
	post, err := s.GetPostByID(ctx, id)
	if err != nil {
		return nil, err
	}
	post.Title = details.Title
	post.Content = details.Content
	return s.postRepo.Save(ctx, post)
}

// DeletePost removes the post and its comments. Unknown ids are ignored.
func (s *PostService) DeletePost(ctx context.Context, id uint) error {
	return s.postRepo.DeleteByID(ctx, id)
}
