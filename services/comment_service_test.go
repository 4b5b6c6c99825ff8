package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cppla/blog/models"
	"github.com/cppla/blog/repositories"
)

func TestGetCommentsByPostID(t *testing.T) {
	ctx := context.Background()
	commentRepo := new(mockCommentRepository)
	postRepo := new(mockPostRepository)
	comments := []models.Comment{{ID: 1, Content: "a", PostID: 3}, {ID: 2, Content: "b", PostID: 3}}
	commentRepo.On("FindByPostID", ctx, uint(3)).Return(comments, nil)
	commentRepo.On("FindByPostID", ctx, uint(4)).Return([]models.Comment{}, nil)

	svc := NewCommentService(commentRepo, postRepo)

	got, err := svc.GetCommentsByPostID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, comments, got)

	got, err = svc.GetCommentsByPostID(ctx, 4)
	require.NoError(t, err)
	assert.Empty(t, got)

	// listing never checks that the post exists
	postRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestAddComment(t *testing.T) {
	ctx := context.Background()

	t.Run("existing post", func(t *testing.T) {
		commentRepo := new(mockCommentRepository)
		postRepo := new(mockPostRepository)
		post := models.NewPostWithComments(1, "Hello World", "body", nil)
		comment := &models.Comment{Content: "Nice post"}
		postRepo.On("FindByID", ctx, uint(1)).Return(post, nil)
		commentRepo.On("Save", ctx, comment).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Comment).ID = 10
		}).Return(comment, nil)

		got, err := NewCommentService(commentRepo, postRepo).AddComment(ctx, 1, comment)
		require.NoError(t, err)
		assert.Equal(t, uint(10), got.ID)
		assert.Same(t, post, got.Post)
		assert.Equal(t, uint(1), got.PostID)
		require.Len(t, got.Post.Comments, 1)
		assert.Equal(t, uint(10), got.Post.Comments[0].ID)
		assert.Nil(t, got.Post.Comments[0].Post)
		commentRepo.AssertExpectations(t)
	})

	t.Run("missing post", func(t *testing.T) {
		commentRepo := new(mockCommentRepository)
		postRepo := new(mockPostRepository)
		postRepo.On("FindByID", ctx, uint(2)).Return(nil, repositories.ErrNotFound)

		got, err := NewCommentService(commentRepo, postRepo).AddComment(ctx, 2, &models.Comment{Content: "x"})
		assert.Nil(t, got)
		assert.ErrorIs(t, err, ErrPostNotFound)
		commentRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}
