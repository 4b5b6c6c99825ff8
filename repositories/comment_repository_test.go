package repositories_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cppla/blog/models"
	"github.com/cppla/blog/repositories"
	"github.com/cppla/blog/testutil"
)

func TestCommentRepositoryFindByPostID(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	posts := repositories.NewPostRepository(db)
	comments := repositories.NewCommentRepository(db)
	ctx := context.Background()

	first, err := posts.Save(ctx, models.NewPost("First post", "body"))
	require.NoError(t, err)
	second, err := posts.Save(ctx, models.NewPost("Second post", "body"))
	require.NoError(t, err)

	for _, text := range []string{"a", "b", "c"} {
		c, err := models.NewComment(strPtr(text), first)
		require.NoError(t, err)
		_, err = comments.Save(ctx, c)
		require.NoError(t, err)
	}
	other, err := models.NewComment(strPtr("elsewhere"), second)
	require.NoError(t, err)
	_, err = comments.Save(ctx, other)
	require.NoError(t, err)

	list, err := comments.FindByPostID(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, c := range list {
		assert.Equal(t, []string{"a", "b", "c"}[i], c.Content)
		assert.Equal(t, first.ID, c.PostID)
		require.NotNil(t, c.Post)
		assert.Equal(t, "First post", c.Post.Title)
	}
	assert.Less(t, list[0].ID, list[1].ID)
	assert.Less(t, list[1].ID, list[2].ID)
}

func TestCommentRepositoryFindByPostIDEmpty(t *testing.T) {
	comments := repositories.NewCommentRepository(testutil.NewSQLiteDB(t))

	list, err := comments.FindByPostID(context.Background(), 404)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestCommentRepositorySave(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	posts := repositories.NewPostRepository(db)
	comments := repositories.NewCommentRepository(db)
	ctx := context.Background()

	post, err := posts.Save(ctx, models.NewPost("Owner post", "body"))
	require.NoError(t, err)

	c, err := models.NewComment(strPtr("Nice post"), post)
	require.NoError(t, err)
	saved, err := comments.Save(ctx, c)
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)
	assert.Equal(t, post.ID, saved.PostID)
	assert.Same(t, post, saved.Post)

	require.NoError(t, saved.SetContent(strPtr("Edited")))
	_, err = comments.Save(ctx, saved)
	require.NoError(t, err)

	list, err := comments.FindByPostID(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Edited", list[0].Content)
	assert.Equal(t, saved.ID, list[0].ID)

	// the owning post is not rewritten through the comment
	post.Title = "Changed locally"
	_, err = comments.Save(ctx, saved)
	require.NoError(t, err)
	reloaded, err := posts.FindByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Owner post", reloaded.Title)
}

func TestCommentRepositorySaveWithoutPost(t *testing.T) {
	comments := repositories.NewCommentRepository(testutil.NewSQLiteDB(t))

	_, err := comments.Save(context.Background(), &models.Comment{Content: "orphan"})
	assert.ErrorIs(t, err, models.ErrNullPost)
}
