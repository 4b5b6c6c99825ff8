package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNewComment(t *testing.T) {
	post := NewPostWithComments(1, "Hello World", "Body", nil)

	tests := []struct {
		name    string
		content *string
		post    *Post
		wantErr error
	}{
		{name: "valid comment", content: strPtr("Nice post"), post: post},
		{name: "null content", content: nil, post: post, wantErr: ErrNullContent},
		{name: "null post", content: strPtr("Nice post"), post: nil, wantErr: ErrNullPost},
		{name: "both null reports content first", content: nil, post: nil, wantErr: ErrNullContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewComment(tt.content, tt.post)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Nice post", c.Content)
			assert.Equal(t, post, c.Post)
			assert.Equal(t, post.ID, c.PostID)
		})
	}
}

func TestCommentSetters(t *testing.T) {
	c := &Comment{Content: "original"}

	t.Run("set null content keeps previous value", func(t *testing.T) {
		err := c.SetContent(nil)
		assert.ErrorIs(t, err, ErrNullContent)
		assert.EqualError(t, err, "cannot set null content")
		assert.Equal(t, "original", c.Content)
	})

	t.Run("set content", func(t *testing.T) {
		require.NoError(t, c.SetContent(strPtr("updated")))
		assert.Equal(t, "updated", c.Content)
	})

	t.Run("set null post", func(t *testing.T) {
		err := c.SetPost(nil)
		assert.ErrorIs(t, err, ErrNullPost)
		assert.EqualError(t, err, "post cannot be null")
		assert.Nil(t, c.Post)
	})

	t.Run("set post", func(t *testing.T) {
		post := NewPostWithComments(4, "Hello World", "Body", nil)
		require.NoError(t, c.SetPost(post))
		assert.Equal(t, uint(4), c.PostID)
		assert.Same(t, post, c.Post)
	})
}

func TestCommentBeforeSave(t *testing.T) {
	t.Run("ownerless comment is refused", func(t *testing.T) {
		c := &Comment{Content: "orphan"}
		assert.ErrorIs(t, c.BeforeSave(nil), ErrNullPost)
	})

	t.Run("post id follows post", func(t *testing.T) {
		c := &Comment{Content: "x", PostID: 1, Post: &Post{ID: 9}}
		require.NoError(t, c.BeforeSave(nil))
		assert.Equal(t, uint(9), c.PostID)
	})
}

func TestCommentJSON(t *testing.T) {
	post := NewPostWithComments(1, "Hello World", "Body", nil)
	c, err := NewComment(strPtr("Nice post"), post)
	require.NoError(t, err)
	c.ID = 5

	b, err := json.Marshal(c)
	require.NoError(t, err)

	var decoded struct {
		ID     uint `json:"id"`
		PostID uint `json:"post_id"`
		Post   struct {
			ID    uint   `json:"id"`
			Title string `json:"title"`
		} `json:"post"`
	}
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, uint(5), decoded.ID)
	assert.Equal(t, uint(1), decoded.PostID)
	assert.Equal(t, uint(1), decoded.Post.ID)
	assert.Equal(t, "Hello World", decoded.Post.Title)

	c.Post = nil
	b, err = json.Marshal(c)
	require.NoError(t, err)
	assert.NotContains(t, string(b), `"post":`)
}
