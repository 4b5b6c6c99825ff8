package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	// ErrNullContent is returned when a comment is given no content at all.
	ErrNullContent = errors.New("cannot set null content")
	// ErrNullPost is returned when a comment is given no owning post.
	ErrNullPost = errors.New("post cannot be null")
)

// Comment is a reply that belongs to exactly one post.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	PostID    uint      `gorm:"index;not null" json:"post_id"`
	Post      *Post     `gorm:"foreignKey:PostID" json:"post,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewComment builds a comment owned by post. Both arguments are mandatory.
func NewComment(content *string, post *Post) (*Comment, error) {
	c := &Comment{}
	if err := c.SetContent(content); err != nil {
		return nil, err
	}
	if err := c.SetPost(post); err != nil {
		return nil, err
	}
	return c, nil
}

// SetContent replaces the comment text. A nil pointer means the client sent no content.
func (c *Comment) SetContent(content *string) error {
	if content == nil {
		return ErrNullContent
	}
	c.Content = *content
	return nil
}

// SetPost sets the owning post and its id.
func (c *Comment) SetPost(post *Post) error {
	if post == nil {
		return ErrNullPost
	}
	c.Post = post
	c.PostID = post.ID
	return nil
}

// BeforeSave keeps PostID in line with Post and refuses ownerless comments.
func (c *Comment) BeforeSave(tx *gorm.DB) error {
	if c.Post != nil && c.Post.ID != 0 {
		c.PostID = c.Post.ID
	}
	if c.PostID == 0 {
		return ErrNullPost
	}
	return nil
}
