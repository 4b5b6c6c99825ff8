package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	// ErrNullComment is returned when a nil comment is attached to a post.
	ErrNullComment = errors.New("comment cannot be nil")
	// ErrCommentNotAttached is returned when removing a comment the post does not hold.
	ErrCommentNotAttached = errors.New("comment not found")
)

// Post represents a blog article. A post exclusively owns its comments:
// deleting the post deletes them, and a comment removed from Comments is deleted on save.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title" validate:"notblank,min=5,max=255"`
	Content   string    `gorm:"type:text;not null" json:"content" validate:"notblank"`
	Comments  []Comment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"comments" validate:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// ids of the comments as last read from or written to the store
	persisted map[uint]struct{}
}

// NewPost builds an unsaved post with an empty comment collection.
func NewPost(title, content string) *Post {
	return &Post{Title: title, Content: content, Comments: []Comment{}}
}

// NewPostWithComments builds a post with every field given; nil comments become an empty collection.
func NewPostWithComments(id uint, title, content string, comments []Comment) *Post {
	p := &Post{ID: id, Title: title, Content: content}
	p.SetComments(comments)
	return p
}

// SetComments replaces the comment collection. A nil slice is stored as an empty one.
func (p *Post) SetComments(comments []Comment) {
	if comments == nil {
		comments = []Comment{}
	}
	p.Comments = comments
}

// AddComment appends c to the collection and points it at this post.
// The appended copy carries no back-pointer so the post stays acyclic when encoded.
func (p *Post) AddComment(c *Comment) error {
	if c == nil {
		return ErrNullComment
	}
	c.PostID = p.ID
	owned := *c
	owned.Post = nil
	p.Comments = append(p.Comments, owned)
	return nil
}

// RemoveComment detaches the comment with the given id. Saving the post afterwards deletes it.
func (p *Post) RemoveComment(commentID uint) error {
	for i, c := range p.Comments {
		if c.ID == commentID {
			p.Comments = append(p.Comments[:i], p.Comments[i+1:]...)
			return nil
		}
	}
	return ErrCommentNotAttached
}

// Validate checks the field constraints of a post.
func (p *Post) Validate() error {
	return validate.Struct(p)
}

// MarkPersisted records the current comment collection as the stored state.
// Repositories call it after loading or saving a post.
func (p *Post) MarkPersisted() {
	if p.Comments == nil {
		p.Comments = []Comment{}
	}
	p.persisted = make(map[uint]struct{}, len(p.Comments))
	for _, c := range p.Comments {
		if c.ID != 0 {
			p.persisted[c.ID] = struct{}{}
		}
	}
}

// OrphanedCommentIDs lists comments that were persisted with the post but are no
// longer in its collection. Comments created elsewhere after the post was loaded are never included.
func (p *Post) OrphanedCommentIDs() []uint {
	if len(p.persisted) == 0 {
		return nil
	}
	kept := make(map[uint]struct{}, len(p.Comments))
	for _, c := range p.Comments {
		kept[c.ID] = struct{}{}
	}
	var orphans []uint
	for id := range p.persisted {
		if _, ok := kept[id]; !ok {
			orphans = append(orphans, id)
		}
	}
	return orphans
}

// BeforeSave rejects posts that violate the field constraints.
func (p *Post) BeforeSave(tx *gorm.DB) error {
	return p.Validate()
}

// AfterFind guarantees a non-nil collection and snapshots it for orphan detection.
func (p *Post) AfterFind(tx *gorm.DB) error {
	p.MarkPersisted()
	return nil
}
