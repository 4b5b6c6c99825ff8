package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cppla/blog/models"
	"github.com/cppla/blog/utils"
)

// CommentService is the comment logic the handlers rely on.
type CommentService interface {
	GetCommentsByPostID(ctx context.Context, postID uint) ([]models.Comment, error)
	AddComment(ctx context.Context, postID uint, comment *models.Comment) (*models.Comment, error)
}

type commentRequest struct {
	Content *string `json:"content" binding:"omitempty,min=1,max=500"`
}

// CommentController lists and adds comments of a post.
type CommentController struct {
	comments CommentService
	sanitize bool
}

// NewCommentController creates a new CommentController instance.
func NewCommentController(comments CommentService, sanitize bool) *CommentController {
	return &CommentController{comments: comments, sanitize: sanitize}
}

// ListComments returns the comments of a post, empty when the post is unknown.
func (c *CommentController) ListComments(ctx *gin.Context) {
	postID, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	comments, err := c.comments.GetCommentsByPostID(ctx.Request.Context(), postID)
	if err != nil {
		respondError(ctx, err, "list comments")
		return
	}
	ctx.JSON(http.StatusOK, comments)
}

// CreateComment adds {content} to a post.
func (c *CommentController) CreateComment(ctx *gin.Context) {
	postID, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req commentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}
	if req.Content != nil && c.sanitize {
		clean := utils.Sanitize(*req.Content)
		if clean == "" {
			utils.Error(ctx, http.StatusBadRequest, utils.CodeValidation, "content must be at least 1 characters")
			return
		}
		req.Content = &clean
	}

	comment := &models.Comment{}
	if err := comment.SetContent(req.Content); err != nil {
		respondError(ctx, err, "create comment")
		return
	}

	created, err := c.comments.AddComment(ctx.Request.Context(), postID, comment)
	if err != nil {
		respondError(ctx, err, "create comment")
		return
	}
	ctx.JSON(http.StatusOK, created)
}
