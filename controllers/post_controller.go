package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cppla/blog/models"
	"github.com/cppla/blog/utils"
)

// PostService is the post logic the handlers rely on.
type PostService interface {
	GetAllPosts(ctx context.Context) ([]models.Post, error)
	GetPostByID(ctx context.Context, id uint) (*models.Post, error)
	CreatePost(ctx context.Context, post *models.Post) (*models.Post, error)
	UpdatePost(ctx context.Context, id uint, details *models.Post) (*models.Post, error)
	DeletePost(ctx context.Context, id uint) error
}

type postRequest struct {
	Title   string `json:"title" binding:"notblank,min=5,max=255"`
	Content string `json:"content" binding:"notblank"`
}

// PostController manages CRUD operations for posts.
type PostController struct {
	posts    PostService
	sanitize bool
}

// NewPostController creates a new PostController instance.
// Text is stored as sent. With sanitize set, titles lose all markup and content keeps only
// safe HTML; length limits always apply to the text as sent.
func NewPostController(posts PostService, sanitize bool) *PostController {
	return &PostController{posts: posts, sanitize: sanitize}
}

// ListPosts returns every post with its comments.
func (p *PostController) ListPosts(ctx *gin.Context) {
	posts, err := p.posts.GetAllPosts(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, "list posts")
		return
	}
	ctx.JSON(http.StatusOK, posts)
}

// GetPost returns a single post.
func (p *PostController) GetPost(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	post, err := p.posts.GetPostByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err, "load post")
		return
	}
	ctx.JSON(http.StatusOK, post)
}

// CreatePost stores a new post from {title, content}.
func (p *PostController) CreatePost(ctx *gin.Context) {
	post, ok := p.bindPost(ctx)
	if !ok {
		return
	}
	created, err := p.posts.CreatePost(ctx.Request.Context(), post)
	if err != nil {
		respondError(ctx, err, "create post")
		return
	}
	ctx.JSON(http.StatusOK, created)
}

// UpdatePost replaces title and content of an existing post.
func (p *PostController) UpdatePost(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	details, ok := p.bindPost(ctx)
	if !ok {
		return
	}
	updated, err := p.posts.UpdatePost(ctx.Request.Context(), id, details)
	if err != nil {
		respondError(ctx, err, "update post")
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeletePost removes a post and its comments. Unknown ids still answer 204.
func (p *PostController) DeletePost(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	if err := p.posts.DeletePost(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err, "delete post")
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (p *PostController) bindPost(ctx *gin.Context) (*models.Post, bool) {
	var req postRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return nil, false
	}

	post := models.NewPost(req.Title, req.Content)
	if !p.sanitize {
		return post, true
	}
	post.Title = utils.SanitizeText(post.Title)
	post.Content = utils.Sanitize(post.Content)
	// markup-only input can be blank once sanitized
	switch {
	case strings.TrimSpace(post.Title) == "":
		utils.Error(ctx, http.StatusBadRequest, utils.CodeValidation, "title cannot be blank")
		return nil, false
	case strings.TrimSpace(post.Content) == "":
		utils.Error(ctx, http.StatusBadRequest, utils.CodeValidation, "content cannot be blank")
		return nil, false
	}
	return post, true
}
