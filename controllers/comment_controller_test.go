package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/cppla/blog/models"
	"github.com/cppla/blog/services"
)

func itoa(i int) string { return strconv.Itoa(i) }

func commentRouter(svc CommentService, sanitize bool) *gin.Engine {
	cc := NewCommentController(svc, sanitize)
	r := gin.New()
	r.GET("/posts/:id/comments", cc.ListComments)
	r.POST("/posts/:id/comments", cc.CreateComment)
	return r
}

func TestListComments(t *testing.T) {
	svc := new(mockCommentService)
	post := models.NewPostWithComments(1, "Hello World", "body", nil)
	svc.On("GetCommentsByPostID", mock.Anything, uint(1)).
		Return([]models.Comment{{ID: 1, Content: "Nice post", PostID: 1, Post: post}}, nil)
	svc.On("GetCommentsByPostID", mock.Anything, uint(2)).Return([]models.Comment{}, nil)
	r := commentRouter(svc, false)

	w := doRequest(r, http.MethodGet, "/posts/1/comments", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"content":"Nice post"`)
	assert.Contains(t, w.Body.String(), `"post":{"id":1`)

	w = doRequest(r, http.MethodGet, "/posts/2/comments", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())

	w = doRequest(r, http.MethodGet, "/posts/x/comments", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateComment(t *testing.T) {
	svc := new(mockCommentService)
	post := models.NewPostWithComments(1, "Hello World", "body", nil)
	created := &models.Comment{ID: 1, Content: "Nice post", PostID: 1, Post: post}
	svc.On("AddComment", mock.Anything, uint(1), mock.MatchedBy(func(c *models.Comment) bool {
		return c.Content == "Nice post" && c.ID == 0
	})).Return(created, nil)

	w := doRequest(commentRouter(svc, false), http.MethodPost, "/posts/1/comments", gin.H{"content": "Nice post"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":1`)
	assert.Contains(t, w.Body.String(), `"post_id":1`)
	assert.Contains(t, w.Body.String(), `"post":{"id":1`)
	svc.AssertExpectations(t)
}

func TestCreateCommentMissingPost(t *testing.T) {
	svc := new(mockCommentService)
	svc.On("AddComment", mock.Anything, uint(7), mock.Anything).Return(nil, services.ErrPostNotFound)

	w := doRequest(commentRouter(svc, false), http.MethodPost, "/posts/7/comments", gin.H{"content": "hello"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestCreateCommentValidation(t *testing.T) {
	cases := []struct {
		name    string
		body    interface{}
		code    int
		message string
	}{
		{"null content", gin.H{"content": nil}, 40022, "cannot set null content"},
		{"absent content", gin.H{}, 40022, "cannot set null content"},
		{"empty content", gin.H{"content": ""}, 40021, "content must be at least 1 characters"},
		{"long content", gin.H{"content": strings.Repeat("y", 501)}, 40021, "content must be at most 500 characters"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(mockCommentService)

			w := doRequest(commentRouter(svc, false), http.MethodPost, "/posts/1/comments", tc.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tc.message)
			assert.Contains(t, w.Body.String(), `"code":`+itoa(tc.code))
			svc.AssertNotCalled(t, "AddComment", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCreateCommentSanitizingEnabled(t *testing.T) {
	svc := new(mockCommentService)
	created := &models.Comment{ID: 1, Content: "<b>hi</b>", PostID: 1}
	svc.On("AddComment", mock.Anything, uint(1), mock.MatchedBy(func(c *models.Comment) bool {
		return c.Content == "<b>hi</b>"
	})).Return(created, nil)
	r := commentRouter(svc, true)

	w := doRequest(r, http.MethodPost, "/posts/1/comments", gin.H{"content": "<b>hi</b><script>x()</script>"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodPost, "/posts/1/comments", gin.H{"content": "<script>x()</script>"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "content must be at least 1 characters")
	svc.AssertNumberOfCalls(t, "AddComment", 1)
}

func TestCreateCommentKeepsTextAsSent(t *testing.T) {
	text := `Tom & Jerry's "best" <3`
	svc := new(mockCommentService)
	svc.On("AddComment", mock.Anything, uint(1), mock.MatchedBy(func(c *models.Comment) bool {
		return c.Content == text
	})).Return(&models.Comment{ID: 1, Content: text, PostID: 1}, nil)

	w := doRequest(commentRouter(svc, false), http.MethodPost, "/posts/1/comments", gin.H{"content": text})

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}
