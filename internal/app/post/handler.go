package post

import (
	"net/http"
	"strings"

	"faden/internal/apperr"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	ListPosts(c *gin.Context)
	CreatePost(c *gin.Context)
	ListThreads(c *gin.Context)
	CreateThread(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// @Summary List posts of a board
// @Description Posts of the board, newest first
// @Tags Post
// @Produce json
// @Param slug path string true "Board slug"
// @Success 200 {object} PostListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/boards/{slug}/posts [get]
func (h *handler) ListPosts(c *gin.Context) {
	posts, err := h.service.ListPosts(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, PostListResponse{Posts: posts})
}

// @Summary Create post
// @Description Create a post in the board; author defaults to "anon"
// @Tags Post
// @Accept json
// @Produce json
// @Param slug path string true "Board slug"
// @Param post body CreatePostRequest true "Post to create"
// @Success 201 {object} Post
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/boards/{slug}/posts [post]
func (h *handler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	post, err := h.service.CreatePost(c.Request.Context(), c.Param("slug"), CreatePostInput{
		Title:  req.Title,
		Body:   req.Body,
		Author: req.Author,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

// @Summary List threads (legacy)
// @Description Same as listing posts, with the board given as a query parameter
// @Tags Thread
// @Produce json
// @Param board query string true "Board slug"
// @Success 200 {object} ThreadListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/threads [get]
func (h *handler) ListThreads(c *gin.Context) {
	boardSlug := strings.TrimSpace(c.Query("board"))
	if boardSlug == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing ?board=slug"})
		return
	}

	posts, err := h.service.ListPosts(c.Request.Context(), boardSlug)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ThreadListResponse{Threads: posts})
}

// @Summary Create thread (legacy)
// @Description Same as creating a post, with the board named in the body
// @Tags Thread
// @Accept json
// @Produce json
// @Param thread body CreateThreadRequest true "Thread to create"
// @Success 201 {object} ThreadResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/threads [post]
func (h *handler) CreateThread(c *gin.Context) {
	var req CreateThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	if strings.TrimSpace(req.BoardSlug) == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "board_slug required"})
		return
	}

	post, err := h.service.CreatePost(c.Request.Context(), req.BoardSlug, CreatePostInput{
		Title: req.Title,
		Body:  req.Body,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ThreadResponse{Thread: post})
}

func respondError(c *gin.Context, err error) {
	c.JSON(apperr.HTTPStatus(err), ErrorResponse{Error: apperr.Message(err)})
}
