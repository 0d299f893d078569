package board

import (
	"net/http"

	"faden/internal/apperr"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	GetAllBoards(c *gin.Context)
	GetBoardBySlug(c *gin.Context)
	CreateBoard(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// @Summary Get all boards
// @Description List every board, newest first
// @Tags Board
// @Produce json
// @Success 200 {object} BoardListResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/boards [get]
func (h *handler) GetAllBoards(c *gin.Context) {
	boards, err := h.service.ListBoards(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, BoardListResponse{Boards: boards})
}

// @Summary Get board by slug
// @Description Get a specific board by its slug identifier
// @Tags Board
// @Produce json
// @Param slug path string true "Board slug"
// @Success 200 {object} Board
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/boards/{slug} [get]
func (h *handler) GetBoardBySlug(c *gin.Context) {
	board, err := h.service.GetBoardBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

// @Summary Create board
// @Description Create a board; the slug is derived from the name unless given
// @Tags Board
// @Accept json
// @Produce json
// @Param board body CreateBoardRequest true "Board to create"
// @Success 201 {object} Board
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/boards [post]
func (h *handler) CreateBoard(c *gin.Context) {
	var req CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	board, err := h.service.CreateBoard(c.Request.Context(), CreateBoardInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, board)
}

func respondError(c *gin.Context, err error) {
	c.JSON(apperr.HTTPStatus(err), ErrorResponse{Error: apperr.Message(err)})
}
