package board

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Board struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string    `json:"name" gorm:"size:60;not null"`
	Slug        string    `json:"slug" gorm:"size:40;not null;uniqueIndex:idx_boards_slug"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at" gorm:"not null;index"`
}

func (b *Board) BeforeCreate(*gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// CreateBoardInput carries raw user input; the service trims and validates it.
type CreateBoardInput struct {
	Name        string  `validate:"required,max=60"`
	Slug        *string `validate:"omitempty"`
	Description *string `validate:"omitempty,max=240"`
}

type CreateBoardRequest struct {
	Name        string  `json:"name" example:"Free Speech"`
	Slug        *string `json:"slug,omitempty" example:"free-speech"`
	Description *string `json:"description,omitempty" example:"Anything goes"`
}

type BoardListResponse struct {
	Boards []*Board `json:"boards"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
