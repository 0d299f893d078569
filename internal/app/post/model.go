package post

import (
	"time"

	"faden/internal/app/board"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultAuthor = "anon"

type Post struct {
	ID        uuid.UUID    `json:"id" gorm:"type:uuid;primaryKey"`
	BoardID   uuid.UUID    `json:"board_id" gorm:"type:uuid;not null;index:idx_posts_board_created,priority:1"`
	Board     *board.Board `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	BoardSlug string       `json:"board_slug" gorm:"-"`
	Title     string       `json:"title" gorm:"size:120;not null"`
	Body      *string      `json:"body"`
	Author    string       `json:"author" gorm:"type:text;not null"`
	CreatedAt time.Time    `json:"created_at" gorm:"not null;index:idx_posts_board_created,priority:2"`
}

func (p *Post) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type CreatePostInput struct {
	Title  string  `validate:"required,max=120"`
	Body   *string `validate:"omitempty"`
	Author *string
}

type CreatePostRequest struct {
	Title  string  `json:"title" example:"Hello"`
	Body   *string `json:"body,omitempty" example:"First post"`
	Author *string `json:"author,omitempty" example:"anon"`
}

type PostListResponse struct {
	Posts []*Post `json:"posts"`
}

// CreateThreadRequest is the legacy payload that names the board in the body.
type CreateThreadRequest struct {
	BoardSlug string  `json:"board_slug" example:"free-speech"`
	Title     string  `json:"title" example:"Hello"`
	Body      *string `json:"body,omitempty"`
}

type ThreadListResponse struct {
	Threads []*Post `json:"threads"`
}

type ThreadResponse struct {
	Thread *Post `json:"thread"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
