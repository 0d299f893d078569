package post

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, post *Post) error
	FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]*Post, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, post *Post) error {
	return r.db.WithContext(ctx).Omit("Board").Create(post).Error
}

func (r *repository) FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]*Post, error) {
	posts := make([]*Post, 0)
	err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}
