package board

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, board *Board) error
	FindBySlug(ctx context.Context, slug string) (*Board, error)
	FindAll(ctx context.Context) ([]*Board, error)
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, board *Board) error {
	return r.db.WithContext(ctx).Create(board).Error
}

// FindBySlug returns gorm.ErrRecordNotFound when no board has the slug.
func (r *repository) FindBySlug(ctx context.Context, slug string) (*Board, error) {
	var board Board
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&board).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

func (r *repository) FindAll(ctx context.Context) ([]*Board, error) {
	boards := make([]*Board, 0)
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&boards).Error
	return boards, err
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Board{}).Count(&count).Error
	return count, err
}
