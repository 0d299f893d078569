package db

import (
	"fmt"

	"faden/internal/app/board"
	"faden/internal/app/post"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Migrate creates or updates the boards and posts tables, including the
// unique slug index that backs board creation.
func Migrate(db *gorm.DB, logger *zap.Logger) error {
	if err := db.AutoMigrate(&board.Board{}, &post.Post{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	logger.Info("Database schema is up to date")
	return nil
}
