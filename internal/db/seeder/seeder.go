package seeder

import (
	"context"

	"faden/internal/app/board"
	"faden/internal/apperr"

	"go.uber.org/zap"
)

type Counter interface {
	Count(ctx context.Context) (int64, error)
}

type Seeder struct {
	boards  board.Service
	counter Counter
	logger  *zap.Logger
}

func NewSeeder(boards board.Service, counter Counter, logger *zap.Logger) *Seeder {
	return &Seeder{
		boards:  boards,
		counter: counter,
		logger:  logger,
	}
}

var defaultBoards = []board.CreateBoardInput{
	{Name: "General", Description: ptr("Anything goes")},
	{Name: "Programming", Slug: ptr("prog"), Description: ptr("Code, tools and languages")},
	{Name: "Music", Description: ptr("What are you listening to")},
	{Name: "Science", Slug: ptr("sci"), Description: ptr("Papers, experiments and questions")},
	{Name: "Random"},
}

// Seed creates the default boards when the boards table is empty. Boards go
// through the registry so seeded slugs obey the same rules as user input.
func (s *Seeder) Seed(ctx context.Context) error {
	s.logger.Info("Running database seeders...")

	if err := s.seedBoards(ctx); err != nil {
		return err
	}

	s.logger.Info("Database seeders completed successfully")
	return nil
}

func (s *Seeder) seedBoards(ctx context.Context) error {
	count, err := s.counter.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		s.logger.Info("Boards already exist, skipping seed")
		return nil
	}

	created := 0
	for _, in := range defaultBoards {
		if _, err := s.boards.CreateBoard(ctx, in); err != nil {
			if apperr.Is(err, apperr.KindConflict) {
				continue
			}
			return err
		}
		created++
	}

	s.logger.Info("Seeded boards", zap.Int("count", created))
	return nil
}

func ptr(s string) *string {
	return &s
}
