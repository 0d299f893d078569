package board

import (
	"context"
	"strings"

	"faden/internal/apperr"
	"faden/internal/slug"
	"faden/internal/utils"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type Service interface {
	CreateBoard(ctx context.Context, in CreateBoardInput) (*Board, error)
	GetBoardBySlug(ctx context.Context, slug string) (*Board, error)
	ListBoards(ctx context.Context) ([]*Board, error)
}

type Metrics interface {
	IncBoardCreated()
}

type service struct {
	repo     Repository
	validate *validator.Validate
	events   utils.Publisher
	metrics  Metrics
	logger   *zap.SugaredLogger
}

// NewService builds the board registry. events and metrics may be nil.
func NewService(repo Repository, events utils.Publisher, metrics Metrics, logger *zap.Logger) Service {
	return &service{
		repo:     repo,
		validate: validator.New(),
		events:   events,
		metrics:  metrics,
		logger:   logger.Sugar(),
	}
}

func (s *service) CreateBoard(ctx context.Context, in CreateBoardInput) (*Board, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = trimOptional(in.Description)
	if in.Name == "" {
		return nil, apperr.Validation("board name is required")
	}
	if err := s.validate.Struct(in); err != nil {
		return nil, apperr.FromValidator(err)
	}

	source := in.Name
	if in.Slug != nil && strings.TrimSpace(*in.Slug) != "" {
		source = *in.Slug
	}
	boardSlug := slug.Normalize(source)
	if boardSlug == "" {
		return nil, apperr.Validation("board slug is required")
	}
	if len(boardSlug) < slug.MinLength {
		return nil, apperr.Validation("board slug must be at least %d characters", slug.MinLength)
	}

	board := &Board{
		Name:        in.Name,
		Slug:        boardSlug,
		Description: in.Description,
	}
	if err := s.repo.Create(ctx, board); err != nil {
		if apperr.IsUniqueViolation(err) {
			return nil, apperr.Conflict("board with this slug already exists")
		}
		s.logger.Errorw("Failed to create board", "slug", boardSlug, "error", err)
		return nil, apperr.Store("failed to create board", err)
	}

	s.logger.Infow("Board created", "board_id", board.ID, "slug", board.Slug)
	if s.metrics != nil {
		s.metrics.IncBoardCreated()
	}
	if s.events != nil {
		s.events.Publish(utils.Event{Event: utils.EventBoardCreated, Board: board.Slug, Data: board})
	}
	return board, nil
}

// GetBoardBySlug accepts user input: padded or differently cased variants of
// a slug resolve to the same board. raw must already be URL-decoded; gin
// unescapes path and query values once.
func (s *service) GetBoardBySlug(ctx context.Context, raw string) (*Board, error) {
	key := slug.Normalize(raw)
	if key == "" {
		return nil, apperr.Validation("board slug is required")
	}

	board, err := s.repo.FindBySlug(ctx, key)
	if err != nil {
		if apperr.IsRecordNotFound(err) {
			return nil, apperr.NotFound("board not found")
		}
		s.logger.Errorw("Failed to look up board", "slug", key, "error", err)
		return nil, apperr.Store("failed to look up board", err)
	}
	return board, nil
}

func (s *service) ListBoards(ctx context.Context) ([]*Board, error) {
	boards, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Errorw("Failed to list boards", "error", err)
		return nil, apperr.Store("failed to list boards", err)
	}
	if boards == nil {
		boards = []*Board{}
	}
	return boards, nil
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
