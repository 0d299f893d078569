package post

import (
	"context"
	"strings"

	"faden/internal/app/board"
	"faden/internal/apperr"
	"faden/internal/utils"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type Service interface {
	CreatePost(ctx context.Context, boardSlug string, in CreatePostInput) (*Post, error)
	ListPosts(ctx context.Context, boardSlug string) ([]*Post, error)
}

type Metrics interface {
	IncPostCreated()
}

type service struct {
	repo     Repository
	boards   board.Service
	validate *validator.Validate
	events   utils.Publisher
	metrics  Metrics
	logger   *zap.SugaredLogger
}

// NewService builds the post ledger on top of the board registry. events and
// metrics may be nil.
func NewService(repo Repository, boards board.Service, events utils.Publisher, metrics Metrics, logger *zap.Logger) Service {
	return &service{
		repo:     repo,
		boards:   boards,
		validate: validator.New(),
		events:   events,
		metrics:  metrics,
		logger:   logger.Sugar(),
	}
}

func (s *service) CreatePost(ctx context.Context, boardSlug string, in CreatePostInput) (*Post, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return nil, apperr.Validation("title is required")
	}
	if in.Body != nil {
		body := strings.TrimSpace(*in.Body)
		in.Body = &body
	}
	author := DefaultAuthor
	if in.Author != nil {
		author = strings.TrimSpace(*in.Author)
	}
	if err := s.validate.Struct(in); err != nil {
		return nil, apperr.FromValidator(err)
	}

	b, err := s.boards.GetBoardBySlug(ctx, boardSlug)
	if err != nil {
		return nil, err
	}

	post := &Post{
		BoardID: b.ID,
		Title:   in.Title,
		Body:    in.Body,
		Author:  author,
	}
	if err := s.repo.Create(ctx, post); err != nil {
		s.logger.Errorw("Failed to create post", "board_id", b.ID, "error", err)
		return nil, apperr.Store("failed to create post", err)
	}
	post.BoardSlug = b.Slug

	s.logger.Infow("Post created", "post_id", post.ID, "board", b.Slug)
	if s.metrics != nil {
		s.metrics.IncPostCreated()
	}
	if s.events != nil {
		s.events.Publish(utils.Event{Event: utils.EventPostCreated, Board: b.Slug, Data: post})
	}
	return post, nil
}

// ListPosts distinguishes a missing board (NotFound) from a board with no
// posts (empty slice).
func (s *service) ListPosts(ctx context.Context, boardSlug string) ([]*Post, error) {
	b, err := s.boards.GetBoardBySlug(ctx, boardSlug)
	if err != nil {
		return nil, err
	}

	posts, err := s.repo.FindByBoardID(ctx, b.ID)
	if err != nil {
		s.logger.Errorw("Failed to list posts", "board_id", b.ID, "error", err)
		return nil, apperr.Store("failed to list posts", err)
	}
	if posts == nil {
		posts = []*Post{}
	}
	for _, p := range posts {
		p.BoardSlug = b.Slug
	}
	return posts, nil
}
