package post

import (
	"context"

	"faden/internal/app/board"
	"faden/internal/utils"

	"github.com/google/uuid"
)

type MockRepository struct {
	CreateFunc        func(ctx context.Context, post *Post) error
	FindByBoardIDFunc func(ctx context.Context, boardID uuid.UUID) ([]*Post, error)
}

func (m *MockRepository) Create(ctx context.Context, post *Post) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, post)
	}
	return nil
}

func (m *MockRepository) FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]*Post, error) {
	if m.FindByBoardIDFunc != nil {
		return m.FindByBoardIDFunc(ctx, boardID)
	}
	return nil, nil
}

type MockBoardService struct {
	GetBoardBySlugFunc func(ctx context.Context, slug string) (*board.Board, error)
}

func (m *MockBoardService) CreateBoard(ctx context.Context, in board.CreateBoardInput) (*board.Board, error) {
	return nil, nil
}

func (m *MockBoardService) GetBoardBySlug(ctx context.Context, slug string) (*board.Board, error) {
	if m.GetBoardBySlugFunc != nil {
		return m.GetBoardBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *MockBoardService) ListBoards(ctx context.Context) ([]*board.Board, error) {
	return []*board.Board{}, nil
}

type MockService struct {
	CreatePostFunc func(ctx context.Context, boardSlug string, in CreatePostInput) (*Post, error)
	ListPostsFunc  func(ctx context.Context, boardSlug string) ([]*Post, error)
}

func (m *MockService) CreatePost(ctx context.Context, boardSlug string, in CreatePostInput) (*Post, error) {
	if m.CreatePostFunc != nil {
		return m.CreatePostFunc(ctx, boardSlug, in)
	}
	return nil, nil
}

func (m *MockService) ListPosts(ctx context.Context, boardSlug string) ([]*Post, error) {
	if m.ListPostsFunc != nil {
		return m.ListPostsFunc(ctx, boardSlug)
	}
	return nil, nil
}

type recordingPublisher struct {
	events []utils.Event
}

func (p *recordingPublisher) Publish(e utils.Event) {
	p.events = append(p.events, e)
}

type countingMetrics struct {
	posts int
}

func (m *countingMetrics) IncPostCreated() {
	m.posts++
}
