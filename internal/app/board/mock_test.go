package board

import (
	"context"

	"faden/internal/utils"
)

type MockRepository struct {
	CreateFunc     func(ctx context.Context, board *Board) error
	FindBySlugFunc func(ctx context.Context, slug string) (*Board, error)
	FindAllFunc    func(ctx context.Context) ([]*Board, error)
	CountFunc      func(ctx context.Context) (int64, error)
}

func (m *MockRepository) Create(ctx context.Context, board *Board) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, board)
	}
	return nil
}

func (m *MockRepository) FindBySlug(ctx context.Context, slug string) (*Board, error) {
	if m.FindBySlugFunc != nil {
		return m.FindBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *MockRepository) FindAll(ctx context.Context) ([]*Board, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

type MockService struct {
	CreateBoardFunc    func(ctx context.Context, in CreateBoardInput) (*Board, error)
	GetBoardBySlugFunc func(ctx context.Context, slug string) (*Board, error)
	ListBoardsFunc     func(ctx context.Context) ([]*Board, error)
}

func (m *MockService) CreateBoard(ctx context.Context, in CreateBoardInput) (*Board, error) {
	if m.CreateBoardFunc != nil {
		return m.CreateBoardFunc(ctx, in)
	}
	return nil, nil
}

func (m *MockService) GetBoardBySlug(ctx context.Context, slug string) (*Board, error) {
	if m.GetBoardBySlugFunc != nil {
		return m.GetBoardBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *MockService) ListBoards(ctx context.Context) ([]*Board, error) {
	if m.ListBoardsFunc != nil {
		return m.ListBoardsFunc(ctx)
	}
	return nil, nil
}

type recordingPublisher struct {
	events []string
}

func (p *recordingPublisher) Publish(e utils.Event) {
	p.events = append(p.events, e.Event+":"+e.Board)
}

type countingMetrics struct {
	boards int
}

func (m *countingMetrics) IncBoardCreated() {
	m.boards++
}
