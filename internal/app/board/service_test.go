package board

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"faden/internal/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func strPtr(s string) *string {
	return &s
}

func newTestService(repo Repository) (Service, *recordingPublisher, *countingMetrics) {
	events := &recordingPublisher{}
	metrics := &countingMetrics{}
	return NewService(repo, events, metrics, zap.NewNop()), events, metrics
}

func TestService_CreateBoard(t *testing.T) {
	tests := []struct {
		name      string
		input     CreateBoardInput
		createErr error
		wantSlug  string
		wantDesc  *string
		wantKind  apperr.Kind
		wantMsg   string
	}{
		{
			name:     "slug derived from name",
			input:    CreateBoardInput{Name: "Free Speech"},
			wantSlug: "free-speech",
		},
		{
			name:     "explicit slug normalized",
			input:    CreateBoardInput{Name: "Programming", Slug: strPtr("  Prog Talk ")},
			wantSlug: "prog-talk",
		},
		{
			name:     "blank slug override falls back to name",
			input:    CreateBoardInput{Name: "Music", Slug: strPtr("   ")},
			wantSlug: "music",
		},
		{
			name:     "description trimmed",
			input:    CreateBoardInput{Name: "Science", Description: strPtr("  lab notes  ")},
			wantSlug: "science",
			wantDesc: strPtr("lab notes"),
		},
		{
			name:     "blank description stored as null",
			input:    CreateBoardInput{Name: "Science", Description: strPtr("   ")},
			wantSlug: "science",
		},
		{
			name:     "missing name",
			input:    CreateBoardInput{Name: "   "},
			wantKind: apperr.KindValidation,
			wantMsg:  "board name is required",
		},
		{
			name:     "name too long",
			input:    CreateBoardInput{Name: strings.Repeat("n", 61)},
			wantKind: apperr.KindValidation,
			wantMsg:  "name must be at most 60 characters",
		},
		{
			name:     "description too long",
			input:    CreateBoardInput{Name: "Ok", Description: strPtr(strings.Repeat("d", 241))},
			wantKind: apperr.KindValidation,
			wantMsg:  "description must be at most 240 characters",
		},
		{
			name:     "punctuation only name",
			input:    CreateBoardInput{Name: "!!! ???"},
			wantKind: apperr.KindValidation,
			wantMsg:  "board slug is required",
		},
		{
			name:     "slug too short",
			input:    CreateBoardInput{Name: "X"},
			wantKind: apperr.KindValidation,
			wantMsg:  "board slug must be at least 2 characters",
		},
		{
			name:      "duplicate slug",
			input:     CreateBoardInput{Name: "Test"},
			createErr: gorm.ErrDuplicatedKey,
			wantKind:  apperr.KindConflict,
			wantMsg:   "board with this slug already exists",
		},
		{
			name:      "store failure",
			input:     CreateBoardInput{Name: "Test"},
			createErr: errors.New("permission denied for table boards"),
			wantKind:  apperr.KindStore,
			wantMsg:   "failed to create board: permission denied for table boards",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stored *Board
			repo := &MockRepository{
				CreateFunc: func(ctx context.Context, b *Board) error {
					if tt.createErr != nil {
						return tt.createErr
					}
					b.ID = uuid.New()
					b.CreatedAt = time.Now()
					stored = b
					return nil
				},
			}
			svc, events, metrics := newTestService(repo)

			board, err := svc.CreateBoard(context.Background(), tt.input)

			if tt.wantKind != 0 {
				require.Error(t, err)
				assert.Nil(t, board)
				assert.Equal(t, tt.wantKind, apperr.KindOf(err))
				assert.Equal(t, tt.wantMsg, apperr.Message(err))
				assert.Empty(t, events.events)
				assert.Zero(t, metrics.boards)
				return
			}

			require.NoError(t, err)
			assert.Same(t, stored, board)
			assert.Equal(t, tt.wantSlug, board.Slug)
			assert.Equal(t, tt.wantDesc, board.Description)
			assert.Equal(t, []string{"board_created:" + tt.wantSlug}, events.events)
			assert.Equal(t, 1, metrics.boards)
		})
	}
}

func TestService_CreateBoardValidatesBeforeStore(t *testing.T) {
	called := false
	repo := &MockRepository{
		CreateFunc: func(ctx context.Context, b *Board) error {
			called = true
			return nil
		},
	}
	svc, _, _ := newTestService(repo)

	_, err := svc.CreateBoard(context.Background(), CreateBoardInput{Name: "--"})
	assert.True(t, apperr.Is(err, apperr.KindValidation))
	assert.False(t, called)
}

func TestService_GetBoardBySlug(t *testing.T) {
	existing := &Board{ID: uuid.New(), Name: "Free Speech", Slug: "free-speech"}
	repo := &MockRepository{
		FindBySlugFunc: func(ctx context.Context, slug string) (*Board, error) {
			if slug == existing.Slug {
				return existing, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc, _, _ := newTestService(repo)
	ctx := context.Background()

	for _, raw := range []string{"free-speech", "Free-Speech", "  free-speech ", "Free Speech", "FREE speech!"} {
		board, err := svc.GetBoardBySlug(ctx, raw)
		require.NoError(t, err, raw)
		assert.Equal(t, existing.ID, board.ID, raw)
	}

	_, err := svc.GetBoardBySlug(ctx, "missing-board")
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	_, err = svc.GetBoardBySlug(ctx, "  ")
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}

func TestService_GetBoardBySlugStoreError(t *testing.T) {
	repo := &MockRepository{
		FindBySlugFunc: func(ctx context.Context, slug string) (*Board, error) {
			return nil, context.DeadlineExceeded
		},
	}
	svc, _, _ := newTestService(repo)

	_, err := svc.GetBoardBySlug(context.Background(), "test")
	require.Error(t, err)
	assert.Equal(t, apperr.KindStore, apperr.KindOf(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestService_ListBoards(t *testing.T) {
	svc, _, _ := newTestService(&MockRepository{})

	boards, err := svc.ListBoards(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, boards)
	assert.Empty(t, boards)

	failing, _, _ := newTestService(&MockRepository{
		FindAllFunc: func(ctx context.Context) ([]*Board, error) {
			return nil, errors.New("connection refused")
		},
	})
	_, err = failing.ListBoards(context.Background())
	assert.True(t, apperr.Is(err, apperr.KindStore))
}

func TestService_ConcurrentCreateSameSlug(t *testing.T) {
	svc := NewService(NewRepository(setupTestDB(t)), nil, nil, zap.NewNop())
	ctx := context.Background()

	const attempts = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		created   int
		conflicts int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CreateBoard(ctx, CreateBoardInput{Name: "Free Speech"})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case apperr.Is(err, apperr.KindConflict):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Equal(t, attempts-1, conflicts)

	board, err := svc.GetBoardBySlug(ctx, "free-speech")
	require.NoError(t, err)
	assert.Equal(t, "Free Speech", board.Name)
}
