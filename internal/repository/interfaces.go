package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/lmeunier/vocaflash/internal/models"
)

// Sentinel errors shared by all repository implementations.
var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate id")
)

// ListRepository handles word list data access
type ListRepository interface {
	Insert(ctx context.Context, list models.List) error
	Get(ctx context.Context, id uuid.UUID) (*models.List, error)
	List(ctx context.Context) ([]models.List, error)
	Rename(ctx context.Context, id uuid.UUID, name string, now time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// WordRepository handles word data access
type WordRepository interface {
	Insert(ctx context.Context, word models.Word) error
	Get(ctx context.Context, id uuid.UUID) (*models.Word, error)
	List(ctx context.Context, filter models.WordFilter) ([]models.Word, error)
	Update(ctx context.Context, id uuid.UUID, update models.WordUpdate, now time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
	Progress(ctx context.Context, listID uuid.UUID) (*models.ListProgress, error)
}

// StatsRepository handles assessment statistics data access
type StatsRepository interface {
	Insert(ctx context.Context, stat models.TestStat) (int64, error)
	ListByList(ctx context.Context, listID uuid.UUID) ([]models.TestStat, error)
	DeleteByList(ctx context.Context, listID uuid.UUID) error
}
