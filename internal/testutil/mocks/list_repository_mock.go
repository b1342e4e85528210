package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/lmeunier/vocaflash/internal/models"
)

// MockListRepository is a mock implementation of repository.ListRepository
type MockListRepository struct {
	mock.Mock
}

func (m *MockListRepository) Insert(ctx context.Context, list models.List) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

func (m *MockListRepository) Get(ctx context.Context, id uuid.UUID) (*models.List, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.List), args.Error(1)
}

func (m *MockListRepository) List(ctx context.Context) ([]models.List, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.List), args.Error(1)
}

func (m *MockListRepository) Rename(ctx context.Context, id uuid.UUID, name string, now time.Time) error {
	args := m.Called(ctx, id, name, now)
	return args.Error(0)
}

func (m *MockListRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
