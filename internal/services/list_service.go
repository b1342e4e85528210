package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lmeunier/vocaflash/internal/errors"
	"github.com/lmeunier/vocaflash/internal/logger"
	"github.com/lmeunier/vocaflash/internal/models"
	"github.com/lmeunier/vocaflash/internal/repository"
)

// ListService handles word list business logic
type ListService interface {
	CreateList(ctx context.Context, name string) (*models.List, error)
	GetList(ctx context.Context, id uuid.UUID) (*models.ListDetail, error)
	Lists(ctx context.Context) ([]models.List, error)
	RenameList(ctx context.Context, id uuid.UUID, name string) error
	DeleteList(ctx context.Context, id uuid.UUID) error
}

type listService struct {
	lists repository.ListRepository
	words repository.WordRepository
}

// NewListService creates a new ListService
func NewListService(lists repository.ListRepository, words repository.WordRepository) ListService {
	return &listService{lists: lists, words: words}
}

func (s *listService) CreateList(ctx context.Context, name string) (*models.List, error) {
	log := logger.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.NewValidationError("name", "must not be empty")
	}

	list := models.NewList(name, time.Now())
	log.Debug("creating list: id=%s, name=%s", list.ID, name)

	if err := s.lists.Insert(ctx, list); err != nil {
		if err == repository.ErrDuplicate {
			return nil, errors.NewConflictError("list", list.ID)
		}
		log.Error("failed to create list: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return &list, nil
}

func (s *listService) GetList(ctx context.Context, id uuid.UUID) (*models.ListDetail, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting list: id=%s", id)

	list, err := s.lists.Get(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, errors.NewNotFoundError("list", id)
		}
		log.Error("failed to get list: %v", err)
		return nil, errors.NewInternalError(err)
	}

	words, err := s.words.List(ctx, models.WordFilter{ListID: id})
	if err != nil {
		log.Error("failed to list words: %v", err)
		return nil, errors.NewInternalError(err)
	}

	progress, err := s.words.Progress(ctx, id)
	if err != nil {
		log.Error("failed to compute progress: %v", err)
		return nil, errors.NewInternalError(err)
	}

	return &models.ListDetail{
		List:     *list,
		Words:    words,
		Progress: *progress,
	}, nil
}

func (s *listService) Lists(ctx context.Context) ([]models.List, error) {
	lists, err := s.lists.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list lists: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return lists, nil
}

func (s *listService) RenameList(ctx context.Context, id uuid.UUID, name string) error {
	log := logger.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return errors.NewValidationError("name", "must not be empty")
	}

	log.Debug("renaming list: id=%s, name=%s", id, name)
	if err := s.lists.Rename(ctx, id, name, time.Now()); err != nil {
		if err == repository.ErrNotFound {
			return errors.NewNotFoundError("list", id)
		}
		log.Error("failed to rename list: %v", err)
		return errors.NewInternalError(err)
	}
	return nil
}

func (s *listService) DeleteList(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx)
	log.Debug("deleting list: id=%s", id)

	if err := s.lists.Delete(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return errors.NewNotFoundError("list", id)
		}
		log.Error("failed to delete list: %v", err)
		return errors.NewInternalError(err)
	}
	return nil
}
