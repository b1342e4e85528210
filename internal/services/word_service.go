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

// WordInput is one original/translation pair for insertion.
type WordInput struct {
	Original    string `json:"original"`
	Translation string `json:"translation"`
}

// BatchItem reports the outcome of one word in a bulk insert. Exactly one
// of Word and Error is set.
type BatchItem struct {
	Index int          `json:"index"`
	Word  *models.Word `json:"word,omitempty"`
	Error string       `json:"error,omitempty"`
}

// WordService handles vocabulary word business logic
type WordService interface {
	AddWord(ctx context.Context, listID uuid.UUID, input WordInput) (*models.Word, error)
	AddWords(ctx context.Context, listID uuid.UUID, inputs []WordInput) ([]BatchItem, error)
	ListWords(ctx context.Context, filter models.WordFilter) ([]models.Word, error)
	UpdateWord(ctx context.Context, id uuid.UUID, update models.WordUpdate) (*models.Word, error)
	DeleteWord(ctx context.Context, id uuid.UUID) error
}

type wordService struct {
	lists repository.ListRepository
	words repository.WordRepository
}

// NewWordService creates a new WordService
func NewWordService(lists repository.ListRepository, words repository.WordRepository) WordService {
	return &wordService{lists: lists, words: words}
}

func validateInput(input WordInput) (WordInput, error) {
	input.Original = strings.TrimSpace(input.Original)
	input.Translation = strings.TrimSpace(input.Translation)
	if input.Original == "" {
		return input, errors.NewValidationError("original", "must not be empty")
	}
	if input.Translation == "" {
		return input, errors.NewValidationError("translation", "must not be empty")
	}
	return input, nil
}

func (s *wordService) AddWord(ctx context.Context, listID uuid.UUID, input WordInput) (*models.Word, error) {
	log := logger.FromContext(ctx)

	input, err := validateInput(input)
	if err != nil {
		return nil, err
	}

	if _, err := s.lists.Get(ctx, listID); err != nil {
		if err == repository.ErrNotFound {
			return nil, errors.NewNotFoundError("list", listID)
		}
		log.Error("failed to check list: %v", err)
		return nil, errors.NewInternalError(err)
	}

	word := models.NewWord(listID, input.Original, input.Translation, time.Now())
	log.Debug("adding word: id=%s, list_id=%s, original=%s", word.ID, listID, word.Original)

	if err := s.words.Insert(ctx, word); err != nil {
		if err == repository.ErrDuplicate {
			return nil, errors.NewConflictError("word", word.ID)
		}
		log.Error("failed to insert word: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return &word, nil
}

// AddWords inserts each pair independently: a bad item is reported in its
// BatchItem and does not stop the rest of the batch.
func (s *wordService) AddWords(ctx context.Context, listID uuid.UUID, inputs []WordInput) ([]BatchItem, error) {
	log := logger.FromContext(ctx)

	if len(inputs) == 0 {
		return nil, errors.NewValidationError("words", "must not be empty")
	}

	if _, err := s.lists.Get(ctx, listID); err != nil {
		if err == repository.ErrNotFound {
			return nil, errors.NewNotFoundError("list", listID)
		}
		log.Error("failed to check list: %v", err)
		return nil, errors.NewInternalError(err)
	}

	log.Debug("adding %d words to list %s", len(inputs), listID)

	results := make([]BatchItem, 0, len(inputs))
	for i, input := range inputs {
		item := BatchItem{Index: i}

		input, err := validateInput(input)
		if err != nil {
			item.Error = err.Error()
			results = append(results, item)
			continue
		}

		word := models.NewWord(listID, input.Original, input.Translation, time.Now())
		if err := s.words.Insert(ctx, word); err != nil {
			log.Warn("failed to insert word %d (%s): %v", i, input.Original, err)
			item.Error = err.Error()
			results = append(results, item)
			continue
		}
		item.Word = &word
		results = append(results, item)
	}
	return results, nil
}

func (s *wordService) ListWords(ctx context.Context, filter models.WordFilter) ([]models.Word, error) {
	words, err := s.words.List(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list words: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return words, nil
}

func (s *wordService) UpdateWord(ctx context.Context, id uuid.UUID, update models.WordUpdate) (*models.Word, error) {
	log := logger.FromContext(ctx)

	if update.IsZero() {
		return nil, errors.NewValidationError("update", "no fields to update")
	}
	if update.Original != nil && strings.TrimSpace(*update.Original) == "" {
		return nil, errors.NewValidationError("original", "must not be empty")
	}
	if update.Translation != nil && strings.TrimSpace(*update.Translation) == "" {
		return nil, errors.NewValidationError("translation", "must not be empty")
	}
	if update.Status != nil && !update.Status.IsValid() {
		return nil, errors.NewValidationError("status", "unknown status")
	}

	log.Debug("updating word: id=%s", id)
	if err := s.words.Update(ctx, id, update, time.Now()); err != nil {
		if err == repository.ErrNotFound {
			return nil, errors.NewNotFoundError("word", id)
		}
		log.Error("failed to update word: %v", err)
		return nil, errors.NewInternalError(err)
	}

	word, err := s.words.Get(ctx, id)
	if err != nil {
		log.Error("failed to reload word: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return word, nil
}

func (s *wordService) DeleteWord(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx)
	log.Debug("deleting word: id=%s", id)

	if err := s.words.Delete(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return errors.NewNotFoundError("word", id)
		}
		log.Error("failed to delete word: %v", err)
		return errors.NewInternalError(err)
	}
	return nil
}
