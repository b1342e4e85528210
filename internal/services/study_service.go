package services

import (
	"context"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/lmeunier/vocaflash/internal/errors"
	"github.com/lmeunier/vocaflash/internal/logger"
	"github.com/lmeunier/vocaflash/internal/models"
	"github.com/lmeunier/vocaflash/internal/repository"
	"github.com/lmeunier/vocaflash/internal/srs"
)

// SessionState is the study-facing view of a running session: the current
// card and the cursor, without the full word sequence.
type SessionState struct {
	SessionID uuid.UUID    `json:"session_id"`
	ListID    uuid.UUID    `json:"list_id"`
	Card      *models.Word `json:"card,omitempty"`
	Revealed  bool         `json:"revealed"`
	Completed int          `json:"completed"`
	Remaining int          `json:"remaining"`
	Done      bool         `json:"done"`
}

// SessionSummary is returned when a session ends.
type SessionSummary struct {
	SessionID uuid.UUID `json:"session_id"`
	ListID    uuid.UUID `json:"list_id"`
	Completed int       `json:"completed"`
	Remaining int       `json:"remaining"`
	StartedAt time.Time `json:"started_at"`
}

// StudyService runs flashcard sessions. Sessions live in memory only;
// every rating is persisted to the store before the session advances, so
// a dropped session loses no review state.
type StudyService interface {
	StartSession(ctx context.Context, listID uuid.UUID, settings *models.StudySettings) (*SessionState, error)
	CurrentCard(ctx context.Context, sessionID uuid.UUID) (*SessionState, error)
	FlipCard(ctx context.Context, sessionID uuid.UUID) (*SessionState, error)
	RateCard(ctx context.Context, sessionID uuid.UUID, rating models.Rating) (*SessionState, error)
	FinishSession(ctx context.Context, sessionID uuid.UUID) (*SessionSummary, error)
}

type studyService struct {
	lists     repository.ListRepository
	words     repository.WordRepository
	scheduler *srs.Scheduler
	defaults  models.StudySettings
	validate  *validator.Validate

	mu       sync.Mutex
	sessions map[uuid.UUID]*srs.Session
}

// NewStudyService creates a new StudyService. Sessions started without
// explicit settings use defaults.
func NewStudyService(lists repository.ListRepository, words repository.WordRepository, scheduler *srs.Scheduler, defaults models.StudySettings) StudyService {
	return &studyService{
		lists:     lists,
		words:     words,
		scheduler: scheduler,
		defaults:  defaults,
		validate:  validator.New(),
		sessions:  make(map[uuid.UUID]*srs.Session),
	}
}

func (s *studyService) StartSession(ctx context.Context, listID uuid.UUID, settings *models.StudySettings) (*SessionState, error) {
	log := logger.FromContext(ctx)

	effective := s.defaults
	if settings != nil {
		effective = *settings
	}
	if err := s.validate.Struct(effective); err != nil {
		return nil, errors.NewValidationError("settings", err.Error())
	}

	if _, err := s.lists.Get(ctx, listID); err != nil {
		if err == repository.ErrNotFound {
			return nil, errors.NewNotFoundError("list", listID)
		}
		log.Error("failed to check list: %v", err)
		return nil, errors.NewInternalError(err)
	}

	words, err := s.words.List(ctx, models.WordFilter{ListID: listID})
	if err != nil {
		log.Error("failed to load words: %v", err)
		return nil, errors.NewInternalError(err)
	}

	now := time.Now()
	selected := s.scheduler.SelectSession(words, effective, now)
	if len(selected) == 0 {
		return nil, errors.NewBadRequestError("no cards due for study")
	}

	session := srs.NewSession(listID, selected, effective, now)
	log.Info("study session started: id=%s, list_id=%s, cards=%d", session.ID, listID, len(selected))

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return snapshot(session), nil
}

func (s *studyService) CurrentCard(ctx context.Context, sessionID uuid.UUID) (*SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	return snapshot(session), nil
}

func (s *studyService) FlipCard(ctx context.Context, sessionID uuid.UUID) (*SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	if err := session.Flip(); err != nil {
		return nil, errors.NewValidationError("session", err.Error())
	}
	return snapshot(session), nil
}

func (s *studyService) RateCard(ctx context.Context, sessionID uuid.UUID, rating models.Rating) (*SessionState, error) {
	log := logger.FromContext(ctx)

	if !rating.IsValid() {
		return nil, errors.NewValidationError("rating", "unknown rating")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	if err := session.CheckRatable(); err != nil {
		return nil, errors.NewValidationError("session", err.Error())
	}

	current := session.Current()
	updated := s.scheduler.ApplyRating(*current, rating, session.Settings, time.Now())

	// Persist before advancing: a failed write must not look applied.
	update := models.WordUpdate{
		Status:       &updated.Status,
		IntervalDays: &updated.IntervalDays,
		Ease:         &updated.Ease,
		Reviews:      &updated.Reviews,
		LastReview:   updated.LastReview,
		NextReview:   updated.NextReview,
	}
	if err := s.words.Update(ctx, current.ID, update, updated.UpdatedAt); err != nil {
		if err == repository.ErrNotFound {
			return nil, errors.NewNotFoundError("word", current.ID)
		}
		log.Error("failed to persist rating: %v", err)
		return nil, errors.NewInternalError(err)
	}

	log.Debug("card rated: session=%s, word=%s, rating=%s, status=%s, interval=%d",
		sessionID, current.ID, rating, updated.Status, updated.IntervalDays)

	session.Words[session.Index] = updated
	session.Advance()
	return snapshot(session), nil
}

func (s *studyService) FinishSession(ctx context.Context, sessionID uuid.UUID) (*SessionSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	delete(s.sessions, sessionID)

	logger.FromContext(ctx).Info("study session finished: id=%s, completed=%d, remaining=%d",
		sessionID, session.Completed, session.Remaining())

	return &SessionSummary{
		SessionID: session.ID,
		ListID:    session.ListID,
		Completed: session.Completed,
		Remaining: session.Remaining(),
		StartedAt: session.StartedAt,
	}, nil
}

// lookup must be called with s.mu held.
func (s *studyService) lookup(sessionID uuid.UUID) (*srs.Session, error) {
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, errors.NewNotFoundError("session", sessionID)
	}
	return session, nil
}

func snapshot(session *srs.Session) *SessionState {
	state := &SessionState{
		SessionID: session.ID,
		ListID:    session.ListID,
		Revealed:  session.Revealed,
		Completed: session.Completed,
		Remaining: session.Remaining(),
		Done:      session.Done(),
	}
	if card := session.Current(); card != nil {
		copied := *card
		if !session.Revealed {
			// Answer side stays hidden until the card is flipped.
			copied.Translation = ""
		}
		state.Card = &copied
	}
	return state
}
