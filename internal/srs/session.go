package srs

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/lmeunier/vocaflash/internal/models"
)

// Session iteration errors.
var (
	ErrSessionFinished = errors.New("session already finished")
	ErrNotRevealed     = errors.New("card has not been revealed")
)

// Session is one flashcard sitting over a pre-selected word sequence.
// It lives in memory only; every rating is persisted immediately, so
// abandoning a session loses nothing.
type Session struct {
	ID        uuid.UUID
	ListID    uuid.UUID
	Words     []models.Word
	Index     int
	Revealed  bool
	Completed int
	Settings  models.StudySettings
	StartedAt time.Time
}

// NewSession wraps a selected word sequence in a fresh session.
func NewSession(listID uuid.UUID, words []models.Word, settings models.StudySettings, now time.Time) *Session {
	return &Session{
		ID:        uuid.New(),
		ListID:    listID,
		Words:     words,
		Settings:  settings,
		StartedAt: now,
	}
}

// Done reports whether the cursor has passed the last card.
func (s *Session) Done() bool {
	return s.Index >= len(s.Words)
}

// Remaining returns the number of cards left, including the current one.
func (s *Session) Remaining() int {
	if s.Done() {
		return 0
	}
	return len(s.Words) - s.Index
}

// Current returns the card under the cursor, or nil when the session is done.
func (s *Session) Current() *models.Word {
	if s.Done() {
		return nil
	}
	return &s.Words[s.Index]
}

// Flip toggles the front/back state of the current card.
func (s *Session) Flip() error {
	if s.Done() {
		return ErrSessionFinished
	}
	s.Revealed = !s.Revealed
	return nil
}

// CheckRatable enforces the front-then-back contract: a card may only be
// rated once its answer side has been revealed.
func (s *Session) CheckRatable() error {
	if s.Done() {
		return ErrSessionFinished
	}
	if !s.Revealed {
		return ErrNotRevealed
	}
	return nil
}

// Advance commits the current card as completed and moves to the next one,
// hiding its answer side. It returns the new current card, or nil when the
// session just finished.
func (s *Session) Advance() *models.Word {
	if s.Done() {
		return nil
	}
	s.Index++
	s.Completed++
	s.Revealed = false
	return s.Current()
}
