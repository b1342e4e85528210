package models

import (
	"time"

	"github.com/google/uuid"
)

// Default scheduling values applied when a word is created.
const (
	DefaultEase = 2.5
	MinEase     = 1.3
	MaxEase     = 3.0
)

// Word is a single vocabulary entry owned by a list, together with its
// review scheduling state.
type Word struct {
	ID           uuid.UUID  `json:"id"`
	ListID       uuid.UUID  `json:"list_id"`
	Original     string     `json:"original"`
	Translation  string     `json:"translation"`
	Status       Status     `json:"status"`
	IntervalDays int        `json:"interval_days"`
	Ease         float64    `json:"ease"`
	Reviews      int        `json:"reviews"`
	LastReview   *time.Time `json:"last_review"`
	NextReview   *time.Time `json:"next_review"` // nil means due now
	LastTested   *time.Time `json:"last_tested"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// NewWord builds a word with scheduling defaults: never reviewed and
// immediately due.
func NewWord(listID uuid.UUID, original, translation string, now time.Time) Word {
	due := now
	return Word{
		ID:          uuid.New(),
		ListID:      listID,
		Original:    original,
		Translation: translation,
		Status:      StatusNew,
		Ease:        DefaultEase,
		NextReview:  &due,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Due reports whether the word should be shown in a review session at t.
// New words are handled separately by session selection.
func (w Word) Due(t time.Time) bool {
	if w.Status == StatusNew {
		return false
	}
	return w.NextReview == nil || !w.NextReview.After(t)
}

// WordUpdate carries a partial edit of a word. Nil fields are left unchanged.
type WordUpdate struct {
	Original     *string    `json:"original"`
	Translation  *string    `json:"translation"`
	Status       *Status    `json:"status"`
	IntervalDays *int       `json:"interval_days"`
	Ease         *float64   `json:"ease"`
	Reviews      *int       `json:"reviews"`
	LastReview   *time.Time `json:"last_review"`
	NextReview   *time.Time `json:"next_review"`
	LastTested   *time.Time `json:"last_tested"`
}

// IsZero reports whether the update would change nothing.
func (u WordUpdate) IsZero() bool {
	return u.Original == nil && u.Translation == nil && u.Status == nil &&
		u.IntervalDays == nil && u.Ease == nil && u.Reviews == nil &&
		u.LastReview == nil && u.NextReview == nil && u.LastTested == nil
}

// WordFilter narrows word listings.
type WordFilter struct {
	ListID uuid.UUID
	Status Status // zero value matches all statuses
	Search string // substring match on original or translation
	Limit  int
	Offset int
}
