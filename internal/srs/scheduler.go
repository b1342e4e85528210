package srs

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/lmeunier/vocaflash/internal/models"
)

// Interval in days a word must reach before an easy review promotes it
// from Review to Mastered.
const masteredThreshold = 7

// Scheduler selects session words and applies review outcomes. The random
// source drives the deliberately uniform shuffles; overdue words get no
// priority over words due today.
type Scheduler struct {
	rng *rand.Rand
}

// NewScheduler creates a Scheduler with a randomly seeded source.
func NewScheduler() *Scheduler {
	return &Scheduler{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededScheduler creates a Scheduler with a deterministic source.
func NewSeededScheduler(seed uint64) *Scheduler {
	return &Scheduler{rng: rand.New(rand.NewPCG(seed, 0))}
}

// SelectSession picks a bounded, interleaved mix of due and new words.
// New words are capped at NewCardsPerDay, the remainder up to CardsPerDay
// is filled from the due partition, and the combined selection is
// reshuffled so new and due cards do not arrive in batches.
func (s *Scheduler) SelectSession(words []models.Word, settings models.StudySettings, now time.Time) []models.Word {
	var due, fresh []models.Word
	for _, w := range words {
		switch {
		case w.Status == models.StatusNew:
			fresh = append(fresh, w)
		case w.Due(now):
			due = append(due, w)
		}
	}

	s.shuffle(fresh)
	s.shuffle(due)

	numNew := min(len(fresh), settings.NewCardsPerDay, settings.CardsPerDay)
	numDue := min(len(due), settings.CardsPerDay-numNew)

	session := make([]models.Word, 0, numNew+numDue)
	session = append(session, fresh[:numNew]...)
	session = append(session, due[:numDue]...)
	s.shuffle(session)
	return session
}

// ApplyRating computes the word's next scheduling state for a rating.
// It is a pure single-step computation; the caller persists the result.
func (s *Scheduler) ApplyRating(w models.Word, rating models.Rating, settings models.StudySettings, now time.Time) models.Word {
	base := settings.BaseInterval(rating)

	ease := w.Ease
	switch rating {
	case models.RatingDifficult:
		ease -= 0.2
		if ease < models.MinEase {
			ease = models.MinEase
		}
	case models.RatingEasy:
		ease += 0.1
		if ease > models.MaxEase {
			ease = models.MaxEase
		}
	}

	scaled := int(math.Round(float64(base) * ease))
	status := nextStatus(w.Status, rating, w.IntervalDays, scaled)

	// Only words in the long-term cycle get ease-scaled intervals.
	interval := base
	if status == models.StatusReview || status == models.StatusMastered {
		interval = scaled
	}

	w.Ease = ease
	w.Status = status
	w.IntervalDays = interval
	w.Reviews++
	reviewed := now
	w.LastReview = &reviewed
	next := now.AddDate(0, 0, interval)
	w.NextReview = &next
	w.UpdatedAt = now
	return w
}

// nextStatus walks the maturity ladder one rung at most.
func nextStatus(current models.Status, rating models.Rating, intervalDays, scaledInterval int) models.Status {
	switch rating {
	case models.RatingDifficult:
		return models.StatusLearning
	case models.RatingGood:
		switch current {
		case models.StatusNew:
			return models.StatusLearning
		case models.StatusLearning:
			if intervalDays >= 1 {
				return models.StatusReview
			}
			return models.StatusLearning
		}
		return current
	case models.RatingEasy:
		switch current {
		case models.StatusNew, models.StatusLearning:
			return models.StatusReview
		case models.StatusReview:
			if scaledInterval >= masteredThreshold {
				return models.StatusMastered
			}
			return models.StatusReview
		}
		return current
	}
	return current
}

// ApplyTestResult moves a word one rung up or down after a quiz answer.
// Assessments touch only the status and the tested timestamp; interval and
// ease are left to flashcard reviews.
func ApplyTestResult(w models.Word, correct bool, now time.Time) models.Word {
	if correct {
		switch w.Status {
		case models.StatusNew:
			w.Status = models.StatusLearning
		case models.StatusLearning:
			w.Status = models.StatusReview
		case models.StatusReview:
			w.Status = models.StatusMastered
		}
	} else {
		switch w.Status {
		case models.StatusMastered:
			w.Status = models.StatusReview
		case models.StatusReview:
			w.Status = models.StatusLearning
		}
	}
	tested := now
	w.LastTested = &tested
	w.UpdatedAt = now
	return w
}

func (s *Scheduler) shuffle(words []models.Word) {
	s.rng.Shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})
}
