package srs_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmeunier/vocaflash/internal/models"
	"github.com/lmeunier/vocaflash/internal/srs"
)

var testNow = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

func newTestWord(status models.Status, intervalDays int, ease float64) models.Word {
	w := models.NewWord(uuid.New(), "bonjour", "hello", testNow.AddDate(0, 0, -30))
	w.Status = status
	w.IntervalDays = intervalDays
	w.Ease = ease
	if status != models.StatusNew {
		w.Reviews = 3
		last := testNow.AddDate(0, 0, -intervalDays)
		w.LastReview = &last
		w.NextReview = &testNow
	}
	return w
}

func TestApplyRating_NewWordGood(t *testing.T) {
	s := srs.NewSeededScheduler(1)
	w := newTestWord(models.StatusNew, 0, 2.5)

	updated := s.ApplyRating(w, models.RatingGood, models.DefaultStudySettings(), testNow)

	assert.Equal(t, models.StatusLearning, updated.Status)
	assert.Equal(t, 2, updated.IntervalDays, "learning words keep the unscaled base interval")
	assert.Equal(t, 2.5, updated.Ease, "good leaves ease unchanged")
	assert.Equal(t, 1, updated.Reviews)
	require.NotNil(t, updated.NextReview)
	assert.Equal(t, testNow.AddDate(0, 0, 2), *updated.NextReview)
	require.NotNil(t, updated.LastReview)
	assert.Equal(t, testNow, *updated.LastReview)
}

func TestApplyRating_Difficult(t *testing.T) {
	s := srs.NewSeededScheduler(1)
	w := newTestWord(models.StatusReview, 10, 2.5)

	updated := s.ApplyRating(w, models.RatingDifficult, models.DefaultStudySettings(), testNow)

	assert.Equal(t, models.StatusLearning, updated.Status, "difficult demotes to learning")
	assert.Equal(t, 1, updated.IntervalDays, "interval resets to the difficult base")
	assert.InDelta(t, 2.3, updated.Ease, 1e-9, "difficult decreases ease by 0.2")
}

func TestApplyRating_EaseStaysClamped(t *testing.T) {
	s := srs.NewSeededScheduler(1)
	settings := models.DefaultStudySettings()

	w := newTestWord(models.StatusReview, 10, 1.4)
	for i := 0; i < 10; i++ {
		w = s.ApplyRating(w, models.RatingDifficult, settings, testNow)
		assert.GreaterOrEqual(t, w.Ease, models.MinEase, "ease must never drop below 1.3")
	}

	w = newTestWord(models.StatusReview, 10, 2.9)
	for i := 0; i < 10; i++ {
		w = s.ApplyRating(w, models.RatingEasy, settings, testNow)
		assert.LessOrEqual(t, w.Ease, models.MaxEase, "ease must never exceed 3.0")
	}
}

func TestApplyRating_ReviewIntervalScaling(t *testing.T) {
	s := srs.NewSeededScheduler(1)
	settings := models.DefaultStudySettings()
	w := newTestWord(models.StatusReview, 5, 2.5)

	updated := s.ApplyRating(w, models.RatingGood, settings, testNow)

	// good base 2 * ease 2.5 = 5
	assert.Equal(t, models.StatusReview, updated.Status)
	assert.Equal(t, 5, updated.IntervalDays)
	require.NotNil(t, updated.NextReview)
	require.NotNil(t, updated.LastReview)
	assert.Equal(t, updated.LastReview.AddDate(0, 0, 5), *updated.NextReview,
		"next review must be last review plus the scaled interval")
}

func TestApplyRating_MasteredGate(t *testing.T) {
	s := srs.NewSeededScheduler(1)
	settings := models.DefaultStudySettings()

	// ease 2.5 -> 2.6, scaled easy interval round(4*2.6)=10 >= 7: promote
	w := newTestWord(models.StatusReview, 2, 2.5)
	updated := s.ApplyRating(w, models.RatingEasy, settings, testNow)
	assert.Equal(t, models.StatusMastered, updated.Status)
	assert.Equal(t, 10, updated.IntervalDays)

	// ease floor 1.3 -> 1.4, round(4*1.4)=6 < 7: stays in review
	w = newTestWord(models.StatusReview, 2, 1.3)
	updated = s.ApplyRating(w, models.RatingEasy, settings, testNow)
	assert.Equal(t, models.StatusReview, updated.Status)
	assert.Equal(t, 6, updated.IntervalDays)
}

func TestApplyRating_LearningPromotionNeedsInterval(t *testing.T) {
	s := srs.NewSeededScheduler(1)
	settings := models.DefaultStudySettings()

	w := newTestWord(models.StatusLearning, 0, 2.5)
	updated := s.ApplyRating(w, models.RatingGood, settings, testNow)
	assert.Equal(t, models.StatusLearning, updated.Status, "no promotion before any interval accumulated")

	w = newTestWord(models.StatusLearning, 2, 2.5)
	updated = s.ApplyRating(w, models.RatingGood, settings, testNow)
	assert.Equal(t, models.StatusReview, updated.Status)
}

func TestApplyRating_StatusLadder(t *testing.T) {
	tests := []struct {
		from     models.Status
		rating   models.Rating
		interval int
		want     models.Status
	}{
		{models.StatusNew, models.RatingDifficult, 0, models.StatusLearning},
		{models.StatusNew, models.RatingGood, 0, models.StatusLearning},
		{models.StatusNew, models.RatingEasy, 0, models.StatusReview},
		{models.StatusLearning, models.RatingDifficult, 2, models.StatusLearning},
		{models.StatusLearning, models.RatingGood, 2, models.StatusReview},
		{models.StatusLearning, models.RatingEasy, 2, models.StatusReview},
		{models.StatusReview, models.RatingDifficult, 10, models.StatusLearning},
		{models.StatusReview, models.RatingGood, 10, models.StatusReview},
		{models.StatusMastered, models.RatingDifficult, 30, models.StatusLearning},
		{models.StatusMastered, models.RatingGood, 30, models.StatusMastered},
		{models.StatusMastered, models.RatingEasy, 30, models.StatusMastered},
	}

	s := srs.NewSeededScheduler(1)
	settings := models.DefaultStudySettings()
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s_%s", tt.from, tt.rating), func(t *testing.T) {
			w := newTestWord(tt.from, tt.interval, 2.5)
			updated := s.ApplyRating(w, tt.rating, settings, testNow)
			assert.Equal(t, tt.want, updated.Status)
		})
	}
}

func TestApplyRating_NeverSkipsMastered(t *testing.T) {
	// A new word cannot reach mastered in a single rating, even on easy.
	s := srs.NewSeededScheduler(1)
	w := newTestWord(models.StatusNew, 0, 3.0)

	updated := s.ApplyRating(w, models.RatingEasy, models.DefaultStudySettings(), testNow)

	assert.Equal(t, models.StatusReview, updated.Status)
}

func TestApplyRating_FullPromotionScenario(t *testing.T) {
	s := srs.NewSeededScheduler(1)
	settings := models.DefaultStudySettings()
	w := newTestWord(models.StatusNew, 0, 2.5)

	w = s.ApplyRating(w, models.RatingGood, settings, testNow)
	require.Equal(t, models.StatusLearning, w.Status)
	require.Equal(t, 2, w.IntervalDays)

	w = s.ApplyRating(w, models.RatingGood, settings, testNow.AddDate(0, 0, 2))
	require.Equal(t, models.StatusReview, w.Status)

	w = s.ApplyRating(w, models.RatingEasy, settings, testNow.AddDate(0, 0, 7))
	assert.Equal(t, models.StatusMastered, w.Status)
	assert.GreaterOrEqual(t, w.IntervalDays, 7)
	assert.Equal(t, 3, w.Reviews)
}

func buildPool(numDue, numNew int) []models.Word {
	words := make([]models.Word, 0, numDue+numNew)
	for i := 0; i < numDue; i++ {
		words = append(words, newTestWord(models.StatusReview, 3, 2.5))
	}
	for i := 0; i < numNew; i++ {
		words = append(words, newTestWord(models.StatusNew, 0, 2.5))
	}
	return words
}

func TestSelectSession_FillsDailyCap(t *testing.T) {
	s := srs.NewSeededScheduler(42)
	settings := models.DefaultStudySettings() // 20 cards, 10 new

	session := s.SelectSession(buildPool(30, 5), settings, testNow)

	require.Len(t, session, 20)
	var numNew int
	for _, w := range session {
		if w.Status == models.StatusNew {
			numNew++
		}
	}
	assert.Equal(t, 5, numNew, "new partition exhausted before its cap")
}

func TestSelectSession_NewCardCap(t *testing.T) {
	s := srs.NewSeededScheduler(42)
	settings := models.DefaultStudySettings()

	session := s.SelectSession(buildPool(5, 40), settings, testNow)

	require.Len(t, session, 15)
	var numNew int
	for _, w := range session {
		if w.Status == models.StatusNew {
			numNew++
		}
	}
	assert.Equal(t, 10, numNew, "new words capped at NewCardsPerDay")
}

func TestSelectSession_SkipsNotYetDue(t *testing.T) {
	s := srs.NewSeededScheduler(42)
	w := newTestWord(models.StatusReview, 5, 2.5)
	future := testNow.AddDate(0, 0, 5)
	w.NextReview = &future

	session := s.SelectSession([]models.Word{w}, models.DefaultStudySettings(), testNow)

	assert.Empty(t, session)
}

func TestSelectSession_NilNextReviewIsDue(t *testing.T) {
	s := srs.NewSeededScheduler(42)
	w := newTestWord(models.StatusLearning, 1, 2.5)
	w.NextReview = nil

	session := s.SelectSession([]models.Word{w}, models.DefaultStudySettings(), testNow)

	require.Len(t, session, 1)
	assert.Equal(t, w.ID, session[0].ID)
}

func TestSelectSession_SameInputsSameSet(t *testing.T) {
	pool := buildPool(12, 3)
	settings := models.DefaultStudySettings()

	first := srs.NewSeededScheduler(1).SelectSession(pool, settings, testNow)
	second := srs.NewSeededScheduler(99).SelectSession(pool, settings, testNow)

	ids := func(words []models.Word) map[uuid.UUID]bool {
		set := make(map[uuid.UUID]bool, len(words))
		for _, w := range words {
			set[w.ID] = true
		}
		return set
	}
	assert.Equal(t, ids(first), ids(second), "selection may reorder but must return the same set")
}

func TestApplyTestResult(t *testing.T) {
	tests := []struct {
		from    models.Status
		correct bool
		want    models.Status
	}{
		{models.StatusNew, true, models.StatusLearning},
		{models.StatusLearning, true, models.StatusReview},
		{models.StatusReview, true, models.StatusMastered},
		{models.StatusMastered, true, models.StatusMastered},
		{models.StatusMastered, false, models.StatusReview},
		{models.StatusReview, false, models.StatusLearning},
		{models.StatusLearning, false, models.StatusLearning},
		{models.StatusNew, false, models.StatusNew},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s_correct_%v", tt.from, tt.correct), func(t *testing.T) {
			w := newTestWord(tt.from, 5, 2.2)
			updated := srs.ApplyTestResult(w, tt.correct, testNow)

			assert.Equal(t, tt.want, updated.Status)
			require.NotNil(t, updated.LastTested)
			assert.Equal(t, testNow, *updated.LastTested)
			assert.Equal(t, w.IntervalDays, updated.IntervalDays, "tests never touch the interval")
			assert.Equal(t, w.Ease, updated.Ease, "tests never touch the ease")
			assert.Equal(t, w.Reviews, updated.Reviews)
		})
	}
}
