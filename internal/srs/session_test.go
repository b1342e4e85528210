package srs_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmeunier/vocaflash/internal/models"
	"github.com/lmeunier/vocaflash/internal/srs"
)

func newTestSession(numWords int) *srs.Session {
	words := make([]models.Word, 0, numWords)
	for i := 0; i < numWords; i++ {
		words = append(words, newTestWord(models.StatusNew, 0, 2.5))
	}
	return srs.NewSession(uuid.New(), words, models.DefaultStudySettings(), testNow)
}

func TestSession_StartsHidden(t *testing.T) {
	sess := newTestSession(3)

	assert.False(t, sess.Revealed)
	assert.False(t, sess.Done())
	assert.Equal(t, 3, sess.Remaining())
	require.NotNil(t, sess.Current())
}

func TestSession_RatingRequiresReveal(t *testing.T) {
	sess := newTestSession(2)

	err := sess.CheckRatable()
	assert.ErrorIs(t, err, srs.ErrNotRevealed, "rating an unrevealed card must be rejected")

	require.NoError(t, sess.Flip())
	assert.NoError(t, sess.CheckRatable())
}

func TestSession_FlipToggles(t *testing.T) {
	sess := newTestSession(1)

	require.NoError(t, sess.Flip())
	assert.True(t, sess.Revealed)
	require.NoError(t, sess.Flip())
	assert.False(t, sess.Revealed, "flipping back hides the answer again")
}

func TestSession_AdvanceResetsReveal(t *testing.T) {
	sess := newTestSession(3)

	require.NoError(t, sess.Flip())
	next := sess.Advance()

	require.NotNil(t, next)
	assert.False(t, sess.Revealed, "the next card starts on its front side")
	assert.Equal(t, 1, sess.Completed)
	assert.Equal(t, 2, sess.Remaining())
}

func TestSession_CompletesAtEnd(t *testing.T) {
	sess := newTestSession(2)

	require.NoError(t, sess.Flip())
	require.NotNil(t, sess.Advance())
	require.NoError(t, sess.Flip())
	last := sess.Advance()

	assert.Nil(t, last)
	assert.True(t, sess.Done())
	assert.Equal(t, 2, sess.Completed)
	assert.Nil(t, sess.Current())
	assert.Equal(t, 0, sess.Remaining())
}

func TestSession_FinishedRejectsInteraction(t *testing.T) {
	sess := newTestSession(0)

	assert.True(t, sess.Done())
	assert.ErrorIs(t, sess.Flip(), srs.ErrSessionFinished)
	assert.ErrorIs(t, sess.CheckRatable(), srs.ErrSessionFinished)
	assert.Nil(t, sess.Advance())
}
