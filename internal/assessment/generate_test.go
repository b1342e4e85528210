package assessment_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmeunier/vocaflash/internal/assessment"
	"github.com/lmeunier/vocaflash/internal/models"
)

var testNow = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

func buildWords(n int) []models.Word {
	listID := uuid.New()
	words := make([]models.Word, 0, n)
	for i := 0; i < n; i++ {
		words = append(words, models.NewWord(listID,
			fmt.Sprintf("mot%d", i), fmt.Sprintf("word%d", i), testNow))
	}
	return words
}

func TestGenerate_TrueFalse(t *testing.T) {
	g := assessment.NewSeededGenerator(7)
	words := buildWords(10)

	questions, err := g.Generate(words, models.TestTrueFalse, 20)

	require.NoError(t, err)
	require.Len(t, questions, 10, "one question per word when the set fits the cap")
	for _, q := range questions {
		assert.Equal(t, models.TestTrueFalse, q.Type)
		assert.NotEmpty(t, q.Prompt)
		assert.NotEmpty(t, q.Proposed, "true-false always proposes an answer")
		assert.Empty(t, q.Options)
		if q.Expected {
			assert.Equal(t, q.Answer, q.Proposed)
		} else {
			assert.NotEqual(t, q.Answer, q.Proposed, "a false proposal must be a distractor")
		}
	}
}

func TestGenerate_MultipleChoice(t *testing.T) {
	g := assessment.NewSeededGenerator(7)
	words := buildWords(10)

	questions, err := g.Generate(words, models.TestMultipleChoice, 20)

	require.NoError(t, err)
	for _, q := range questions {
		assert.Len(t, q.Options, 4, "correct answer plus three distractors")
		assert.Contains(t, q.Options, q.Answer)
	}
}

func TestGenerate_MultipleChoiceSmallSet(t *testing.T) {
	g := assessment.NewSeededGenerator(7)
	words := buildWords(2)

	questions, err := g.Generate(words, models.TestMultipleChoice, 20)

	require.NoError(t, err)
	for _, q := range questions {
		assert.Len(t, q.Options, 2, "only one distractor available in a two-word set")
		assert.Contains(t, q.Options, q.Answer)
	}
}

func TestGenerate_Writing(t *testing.T) {
	g := assessment.NewSeededGenerator(7)
	words := buildWords(5)

	questions, err := g.Generate(words, models.TestWriting, 20)

	require.NoError(t, err)
	for _, q := range questions {
		assert.Empty(t, q.Options)
		assert.Empty(t, q.Proposed)
		assert.NotEmpty(t, q.Answer)
	}
}

func TestGenerate_DirectionConsistent(t *testing.T) {
	g := assessment.NewSeededGenerator(7)
	words := buildWords(20)

	questions, err := g.Generate(words, models.TestWriting, 20)

	require.NoError(t, err)
	var forward, reverse int
	for _, q := range questions {
		switch q.Direction {
		case assessment.DirectionForward:
			forward++
			assert.Equal(t, q.Word.Original, q.Prompt)
			assert.Equal(t, q.Word.Translation, q.Answer)
		case assessment.DirectionReverse:
			reverse++
			assert.Equal(t, q.Word.Translation, q.Prompt)
			assert.Equal(t, q.Word.Original, q.Answer)
		}
	}
	assert.Equal(t, 20, forward+reverse)
}

func TestGenerate_CapsAtTwenty(t *testing.T) {
	g := assessment.NewSeededGenerator(7)
	words := buildWords(50)

	questions, err := g.Generate(words, models.TestTrueFalse, 0)

	require.NoError(t, err)
	assert.Len(t, questions, assessment.MaxQuestions)
}

func TestGenerate_SamplesWithoutReplacement(t *testing.T) {
	g := assessment.NewSeededGenerator(7)
	words := buildWords(50)

	questions, err := g.Generate(words, models.TestWriting, 20)

	require.NoError(t, err)
	seen := make(map[uuid.UUID]bool)
	for _, q := range questions {
		assert.False(t, seen[q.WordID], "a word must not appear twice in one assessment")
		seen[q.WordID] = true
	}
}

func TestGenerate_EmptySet(t *testing.T) {
	g := assessment.NewSeededGenerator(7)

	_, err := g.Generate(nil, models.TestTrueFalse, 20)

	assert.ErrorIs(t, err, assessment.ErrNoWords)
}

func TestGenerate_InvalidTestType(t *testing.T) {
	g := assessment.NewSeededGenerator(7)

	_, err := g.Generate(buildWords(3), models.TestType(99), 20)

	assert.ErrorIs(t, err, assessment.ErrInvalidTestType)
}

func TestGenerate_SingleWordTrueFalse(t *testing.T) {
	g := assessment.NewSeededGenerator(7)
	words := buildWords(1)

	questions, err := g.Generate(words, models.TestTrueFalse, 20)

	require.NoError(t, err)
	require.Len(t, questions, 1)
	// No distractor exists, so the proposal must be the correct answer.
	assert.True(t, questions[0].Expected)
	assert.Equal(t, questions[0].Answer, questions[0].Proposed)
}

func TestScore(t *testing.T) {
	tf := assessment.Question{Type: models.TestTrueFalse, Expected: true}
	assert.True(t, assessment.Score(tf, "true"))
	assert.False(t, assessment.Score(tf, "false"))
	assert.False(t, assessment.Score(tf, "maybe"), "unparseable booleans are wrong answers")

	mc := assessment.Question{Type: models.TestMultipleChoice, Answer: "chat"}
	assert.True(t, assessment.Score(mc, "chat"))
	assert.False(t, assessment.Score(mc, "chien"))

	writing := assessment.Question{Type: models.TestWriting, Answer: "café"}
	assert.True(t, assessment.Score(writing, "cafe"))
	assert.False(t, assessment.Score(writing, "thé"))
}

func TestFinish(t *testing.T) {
	listID := uuid.New()
	answers := []assessment.Answer{
		{Correct: true},
		{Correct: true},
		{Correct: false},
	}

	stat, err := assessment.Finish(listID, models.TestWriting, answers, testNow)

	require.NoError(t, err)
	assert.Equal(t, listID, stat.ListID)
	assert.Equal(t, models.TestWriting, stat.TestType)
	assert.Equal(t, 67, stat.Score, "score rounds to the nearest percent")
	assert.Equal(t, 3, stat.NumQuestions)
	assert.Equal(t, 2, stat.NumCorrect)
	assert.Equal(t, testNow, stat.CreatedAt)
}

func TestFinish_NoAnswers(t *testing.T) {
	_, err := assessment.Finish(uuid.New(), models.TestWriting, nil, testNow)
	assert.Error(t, err)
}
