package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lmeunier/vocaflash/internal/assessment"
	"github.com/lmeunier/vocaflash/internal/errors"
	"github.com/lmeunier/vocaflash/internal/logger"
	"github.com/lmeunier/vocaflash/internal/models"
	"github.com/lmeunier/vocaflash/internal/repository"
	"github.com/lmeunier/vocaflash/internal/srs"
)

// TestState is the client-facing view of a running test: the current
// question without its answer, plus the cursor.
type TestState struct {
	TestID    uuid.UUID            `json:"test_id"`
	ListID    uuid.UUID            `json:"list_id"`
	TestType  models.TestType      `json:"test_type"`
	Question  *assessment.Question `json:"question,omitempty"`
	Answered  int                  `json:"answered"`
	Remaining int                  `json:"remaining"`
	Done      bool                 `json:"done"`
}

// AnswerResult reports the grading of one submitted answer.
type AnswerResult struct {
	Correct bool   `json:"correct"`
	Answer  string `json:"answer"`
	TestState
}

type activeTest struct {
	id        uuid.UUID
	listID    uuid.UUID
	testType  models.TestType
	questions []assessment.Question
	answers   []assessment.Answer
	startedAt time.Time
}

func (t *activeTest) done() bool {
	return len(t.answers) >= len(t.questions)
}

func (t *activeTest) current() *assessment.Question {
	if t.done() {
		return nil
	}
	return &t.questions[len(t.answers)]
}

// AssessmentService runs knowledge tests over a list and keeps their
// statistics. Tests live in memory until finished; only the final result
// and the per-word status feedback touch the store.
type AssessmentService interface {
	StartTest(ctx context.Context, listID uuid.UUID, testType models.TestType, maxQuestions int) (*TestState, error)
	SubmitAnswer(ctx context.Context, testID uuid.UUID, given string) (*AnswerResult, error)
	FinishTest(ctx context.Context, testID uuid.UUID) (*models.TestStat, error)
	GetListStats(ctx context.Context, listID uuid.UUID) ([]models.TestStat, error)
}

type assessmentService struct {
	lists     repository.ListRepository
	words     repository.WordRepository
	stats     repository.StatsRepository
	generator *assessment.Generator

	mu    sync.Mutex
	tests map[uuid.UUID]*activeTest
}

// NewAssessmentService creates a new AssessmentService
func NewAssessmentService(lists repository.ListRepository, words repository.WordRepository, stats repository.StatsRepository, generator *assessment.Generator) AssessmentService {
	return &assessmentService{
		lists:     lists,
		words:     words,
		stats:     stats,
		generator: generator,
		tests:     make(map[uuid.UUID]*activeTest),
	}
}

func (s *assessmentService) StartTest(ctx context.Context, listID uuid.UUID, testType models.TestType, maxQuestions int) (*TestState, error) {
	log := logger.FromContext(ctx)

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

	questions, err := s.generator.Generate(words, testType, maxQuestions)
	if err != nil {
		switch err {
		case assessment.ErrNoWords:
			return nil, errors.NewValidationError("list", "has no words to test")
		case assessment.ErrInvalidTestType:
			return nil, errors.NewValidationError("test_type", "unknown test type")
		}
		log.Error("failed to generate questions: %v", err)
		return nil, errors.NewInternalError(err)
	}

	test := &activeTest{
		id:        uuid.New(),
		listID:    listID,
		testType:  testType,
		questions: questions,
		startedAt: time.Now(),
	}
	log.Info("test started: id=%s, list_id=%s, type=%s, questions=%d", test.id, listID, testType, len(questions))

	s.mu.Lock()
	s.tests[test.id] = test
	s.mu.Unlock()

	return testSnapshot(test), nil
}

func (s *assessmentService) SubmitAnswer(ctx context.Context, testID uuid.UUID, given string) (*AnswerResult, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	test, err := s.lookupTest(testID)
	if err != nil {
		return nil, err
	}

	question := test.current()
	if question == nil {
		return nil, errors.NewValidationError("test", "all questions already answered")
	}

	correct := assessment.Score(*question, given)
	test.answers = append(test.answers, assessment.Answer{
		Question: *question,
		Given:    given,
		Correct:  correct,
	})
	log.Debug("answer submitted: test=%s, word=%s, correct=%t", testID, question.WordID, correct)

	return &AnswerResult{
		Correct:   correct,
		Answer:    question.Answer,
		TestState: *testSnapshot(test),
	}, nil
}

// FinishTest grades the whole run, persists the statistics record, and
// feeds each answer back into the word's learning status. Word feedback is
// applied independently: one failed update is logged and skipped, not
// propagated.
func (s *assessmentService) FinishTest(ctx context.Context, testID uuid.UUID) (*models.TestStat, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	test, err := s.lookupTest(testID)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	delete(s.tests, testID)
	s.mu.Unlock()

	now := time.Now()
	stat, err := assessment.Finish(test.listID, test.testType, test.answers, now)
	if err != nil {
		return nil, errors.NewValidationError("test", "no answers submitted")
	}

	id, err := s.stats.Insert(ctx, stat)
	if err != nil {
		log.Error("failed to persist test stat: %v", err)
		return nil, errors.NewInternalError(err)
	}
	stat.ID = id

	for _, answer := range test.answers {
		updated := srs.ApplyTestResult(answer.Question.Word, answer.Correct, now)
		update := models.WordUpdate{
			Status:     &updated.Status,
			LastTested: updated.LastTested,
		}
		if err := s.words.Update(ctx, updated.ID, update, updated.UpdatedAt); err != nil {
			log.Warn("failed to apply test feedback to word %s: %v", updated.ID, err)
		}
	}

	log.Info("test finished: id=%s, list_id=%s, score=%d (%d/%d)",
		testID, test.listID, stat.Score, stat.NumCorrect, stat.NumQuestions)
	return &stat, nil
}

func (s *assessmentService) GetListStats(ctx context.Context, listID uuid.UUID) ([]models.TestStat, error) {
	log := logger.FromContext(ctx)

	if _, err := s.lists.Get(ctx, listID); err != nil {
		if err == repository.ErrNotFound {
			return nil, errors.NewNotFoundError("list", listID)
		}
		log.Error("failed to check list: %v", err)
		return nil, errors.NewInternalError(err)
	}

	stats, err := s.stats.ListByList(ctx, listID)
	if err != nil {
		log.Error("failed to list test stats: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return stats, nil
}

// lookupTest must be called with s.mu held.
func (s *assessmentService) lookupTest(testID uuid.UUID) (*activeTest, error) {
	test, ok := s.tests[testID]
	if !ok {
		return nil, errors.NewNotFoundError("test", testID)
	}
	return test, nil
}

func testSnapshot(test *activeTest) *TestState {
	state := &TestState{
		TestID:    test.id,
		ListID:    test.listID,
		TestType:  test.testType,
		Answered:  len(test.answers),
		Remaining: len(test.questions) - len(test.answers),
		Done:      test.done(),
	}
	if q := test.current(); q != nil {
		copied := *q
		state.Question = &copied
	}
	return state
}
