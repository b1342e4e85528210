package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/lmeunier/vocaflash/internal/models"
	"github.com/lmeunier/vocaflash/internal/repository"
	"github.com/lmeunier/vocaflash/internal/repository/sqlite"
	"github.com/lmeunier/vocaflash/internal/testutil"
)

type ListRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.ListRepository
}

func (s *ListRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewListRepository(s.db)
}

func (s *ListRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *ListRepositorySuite) TestInsertAndGet() {
	ctx := context.Background()
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	list := models.NewList("Spanish Verbs", now)
	err := s.repo.Insert(ctx, list)
	s.Require().NoError(err)

	got, err := s.repo.Get(ctx, list.ID)
	s.Require().NoError(err)
	s.Assert().Equal(list.ID, got.ID)
	s.Assert().Equal("Spanish Verbs", got.Name)
	s.Assert().WithinDuration(now, got.CreatedAt, time.Second)
}

func (s *ListRepositorySuite) TestInsertDuplicateID() {
	ctx := context.Background()
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	list := models.NewList("French Nouns", now)
	s.Require().NoError(s.repo.Insert(ctx, list))

	err := s.repo.Insert(ctx, list)
	s.Assert().ErrorIs(err, repository.ErrDuplicate)
}

func (s *ListRepositorySuite) TestGetNotFound() {
	ctx := context.Background()

	_, err := s.repo.Get(ctx, uuid.New())
	s.Assert().ErrorIs(err, repository.ErrNotFound)
}

func (s *ListRepositorySuite) TestListOrderedByCreation() {
	ctx := context.Background()
	base := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	first := models.NewList("First", base)
	second := models.NewList("Second", base.Add(time.Minute))
	s.Require().NoError(s.repo.Insert(ctx, second))
	s.Require().NoError(s.repo.Insert(ctx, first))

	lists, err := s.repo.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(lists, 2)
	s.Assert().Equal("First", lists[0].Name)
	s.Assert().Equal("Second", lists[1].Name)
}

func (s *ListRepositorySuite) TestRename() {
	ctx := context.Background()
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	list := models.NewList("Old Name", now)
	s.Require().NoError(s.repo.Insert(ctx, list))

	later := now.Add(time.Hour)
	err := s.repo.Rename(ctx, list.ID, "New Name", later)
	s.Require().NoError(err)

	got, err := s.repo.Get(ctx, list.ID)
	s.Require().NoError(err)
	s.Assert().Equal("New Name", got.Name)
	s.Assert().WithinDuration(later, got.UpdatedAt, time.Second)
}

func (s *ListRepositorySuite) TestRenameNotFound() {
	ctx := context.Background()

	err := s.repo.Rename(ctx, uuid.New(), "Whatever", time.Now())
	s.Assert().ErrorIs(err, repository.ErrNotFound)
}

func (s *ListRepositorySuite) TestDeleteCascadesToWordsAndStats() {
	ctx := context.Background()
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	list := models.NewList("Doomed", now)
	s.Require().NoError(s.repo.Insert(ctx, list))

	word := models.NewWord(list.ID, "hola", "hello", now)
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO words (id, list_id, original, translation, status, interval_days, ease, reviews, next_review, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, word.ID.String(), list.ID.String(), word.Original, word.Translation, word.Status.String(),
		word.IntervalDays, word.Ease, word.Reviews, now, now, now)
	s.Require().NoError(err)

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO test_stats (list_id, test_type, score, num_questions, num_correct, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, list.ID.String(), "writing", 80, 10, 8, now)
	s.Require().NoError(err)

	s.Require().NoError(s.repo.Delete(ctx, list.ID))

	_, err = s.repo.Get(ctx, list.ID)
	s.Assert().ErrorIs(err, repository.ErrNotFound)

	var wordCount, statCount int
	s.Require().NoError(s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM words WHERE list_id = ?`, list.ID.String()).Scan(&wordCount))
	s.Require().NoError(s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM test_stats WHERE list_id = ?`, list.ID.String()).Scan(&statCount))
	s.Assert().Equal(0, wordCount)
	s.Assert().Equal(0, statCount)
}

func (s *ListRepositorySuite) TestDeleteNotFound() {
	ctx := context.Background()

	err := s.repo.Delete(ctx, uuid.New())
	s.Assert().ErrorIs(err, repository.ErrNotFound)
}

func TestListRepositorySuite(t *testing.T) {
	suite.Run(t, new(ListRepositorySuite))
}
