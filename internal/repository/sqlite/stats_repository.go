package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/lmeunier/vocaflash/internal/logger"
	"github.com/lmeunier/vocaflash/internal/models"
	"github.com/lmeunier/vocaflash/internal/repository"
)

type statsRepository struct {
	db *sql.DB
}

// NewStatsRepository creates a new StatsRepository implementation
func NewStatsRepository(db *sql.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) Insert(ctx context.Context, stat models.TestStat) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("inserting test stat: list_id=%s, type=%s, score=%d", stat.ListID, stat.TestType, stat.Score)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO test_stats (list_id, test_type, score, num_questions, num_correct, created_at)
VALUES (?, ?, ?, ?, ?, ?)
`, stat.ListID.String(), stat.TestType.String(), stat.Score, stat.NumQuestions, stat.NumCorrect, stat.CreatedAt)
	if err != nil {
		log.Error("failed to insert test stat: %v", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get test stat id: %v", err)
		return 0, err
	}
	log.Debug("test stat inserted: id=%d", id)
	return id, nil
}

func (r *statsRepository) ListByList(ctx context.Context, listID uuid.UUID) ([]models.TestStat, error) {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("listing test stats: list_id=%s", listID)

	rows, err := r.db.QueryContext(ctx, `
SELECT id, list_id, test_type, score, num_questions, num_correct, created_at
FROM test_stats
WHERE list_id = ?
ORDER BY created_at DESC
`, listID.String())
	if err != nil {
		log.Error("failed to query test stats: %v", err)
		return nil, err
	}
	defer rows.Close()

	var stats []models.TestStat
	for rows.Next() {
		var s models.TestStat
		var list, testType string
		if err := rows.Scan(&s.ID, &list, &testType, &s.Score, &s.NumQuestions, &s.NumCorrect, &s.CreatedAt); err != nil {
			log.Error("failed to scan test stat row: %v", err)
			return nil, err
		}
		if s.ListID, err = uuid.Parse(list); err != nil {
			return nil, fmt.Errorf("test stat list id: %w", err)
		}
		if s.TestType, err = models.ParseTestType(testType); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	log.Debug("found %d test stats", len(stats))
	return stats, rows.Err()
}

func (r *statsRepository) DeleteByList(ctx context.Context, listID uuid.UUID) error {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("deleting test stats: list_id=%s", listID)

	// Idempotent: deleting stats for a list without any is fine.
	_, err := r.db.ExecContext(ctx, `DELETE FROM test_stats WHERE list_id = ?`, listID.String())
	if err != nil {
		log.Error("failed to delete test stats: %v", err)
	}
	return err
}
