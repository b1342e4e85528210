package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/lmeunier/vocaflash/internal/logger"
	"github.com/lmeunier/vocaflash/internal/models"
	"github.com/lmeunier/vocaflash/internal/repository"
)

type wordRepository struct {
	db *sql.DB
}

// NewWordRepository creates a new WordRepository implementation
func NewWordRepository(db *sql.DB) repository.WordRepository {
	return &wordRepository{db: db}
}

const wordColumns = `id, list_id, original, translation, status, interval_days, ease, reviews, last_review, next_review, last_tested, created_at, updated_at`

func (r *wordRepository) Insert(ctx context.Context, w models.Word) error {
	log := logger.FromContext(ctx).WithPrefix("word_repo")
	log.Debug("inserting word: id=%s, list_id=%s", w.ID, w.ListID)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO words (id, list_id, original, translation, status, interval_days, ease, reviews, last_review, next_review, last_tested, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, w.ID.String(), w.ListID.String(), w.Original, w.Translation, w.Status.String(), w.IntervalDays, w.Ease, w.Reviews,
		w.LastReview, w.NextReview, w.LastTested, w.CreatedAt, w.UpdatedAt)
	if err != nil {
		if isConstraintErr(err) {
			log.Debug("word id collision: id=%s", w.ID)
			return repository.ErrDuplicate
		}
		log.Error("failed to insert word: %v", err)
		return err
	}
	log.Debug("word inserted: id=%s", w.ID)
	return nil
}

func (r *wordRepository) Get(ctx context.Context, id uuid.UUID) (*models.Word, error) {
	log := logger.FromContext(ctx).WithPrefix("word_repo")
	log.Debug("getting word: id=%s", id)

	row := r.db.QueryRowContext(ctx, `SELECT `+wordColumns+` FROM words WHERE id = ?`, id.String())
	w, err := scanWord(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("word not found: id=%s", id)
		return nil, repository.ErrNotFound
	}
	if err != nil {
		log.Error("failed to get word: %v", err)
		return nil, err
	}
	return w, nil
}

func (r *wordRepository) List(ctx context.Context, filter models.WordFilter) ([]models.Word, error) {
	log := logger.FromContext(ctx).WithPrefix("word_repo")
	log.Debug("listing words: list_id=%s, status=%v, search=%q", filter.ListID, filter.Status, filter.Search)

	query := sqlBuilder.Select(
		"id", "list_id", "original", "translation", "status", "interval_days",
		"ease", "reviews", "last_review", "next_review", "last_tested",
		"created_at", "updated_at",
	).From("words").OrderBy("created_at")

	// Dynamic WHERE clauses
	if filter.ListID != uuid.Nil {
		query = query.Where(squirrel.Eq{"list_id": filter.ListID.String()})
	}
	if filter.Status.IsValid() {
		query = query.Where(squirrel.Eq{"status": filter.Status.String()})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(squirrel.Or{
			squirrel.Like{"original": pattern},
			squirrel.Like{"translation": pattern},
		})
	}
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build word query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to query words: %v", err)
		return nil, err
	}
	defer rows.Close()

	var words []models.Word
	for rows.Next() {
		w, err := scanWord(rows.Scan)
		if err != nil {
			log.Error("failed to scan word row: %v", err)
			return nil, err
		}
		words = append(words, *w)
	}
	log.Debug("found %d words", len(words))
	return words, rows.Err()
}

func (r *wordRepository) Update(ctx context.Context, id uuid.UUID, update models.WordUpdate, now time.Time) error {
	log := logger.FromContext(ctx).WithPrefix("word_repo")
	log.Debug("updating word: id=%s", id)

	query := sqlBuilder.Update("words").Set("updated_at", now)
	if update.Original != nil {
		query = query.Set("original", *update.Original)
	}
	if update.Translation != nil {
		query = query.Set("translation", *update.Translation)
	}
	if update.Status != nil {
		query = query.Set("status", update.Status.String())
	}
	if update.IntervalDays != nil {
		query = query.Set("interval_days", *update.IntervalDays)
	}
	if update.Ease != nil {
		query = query.Set("ease", *update.Ease)
	}
	if update.Reviews != nil {
		query = query.Set("reviews", *update.Reviews)
	}
	if update.LastReview != nil {
		query = query.Set("last_review", *update.LastReview)
	}
	if update.NextReview != nil {
		query = query.Set("next_review", *update.NextReview)
	}
	if update.LastTested != nil {
		query = query.Set("last_tested", *update.LastTested)
	}
	query = query.Where(squirrel.Eq{"id": id.String()})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build word update: %v", err)
		return err
	}

	res, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to update word: %v", err)
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		log.Debug("word not found for update: id=%s", id)
		return repository.ErrNotFound
	}
	return nil
}

func (r *wordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx).WithPrefix("word_repo")
	log.Debug("deleting word: id=%s", id)

	res, err := r.db.ExecContext(ctx, `DELETE FROM words WHERE id = ?`, id.String())
	if err != nil {
		log.Error("failed to delete word: %v", err)
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *wordRepository) Progress(ctx context.Context, listID uuid.UUID) (*models.ListProgress, error) {
	log := logger.FromContext(ctx).WithPrefix("word_repo")
	log.Debug("computing progress: list_id=%s", listID)

	rows, err := r.db.QueryContext(ctx, `
SELECT status, COUNT(*)
FROM words
WHERE list_id = ?
GROUP BY status
`, listID.String())
	if err != nil {
		log.Error("failed to query progress: %v", err)
		return nil, err
	}
	defer rows.Close()

	var p models.ListProgress
	for rows.Next() {
		var name string
		var count int
		if err := rows.Scan(&name, &count); err != nil {
			log.Error("failed to scan progress row: %v", err)
			return nil, err
		}
		status, err := models.ParseStatus(name)
		if err != nil {
			return nil, fmt.Errorf("progress for list %s: %w", listID, err)
		}
		switch status {
		case models.StatusNew:
			p.New = count
		case models.StatusLearning:
			p.Learning = count
		case models.StatusReview:
			p.Review = count
		case models.StatusMastered:
			p.Mastered = count
		}
		p.Total += count
	}
	return &p, rows.Err()
}

// scanWord reads one word row; scan is either row.Scan or rows.Scan.
func scanWord(scan func(...any) error) (*models.Word, error) {
	var w models.Word
	var id, listID, status string
	var lastReview, nextReview, lastTested sql.NullTime

	err := scan(&id, &listID, &w.Original, &w.Translation, &status, &w.IntervalDays,
		&w.Ease, &w.Reviews, &lastReview, &nextReview, &lastTested, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if w.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("word id: %w", err)
	}
	if w.ListID, err = uuid.Parse(listID); err != nil {
		return nil, fmt.Errorf("word list id: %w", err)
	}
	if w.Status, err = models.ParseStatus(status); err != nil {
		return nil, err
	}
	w.LastReview = nullableTime(lastReview)
	w.NextReview = nullableTime(nextReview)
	w.LastTested = nullableTime(lastTested)
	return &w, nil
}
