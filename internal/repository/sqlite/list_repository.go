package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lmeunier/vocaflash/internal/logger"
	"github.com/lmeunier/vocaflash/internal/models"
	"github.com/lmeunier/vocaflash/internal/repository"
)

type listRepository struct {
	db *sql.DB
}

// NewListRepository creates a new ListRepository implementation
func NewListRepository(db *sql.DB) repository.ListRepository {
	return &listRepository{db: db}
}

func (r *listRepository) Insert(ctx context.Context, l models.List) error {
	log := logger.FromContext(ctx).WithPrefix("list_repo")
	log.Debug("inserting list: id=%s, name=%s", l.ID, l.Name)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO lists (id, name, created_at, updated_at)
VALUES (?, ?, ?, ?)
`, l.ID.String(), l.Name, l.CreatedAt, l.UpdatedAt)
	if err != nil {
		if isConstraintErr(err) {
			log.Debug("list id collision: id=%s", l.ID)
			return repository.ErrDuplicate
		}
		log.Error("failed to insert list: %v", err)
		return err
	}
	return nil
}

func (r *listRepository) Get(ctx context.Context, id uuid.UUID) (*models.List, error) {
	log := logger.FromContext(ctx).WithPrefix("list_repo")
	log.Debug("getting list: id=%s", id)

	row := r.db.QueryRowContext(ctx, `SELECT id, name, created_at, updated_at FROM lists WHERE id = ?`, id.String())
	l, err := scanList(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("list not found: id=%s", id)
		return nil, repository.ErrNotFound
	}
	if err != nil {
		log.Error("failed to get list: %v", err)
		return nil, err
	}
	return l, nil
}

func (r *listRepository) List(ctx context.Context) ([]models.List, error) {
	log := logger.FromContext(ctx).WithPrefix("list_repo")
	log.Debug("listing all lists")

	rows, err := r.db.QueryContext(ctx, `SELECT id, name, created_at, updated_at FROM lists ORDER BY created_at`)
	if err != nil {
		log.Error("failed to query lists: %v", err)
		return nil, err
	}
	defer rows.Close()

	var lists []models.List
	for rows.Next() {
		l, err := scanList(rows.Scan)
		if err != nil {
			log.Error("failed to scan list row: %v", err)
			return nil, err
		}
		lists = append(lists, *l)
	}
	log.Debug("found %d lists", len(lists))
	return lists, rows.Err()
}

func (r *listRepository) Rename(ctx context.Context, id uuid.UUID, name string, now time.Time) error {
	log := logger.FromContext(ctx).WithPrefix("list_repo")
	log.Debug("renaming list: id=%s, name=%s", id, name)

	res, err := r.db.ExecContext(ctx, `UPDATE lists SET name = ?, updated_at = ? WHERE id = ?`, name, now, id.String())
	if err != nil {
		log.Error("failed to rename list: %v", err)
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

func (r *listRepository) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx).WithPrefix("list_repo")
	log.Debug("deleting list: id=%s", id)

	// Words and statistics go with the list via ON DELETE CASCADE.
	res, err := r.db.ExecContext(ctx, `DELETE FROM lists WHERE id = ?`, id.String())
	if err != nil {
		log.Error("failed to delete list: %v", err)
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	log.Debug("list deleted: id=%s", id)
	return nil
}

func scanList(scan func(...any) error) (*models.List, error) {
	var l models.List
	var id string
	if err := scan(&id, &l.Name, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}
	var err error
	if l.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("list id: %w", err)
	}
	return &l, nil
}
