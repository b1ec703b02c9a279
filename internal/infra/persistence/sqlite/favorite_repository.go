package sqlite

import (
	"context"
	"database/sql"

	"campus/internal/domain/repository"

	"github.com/pkg/errors"
)

// favoriteRepository stores the favorites id set, one row per entity id.
type favoriteRepository struct {
	db *sql.DB
}

// NewFavoriteRepository creates the sqlite-backed FavoriteRepository.
func NewFavoriteRepository(db *sql.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) List(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT entity_id FROM favorites ORDER BY created_at, entity_id`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, errors.Wrap(err, "failed to scan favorite row")
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "error iterating favorite rows")
	}

	return ids, nil
}

func (r *favoriteRepository) Add(ctx context.Context, entityID string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO favorites (entity_id) VALUES (?)
		ON CONFLICT(entity_id) DO NOTHING
	`, entityID)
	if err != nil {
		return errors.Wrap(err, "failed to add favorite")
	}

	return nil
}

func (r *favoriteRepository) Remove(ctx context.Context, entityID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM favorites WHERE entity_id = ?`, entityID); err != nil {
		return errors.Wrap(err, "failed to remove favorite")
	}

	return nil
}

func (r *favoriteRepository) Contains(ctx context.Context, entityID string) (bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM favorites WHERE entity_id = ?`, entityID)

	var count int
	if err := row.Scan(&count); err != nil {
		return false, errors.Wrap(err, "failed to check favorite")
	}

	return count > 0, nil
}
