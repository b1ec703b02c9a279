package sqlite

import (
	"context"
	"database/sql"

	"campus/internal/domain/entity"
	"campus/internal/domain/repository"

	"campus/internal/errors"
)

// identityRepository stores the single active identity in a one-row table.
type identityRepository struct {
	db *sql.DB
}

// NewIdentityRepository creates the sqlite-backed IdentityRepository.
func NewIdentityRepository(db *sql.DB) repository.IdentityRepository {
	return &identityRepository{db: db}
}

func (r *identityRepository) Load(ctx context.Context) (*entity.Identity, error) {
	row := r.db.QueryRowContext(ctx, `SELECT name, reg_no FROM identity WHERE id = 1`)

	var identity entity.Identity
	if err := row.Scan(&identity.Name, &identity.RegNo); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, errors.Wrap(err, "failed to load identity")
	}

	return &identity, nil
}

func (r *identityRepository) Save(ctx context.Context, identity *entity.Identity) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO identity (id, name, reg_no) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name, reg_no = excluded.reg_no
	`, identity.Name, identity.RegNo)
	if err != nil {
		return errors.Wrap(err, "failed to save identity")
	}

	return nil
}

func (r *identityRepository) Delete(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM identity WHERE id = 1`); err != nil {
		return errors.Wrap(err, "failed to delete identity")
	}

	return nil
}
