package preference

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PGStorage persists preference rows in PostgreSQL. ReplaceAll runs
// delete-and-insert inside a single transaction so readers never observe
// the transient empty state.
type PGStorage struct {
	pool *pgxpool.Pool
}

// NewPGStorage creates a PostgreSQL-backed preference storage.
func NewPGStorage(pool *pgxpool.Pool) *PGStorage {
	return &PGStorage{pool: pool}
}

func (s *PGStorage) ListByUser(ctx context.Context, userID string) ([]Preference, error) {
	query := `
		SELECT id, user_id, type, channel, enabled, created_at, updated_at
		FROM notification_preferences
		WHERE user_id = $1`

	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, errors.Join(errors.New("failed to list preferences"), err)
	}
	defer rows.Close()

	var prefs []Preference
	for rows.Next() {
		var p Preference
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.Type, &p.Channel, &p.Enabled, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, errors.Join(errors.New("failed to scan preference"), err)
		}
		prefs = append(prefs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(errors.New("failed to iterate preferences"), err)
	}

	return prefs, nil
}

func (s *PGStorage) ReplaceAll(ctx context.Context, userID string, prefs []Preference) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return errors.Join(errors.New("failed to begin preference replace"), err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx,
		`DELETE FROM notification_preferences WHERE user_id = $1`, userID,
	); err != nil {
		return errors.Join(errors.New("failed to clear preferences"), err)
	}

	query := `
		INSERT INTO notification_preferences (
			id, user_id, type, channel, enabled, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	for _, p := range prefs {
		if _, err := tx.Exec(ctx, query,
			p.ID, p.UserID, p.Type, p.Channel, p.Enabled, p.CreatedAt, p.UpdatedAt,
		); err != nil {
			return errors.Join(errors.New("failed to insert preference"), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return errors.Join(errors.New("failed to commit preference replace"), err)
	}

	return nil
}

func (s *PGStorage) CountByUser(ctx context.Context, userID string) (int, error) {
	var count int
	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM notification_preferences WHERE user_id = $1`, userID,
	).Scan(&count)
	if err != nil {
		return 0, errors.Join(errors.New("failed to count preferences"), err)
	}

	return count, nil
}
