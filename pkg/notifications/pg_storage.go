package notifications

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/solara-ai/notify/pkg/pg"
)

const notificationColumns = `id, user_id, type, channel, title, message, data,
	status, error_message, sent_at, read_at, created_at, updated_at`

// PGStorage persists notifications in PostgreSQL. Status transitions are
// enforced in the WHERE clause of each update so that concurrent writers
// can never move a record backwards in the lifecycle.
type PGStorage struct {
	pool *pgxpool.Pool
}

// NewPGStorage creates a PostgreSQL-backed notification storage.
func NewPGStorage(pool *pgxpool.Pool) *PGStorage {
	return &PGStorage{pool: pool}
}

func (s *PGStorage) Create(ctx context.Context, notif Notification) error {
	query := `
		INSERT INTO notifications (
			id, user_id, type, channel, title, message, data,
			status, error_message, sent_at, read_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := s.pool.Exec(ctx, query,
		notif.ID, notif.UserID, notif.Type, notif.Channel,
		notif.Title, notif.Message, notif.Data,
		notif.Status, nullableString(notif.ErrorMessage),
		notif.SentAt, notif.ReadAt, notif.CreatedAt, notif.UpdatedAt,
	)
	if err != nil {
		return errors.Join(errors.New("failed to create notification"), err)
	}

	return nil
}

func (s *PGStorage) MarkSent(ctx context.Context, id string, at time.Time) error {
	query := `
		UPDATE notifications
		SET status = $1, sent_at = $2, updated_at = $3
		WHERE id = $4 AND status = $5`

	tag, err := s.pool.Exec(ctx, query, StatusSent, at, at, id, StatusPending)
	if err != nil {
		return errors.Join(errors.New("failed to mark notification sent"), err)
	}
	if tag.RowsAffected() == 0 {
		return s.updateMissReason(ctx, id)
	}

	return nil
}

func (s *PGStorage) MarkFailed(ctx context.Context, id string, cause string) error {
	query := `
		UPDATE notifications
		SET status = $1, error_message = $2, updated_at = $3
		WHERE id = $4 AND status = $5`

	tag, err := s.pool.Exec(ctx, query, StatusFailed, cause, time.Now().UTC(), id, StatusPending)
	if err != nil {
		return errors.Join(errors.New("failed to mark notification failed"), err)
	}
	if tag.RowsAffected() == 0 {
		return s.updateMissReason(ctx, id)
	}

	return nil
}

// updateMissReason distinguishes a missing record from a record that is
// already past the expected lifecycle state.
func (s *PGStorage) updateMissReason(ctx context.Context, id string) error {
	var status Status
	err := s.pool.QueryRow(ctx, `SELECT status FROM notifications WHERE id = $1`, id).Scan(&status)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return ErrNotificationNotFound
		}
		return errors.Join(errors.New("failed to check notification status"), err)
	}

	return ErrInvalidTransition
}

func (s *PGStorage) MarkRead(ctx context.Context, userID, id string) error {
	now := time.Now().UTC()
	query := `
		UPDATE notifications
		SET status = $1, read_at = $2, updated_at = $3
		WHERE id = $4 AND user_id = $5 AND channel = $6 AND status = $7`

	// No rows matched means the record does not exist, belongs to another
	// user, or is already read. All are a deliberate no-op so existence is
	// never leaked across users.
	if _, err := s.pool.Exec(ctx, query,
		StatusRead, now, now, id, userID, ChannelWebsite, StatusSent,
	); err != nil {
		return errors.Join(errors.New("failed to mark notification read"), err)
	}

	return nil
}

func (s *PGStorage) MarkAllRead(ctx context.Context, userID string) (int, error) {
	now := time.Now().UTC()
	query := `
		UPDATE notifications
		SET status = $1, read_at = $2, updated_at = $3
		WHERE user_id = $4 AND channel = $5 AND status = $6`

	tag, err := s.pool.Exec(ctx, query,
		StatusRead, now, now, userID, ChannelWebsite, StatusSent,
	)
	if err != nil {
		return 0, errors.Join(errors.New("failed to mark notifications read"), err)
	}

	return int(tag.RowsAffected()), nil
}

func (s *PGStorage) List(ctx context.Context, userID string, limit int) ([]Notification, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE user_id = $1 AND channel = $2
		ORDER BY created_at DESC
		LIMIT $3`

	rows, err := s.pool.Query(ctx, query, userID, ChannelWebsite, limit)
	if err != nil {
		return nil, errors.Join(errors.New("failed to list notifications"), err)
	}
	defer rows.Close()

	var notifs []Notification
	for rows.Next() {
		var n Notification
		var errMsg *string
		if err := rows.Scan(
			&n.ID, &n.UserID, &n.Type, &n.Channel, &n.Title, &n.Message, &n.Data,
			&n.Status, &errMsg, &n.SentAt, &n.ReadAt, &n.CreatedAt, &n.UpdatedAt,
		); err != nil {
			return nil, errors.Join(errors.New("failed to scan notification"), err)
		}
		if errMsg != nil {
			n.ErrorMessage = *errMsg
		}
		notifs = append(notifs, n)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(errors.New("failed to iterate notifications"), err)
	}

	return notifs, nil
}

func (s *PGStorage) CountUnread(ctx context.Context, userID string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM notifications
		WHERE user_id = $1 AND channel = $2 AND status = $3`

	var count int
	err := s.pool.QueryRow(ctx, query, userID, ChannelWebsite, StatusSent).Scan(&count)
	if err != nil {
		return 0, errors.Join(errors.New("failed to count unread notifications"), err)
	}

	return count, nil
}

func (s *PGStorage) Get(ctx context.Context, userID, id string) (*Notification, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE id = $1 AND user_id = $2`

	var n Notification
	var errMsg *string
	err := s.pool.QueryRow(ctx, query, id, userID).Scan(
		&n.ID, &n.UserID, &n.Type, &n.Channel, &n.Title, &n.Message, &n.Data,
		&n.Status, &errMsg, &n.SentAt, &n.ReadAt, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrNotificationNotFound
		}
		return nil, errors.Join(errors.New("failed to get notification"), err)
	}
	if errMsg != nil {
		n.ErrorMessage = *errMsg
	}

	return &n, nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
