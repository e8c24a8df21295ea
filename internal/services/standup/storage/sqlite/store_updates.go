package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/turnwise/standup/internal/services/standup/storage"
)

const updateColumns = `id, standup_id, user_id, yesterday, today, started_at, finished_at, ready, created_at`

func scanUpdate(scanner interface{ Scan(...any) error }) (storage.Update, error) {
	var (
		update     storage.Update
		startedAt  int64
		finishedAt int64
		createdAt  int64
	)
	err := scanner.Scan(
		&update.ID,
		&update.StandupID,
		&update.UserID,
		&update.Yesterday,
		&update.Today,
		&startedAt,
		&finishedAt,
		&update.Ready,
		&createdAt,
	)
	if err != nil {
		return storage.Update{}, err
	}
	update.StartedAt = fromMillis(startedAt)
	update.FinishedAt = fromMillis(finishedAt)
	update.CreatedAt = fromMillis(createdAt)
	return update, nil
}

// PutUpdate inserts the update, or rewrites content and readiness on the
// existing row for the same (standup, user) pair. Turn timestamps on an
// existing row survive the rewrite.
func (s *Store) PutUpdate(ctx context.Context, update storage.Update) (storage.Update, error) {
	if err := ctx.Err(); err != nil {
		return storage.Update{}, err
	}
	if err := s.ready(); err != nil {
		return storage.Update{}, err
	}
	if strings.TrimSpace(update.ID) == "" {
		return storage.Update{}, fmt.Errorf("update id is required")
	}
	if strings.TrimSpace(update.StandupID) == "" || strings.TrimSpace(update.UserID) == "" {
		return storage.Update{}, fmt.Errorf("standup id and user id are required")
	}

	tx, err := s.begin(ctx)
	if err != nil {
		return storage.Update{}, err
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(
		ctx,
		`SELECT `+updateColumns+` FROM updates WHERE standup_id = ? AND user_id = ?`,
		update.StandupID, update.UserID,
	)
	existing, err := scanUpdate(row)
	switch {
	case err == nil:
		existing.Yesterday = update.Yesterday
		existing.Today = update.Today
		existing.Ready = update.Ready
		_, err = tx.ExecContext(
			ctx,
			`UPDATE updates SET yesterday = ?, today = ?, ready = ? WHERE id = ?`,
			existing.Yesterday, existing.Today, existing.Ready, existing.ID,
		)
		if err != nil {
			return storage.Update{}, execErr("put update", err)
		}
		if err := s.commit(tx); err != nil {
			return storage.Update{}, err
		}
		return existing, nil
	case !errors.Is(err, sql.ErrNoRows):
		return storage.Update{}, fmt.Errorf("put update: %w", err)
	}

	_, err = tx.ExecContext(
		ctx,
		`INSERT INTO updates (`+updateColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		update.ID,
		update.StandupID,
		update.UserID,
		update.Yesterday,
		update.Today,
		toMillis(update.StartedAt),
		toMillis(update.FinishedAt),
		update.Ready,
		toMillis(update.CreatedAt),
	)
	if err != nil {
		if isConstraintError(err) {
			return storage.Update{}, storage.ErrConflict
		}
		return storage.Update{}, execErr("put update", err)
	}
	if err := s.commit(tx); err != nil {
		return storage.Update{}, err
	}
	return update, nil
}

// GetUpdate returns the user's update for one standup.
func (s *Store) GetUpdate(ctx context.Context, standupID, userID string) (storage.Update, error) {
	if err := ctx.Err(); err != nil {
		return storage.Update{}, err
	}
	if err := s.ready(); err != nil {
		return storage.Update{}, err
	}
	standupID = strings.TrimSpace(standupID)
	userID = strings.TrimSpace(userID)
	if standupID == "" || userID == "" {
		return storage.Update{}, fmt.Errorf("standup id and user id are required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT `+updateColumns+` FROM updates WHERE standup_id = ? AND user_id = ?`,
		standupID, userID,
	)
	update, err := scanUpdate(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Update{}, storage.ErrNotFound
		}
		return storage.Update{}, fmt.Errorf("get update: %w", err)
	}
	return update, nil
}

// GetUpdateByID returns one update by primary key.
func (s *Store) GetUpdateByID(ctx context.Context, id string) (storage.Update, error) {
	if err := ctx.Err(); err != nil {
		return storage.Update{}, err
	}
	if err := s.ready(); err != nil {
		return storage.Update{}, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return storage.Update{}, fmt.Errorf("update id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT `+updateColumns+` FROM updates WHERE id = ?`,
		id,
	)
	update, err := scanUpdate(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Update{}, storage.ErrNotFound
		}
		return storage.Update{}, fmt.Errorf("get update: %w", err)
	}
	return update, nil
}

// SetReady flips the readiness flag on an update.
func (s *Store) SetReady(ctx context.Context, id string, ready bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.ready(); err != nil {
		return err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("update id is required")
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE updates SET ready = ? WHERE id = ?`,
		ready,
		id,
	)
	if err != nil {
		return fmt.Errorf("set ready: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("set ready: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// ListUpdatesByStandup returns every update for the standup.
func (s *Store) ListUpdatesByStandup(ctx context.Context, standupID string) ([]storage.Update, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.ready(); err != nil {
		return nil, err
	}
	standupID = strings.TrimSpace(standupID)
	if standupID == "" {
		return nil, fmt.Errorf("standup id is required")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT `+updateColumns+` FROM updates WHERE standup_id = ? ORDER BY created_at ASC, id ASC`,
		standupID,
	)
	if err != nil {
		return nil, fmt.Errorf("list updates: %w", err)
	}
	defer rows.Close()

	var updates []storage.Update
	for rows.Next() {
		update, err := scanUpdate(rows)
		if err != nil {
			return nil, fmt.Errorf("list updates: %w", err)
		}
		updates = append(updates, update)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list updates: %w", err)
	}
	return updates, nil
}

// ListUpdatesByUser returns the user's updates across all standups,
// most-recent-first by creation time.
func (s *Store) ListUpdatesByUser(ctx context.Context, userID string) ([]storage.Update, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.ready(); err != nil {
		return nil, err
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("user id is required")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT `+updateColumns+` FROM updates WHERE user_id = ? ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list updates: %w", err)
	}
	defer rows.Close()

	var updates []storage.Update
	for rows.Next() {
		update, err := scanUpdate(rows)
		if err != nil {
			return nil, fmt.Errorf("list updates: %w", err)
		}
		updates = append(updates, update)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list updates: %w", err)
	}
	return updates, nil
}
