package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/turnwise/standup/internal/services/standup/storage"
)

const standupColumns = `id, name, description, emoji, icebreaker, started_at, finished_at, active_user_id, created_at`

func scanStandup(scanner interface{ Scan(...any) error }) (storage.Standup, error) {
	var (
		standup    storage.Standup
		startedAt  int64
		finishedAt int64
		createdAt  int64
	)
	err := scanner.Scan(
		&standup.ID,
		&standup.Name,
		&standup.Description,
		&standup.Emoji,
		&standup.Icebreaker,
		&startedAt,
		&finishedAt,
		&standup.ActiveUserID,
		&createdAt,
	)
	if err != nil {
		return storage.Standup{}, err
	}
	standup.StartedAt = fromMillis(startedAt)
	standup.FinishedAt = fromMillis(finishedAt)
	standup.CreatedAt = fromMillis(createdAt)
	return standup, nil
}

// CreateStandup inserts one draft standup row.
func (s *Store) CreateStandup(ctx context.Context, standup storage.Standup) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.ready(); err != nil {
		return err
	}
	if strings.TrimSpace(standup.ID) == "" {
		return fmt.Errorf("standup id is required")
	}
	if strings.TrimSpace(standup.Name) == "" {
		return fmt.Errorf("standup name is required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO standups (`+standupColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		standup.ID,
		standup.Name,
		standup.Description,
		standup.Emoji,
		standup.Icebreaker,
		toMillis(standup.StartedAt),
		toMillis(standup.FinishedAt),
		standup.ActiveUserID,
		toMillis(standup.CreatedAt),
	)
	if err != nil {
		if isConstraintError(err) {
			return storage.ErrConflict
		}
		return fmt.Errorf("create standup: %w", err)
	}
	return nil
}

// GetStandup returns one standup by id.
func (s *Store) GetStandup(ctx context.Context, id string) (storage.Standup, error) {
	if err := ctx.Err(); err != nil {
		return storage.Standup{}, err
	}
	if err := s.ready(); err != nil {
		return storage.Standup{}, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return storage.Standup{}, fmt.Errorf("standup id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT `+standupColumns+` FROM standups WHERE id = ?`,
		id,
	)
	standup, err := scanStandup(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Standup{}, storage.ErrNotFound
		}
		return storage.Standup{}, fmt.Errorf("get standup: %w", err)
	}
	return standup, nil
}

// ListStandups returns standups most-recent-first, optionally filtered.
func (s *Store) ListStandups(ctx context.Context, limit int, filter storage.ListFilter) ([]storage.Standup, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.ready(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than zero")
	}

	query := `SELECT ` + standupColumns + ` FROM standups`
	params := make([]any, 0, len(filter.Params)+1)
	if strings.TrimSpace(filter.Clause) != "" {
		query += ` WHERE ` + filter.Clause
		params = append(params, filter.Params...)
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT ?`
	params = append(params, limit)

	rows, err := s.sqlDB.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("list standups: %w", err)
	}
	defer rows.Close()

	standups := make([]storage.Standup, 0, limit)
	for rows.Next() {
		standup, err := scanStandup(rows)
		if err != nil {
			return nil, fmt.Errorf("list standups: %w", err)
		}
		standups = append(standups, standup)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list standups: %w", err)
	}
	return standups, nil
}

// ListFinishedStandups returns every standup whose finished_at is set.
func (s *Store) ListFinishedStandups(ctx context.Context) ([]storage.Standup, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.ready(); err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT `+standupColumns+` FROM standups WHERE finished_at != 0 ORDER BY finished_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list finished standups: %w", err)
	}
	defer rows.Close()

	var standups []storage.Standup
	for rows.Next() {
		standup, err := scanStandup(rows)
		if err != nil {
			return nil, fmt.Errorf("list finished standups: %w", err)
		}
		standups = append(standups, standup)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list finished standups: %w", err)
	}
	return standups, nil
}

// DeleteStandup removes the standup; memberships and updates cascade in the
// same implicit transaction via foreign keys. Absent ids are a no-op.
func (s *Store) DeleteStandup(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.ready(); err != nil {
		return err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("standup id is required")
	}

	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM standups WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete standup: %w", err)
	}
	return nil
}

// SetIcebreaker replaces the standup's icebreaker prompt.
func (s *Store) SetIcebreaker(ctx context.Context, id string, icebreaker string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.ready(); err != nil {
		return err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("standup id is required")
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE standups SET icebreaker = ? WHERE id = ?`,
		icebreaker,
		id,
	)
	if err != nil {
		return fmt.Errorf("set icebreaker: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("set icebreaker: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}
