package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/turnwise/standup/internal/services/standup/storage"
)

func scanMembership(scanner interface{ Scan(...any) error }) (storage.Membership, error) {
	var (
		membership storage.Membership
		createdAt  int64
	)
	err := scanner.Scan(
		&membership.StandupID,
		&membership.UserID,
		&membership.Position,
		&createdAt,
	)
	if err != nil {
		return storage.Membership{}, err
	}
	membership.CreatedAt = fromMillis(createdAt)
	return membership, nil
}

// AddMember appends the user to the end of the roster. Joining twice is
// idempotent: the existing membership comes back with created=false.
func (s *Store) AddMember(ctx context.Context, standupID, userID string) (storage.Membership, bool, error) {
	if err := ctx.Err(); err != nil {
		return storage.Membership{}, false, err
	}
	if err := s.ready(); err != nil {
		return storage.Membership{}, false, err
	}
	standupID = strings.TrimSpace(standupID)
	userID = strings.TrimSpace(userID)
	if standupID == "" || userID == "" {
		return storage.Membership{}, false, fmt.Errorf("standup id and user id are required")
	}

	tx, err := s.begin(ctx)
	if err != nil {
		return storage.Membership{}, false, err
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(
		ctx,
		`SELECT standup_id, user_id, position, created_at FROM standup_members
		 WHERE standup_id = ? AND user_id = ?`,
		standupID, userID,
	)
	existing, err := scanMembership(row)
	switch {
	case err == nil:
		return existing, false, nil
	case !errors.Is(err, sql.ErrNoRows):
		return storage.Membership{}, false, fmt.Errorf("add member: %w", err)
	}

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM standups WHERE id = ?`, standupID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.Membership{}, false, storage.ErrNotFound
	}
	if err != nil {
		return storage.Membership{}, false, fmt.Errorf("add member: %w", err)
	}

	var next int
	err = tx.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM standup_members WHERE standup_id = ?`,
		standupID,
	).Scan(&next)
	if err != nil {
		return storage.Membership{}, false, fmt.Errorf("add member: %w", err)
	}

	now := time.Now()
	membership := storage.Membership{
		StandupID: standupID,
		UserID:    userID,
		Position:  next,
		CreatedAt: now,
	}
	_, err = tx.ExecContext(
		ctx,
		`INSERT INTO standup_members (standup_id, user_id, position, created_at)
		 VALUES (?, ?, ?, ?)`,
		standupID, userID, next, toMillis(now),
	)
	if err != nil {
		if isConstraintError(err) {
			return storage.Membership{}, false, storage.ErrConflict
		}
		return storage.Membership{}, false, execErr("add member", err)
	}
	if err := s.commit(tx); err != nil {
		return storage.Membership{}, false, err
	}
	return membership, true, nil
}

// RemoveMember drops the membership and the user's update for that standup,
// then renumbers the remaining roster so positions stay contiguous.
func (s *Store) RemoveMember(ctx context.Context, standupID, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.ready(); err != nil {
		return err
	}
	standupID = strings.TrimSpace(standupID)
	userID = strings.TrimSpace(userID)
	if standupID == "" || userID == "" {
		return fmt.Errorf("standup id and user id are required")
	}

	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(
		ctx,
		`DELETE FROM standup_members WHERE standup_id = ? AND user_id = ?`,
		standupID, userID,
	)
	if err != nil {
		return execErr("remove member", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("remove member: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}

	_, err = tx.ExecContext(
		ctx,
		`DELETE FROM updates WHERE standup_id = ? AND user_id = ?`,
		standupID, userID,
	)
	if err != nil {
		return execErr("remove member", err)
	}

	if err := renumberRoster(ctx, tx, standupID); err != nil {
		return err
	}
	return s.commit(tx)
}

// ListMembers returns the roster in position order.
func (s *Store) ListMembers(ctx context.Context, standupID string) ([]storage.Membership, error) {
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
		`SELECT standup_id, user_id, position, created_at FROM standup_members
		 WHERE standup_id = ? ORDER BY position ASC`,
		standupID,
	)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	var members []storage.Membership
	for rows.Next() {
		membership, err := scanMembership(rows)
		if err != nil {
			return nil, fmt.Errorf("list members: %w", err)
		}
		members = append(members, membership)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return members, nil
}

// ListMembershipsByUser returns every roster the user belongs to.
func (s *Store) ListMembershipsByUser(ctx context.Context, userID string) ([]storage.Membership, error) {
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
		`SELECT standup_id, user_id, position, created_at FROM standup_members
		 WHERE user_id = ? ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}
	defer rows.Close()

	var memberships []storage.Membership
	for rows.Next() {
		membership, err := scanMembership(rows)
		if err != nil {
			return nil, fmt.Errorf("list memberships: %w", err)
		}
		memberships = append(memberships, membership)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}
	return memberships, nil
}

// ReplaceOrder rewrites the roster positions to match orderedUserIDs exactly.
// The caller must pass the complete current roster; a mismatch means the
// roster changed under it and comes back as ErrConflict.
func (s *Store) ReplaceOrder(ctx context.Context, standupID string, orderedUserIDs []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.ready(); err != nil {
		return err
	}
	standupID = strings.TrimSpace(standupID)
	if standupID == "" {
		return fmt.Errorf("standup id is required")
	}

	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := replaceOrderTx(ctx, tx, standupID, orderedUserIDs); err != nil {
		return err
	}
	return s.commit(tx)
}

func replaceOrderTx(ctx context.Context, tx *sql.Tx, standupID string, orderedUserIDs []string) error {
	var count int
	err := tx.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM standup_members WHERE standup_id = ?`,
		standupID,
	).Scan(&count)
	if err != nil {
		return fmt.Errorf("replace order: %w", err)
	}
	if count != len(orderedUserIDs) {
		return storage.ErrConflict
	}

	for i, userID := range orderedUserIDs {
		result, err := tx.ExecContext(
			ctx,
			`UPDATE standup_members SET position = ? WHERE standup_id = ? AND user_id = ?`,
			i,
			standupID,
			userID,
		)
		if err != nil {
			return execErr("replace order", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("replace order: %w", err)
		}
		if affected == 0 {
			return storage.ErrConflict
		}
	}
	return nil
}

func renumberRoster(ctx context.Context, tx *sql.Tx, standupID string) error {
	rows, err := tx.QueryContext(
		ctx,
		`SELECT user_id FROM standup_members WHERE standup_id = ? ORDER BY position ASC`,
		standupID,
	)
	if err != nil {
		return fmt.Errorf("renumber roster: %w", err)
	}
	var userIDs []string
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			rows.Close()
			return fmt.Errorf("renumber roster: %w", err)
		}
		userIDs = append(userIDs, userID)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return fmt.Errorf("renumber roster: %w", err)
	}
	rows.Close()

	return replaceOrderTx(ctx, tx, standupID, userIDs)
}
