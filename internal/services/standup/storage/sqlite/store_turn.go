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

// StartTurn moves a draft standup into its running phase: it stamps
// started_at, points the active speaker at firstUserID, and opens the first
// speaker's update, all in one transaction. A standup that already started
// makes the guard miss and the call comes back ErrConflict.
func (s *Store) StartTurn(ctx context.Context, standupID, firstUserID string, now time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.ready(); err != nil {
		return err
	}
	standupID = strings.TrimSpace(standupID)
	firstUserID = strings.TrimSpace(firstUserID)
	if standupID == "" || firstUserID == "" {
		return fmt.Errorf("standup id and first user id are required")
	}

	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(
		ctx,
		`UPDATE standups SET started_at = ?, active_user_id = ?
		 WHERE id = ? AND started_at = 0 AND finished_at = 0`,
		toMillis(now), firstUserID, standupID,
	)
	if err != nil {
		return execErr("start turn", err)
	}
	if err := requireGuardHit(ctx, tx, result, standupID); err != nil {
		return err
	}

	if err := openSpeakerUpdate(ctx, tx, standupID, firstUserID, now); err != nil {
		return err
	}
	return s.commit(tx)
}

// AdvanceTurn hands the floor from one speaker to the next. The active
// pointer guard makes concurrent advances from the same observed speaker
// mutually exclusive: only one transaction's UPDATE matches.
func (s *Store) AdvanceTurn(ctx context.Context, standupID, fromUserID, toUserID string, now time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.ready(); err != nil {
		return err
	}
	standupID = strings.TrimSpace(standupID)
	fromUserID = strings.TrimSpace(fromUserID)
	toUserID = strings.TrimSpace(toUserID)
	if standupID == "" || fromUserID == "" || toUserID == "" {
		return fmt.Errorf("standup id, from user id and to user id are required")
	}

	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := moveActivePointer(ctx, tx, standupID, fromUserID, toUserID); err != nil {
		return err
	}
	if err := closeSpeakerUpdate(ctx, tx, standupID, fromUserID, now); err != nil {
		return err
	}
	if err := openSpeakerUpdate(ctx, tx, standupID, toUserID, now); err != nil {
		return err
	}
	return s.commit(tx)
}

// RetreatTurn hands the floor back to the previous speaker. The previous
// speaker's update reopens with its original started_at when it has one; the
// current speaker's update returns to the queued state.
func (s *Store) RetreatTurn(ctx context.Context, standupID, fromUserID, toUserID string, now time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.ready(); err != nil {
		return err
	}
	standupID = strings.TrimSpace(standupID)
	fromUserID = strings.TrimSpace(fromUserID)
	toUserID = strings.TrimSpace(toUserID)
	if standupID == "" || fromUserID == "" || toUserID == "" {
		return fmt.Errorf("standup id, from user id and to user id are required")
	}

	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := moveActivePointer(ctx, tx, standupID, fromUserID, toUserID); err != nil {
		return err
	}

	_, err = tx.ExecContext(
		ctx,
		`UPDATE updates SET started_at = 0, finished_at = 0
		 WHERE standup_id = ? AND user_id = ?`,
		standupID, fromUserID,
	)
	if err != nil {
		return execErr("retreat turn", err)
	}

	_, err = tx.ExecContext(
		ctx,
		`UPDATE updates SET
			started_at = CASE WHEN started_at = 0 THEN ? ELSE started_at END,
			finished_at = 0
		 WHERE standup_id = ? AND user_id = ?`,
		toMillis(now), standupID, toUserID,
	)
	if err != nil {
		return execErr("retreat turn", err)
	}
	return s.commit(tx)
}

// SkipTurn closes the current speaker's update, passes over an unready
// participant to hand the floor to nextUserID, and rewrites the roster to
// orderedUserIDs, which places the skipped participant at the tail.
func (s *Store) SkipTurn(ctx context.Context, standupID, currentUserID, nextUserID string, orderedUserIDs []string, now time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.ready(); err != nil {
		return err
	}
	standupID = strings.TrimSpace(standupID)
	currentUserID = strings.TrimSpace(currentUserID)
	nextUserID = strings.TrimSpace(nextUserID)
	if standupID == "" || currentUserID == "" || nextUserID == "" {
		return fmt.Errorf("standup id, current user id and next user id are required")
	}

	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := moveActivePointer(ctx, tx, standupID, currentUserID, nextUserID); err != nil {
		return err
	}
	if err := closeSpeakerUpdate(ctx, tx, standupID, currentUserID, now); err != nil {
		return err
	}
	if err := openSpeakerUpdate(ctx, tx, standupID, nextUserID, now); err != nil {
		return err
	}
	if err := replaceOrderTx(ctx, tx, standupID, orderedUserIDs); err != nil {
		return err
	}
	return s.commit(tx)
}

// FinishTurn completes the standup: finished_at is stamped, the active
// pointer clears, and the last speaker's identified update closes.
func (s *Store) FinishTurn(ctx context.Context, standupID, updateID string, now time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.ready(); err != nil {
		return err
	}
	standupID = strings.TrimSpace(standupID)
	updateID = strings.TrimSpace(updateID)
	if standupID == "" || updateID == "" {
		return fmt.Errorf("standup id and update id are required")
	}

	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(
		ctx,
		`UPDATE standups SET finished_at = ?, active_user_id = ''
		 WHERE id = ? AND started_at != 0 AND finished_at = 0`,
		toMillis(now), standupID,
	)
	if err != nil {
		return execErr("finish turn", err)
	}
	if err := requireGuardHit(ctx, tx, result, standupID); err != nil {
		return err
	}

	result, err = tx.ExecContext(
		ctx,
		`UPDATE updates SET finished_at = ? WHERE id = ? AND standup_id = ? AND finished_at = 0`,
		toMillis(now), updateID, standupID,
	)
	if err != nil {
		return execErr("finish turn", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("finish turn: %w", err)
	}
	if affected == 0 {
		return storage.ErrConflict
	}
	return s.commit(tx)
}

// moveActivePointer reassigns the running standup's active speaker, guarded
// on the speaker the caller observed.
func moveActivePointer(ctx context.Context, tx *sql.Tx, standupID, fromUserID, toUserID string) error {
	result, err := tx.ExecContext(
		ctx,
		`UPDATE standups SET active_user_id = ?
		 WHERE id = ? AND active_user_id = ? AND started_at != 0 AND finished_at = 0`,
		toUserID, standupID, fromUserID,
	)
	if err != nil {
		return execErr("move active speaker", err)
	}
	return requireGuardHit(ctx, tx, result, standupID)
}

// openSpeakerUpdate stamps started_at on the speaker's update if it is not
// already speaking. A speaker without an update row means the roster and
// updates diverged under the caller; that is a conflict, not corruption.
func openSpeakerUpdate(ctx context.Context, tx *sql.Tx, standupID, userID string, now time.Time) error {
	result, err := tx.ExecContext(
		ctx,
		`UPDATE updates SET
			started_at = CASE WHEN started_at = 0 THEN ? ELSE started_at END,
			finished_at = 0
		 WHERE standup_id = ? AND user_id = ?`,
		toMillis(now), standupID, userID,
	)
	if err != nil {
		return execErr("open speaker update", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("open speaker update: %w", err)
	}
	if affected == 0 {
		return storage.ErrConflict
	}
	return nil
}

func closeSpeakerUpdate(ctx context.Context, tx *sql.Tx, standupID, userID string, now time.Time) error {
	result, err := tx.ExecContext(
		ctx,
		`UPDATE updates SET finished_at = ?
		 WHERE standup_id = ? AND user_id = ? AND finished_at = 0`,
		toMillis(now), standupID, userID,
	)
	if err != nil {
		return execErr("close speaker update", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("close speaker update: %w", err)
	}
	if affected == 0 {
		return storage.ErrConflict
	}
	return nil
}

// requireGuardHit distinguishes a missed guard on an existing standup
// (ErrConflict) from a standup that does not exist at all (ErrNotFound).
func requireGuardHit(ctx context.Context, tx *sql.Tx, result sql.Result, standupID string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("turn guard: %w", err)
	}
	if affected > 0 {
		return nil
	}
	var exists int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM standups WHERE id = ?`, standupID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.ErrNotFound
	}
	if err != nil {
		return execErr("turn guard", err)
	}
	return storage.ErrConflict
}
