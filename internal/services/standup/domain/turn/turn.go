// Package turn models the standup lifecycle and guards turn transitions.
//
// The guards are pure: they evaluate a snapshot of persisted state and return
// a typed domain error when a transition is not admissible. Atomicity of the
// transition itself is the storage layer's concern; the guards here are also
// re-checked inside storage transactions through conditional writes.
package turn

import (
	"fmt"

	apperrors "github.com/turnwise/standup/internal/platform/errors"
	"github.com/turnwise/standup/internal/services/standup/storage"
)

// Phase is the lifecycle phase of a standup.
type Phase string

const (
	// PhaseDraft is the initial phase: roster and updates are editable.
	PhaseDraft Phase = "draft"
	// PhaseActive means the standup is running and the turn pointer is live.
	PhaseActive Phase = "active"
	// PhaseComplete is terminal: no further mutation is accepted.
	PhaseComplete Phase = "complete"
)

// PhaseOf derives the lifecycle phase from the standup's sentinel timestamps.
func PhaseOf(standup storage.Standup) Phase {
	if !standup.FinishedAt.IsZero() {
		return PhaseComplete
	}
	if !standup.StartedAt.IsZero() {
		return PhaseActive
	}
	return PhaseDraft
}

// CanStart reports whether the standup may start with firstUserID speaking.
func CanStart(standup storage.Standup, firstUpdate storage.Update, updateExists bool) error {
	switch PhaseOf(standup) {
	case PhaseActive:
		return apperrors.New(apperrors.CodeStandupAlreadyStarted,
			fmt.Sprintf("standup %s already started", standup.ID))
	case PhaseComplete:
		return apperrors.New(apperrors.CodeStandupAlreadyFinished,
			fmt.Sprintf("standup %s already finished", standup.ID))
	}
	if !updateExists {
		return apperrors.New(apperrors.CodeUpdateNotFound,
			fmt.Sprintf("standup %s has no update for the first speaker", standup.ID))
	}
	if !firstUpdate.Ready {
		return apperrors.WithMetadata(apperrors.CodeUpdateNotReady,
			fmt.Sprintf("participant %s is not ready", firstUpdate.UserID),
			map[string]string{"user_id": firstUpdate.UserID})
	}
	return nil
}

// CanTransition reports whether the running standup may move its pointer away
// from fromUserID. It covers the shared preconditions of advance, retreat,
// and skip.
func CanTransition(standup storage.Standup, fromUserID string) error {
	switch PhaseOf(standup) {
	case PhaseDraft:
		return apperrors.New(apperrors.CodeStandupNotStarted,
			fmt.Sprintf("standup %s has not started", standup.ID))
	case PhaseComplete:
		return apperrors.New(apperrors.CodeStandupAlreadyFinished,
			fmt.Sprintf("standup %s already finished", standup.ID))
	}
	if standup.ActiveUserID != fromUserID {
		return apperrors.WithMetadata(apperrors.CodeTurnWrongSpeaker,
			fmt.Sprintf("participant %s is not the active speaker", fromUserID),
			map[string]string{
				"user_id":        fromUserID,
				"active_user_id": standup.ActiveUserID,
			})
	}
	return nil
}

// CanAdvance reports whether the pointer may advance from fromUserID to the
// participant owning toUpdate.
func CanAdvance(standup storage.Standup, fromUserID string, toUpdateExists bool) error {
	if err := CanTransition(standup, fromUserID); err != nil {
		return err
	}
	if !toUpdateExists {
		return apperrors.New(apperrors.CodeUpdateNotFound,
			fmt.Sprintf("standup %s has no update for the next speaker", standup.ID))
	}
	return nil
}

// CanRetreat reports whether the pointer may return from fromUserID to the
// participant owning toUpdate. Preconditions mirror CanAdvance; readiness of
// the target is never consulted because they have already spoken.
func CanRetreat(standup storage.Standup, fromUserID string, toUpdateExists bool) error {
	return CanAdvance(standup, fromUserID, toUpdateExists)
}

// CanFinish reports whether the running standup may finish, closing
// lastUpdate.
func CanFinish(standup storage.Standup, lastUpdate storage.Update, updateExists bool) error {
	switch PhaseOf(standup) {
	case PhaseDraft:
		return apperrors.New(apperrors.CodeStandupNotStarted,
			fmt.Sprintf("standup %s has not started", standup.ID))
	case PhaseComplete:
		return apperrors.New(apperrors.CodeStandupAlreadyFinished,
			fmt.Sprintf("standup %s already finished", standup.ID))
	}
	if !updateExists {
		return apperrors.New(apperrors.CodeUpdateNotFound,
			fmt.Sprintf("standup %s has no update to close", standup.ID))
	}
	if lastUpdate.StandupID != standup.ID {
		return apperrors.New(apperrors.CodeUpdateNotFound,
			fmt.Sprintf("update %s does not belong to standup %s", lastUpdate.ID, standup.ID))
	}
	return nil
}

// CanEditRoster reports whether roster composition and order may change.
// The roster is pinned once the standup starts.
func CanEditRoster(standup storage.Standup) error {
	switch PhaseOf(standup) {
	case PhaseActive:
		return apperrors.New(apperrors.CodeRosterLocked,
			fmt.Sprintf("standup %s is running, roster is pinned", standup.ID))
	case PhaseComplete:
		return apperrors.New(apperrors.CodeStandupAlreadyFinished,
			fmt.Sprintf("standup %s already finished", standup.ID))
	}
	return nil
}

// CanLeave reports whether userID may leave the roster. The active speaker of
// a running standup cannot leave; anyone may leave a draft, and leaving a
// finished standup is rejected like any other roster edit.
func CanLeave(standup storage.Standup, userID string) error {
	switch PhaseOf(standup) {
	case PhaseComplete:
		return apperrors.New(apperrors.CodeStandupAlreadyFinished,
			fmt.Sprintf("standup %s already finished", standup.ID))
	case PhaseActive:
		if standup.ActiveUserID == userID {
			return apperrors.WithMetadata(apperrors.CodeRosterActiveMemberLeaving,
				fmt.Sprintf("participant %s is currently speaking", userID),
				map[string]string{"user_id": userID})
		}
	}
	return nil
}
