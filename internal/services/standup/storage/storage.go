// Package storage defines persistence contracts for standup service state.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// ErrConflict indicates a guarded mutation lost a race against a concurrent
// writer and observed state it did not expect.
var ErrConflict = errors.New("concurrent mutation conflict")

// Standup stores one round-robin status meeting.
//
// StartedAt and FinishedAt use the zero time as the "not yet set" sentinel:
// both zero means the standup is a draft, StartedAt set with FinishedAt zero
// means it is running, FinishedAt set means it is complete. ActiveUserID is
// non-empty only while the standup is running.
type Standup struct {
	ID           string
	Name         string
	Description  string
	Emoji        string
	Icebreaker   string
	StartedAt    time.Time
	FinishedAt   time.Time
	ActiveUserID string
	CreatedAt    time.Time
}

// Membership stores one participant's place on a standup roster.
//
// Position values for a standup form the contiguous range 0..n-1.
type Membership struct {
	StandupID string
	UserID    string
	Position  int
	CreatedAt time.Time
}

// Update stores one participant's written status plus per-turn timing.
//
// The same zero-time sentinel convention as Standup applies: Ready with both
// timestamps zero means queued, StartedAt set means speaking, FinishedAt set
// means done.
type Update struct {
	ID         string
	StandupID  string
	UserID     string
	Yesterday  string
	Today      string
	StartedAt  time.Time
	FinishedAt time.Time
	Ready      bool
	CreatedAt  time.Time
}

// ListFilter carries a SQL condition fragment applied to standup listings.
type ListFilter struct {
	Clause string
	Params []any
}

// StandupStore persists standup records.
type StandupStore interface {
	CreateStandup(ctx context.Context, standup Standup) error
	GetStandup(ctx context.Context, id string) (Standup, error)
	// ListStandups returns standups most-recent-first, optionally narrowed
	// by filter, at most limit rows.
	ListStandups(ctx context.Context, limit int, filter ListFilter) ([]Standup, error)
	// DeleteStandup removes the standup and cascades to its memberships and
	// updates in one transaction. Deleting an absent standup is a no-op.
	DeleteStandup(ctx context.Context, id string) error
	SetIcebreaker(ctx context.Context, id string, icebreaker string) error
	// ListFinishedStandups returns every standup whose FinishedAt is set.
	ListFinishedStandups(ctx context.Context) ([]Standup, error)
}

// RosterStore persists standup roster memberships.
type RosterStore interface {
	// AddMember appends userID at the roster tail. It reports created=false
	// without mutating anything when the membership already exists.
	AddMember(ctx context.Context, standupID, userID string) (member Membership, created bool, err error)
	// RemoveMember deletes the membership and the member's update, then
	// renumbers the remaining positions. Absent memberships are a no-op.
	RemoveMember(ctx context.Context, standupID, userID string) error
	// ListMembers returns the roster ordered by position.
	ListMembers(ctx context.Context, standupID string) ([]Membership, error)
	ListMembershipsByUser(ctx context.Context, userID string) ([]Membership, error)
	// ReplaceOrder atomically assigns positions 0..n-1 following the order
	// of orderedUserIDs. The slice must be a permutation of the current
	// roster or ErrConflict is returned and nothing changes.
	ReplaceOrder(ctx context.Context, standupID string, orderedUserIDs []string) error
}

// UpdateStore persists participant updates.
type UpdateStore interface {
	// PutUpdate inserts the update or replaces the content and readiness of
	// the existing (standup, user) row, preserving its timestamps.
	PutUpdate(ctx context.Context, update Update) (Update, error)
	GetUpdate(ctx context.Context, standupID, userID string) (Update, error)
	GetUpdateByID(ctx context.Context, id string) (Update, error)
	SetReady(ctx context.Context, id string, ready bool) error
	ListUpdatesByStandup(ctx context.Context, standupID string) ([]Update, error)
	// ListUpdatesByUser returns the user's updates most-recent-first.
	ListUpdatesByUser(ctx context.Context, userID string) ([]Update, error)
}

// TurnStore applies turn transitions as single atomic read-modify-write
// transactions guarded by the standup's current phase and active speaker.
//
// Every method re-validates the expected prior state inside its transaction
// and returns ErrConflict when another writer got there first. Callers are
// expected to re-read state and retry a bounded number of times.
type TurnStore interface {
	// StartTurn stamps the standup and the first speaker's update in one
	// transaction: standup.StartedAt=now, ActiveUserID=firstUserID, and the
	// update's StartedAt=now.
	StartTurn(ctx context.Context, standupID, firstUserID string, now time.Time) error
	// AdvanceTurn closes from's update, opens to's update, and moves the
	// active pointer, guarded on ActiveUserID == from.
	AdvanceTurn(ctx context.Context, standupID, fromUserID, toUserID string, now time.Time) error
	// RetreatTurn reopens to's update (FinishedAt cleared, StartedAt kept or
	// stamped) and clears both timestamps on from's update, guarded on
	// ActiveUserID == from.
	RetreatTurn(ctx context.Context, standupID, fromUserID, toUserID string, now time.Time) error
	// SkipTurn closes current's update, opens next's update, moves the
	// pointer to next, and renumbers the roster per orderedUserIDs (the
	// skipped participant re-queued at the tail), all in one transaction.
	SkipTurn(ctx context.Context, standupID, currentUserID, nextUserID string, orderedUserIDs []string, now time.Time) error
	// FinishTurn stamps the standup's FinishedAt, clears the active pointer,
	// and closes the identified update.
	FinishTurn(ctx context.Context, standupID, updateID string, now time.Time) error
}
