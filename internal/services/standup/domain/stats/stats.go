// Package stats derives per-user participation statistics from finished
// standups. The derivation is pure and recomputed per call; nothing here is
// cached or persisted.
package stats

import (
	"time"

	"github.com/turnwise/standup/internal/services/standup/storage"
)

// UserStats aggregates one user's standup history.
type UserStats struct {
	// AvgStandupDuration averages FinishedAt-StartedAt over all finished
	// standups, not just the user's.
	AvgStandupDuration time.Duration
	// AvgUpdateDuration averages the user's update durations where both
	// timestamps are set.
	AvgUpdateDuration time.Duration
	// FinishedStandups counts finished standups the user was a member of.
	FinishedStandups int
	// FinishedUpdates counts the user's updates with both timestamps set.
	FinishedUpdates int
	// ParticipationRate is FinishedStandups over TotalFinishedStandups as a
	// percentage, 0 when nothing has finished.
	ParticipationRate float64
	// FastestUpdate and SlowestUpdate are the min and max update durations,
	// 0 when the user has no finished updates.
	FastestUpdate time.Duration
	SlowestUpdate time.Duration
	// TotalFinishedStandups counts every finished standup in the system.
	TotalFinishedStandups int
}

// ForUser computes a user's statistics from finished standups, the user's
// updates, and the user's roster memberships. All duration fields are 0 and
// no division occurs when the relevant input set is empty.
func ForUser(finishedStandups []storage.Standup, userUpdates []storage.Update, memberships []storage.Membership) UserStats {
	result := UserStats{
		TotalFinishedStandups: len(finishedStandups),
	}

	memberOf := make(map[string]bool, len(memberships))
	for _, membership := range memberships {
		memberOf[membership.StandupID] = true
	}

	var standupTotal time.Duration
	standupCount := 0
	for _, standup := range finishedStandups {
		if !standup.StartedAt.IsZero() && !standup.FinishedAt.IsZero() {
			standupTotal += standup.FinishedAt.Sub(standup.StartedAt)
			standupCount++
		}
		if memberOf[standup.ID] {
			result.FinishedStandups++
		}
	}
	if standupCount > 0 {
		result.AvgStandupDuration = standupTotal / time.Duration(standupCount)
	}

	var updateTotal time.Duration
	for _, update := range userUpdates {
		if update.StartedAt.IsZero() || update.FinishedAt.IsZero() {
			continue
		}
		duration := update.FinishedAt.Sub(update.StartedAt)
		updateTotal += duration
		result.FinishedUpdates++
		if result.FastestUpdate == 0 || duration < result.FastestUpdate {
			result.FastestUpdate = duration
		}
		if duration > result.SlowestUpdate {
			result.SlowestUpdate = duration
		}
	}
	if result.FinishedUpdates > 0 {
		result.AvgUpdateDuration = updateTotal / time.Duration(result.FinishedUpdates)
	}

	if result.TotalFinishedStandups > 0 {
		result.ParticipationRate = float64(result.FinishedStandups) / float64(result.TotalFinishedStandups) * 100
	}

	return result
}

// PreviousCommitment returns the "today" content of the user's most recent
// update from a finished standup, skipping excludeStandupID. userUpdates must
// be ordered most-recent-first. The second return is false when no finished
// prior update exists.
//
// This is deliberately a linear scan with early termination: recency order,
// not standup identity, determines the result.
func PreviousCommitment(userUpdates []storage.Update, standupByID map[string]storage.Standup, excludeStandupID string) (string, bool) {
	for _, update := range userUpdates {
		if update.StandupID == excludeStandupID {
			continue
		}
		standup, ok := standupByID[update.StandupID]
		if !ok {
			continue
		}
		if standup.FinishedAt.IsZero() {
			continue
		}
		return update.Today, true
	}
	return "", false
}
