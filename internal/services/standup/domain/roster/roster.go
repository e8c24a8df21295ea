// Package roster implements the ordering rules for standup rosters.
//
// A roster's persisted positions must always be the contiguous range 0..n-1.
// The helpers here compute new orderings as plain user-ID slices; the storage
// layer applies them atomically.
package roster

import (
	"fmt"
	"math/rand"

	"github.com/turnwise/standup/internal/services/standup/storage"
)

// UserIDs flattens memberships into their user IDs, preserving slice order.
func UserIDs(members []storage.Membership) []string {
	ids := make([]string, 0, len(members))
	for _, member := range members {
		ids = append(ids, member.UserID)
	}
	return ids
}

// CheckContiguous verifies the permutation invariant: positions are exactly
// {0..n-1} with no duplicates or gaps.
func CheckContiguous(members []storage.Membership) error {
	seen := make([]bool, len(members))
	for _, member := range members {
		if member.Position < 0 || member.Position >= len(members) {
			return fmt.Errorf("position %d out of range for roster of %d", member.Position, len(members))
		}
		if seen[member.Position] {
			return fmt.Errorf("duplicate position %d", member.Position)
		}
		seen[member.Position] = true
	}
	return nil
}

// Shuffled returns a uniformly random permutation of userIDs using a
// Fisher-Yates shuffle. The input slice is not mutated.
//
// A comparator-based shuffle (sorting with a random comparison) is biased and
// must not be reintroduced here.
func Shuffled(userIDs []string, rng *rand.Rand) []string {
	shuffled := make([]string, len(userIDs))
	copy(shuffled, userIDs)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

// Reordered moves userID to toIndex, shifting the participants in between.
// toIndex is clamped to [0, n-1]. The second return is false when userID is
// not on the roster; callers treat that as a no-op.
func Reordered(userIDs []string, userID string, toIndex int) ([]string, bool) {
	from := indexOf(userIDs, userID)
	if from == -1 {
		return nil, false
	}
	if toIndex < 0 {
		toIndex = 0
	}
	if toIndex > len(userIDs)-1 {
		toIndex = len(userIDs) - 1
	}

	reordered := make([]string, 0, len(userIDs))
	reordered = append(reordered, userIDs[:from]...)
	reordered = append(reordered, userIDs[from+1:]...)
	reordered = append(reordered[:toIndex], append([]string{userID}, reordered[toIndex:]...)...)
	return reordered, true
}

// Requeued moves userID to the roster tail, keeping everyone else in place.
// Used when a participant is skipped so they are revisited last.
func Requeued(userIDs []string, userID string) []string {
	requeued := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		if id != userID {
			requeued = append(requeued, id)
		}
	}
	if len(requeued) < len(userIDs) {
		requeued = append(requeued, userID)
	}
	return requeued
}

// Follower returns the participant positioned immediately after userID.
// The second return is false when userID is absent or last.
func Follower(userIDs []string, userID string) (string, bool) {
	idx := indexOf(userIDs, userID)
	if idx == -1 || idx+1 >= len(userIDs) {
		return "", false
	}
	return userIDs[idx+1], true
}

func indexOf(userIDs []string, userID string) int {
	for i, id := range userIDs {
		if id == userID {
			return i
		}
	}
	return -1
}
