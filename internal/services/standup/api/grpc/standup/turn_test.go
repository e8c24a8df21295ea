package standup

import (
	"context"
	"testing"
	"time"

	standupv1 "github.com/turnwise/standup/api/gen/go/standup/v1"
	"github.com/turnwise/standup/internal/services/standup/storage"
	"google.golang.org/grpc/codes"
)

func TestStartStandup_HappyPath(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	now := time.Date(2026, time.March, 9, 10, 0, 0, 0, time.UTC)
	svc.clock = func() time.Time { return now }
	seedDraft(t, store, "standup-1", "user-1", "user-2")

	resp, err := svc.StartStandup(context.Background(), &standupv1.StartStandupRequest{
		StandupId: "standup-1", FirstUserId: "user-1",
	})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	standup := resp.GetStandup()
	if standup.GetPhase() != standupv1.Phase_PHASE_ACTIVE {
		t.Fatalf("phase = %v, want PHASE_ACTIVE", standup.GetPhase())
	}
	if standup.GetActiveUserId() != "user-1" {
		t.Fatalf("active_user_id = %q, want user-1", standup.GetActiveUserId())
	}
	update, err := store.GetUpdate(context.Background(), "standup-1", "user-1")
	if err != nil {
		t.Fatalf("get update: %v", err)
	}
	if !update.StartedAt.Equal(now) {
		t.Fatalf("update started_at = %v, want %v", update.StartedAt, now)
	}
}

func TestStartStandup_SecondStartFailsAndLeavesStateUntouched(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	now := time.Date(2026, time.March, 9, 10, 0, 0, 0, time.UTC)
	svc.clock = func() time.Time { return now }
	seedDraft(t, store, "standup-1", "user-1", "user-2")

	if _, err := svc.StartStandup(context.Background(), &standupv1.StartStandupRequest{
		StandupId: "standup-1", FirstUserId: "user-1",
	}); err != nil {
		t.Fatalf("start: %v", err)
	}

	svc.clock = func() time.Time { return now.Add(time.Hour) }
	_, err := svc.StartStandup(context.Background(), &standupv1.StartStandupRequest{
		StandupId: "standup-1", FirstUserId: "user-2",
	})
	wantStatusCode(t, err, codes.FailedPrecondition)

	standup, getErr := store.GetStandup(context.Background(), "standup-1")
	if getErr != nil {
		t.Fatalf("get standup: %v", getErr)
	}
	if !standup.StartedAt.Equal(now) || standup.ActiveUserID != "user-1" {
		t.Fatalf("second start mutated state: %+v", standup)
	}
}

func TestStartStandup_RequiresReadyUpdate(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	seedDraft(t, store, "standup-1", "user-1", "user-2")
	if err := store.SetReady(context.Background(), "update-standup-1-user-1", false); err != nil {
		t.Fatalf("unset ready: %v", err)
	}

	_, err := svc.StartStandup(context.Background(), &standupv1.StartStandupRequest{
		StandupId: "standup-1", FirstUserId: "user-1",
	})
	wantStatusCode(t, err, codes.FailedPrecondition)

	// A first speaker with no update at all is NotFound.
	_, err = svc.StartStandup(context.Background(), &standupv1.StartStandupRequest{
		StandupId: "standup-1", FirstUserId: "user-9",
	})
	wantStatusCode(t, err, codes.NotFound)
}

func TestAdvanceTurn_FullRotationThenFinish(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	now := time.Date(2026, time.March, 9, 10, 0, 0, 0, time.UTC)
	svc.clock = func() time.Time { return now }
	seedDraft(t, store, "standup-1", "user-1", "user-2")

	if _, err := svc.StartStandup(context.Background(), &standupv1.StartStandupRequest{
		StandupId: "standup-1", FirstUserId: "user-1",
	}); err != nil {
		t.Fatalf("start: %v", err)
	}

	advanceAt := now.Add(2 * time.Minute)
	svc.clock = func() time.Time { return advanceAt }
	resp, err := svc.AdvanceTurn(context.Background(), &standupv1.AdvanceTurnRequest{
		StandupId: "standup-1", FromUserId: "user-1", ToUserId: "user-2",
	})
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if resp.GetStandup().GetActiveUserId() != "user-2" {
		t.Fatalf("active_user_id = %q, want user-2", resp.GetStandup().GetActiveUserId())
	}
	closed, err := store.GetUpdate(context.Background(), "standup-1", "user-1")
	if err != nil {
		t.Fatalf("get closed: %v", err)
	}
	if !closed.FinishedAt.Equal(advanceAt) {
		t.Fatalf("closed finished_at = %v, want %v", closed.FinishedAt, advanceAt)
	}

	finishAt := advanceAt.Add(2 * time.Minute)
	svc.clock = func() time.Time { return finishAt }
	finishResp, err := svc.FinishStandup(context.Background(), &standupv1.FinishStandupRequest{
		StandupId: "standup-1", UpdateId: "update-standup-1-user-2",
	})
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if finishResp.GetStandup().GetPhase() != standupv1.Phase_PHASE_COMPLETE {
		t.Fatalf("phase = %v, want PHASE_COMPLETE", finishResp.GetStandup().GetPhase())
	}
	if finishResp.GetStandup().GetActiveUserId() != "" {
		t.Fatalf("active_user_id = %q, want empty", finishResp.GetStandup().GetActiveUserId())
	}

	// No turn operation is accepted on a complete standup.
	_, err = svc.AdvanceTurn(context.Background(), &standupv1.AdvanceTurnRequest{
		StandupId: "standup-1", FromUserId: "user-2", ToUserId: "user-1",
	})
	wantStatusCode(t, err, codes.FailedPrecondition)
}

func TestAdvanceTurn_WrongSpeakerAborts(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	now := time.Date(2026, time.March, 9, 10, 0, 0, 0, time.UTC)
	svc.clock = func() time.Time { return now }
	seedDraft(t, store, "standup-1", "user-1", "user-2", "user-3")

	if _, err := svc.StartStandup(context.Background(), &standupv1.StartStandupRequest{
		StandupId: "standup-1", FirstUserId: "user-1",
	}); err != nil {
		t.Fatalf("start: %v", err)
	}

	_, err := svc.AdvanceTurn(context.Background(), &standupv1.AdvanceTurnRequest{
		StandupId: "standup-1", FromUserId: "user-2", ToUserId: "user-3",
	})
	wantStatusCode(t, err, codes.Aborted)
}

func TestAdvanceTurn_RetriesPastTransientConflict(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	now := time.Date(2026, time.March, 9, 10, 0, 0, 0, time.UTC)
	svc.clock = func() time.Time { return now }
	seedDraft(t, store, "standup-1", "user-1", "user-2")

	if _, err := svc.StartStandup(context.Background(), &standupv1.StartStandupRequest{
		StandupId: "standup-1", FirstUserId: "user-1",
	}); err != nil {
		t.Fatalf("start: %v", err)
	}

	// Two lost races, then success within the retry budget.
	store.advanceConflicts = 2
	if _, err := svc.AdvanceTurn(context.Background(), &standupv1.AdvanceTurnRequest{
		StandupId: "standup-1", FromUserId: "user-1", ToUserId: "user-2",
	}); err != nil {
		t.Fatalf("advance with transient conflicts: %v", err)
	}

	// A conflict on every attempt exhausts the budget and aborts.
	if _, err := svc.RetreatTurn(context.Background(), &standupv1.RetreatTurnRequest{
		StandupId: "standup-1", FromUserId: "user-2", ToUserId: "user-1",
	}); err != nil {
		t.Fatalf("retreat: %v", err)
	}
	store.advanceConflicts = turnRetryAttempts
	_, err := svc.AdvanceTurn(context.Background(), &standupv1.AdvanceTurnRequest{
		StandupId: "standup-1", FromUserId: "user-1", ToUserId: "user-2",
	})
	wantStatusCode(t, err, codes.Aborted)
}

func TestRetreatTurn_ReopensPreviousSpeaker(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	now := time.Date(2026, time.March, 9, 10, 0, 0, 0, time.UTC)
	svc.clock = func() time.Time { return now }
	seedDraft(t, store, "standup-1", "user-1", "user-2")

	if _, err := svc.StartStandup(context.Background(), &standupv1.StartStandupRequest{
		StandupId: "standup-1", FirstUserId: "user-1",
	}); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := svc.AdvanceTurn(context.Background(), &standupv1.AdvanceTurnRequest{
		StandupId: "standup-1", FromUserId: "user-1", ToUserId: "user-2",
	}); err != nil {
		t.Fatalf("advance: %v", err)
	}

	resp, err := svc.RetreatTurn(context.Background(), &standupv1.RetreatTurnRequest{
		StandupId: "standup-1", FromUserId: "user-2", ToUserId: "user-1",
	})
	if err != nil {
		t.Fatalf("retreat: %v", err)
	}
	if resp.GetStandup().GetActiveUserId() != "user-1" {
		t.Fatalf("active_user_id = %q, want user-1", resp.GetStandup().GetActiveUserId())
	}
	reopened, err := store.GetUpdate(context.Background(), "standup-1", "user-1")
	if err != nil {
		t.Fatalf("get reopened: %v", err)
	}
	if !reopened.StartedAt.Equal(now) || !reopened.FinishedAt.IsZero() {
		t.Fatalf("reopened = started %v finished %v", reopened.StartedAt, reopened.FinishedAt)
	}
}

func TestSkipTurn_DefersUnreadyParticipantToTail(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	now := time.Date(2026, time.March, 9, 10, 0, 0, 0, time.UTC)
	svc.clock = func() time.Time { return now }
	seedDraft(t, store, "standup-1", "user-1", "user-2", "user-3")
	if err := store.SetReady(context.Background(), "update-standup-1-user-2", false); err != nil {
		t.Fatalf("unset ready: %v", err)
	}

	if _, err := svc.StartStandup(context.Background(), &standupv1.StartStandupRequest{
		StandupId: "standup-1", FirstUserId: "user-1",
	}); err != nil {
		t.Fatalf("start: %v", err)
	}

	resp, err := svc.SkipTurn(context.Background(), &standupv1.SkipTurnRequest{
		StandupId: "standup-1", CurrentUserId: "user-1", SkipUserId: "user-2",
	})
	if err != nil {
		t.Fatalf("skip: %v", err)
	}
	if resp.GetStandup().GetActiveUserId() != "user-3" {
		t.Fatalf("active_user_id = %q, want user-3", resp.GetStandup().GetActiveUserId())
	}
	members := resp.GetMembers()
	if members[len(members)-1].GetUserId() != "user-2" {
		t.Fatalf("roster tail = %q, want user-2", members[len(members)-1].GetUserId())
	}

	// Skipping the new tail participant has nobody to take the floor.
	_, err = svc.SkipTurn(context.Background(), &standupv1.SkipTurnRequest{
		StandupId: "standup-1", CurrentUserId: "user-3", SkipUserId: "user-2",
	})
	wantStatusCode(t, err, codes.FailedPrecondition)
}

func TestFinishStandup_RejectsForeignUpdate(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	now := time.Date(2026, time.March, 9, 10, 0, 0, 0, time.UTC)
	svc.clock = func() time.Time { return now }
	seedDraft(t, store, "standup-1", "user-1")
	seedDraft(t, store, "standup-2", "user-1")

	if _, err := svc.StartStandup(context.Background(), &standupv1.StartStandupRequest{
		StandupId: "standup-1", FirstUserId: "user-1",
	}); err != nil {
		t.Fatalf("start: %v", err)
	}

	_, err := svc.FinishStandup(context.Background(), &standupv1.FinishStandupRequest{
		StandupId: "standup-1", UpdateId: "update-standup-2-user-1",
	})
	wantStatusCode(t, err, codes.NotFound)
}

func TestGetUserStats_AggregatesFinishedStandups(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	start := time.Date(2026, time.March, 9, 10, 0, 0, 0, time.UTC)

	// One finished 30-minute standup the user attended with a 5-minute
	// update, one finished 10-minute standup without them.
	if err := store.CreateStandup(context.Background(), storage.Standup{
		ID: "standup-1", Name: "attended", CreatedAt: start,
		StartedAt: start, FinishedAt: start.Add(30 * time.Minute),
	}); err != nil {
		t.Fatalf("seed standup-1: %v", err)
	}
	if err := store.CreateStandup(context.Background(), storage.Standup{
		ID: "standup-2", Name: "missed", CreatedAt: start,
		StartedAt: start, FinishedAt: start.Add(10 * time.Minute),
	}); err != nil {
		t.Fatalf("seed standup-2: %v", err)
	}
	if _, _, err := store.AddMember(context.Background(), "standup-1", "user-1"); err != nil {
		t.Fatalf("seed member: %v", err)
	}
	if _, err := store.PutUpdate(context.Background(), storage.Update{
		ID: "update-1", StandupID: "standup-1", UserID: "user-1",
		StartedAt: start, FinishedAt: start.Add(5 * time.Minute), CreatedAt: start,
	}); err != nil {
		t.Fatalf("seed update: %v", err)
	}

	resp, err := svc.GetUserStats(context.Background(), &standupv1.GetUserStatsRequest{UserId: "user-1"})
	if err != nil {
		t.Fatalf("get user stats: %v", err)
	}
	stats := resp.GetStats()
	if got := stats.GetAvgStandupDuration().AsDuration(); got != 20*time.Minute {
		t.Fatalf("avg standup duration = %v, want 20m", got)
	}
	if got := stats.GetAvgUpdateDuration().AsDuration(); got != 5*time.Minute {
		t.Fatalf("avg update duration = %v, want 5m", got)
	}
	if stats.GetFinishedStandups() != 1 || stats.GetTotalFinishedStandups() != 2 {
		t.Fatalf("finished = %d of %d, want 1 of 2", stats.GetFinishedStandups(), stats.GetTotalFinishedStandups())
	}
	if stats.GetParticipationRate() != 50 {
		t.Fatalf("participation rate = %v, want 50", stats.GetParticipationRate())
	}
	if stats.GetFastestUpdate().AsDuration() != 5*time.Minute || stats.GetSlowestUpdate().AsDuration() != 5*time.Minute {
		t.Fatalf("fastest/slowest = %v/%v, want 5m/5m",
			stats.GetFastestUpdate().AsDuration(), stats.GetSlowestUpdate().AsDuration())
	}
}

func TestGetUserStats_EmptyHistoryIsZero(t *testing.T) {
	svc := NewService(newFakeStore())

	resp, err := svc.GetUserStats(context.Background(), &standupv1.GetUserStatsRequest{UserId: "user-1"})
	if err != nil {
		t.Fatalf("get user stats: %v", err)
	}
	stats := resp.GetStats()
	if stats.GetAvgStandupDuration().AsDuration() != 0 ||
		stats.GetAvgUpdateDuration().AsDuration() != 0 ||
		stats.GetParticipationRate() != 0 {
		t.Fatalf("empty history stats = %+v, want zeros", stats)
	}
}
