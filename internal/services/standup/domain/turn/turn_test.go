package turn

import (
	"errors"
	"testing"
	"time"

	apperrors "github.com/turnwise/standup/internal/platform/errors"
	"github.com/turnwise/standup/internal/services/standup/storage"
)

var testNow = time.Date(2026, time.March, 2, 9, 30, 0, 0, time.UTC)

func draftStandup() storage.Standup {
	return storage.Standup{ID: "standup-1", Name: "daily"}
}

func activeStandup(activeUserID string) storage.Standup {
	return storage.Standup{
		ID:           "standup-1",
		Name:         "daily",
		StartedAt:    testNow,
		ActiveUserID: activeUserID,
	}
}

func completeStandup() storage.Standup {
	return storage.Standup{
		ID:         "standup-1",
		Name:       "daily",
		StartedAt:  testNow,
		FinishedAt: testNow.Add(15 * time.Minute),
	}
}

func wantCode(t *testing.T, err error, code apperrors.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with code %s, got nil", code)
	}
	var domainErr *apperrors.Error
	if !errors.As(err, &domainErr) {
		t.Fatalf("expected domain error, got %v", err)
	}
	if domainErr.Code != code {
		t.Fatalf("error code = %s, want %s", domainErr.Code, code)
	}
}

func TestPhaseOf(t *testing.T) {
	if got := PhaseOf(draftStandup()); got != PhaseDraft {
		t.Fatalf("draft phase = %s", got)
	}
	if got := PhaseOf(activeStandup("user-a")); got != PhaseActive {
		t.Fatalf("active phase = %s", got)
	}
	if got := PhaseOf(completeStandup()); got != PhaseComplete {
		t.Fatalf("complete phase = %s", got)
	}
}

func TestCanStart(t *testing.T) {
	readyUpdate := storage.Update{StandupID: "standup-1", UserID: "user-a", Ready: true}

	if err := CanStart(draftStandup(), readyUpdate, true); err != nil {
		t.Fatalf("ready draft start: %v", err)
	}

	wantCode(t, CanStart(activeStandup("user-a"), readyUpdate, true), apperrors.CodeStandupAlreadyStarted)
	wantCode(t, CanStart(completeStandup(), readyUpdate, true), apperrors.CodeStandupAlreadyFinished)
	wantCode(t, CanStart(draftStandup(), storage.Update{}, false), apperrors.CodeUpdateNotFound)

	notReady := readyUpdate
	notReady.Ready = false
	wantCode(t, CanStart(draftStandup(), notReady, true), apperrors.CodeUpdateNotReady)
}

func TestCanAdvance(t *testing.T) {
	if err := CanAdvance(activeStandup("user-a"), "user-a", true); err != nil {
		t.Fatalf("advance from active speaker: %v", err)
	}

	wantCode(t, CanAdvance(draftStandup(), "user-a", true), apperrors.CodeStandupNotStarted)
	wantCode(t, CanAdvance(completeStandup(), "user-a", true), apperrors.CodeStandupAlreadyFinished)
	wantCode(t, CanAdvance(activeStandup("user-b"), "user-a", true), apperrors.CodeTurnWrongSpeaker)
	wantCode(t, CanAdvance(activeStandup("user-a"), "user-a", false), apperrors.CodeUpdateNotFound)
}

func TestCanRetreatMirrorsAdvance(t *testing.T) {
	if err := CanRetreat(activeStandup("user-b"), "user-b", true); err != nil {
		t.Fatalf("retreat from active speaker: %v", err)
	}
	wantCode(t, CanRetreat(activeStandup("user-b"), "user-a", true), apperrors.CodeTurnWrongSpeaker)
}

func TestCanFinish(t *testing.T) {
	lastUpdate := storage.Update{ID: "update-1", StandupID: "standup-1", UserID: "user-b"}

	if err := CanFinish(activeStandup("user-b"), lastUpdate, true); err != nil {
		t.Fatalf("finish active standup: %v", err)
	}

	wantCode(t, CanFinish(draftStandup(), lastUpdate, true), apperrors.CodeStandupNotStarted)
	wantCode(t, CanFinish(completeStandup(), lastUpdate, true), apperrors.CodeStandupAlreadyFinished)
	wantCode(t, CanFinish(activeStandup("user-b"), storage.Update{}, false), apperrors.CodeUpdateNotFound)

	foreign := lastUpdate
	foreign.StandupID = "standup-2"
	wantCode(t, CanFinish(activeStandup("user-b"), foreign, true), apperrors.CodeUpdateNotFound)
}

func TestCanEditRoster(t *testing.T) {
	if err := CanEditRoster(draftStandup()); err != nil {
		t.Fatalf("draft roster edit: %v", err)
	}
	wantCode(t, CanEditRoster(activeStandup("user-a")), apperrors.CodeRosterLocked)
	wantCode(t, CanEditRoster(completeStandup()), apperrors.CodeStandupAlreadyFinished)
}

func TestCanLeave(t *testing.T) {
	if err := CanLeave(draftStandup(), "user-a"); err != nil {
		t.Fatalf("leave draft: %v", err)
	}
	if err := CanLeave(activeStandup("user-a"), "user-b"); err != nil {
		t.Fatalf("leave active as bystander: %v", err)
	}
	wantCode(t, CanLeave(activeStandup("user-a"), "user-a"), apperrors.CodeRosterActiveMemberLeaving)
	wantCode(t, CanLeave(completeStandup(), "user-a"), apperrors.CodeStandupAlreadyFinished)
}
