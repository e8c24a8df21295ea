package standup

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	standupv1 "github.com/turnwise/standup/api/gen/go/standup/v1"
	"github.com/turnwise/standup/internal/services/standup/storage"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// fakeStore is an in-memory Store with the same guard semantics as the SQLite
// implementation. advanceConflicts makes the next N turn transitions lose
// their race, for retry tests.
type fakeStore struct {
	standups map[string]storage.Standup
	members  map[string][]storage.Membership
	updates  map[string]storage.Update

	advanceConflicts int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		standups: make(map[string]storage.Standup),
		members:  make(map[string][]storage.Membership),
		updates:  make(map[string]storage.Update),
	}
}

func (f *fakeStore) CreateStandup(_ context.Context, standup storage.Standup) error {
	if _, ok := f.standups[standup.ID]; ok {
		return storage.ErrConflict
	}
	f.standups[standup.ID] = standup
	return nil
}

func (f *fakeStore) GetStandup(_ context.Context, id string) (storage.Standup, error) {
	standup, ok := f.standups[id]
	if !ok {
		return storage.Standup{}, storage.ErrNotFound
	}
	return standup, nil
}

func (f *fakeStore) ListStandups(_ context.Context, limit int, _ storage.ListFilter) ([]storage.Standup, error) {
	standups := make([]storage.Standup, 0, len(f.standups))
	for _, standup := range f.standups {
		standups = append(standups, standup)
	}
	sort.Slice(standups, func(i, j int) bool {
		return standups[i].CreatedAt.After(standups[j].CreatedAt)
	})
	if len(standups) > limit {
		standups = standups[:limit]
	}
	return standups, nil
}

func (f *fakeStore) DeleteStandup(_ context.Context, id string) error {
	delete(f.standups, id)
	delete(f.members, id)
	for updateID, update := range f.updates {
		if update.StandupID == id {
			delete(f.updates, updateID)
		}
	}
	return nil
}

func (f *fakeStore) SetIcebreaker(_ context.Context, id, icebreaker string) error {
	standup, ok := f.standups[id]
	if !ok {
		return storage.ErrNotFound
	}
	standup.Icebreaker = icebreaker
	f.standups[id] = standup
	return nil
}

func (f *fakeStore) ListFinishedStandups(_ context.Context) ([]storage.Standup, error) {
	var finished []storage.Standup
	for _, standup := range f.standups {
		if !standup.FinishedAt.IsZero() {
			finished = append(finished, standup)
		}
	}
	return finished, nil
}

func (f *fakeStore) AddMember(_ context.Context, standupID, userID string) (storage.Membership, bool, error) {
	if _, ok := f.standups[standupID]; !ok {
		return storage.Membership{}, false, storage.ErrNotFound
	}
	for _, member := range f.members[standupID] {
		if member.UserID == userID {
			return member, false, nil
		}
	}
	member := storage.Membership{
		StandupID: standupID,
		UserID:    userID,
		Position:  len(f.members[standupID]),
		CreatedAt: time.Now(),
	}
	f.members[standupID] = append(f.members[standupID], member)
	return member, true, nil
}

func (f *fakeStore) RemoveMember(_ context.Context, standupID, userID string) error {
	members := f.members[standupID]
	idx := -1
	for i, member := range members {
		if member.UserID == userID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return storage.ErrNotFound
	}
	members = append(members[:idx], members[idx+1:]...)
	for i := range members {
		members[i].Position = i
	}
	f.members[standupID] = members
	for updateID, update := range f.updates {
		if update.StandupID == standupID && update.UserID == userID {
			delete(f.updates, updateID)
		}
	}
	return nil
}

func (f *fakeStore) ListMembers(_ context.Context, standupID string) ([]storage.Membership, error) {
	members := make([]storage.Membership, len(f.members[standupID]))
	copy(members, f.members[standupID])
	return members, nil
}

func (f *fakeStore) ListMembershipsByUser(_ context.Context, userID string) ([]storage.Membership, error) {
	var memberships []storage.Membership
	for _, members := range f.members {
		for _, member := range members {
			if member.UserID == userID {
				memberships = append(memberships, member)
			}
		}
	}
	return memberships, nil
}

func (f *fakeStore) ReplaceOrder(_ context.Context, standupID string, orderedUserIDs []string) error {
	members := f.members[standupID]
	if len(members) != len(orderedUserIDs) {
		return storage.ErrConflict
	}
	byUser := make(map[string]storage.Membership, len(members))
	for _, member := range members {
		byUser[member.UserID] = member
	}
	reordered := make([]storage.Membership, 0, len(orderedUserIDs))
	for i, userID := range orderedUserIDs {
		member, ok := byUser[userID]
		if !ok {
			return storage.ErrConflict
		}
		member.Position = i
		reordered = append(reordered, member)
	}
	f.members[standupID] = reordered
	return nil
}

func (f *fakeStore) PutUpdate(_ context.Context, update storage.Update) (storage.Update, error) {
	for id, existing := range f.updates {
		if existing.StandupID == update.StandupID && existing.UserID == update.UserID {
			existing.Yesterday = update.Yesterday
			existing.Today = update.Today
			existing.Ready = update.Ready
			f.updates[id] = existing
			return existing, nil
		}
	}
	f.updates[update.ID] = update
	return update, nil
}

func (f *fakeStore) GetUpdate(_ context.Context, standupID, userID string) (storage.Update, error) {
	for _, update := range f.updates {
		if update.StandupID == standupID && update.UserID == userID {
			return update, nil
		}
	}
	return storage.Update{}, storage.ErrNotFound
}

func (f *fakeStore) GetUpdateByID(_ context.Context, id string) (storage.Update, error) {
	update, ok := f.updates[id]
	if !ok {
		return storage.Update{}, storage.ErrNotFound
	}
	return update, nil
}

func (f *fakeStore) SetReady(_ context.Context, id string, ready bool) error {
	update, ok := f.updates[id]
	if !ok {
		return storage.ErrNotFound
	}
	update.Ready = ready
	f.updates[id] = update
	return nil
}

func (f *fakeStore) ListUpdatesByStandup(_ context.Context, standupID string) ([]storage.Update, error) {
	var updates []storage.Update
	for _, update := range f.updates {
		if update.StandupID == standupID {
			updates = append(updates, update)
		}
	}
	sort.Slice(updates, func(i, j int) bool {
		return updates[i].CreatedAt.Before(updates[j].CreatedAt)
	})
	return updates, nil
}

func (f *fakeStore) ListUpdatesByUser(_ context.Context, userID string) ([]storage.Update, error) {
	var updates []storage.Update
	for _, update := range f.updates {
		if update.UserID == userID {
			updates = append(updates, update)
		}
	}
	sort.Slice(updates, func(i, j int) bool {
		return updates[i].CreatedAt.After(updates[j].CreatedAt)
	})
	return updates, nil
}

func (f *fakeStore) StartTurn(_ context.Context, standupID, firstUserID string, now time.Time) error {
	standup, ok := f.standups[standupID]
	if !ok {
		return storage.ErrNotFound
	}
	if !standup.StartedAt.IsZero() || !standup.FinishedAt.IsZero() {
		return storage.ErrConflict
	}
	standup.StartedAt = now
	standup.ActiveUserID = firstUserID
	f.standups[standupID] = standup
	return f.openUpdate(standupID, firstUserID, now)
}

func (f *fakeStore) AdvanceTurn(_ context.Context, standupID, fromUserID, toUserID string, now time.Time) error {
	if f.advanceConflicts > 0 {
		f.advanceConflicts--
		return storage.ErrConflict
	}
	if err := f.movePointer(standupID, fromUserID, toUserID); err != nil {
		return err
	}
	if err := f.closeUpdate(standupID, fromUserID, now); err != nil {
		return err
	}
	return f.openUpdate(standupID, toUserID, now)
}

func (f *fakeStore) RetreatTurn(_ context.Context, standupID, fromUserID, toUserID string, now time.Time) error {
	if err := f.movePointer(standupID, fromUserID, toUserID); err != nil {
		return err
	}
	for id, update := range f.updates {
		if update.StandupID != standupID {
			continue
		}
		switch update.UserID {
		case fromUserID:
			update.StartedAt = time.Time{}
			update.FinishedAt = time.Time{}
		case toUserID:
			if update.StartedAt.IsZero() {
				update.StartedAt = now
			}
			update.FinishedAt = time.Time{}
		default:
			continue
		}
		f.updates[id] = update
	}
	return nil
}

func (f *fakeStore) SkipTurn(ctx context.Context, standupID, currentUserID, nextUserID string, orderedUserIDs []string, now time.Time) error {
	if err := f.movePointer(standupID, currentUserID, nextUserID); err != nil {
		return err
	}
	if err := f.closeUpdate(standupID, currentUserID, now); err != nil {
		return err
	}
	if err := f.openUpdate(standupID, nextUserID, now); err != nil {
		return err
	}
	return f.ReplaceOrder(ctx, standupID, orderedUserIDs)
}

func (f *fakeStore) FinishTurn(_ context.Context, standupID, updateID string, now time.Time) error {
	standup, ok := f.standups[standupID]
	if !ok {
		return storage.ErrNotFound
	}
	if standup.StartedAt.IsZero() || !standup.FinishedAt.IsZero() {
		return storage.ErrConflict
	}
	update, ok := f.updates[updateID]
	if !ok || update.StandupID != standupID {
		return storage.ErrConflict
	}
	standup.FinishedAt = now
	standup.ActiveUserID = ""
	f.standups[standupID] = standup
	update.FinishedAt = now
	f.updates[updateID] = update
	return nil
}

func (f *fakeStore) movePointer(standupID, fromUserID, toUserID string) error {
	standup, ok := f.standups[standupID]
	if !ok {
		return storage.ErrNotFound
	}
	if standup.StartedAt.IsZero() || !standup.FinishedAt.IsZero() || standup.ActiveUserID != fromUserID {
		return storage.ErrConflict
	}
	standup.ActiveUserID = toUserID
	f.standups[standupID] = standup
	return nil
}

func (f *fakeStore) openUpdate(standupID, userID string, now time.Time) error {
	for id, update := range f.updates {
		if update.StandupID == standupID && update.UserID == userID {
			if update.StartedAt.IsZero() {
				update.StartedAt = now
			}
			update.FinishedAt = time.Time{}
			f.updates[id] = update
			return nil
		}
	}
	return storage.ErrConflict
}

func (f *fakeStore) closeUpdate(standupID, userID string, now time.Time) error {
	for id, update := range f.updates {
		if update.StandupID == standupID && update.UserID == userID && update.FinishedAt.IsZero() {
			update.FinishedAt = now
			f.updates[id] = update
			return nil
		}
	}
	return storage.ErrConflict
}

var _ Store = (*fakeStore)(nil)

// seedDraft creates a draft standup with members and ready updates.
func seedDraft(t *testing.T, store *fakeStore, standupID string, userIDs ...string) {
	t.Helper()
	base := time.Date(2026, time.March, 9, 9, 0, 0, 0, time.UTC)
	if err := store.CreateStandup(context.Background(), storage.Standup{
		ID: standupID, Name: "Daily Sync", CreatedAt: base,
	}); err != nil {
		t.Fatalf("seed standup: %v", err)
	}
	for i, userID := range userIDs {
		if _, _, err := store.AddMember(context.Background(), standupID, userID); err != nil {
			t.Fatalf("seed member %s: %v", userID, err)
		}
		if _, err := store.PutUpdate(context.Background(), storage.Update{
			ID:        fmt.Sprintf("update-%s-%s", standupID, userID),
			StandupID: standupID,
			UserID:    userID,
			Yesterday: "worked",
			Today:     "working",
			Ready:     true,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}); err != nil {
			t.Fatalf("seed update %s: %v", userID, err)
		}
	}
}

func wantStatusCode(t *testing.T, err error, want codes.Code) {
	t.Helper()
	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("err = %v, want gRPC status", err)
	}
	if st.Code() != want {
		t.Fatalf("status code = %v, want %v (message %q)", st.Code(), want, st.Message())
	}
}

func TestCreateStandup_RequiresName(t *testing.T) {
	svc := NewService(newFakeStore())

	_, err := svc.CreateStandup(context.Background(), &standupv1.CreateStandupRequest{Name: "   "})
	wantStatusCode(t, err, codes.InvalidArgument)
}

func TestCreateStandup_StartsAsDraft(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	now := time.Date(2026, time.March, 9, 9, 0, 0, 0, time.UTC)
	svc.clock = func() time.Time { return now }

	resp, err := svc.CreateStandup(context.Background(), &standupv1.CreateStandupRequest{
		Name:       "Daily Sync",
		Emoji:      "☀️",
		Icebreaker: "favorite editor?",
	})
	if err != nil {
		t.Fatalf("create standup: %v", err)
	}
	standup := resp.GetStandup()
	if standup.GetId() == "" {
		t.Fatal("expected generated standup id")
	}
	if standup.GetPhase() != standupv1.Phase_PHASE_DRAFT {
		t.Fatalf("phase = %v, want PHASE_DRAFT", standup.GetPhase())
	}
	if standup.GetStartedAt() != nil || standup.GetFinishedAt() != nil {
		t.Fatal("draft standup has turn timestamps")
	}
}

func TestGetStandup_ReturnsRosterAndUpdates(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	seedDraft(t, store, "standup-1", "user-1", "user-2")

	resp, err := svc.GetStandup(context.Background(), &standupv1.GetStandupRequest{StandupId: "standup-1"})
	if err != nil {
		t.Fatalf("get standup: %v", err)
	}
	if len(resp.GetMembers()) != 2 {
		t.Fatalf("members len = %d, want 2", len(resp.GetMembers()))
	}
	if len(resp.GetUpdates()) != 2 {
		t.Fatalf("updates len = %d, want 2", len(resp.GetUpdates()))
	}

	_, err = svc.GetStandup(context.Background(), &standupv1.GetStandupRequest{StandupId: "missing"})
	wantStatusCode(t, err, codes.NotFound)
}

func TestJoinStandup_IdempotentAndPhaseGated(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	now := time.Date(2026, time.March, 9, 10, 0, 0, 0, time.UTC)
	svc.clock = func() time.Time { return now }
	seedDraft(t, store, "standup-1", "user-1", "user-2")

	// Re-joining returns the existing membership untouched.
	resp, err := svc.JoinStandup(context.Background(), &standupv1.JoinStandupRequest{
		StandupId: "standup-1", UserId: "user-1",
	})
	if err != nil {
		t.Fatalf("re-join: %v", err)
	}
	if resp.GetCreated() {
		t.Fatal("re-join reported created")
	}
	if resp.GetMember().GetPosition() != 0 {
		t.Fatalf("position = %d, want 0", resp.GetMember().GetPosition())
	}

	// A new participant may join a draft.
	resp, err = svc.JoinStandup(context.Background(), &standupv1.JoinStandupRequest{
		StandupId: "standup-1", UserId: "user-3",
	})
	if err != nil {
		t.Fatalf("join: %v", err)
	}
	if !resp.GetCreated() || resp.GetMember().GetPosition() != 2 {
		t.Fatalf("join = created %v position %d, want true 2", resp.GetCreated(), resp.GetMember().GetPosition())
	}

	// Once started, fresh joins are rejected but re-joins still no-op.
	if _, err := svc.StartStandup(context.Background(), &standupv1.StartStandupRequest{
		StandupId: "standup-1", FirstUserId: "user-1",
	}); err != nil {
		t.Fatalf("start: %v", err)
	}
	_, err = svc.JoinStandup(context.Background(), &standupv1.JoinStandupRequest{
		StandupId: "standup-1", UserId: "user-4",
	})
	wantStatusCode(t, err, codes.FailedPrecondition)
	if _, err := svc.JoinStandup(context.Background(), &standupv1.JoinStandupRequest{
		StandupId: "standup-1", UserId: "user-1",
	}); err != nil {
		t.Fatalf("re-join active standup: %v", err)
	}
}

func TestLeaveStandup_ActiveSpeakerCannotLeave(t *testing.T) {
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

	_, err := svc.LeaveStandup(context.Background(), &standupv1.LeaveStandupRequest{
		StandupId: "standup-1", UserId: "user-1",
	})
	wantStatusCode(t, err, codes.FailedPrecondition)

	// A bystander may leave a running standup, and leaving renumbers.
	if _, err := svc.LeaveStandup(context.Background(), &standupv1.LeaveStandupRequest{
		StandupId: "standup-1", UserId: "user-2",
	}); err != nil {
		t.Fatalf("bystander leave: %v", err)
	}
	members, err := store.ListMembers(context.Background(), "standup-1")
	if err != nil {
		t.Fatalf("list members: %v", err)
	}
	if len(members) != 2 || members[1].UserID != "user-3" || members[1].Position != 1 {
		t.Fatalf("roster after leave = %+v", members)
	}

	// Leaving when not a member is a no-op.
	if _, err := svc.LeaveStandup(context.Background(), &standupv1.LeaveStandupRequest{
		StandupId: "standup-1", UserId: "user-9",
	}); err != nil {
		t.Fatalf("absent leave: %v", err)
	}
}

func TestLeaveStandup_MissingStandupIsNoOp(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)

	if _, err := svc.LeaveStandup(context.Background(), &standupv1.LeaveStandupRequest{
		StandupId: "missing", UserId: "user-1",
	}); err != nil {
		t.Fatalf("leave missing standup: %v", err)
	}
}

func TestShuffleRoster_DraftOnlyAndKeepsRosterSet(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	now := time.Date(2026, time.March, 9, 10, 0, 0, 0, time.UTC)
	svc.clock = func() time.Time { return now }
	seedDraft(t, store, "standup-1", "user-1", "user-2", "user-3")

	resp, err := svc.ShuffleRoster(context.Background(), &standupv1.ShuffleRosterRequest{StandupId: "standup-1"})
	if err != nil {
		t.Fatalf("shuffle: %v", err)
	}
	if len(resp.GetMembers()) != 3 {
		t.Fatalf("members len = %d, want 3", len(resp.GetMembers()))
	}
	seen := make(map[string]bool)
	for i, member := range resp.GetMembers() {
		if member.GetPosition() != int32(i) {
			t.Fatalf("member[%d] position = %d", i, member.GetPosition())
		}
		seen[member.GetUserId()] = true
	}
	if len(seen) != 3 {
		t.Fatalf("shuffle changed roster membership: %v", seen)
	}

	if _, err := svc.StartStandup(context.Background(), &standupv1.StartStandupRequest{
		StandupId: "standup-1", FirstUserId: resp.GetMembers()[0].GetUserId(),
	}); err != nil {
		t.Fatalf("start: %v", err)
	}
	_, err = svc.ShuffleRoster(context.Background(), &standupv1.ShuffleRosterRequest{StandupId: "standup-1"})
	wantStatusCode(t, err, codes.FailedPrecondition)
}

func TestReorderRoster_MovesAndClamps(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	seedDraft(t, store, "standup-1", "user-1", "user-2", "user-3")

	resp, err := svc.ReorderRoster(context.Background(), &standupv1.ReorderRosterRequest{
		StandupId: "standup-1", UserId: "user-2", ToIndex: 0,
	})
	if err != nil {
		t.Fatalf("reorder: %v", err)
	}
	got := make([]string, 0, 3)
	for _, member := range resp.GetMembers() {
		got = append(got, member.GetUserId())
	}
	want := []string{"user-2", "user-1", "user-3"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}

	// Out-of-range index clamps to the tail.
	resp, err = svc.ReorderRoster(context.Background(), &standupv1.ReorderRosterRequest{
		StandupId: "standup-1", UserId: "user-2", ToIndex: 99,
	})
	if err != nil {
		t.Fatalf("reorder clamp: %v", err)
	}
	members := resp.GetMembers()
	if members[len(members)-1].GetUserId() != "user-2" {
		t.Fatalf("clamped order = %+v, want user-2 last", members)
	}

	// Absent participant is a no-op.
	if _, err := svc.ReorderRoster(context.Background(), &standupv1.ReorderRosterRequest{
		StandupId: "standup-1", UserId: "user-9", ToIndex: 0,
	}); err != nil {
		t.Fatalf("absent reorder: %v", err)
	}
}

func TestUpsertUpdate_CreateThenRewrite(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	now := time.Date(2026, time.March, 9, 9, 0, 0, 0, time.UTC)
	svc.clock = func() time.Time { return now }
	seedDraft(t, store, "standup-1")

	resp, err := svc.UpsertUpdate(context.Background(), &standupv1.UpsertUpdateRequest{
		StandupId: "standup-1",
		UserId:    "user-1",
		Yesterday: "reviewed PRs",
		Today:     "shipping the migration",
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if resp.GetUpdate().GetReady() {
		t.Fatal("new update ready by default")
	}
	firstID := resp.GetUpdate().GetId()

	resp, err = svc.UpsertUpdate(context.Background(), &standupv1.UpsertUpdateRequest{
		StandupId: "standup-1",
		UserId:    "user-1",
		Today:     "shipping the migration, then docs",
		Ready:     true,
	})
	if err != nil {
		t.Fatalf("re-upsert: %v", err)
	}
	if resp.GetUpdate().GetId() != firstID {
		t.Fatalf("re-upsert id = %q, want %q", resp.GetUpdate().GetId(), firstID)
	}
	if !resp.GetUpdate().GetReady() {
		t.Fatal("re-upsert did not set ready")
	}

	_, err = svc.UpsertUpdate(context.Background(), &standupv1.UpsertUpdateRequest{
		StandupId: "missing", UserId: "user-1",
	})
	wantStatusCode(t, err, codes.NotFound)
}

func TestSetUpdateReady(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	seedDraft(t, store, "standup-1", "user-1")

	resp, err := svc.SetUpdateReady(context.Background(), &standupv1.SetUpdateReadyRequest{
		UpdateId: "update-standup-1-user-1", Ready: false,
	})
	if err != nil {
		t.Fatalf("set ready: %v", err)
	}
	if resp.GetUpdate().GetReady() {
		t.Fatal("ready = true, want false")
	}

	_, err = svc.SetUpdateReady(context.Background(), &standupv1.SetUpdateReadyRequest{
		UpdateId: "missing", Ready: true,
	})
	wantStatusCode(t, err, codes.NotFound)
}

func TestPreviousCommitment_SkipsExcludedAndUnfinished(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	base := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

	// M1 finished, M2 draft, M3 current; updates most-recent-first are
	// M3, M2, M1.
	for i, standupID := range []string{"m1", "m2", "m3"} {
		standup := storage.Standup{ID: standupID, Name: standupID, CreatedAt: base}
		if standupID == "m1" {
			standup.StartedAt = base
			standup.FinishedAt = base.Add(time.Hour)
		}
		if err := store.CreateStandup(context.Background(), standup); err != nil {
			t.Fatalf("seed %s: %v", standupID, err)
		}
		if _, err := store.PutUpdate(context.Background(), storage.Update{
			ID:        "update-" + standupID,
			StandupID: standupID,
			UserID:    "user-1",
			Today:     "today in " + standupID,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}); err != nil {
			t.Fatalf("seed update %s: %v", standupID, err)
		}
	}

	resp, err := svc.PreviousCommitment(context.Background(), &standupv1.PreviousCommitmentRequest{
		UserId: "user-1", ExcludeStandupId: "m3",
	})
	if err != nil {
		t.Fatalf("previous commitment: %v", err)
	}
	if !resp.GetFound() || resp.GetToday() != "today in m1" {
		t.Fatalf("previous commitment = %q found %v, want today in m1", resp.GetToday(), resp.GetFound())
	}

	resp, err = svc.PreviousCommitment(context.Background(), &standupv1.PreviousCommitmentRequest{
		UserId: "user-2",
	})
	if err != nil {
		t.Fatalf("previous commitment user-2: %v", err)
	}
	if resp.GetFound() {
		t.Fatal("expected no previous commitment")
	}
}
