package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/turnwise/standup/internal/services/standup/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(t.TempDir() + "/standup.db")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStandupRoundTrip(t *testing.T) {
	store := newTestStore(t)

	createdAt := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	if err := store.CreateStandup(context.Background(), storage.Standup{
		ID:          "standup-1",
		Name:        "Platform Sync",
		Description: "daily platform team sync",
		Emoji:       "☀️",
		CreatedAt:   createdAt,
	}); err != nil {
		t.Fatalf("create standup: %v", err)
	}

	got, err := store.GetStandup(context.Background(), "standup-1")
	if err != nil {
		t.Fatalf("get standup: %v", err)
	}
	if got.Name != "Platform Sync" {
		t.Fatalf("name = %q, want Platform Sync", got.Name)
	}
	if !got.CreatedAt.Equal(createdAt) {
		t.Fatalf("created_at = %v, want %v", got.CreatedAt, createdAt)
	}
	if !got.StartedAt.IsZero() || !got.FinishedAt.IsZero() {
		t.Fatalf("new standup has turn timestamps: started=%v finished=%v", got.StartedAt, got.FinishedAt)
	}
	if got.ActiveUserID != "" {
		t.Fatalf("active_user_id = %q, want empty", got.ActiveUserID)
	}

	if _, err := store.GetStandup(context.Background(), "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("get missing err = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestCreateStandupDuplicateIDConflicts(t *testing.T) {
	store := newTestStore(t)

	now := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	if err := store.CreateStandup(context.Background(), storage.Standup{
		ID: "standup-1", Name: "First", CreatedAt: now,
	}); err != nil {
		t.Fatalf("create standup: %v", err)
	}
	err := store.CreateStandup(context.Background(), storage.Standup{
		ID: "standup-1", Name: "Second", CreatedAt: now,
	})
	if !errors.Is(err, storage.ErrConflict) {
		t.Fatalf("duplicate create err = %v, want %v", err, storage.ErrConflict)
	}
}

func TestListStandupsOrderLimitAndFilter(t *testing.T) {
	store := newTestStore(t)

	base := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	for i, name := range []string{"alpha", "beta", "gamma"} {
		if err := store.CreateStandup(context.Background(), storage.Standup{
			ID:        name,
			Name:      name,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	standups, err := store.ListStandups(context.Background(), 2, storage.ListFilter{})
	if err != nil {
		t.Fatalf("list standups: %v", err)
	}
	if len(standups) != 2 {
		t.Fatalf("len = %d, want 2", len(standups))
	}
	if standups[0].Name != "gamma" || standups[1].Name != "beta" {
		t.Fatalf("order = %q, %q, want gamma, beta", standups[0].Name, standups[1].Name)
	}

	filtered, err := store.ListStandups(context.Background(), 10, storage.ListFilter{
		Clause: "name = ?",
		Params: []any{"beta"},
	})
	if err != nil {
		t.Fatalf("list filtered: %v", err)
	}
	if len(filtered) != 1 || filtered[0].Name != "beta" {
		t.Fatalf("filtered = %+v, want only beta", filtered)
	}
}

func TestDeleteStandupCascades(t *testing.T) {
	store := newTestStore(t)

	now := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	if err := store.CreateStandup(context.Background(), storage.Standup{
		ID: "standup-1", Name: "Sync", CreatedAt: now,
	}); err != nil {
		t.Fatalf("create standup: %v", err)
	}
	if _, _, err := store.AddMember(context.Background(), "standup-1", "user-1"); err != nil {
		t.Fatalf("add member: %v", err)
	}
	if _, err := store.PutUpdate(context.Background(), storage.Update{
		ID: "update-1", StandupID: "standup-1", UserID: "user-1", CreatedAt: now,
	}); err != nil {
		t.Fatalf("put update: %v", err)
	}

	if err := store.DeleteStandup(context.Background(), "standup-1"); err != nil {
		t.Fatalf("delete standup: %v", err)
	}

	if _, err := store.GetStandup(context.Background(), "standup-1"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("get deleted err = %v, want %v", err, storage.ErrNotFound)
	}
	members, err := store.ListMembers(context.Background(), "standup-1")
	if err != nil {
		t.Fatalf("list members: %v", err)
	}
	if len(members) != 0 {
		t.Fatalf("members survived delete: %+v", members)
	}
	if _, err := store.GetUpdate(context.Background(), "standup-1", "user-1"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("update survived delete, err = %v", err)
	}

	// Absent ids are a no-op.
	if err := store.DeleteStandup(context.Background(), "missing"); err != nil {
		t.Fatalf("delete missing: %v", err)
	}
}

func TestSetIcebreaker(t *testing.T) {
	store := newTestStore(t)

	now := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	if err := store.CreateStandup(context.Background(), storage.Standup{
		ID: "standup-1", Name: "Sync", CreatedAt: now,
	}); err != nil {
		t.Fatalf("create standup: %v", err)
	}

	if err := store.SetIcebreaker(context.Background(), "standup-1", "favorite editor?"); err != nil {
		t.Fatalf("set icebreaker: %v", err)
	}
	got, err := store.GetStandup(context.Background(), "standup-1")
	if err != nil {
		t.Fatalf("get standup: %v", err)
	}
	if got.Icebreaker != "favorite editor?" {
		t.Fatalf("icebreaker = %q, want favorite editor?", got.Icebreaker)
	}

	if err := store.SetIcebreaker(context.Background(), "missing", "x"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("set on missing err = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestAddMemberAppendsAndIsIdempotent(t *testing.T) {
	store := newTestStore(t)

	now := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	if err := store.CreateStandup(context.Background(), storage.Standup{
		ID: "standup-1", Name: "Sync", CreatedAt: now,
	}); err != nil {
		t.Fatalf("create standup: %v", err)
	}

	first, created, err := store.AddMember(context.Background(), "standup-1", "user-1")
	if err != nil {
		t.Fatalf("add user-1: %v", err)
	}
	if !created || first.Position != 0 {
		t.Fatalf("first join: created=%v position=%d, want true, 0", created, first.Position)
	}

	second, created, err := store.AddMember(context.Background(), "standup-1", "user-2")
	if err != nil {
		t.Fatalf("add user-2: %v", err)
	}
	if !created || second.Position != 1 {
		t.Fatalf("second join: created=%v position=%d, want true, 1", created, second.Position)
	}

	again, created, err := store.AddMember(context.Background(), "standup-1", "user-1")
	if err != nil {
		t.Fatalf("re-add user-1: %v", err)
	}
	if created {
		t.Fatal("re-join reported created=true")
	}
	if again.Position != 0 {
		t.Fatalf("re-join position = %d, want 0", again.Position)
	}

	if _, _, err := store.AddMember(context.Background(), "missing", "user-1"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("add to missing standup err = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestRemoveMemberRenumbersAndDropsUpdate(t *testing.T) {
	store := newTestStore(t)

	now := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	if err := store.CreateStandup(context.Background(), storage.Standup{
		ID: "standup-1", Name: "Sync", CreatedAt: now,
	}); err != nil {
		t.Fatalf("create standup: %v", err)
	}
	for _, userID := range []string{"user-1", "user-2", "user-3"} {
		if _, _, err := store.AddMember(context.Background(), "standup-1", userID); err != nil {
			t.Fatalf("add %s: %v", userID, err)
		}
	}
	if _, err := store.PutUpdate(context.Background(), storage.Update{
		ID: "update-2", StandupID: "standup-1", UserID: "user-2", CreatedAt: now,
	}); err != nil {
		t.Fatalf("put update: %v", err)
	}

	if err := store.RemoveMember(context.Background(), "standup-1", "user-2"); err != nil {
		t.Fatalf("remove user-2: %v", err)
	}

	members, err := store.ListMembers(context.Background(), "standup-1")
	if err != nil {
		t.Fatalf("list members: %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("len = %d, want 2", len(members))
	}
	for i, want := range []string{"user-1", "user-3"} {
		if members[i].UserID != want || members[i].Position != i {
			t.Fatalf("member[%d] = %q at %d, want %q at %d", i, members[i].UserID, members[i].Position, want, i)
		}
	}
	if _, err := store.GetUpdate(context.Background(), "standup-1", "user-2"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("removed member's update survived, err = %v", err)
	}

	if err := store.RemoveMember(context.Background(), "standup-1", "user-2"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("remove absent member err = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestReplaceOrderRewritesPositions(t *testing.T) {
	store := newTestStore(t)

	now := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	if err := store.CreateStandup(context.Background(), storage.Standup{
		ID: "standup-1", Name: "Sync", CreatedAt: now,
	}); err != nil {
		t.Fatalf("create standup: %v", err)
	}
	for _, userID := range []string{"user-1", "user-2", "user-3"} {
		if _, _, err := store.AddMember(context.Background(), "standup-1", userID); err != nil {
			t.Fatalf("add %s: %v", userID, err)
		}
	}

	if err := store.ReplaceOrder(context.Background(), "standup-1", []string{"user-3", "user-1", "user-2"}); err != nil {
		t.Fatalf("replace order: %v", err)
	}
	members, err := store.ListMembers(context.Background(), "standup-1")
	if err != nil {
		t.Fatalf("list members: %v", err)
	}
	for i, want := range []string{"user-3", "user-1", "user-2"} {
		if members[i].UserID != want {
			t.Fatalf("member[%d] = %q, want %q", i, members[i].UserID, want)
		}
	}

	// Wrong cardinality or a user not on the roster means the caller's view
	// is stale.
	if err := store.ReplaceOrder(context.Background(), "standup-1", []string{"user-1", "user-2"}); !errors.Is(err, storage.ErrConflict) {
		t.Fatalf("short order err = %v, want %v", err, storage.ErrConflict)
	}
	if err := store.ReplaceOrder(context.Background(), "standup-1", []string{"user-1", "user-2", "user-9"}); !errors.Is(err, storage.ErrConflict) {
		t.Fatalf("unknown user err = %v, want %v", err, storage.ErrConflict)
	}
}

func TestListMembershipsByUser(t *testing.T) {
	store := newTestStore(t)

	now := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	for _, id := range []string{"standup-1", "standup-2"} {
		if err := store.CreateStandup(context.Background(), storage.Standup{
			ID: id, Name: id, CreatedAt: now,
		}); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
		if _, _, err := store.AddMember(context.Background(), id, "user-1"); err != nil {
			t.Fatalf("add to %s: %v", id, err)
		}
	}
	if _, _, err := store.AddMember(context.Background(), "standup-1", "user-2"); err != nil {
		t.Fatalf("add user-2: %v", err)
	}

	memberships, err := store.ListMembershipsByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("list memberships: %v", err)
	}
	if len(memberships) != 2 {
		t.Fatalf("len = %d, want 2", len(memberships))
	}
	for _, m := range memberships {
		if m.UserID != "user-1" {
			t.Fatalf("user_id = %q, want user-1", m.UserID)
		}
	}
}

func TestPutUpdateInsertThenRewrite(t *testing.T) {
	store := newTestStore(t)

	now := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	if err := store.CreateStandup(context.Background(), storage.Standup{
		ID: "standup-1", Name: "Sync", CreatedAt: now,
	}); err != nil {
		t.Fatalf("create standup: %v", err)
	}

	inserted, err := store.PutUpdate(context.Background(), storage.Update{
		ID:        "update-1",
		StandupID: "standup-1",
		UserID:    "user-1",
		Yesterday: "shipped the parser",
		Today:     "writing tests",
		CreatedAt: now,
	})
	if err != nil {
		t.Fatalf("insert update: %v", err)
	}
	if inserted.ID != "update-1" {
		t.Fatalf("inserted id = %q, want update-1", inserted.ID)
	}

	// Stamp a turn timestamp out of band, then rewrite: content and readiness
	// change, the timestamp survives, and the row keeps its original id.
	spokeAt := now.Add(30 * time.Minute)
	if err := store.StartTurn(context.Background(), "standup-1", "user-1", spokeAt); err != nil {
		t.Fatalf("start turn: %v", err)
	}

	rewritten, err := store.PutUpdate(context.Background(), storage.Update{
		ID:        "update-ignored",
		StandupID: "standup-1",
		UserID:    "user-1",
		Yesterday: "shipped the parser and the lexer",
		Today:     "reviewing",
		Ready:     true,
		CreatedAt: now.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("rewrite update: %v", err)
	}
	if rewritten.ID != "update-1" {
		t.Fatalf("rewritten id = %q, want update-1", rewritten.ID)
	}
	if rewritten.Today != "reviewing" || !rewritten.Ready {
		t.Fatalf("rewritten = %+v, want new content and ready", rewritten)
	}
	if !rewritten.StartedAt.Equal(spokeAt) {
		t.Fatalf("started_at = %v, want %v", rewritten.StartedAt, spokeAt)
	}
	if !rewritten.CreatedAt.Equal(now) {
		t.Fatalf("created_at = %v, want original %v", rewritten.CreatedAt, now)
	}
}

func TestSetReadyAndGetByID(t *testing.T) {
	store := newTestStore(t)

	now := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	if err := store.CreateStandup(context.Background(), storage.Standup{
		ID: "standup-1", Name: "Sync", CreatedAt: now,
	}); err != nil {
		t.Fatalf("create standup: %v", err)
	}
	if _, err := store.PutUpdate(context.Background(), storage.Update{
		ID: "update-1", StandupID: "standup-1", UserID: "user-1", CreatedAt: now,
	}); err != nil {
		t.Fatalf("put update: %v", err)
	}

	if err := store.SetReady(context.Background(), "update-1", true); err != nil {
		t.Fatalf("set ready: %v", err)
	}
	got, err := store.GetUpdateByID(context.Background(), "update-1")
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if !got.Ready {
		t.Fatal("ready = false, want true")
	}

	if err := store.SetReady(context.Background(), "update-1", false); err != nil {
		t.Fatalf("unset ready: %v", err)
	}
	got, err = store.GetUpdateByID(context.Background(), "update-1")
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got.Ready {
		t.Fatal("ready = true, want false")
	}

	if err := store.SetReady(context.Background(), "missing", true); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("set ready missing err = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestListUpdatesByUserMostRecentFirst(t *testing.T) {
	store := newTestStore(t)

	base := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	for i, standupID := range []string{"standup-1", "standup-2", "standup-3"} {
		if err := store.CreateStandup(context.Background(), storage.Standup{
			ID: standupID, Name: standupID, CreatedAt: base,
		}); err != nil {
			t.Fatalf("create %s: %v", standupID, err)
		}
		if _, err := store.PutUpdate(context.Background(), storage.Update{
			ID:        "update-" + standupID,
			StandupID: standupID,
			UserID:    "user-1",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}); err != nil {
			t.Fatalf("put update %s: %v", standupID, err)
		}
	}

	updates, err := store.ListUpdatesByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("list updates: %v", err)
	}
	if len(updates) != 3 {
		t.Fatalf("len = %d, want 3", len(updates))
	}
	for i, want := range []string{"standup-3", "standup-2", "standup-1"} {
		if updates[i].StandupID != want {
			t.Fatalf("updates[%d] standup = %q, want %q", i, updates[i].StandupID, want)
		}
	}
}
