package server

import (
	"context"
	"testing"
	"time"

	standupv1 "github.com/turnwise/standup/api/gen/go/standup/v1"
	platformgrpc "github.com/turnwise/standup/internal/platform/grpc"
)

func startTestServer(t *testing.T) standupv1.StandupServiceClient {
	t.Helper()
	dbPath := t.TempDir() + "/standup.db"
	t.Setenv("STANDUP_DB_PATH", dbPath)

	srv, err := NewWithAddr("127.0.0.1:0")
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	runCtx, runCancel := context.WithCancel(context.Background())
	serveDone := make(chan error, 1)
	go func() {
		serveDone <- srv.Serve(runCtx)
	}()
	t.Cleanup(func() {
		runCancel()
		select {
		case serveErr := <-serveDone:
			if serveErr != nil {
				t.Fatalf("serve: %v", serveErr)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("timeout waiting for server shutdown")
		}
	})

	dialCtx, dialCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer dialCancel()
	conn, err := platformgrpc.DialService(dialCtx, srv.Addr(), t.Logf)
	if err != nil {
		t.Fatalf("dial standup server: %v", err)
	}
	t.Cleanup(func() {
		if closeErr := conn.Close(); closeErr != nil {
			t.Fatalf("close gRPC connection: %v", closeErr)
		}
	})
	return standupv1.NewStandupServiceClient(conn)
}

func TestServer_FullStandupRoundTrip(t *testing.T) {
	client := startTestServer(t)
	ctx := context.Background()

	createResp, err := client.CreateStandup(ctx, &standupv1.CreateStandupRequest{
		Name:       "Daily Sync",
		Icebreaker: "weekend plans?",
	})
	if err != nil {
		t.Fatalf("create standup: %v", err)
	}
	standupID := createResp.GetStandup().GetId()

	for _, userID := range []string{"user-1", "user-2"} {
		if _, err := client.JoinStandup(ctx, &standupv1.JoinStandupRequest{
			StandupId: standupID, UserId: userID,
		}); err != nil {
			t.Fatalf("join %s: %v", userID, err)
		}
		if _, err := client.UpsertUpdate(ctx, &standupv1.UpsertUpdateRequest{
			StandupId: standupID,
			UserId:    userID,
			Yesterday: "reviewed",
			Today:     "building",
			Ready:     true,
		}); err != nil {
			t.Fatalf("upsert update %s: %v", userID, err)
		}
	}

	if _, err := client.StartStandup(ctx, &standupv1.StartStandupRequest{
		StandupId: standupID, FirstUserId: "user-1",
	}); err != nil {
		t.Fatalf("start standup: %v", err)
	}
	advanceResp, err := client.AdvanceTurn(ctx, &standupv1.AdvanceTurnRequest{
		StandupId: standupID, FromUserId: "user-1", ToUserId: "user-2",
	})
	if err != nil {
		t.Fatalf("advance turn: %v", err)
	}
	if advanceResp.GetStandup().GetActiveUserId() != "user-2" {
		t.Fatalf("active_user_id = %q, want user-2", advanceResp.GetStandup().GetActiveUserId())
	}

	lastUpdate, err := client.GetUpdate(ctx, &standupv1.GetUpdateRequest{
		StandupId: standupID, UserId: "user-2",
	})
	if err != nil {
		t.Fatalf("get update: %v", err)
	}
	finishResp, err := client.FinishStandup(ctx, &standupv1.FinishStandupRequest{
		StandupId: standupID, UpdateId: lastUpdate.GetUpdate().GetId(),
	})
	if err != nil {
		t.Fatalf("finish standup: %v", err)
	}
	if finishResp.GetStandup().GetPhase() != standupv1.Phase_PHASE_COMPLETE {
		t.Fatalf("phase = %v, want PHASE_COMPLETE", finishResp.GetStandup().GetPhase())
	}

	statsResp, err := client.GetUserStats(ctx, &standupv1.GetUserStatsRequest{UserId: "user-1"})
	if err != nil {
		t.Fatalf("get user stats: %v", err)
	}
	if statsResp.GetStats().GetFinishedStandups() != 1 {
		t.Fatalf("finished standups = %d, want 1", statsResp.GetStats().GetFinishedStandups())
	}
}

func TestServer_ListStandupsWithFilter(t *testing.T) {
	client := startTestServer(t)
	ctx := context.Background()

	for _, name := range []string{"alpha", "beta"} {
		if _, err := client.CreateStandup(ctx, &standupv1.CreateStandupRequest{Name: name}); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	listResp, err := client.ListStandups(ctx, &standupv1.ListStandupsRequest{
		Filter: `name = "alpha"`,
	})
	if err != nil {
		t.Fatalf("list standups: %v", err)
	}
	if len(listResp.GetStandups()) != 1 || listResp.GetStandups()[0].GetName() != "alpha" {
		t.Fatalf("filtered standups = %+v, want only alpha", listResp.GetStandups())
	}
}
