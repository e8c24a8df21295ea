package standup

import (
	"context"
	"strings"

	standupv1 "github.com/turnwise/standup/api/gen/go/standup/v1"
	apperrors "github.com/turnwise/standup/internal/platform/errors"
	"github.com/turnwise/standup/internal/services/standup/domain/stats"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/durationpb"
)

// GetUserStats recomputes the user's participation statistics over all
// finished standups.
func (s *Service) GetUserStats(ctx context.Context, in *standupv1.GetUserStatsRequest) (*standupv1.GetUserStatsResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get user stats request is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "standup store is not configured")
	}
	userID := strings.TrimSpace(in.GetUserId())
	if userID == "" {
		return nil, apperrors.New(apperrors.CodeUserIDEmpty, "user id is required").ToGRPCStatus()
	}

	finished, err := s.store.ListFinishedStandups(ctx)
	if err != nil {
		return nil, statusFromError(err, "get user stats")
	}
	updates, err := s.store.ListUpdatesByUser(ctx, userID)
	if err != nil {
		return nil, statusFromError(err, "get user stats")
	}
	memberships, err := s.store.ListMembershipsByUser(ctx, userID)
	if err != nil {
		return nil, statusFromError(err, "get user stats")
	}

	userStats := stats.ForUser(finished, updates, memberships)
	return &standupv1.GetUserStatsResponse{
		Stats: &standupv1.UserStats{
			AvgStandupDuration:    durationpb.New(userStats.AvgStandupDuration),
			AvgUpdateDuration:     durationpb.New(userStats.AvgUpdateDuration),
			FinishedStandups:      int32(userStats.FinishedStandups),
			FinishedUpdates:       int32(userStats.FinishedUpdates),
			ParticipationRate:     userStats.ParticipationRate,
			FastestUpdate:         durationpb.New(userStats.FastestUpdate),
			SlowestUpdate:         durationpb.New(userStats.SlowestUpdate),
			TotalFinishedStandups: int32(userStats.TotalFinishedStandups),
		},
	}, nil
}
