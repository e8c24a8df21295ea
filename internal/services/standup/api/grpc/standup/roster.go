package standup

import (
	"context"
	"errors"
	"strings"

	standupv1 "github.com/turnwise/standup/api/gen/go/standup/v1"
	apperrors "github.com/turnwise/standup/internal/platform/errors"
	"github.com/turnwise/standup/internal/services/standup/domain/roster"
	"github.com/turnwise/standup/internal/services/standup/domain/turn"
	"github.com/turnwise/standup/internal/services/standup/storage"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// JoinStandup appends the user to the roster tail. Joining a roster the user
// is already on returns the existing membership regardless of phase; a fresh
// join is only accepted while the standup is a draft.
func (s *Service) JoinStandup(ctx context.Context, in *standupv1.JoinStandupRequest) (*standupv1.JoinStandupResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "join standup request is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "standup store is not configured")
	}
	standupID := strings.TrimSpace(in.GetStandupId())
	userID := strings.TrimSpace(in.GetUserId())
	if standupID == "" {
		return nil, status.Error(codes.InvalidArgument, "standup id is required")
	}
	if userID == "" {
		return nil, apperrors.New(apperrors.CodeUserIDEmpty, "user id is required").ToGRPCStatus()
	}

	standup, err := s.store.GetStandup(ctx, standupID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperrors.New(apperrors.CodeStandupNotFound, "standup not found").ToGRPCStatus()
		}
		return nil, statusFromError(err, "join standup")
	}

	members, err := s.store.ListMembers(ctx, standupID)
	if err != nil {
		return nil, statusFromError(err, "join standup")
	}
	for _, member := range members {
		if member.UserID == userID {
			return &standupv1.JoinStandupResponse{
				Member:  memberToProto(member),
				Created: false,
			}, nil
		}
	}

	if err := turn.CanEditRoster(standup); err != nil {
		return nil, statusFromError(err, "join standup")
	}
	member, created, err := s.store.AddMember(ctx, standupID, userID)
	if err != nil {
		return nil, statusFromError(err, "join standup")
	}
	return &standupv1.JoinStandupResponse{
		Member:  memberToProto(member),
		Created: created,
	}, nil
}

// LeaveStandup removes the user's membership and update. Leaving a roster the
// user is not on, or a standup that does not exist, succeeds; the active
// speaker of a running standup cannot leave.
func (s *Service) LeaveStandup(ctx context.Context, in *standupv1.LeaveStandupRequest) (*standupv1.LeaveStandupResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "leave standup request is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "standup store is not configured")
	}
	standupID := strings.TrimSpace(in.GetStandupId())
	userID := strings.TrimSpace(in.GetUserId())
	if standupID == "" {
		return nil, status.Error(codes.InvalidArgument, "standup id is required")
	}
	if userID == "" {
		return nil, apperrors.New(apperrors.CodeUserIDEmpty, "user id is required").ToGRPCStatus()
	}

	standup, err := s.store.GetStandup(ctx, standupID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return &standupv1.LeaveStandupResponse{}, nil
		}
		return nil, statusFromError(err, "leave standup")
	}
	if err := turn.CanLeave(standup, userID); err != nil {
		return nil, statusFromError(err, "leave standup")
	}

	err = s.store.RemoveMember(ctx, standupID, userID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, statusFromError(err, "leave standup")
	}
	return &standupv1.LeaveStandupResponse{}, nil
}

// ShuffleRoster replaces the roster order with a uniformly random
// permutation. Only drafts may shuffle.
func (s *Service) ShuffleRoster(ctx context.Context, in *standupv1.ShuffleRosterRequest) (*standupv1.ShuffleRosterResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "shuffle roster request is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "standup store is not configured")
	}
	standupID := strings.TrimSpace(in.GetStandupId())
	if standupID == "" {
		return nil, status.Error(codes.InvalidArgument, "standup id is required")
	}

	standup, err := s.store.GetStandup(ctx, standupID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperrors.New(apperrors.CodeStandupNotFound, "standup not found").ToGRPCStatus()
		}
		return nil, statusFromError(err, "shuffle roster")
	}
	if err := turn.CanEditRoster(standup); err != nil {
		return nil, statusFromError(err, "shuffle roster")
	}

	members, err := s.store.ListMembers(ctx, standupID)
	if err != nil {
		return nil, statusFromError(err, "shuffle roster")
	}
	if len(members) > 1 {
		s.rngMu.Lock()
		shuffled := roster.Shuffled(roster.UserIDs(members), s.rng)
		s.rngMu.Unlock()
		if err := s.store.ReplaceOrder(ctx, standupID, shuffled); err != nil {
			return nil, statusFromError(err, "shuffle roster")
		}
		members, err = s.store.ListMembers(ctx, standupID)
		if err != nil {
			return nil, statusFromError(err, "shuffle roster")
		}
	}
	return &standupv1.ShuffleRosterResponse{
		Members: membersToProto(members),
	}, nil
}

// ReorderRoster moves the user to to_index, shifting the participants in
// between. Out-of-range indices clamp to the roster range; reordering an
// absent user is a no-op.
func (s *Service) ReorderRoster(ctx context.Context, in *standupv1.ReorderRosterRequest) (*standupv1.ReorderRosterResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "reorder roster request is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "standup store is not configured")
	}
	standupID := strings.TrimSpace(in.GetStandupId())
	userID := strings.TrimSpace(in.GetUserId())
	if standupID == "" {
		return nil, status.Error(codes.InvalidArgument, "standup id is required")
	}
	if userID == "" {
		return nil, apperrors.New(apperrors.CodeUserIDEmpty, "user id is required").ToGRPCStatus()
	}

	standup, err := s.store.GetStandup(ctx, standupID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperrors.New(apperrors.CodeStandupNotFound, "standup not found").ToGRPCStatus()
		}
		return nil, statusFromError(err, "reorder roster")
	}
	if err := turn.CanEditRoster(standup); err != nil {
		return nil, statusFromError(err, "reorder roster")
	}

	members, err := s.store.ListMembers(ctx, standupID)
	if err != nil {
		return nil, statusFromError(err, "reorder roster")
	}
	reordered, ok := roster.Reordered(roster.UserIDs(members), userID, int(in.GetToIndex()))
	if ok {
		if err := s.store.ReplaceOrder(ctx, standupID, reordered); err != nil {
			return nil, statusFromError(err, "reorder roster")
		}
		members, err = s.store.ListMembers(ctx, standupID)
		if err != nil {
			return nil, statusFromError(err, "reorder roster")
		}
	}
	return &standupv1.ReorderRosterResponse{
		Members: membersToProto(members),
	}, nil
}
