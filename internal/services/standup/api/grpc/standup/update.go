package standup

import (
	"context"
	"errors"
	"strings"

	standupv1 "github.com/turnwise/standup/api/gen/go/standup/v1"
	apperrors "github.com/turnwise/standup/internal/platform/errors"
	"github.com/turnwise/standup/internal/platform/id"
	"github.com/turnwise/standup/internal/services/standup/domain/stats"
	"github.com/turnwise/standup/internal/services/standup/storage"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// UpsertUpdate creates the user's update for the standup or replaces its
// content and readiness. Turn timestamps on an existing update survive.
func (s *Service) UpsertUpdate(ctx context.Context, in *standupv1.UpsertUpdateRequest) (*standupv1.UpsertUpdateResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "upsert update request is required")
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

	if _, err := s.store.GetStandup(ctx, standupID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperrors.New(apperrors.CodeStandupNotFound, "standup not found").ToGRPCStatus()
		}
		return nil, statusFromError(err, "upsert update")
	}

	updateID, err := id.NewID()
	if err != nil {
		return nil, status.Errorf(codes.Internal, "upsert update: %v", err)
	}
	persisted, err := s.store.PutUpdate(ctx, storage.Update{
		ID:        updateID,
		StandupID: standupID,
		UserID:    userID,
		Yesterday: in.GetYesterday(),
		Today:     in.GetToday(),
		Ready:     in.GetReady(),
		CreatedAt: s.now(),
	})
	if err != nil {
		return nil, statusFromError(err, "upsert update")
	}
	return &standupv1.UpsertUpdateResponse{
		Update: updateToProto(persisted),
	}, nil
}

// SetUpdateReady flips the readiness flag on an update.
func (s *Service) SetUpdateReady(ctx context.Context, in *standupv1.SetUpdateReadyRequest) (*standupv1.SetUpdateReadyResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "set update ready request is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "standup store is not configured")
	}
	updateID := strings.TrimSpace(in.GetUpdateId())
	if updateID == "" {
		return nil, status.Error(codes.InvalidArgument, "update id is required")
	}

	if err := s.store.SetReady(ctx, updateID, in.GetReady()); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperrors.New(apperrors.CodeUpdateNotFound, "update not found").ToGRPCStatus()
		}
		return nil, statusFromError(err, "set update ready")
	}
	update, err := s.store.GetUpdateByID(ctx, updateID)
	if err != nil {
		return nil, statusFromError(err, "set update ready")
	}
	return &standupv1.SetUpdateReadyResponse{
		Update: updateToProto(update),
	}, nil
}

// GetUpdate returns the user's update for one standup.
func (s *Service) GetUpdate(ctx context.Context, in *standupv1.GetUpdateRequest) (*standupv1.GetUpdateResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get update request is required")
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

	update, err := s.store.GetUpdate(ctx, standupID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperrors.New(apperrors.CodeUpdateNotFound, "update not found").ToGRPCStatus()
		}
		return nil, statusFromError(err, "get update")
	}
	return &standupv1.GetUpdateResponse{
		Update: updateToProto(update),
	}, nil
}

// PreviousCommitment returns what the user committed to in their most recent
// update from a finished standup, skipping exclude_standup_id.
func (s *Service) PreviousCommitment(ctx context.Context, in *standupv1.PreviousCommitmentRequest) (*standupv1.PreviousCommitmentResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "previous commitment request is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "standup store is not configured")
	}
	userID := strings.TrimSpace(in.GetUserId())
	if userID == "" {
		return nil, apperrors.New(apperrors.CodeUserIDEmpty, "user id is required").ToGRPCStatus()
	}

	updates, err := s.store.ListUpdatesByUser(ctx, userID)
	if err != nil {
		return nil, statusFromError(err, "previous commitment")
	}
	finished, err := s.store.ListFinishedStandups(ctx)
	if err != nil {
		return nil, statusFromError(err, "previous commitment")
	}
	standupByID := make(map[string]storage.Standup, len(finished))
	for _, standup := range finished {
		standupByID[standup.ID] = standup
	}

	today, found := stats.PreviousCommitment(updates, standupByID, strings.TrimSpace(in.GetExcludeStandupId()))
	return &standupv1.PreviousCommitmentResponse{
		Today: today,
		Found: found,
	}, nil
}
