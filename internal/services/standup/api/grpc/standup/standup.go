package standup

import (
	"context"
	"errors"
	"strings"

	standupv1 "github.com/turnwise/standup/api/gen/go/standup/v1"
	apperrors "github.com/turnwise/standup/internal/platform/errors"
	"github.com/turnwise/standup/internal/platform/grpc/pagination"
	"github.com/turnwise/standup/internal/platform/id"
	"github.com/turnwise/standup/internal/services/standup/filter"
	"github.com/turnwise/standup/internal/services/standup/storage"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	defaultListStandupsPageSize = 20
	maxListStandupsPageSize     = 100
)

// CreateStandup creates one draft standup.
func (s *Service) CreateStandup(ctx context.Context, in *standupv1.CreateStandupRequest) (*standupv1.CreateStandupResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "create standup request is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "standup store is not configured")
	}

	name := strings.TrimSpace(in.GetName())
	if name == "" {
		return nil, apperrors.New(apperrors.CodeStandupNameEmpty, "standup name is required").ToGRPCStatus()
	}

	standupID, err := id.NewID()
	if err != nil {
		return nil, status.Errorf(codes.Internal, "create standup: %v", err)
	}
	standup := storage.Standup{
		ID:          standupID,
		Name:        name,
		Description: strings.TrimSpace(in.GetDescription()),
		Emoji:       strings.TrimSpace(in.GetEmoji()),
		Icebreaker:  strings.TrimSpace(in.GetIcebreaker()),
		CreatedAt:   s.now(),
	}
	if err := s.store.CreateStandup(ctx, standup); err != nil {
		return nil, statusFromError(err, "create standup")
	}
	return &standupv1.CreateStandupResponse{
		Standup: standupToProto(standup),
	}, nil
}

// GetStandup returns one standup with its roster and updates.
func (s *Service) GetStandup(ctx context.Context, in *standupv1.GetStandupRequest) (*standupv1.GetStandupResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get standup request is required")
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
		return nil, statusFromError(err, "get standup")
	}
	members, err := s.store.ListMembers(ctx, standupID)
	if err != nil {
		return nil, statusFromError(err, "get standup")
	}
	updates, err := s.store.ListUpdatesByStandup(ctx, standupID)
	if err != nil {
		return nil, statusFromError(err, "get standup")
	}

	resp := &standupv1.GetStandupResponse{
		Standup: standupToProto(standup),
		Members: membersToProto(members),
		Updates: make([]*standupv1.Update, 0, len(updates)),
	}
	for _, update := range updates {
		resp.Updates = append(resp.Updates, updateToProto(update))
	}
	return resp, nil
}

// ListStandups returns recent standups, optionally narrowed by an AIP-160
// filter over name, started_at, and finished_at.
func (s *Service) ListStandups(ctx context.Context, in *standupv1.ListStandupsRequest) (*standupv1.ListStandupsResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "list standups request is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "standup store is not configured")
	}

	pageSize := pagination.ClampPageSize(in.GetPageSize(), pagination.PageSizeConfig{
		Default: defaultListStandupsPageSize,
		Max:     maxListStandupsPageSize,
	})
	listFilter, err := filter.ParseListFilter(in.GetFilter())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "filter is invalid: %v", err)
	}

	standups, err := s.store.ListStandups(ctx, pageSize, listFilter)
	if err != nil {
		return nil, statusFromError(err, "list standups")
	}
	resp := &standupv1.ListStandupsResponse{
		Standups: make([]*standupv1.Standup, 0, len(standups)),
	}
	for _, standup := range standups {
		resp.Standups = append(resp.Standups, standupToProto(standup))
	}
	return resp, nil
}

// DeleteStandup removes one standup and everything attached to it. Deleting
// an absent standup succeeds.
func (s *Service) DeleteStandup(ctx context.Context, in *standupv1.DeleteStandupRequest) (*standupv1.DeleteStandupResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "delete standup request is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "standup store is not configured")
	}
	standupID := strings.TrimSpace(in.GetStandupId())
	if standupID == "" {
		return nil, status.Error(codes.InvalidArgument, "standup id is required")
	}

	if err := s.store.DeleteStandup(ctx, standupID); err != nil {
		return nil, statusFromError(err, "delete standup")
	}
	return &standupv1.DeleteStandupResponse{}, nil
}

// SetIcebreaker replaces the standup's icebreaker prompt.
func (s *Service) SetIcebreaker(ctx context.Context, in *standupv1.SetIcebreakerRequest) (*standupv1.SetIcebreakerResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "set icebreaker request is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "standup store is not configured")
	}
	standupID := strings.TrimSpace(in.GetStandupId())
	if standupID == "" {
		return nil, status.Error(codes.InvalidArgument, "standup id is required")
	}

	if err := s.store.SetIcebreaker(ctx, standupID, strings.TrimSpace(in.GetIcebreaker())); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperrors.New(apperrors.CodeStandupNotFound, "standup not found").ToGRPCStatus()
		}
		return nil, statusFromError(err, "set icebreaker")
	}
	standup, err := s.store.GetStandup(ctx, standupID)
	if err != nil {
		return nil, statusFromError(err, "set icebreaker")
	}
	return &standupv1.SetIcebreakerResponse{
		Standup: standupToProto(standup),
	}, nil
}
