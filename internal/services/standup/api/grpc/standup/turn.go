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

// StartStandup moves a draft standup into its running phase with
// first_user_id speaking. The first speaker's update must exist and be ready.
func (s *Service) StartStandup(ctx context.Context, in *standupv1.StartStandupRequest) (*standupv1.StartStandupResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "start standup request is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "standup store is not configured")
	}
	standupID := strings.TrimSpace(in.GetStandupId())
	firstUserID := strings.TrimSpace(in.GetFirstUserId())
	if standupID == "" {
		return nil, status.Error(codes.InvalidArgument, "standup id is required")
	}
	if firstUserID == "" {
		return nil, apperrors.New(apperrors.CodeUserIDEmpty, "first user id is required").ToGRPCStatus()
	}

	err := retryOnConflict(func() error {
		standup, err := s.getStandupDomain(ctx, standupID)
		if err != nil {
			return err
		}
		firstUpdate, exists, err := s.getUpdateIfExists(ctx, standupID, firstUserID)
		if err != nil {
			return err
		}
		if err := turn.CanStart(standup, firstUpdate, exists); err != nil {
			return err
		}
		return s.store.StartTurn(ctx, standupID, firstUserID, s.now())
	})
	if err != nil {
		return nil, statusFromError(err, "start standup")
	}
	return &standupv1.StartStandupResponse{
		Standup: s.standupProtoAfterTransition(ctx, standupID),
	}, nil
}

// AdvanceTurn hands the floor from from_user_id to to_user_id.
func (s *Service) AdvanceTurn(ctx context.Context, in *standupv1.AdvanceTurnRequest) (*standupv1.AdvanceTurnResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "advance turn request is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "standup store is not configured")
	}
	standupID := strings.TrimSpace(in.GetStandupId())
	fromUserID := strings.TrimSpace(in.GetFromUserId())
	toUserID := strings.TrimSpace(in.GetToUserId())
	if standupID == "" {
		return nil, status.Error(codes.InvalidArgument, "standup id is required")
	}
	if fromUserID == "" || toUserID == "" {
		return nil, apperrors.New(apperrors.CodeUserIDEmpty, "from and to user ids are required").ToGRPCStatus()
	}

	err := retryOnConflict(func() error {
		standup, err := s.getStandupDomain(ctx, standupID)
		if err != nil {
			return err
		}
		_, exists, err := s.getUpdateIfExists(ctx, standupID, toUserID)
		if err != nil {
			return err
		}
		if err := turn.CanAdvance(standup, fromUserID, exists); err != nil {
			return err
		}
		return s.store.AdvanceTurn(ctx, standupID, fromUserID, toUserID, s.now())
	})
	if err != nil {
		return nil, statusFromError(err, "advance turn")
	}
	return &standupv1.AdvanceTurnResponse{
		Standup: s.standupProtoAfterTransition(ctx, standupID),
	}, nil
}

// RetreatTurn hands the floor back from from_user_id to to_user_id, reopening
// the previous speaker's update.
func (s *Service) RetreatTurn(ctx context.Context, in *standupv1.RetreatTurnRequest) (*standupv1.RetreatTurnResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "retreat turn request is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "standup store is not configured")
	}
	standupID := strings.TrimSpace(in.GetStandupId())
	fromUserID := strings.TrimSpace(in.GetFromUserId())
	toUserID := strings.TrimSpace(in.GetToUserId())
	if standupID == "" {
		return nil, status.Error(codes.InvalidArgument, "standup id is required")
	}
	if fromUserID == "" || toUserID == "" {
		return nil, apperrors.New(apperrors.CodeUserIDEmpty, "from and to user ids are required").ToGRPCStatus()
	}

	err := retryOnConflict(func() error {
		standup, err := s.getStandupDomain(ctx, standupID)
		if err != nil {
			return err
		}
		_, exists, err := s.getUpdateIfExists(ctx, standupID, toUserID)
		if err != nil {
			return err
		}
		if err := turn.CanRetreat(standup, fromUserID, exists); err != nil {
			return err
		}
		return s.store.RetreatTurn(ctx, standupID, fromUserID, toUserID, s.now())
	})
	if err != nil {
		return nil, statusFromError(err, "retreat turn")
	}
	return &standupv1.RetreatTurnResponse{
		Standup: s.standupProtoAfterTransition(ctx, standupID),
	}, nil
}

// SkipTurn closes the current speaker's update and passes over skip_user_id,
// who is not required to be ready: the participant after them takes the floor
// and the skipped participant moves to the roster tail to be revisited.
func (s *Service) SkipTurn(ctx context.Context, in *standupv1.SkipTurnRequest) (*standupv1.SkipTurnResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "skip turn request is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "standup store is not configured")
	}
	standupID := strings.TrimSpace(in.GetStandupId())
	currentUserID := strings.TrimSpace(in.GetCurrentUserId())
	skipUserID := strings.TrimSpace(in.GetSkipUserId())
	if standupID == "" {
		return nil, status.Error(codes.InvalidArgument, "standup id is required")
	}
	if currentUserID == "" || skipUserID == "" {
		return nil, apperrors.New(apperrors.CodeUserIDEmpty, "current and skip user ids are required").ToGRPCStatus()
	}

	err := retryOnConflict(func() error {
		standup, err := s.getStandupDomain(ctx, standupID)
		if err != nil {
			return err
		}
		if err := turn.CanTransition(standup, currentUserID); err != nil {
			return err
		}

		members, err := s.store.ListMembers(ctx, standupID)
		if err != nil {
			return err
		}
		order := roster.UserIDs(members)
		nextUserID, ok := roster.Follower(order, skipUserID)
		if !ok {
			return apperrors.WithMetadata(apperrors.CodeTurnNoNextParticipant,
				"no participant follows the skipped one",
				map[string]string{"user_id": skipUserID})
		}
		if _, exists, err := s.getUpdateIfExists(ctx, standupID, nextUserID); err != nil {
			return err
		} else if !exists {
			return apperrors.New(apperrors.CodeUpdateNotFound, "next speaker has no update")
		}
		return s.store.SkipTurn(ctx, standupID, currentUserID, nextUserID,
			roster.Requeued(order, skipUserID), s.now())
	})
	if err != nil {
		return nil, statusFromError(err, "skip turn")
	}

	members, membersErr := s.store.ListMembers(ctx, standupID)
	if membersErr != nil {
		return nil, statusFromError(membersErr, "skip turn")
	}
	return &standupv1.SkipTurnResponse{
		Standup: s.standupProtoAfterTransition(ctx, standupID),
		Members: membersToProto(members),
	}, nil
}

// FinishStandup completes the standup, closing the identified last update.
func (s *Service) FinishStandup(ctx context.Context, in *standupv1.FinishStandupRequest) (*standupv1.FinishStandupResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "finish standup request is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "standup store is not configured")
	}
	standupID := strings.TrimSpace(in.GetStandupId())
	updateID := strings.TrimSpace(in.GetUpdateId())
	if standupID == "" {
		return nil, status.Error(codes.InvalidArgument, "standup id is required")
	}
	if updateID == "" {
		return nil, status.Error(codes.InvalidArgument, "update id is required")
	}

	err := retryOnConflict(func() error {
		standup, err := s.getStandupDomain(ctx, standupID)
		if err != nil {
			return err
		}
		lastUpdate, err := s.store.GetUpdateByID(ctx, updateID)
		exists := err == nil
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return err
		}
		if err := turn.CanFinish(standup, lastUpdate, exists); err != nil {
			return err
		}
		return s.store.FinishTurn(ctx, standupID, updateID, s.now())
	})
	if err != nil {
		return nil, statusFromError(err, "finish standup")
	}
	return &standupv1.FinishStandupResponse{
		Standup: s.standupProtoAfterTransition(ctx, standupID),
	}, nil
}

// getStandupDomain fetches the standup, converting absence into the domain
// error so transition guards and callers share one failure shape.
func (s *Service) getStandupDomain(ctx context.Context, standupID string) (storage.Standup, error) {
	standup, err := s.store.GetStandup(ctx, standupID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return storage.Standup{}, apperrors.New(apperrors.CodeStandupNotFound, "standup not found")
		}
		return storage.Standup{}, err
	}
	return standup, nil
}

func (s *Service) getUpdateIfExists(ctx context.Context, standupID, userID string) (storage.Update, bool, error) {
	update, err := s.store.GetUpdate(ctx, standupID, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return storage.Update{}, false, nil
	}
	if err != nil {
		return storage.Update{}, false, err
	}
	return update, true, nil
}

// standupProtoAfterTransition re-reads the standup for the response. The
// transition already committed, so a read failure here degrades to a nil
// payload rather than failing the call.
func (s *Service) standupProtoAfterTransition(ctx context.Context, standupID string) *standupv1.Standup {
	standup, err := s.store.GetStandup(ctx, standupID)
	if err != nil {
		return nil
	}
	return standupToProto(standup)
}
