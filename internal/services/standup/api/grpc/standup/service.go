// Package standup implements the standup.v1 gRPC service.
package standup

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	standupv1 "github.com/turnwise/standup/api/gen/go/standup/v1"
	apperrors "github.com/turnwise/standup/internal/platform/errors"
	"github.com/turnwise/standup/internal/services/standup/domain/turn"
	"github.com/turnwise/standup/internal/services/standup/storage"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// turnRetryAttempts bounds how often a turn transition is replayed against
// fresh state after losing a storage race.
const turnRetryAttempts = 3

// Store is the combined persistence surface the service operates on.
type Store interface {
	storage.StandupStore
	storage.RosterStore
	storage.UpdateStore
	storage.TurnStore
}

// Service exposes standup.v1 gRPC operations.
type Service struct {
	standupv1.UnimplementedStandupServiceServer
	store Store
	clock func() time.Time

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewService creates a standup service backed by store.
func NewService(store Store) *Service {
	return &Service{
		store: store,
		clock: time.Now,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *Service) now() time.Time {
	if s.clock != nil {
		return s.clock()
	}
	return time.Now()
}

// statusFromError maps domain and storage errors to gRPC status errors.
func statusFromError(err error, fallback string) error {
	var domainErr *apperrors.Error
	if errors.As(err, &domainErr) {
		return domainErr.ToGRPCStatus()
	}
	if errors.Is(err, storage.ErrNotFound) {
		return status.Errorf(codes.NotFound, "%s: record not found", fallback)
	}
	if errors.Is(err, storage.ErrConflict) {
		return status.Errorf(codes.Aborted, "%s: concurrent mutation", fallback)
	}
	return status.Errorf(codes.Internal, "%s: %v", fallback, err)
}

// retryOnConflict replays fn against fresh state while it loses storage
// races, then gives up with a turn conflict.
func retryOnConflict(fn func() error) error {
	var err error
	for attempt := 0; attempt < turnRetryAttempts; attempt++ {
		err = fn()
		if !errors.Is(err, storage.ErrConflict) {
			return err
		}
	}
	return apperrors.Wrap(apperrors.CodeTurnConflict,
		"transition lost to concurrent mutations after retries", err)
}

func timeToProto(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func phaseToProto(phase turn.Phase) standupv1.Phase {
	switch phase {
	case turn.PhaseDraft:
		return standupv1.Phase_PHASE_DRAFT
	case turn.PhaseActive:
		return standupv1.Phase_PHASE_ACTIVE
	case turn.PhaseComplete:
		return standupv1.Phase_PHASE_COMPLETE
	default:
		return standupv1.Phase_PHASE_UNSPECIFIED
	}
}

func standupToProto(standup storage.Standup) *standupv1.Standup {
	return &standupv1.Standup{
		Id:           standup.ID,
		Name:         standup.Name,
		Description:  standup.Description,
		Emoji:        standup.Emoji,
		Icebreaker:   standup.Icebreaker,
		Phase:        phaseToProto(turn.PhaseOf(standup)),
		StartedAt:    timeToProto(standup.StartedAt),
		FinishedAt:   timeToProto(standup.FinishedAt),
		ActiveUserId: standup.ActiveUserID,
		CreatedAt:    timeToProto(standup.CreatedAt),
	}
}

func memberToProto(member storage.Membership) *standupv1.Member {
	return &standupv1.Member{
		StandupId: member.StandupID,
		UserId:    member.UserID,
		Position:  int32(member.Position),
		JoinedAt:  timeToProto(member.CreatedAt),
	}
}

func membersToProto(members []storage.Membership) []*standupv1.Member {
	out := make([]*standupv1.Member, 0, len(members))
	for _, member := range members {
		out = append(out, memberToProto(member))
	}
	return out
}

func updateToProto(update storage.Update) *standupv1.Update {
	return &standupv1.Update{
		Id:         update.ID,
		StandupId:  update.StandupID,
		UserId:     update.UserID,
		Yesterday:  update.Yesterday,
		Today:      update.Today,
		Ready:      update.Ready,
		StartedAt:  timeToProto(update.StartedAt),
		FinishedAt: timeToProto(update.FinishedAt),
		CreatedAt:  timeToProto(update.CreatedAt),
	}
}
