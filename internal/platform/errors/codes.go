// Package errors provides structured domain error handling for the standup
// service with gRPC status mapping.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Standup errors
	CodeStandupNameEmpty       Code = "STANDUP_NAME_EMPTY"
	CodeStandupNotFound        Code = "STANDUP_NOT_FOUND"
	CodeStandupAlreadyStarted  Code = "STANDUP_ALREADY_STARTED"
	CodeStandupNotStarted      Code = "STANDUP_NOT_STARTED"
	CodeStandupAlreadyFinished Code = "STANDUP_ALREADY_FINISHED"

	// Roster errors
	CodeRosterLocked              Code = "ROSTER_LOCKED"
	CodeRosterMemberNotFound      Code = "ROSTER_MEMBER_NOT_FOUND"
	CodeRosterActiveMemberLeaving Code = "ROSTER_ACTIVE_MEMBER_LEAVING"

	// Update errors
	CodeUpdateNotFound Code = "UPDATE_NOT_FOUND"
	CodeUpdateNotReady Code = "UPDATE_NOT_READY"

	// Turn errors
	CodeTurnConflict          Code = "TURN_CONFLICT"
	CodeTurnWrongSpeaker      Code = "TURN_WRONG_SPEAKER"
	CodeTurnNoNextParticipant Code = "TURN_NO_NEXT_PARTICIPANT"

	// Identity errors
	CodeUserIDEmpty Code = "USER_ID_EMPTY"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeStandupNameEmpty,
		CodeUserIDEmpty:
		return codes.InvalidArgument

	// FailedPrecondition - lifecycle phase or business rule disallows the operation
	case CodeStandupAlreadyStarted,
		CodeStandupNotStarted,
		CodeStandupAlreadyFinished,
		CodeRosterLocked,
		CodeRosterActiveMemberLeaving,
		CodeUpdateNotReady,
		CodeTurnNoNextParticipant:
		return codes.FailedPrecondition

	// Aborted - lost a transactional race against a concurrent mutation
	case CodeTurnConflict,
		CodeTurnWrongSpeaker:
		return codes.Aborted

	// NotFound - referenced record does not exist
	case CodeStandupNotFound,
		CodeRosterMemberNotFound,
		CodeUpdateNotFound:
		return codes.NotFound

	default:
		return codes.Internal
	}
}
