// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: standup/v1/standup.proto

package standupv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	durationpb "google.golang.org/protobuf/types/known/durationpb"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

// Phase is the derived lifecycle state of a standup.
type Phase int32

const (
	Phase_PHASE_UNSPECIFIED Phase = 0
	Phase_PHASE_DRAFT       Phase = 1
	Phase_PHASE_ACTIVE      Phase = 2
	Phase_PHASE_COMPLETE    Phase = 3
)

// Enum value maps for Phase.
var (
	Phase_name = map[int32]string{
		0: "PHASE_UNSPECIFIED",
		1: "PHASE_DRAFT",
		2: "PHASE_ACTIVE",
		3: "PHASE_COMPLETE",
	}
	Phase_value = map[string]int32{
		"PHASE_UNSPECIFIED": 0,
		"PHASE_DRAFT":       1,
		"PHASE_ACTIVE":      2,
		"PHASE_COMPLETE":    3,
	}
)

func (x Phase) Enum() *Phase {
	p := new(Phase)
	*p = x
	return p
}

func (x Phase) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (Phase) Descriptor() protoreflect.EnumDescriptor {
	return file_standup_v1_standup_proto_enumTypes[0].Descriptor()
}

func (Phase) Type() protoreflect.EnumType {
	return &file_standup_v1_standup_proto_enumTypes[0]
}

func (x Phase) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use Phase.Descriptor instead.
func (Phase) EnumDescriptor() ([]byte, []int) {
	return file_standup_v1_standup_proto_rawDescGZIP(), []int{0}
}

type Standup struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	Id          string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name        string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Description string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	Emoji       string                 `protobuf:"bytes,4,opt,name=emoji,proto3" json:"emoji,omitempty"`
	Icebreaker  string                 `protobuf:"bytes,5,opt,name=icebreaker,proto3" json:"icebreaker,omitempty"`
	Phase       Phase                  `protobuf:"varint,6,opt,name=phase,proto3,enum=standup.v1.Phase" json:"phase,omitempty"`
	// Unset until the standup starts or finishes respectively.
	StartedAt  *timestamppb.Timestamp `protobuf:"bytes,7,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	FinishedAt *timestamppb.Timestamp `protobuf:"bytes,8,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"`
	// Non-empty only while the standup is active.
	ActiveUserId  string                 `protobuf:"bytes,9,opt,name=active_user_id,json=activeUserId,proto3" json:"active_user_id,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,10,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Standup) Reset() {
	*x = Standup{}
	mi := &file_standup_v1_standup_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Standup) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Standup) ProtoMessage() {}

func (x *Standup) ProtoReflect() protoreflect.Message {
	mi := &file_standup_v1_standup_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Standup.ProtoReflect.Descriptor instead.
func (*Standup) Descriptor() ([]byte, []int) {
	return file_standup_v1_standup_proto_rawDescGZIP(), []int{0}
}

func (x *Standup) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Standup) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Standup) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Standup) GetEmoji() string {
	if x != nil {
		return x.Emoji
	}
	return ""
}

func (x *Standup) GetIcebreaker() string {
	if x != nil {
		return x.Icebreaker
	}
	return ""
}

func (x *Standup) GetPhase() Phase {
	if x != nil {
		return x.Phase
	}
	return Phase_PHASE_UNSPECIFIED
}

func (x *Standup) GetStartedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.StartedAt
	}
	return nil
}

func (x *Standup) GetFinishedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.FinishedAt
	}
	return nil
}

func (x *Standup) GetActiveUserId() string {
	if x != nil {
		return x.ActiveUserId
	}
	return ""
}

func (x *Standup) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

type Member struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	StandupId string                 `protobuf:"bytes,1,opt,name=standup_id,json=standupId,proto3" json:"standup_id,omitempty"`
	UserId    string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	// Zero-based roster position; positions form a contiguous range.
	Position      int32                  `protobuf:"varint,3,opt,name=position,proto3" json:"position,omitempty"`
	JoinedAt      *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=joined_at,json=joinedAt,proto3" json:"joined_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Member) Reset() {
	*x = Member{}
	mi := &file_standup_v1_standup_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Member) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Member) ProtoMessage() {}

func (x *Member) ProtoReflect() protoreflect.Message {
	mi := &file_standup_v1_standup_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Member.ProtoReflect.Descriptor instead.
func (*Member) Descriptor() ([]byte, []int) {
	return file_standup_v1_standup_proto_rawDescGZIP(), []int{1}
}

func (x *Member) GetStandupId() string {
	if x != nil {
		return x.StandupId
	}
	return ""
}

func (x *Member) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *Member) GetPosition() int32 {
	if x != nil {
		return x.Position
	}
	return 0
}

func (x *Member) GetJoinedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.JoinedAt
	}
	return nil
}

type Update struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	Id        string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	StandupId string                 `protobuf:"bytes,2,opt,name=standup_id,json=standupId,proto3" json:"standup_id,omitempty"`
	UserId    string                 `protobuf:"bytes,3,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Yesterday string                 `protobuf:"bytes,4,opt,name=yesterday,proto3" json:"yesterday,omitempty"`
	Today     string                 `protobuf:"bytes,5,opt,name=today,proto3" json:"today,omitempty"`
	Ready     bool                   `protobuf:"varint,6,opt,name=ready,proto3" json:"ready,omitempty"`
	// Per-turn timing; unset until the participant speaks.
	StartedAt     *timestamppb.Timestamp `protobuf:"bytes,7,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	FinishedAt    *timestamppb.Timestamp `protobuf:"bytes,8,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Update) Reset() {
	*x = Update{}
	mi := &file_standup_v1_standup_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Update) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Update) ProtoMessage() {}

func (x *Update) ProtoReflect() protoreflect.Message {
	mi := &file_standup_v1_standup_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Update.ProtoReflect.Descriptor instead.
func (*Update) Descriptor() ([]byte, []int) {
	return file_standup_v1_standup_proto_rawDescGZIP(), []int{2}
}

func (x *Update) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Update) GetStandupId() string {
	if x != nil {
		return x.StandupId
	}
	return ""
}

func (x *Update) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *Update) GetYesterday() string {
	if x != nil {
		return x.Yesterday
	}
	return ""
}

func (x *Update) GetToday() string {
	if x != nil {
		return x.Today
	}
	return ""
}

func (x *Update) GetReady() bool {
	if x != nil {
		return x.Ready
	}
	return false
}

func (x *Update) GetStartedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.StartedAt
	}
	return nil
}

func (x *Update) GetFinishedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.FinishedAt
	}
	return nil
}

func (x *Update) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

type UserStats struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	AvgStandupDuration *durationpb.Duration   `protobuf:"bytes,1,opt,name=avg_standup_duration,json=avgStandupDuration,proto3" json:"avg_standup_duration,omitempty"`
	AvgUpdateDuration  *durationpb.Duration   `protobuf:"bytes,2,opt,name=avg_update_duration,json=avgUpdateDuration,proto3" json:"avg_update_duration,omitempty"`
	// Complete standups the user participated in.
	FinishedStandups int32 `protobuf:"varint,3,opt,name=finished_standups,json=finishedStandups,proto3" json:"finished_standups,omitempty"`
	// The user's updates with both turn timestamps set.
	FinishedUpdates int32 `protobuf:"varint,4,opt,name=finished_updates,json=finishedUpdates,proto3" json:"finished_updates,omitempty"`
	// Percentage of all complete standups the user participated in.
	ParticipationRate float64              `protobuf:"fixed64,5,opt,name=participation_rate,json=participationRate,proto3" json:"participation_rate,omitempty"`
	FastestUpdate     *durationpb.Duration `protobuf:"bytes,6,opt,name=fastest_update,json=fastestUpdate,proto3" json:"fastest_update,omitempty"`
	SlowestUpdate     *durationpb.Duration `protobuf:"bytes,7,opt,name=slowest_update,json=slowestUpdate,proto3" json:"slowest_update,omitempty"`
	// Complete standups overall, the participation rate denominator.
	TotalFinishedStandups int32 `protobuf:"varint,8,opt,name=total_finished_standups,json=totalFinishedStandups,proto3" json:"total_finished_standups,omitempty"`
	unknownFields         protoimpl.UnknownFields
	sizeCache             protoimpl.SizeCache
}

func (x *UserStats) Reset() {
	*x = UserStats{}
	mi := &file_standup_v1_standup_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UserStats) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UserStats) ProtoMessage() {}

func (x *UserStats) ProtoReflect() protoreflect.Message {
	mi := &file_standup_v1_standup_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UserStats.ProtoReflect.Descriptor instead.
func (*UserStats) Descriptor() ([]byte, []int) {
	return file_standup_v1_standup_proto_rawDescGZIP(), []int{3}
}

func (x *UserStats) GetAvgStandupDuration() *durationpb.Duration {
	if x != nil {
		return x.AvgStandupDuration
	}
	return nil
}

func (x *UserStats) GetAvgUpdateDuration() *durationpb.Duration {
	if x != nil {
		return x.AvgUpdateDuration
	}
	return nil
}

func (x *UserStats) GetFinishedStandups() int32 {
	if x != nil {
		return x.FinishedStandups
	}
	return 0
}

func (x *UserStats) GetFinishedUpdates() int32 {
	if x != nil {
		return x.FinishedUpdates
	}
	return 0
}

func (x *UserStats) GetParticipationRate() float64 {
	if x != nil {
		return x.ParticipationRate
	}
	return 0
}

func (x *UserStats) GetFastestUpdate() *durationpb.Duration {
	if x != nil {
		return x.FastestUpdate
	}
	return nil
}

func (x *UserStats) GetSlowestUpdate() *durationpb.Duration {
	if x != nil {
		return x.SlowestUpdate
	}
	return nil
}

func (x *UserStats) GetTotalFinishedStandups() int32 {
	if x != nil {
		return x.TotalFinishedStandups
	}
	return 0
}

type CreateStandupRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Description   string                 `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"`
	Emoji         string                 `protobuf:"bytes,3,opt,name=emoji,proto3" json:"emoji,omitempty"`
	Icebreaker    string                 `protobuf:"bytes,4,opt,name=icebreaker,proto3" json:"icebreaker,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateStandupRequest) Reset() {
	*x = CreateStandupRequest{}
	mi := &file_standup_v1_standup_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateStandupRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateStandupRequest) ProtoMessage() {}

func (x *CreateStandupRequest) ProtoReflect() protoreflect.Message {
	mi := &file_standup_v1_standup_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateStandupRequest.ProtoReflect.Descriptor instead.
func (*CreateStandupRequest) Descriptor() ([]byte, []int) {
	return file_standup_v1_standup_proto_rawDescGZIP(), []int{4}
}

func (x *CreateStandupRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateStandupRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *CreateStandupRequest) GetEmoji() string {
	if x != nil {
		return x.Emoji
	}
	return ""
}

func (x *CreateStandupRequest) GetIcebreaker() string {
	if x != nil {
		return x.Icebreaker
	}
	return ""
}

type CreateStandupResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Standup       *Standup               `protobuf:"bytes,1,opt,name=standup,proto3" json:"standup,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateStandupResponse) Reset() {
	*x = CreateStandupResponse{}
	mi := &file_standup_v1_standup_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateStandupResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateStandupResponse) ProtoMessage() {}

func (x *CreateStandupResponse) ProtoReflect() protoreflect.Message {
	mi := &file_standup_v1_standup_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateStandupResponse.ProtoReflect.Descriptor instead.
func (*CreateStandupResponse) Descriptor() ([]byte, []int) {
	return file_standup_v1_standup_proto_rawDescGZIP(), []int{5}
}

func (x *CreateStandupResponse) GetStandup() *Standup {
	if x != nil {
		return x.Standup
	}
	return nil
}

type GetStandupRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	StandupId     string                 `protobuf:"bytes,1,opt,name=standup_id,json=standupId,proto3" json:"standup_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetStandupRequest) Reset() {
	*x = GetStandupRequest{}
	mi := &file_standup_v1_standup_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetStandupRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetStandupRequest) ProtoMessage() {}

func (x *GetStandupRequest) ProtoReflect() protoreflect.Message {
	mi := &file_standup_v1_standup_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetStandupRequest.ProtoReflect.Descriptor instead.
func (*GetStandupRequest) Descriptor() ([]byte, []int) {
	return file_standup_v1_standup_proto_rawDescGZIP(), []int{6}
}

func (x *GetStandupRequest) GetStandupId() string {
	if x != nil {
		return x.StandupId
	}
	return ""
}

type GetStandupResponse struct {
	state   protoimpl.MessageState `protogen:"open.v1"`
	Standup *Standup               `protobuf:"bytes,1,opt,name=standup,proto3" json:"standup,omitempty"`
	// Roster in position order.
	Members       []*Member `protobuf:"bytes,2,rep,name=members,proto3" json:"members,omitempty"`
	Updates       []*Update `protobuf:"bytes,3,rep,name=updates,proto3" json:"updates,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetStandupResponse) Reset() {
	*x = GetStandupResponse{}
	mi := &file_standup_v1_standup_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetStandupResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetStandupResponse) ProtoMessage() {}

func (x *GetStandupResponse) ProtoReflect() protoreflect.Message {
	mi := &file_standup_v1_standup_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetStandupResponse.ProtoReflect.Descriptor instead.
func (*GetStandupResponse) Descriptor() ([]byte, []int) {
	return file_standup_v1_standup_proto_rawDescGZIP(), []int{7}
}

func (x *GetStandupResponse) GetStandup() *Standup {
	if x != nil {
		return x.Standup
	}
	return nil
}

func (x *GetStandupResponse) GetMembers() []*Member {
	if x != nil {
		return x.Members
	}
	return nil
}

func (x *GetStandupResponse) GetUpdates() []*Update {
	if x != nil {
		return x.Updates
	}
	return nil
}

type ListStandupsRequest struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	PageSize int32                  `protobuf:"varint,1,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	// AIP-160 filter over name, started_at, finished_at.
	Filter        string `protobuf:"bytes,2,opt,name=filter,proto3" json:"filter,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListStandupsRequest) Reset() {
	*x = ListStandupsRequest{}
	mi := &file_standup_v1_standup_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListStandupsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListStandupsRequest) ProtoMessage() {}

func (x *ListStandupsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_standup_v1_standup_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListStandupsRequest.ProtoReflect.Descriptor instead.
func (*ListStandupsRequest) Descriptor() ([]byte, []int) {
	return file_standup_v1_standup_proto_rawDescGZIP(), []int{8}
}

func (x *ListStandupsRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *ListStandupsRequest) GetFilter() string {
	if x != nil {
		return x.Filter
	}
	return ""
}

type ListStandupsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Standups      []*Standup             `protobuf:"bytes,1,rep,name=standups,proto3" json:"standups,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListStandupsResponse) Reset() {
	*x = ListStandupsResponse{}
	mi := &file_standup_v1_standup_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListStandupsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListStandupsResponse) ProtoMessage() {}

func (x *ListStandupsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_standup_v1_standup_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListStandupsResponse.ProtoReflect.Descriptor instead.
func (*ListStandupsResponse) Descriptor() ([]byte, []int) {
	return file_standup_v1_standup_proto_rawDescGZIP(), []int{9}
}

func (x *ListStandupsResponse) GetStandups() []*Standup {
	if x != nil {
		return x.Standups
	}
	return nil
}

type DeleteStandupRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	StandupId     string                 `protobuf:"bytes,1,opt,name=standup_id,json=standupId,proto3" json:"standup_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteStandupRequest) Reset() {
	*x = DeleteStandupRequest{}
	mi := &file_standup_v1_standup_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteStandupRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteStandupRequest) ProtoMessage() {}

func (x *DeleteStandupRequest) ProtoReflect() protoreflect.Message {
	mi := &file_standup_v1_standup_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteStandupRequest.ProtoReflect.Descriptor instead.
func (*DeleteStandupRequest) Descriptor() ([]byte, []int) {
	return file_standup_v1_standup_proto_rawDescGZIP(), []int{10}
}

func (x *DeleteStandupRequest) GetStandupId() string {
	if x != nil {
		return x.StandupId
	}
	return ""
}

type DeleteStandupResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteStandupResponse) Reset() {
	*x = DeleteStandupResponse{}
	mi := &file_standup_v1_standup_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteStandupResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteStandupResponse) ProtoMessage() {}

func (x *DeleteStandupResponse) ProtoReflect() protoreflect.Message {
	mi := &file_standup_v1_standup_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteStandupResponse.ProtoReflect.Descriptor instead.
func (*DeleteStandupResponse) Descriptor() ([]byte, []int) {
	return file_standup_v1_standup_proto_rawDescGZIP(), []int{11}
}

type SetIcebreakerRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	StandupId     string                 `protobuf:"bytes,1,opt,name=standup_id,json=standupId,proto3" json:"standup_id,omitempty"`
	Icebreaker    string                 `protobuf:"bytes,2,opt,name=icebreaker,proto3" json:"icebreaker,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetIcebreakerRequest) Reset() {
	*x = SetIcebreakerRequest{}
	mi := &file_standup_v1_standup_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetIcebreakerRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetIcebreakerRequest) ProtoMessage() {}

func (x *SetIcebreakerRequest) ProtoReflect() protoreflect.Message {
	mi := &file_standup_v1_standup_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetIcebreakerRequest.ProtoReflect.Descriptor instead.
func (*SetIcebreakerRequest) Descriptor() ([]byte, []int) {
	return file_standup_v1_standup_proto_rawDescGZIP(), []int{12}
}

func (x *SetIcebreakerRequest) GetStandupId() string {
	if x != nil {
		return x.StandupId
	}
	return ""
}

func (x *SetIcebreakerRequest) GetIcebreaker() string {
	if x != nil {
		return x.Icebreaker
	}
	return ""
}

type SetIcebreakerResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Standup       *Standup               `protobuf:"bytes,1,opt,name=standup,proto3" json:"standup,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetIcebreakerResponse) Reset() {
	*x = SetIcebreakerResponse{}
	mi := &file_standup_v1_standup_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetIcebreakerResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetIcebreakerResponse) ProtoMessage() {}

func (x *SetIcebreakerResponse) ProtoReflect() protoreflect.Message {
	mi := &file_standup_v1_standup_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetIcebreakerResponse.ProtoReflect.Descriptor instead.
func (*SetIcebreakerResponse) Descriptor() ([]byte, []int) {
	return file_standup_v1_standup_proto_rawDescGZIP(), []int{13}
}

func (x *SetIcebreakerResponse) GetStandup() *Standup {
	if x != nil {
		return x.Standup
	}
	return nil
}

type JoinStandupRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	StandupId     string                 `protobuf:"bytes,1,opt,name=standup_id,json=standupId,proto3" json:"standup_id,omitempty"`
	UserId        string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *JoinStandupRequest) Reset() {
	*x = JoinStandupRequest{}
	mi := &file_standup_v1_standup_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *JoinStandupRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*JoinStandupRequest) ProtoMessage() {}

func (x *JoinStandupRequest) ProtoReflect() protoreflect.Message {
	mi := &file_standup_v1_standup_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use JoinStandupRequest.ProtoReflect.Descriptor instead.
func (*JoinStandupRequest) Descriptor() ([]byte, []int) {
	return file_standup_v1_standup_proto_rawDescGZIP(), []int{14}
}

func (x *JoinStandupRequest) GetStandupId() string {
	if x != nil {
		return x.StandupId
	}
	return ""
}

func (x *JoinStandupRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type JoinStandupResponse struct {
	state  protoimpl.MessageState `protogen:"open.v1"`
	Member *Member                `protobuf:"bytes,1,opt,name=member,proto3" json:"member,omitempty"`
	// False when the membership already existed.
	Created       bool `protobuf:"varint,2,opt,name=created,proto3" json:"created,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *JoinStandupResponse) Reset() {
	*x = JoinStandupResponse{}
	mi := &file_standup_v1_standup_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *JoinStandupResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*JoinStandupResponse) ProtoMessage() {}

func (x *JoinStandupResponse) ProtoReflect() protoreflect.Message {
	mi := &file_standup_v1_standup_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use JoinStandupResponse.ProtoReflect.Descriptor instead.
func (*JoinStandupResponse) Descriptor() ([]byte, []int) {
	return file_standup_v1_standup_proto_rawDescGZIP(), []int{15}
}

func (x *JoinStandupResponse) GetMember() *Member {
	if x != nil {
		return x.Member
	}
	return nil
}

func (x *JoinStandupResponse) GetCreated() bool {
	if x != nil {
		return x.Created
	}
	return false
}

type LeaveStandupRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	StandupId     string                 `protobuf:"bytes,1,opt,name=standup_id,json=standupId,proto3" json:"standup_id,omitempty"`
	UserId        string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LeaveStandupRequest) Reset() {
	*x = LeaveStandupRequest{}
	mi := &file_standup_v1_standup_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LeaveStandupRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LeaveStandupRequest) ProtoMessage() {}

func (x *LeaveStandupRequest) ProtoReflect() protoreflect.Message {
	mi := &file_standup_v1_standup_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LeaveStandupRequest.ProtoReflect.Descriptor instead.
func (*LeaveStandupRequest) Descriptor() ([]byte, []int) {
	return file_standup_v1_standup_proto_rawDescGZIP(), []int{16}
}

func (x *LeaveStandupRequest) GetStandupId() string {
	if x != nil {
		return x.StandupId
	}
	return ""
}

func (x *LeaveStandupRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type LeaveStandupResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LeaveStandupResponse) Reset() {
	*x = LeaveStandupResponse{}
	mi := &file_standup_v1_standup_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LeaveStandupResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LeaveStandupResponse) ProtoMessage() {}

func (x *LeaveStandupResponse) ProtoReflect() protoreflect.Message {
	mi := &file_standup_v1_standup_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LeaveStandupResponse.ProtoReflect.Descriptor instead.
func (*LeaveStandupResponse) Descriptor() ([]byte, []int) {
	return file_standup_v1_standup_proto_rawDescGZIP(), []int{17}
}

type ShuffleRosterRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	StandupId     string                 `protobuf:"bytes,1,opt,name=standup_id,json=standupId,proto3" json:"standup_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ShuffleRosterRequest) Reset() {
	*x = ShuffleRosterRequest{}
	mi := &file_standup_v1_standup_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ShuffleRosterRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ShuffleRosterRequest) ProtoMessage() {}

func (x *ShuffleRosterRequest) ProtoReflect() protoreflect.Message {
	mi := &file_standup_v1_standup_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ShuffleRosterRequest.ProtoReflect.Descriptor instead.
func (*ShuffleRosterRequest) Descriptor() ([]byte, []int) {
	return file_standup_v1_standup_proto_rawDescGZIP(), []int{18}
}

func (x *ShuffleRosterRequest) GetStandupId() string {
	if x != nil {
		return x.StandupId
	}
	return ""
}

type ShuffleRosterResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Members       []*Member              `protobuf:"bytes,1,rep,name=members,proto3" json:"members,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ShuffleRosterResponse) Reset() {
	*x = ShuffleRosterResponse{}
	mi := &file_standup_v1_standup_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ShuffleRosterResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ShuffleRosterResponse) ProtoMessage() {}

func (x *ShuffleRosterResponse) ProtoReflect() protoreflect.Message {
	mi := &file_standup_v1_standup_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ShuffleRosterResponse.ProtoReflect.Descriptor instead.
func (*ShuffleRosterResponse) Descriptor() ([]byte, []int) {
	return file_standup_v1_standup_proto_rawDescGZIP(), []int{19}
}

func (x *ShuffleRosterResponse) GetMembers() []*Member {
	if x != nil {
		return x.Members
	}
	return nil
}

type ReorderRosterRequest struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	StandupId string                 `protobuf:"bytes,1,opt,name=standup_id,json=standupId,proto3" json:"standup_id,omitempty"`
	UserId    string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	// Target position, clamped to the roster range.
	ToIndex       int32 `protobuf:"varint,3,opt,name=to_index,json=toIndex,proto3" json:"to_index,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReorderRosterRequest) Reset() {
	*x = ReorderRosterRequest{}
	mi := &file_standup_v1_standup_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReorderRosterRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReorderRosterRequest) ProtoMessage() {}

func (x *ReorderRosterRequest) ProtoReflect() protoreflect.Message {
	mi := &file_standup_v1_standup_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReorderRosterRequest.ProtoReflect.Descriptor instead.
func (*ReorderRosterRequest) Descriptor() ([]byte, []int) {
	return file_standup_v1_standup_proto_rawDescGZIP(), []int{20}
}

func (x *ReorderRosterRequest) GetStandupId() string {
	if x != nil {
		return x.StandupId
	}
	return ""
}

func (x *ReorderRosterRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ReorderRosterRequest) GetToIndex() int32 {
	if x != nil {
		return x.ToIndex
	}
	return 0
}

type ReorderRosterResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Members       []*Member              `protobuf:"bytes,1,rep,name=members,proto3" json:"members,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReorderRosterResponse) Reset() {
	*x = ReorderRosterResponse{}
	mi := &file_standup_v1_standup_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReorderRosterResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReorderRosterResponse) ProtoMessage() {}

func (x *ReorderRosterResponse) ProtoReflect() protoreflect.Message {
	mi := &file_standup_v1_standup_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReorderRosterResponse.ProtoReflect.Descriptor instead.
func (*ReorderRosterResponse) Descriptor() ([]byte, []int) {
	return file_standup_v1_standup_proto_rawDescGZIP(), []int{21}
}

func (x *ReorderRosterResponse) GetMembers() []*Member {
	if x != nil {
		return x.Members
	}
	return nil
}

type UpsertUpdateRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	StandupId     string                 `protobuf:"bytes,1,opt,name=standup_id,json=standupId,proto3" json:"standup_id,omitempty"`
	UserId        string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Yesterday     string                 `protobuf:"bytes,3,opt,name=yesterday,proto3" json:"yesterday,omitempty"`
	Today         string                 `protobuf:"bytes,4,opt,name=today,proto3" json:"today,omitempty"`
	Ready         bool                   `protobuf:"varint,5,opt,name=ready,proto3" json:"ready,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpsertUpdateRequest) Reset() {
	*x = UpsertUpdateRequest{}
	mi := &file_standup_v1_standup_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpsertUpdateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpsertUpdateRequest) ProtoMessage() {}

func (x *UpsertUpdateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_standup_v1_standup_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpsertUpdateRequest.ProtoReflect.Descriptor instead.
func (*UpsertUpdateRequest) Descriptor() ([]byte, []int) {
	return file_standup_v1_standup_proto_rawDescGZIP(), []int{22}
}

func (x *UpsertUpdateRequest) GetStandupId() string {
	if x != nil {
		return x.StandupId
	}
	return ""
}

func (x *UpsertUpdateRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *UpsertUpdateRequest) GetYesterday() string {
	if x != nil {
		return x.Yesterday
	}
	return ""
}

func (x *UpsertUpdateRequest) GetToday() string {
	if x != nil {
		return x.Today
	}
	return ""
}

func (x *UpsertUpdateRequest) GetReady() bool {
	if x != nil {
		return x.Ready
	}
	return false
}

type UpsertUpdateResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Update        *Update                `protobuf:"bytes,1,opt,name=update,proto3" json:"update,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpsertUpdateResponse) Reset() {
	*x = UpsertUpdateResponse{}
	mi := &file_standup_v1_standup_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpsertUpdateResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpsertUpdateResponse) ProtoMessage() {}

func (x *UpsertUpdateResponse) ProtoReflect() protoreflect.Message {
	mi := &file_standup_v1_standup_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpsertUpdateResponse.ProtoReflect.Descriptor instead.
func (*UpsertUpdateResponse) Descriptor() ([]byte, []int) {
	return file_standup_v1_standup_proto_rawDescGZIP(), []int{23}
}

func (x *UpsertUpdateResponse) GetUpdate() *Update {
	if x != nil {
		return x.Update
	}
	return nil
}

type SetUpdateReadyRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UpdateId      string                 `protobuf:"bytes,1,opt,name=update_id,json=updateId,proto3" json:"update_id,omitempty"`
	Ready         bool                   `protobuf:"varint,2,opt,name=ready,proto3" json:"ready,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetUpdateReadyRequest) Reset() {
	*x = SetUpdateReadyRequest{}
	mi := &file_standup_v1_standup_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetUpdateReadyRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetUpdateReadyRequest) ProtoMessage() {}

func (x *SetUpdateReadyRequest) ProtoReflect() protoreflect.Message {
	mi := &file_standup_v1_standup_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetUpdateReadyRequest.ProtoReflect.Descriptor instead.
func (*SetUpdateReadyRequest) Descriptor() ([]byte, []int) {
	return file_standup_v1_standup_proto_rawDescGZIP(), []int{24}
}

func (x *SetUpdateReadyRequest) GetUpdateId() string {
	if x != nil {
		return x.UpdateId
	}
	return ""
}

func (x *SetUpdateReadyRequest) GetReady() bool {
	if x != nil {
		return x.Ready
	}
	return false
}

type SetUpdateReadyResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Update        *Update                `protobuf:"bytes,1,opt,name=update,proto3" json:"update,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetUpdateReadyResponse) Reset() {
	*x = SetUpdateReadyResponse{}
	mi := &file_standup_v1_standup_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetUpdateReadyResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetUpdateReadyResponse) ProtoMessage() {}

func (x *SetUpdateReadyResponse) ProtoReflect() protoreflect.Message {
	mi := &file_standup_v1_standup_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetUpdateReadyResponse.ProtoReflect.Descriptor instead.
func (*SetUpdateReadyResponse) Descriptor() ([]byte, []int) {
	return file_standup_v1_standup_proto_rawDescGZIP(), []int{25}
}

func (x *SetUpdateReadyResponse) GetUpdate() *Update {
	if x != nil {
		return x.Update
	}
	return nil
}

type GetUpdateRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	StandupId     string                 `protobuf:"bytes,1,opt,name=standup_id,json=standupId,proto3" json:"standup_id,omitempty"`
	UserId        string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetUpdateRequest) Reset() {
	*x = GetUpdateRequest{}
	mi := &file_standup_v1_standup_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetUpdateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetUpdateRequest) ProtoMessage() {}

func (x *GetUpdateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_standup_v1_standup_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetUpdateRequest.ProtoReflect.Descriptor instead.
func (*GetUpdateRequest) Descriptor() ([]byte, []int) {
	return file_standup_v1_standup_proto_rawDescGZIP(), []int{26}
}

func (x *GetUpdateRequest) GetStandupId() string {
	if x != nil {
		return x.StandupId
	}
	return ""
}

func (x *GetUpdateRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type GetUpdateResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Update        *Update                `protobuf:"bytes,1,opt,name=update,proto3" json:"update,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetUpdateResponse) Reset() {
	*x = GetUpdateResponse{}
	mi := &file_standup_v1_standup_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetUpdateResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetUpdateResponse) ProtoMessage() {}

func (x *GetUpdateResponse) ProtoReflect() protoreflect.Message {
	mi := &file_standup_v1_standup_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetUpdateResponse.ProtoReflect.Descriptor instead.
func (*GetUpdateResponse) Descriptor() ([]byte, []int) {
	return file_standup_v1_standup_proto_rawDescGZIP(), []int{27}
}

func (x *GetUpdateResponse) GetUpdate() *Update {
	if x != nil {
		return x.Update
	}
	return nil
}

type PreviousCommitmentRequest struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	UserId           string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	ExcludeStandupId string                 `protobuf:"bytes,2,opt,name=exclude_standup_id,json=excludeStandupId,proto3" json:"exclude_standup_id,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *PreviousCommitmentRequest) Reset() {
	*x = PreviousCommitmentRequest{}
	mi := &file_standup_v1_standup_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PreviousCommitmentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PreviousCommitmentRequest) ProtoMessage() {}

func (x *PreviousCommitmentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_standup_v1_standup_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PreviousCommitmentRequest.ProtoReflect.Descriptor instead.
func (*PreviousCommitmentRequest) Descriptor() ([]byte, []int) {
	return file_standup_v1_standup_proto_rawDescGZIP(), []int{28}
}

func (x *PreviousCommitmentRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *PreviousCommitmentRequest) GetExcludeStandupId() string {
	if x != nil {
		return x.ExcludeStandupId
	}
	return ""
}

type PreviousCommitmentResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// The today text of the user's most recent update in a complete standup.
	Today         string `protobuf:"bytes,1,opt,name=today,proto3" json:"today,omitempty"`
	Found         bool   `protobuf:"varint,2,opt,name=found,proto3" json:"found,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PreviousCommitmentResponse) Reset() {
	*x = PreviousCommitmentResponse{}
	mi := &file_standup_v1_standup_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PreviousCommitmentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PreviousCommitmentResponse) ProtoMessage() {}

func (x *PreviousCommitmentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_standup_v1_standup_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PreviousCommitmentResponse.ProtoReflect.Descriptor instead.
func (*PreviousCommitmentResponse) Descriptor() ([]byte, []int) {
	return file_standup_v1_standup_proto_rawDescGZIP(), []int{29}
}

func (x *PreviousCommitmentResponse) GetToday() string {
	if x != nil {
		return x.Today
	}
	return ""
}

func (x *PreviousCommitmentResponse) GetFound() bool {
	if x != nil {
		return x.Found
	}
	return false
}

type StartStandupRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	StandupId     string                 `protobuf:"bytes,1,opt,name=standup_id,json=standupId,proto3" json:"standup_id,omitempty"`
	FirstUserId   string                 `protobuf:"bytes,2,opt,name=first_user_id,json=firstUserId,proto3" json:"first_user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StartStandupRequest) Reset() {
	*x = StartStandupRequest{}
	mi := &file_standup_v1_standup_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StartStandupRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StartStandupRequest) ProtoMessage() {}

func (x *StartStandupRequest) ProtoReflect() protoreflect.Message {
	mi := &file_standup_v1_standup_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StartStandupRequest.ProtoReflect.Descriptor instead.
func (*StartStandupRequest) Descriptor() ([]byte, []int) {
	return file_standup_v1_standup_proto_rawDescGZIP(), []int{30}
}

func (x *StartStandupRequest) GetStandupId() string {
	if x != nil {
		return x.StandupId
	}
	return ""
}

func (x *StartStandupRequest) GetFirstUserId() string {
	if x != nil {
		return x.FirstUserId
	}
	return ""
}

type StartStandupResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Standup       *Standup               `protobuf:"bytes,1,opt,name=standup,proto3" json:"standup,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StartStandupResponse) Reset() {
	*x = StartStandupResponse{}
	mi := &file_standup_v1_standup_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StartStandupResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StartStandupResponse) ProtoMessage() {}

func (x *StartStandupResponse) ProtoReflect() protoreflect.Message {
	mi := &file_standup_v1_standup_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StartStandupResponse.ProtoReflect.Descriptor instead.
func (*StartStandupResponse) Descriptor() ([]byte, []int) {
	return file_standup_v1_standup_proto_rawDescGZIP(), []int{31}
}

func (x *StartStandupResponse) GetStandup() *Standup {
	if x != nil {
		return x.Standup
	}
	return nil
}

type AdvanceTurnRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	StandupId     string                 `protobuf:"bytes,1,opt,name=standup_id,json=standupId,proto3" json:"standup_id,omitempty"`
	FromUserId    string                 `protobuf:"bytes,2,opt,name=from_user_id,json=fromUserId,proto3" json:"from_user_id,omitempty"`
	ToUserId      string                 `protobuf:"bytes,3,opt,name=to_user_id,json=toUserId,proto3" json:"to_user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AdvanceTurnRequest) Reset() {
	*x = AdvanceTurnRequest{}
	mi := &file_standup_v1_standup_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AdvanceTurnRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AdvanceTurnRequest) ProtoMessage() {}

func (x *AdvanceTurnRequest) ProtoReflect() protoreflect.Message {
	mi := &file_standup_v1_standup_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AdvanceTurnRequest.ProtoReflect.Descriptor instead.
func (*AdvanceTurnRequest) Descriptor() ([]byte, []int) {
	return file_standup_v1_standup_proto_rawDescGZIP(), []int{32}
}

func (x *AdvanceTurnRequest) GetStandupId() string {
	if x != nil {
		return x.StandupId
	}
	return ""
}

func (x *AdvanceTurnRequest) GetFromUserId() string {
	if x != nil {
		return x.FromUserId
	}
	return ""
}

func (x *AdvanceTurnRequest) GetToUserId() string {
	if x != nil {
		return x.ToUserId
	}
	return ""
}

type AdvanceTurnResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Standup       *Standup               `protobuf:"bytes,1,opt,name=standup,proto3" json:"standup,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AdvanceTurnResponse) Reset() {
	*x = AdvanceTurnResponse{}
	mi := &file_standup_v1_standup_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AdvanceTurnResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AdvanceTurnResponse) ProtoMessage() {}

func (x *AdvanceTurnResponse) ProtoReflect() protoreflect.Message {
	mi := &file_standup_v1_standup_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AdvanceTurnResponse.ProtoReflect.Descriptor instead.
func (*AdvanceTurnResponse) Descriptor() ([]byte, []int) {
	return file_standup_v1_standup_proto_rawDescGZIP(), []int{33}
}

func (x *AdvanceTurnResponse) GetStandup() *Standup {
	if x != nil {
		return x.Standup
	}
	return nil
}

type RetreatTurnRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	StandupId     string                 `protobuf:"bytes,1,opt,name=standup_id,json=standupId,proto3" json:"standup_id,omitempty"`
	FromUserId    string                 `protobuf:"bytes,2,opt,name=from_user_id,json=fromUserId,proto3" json:"from_user_id,omitempty"`
	ToUserId      string                 `protobuf:"bytes,3,opt,name=to_user_id,json=toUserId,proto3" json:"to_user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RetreatTurnRequest) Reset() {
	*x = RetreatTurnRequest{}
	mi := &file_standup_v1_standup_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RetreatTurnRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RetreatTurnRequest) ProtoMessage() {}

func (x *RetreatTurnRequest) ProtoReflect() protoreflect.Message {
	mi := &file_standup_v1_standup_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RetreatTurnRequest.ProtoReflect.Descriptor instead.
func (*RetreatTurnRequest) Descriptor() ([]byte, []int) {
	return file_standup_v1_standup_proto_rawDescGZIP(), []int{34}
}

func (x *RetreatTurnRequest) GetStandupId() string {
	if x != nil {
		return x.StandupId
	}
	return ""
}

func (x *RetreatTurnRequest) GetFromUserId() string {
	if x != nil {
		return x.FromUserId
	}
	return ""
}

func (x *RetreatTurnRequest) GetToUserId() string {
	if x != nil {
		return x.ToUserId
	}
	return ""
}

type RetreatTurnResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Standup       *Standup               `protobuf:"bytes,1,opt,name=standup,proto3" json:"standup,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RetreatTurnResponse) Reset() {
	*x = RetreatTurnResponse{}
	mi := &file_standup_v1_standup_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RetreatTurnResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RetreatTurnResponse) ProtoMessage() {}

func (x *RetreatTurnResponse) ProtoReflect() protoreflect.Message {
	mi := &file_standup_v1_standup_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RetreatTurnResponse.ProtoReflect.Descriptor instead.
func (*RetreatTurnResponse) Descriptor() ([]byte, []int) {
	return file_standup_v1_standup_proto_rawDescGZIP(), []int{35}
}

func (x *RetreatTurnResponse) GetStandup() *Standup {
	if x != nil {
		return x.Standup
	}
	return nil
}

type SkipTurnRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	StandupId     string                 `protobuf:"bytes,1,opt,name=standup_id,json=standupId,proto3" json:"standup_id,omitempty"`
	CurrentUserId string                 `protobuf:"bytes,2,opt,name=current_user_id,json=currentUserId,proto3" json:"current_user_id,omitempty"`
	SkipUserId    string                 `protobuf:"bytes,3,opt,name=skip_user_id,json=skipUserId,proto3" json:"skip_user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SkipTurnRequest) Reset() {
	*x = SkipTurnRequest{}
	mi := &file_standup_v1_standup_proto_msgTypes[36]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SkipTurnRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SkipTurnRequest) ProtoMessage() {}

func (x *SkipTurnRequest) ProtoReflect() protoreflect.Message {
	mi := &file_standup_v1_standup_proto_msgTypes[36]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SkipTurnRequest.ProtoReflect.Descriptor instead.
func (*SkipTurnRequest) Descriptor() ([]byte, []int) {
	return file_standup_v1_standup_proto_rawDescGZIP(), []int{36}
}

func (x *SkipTurnRequest) GetStandupId() string {
	if x != nil {
		return x.StandupId
	}
	return ""
}

func (x *SkipTurnRequest) GetCurrentUserId() string {
	if x != nil {
		return x.CurrentUserId
	}
	return ""
}

func (x *SkipTurnRequest) GetSkipUserId() string {
	if x != nil {
		return x.SkipUserId
	}
	return ""
}

type SkipTurnResponse struct {
	state   protoimpl.MessageState `protogen:"open.v1"`
	Standup *Standup               `protobuf:"bytes,1,opt,name=standup,proto3" json:"standup,omitempty"`
	// Roster after the skipped participant moves to the tail.
	Members       []*Member `protobuf:"bytes,2,rep,name=members,proto3" json:"members,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SkipTurnResponse) Reset() {
	*x = SkipTurnResponse{}
	mi := &file_standup_v1_standup_proto_msgTypes[37]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SkipTurnResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SkipTurnResponse) ProtoMessage() {}

func (x *SkipTurnResponse) ProtoReflect() protoreflect.Message {
	mi := &file_standup_v1_standup_proto_msgTypes[37]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SkipTurnResponse.ProtoReflect.Descriptor instead.
func (*SkipTurnResponse) Descriptor() ([]byte, []int) {
	return file_standup_v1_standup_proto_rawDescGZIP(), []int{37}
}

func (x *SkipTurnResponse) GetStandup() *Standup {
	if x != nil {
		return x.Standup
	}
	return nil
}

func (x *SkipTurnResponse) GetMembers() []*Member {
	if x != nil {
		return x.Members
	}
	return nil
}

type FinishStandupRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	StandupId     string                 `protobuf:"bytes,1,opt,name=standup_id,json=standupId,proto3" json:"standup_id,omitempty"`
	UpdateId      string                 `protobuf:"bytes,2,opt,name=update_id,json=updateId,proto3" json:"update_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FinishStandupRequest) Reset() {
	*x = FinishStandupRequest{}
	mi := &file_standup_v1_standup_proto_msgTypes[38]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FinishStandupRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FinishStandupRequest) ProtoMessage() {}

func (x *FinishStandupRequest) ProtoReflect() protoreflect.Message {
	mi := &file_standup_v1_standup_proto_msgTypes[38]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FinishStandupRequest.ProtoReflect.Descriptor instead.
func (*FinishStandupRequest) Descriptor() ([]byte, []int) {
	return file_standup_v1_standup_proto_rawDescGZIP(), []int{38}
}

func (x *FinishStandupRequest) GetStandupId() string {
	if x != nil {
		return x.StandupId
	}
	return ""
}

func (x *FinishStandupRequest) GetUpdateId() string {
	if x != nil {
		return x.UpdateId
	}
	return ""
}

type FinishStandupResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Standup       *Standup               `protobuf:"bytes,1,opt,name=standup,proto3" json:"standup,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FinishStandupResponse) Reset() {
	*x = FinishStandupResponse{}
	mi := &file_standup_v1_standup_proto_msgTypes[39]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FinishStandupResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FinishStandupResponse) ProtoMessage() {}

func (x *FinishStandupResponse) ProtoReflect() protoreflect.Message {
	mi := &file_standup_v1_standup_proto_msgTypes[39]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FinishStandupResponse.ProtoReflect.Descriptor instead.
func (*FinishStandupResponse) Descriptor() ([]byte, []int) {
	return file_standup_v1_standup_proto_rawDescGZIP(), []int{39}
}

func (x *FinishStandupResponse) GetStandup() *Standup {
	if x != nil {
		return x.Standup
	}
	return nil
}

type GetUserStatsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetUserStatsRequest) Reset() {
	*x = GetUserStatsRequest{}
	mi := &file_standup_v1_standup_proto_msgTypes[40]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetUserStatsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetUserStatsRequest) ProtoMessage() {}

func (x *GetUserStatsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_standup_v1_standup_proto_msgTypes[40]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetUserStatsRequest.ProtoReflect.Descriptor instead.
func (*GetUserStatsRequest) Descriptor() ([]byte, []int) {
	return file_standup_v1_standup_proto_rawDescGZIP(), []int{40}
}

func (x *GetUserStatsRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type GetUserStatsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Stats         *UserStats             `protobuf:"bytes,1,opt,name=stats,proto3" json:"stats,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetUserStatsResponse) Reset() {
	*x = GetUserStatsResponse{}
	mi := &file_standup_v1_standup_proto_msgTypes[41]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetUserStatsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetUserStatsResponse) ProtoMessage() {}

func (x *GetUserStatsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_standup_v1_standup_proto_msgTypes[41]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetUserStatsResponse.ProtoReflect.Descriptor instead.
func (*GetUserStatsResponse) Descriptor() ([]byte, []int) {
	return file_standup_v1_standup_proto_rawDescGZIP(), []int{41}
}

func (x *GetUserStatsResponse) GetStats() *UserStats {
	if x != nil {
		return x.Stats
	}
	return nil
}

var File_standup_v1_standup_proto protoreflect.FileDescriptor

const file_standup_v1_standup_proto_rawDesc = "" +
	"\n" +
	"\x18standup/v1/standup.proto\x12\n" +
	"standup.v1\x1a\x1egoogle/protobuf/duration.proto\x1a\x1fgoogle/protobuf/timestamp.proto\"\x87\x03\n" +
	"\aStandup\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\x12\x14\n" +
	"\x05emoji\x18\x04 \x01(\tR\x05emoji\x12\x1e\n" +
	"\n" +
	"icebreaker\x18\x05 \x01(\tR\n" +
	"icebreaker\x12'\n" +
	"\x05phase\x18\x06 \x01(\x0e2\x11.standup.v1.PhaseR\x05phase\x129\n" +
	"\n" +
	"started_at\x18\a \x01(\v2\x1a.google.protobuf.TimestampR\tstartedAt\x12;\n" +
	"\vfinished_at\x18\b \x01(\v2\x1a.google.protobuf.TimestampR\n" +
	"finishedAt\x12$\n" +
	"\x0eactive_user_id\x18\t \x01(\tR\factiveUserId\x129\n" +
	"\n" +
	"created_at\x18\n" +
	" \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\"\x95\x01\n" +
	"\x06Member\x12\x1d\n" +
	"\n" +
	"standup_id\x18\x01 \x01(\tR\tstandupId\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x12\x1a\n" +
	"\bposition\x18\x03 \x01(\x05R\bposition\x127\n" +
	"\tjoined_at\x18\x04 \x01(\v2\x1a.google.protobuf.TimestampR\bjoinedAt\"\xcd\x02\n" +
	"\x06Update\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"standup_id\x18\x02 \x01(\tR\tstandupId\x12\x17\n" +
	"\auser_id\x18\x03 \x01(\tR\x06userId\x12\x1c\n" +
	"\tyesterday\x18\x04 \x01(\tR\tyesterday\x12\x14\n" +
	"\x05today\x18\x05 \x01(\tR\x05today\x12\x14\n" +
	"\x05ready\x18\x06 \x01(\bR\x05ready\x129\n" +
	"\n" +
	"started_at\x18\a \x01(\v2\x1a.google.protobuf.TimestampR\tstartedAt\x12;\n" +
	"\vfinished_at\x18\b \x01(\v2\x1a.google.protobuf.TimestampR\n" +
	"finishedAt\x129\n" +
	"\n" +
	"created_at\x18\t \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\"\xe6\x03\n" +
	"\tUserStats\x12K\n" +
	"\x14avg_standup_duration\x18\x01 \x01(\v2\x19.google.protobuf.DurationR\x12avgStandupDuration\x12I\n" +
	"\x13avg_update_duration\x18\x02 \x01(\v2\x19.google.protobuf.DurationR\x11avgUpdateDuration\x12+\n" +
	"\x11finished_standups\x18\x03 \x01(\x05R\x10finishedStandups\x12)\n" +
	"\x10finished_updates\x18\x04 \x01(\x05R\x0ffinishedUpdates\x12-\n" +
	"\x12participation_rate\x18\x05 \x01(\x01R\x11participationRate\x12@\n" +
	"\x0efastest_update\x18\x06 \x01(\v2\x19.google.protobuf.DurationR\rfastestUpdate\x12@\n" +
	"\x0eslowest_update\x18\a \x01(\v2\x19.google.protobuf.DurationR\rslowestUpdate\x126\n" +
	"\x17total_finished_standups\x18\b \x01(\x05R\x15totalFinishedStandups\"\x82\x01\n" +
	"\x14CreateStandupRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x02 \x01(\tR\vdescription\x12\x14\n" +
	"\x05emoji\x18\x03 \x01(\tR\x05emoji\x12\x1e\n" +
	"\n" +
	"icebreaker\x18\x04 \x01(\tR\n" +
	"icebreaker\"F\n" +
	"\x15CreateStandupResponse\x12-\n" +
	"\astandup\x18\x01 \x01(\v2\x13.standup.v1.StandupR\astandup\"2\n" +
	"\x11GetStandupRequest\x12\x1d\n" +
	"\n" +
	"standup_id\x18\x01 \x01(\tR\tstandupId\"\x9f\x01\n" +
	"\x12GetStandupResponse\x12-\n" +
	"\astandup\x18\x01 \x01(\v2\x13.standup.v1.StandupR\astandup\x12,\n" +
	"\amembers\x18\x02 \x03(\v2\x12.standup.v1.MemberR\amembers\x12,\n" +
	"\aupdates\x18\x03 \x03(\v2\x12.standup.v1.UpdateR\aupdates\"J\n" +
	"\x13ListStandupsRequest\x12\x1b\n" +
	"\tpage_size\x18\x01 \x01(\x05R\bpageSize\x12\x16\n" +
	"\x06filter\x18\x02 \x01(\tR\x06filter\"G\n" +
	"\x14ListStandupsResponse\x12/\n" +
	"\bstandups\x18\x01 \x03(\v2\x13.standup.v1.StandupR\bstandups\"5\n" +
	"\x14DeleteStandupRequest\x12\x1d\n" +
	"\n" +
	"standup_id\x18\x01 \x01(\tR\tstandupId\"\x17\n" +
	"\x15DeleteStandupResponse\"U\n" +
	"\x14SetIcebreakerRequest\x12\x1d\n" +
	"\n" +
	"standup_id\x18\x01 \x01(\tR\tstandupId\x12\x1e\n" +
	"\n" +
	"icebreaker\x18\x02 \x01(\tR\n" +
	"icebreaker\"F\n" +
	"\x15SetIcebreakerResponse\x12-\n" +
	"\astandup\x18\x01 \x01(\v2\x13.standup.v1.StandupR\astandup\"L\n" +
	"\x12JoinStandupRequest\x12\x1d\n" +
	"\n" +
	"standup_id\x18\x01 \x01(\tR\tstandupId\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\"[\n" +
	"\x13JoinStandupResponse\x12*\n" +
	"\x06member\x18\x01 \x01(\v2\x12.standup.v1.MemberR\x06member\x12\x18\n" +
	"\acreated\x18\x02 \x01(\bR\acreated\"M\n" +
	"\x13LeaveStandupRequest\x12\x1d\n" +
	"\n" +
	"standup_id\x18\x01 \x01(\tR\tstandupId\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\"\x16\n" +
	"\x14LeaveStandupResponse\"5\n" +
	"\x14ShuffleRosterRequest\x12\x1d\n" +
	"\n" +
	"standup_id\x18\x01 \x01(\tR\tstandupId\"E\n" +
	"\x15ShuffleRosterResponse\x12,\n" +
	"\amembers\x18\x01 \x03(\v2\x12.standup.v1.MemberR\amembers\"i\n" +
	"\x14ReorderRosterRequest\x12\x1d\n" +
	"\n" +
	"standup_id\x18\x01 \x01(\tR\tstandupId\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x12\x19\n" +
	"\bto_index\x18\x03 \x01(\x05R\atoIndex\"E\n" +
	"\x15ReorderRosterResponse\x12,\n" +
	"\amembers\x18\x01 \x03(\v2\x12.standup.v1.MemberR\amembers\"\x97\x01\n" +
	"\x13UpsertUpdateRequest\x12\x1d\n" +
	"\n" +
	"standup_id\x18\x01 \x01(\tR\tstandupId\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x12\x1c\n" +
	"\tyesterday\x18\x03 \x01(\tR\tyesterday\x12\x14\n" +
	"\x05today\x18\x04 \x01(\tR\x05today\x12\x14\n" +
	"\x05ready\x18\x05 \x01(\bR\x05ready\"B\n" +
	"\x14UpsertUpdateResponse\x12*\n" +
	"\x06update\x18\x01 \x01(\v2\x12.standup.v1.UpdateR\x06update\"J\n" +
	"\x15SetUpdateReadyRequest\x12\x1b\n" +
	"\tupdate_id\x18\x01 \x01(\tR\bupdateId\x12\x14\n" +
	"\x05ready\x18\x02 \x01(\bR\x05ready\"D\n" +
	"\x16SetUpdateReadyResponse\x12*\n" +
	"\x06update\x18\x01 \x01(\v2\x12.standup.v1.UpdateR\x06update\"J\n" +
	"\x10GetUpdateRequest\x12\x1d\n" +
	"\n" +
	"standup_id\x18\x01 \x01(\tR\tstandupId\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\"?\n" +
	"\x11GetUpdateResponse\x12*\n" +
	"\x06update\x18\x01 \x01(\v2\x12.standup.v1.UpdateR\x06update\"b\n" +
	"\x19PreviousCommitmentRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12,\n" +
	"\x12exclude_standup_id\x18\x02 \x01(\tR\x10excludeStandupId\"H\n" +
	"\x1aPreviousCommitmentResponse\x12\x14\n" +
	"\x05today\x18\x01 \x01(\tR\x05today\x12\x14\n" +
	"\x05found\x18\x02 \x01(\bR\x05found\"X\n" +
	"\x13StartStandupRequest\x12\x1d\n" +
	"\n" +
	"standup_id\x18\x01 \x01(\tR\tstandupId\x12\"\n" +
	"\rfirst_user_id\x18\x02 \x01(\tR\vfirstUserId\"E\n" +
	"\x14StartStandupResponse\x12-\n" +
	"\astandup\x18\x01 \x01(\v2\x13.standup.v1.StandupR\astandup\"s\n" +
	"\x12AdvanceTurnRequest\x12\x1d\n" +
	"\n" +
	"standup_id\x18\x01 \x01(\tR\tstandupId\x12 \n" +
	"\ffrom_user_id\x18\x02 \x01(\tR\n" +
	"fromUserId\x12\x1c\n" +
	"\n" +
	"to_user_id\x18\x03 \x01(\tR\btoUserId\"D\n" +
	"\x13AdvanceTurnResponse\x12-\n" +
	"\astandup\x18\x01 \x01(\v2\x13.standup.v1.StandupR\astandup\"s\n" +
	"\x12RetreatTurnRequest\x12\x1d\n" +
	"\n" +
	"standup_id\x18\x01 \x01(\tR\tstandupId\x12 \n" +
	"\ffrom_user_id\x18\x02 \x01(\tR\n" +
	"fromUserId\x12\x1c\n" +
	"\n" +
	"to_user_id\x18\x03 \x01(\tR\btoUserId\"D\n" +
	"\x13RetreatTurnResponse\x12-\n" +
	"\astandup\x18\x01 \x01(\v2\x13.standup.v1.StandupR\astandup\"z\n" +
	"\x0fSkipTurnRequest\x12\x1d\n" +
	"\n" +
	"standup_id\x18\x01 \x01(\tR\tstandupId\x12&\n" +
	"\x0fcurrent_user_id\x18\x02 \x01(\tR\rcurrentUserId\x12 \n" +
	"\fskip_user_id\x18\x03 \x01(\tR\n" +
	"skipUserId\"o\n" +
	"\x10SkipTurnResponse\x12-\n" +
	"\astandup\x18\x01 \x01(\v2\x13.standup.v1.StandupR\astandup\x12,\n" +
	"\amembers\x18\x02 \x03(\v2\x12.standup.v1.MemberR\amembers\"R\n" +
	"\x14FinishStandupRequest\x12\x1d\n" +
	"\n" +
	"standup_id\x18\x01 \x01(\tR\tstandupId\x12\x1b\n" +
	"\tupdate_id\x18\x02 \x01(\tR\bupdateId\"F\n" +
	"\x15FinishStandupResponse\x12-\n" +
	"\astandup\x18\x01 \x01(\v2\x13.standup.v1.StandupR\astandup\".\n" +
	"\x13GetUserStatsRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\"C\n" +
	"\x14GetUserStatsResponse\x12+\n" +
	"\x05stats\x18\x01 \x01(\v2\x15.standup.v1.UserStatsR\x05stats*U\n" +
	"\x05Phase\x12\x15\n" +
	"\x11PHASE_UNSPECIFIED\x10\x00\x12\x0f\n" +
	"\vPHASE_DRAFT\x10\x01\x12\x10\n" +
	"\fPHASE_ACTIVE\x10\x02\x12\x12\n" +
	"\x0ePHASE_COMPLETE\x10\x032\xbf\f\n" +
	"\x0eStandupService\x12T\n" +
	"\rCreateStandup\x12 .standup.v1.CreateStandupRequest\x1a!.standup.v1.CreateStandupResponse\x12K\n" +
	"\n" +
	"GetStandup\x12\x1d.standup.v1.GetStandupRequest\x1a\x1e.standup.v1.GetStandupResponse\x12Q\n" +
	"\fListStandups\x12\x1f.standup.v1.ListStandupsRequest\x1a .standup.v1.ListStandupsResponse\x12T\n" +
	"\rDeleteStandup\x12 .standup.v1.DeleteStandupRequest\x1a!.standup.v1.DeleteStandupResponse\x12T\n" +
	"\rSetIcebreaker\x12 .standup.v1.SetIcebreakerRequest\x1a!.standup.v1.SetIcebreakerResponse\x12N\n" +
	"\vJoinStandup\x12\x1e.standup.v1.JoinStandupRequest\x1a\x1f.standup.v1.JoinStandupResponse\x12Q\n" +
	"\fLeaveStandup\x12\x1f.standup.v1.LeaveStandupRequest\x1a .standup.v1.LeaveStandupResponse\x12T\n" +
	"\rShuffleRoster\x12 .standup.v1.ShuffleRosterRequest\x1a!.standup.v1.ShuffleRosterResponse\x12T\n" +
	"\rReorderRoster\x12 .standup.v1.ReorderRosterRequest\x1a!.standup.v1.ReorderRosterResponse\x12Q\n" +
	"\fUpsertUpdate\x12\x1f.standup.v1.UpsertUpdateRequest\x1a .standup.v1.UpsertUpdateResponse\x12W\n" +
	"\x0eSetUpdateReady\x12!.standup.v1.SetUpdateReadyRequest\x1a\".standup.v1.SetUpdateReadyResponse\x12H\n" +
	"\tGetUpdate\x12\x1c.standup.v1.GetUpdateRequest\x1a\x1d.standup.v1.GetUpdateResponse\x12c\n" +
	"\x12PreviousCommitment\x12%.standup.v1.PreviousCommitmentRequest\x1a&.standup.v1.PreviousCommitmentResponse\x12Q\n" +
	"\fStartStandup\x12\x1f.standup.v1.StartStandupRequest\x1a .standup.v1.StartStandupResponse\x12N\n" +
	"\vAdvanceTurn\x12\x1e.standup.v1.AdvanceTurnRequest\x1a\x1f.standup.v1.AdvanceTurnResponse\x12N\n" +
	"\vRetreatTurn\x12\x1e.standup.v1.RetreatTurnRequest\x1a\x1f.standup.v1.RetreatTurnResponse\x12E\n" +
	"\bSkipTurn\x12\x1b.standup.v1.SkipTurnRequest\x1a\x1c.standup.v1.SkipTurnResponse\x12T\n" +
	"\rFinishStandup\x12 .standup.v1.FinishStandupRequest\x1a!.standup.v1.FinishStandupResponse\x12Q\n" +
	"\fGetUserStats\x12\x1f.standup.v1.GetUserStatsRequest\x1a .standup.v1.GetUserStatsResponseB=Z;github.com/turnwise/standup/api/gen/go/standup/v1;standupv1b\x06proto3"

var (
	file_standup_v1_standup_proto_rawDescOnce sync.Once
	file_standup_v1_standup_proto_rawDescData []byte
)

func file_standup_v1_standup_proto_rawDescGZIP() []byte {
	file_standup_v1_standup_proto_rawDescOnce.Do(func() {
		file_standup_v1_standup_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_standup_v1_standup_proto_rawDesc), len(file_standup_v1_standup_proto_rawDesc)))
	})
	return file_standup_v1_standup_proto_rawDescData
}

var file_standup_v1_standup_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_standup_v1_standup_proto_msgTypes = make([]protoimpl.MessageInfo, 42)
var file_standup_v1_standup_proto_goTypes = []any{
	(Phase)(0),                         // 0: standup.v1.Phase
	(*Standup)(nil),                    // 1: standup.v1.Standup
	(*Member)(nil),                     // 2: standup.v1.Member
	(*Update)(nil),                     // 3: standup.v1.Update
	(*UserStats)(nil),                  // 4: standup.v1.UserStats
	(*CreateStandupRequest)(nil),       // 5: standup.v1.CreateStandupRequest
	(*CreateStandupResponse)(nil),      // 6: standup.v1.CreateStandupResponse
	(*GetStandupRequest)(nil),          // 7: standup.v1.GetStandupRequest
	(*GetStandupResponse)(nil),         // 8: standup.v1.GetStandupResponse
	(*ListStandupsRequest)(nil),        // 9: standup.v1.ListStandupsRequest
	(*ListStandupsResponse)(nil),       // 10: standup.v1.ListStandupsResponse
	(*DeleteStandupRequest)(nil),       // 11: standup.v1.DeleteStandupRequest
	(*DeleteStandupResponse)(nil),      // 12: standup.v1.DeleteStandupResponse
	(*SetIcebreakerRequest)(nil),       // 13: standup.v1.SetIcebreakerRequest
	(*SetIcebreakerResponse)(nil),      // 14: standup.v1.SetIcebreakerResponse
	(*JoinStandupRequest)(nil),         // 15: standup.v1.JoinStandupRequest
	(*JoinStandupResponse)(nil),        // 16: standup.v1.JoinStandupResponse
	(*LeaveStandupRequest)(nil),        // 17: standup.v1.LeaveStandupRequest
	(*LeaveStandupResponse)(nil),       // 18: standup.v1.LeaveStandupResponse
	(*ShuffleRosterRequest)(nil),       // 19: standup.v1.ShuffleRosterRequest
	(*ShuffleRosterResponse)(nil),      // 20: standup.v1.ShuffleRosterResponse
	(*ReorderRosterRequest)(nil),       // 21: standup.v1.ReorderRosterRequest
	(*ReorderRosterResponse)(nil),      // 22: standup.v1.ReorderRosterResponse
	(*UpsertUpdateRequest)(nil),        // 23: standup.v1.UpsertUpdateRequest
	(*UpsertUpdateResponse)(nil),       // 24: standup.v1.UpsertUpdateResponse
	(*SetUpdateReadyRequest)(nil),      // 25: standup.v1.SetUpdateReadyRequest
	(*SetUpdateReadyResponse)(nil),     // 26: standup.v1.SetUpdateReadyResponse
	(*GetUpdateRequest)(nil),           // 27: standup.v1.GetUpdateRequest
	(*GetUpdateResponse)(nil),          // 28: standup.v1.GetUpdateResponse
	(*PreviousCommitmentRequest)(nil),  // 29: standup.v1.PreviousCommitmentRequest
	(*PreviousCommitmentResponse)(nil), // 30: standup.v1.PreviousCommitmentResponse
	(*StartStandupRequest)(nil),        // 31: standup.v1.StartStandupRequest
	(*StartStandupResponse)(nil),       // 32: standup.v1.StartStandupResponse
	(*AdvanceTurnRequest)(nil),         // 33: standup.v1.AdvanceTurnRequest
	(*AdvanceTurnResponse)(nil),        // 34: standup.v1.AdvanceTurnResponse
	(*RetreatTurnRequest)(nil),         // 35: standup.v1.RetreatTurnRequest
	(*RetreatTurnResponse)(nil),        // 36: standup.v1.RetreatTurnResponse
	(*SkipTurnRequest)(nil),            // 37: standup.v1.SkipTurnRequest
	(*SkipTurnResponse)(nil),           // 38: standup.v1.SkipTurnResponse
	(*FinishStandupRequest)(nil),       // 39: standup.v1.FinishStandupRequest
	(*FinishStandupResponse)(nil),      // 40: standup.v1.FinishStandupResponse
	(*GetUserStatsRequest)(nil),        // 41: standup.v1.GetUserStatsRequest
	(*GetUserStatsResponse)(nil),       // 42: standup.v1.GetUserStatsResponse
	(*timestamppb.Timestamp)(nil),      // 43: google.protobuf.Timestamp
	(*durationpb.Duration)(nil),        // 44: google.protobuf.Duration
}
var file_standup_v1_standup_proto_depIdxs = []int32{
	0,  // 0: standup.v1.Standup.phase:type_name -> standup.v1.Phase
	43, // 1: standup.v1.Standup.started_at:type_name -> google.protobuf.Timestamp
	43, // 2: standup.v1.Standup.finished_at:type_name -> google.protobuf.Timestamp
	43, // 3: standup.v1.Standup.created_at:type_name -> google.protobuf.Timestamp
	43, // 4: standup.v1.Member.joined_at:type_name -> google.protobuf.Timestamp
	43, // 5: standup.v1.Update.started_at:type_name -> google.protobuf.Timestamp
	43, // 6: standup.v1.Update.finished_at:type_name -> google.protobuf.Timestamp
	43, // 7: standup.v1.Update.created_at:type_name -> google.protobuf.Timestamp
	44, // 8: standup.v1.UserStats.avg_standup_duration:type_name -> google.protobuf.Duration
	44, // 9: standup.v1.UserStats.avg_update_duration:type_name -> google.protobuf.Duration
	44, // 10: standup.v1.UserStats.fastest_update:type_name -> google.protobuf.Duration
	44, // 11: standup.v1.UserStats.slowest_update:type_name -> google.protobuf.Duration
	1,  // 12: standup.v1.CreateStandupResponse.standup:type_name -> standup.v1.Standup
	1,  // 13: standup.v1.GetStandupResponse.standup:type_name -> standup.v1.Standup
	2,  // 14: standup.v1.GetStandupResponse.members:type_name -> standup.v1.Member
	3,  // 15: standup.v1.GetStandupResponse.updates:type_name -> standup.v1.Update
	1,  // 16: standup.v1.ListStandupsResponse.standups:type_name -> standup.v1.Standup
	1,  // 17: standup.v1.SetIcebreakerResponse.standup:type_name -> standup.v1.Standup
	2,  // 18: standup.v1.JoinStandupResponse.member:type_name -> standup.v1.Member
	2,  // 19: standup.v1.ShuffleRosterResponse.members:type_name -> standup.v1.Member
	2,  // 20: standup.v1.ReorderRosterResponse.members:type_name -> standup.v1.Member
	3,  // 21: standup.v1.UpsertUpdateResponse.update:type_name -> standup.v1.Update
	3,  // 22: standup.v1.SetUpdateReadyResponse.update:type_name -> standup.v1.Update
	3,  // 23: standup.v1.GetUpdateResponse.update:type_name -> standup.v1.Update
	1,  // 24: standup.v1.StartStandupResponse.standup:type_name -> standup.v1.Standup
	1,  // 25: standup.v1.AdvanceTurnResponse.standup:type_name -> standup.v1.Standup
	1,  // 26: standup.v1.RetreatTurnResponse.standup:type_name -> standup.v1.Standup
	1,  // 27: standup.v1.SkipTurnResponse.standup:type_name -> standup.v1.Standup
	2,  // 28: standup.v1.SkipTurnResponse.members:type_name -> standup.v1.Member
	1,  // 29: standup.v1.FinishStandupResponse.standup:type_name -> standup.v1.Standup
	4,  // 30: standup.v1.GetUserStatsResponse.stats:type_name -> standup.v1.UserStats
	5,  // 31: standup.v1.StandupService.CreateStandup:input_type -> standup.v1.CreateStandupRequest
	7,  // 32: standup.v1.StandupService.GetStandup:input_type -> standup.v1.GetStandupRequest
	9,  // 33: standup.v1.StandupService.ListStandups:input_type -> standup.v1.ListStandupsRequest
	11, // 34: standup.v1.StandupService.DeleteStandup:input_type -> standup.v1.DeleteStandupRequest
	13, // 35: standup.v1.StandupService.SetIcebreaker:input_type -> standup.v1.SetIcebreakerRequest
	15, // 36: standup.v1.StandupService.JoinStandup:input_type -> standup.v1.JoinStandupRequest
	17, // 37: standup.v1.StandupService.LeaveStandup:input_type -> standup.v1.LeaveStandupRequest
	19, // 38: standup.v1.StandupService.ShuffleRoster:input_type -> standup.v1.ShuffleRosterRequest
	21, // 39: standup.v1.StandupService.ReorderRoster:input_type -> standup.v1.ReorderRosterRequest
	23, // 40: standup.v1.StandupService.UpsertUpdate:input_type -> standup.v1.UpsertUpdateRequest
	25, // 41: standup.v1.StandupService.SetUpdateReady:input_type -> standup.v1.SetUpdateReadyRequest
	27, // 42: standup.v1.StandupService.GetUpdate:input_type -> standup.v1.GetUpdateRequest
	29, // 43: standup.v1.StandupService.PreviousCommitment:input_type -> standup.v1.PreviousCommitmentRequest
	31, // 44: standup.v1.StandupService.StartStandup:input_type -> standup.v1.StartStandupRequest
	33, // 45: standup.v1.StandupService.AdvanceTurn:input_type -> standup.v1.AdvanceTurnRequest
	35, // 46: standup.v1.StandupService.RetreatTurn:input_type -> standup.v1.RetreatTurnRequest
	37, // 47: standup.v1.StandupService.SkipTurn:input_type -> standup.v1.SkipTurnRequest
	39, // 48: standup.v1.StandupService.FinishStandup:input_type -> standup.v1.FinishStandupRequest
	41, // 49: standup.v1.StandupService.GetUserStats:input_type -> standup.v1.GetUserStatsRequest
	6,  // 50: standup.v1.StandupService.CreateStandup:output_type -> standup.v1.CreateStandupResponse
	8,  // 51: standup.v1.StandupService.GetStandup:output_type -> standup.v1.GetStandupResponse
	10, // 52: standup.v1.StandupService.ListStandups:output_type -> standup.v1.ListStandupsResponse
	12, // 53: standup.v1.StandupService.DeleteStandup:output_type -> standup.v1.DeleteStandupResponse
	14, // 54: standup.v1.StandupService.SetIcebreaker:output_type -> standup.v1.SetIcebreakerResponse
	16, // 55: standup.v1.StandupService.JoinStandup:output_type -> standup.v1.JoinStandupResponse
	18, // 56: standup.v1.StandupService.LeaveStandup:output_type -> standup.v1.LeaveStandupResponse
	20, // 57: standup.v1.StandupService.ShuffleRoster:output_type -> standup.v1.ShuffleRosterResponse
	22, // 58: standup.v1.StandupService.ReorderRoster:output_type -> standup.v1.ReorderRosterResponse
	24, // 59: standup.v1.StandupService.UpsertUpdate:output_type -> standup.v1.UpsertUpdateResponse
	26, // 60: standup.v1.StandupService.SetUpdateReady:output_type -> standup.v1.SetUpdateReadyResponse
	28, // 61: standup.v1.StandupService.GetUpdate:output_type -> standup.v1.GetUpdateResponse
	30, // 62: standup.v1.StandupService.PreviousCommitment:output_type -> standup.v1.PreviousCommitmentResponse
	32, // 63: standup.v1.StandupService.StartStandup:output_type -> standup.v1.StartStandupResponse
	34, // 64: standup.v1.StandupService.AdvanceTurn:output_type -> standup.v1.AdvanceTurnResponse
	36, // 65: standup.v1.StandupService.RetreatTurn:output_type -> standup.v1.RetreatTurnResponse
	38, // 66: standup.v1.StandupService.SkipTurn:output_type -> standup.v1.SkipTurnResponse
	40, // 67: standup.v1.StandupService.FinishStandup:output_type -> standup.v1.FinishStandupResponse
	42, // 68: standup.v1.StandupService.GetUserStats:output_type -> standup.v1.GetUserStatsResponse
	50, // [50:69] is the sub-list for method output_type
	31, // [31:50] is the sub-list for method input_type
	31, // [31:31] is the sub-list for extension type_name
	31, // [31:31] is the sub-list for extension extendee
	0,  // [0:31] is the sub-list for field type_name
}

func init() { file_standup_v1_standup_proto_init() }
func file_standup_v1_standup_proto_init() {
	if File_standup_v1_standup_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_standup_v1_standup_proto_rawDesc), len(file_standup_v1_standup_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   42,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_standup_v1_standup_proto_goTypes,
		DependencyIndexes: file_standup_v1_standup_proto_depIdxs,
		EnumInfos:         file_standup_v1_standup_proto_enumTypes,
		MessageInfos:      file_standup_v1_standup_proto_msgTypes,
	}.Build()
	File_standup_v1_standup_proto = out.File
	file_standup_v1_standup_proto_goTypes = nil
	file_standup_v1_standup_proto_depIdxs = nil
}
