// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: messaging.proto

package messaging

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
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

type UserRef struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Username      string                 `protobuf:"bytes,2,opt,name=username,proto3" json:"username,omitempty"`
	DisplayName   string                 `protobuf:"bytes,3,opt,name=display_name,json=displayName,proto3" json:"display_name,omitempty"`
	Presence      string                 `protobuf:"bytes,4,opt,name=presence,proto3" json:"presence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UserRef) Reset() {
	*x = UserRef{}
	mi := &file_messaging_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UserRef) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UserRef) ProtoMessage() {}

func (x *UserRef) ProtoReflect() protoreflect.Message {
	mi := &file_messaging_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UserRef.ProtoReflect.Descriptor instead.
func (*UserRef) Descriptor() ([]byte, []int) {
	return file_messaging_proto_rawDescGZIP(), []int{0}
}

func (x *UserRef) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *UserRef) GetUsername() string {
	if x != nil {
		return x.Username
	}
	return ""
}

func (x *UserRef) GetDisplayName() string {
	if x != nil {
		return x.DisplayName
	}
	return ""
}

func (x *UserRef) GetPresence() string {
	if x != nil {
		return x.Presence
	}
	return ""
}

type SendFriendRequest struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	AddresseeUsername string                 `protobuf:"bytes,1,opt,name=addressee_username,json=addresseeUsername,proto3" json:"addressee_username,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *SendFriendRequest) Reset() {
	*x = SendFriendRequest{}
	mi := &file_messaging_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SendFriendRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SendFriendRequest) ProtoMessage() {}

func (x *SendFriendRequest) ProtoReflect() protoreflect.Message {
	mi := &file_messaging_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SendFriendRequest.ProtoReflect.Descriptor instead.
func (*SendFriendRequest) Descriptor() ([]byte, []int) {
	return file_messaging_proto_rawDescGZIP(), []int{1}
}

func (x *SendFriendRequest) GetAddresseeUsername() string {
	if x != nil {
		return x.AddresseeUsername
	}
	return ""
}

type EdgeActionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EdgeId        string                 `protobuf:"bytes,1,opt,name=edge_id,json=edgeId,proto3" json:"edge_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EdgeActionRequest) Reset() {
	*x = EdgeActionRequest{}
	mi := &file_messaging_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EdgeActionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EdgeActionRequest) ProtoMessage() {}

func (x *EdgeActionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_messaging_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EdgeActionRequest.ProtoReflect.Descriptor instead.
func (*EdgeActionRequest) Descriptor() ([]byte, []int) {
	return file_messaging_proto_rawDescGZIP(), []int{2}
}

func (x *EdgeActionRequest) GetEdgeId() string {
	if x != nil {
		return x.EdgeId
	}
	return ""
}

type FriendshipEdgeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EdgeId        string                 `protobuf:"bytes,1,opt,name=edge_id,json=edgeId,proto3" json:"edge_id,omitempty"`
	Requester     *UserRef               `protobuf:"bytes,2,opt,name=requester,proto3" json:"requester,omitempty"`
	Addressee     *UserRef               `protobuf:"bytes,3,opt,name=addressee,proto3" json:"addressee,omitempty"`
	Status        string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	LastActorId   string                 `protobuf:"bytes,5,opt,name=last_actor_id,json=lastActorId,proto3" json:"last_actor_id,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     *timestamppb.Timestamp `protobuf:"bytes,7,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FriendshipEdgeResponse) Reset() {
	*x = FriendshipEdgeResponse{}
	mi := &file_messaging_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FriendshipEdgeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FriendshipEdgeResponse) ProtoMessage() {}

func (x *FriendshipEdgeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_messaging_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FriendshipEdgeResponse.ProtoReflect.Descriptor instead.
func (*FriendshipEdgeResponse) Descriptor() ([]byte, []int) {
	return file_messaging_proto_rawDescGZIP(), []int{3}
}

func (x *FriendshipEdgeResponse) GetEdgeId() string {
	if x != nil {
		return x.EdgeId
	}
	return ""
}

func (x *FriendshipEdgeResponse) GetRequester() *UserRef {
	if x != nil {
		return x.Requester
	}
	return nil
}

func (x *FriendshipEdgeResponse) GetAddressee() *UserRef {
	if x != nil {
		return x.Addressee
	}
	return nil
}

func (x *FriendshipEdgeResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *FriendshipEdgeResponse) GetLastActorId() string {
	if x != nil {
		return x.LastActorId
	}
	return ""
}

func (x *FriendshipEdgeResponse) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *FriendshipEdgeResponse) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

type RemoveResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Success       bool                   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RemoveResponse) Reset() {
	*x = RemoveResponse{}
	mi := &file_messaging_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RemoveResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RemoveResponse) ProtoMessage() {}

func (x *RemoveResponse) ProtoReflect() protoreflect.Message {
	mi := &file_messaging_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RemoveResponse.ProtoReflect.Descriptor instead.
func (*RemoveResponse) Descriptor() ([]byte, []int) {
	return file_messaging_proto_rawDescGZIP(), []int{4}
}

func (x *RemoveResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

type ListEdgesRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Empty means every status.
	Status        string `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListEdgesRequest) Reset() {
	*x = ListEdgesRequest{}
	mi := &file_messaging_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListEdgesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListEdgesRequest) ProtoMessage() {}

func (x *ListEdgesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_messaging_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListEdgesRequest.ProtoReflect.Descriptor instead.
func (*ListEdgesRequest) Descriptor() ([]byte, []int) {
	return file_messaging_proto_rawDescGZIP(), []int{5}
}

func (x *ListEdgesRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type ListEdgesResponse struct {
	state         protoimpl.MessageState    `protogen:"open.v1"`
	Edges         []*FriendshipEdgeResponse `protobuf:"bytes,1,rep,name=edges,proto3" json:"edges,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListEdgesResponse) Reset() {
	*x = ListEdgesResponse{}
	mi := &file_messaging_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListEdgesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListEdgesResponse) ProtoMessage() {}

func (x *ListEdgesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_messaging_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListEdgesResponse.ProtoReflect.Descriptor instead.
func (*ListEdgesResponse) Descriptor() ([]byte, []int) {
	return file_messaging_proto_rawDescGZIP(), []int{6}
}

func (x *ListEdgesResponse) GetEdges() []*FriendshipEdgeResponse {
	if x != nil {
		return x.Edges
	}
	return nil
}

type FindOrCreateRequest struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	ParticipantUsername string                 `protobuf:"bytes,1,opt,name=participant_username,json=participantUsername,proto3" json:"participant_username,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *FindOrCreateRequest) Reset() {
	*x = FindOrCreateRequest{}
	mi := &file_messaging_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FindOrCreateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FindOrCreateRequest) ProtoMessage() {}

func (x *FindOrCreateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_messaging_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FindOrCreateRequest.ProtoReflect.Descriptor instead.
func (*FindOrCreateRequest) Descriptor() ([]byte, []int) {
	return file_messaging_proto_rawDescGZIP(), []int{7}
}

func (x *FindOrCreateRequest) GetParticipantUsername() string {
	if x != nil {
		return x.ParticipantUsername
	}
	return ""
}

type GetConversationRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	ConversationId string                 `protobuf:"bytes,1,opt,name=conversation_id,json=conversationId,proto3" json:"conversation_id,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *GetConversationRequest) Reset() {
	*x = GetConversationRequest{}
	mi := &file_messaging_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetConversationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetConversationRequest) ProtoMessage() {}

func (x *GetConversationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_messaging_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetConversationRequest.ProtoReflect.Descriptor instead.
func (*GetConversationRequest) Descriptor() ([]byte, []int) {
	return file_messaging_proto_rawDescGZIP(), []int{8}
}

func (x *GetConversationRequest) GetConversationId() string {
	if x != nil {
		return x.ConversationId
	}
	return ""
}

type ConversationResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	ConversationId string                 `protobuf:"bytes,1,opt,name=conversation_id,json=conversationId,proto3" json:"conversation_id,omitempty"`
	Participants   []*UserRef             `protobuf:"bytes,2,rep,name=participants,proto3" json:"participants,omitempty"`
	LastMessage    *MessageResponse       `protobuf:"bytes,3,opt,name=last_message,json=lastMessage,proto3" json:"last_message,omitempty"`
	Unread         uint64                 `protobuf:"varint,4,opt,name=unread,proto3" json:"unread,omitempty"`
	CreatedAt      *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ConversationResponse) Reset() {
	*x = ConversationResponse{}
	mi := &file_messaging_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConversationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConversationResponse) ProtoMessage() {}

func (x *ConversationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_messaging_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConversationResponse.ProtoReflect.Descriptor instead.
func (*ConversationResponse) Descriptor() ([]byte, []int) {
	return file_messaging_proto_rawDescGZIP(), []int{9}
}

func (x *ConversationResponse) GetConversationId() string {
	if x != nil {
		return x.ConversationId
	}
	return ""
}

func (x *ConversationResponse) GetParticipants() []*UserRef {
	if x != nil {
		return x.Participants
	}
	return nil
}

func (x *ConversationResponse) GetLastMessage() *MessageResponse {
	if x != nil {
		return x.LastMessage
	}
	return nil
}

func (x *ConversationResponse) GetUnread() uint64 {
	if x != nil {
		return x.Unread
	}
	return 0
}

func (x *ConversationResponse) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

type ListConversationsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListConversationsRequest) Reset() {
	*x = ListConversationsRequest{}
	mi := &file_messaging_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListConversationsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListConversationsRequest) ProtoMessage() {}

func (x *ListConversationsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_messaging_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListConversationsRequest.ProtoReflect.Descriptor instead.
func (*ListConversationsRequest) Descriptor() ([]byte, []int) {
	return file_messaging_proto_rawDescGZIP(), []int{10}
}

type ListConversationsResponse struct {
	state         protoimpl.MessageState  `protogen:"open.v1"`
	Conversations []*ConversationResponse `protobuf:"bytes,1,rep,name=conversations,proto3" json:"conversations,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListConversationsResponse) Reset() {
	*x = ListConversationsResponse{}
	mi := &file_messaging_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListConversationsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListConversationsResponse) ProtoMessage() {}

func (x *ListConversationsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_messaging_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListConversationsResponse.ProtoReflect.Descriptor instead.
func (*ListConversationsResponse) Descriptor() ([]byte, []int) {
	return file_messaging_proto_rawDescGZIP(), []int{11}
}

func (x *ListConversationsResponse) GetConversations() []*ConversationResponse {
	if x != nil {
		return x.Conversations
	}
	return nil
}

type DeleteConversationRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	ConversationId string                 `protobuf:"bytes,1,opt,name=conversation_id,json=conversationId,proto3" json:"conversation_id,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *DeleteConversationRequest) Reset() {
	*x = DeleteConversationRequest{}
	mi := &file_messaging_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteConversationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteConversationRequest) ProtoMessage() {}

func (x *DeleteConversationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_messaging_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteConversationRequest.ProtoReflect.Descriptor instead.
func (*DeleteConversationRequest) Descriptor() ([]byte, []int) {
	return file_messaging_proto_rawDescGZIP(), []int{12}
}

func (x *DeleteConversationRequest) GetConversationId() string {
	if x != nil {
		return x.ConversationId
	}
	return ""
}

type AppendRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	ConversationId string                 `protobuf:"bytes,1,opt,name=conversation_id,json=conversationId,proto3" json:"conversation_id,omitempty"`
	// JSON encoding of the structured content document.
	Content       string `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AppendRequest) Reset() {
	*x = AppendRequest{}
	mi := &file_messaging_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AppendRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AppendRequest) ProtoMessage() {}

func (x *AppendRequest) ProtoReflect() protoreflect.Message {
	mi := &file_messaging_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AppendRequest.ProtoReflect.Descriptor instead.
func (*AppendRequest) Descriptor() ([]byte, []int) {
	return file_messaging_proto_rawDescGZIP(), []int{13}
}

func (x *AppendRequest) GetConversationId() string {
	if x != nil {
		return x.ConversationId
	}
	return ""
}

func (x *AppendRequest) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

type MessageResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	MessageId      string                 `protobuf:"bytes,1,opt,name=message_id,json=messageId,proto3" json:"message_id,omitempty"`
	ConversationId string                 `protobuf:"bytes,2,opt,name=conversation_id,json=conversationId,proto3" json:"conversation_id,omitempty"`
	AuthorId       string                 `protobuf:"bytes,3,opt,name=author_id,json=authorId,proto3" json:"author_id,omitempty"`
	Content        string                 `protobuf:"bytes,4,opt,name=content,proto3" json:"content,omitempty"`
	CreatedAt      *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt      *timestamppb.Timestamp `protobuf:"bytes,6,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *MessageResponse) Reset() {
	*x = MessageResponse{}
	mi := &file_messaging_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MessageResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MessageResponse) ProtoMessage() {}

func (x *MessageResponse) ProtoReflect() protoreflect.Message {
	mi := &file_messaging_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MessageResponse.ProtoReflect.Descriptor instead.
func (*MessageResponse) Descriptor() ([]byte, []int) {
	return file_messaging_proto_rawDescGZIP(), []int{14}
}

func (x *MessageResponse) GetMessageId() string {
	if x != nil {
		return x.MessageId
	}
	return ""
}

func (x *MessageResponse) GetConversationId() string {
	if x != nil {
		return x.ConversationId
	}
	return ""
}

func (x *MessageResponse) GetAuthorId() string {
	if x != nil {
		return x.AuthorId
	}
	return ""
}

func (x *MessageResponse) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

func (x *MessageResponse) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *MessageResponse) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

type PageRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	ConversationId string                 `protobuf:"bytes,1,opt,name=conversation_id,json=conversationId,proto3" json:"conversation_id,omitempty"`
	Limit          int32                  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
	// Opaque cursor; empty means the head of the log.
	Before        string `protobuf:"bytes,3,opt,name=before,proto3" json:"before,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PageRequest) Reset() {
	*x = PageRequest{}
	mi := &file_messaging_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PageRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PageRequest) ProtoMessage() {}

func (x *PageRequest) ProtoReflect() protoreflect.Message {
	mi := &file_messaging_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PageRequest.ProtoReflect.Descriptor instead.
func (*PageRequest) Descriptor() ([]byte, []int) {
	return file_messaging_proto_rawDescGZIP(), []int{15}
}

func (x *PageRequest) GetConversationId() string {
	if x != nil {
		return x.ConversationId
	}
	return ""
}

func (x *PageRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *PageRequest) GetBefore() string {
	if x != nil {
		return x.Before
	}
	return ""
}

type PageResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Messages      []*MessageResponse     `protobuf:"bytes,1,rep,name=messages,proto3" json:"messages,omitempty"`
	Cursor        string                 `protobuf:"bytes,2,opt,name=cursor,proto3" json:"cursor,omitempty"`
	HasMore       bool                   `protobuf:"varint,3,opt,name=has_more,json=hasMore,proto3" json:"has_more,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PageResponse) Reset() {
	*x = PageResponse{}
	mi := &file_messaging_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PageResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PageResponse) ProtoMessage() {}

func (x *PageResponse) ProtoReflect() protoreflect.Message {
	mi := &file_messaging_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PageResponse.ProtoReflect.Descriptor instead.
func (*PageResponse) Descriptor() ([]byte, []int) {
	return file_messaging_proto_rawDescGZIP(), []int{16}
}

func (x *PageResponse) GetMessages() []*MessageResponse {
	if x != nil {
		return x.Messages
	}
	return nil
}

func (x *PageResponse) GetCursor() string {
	if x != nil {
		return x.Cursor
	}
	return ""
}

func (x *PageResponse) GetHasMore() bool {
	if x != nil {
		return x.HasMore
	}
	return false
}

type EditRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MessageId     string                 `protobuf:"bytes,1,opt,name=message_id,json=messageId,proto3" json:"message_id,omitempty"`
	Content       string                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EditRequest) Reset() {
	*x = EditRequest{}
	mi := &file_messaging_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EditRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EditRequest) ProtoMessage() {}

func (x *EditRequest) ProtoReflect() protoreflect.Message {
	mi := &file_messaging_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EditRequest.ProtoReflect.Descriptor instead.
func (*EditRequest) Descriptor() ([]byte, []int) {
	return file_messaging_proto_rawDescGZIP(), []int{17}
}

func (x *EditRequest) GetMessageId() string {
	if x != nil {
		return x.MessageId
	}
	return ""
}

func (x *EditRequest) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

type DeleteMessageRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MessageId     string                 `protobuf:"bytes,1,opt,name=message_id,json=messageId,proto3" json:"message_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteMessageRequest) Reset() {
	*x = DeleteMessageRequest{}
	mi := &file_messaging_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteMessageRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteMessageRequest) ProtoMessage() {}

func (x *DeleteMessageRequest) ProtoReflect() protoreflect.Message {
	mi := &file_messaging_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteMessageRequest.ProtoReflect.Descriptor instead.
func (*DeleteMessageRequest) Descriptor() ([]byte, []int) {
	return file_messaging_proto_rawDescGZIP(), []int{18}
}

func (x *DeleteMessageRequest) GetMessageId() string {
	if x != nil {
		return x.MessageId
	}
	return ""
}

type SearchMessagesRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	ConversationId string                 `protobuf:"bytes,1,opt,name=conversation_id,json=conversationId,proto3" json:"conversation_id,omitempty"`
	Terms          string                 `protobuf:"bytes,2,opt,name=terms,proto3" json:"terms,omitempty"`
	Limit          int32                  `protobuf:"varint,3,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *SearchMessagesRequest) Reset() {
	*x = SearchMessagesRequest{}
	mi := &file_messaging_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SearchMessagesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SearchMessagesRequest) ProtoMessage() {}

func (x *SearchMessagesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_messaging_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SearchMessagesRequest.ProtoReflect.Descriptor instead.
func (*SearchMessagesRequest) Descriptor() ([]byte, []int) {
	return file_messaging_proto_rawDescGZIP(), []int{19}
}

func (x *SearchMessagesRequest) GetConversationId() string {
	if x != nil {
		return x.ConversationId
	}
	return ""
}

func (x *SearchMessagesRequest) GetTerms() string {
	if x != nil {
		return x.Terms
	}
	return ""
}

func (x *SearchMessagesRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type SearchMessagesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Messages      []*MessageResponse     `protobuf:"bytes,1,rep,name=messages,proto3" json:"messages,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SearchMessagesResponse) Reset() {
	*x = SearchMessagesResponse{}
	mi := &file_messaging_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SearchMessagesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SearchMessagesResponse) ProtoMessage() {}

func (x *SearchMessagesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_messaging_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SearchMessagesResponse.ProtoReflect.Descriptor instead.
func (*SearchMessagesResponse) Descriptor() ([]byte, []int) {
	return file_messaging_proto_rawDescGZIP(), []int{20}
}

func (x *SearchMessagesResponse) GetMessages() []*MessageResponse {
	if x != nil {
		return x.Messages
	}
	return nil
}

type SubscribeRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	ConversationId string                 `protobuf:"bytes,1,opt,name=conversation_id,json=conversationId,proto3" json:"conversation_id,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *SubscribeRequest) Reset() {
	*x = SubscribeRequest{}
	mi := &file_messaging_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubscribeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubscribeRequest) ProtoMessage() {}

func (x *SubscribeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_messaging_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubscribeRequest.ProtoReflect.Descriptor instead.
func (*SubscribeRequest) Descriptor() ([]byte, []int) {
	return file_messaging_proto_rawDescGZIP(), []int{21}
}

func (x *SubscribeRequest) GetConversationId() string {
	if x != nil {
		return x.ConversationId
	}
	return ""
}

type ConversationEvent struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Types that are valid to be assigned to Event:
	//
	//	*ConversationEvent_Inserted
	//	*ConversationEvent_Updated
	//	*ConversationEvent_Deleted
	//	*ConversationEvent_ConversationCreated
	//	*ConversationEvent_FriendshipChanged
	//	*ConversationEvent_FriendshipRemoved
	Event         isConversationEvent_Event `protobuf_oneof:"event"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConversationEvent) Reset() {
	*x = ConversationEvent{}
	mi := &file_messaging_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConversationEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConversationEvent) ProtoMessage() {}

func (x *ConversationEvent) ProtoReflect() protoreflect.Message {
	mi := &file_messaging_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConversationEvent.ProtoReflect.Descriptor instead.
func (*ConversationEvent) Descriptor() ([]byte, []int) {
	return file_messaging_proto_rawDescGZIP(), []int{22}
}

func (x *ConversationEvent) GetEvent() isConversationEvent_Event {
	if x != nil {
		return x.Event
	}
	return nil
}

func (x *ConversationEvent) GetInserted() *MessageResponse {
	if x != nil {
		if x, ok := x.Event.(*ConversationEvent_Inserted); ok {
			return x.Inserted
		}
	}
	return nil
}

func (x *ConversationEvent) GetUpdated() *MessageResponse {
	if x != nil {
		if x, ok := x.Event.(*ConversationEvent_Updated); ok {
			return x.Updated
		}
	}
	return nil
}

func (x *ConversationEvent) GetDeleted() *MessageDeleted {
	if x != nil {
		if x, ok := x.Event.(*ConversationEvent_Deleted); ok {
			return x.Deleted
		}
	}
	return nil
}

func (x *ConversationEvent) GetConversationCreated() *ConversationResponse {
	if x != nil {
		if x, ok := x.Event.(*ConversationEvent_ConversationCreated); ok {
			return x.ConversationCreated
		}
	}
	return nil
}

func (x *ConversationEvent) GetFriendshipChanged() *FriendshipEdgeResponse {
	if x != nil {
		if x, ok := x.Event.(*ConversationEvent_FriendshipChanged); ok {
			return x.FriendshipChanged
		}
	}
	return nil
}

func (x *ConversationEvent) GetFriendshipRemoved() *FriendshipRemoved {
	if x != nil {
		if x, ok := x.Event.(*ConversationEvent_FriendshipRemoved); ok {
			return x.FriendshipRemoved
		}
	}
	return nil
}

type isConversationEvent_Event interface {
	isConversationEvent_Event()
}

type ConversationEvent_Inserted struct {
	Inserted *MessageResponse `protobuf:"bytes,1,opt,name=inserted,proto3,oneof"`
}

type ConversationEvent_Updated struct {
	Updated *MessageResponse `protobuf:"bytes,2,opt,name=updated,proto3,oneof"`
}

type ConversationEvent_Deleted struct {
	Deleted *MessageDeleted `protobuf:"bytes,3,opt,name=deleted,proto3,oneof"`
}

type ConversationEvent_ConversationCreated struct {
	ConversationCreated *ConversationResponse `protobuf:"bytes,4,opt,name=conversation_created,json=conversationCreated,proto3,oneof"`
}

type ConversationEvent_FriendshipChanged struct {
	FriendshipChanged *FriendshipEdgeResponse `protobuf:"bytes,5,opt,name=friendship_changed,json=friendshipChanged,proto3,oneof"`
}

type ConversationEvent_FriendshipRemoved struct {
	FriendshipRemoved *FriendshipRemoved `protobuf:"bytes,6,opt,name=friendship_removed,json=friendshipRemoved,proto3,oneof"`
}

func (*ConversationEvent_Inserted) isConversationEvent_Event() {}

func (*ConversationEvent_Updated) isConversationEvent_Event() {}

func (*ConversationEvent_Deleted) isConversationEvent_Event() {}

func (*ConversationEvent_ConversationCreated) isConversationEvent_Event() {}

func (*ConversationEvent_FriendshipChanged) isConversationEvent_Event() {}

func (*ConversationEvent_FriendshipRemoved) isConversationEvent_Event() {}

type MessageDeleted struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	ConversationId string                 `protobuf:"bytes,1,opt,name=conversation_id,json=conversationId,proto3" json:"conversation_id,omitempty"`
	MessageId      string                 `protobuf:"bytes,2,opt,name=message_id,json=messageId,proto3" json:"message_id,omitempty"`
	At             *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=at,proto3" json:"at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *MessageDeleted) Reset() {
	*x = MessageDeleted{}
	mi := &file_messaging_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MessageDeleted) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MessageDeleted) ProtoMessage() {}

func (x *MessageDeleted) ProtoReflect() protoreflect.Message {
	mi := &file_messaging_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MessageDeleted.ProtoReflect.Descriptor instead.
func (*MessageDeleted) Descriptor() ([]byte, []int) {
	return file_messaging_proto_rawDescGZIP(), []int{23}
}

func (x *MessageDeleted) GetConversationId() string {
	if x != nil {
		return x.ConversationId
	}
	return ""
}

func (x *MessageDeleted) GetMessageId() string {
	if x != nil {
		return x.MessageId
	}
	return ""
}

func (x *MessageDeleted) GetAt() *timestamppb.Timestamp {
	if x != nil {
		return x.At
	}
	return nil
}

type FriendshipRemoved struct {
	state          protoimpl.MessageState  `protogen:"open.v1"`
	Edge           *FriendshipEdgeResponse `protobuf:"bytes,1,opt,name=edge,proto3" json:"edge,omitempty"`
	PreviousStatus string                  `protobuf:"bytes,2,opt,name=previous_status,json=previousStatus,proto3" json:"previous_status,omitempty"`
	At             *timestamppb.Timestamp  `protobuf:"bytes,3,opt,name=at,proto3" json:"at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *FriendshipRemoved) Reset() {
	*x = FriendshipRemoved{}
	mi := &file_messaging_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FriendshipRemoved) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FriendshipRemoved) ProtoMessage() {}

func (x *FriendshipRemoved) ProtoReflect() protoreflect.Message {
	mi := &file_messaging_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FriendshipRemoved.ProtoReflect.Descriptor instead.
func (*FriendshipRemoved) Descriptor() ([]byte, []int) {
	return file_messaging_proto_rawDescGZIP(), []int{24}
}

func (x *FriendshipRemoved) GetEdge() *FriendshipEdgeResponse {
	if x != nil {
		return x.Edge
	}
	return nil
}

func (x *FriendshipRemoved) GetPreviousStatus() string {
	if x != nil {
		return x.PreviousStatus
	}
	return ""
}

func (x *FriendshipRemoved) GetAt() *timestamppb.Timestamp {
	if x != nil {
		return x.At
	}
	return nil
}

var File_messaging_proto protoreflect.FileDescriptor

const file_messaging_proto_rawDesc = "" +
	"\n" +
	"\x0fmessaging.proto\x12\n" +
	"courier.v1\x1a\x1fgoogle/protobuf/timestamp.proto\"}\n" +
	"\aUserRef\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1a\n" +
	"\busername\x18\x02 \x01(\tR\busername\x12!\n" +
	"\fdisplay_name\x18\x03 \x01(\tR\vdisplayName\x12\x1a\n" +
	"\bpresence\x18\x04 \x01(\tR\bpresence\"B\n" +
	"\x11SendFriendRequest\x12-\n" +
	"\x12addressee_username\x18\x01 \x01(\tR\x11addresseeUsername\",\n" +
	"\x11EdgeActionRequest\x12\x17\n" +
	"\aedge_id\x18\x01 \x01(\tR\x06edgeId\"\xc9\x02\n" +
	"\x16FriendshipEdgeResponse\x12\x17\n" +
	"\aedge_id\x18\x01 \x01(\tR\x06edgeId\x121\n" +
	"\trequester\x18\x02 \x01(\v2\x13.courier.v1.UserRefR\trequester\x121\n" +
	"\taddressee\x18\x03 \x01(\v2\x13.courier.v1.UserRefR\taddressee\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12\"\n" +
	"\rlast_actor_id\x18\x05 \x01(\tR\vlastActorId\x129\n" +
	"\n" +
	"created_at\x18\x06 \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"updated_at\x18\a \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAt\"*\n" +
	"\x0eRemoveResponse\x12\x18\n" +
	"\asuccess\x18\x01 \x01(\bR\asuccess\"*\n" +
	"\x10ListEdgesRequest\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\"M\n" +
	"\x11ListEdgesResponse\x128\n" +
	"\x05edges\x18\x01 \x03(\v2\".courier.v1.FriendshipEdgeResponseR\x05edges\"H\n" +
	"\x13FindOrCreateRequest\x121\n" +
	"\x14participant_username\x18\x01 \x01(\tR\x13participantUsername\"A\n" +
	"\x16GetConversationRequest\x12'\n" +
	"\x0fconversation_id\x18\x01 \x01(\tR\x0econversationId\"\x8b\x02\n" +
	"\x14ConversationResponse\x12'\n" +
	"\x0fconversation_id\x18\x01 \x01(\tR\x0econversationId\x127\n" +
	"\fparticipants\x18\x02 \x03(\v2\x13.courier.v1.UserRefR\fparticipants\x12>\n" +
	"\flast_message\x18\x03 \x01(\v2\x1b.courier.v1.MessageResponseR\vlastMessage\x12\x16\n" +
	"\x06unread\x18\x04 \x01(\x04R\x06unread\x129\n" +
	"\n" +
	"created_at\x18\x05 \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\"\x1a\n" +
	"\x18ListConversationsRequest\"c\n" +
	"\x19ListConversationsResponse\x12F\n" +
	"\rconversations\x18\x01 \x03(\v2 .courier.v1.ConversationResponseR\rconversations\"D\n" +
	"\x19DeleteConversationRequest\x12'\n" +
	"\x0fconversation_id\x18\x01 \x01(\tR\x0econversationId\"R\n" +
	"\rAppendRequest\x12'\n" +
	"\x0fconversation_id\x18\x01 \x01(\tR\x0econversationId\x12\x18\n" +
	"\acontent\x18\x02 \x01(\tR\acontent\"\x86\x02\n" +
	"\x0fMessageResponse\x12\x1d\n" +
	"\n" +
	"message_id\x18\x01 \x01(\tR\tmessageId\x12'\n" +
	"\x0fconversation_id\x18\x02 \x01(\tR\x0econversationId\x12\x1b\n" +
	"\tauthor_id\x18\x03 \x01(\tR\bauthorId\x12\x18\n" +
	"\acontent\x18\x04 \x01(\tR\acontent\x129\n" +
	"\n" +
	"created_at\x18\x05 \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"updated_at\x18\x06 \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAt\"d\n" +
	"\vPageRequest\x12'\n" +
	"\x0fconversation_id\x18\x01 \x01(\tR\x0econversationId\x12\x14\n" +
	"\x05limit\x18\x02 \x01(\x05R\x05limit\x12\x16\n" +
	"\x06before\x18\x03 \x01(\tR\x06before\"z\n" +
	"\fPageResponse\x127\n" +
	"\bmessages\x18\x01 \x03(\v2\x1b.courier.v1.MessageResponseR\bmessages\x12\x16\n" +
	"\x06cursor\x18\x02 \x01(\tR\x06cursor\x12\x19\n" +
	"\bhas_more\x18\x03 \x01(\bR\ahasMore\"F\n" +
	"\vEditRequest\x12\x1d\n" +
	"\n" +
	"message_id\x18\x01 \x01(\tR\tmessageId\x12\x18\n" +
	"\acontent\x18\x02 \x01(\tR\acontent\"5\n" +
	"\x14DeleteMessageRequest\x12\x1d\n" +
	"\n" +
	"message_id\x18\x01 \x01(\tR\tmessageId\"l\n" +
	"\x15SearchMessagesRequest\x12'\n" +
	"\x0fconversation_id\x18\x01 \x01(\tR\x0econversationId\x12\x14\n" +
	"\x05terms\x18\x02 \x01(\tR\x05terms\x12\x14\n" +
	"\x05limit\x18\x03 \x01(\x05R\x05limit\"Q\n" +
	"\x16SearchMessagesResponse\x127\n" +
	"\bmessages\x18\x01 \x03(\v2\x1b.courier.v1.MessageResponseR\bmessages\";\n" +
	"\x10SubscribeRequest\x12'\n" +
	"\x0fconversation_id\x18\x01 \x01(\tR\x0econversationId\"\xc4\x03\n" +
	"\x11ConversationEvent\x129\n" +
	"\binserted\x18\x01 \x01(\v2\x1b.courier.v1.MessageResponseH\x00R\binserted\x127\n" +
	"\aupdated\x18\x02 \x01(\v2\x1b.courier.v1.MessageResponseH\x00R\aupdated\x126\n" +
	"\adeleted\x18\x03 \x01(\v2\x1a.courier.v1.MessageDeletedH\x00R\adeleted\x12U\n" +
	"\x14conversation_created\x18\x04 \x01(\v2 .courier.v1.ConversationResponseH\x00R\x13conversationCreated\x12S\n" +
	"\x12friendship_changed\x18\x05 \x01(\v2\".courier.v1.FriendshipEdgeResponseH\x00R\x11friendshipChanged\x12N\n" +
	"\x12friendship_removed\x18\x06 \x01(\v2\x1d.courier.v1.FriendshipRemovedH\x00R\x11friendshipRemovedB\a\n" +
	"\x05event\"\x84\x01\n" +
	"\x0eMessageDeleted\x12'\n" +
	"\x0fconversation_id\x18\x01 \x01(\tR\x0econversationId\x12\x1d\n" +
	"\n" +
	"message_id\x18\x02 \x01(\tR\tmessageId\x12*\n" +
	"\x02at\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\x02at\"\xa0\x01\n" +
	"\x11FriendshipRemoved\x126\n" +
	"\x04edge\x18\x01 \x01(\v2\".courier.v1.FriendshipEdgeResponseR\x04edge\x12'\n" +
	"\x0fprevious_status\x18\x02 \x01(\tR\x0epreviousStatus\x12*\n" +
	"\x02at\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\x02at2\x8d\x03\n" +
	"\x11FriendshipService\x12P\n" +
	"\vSendRequest\x12\x1d.courier.v1.SendFriendRequest\x1a\".courier.v1.FriendshipEdgeResponse\x12K\n" +
	"\x06Accept\x12\x1d.courier.v1.EdgeActionRequest\x1a\".courier.v1.FriendshipEdgeResponse\x12J\n" +
	"\x05Block\x12\x1d.courier.v1.EdgeActionRequest\x1a\".courier.v1.FriendshipEdgeResponse\x12C\n" +
	"\x06Remove\x12\x1d.courier.v1.EdgeActionRequest\x1a\x1a.courier.v1.RemoveResponse\x12H\n" +
	"\tListEdges\x12\x1c.courier.v1.ListEdgesRequest\x1a\x1d.courier.v1.ListEdgesResponse2\xd7\x02\n" +
	"\x13ConversationService\x12Q\n" +
	"\fFindOrCreate\x12\x1f.courier.v1.FindOrCreateRequest\x1a .courier.v1.ConversationResponse\x12K\n" +
	"\x03Get\x12\".courier.v1.GetConversationRequest\x1a .courier.v1.ConversationResponse\x12S\n" +
	"\x04List\x12$.courier.v1.ListConversationsRequest\x1a%.courier.v1.ListConversationsResponse\x12K\n" +
	"\x06Delete\x12%.courier.v1.DeleteConversationRequest\x1a\x1a.courier.v1.RemoveResponse2\xb0\x03\n" +
	"\x0eMessageService\x12@\n" +
	"\x06Append\x12\x19.courier.v1.AppendRequest\x1a\x1b.courier.v1.MessageResponse\x129\n" +
	"\x04Page\x12\x17.courier.v1.PageRequest\x1a\x18.courier.v1.PageResponse\x12<\n" +
	"\x04Edit\x12\x17.courier.v1.EditRequest\x1a\x1b.courier.v1.MessageResponse\x12F\n" +
	"\x06Delete\x12 .courier.v1.DeleteMessageRequest\x1a\x1a.courier.v1.RemoveResponse\x12O\n" +
	"\x06Search\x12!.courier.v1.SearchMessagesRequest\x1a\".courier.v1.SearchMessagesResponse\x12J\n" +
	"\tSubscribe\x12\x1c.courier.v1.SubscribeRequest\x1a\x1d.courier.v1.ConversationEvent0\x01B\x19Z\x17courier/proto/messagingb\x06proto3"

var (
	file_messaging_proto_rawDescOnce sync.Once
	file_messaging_proto_rawDescData []byte
)

func file_messaging_proto_rawDescGZIP() []byte {
	file_messaging_proto_rawDescOnce.Do(func() {
		file_messaging_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_messaging_proto_rawDesc), len(file_messaging_proto_rawDesc)))
	})
	return file_messaging_proto_rawDescData
}

var file_messaging_proto_msgTypes = make([]protoimpl.MessageInfo, 25)
var file_messaging_proto_goTypes = []any{
	(*UserRef)(nil),                   // 0: courier.v1.UserRef
	(*SendFriendRequest)(nil),         // 1: courier.v1.SendFriendRequest
	(*EdgeActionRequest)(nil),         // 2: courier.v1.EdgeActionRequest
	(*FriendshipEdgeResponse)(nil),    // 3: courier.v1.FriendshipEdgeResponse
	(*RemoveResponse)(nil),            // 4: courier.v1.RemoveResponse
	(*ListEdgesRequest)(nil),          // 5: courier.v1.ListEdgesRequest
	(*ListEdgesResponse)(nil),         // 6: courier.v1.ListEdgesResponse
	(*FindOrCreateRequest)(nil),       // 7: courier.v1.FindOrCreateRequest
	(*GetConversationRequest)(nil),    // 8: courier.v1.GetConversationRequest
	(*ConversationResponse)(nil),      // 9: courier.v1.ConversationResponse
	(*ListConversationsRequest)(nil),  // 10: courier.v1.ListConversationsRequest
	(*ListConversationsResponse)(nil), // 11: courier.v1.ListConversationsResponse
	(*DeleteConversationRequest)(nil), // 12: courier.v1.DeleteConversationRequest
	(*AppendRequest)(nil),             // 13: courier.v1.AppendRequest
	(*MessageResponse)(nil),           // 14: courier.v1.MessageResponse
	(*PageRequest)(nil),               // 15: courier.v1.PageRequest
	(*PageResponse)(nil),              // 16: courier.v1.PageResponse
	(*EditRequest)(nil),               // 17: courier.v1.EditRequest
	(*DeleteMessageRequest)(nil),      // 18: courier.v1.DeleteMessageRequest
	(*SearchMessagesRequest)(nil),     // 19: courier.v1.SearchMessagesRequest
	(*SearchMessagesResponse)(nil),    // 20: courier.v1.SearchMessagesResponse
	(*SubscribeRequest)(nil),          // 21: courier.v1.SubscribeRequest
	(*ConversationEvent)(nil),         // 22: courier.v1.ConversationEvent
	(*MessageDeleted)(nil),            // 23: courier.v1.MessageDeleted
	(*FriendshipRemoved)(nil),         // 24: courier.v1.FriendshipRemoved
	(*timestamppb.Timestamp)(nil),     // 25: google.protobuf.Timestamp
}
var file_messaging_proto_depIdxs = []int32{
	0,  // 0: courier.v1.FriendshipEdgeResponse.requester:type_name -> courier.v1.UserRef
	0,  // 1: courier.v1.FriendshipEdgeResponse.addressee:type_name -> courier.v1.UserRef
	25, // 2: courier.v1.FriendshipEdgeResponse.created_at:type_name -> google.protobuf.Timestamp
	25, // 3: courier.v1.FriendshipEdgeResponse.updated_at:type_name -> google.protobuf.Timestamp
	3,  // 4: courier.v1.ListEdgesResponse.edges:type_name -> courier.v1.FriendshipEdgeResponse
	0,  // 5: courier.v1.ConversationResponse.participants:type_name -> courier.v1.UserRef
	14, // 6: courier.v1.ConversationResponse.last_message:type_name -> courier.v1.MessageResponse
	25, // 7: courier.v1.ConversationResponse.created_at:type_name -> google.protobuf.Timestamp
	9,  // 8: courier.v1.ListConversationsResponse.conversations:type_name -> courier.v1.ConversationResponse
	25, // 9: courier.v1.MessageResponse.created_at:type_name -> google.protobuf.Timestamp
	25, // 10: courier.v1.MessageResponse.updated_at:type_name -> google.protobuf.Timestamp
	14, // 11: courier.v1.PageResponse.messages:type_name -> courier.v1.MessageResponse
	14, // 12: courier.v1.SearchMessagesResponse.messages:type_name -> courier.v1.MessageResponse
	14, // 13: courier.v1.ConversationEvent.inserted:type_name -> courier.v1.MessageResponse
	14, // 14: courier.v1.ConversationEvent.updated:type_name -> courier.v1.MessageResponse
	23, // 15: courier.v1.ConversationEvent.deleted:type_name -> courier.v1.MessageDeleted
	9,  // 16: courier.v1.ConversationEvent.conversation_created:type_name -> courier.v1.ConversationResponse
	3,  // 17: courier.v1.ConversationEvent.friendship_changed:type_name -> courier.v1.FriendshipEdgeResponse
	24, // 18: courier.v1.ConversationEvent.friendship_removed:type_name -> courier.v1.FriendshipRemoved
	25, // 19: courier.v1.MessageDeleted.at:type_name -> google.protobuf.Timestamp
	3,  // 20: courier.v1.FriendshipRemoved.edge:type_name -> courier.v1.FriendshipEdgeResponse
	25, // 21: courier.v1.FriendshipRemoved.at:type_name -> google.protobuf.Timestamp
	1,  // 22: courier.v1.FriendshipService.SendRequest:input_type -> courier.v1.SendFriendRequest
	2,  // 23: courier.v1.FriendshipService.Accept:input_type -> courier.v1.EdgeActionRequest
	2,  // 24: courier.v1.FriendshipService.Block:input_type -> courier.v1.EdgeActionRequest
	2,  // 25: courier.v1.FriendshipService.Remove:input_type -> courier.v1.EdgeActionRequest
	5,  // 26: courier.v1.FriendshipService.ListEdges:input_type -> courier.v1.ListEdgesRequest
	7,  // 27: courier.v1.ConversationService.FindOrCreate:input_type -> courier.v1.FindOrCreateRequest
	8,  // 28: courier.v1.ConversationService.Get:input_type -> courier.v1.GetConversationRequest
	10, // 29: courier.v1.ConversationService.List:input_type -> courier.v1.ListConversationsRequest
	12, // 30: courier.v1.ConversationService.Delete:input_type -> courier.v1.DeleteConversationRequest
	13, // 31: courier.v1.MessageService.Append:input_type -> courier.v1.AppendRequest
	15, // 32: courier.v1.MessageService.Page:input_type -> courier.v1.PageRequest
	17, // 33: courier.v1.MessageService.Edit:input_type -> courier.v1.EditRequest
	18, // 34: courier.v1.MessageService.Delete:input_type -> courier.v1.DeleteMessageRequest
	19, // 35: courier.v1.MessageService.Search:input_type -> courier.v1.SearchMessagesRequest
	21, // 36: courier.v1.MessageService.Subscribe:input_type -> courier.v1.SubscribeRequest
	3,  // 37: courier.v1.FriendshipService.SendRequest:output_type -> courier.v1.FriendshipEdgeResponse
	3,  // 38: courier.v1.FriendshipService.Accept:output_type -> courier.v1.FriendshipEdgeResponse
	3,  // 39: courier.v1.FriendshipService.Block:output_type -> courier.v1.FriendshipEdgeResponse
	4,  // 40: courier.v1.FriendshipService.Remove:output_type -> courier.v1.RemoveResponse
	6,  // 41: courier.v1.FriendshipService.ListEdges:output_type -> courier.v1.ListEdgesResponse
	9,  // 42: courier.v1.ConversationService.FindOrCreate:output_type -> courier.v1.ConversationResponse
	9,  // 43: courier.v1.ConversationService.Get:output_type -> courier.v1.ConversationResponse
	11, // 44: courier.v1.ConversationService.List:output_type -> courier.v1.ListConversationsResponse
	4,  // 45: courier.v1.ConversationService.Delete:output_type -> courier.v1.RemoveResponse
	14, // 46: courier.v1.MessageService.Append:output_type -> courier.v1.MessageResponse
	16, // 47: courier.v1.MessageService.Page:output_type -> courier.v1.PageResponse
	14, // 48: courier.v1.MessageService.Edit:output_type -> courier.v1.MessageResponse
	4,  // 49: courier.v1.MessageService.Delete:output_type -> courier.v1.RemoveResponse
	20, // 50: courier.v1.MessageService.Search:output_type -> courier.v1.SearchMessagesResponse
	22, // 51: courier.v1.MessageService.Subscribe:output_type -> courier.v1.ConversationEvent
	37, // [37:52] is the sub-list for method output_type
	22, // [22:37] is the sub-list for method input_type
	22, // [22:22] is the sub-list for extension type_name
	22, // [22:22] is the sub-list for extension extendee
	0,  // [0:22] is the sub-list for field type_name
}

func init() { file_messaging_proto_init() }
func file_messaging_proto_init() {
	if File_messaging_proto != nil {
		return
	}
	file_messaging_proto_msgTypes[22].OneofWrappers = []any{
		(*ConversationEvent_Inserted)(nil),
		(*ConversationEvent_Updated)(nil),
		(*ConversationEvent_Deleted)(nil),
		(*ConversationEvent_ConversationCreated)(nil),
		(*ConversationEvent_FriendshipChanged)(nil),
		(*ConversationEvent_FriendshipRemoved)(nil),
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_messaging_proto_rawDesc), len(file_messaging_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   25,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_messaging_proto_goTypes,
		DependencyIndexes: file_messaging_proto_depIdxs,
		MessageInfos:      file_messaging_proto_msgTypes,
	}.Build()
	File_messaging_proto = out.File
	file_messaging_proto_goTypes = nil
	file_messaging_proto_depIdxs = nil
}
