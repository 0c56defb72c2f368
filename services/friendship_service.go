//go:generate go run go.uber.org/mock/mockgen -source=friendship_service.go -destination=../mocks/mock_friendship_service.go -package=mocks
package services

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"courier/domain"
	"courier/domain/event"
	"courier/errors"
	"courier/repositories"
)

type IFriendshipService interface {
	SendRequest(ctx context.Context, requesterID uuid.UUID, addresseeUsername string) (domain.EdgeWithUsers, error)
	Accept(ctx context.Context, edgeID, actorID uuid.UUID) (domain.FriendshipEdge, error)
	Block(ctx context.Context, edgeID, actorID uuid.UUID) (domain.FriendshipEdge, error)
	CancelOrRemove(ctx context.Context, edgeID, actorID uuid.UUID) error
	ListEdges(ctx context.Context, userID uuid.UUID, statusFilter *domain.FriendshipStatus) ([]domain.EdgeWithUsers, error)
	AreFriends(ctx context.Context, a, b uuid.UUID) (bool, error)
}

// FriendshipService enforces the friendship state machine. Pair uniqueness
// itself lives in the repository; this layer owns who may do what.
type FriendshipService struct {
	edges     repositories.IFriendshipRepository
	users     repositories.IUserRepository
	publisher EventPublisher
	log       *slog.Logger
}

func NewFriendshipService(edges repositories.IFriendshipRepository,
	users repositories.IUserRepository, publisher EventPublisher, log *slog.Logger) *FriendshipService {
	return &FriendshipService{edges: edges, users: users, publisher: publisher, log: log}
}

func (s *FriendshipService) SendRequest(ctx context.Context, requesterID uuid.UUID, addresseeUsername string) (domain.EdgeWithUsers, error) {
	addressee, err := s.users.GetByUsername(addresseeUsername)
	if err != nil {
		return domain.EdgeWithUsers{}, err
	}
	if addressee.ID == requesterID {
		return domain.EdgeWithUsers{}, errors.SelfReference("cannot send a friend request to yourself")
	}
	requester, err := s.users.GetByID(requesterID)
	if err != nil {
		return domain.EdgeWithUsers{}, err
	}

	edge, err := s.edges.Create(domain.FriendshipEdge{
		RequesterID: requesterID,
		AddresseeID: addressee.ID,
		Status:      domain.StatusPending,
		LastActorID: requesterID,
	})
	if errors.HasCode(err, errors.CodeConflict) {
		// Lost the race against the mirror request: one edge exists, which
		// is exactly the invariant. Report it like any pre-existing edge.
		return domain.EdgeWithUsers{}, errors.ErrEdgeExists
	}
	if err != nil {
		return domain.EdgeWithUsers{}, err
	}

	s.publisher.Publish(event.FriendshipChanged{Edge: edge})
	return domain.EdgeWithUsers{
		Edge:      edge,
		Requester: toSummary(requester),
		Addressee: toSummary(addressee),
	}, nil
}

func (s *FriendshipService) Accept(ctx context.Context, edgeID, actorID uuid.UUID) (domain.FriendshipEdge, error) {
	edge, err := s.edges.GetByID(edgeID)
	if err != nil {
		return domain.FriendshipEdge{}, err
	}
	if edge.AddresseeID != actorID {
		return domain.FriendshipEdge{}, errors.Forbidden("only the addressee can accept a friend request")
	}
	if !domain.CanTransition(edge.Status, domain.StatusAccepted) {
		return domain.FriendshipEdge{}, errors.InvalidState("cannot accept a friendship that is " + string(edge.Status))
	}
	updated, err := s.edges.UpdateStatus(edgeID, domain.StatusAccepted, actorID)
	if err != nil {
		return domain.FriendshipEdge{}, err
	}
	s.publisher.Publish(event.FriendshipChanged{Edge: updated})
	return updated, nil
}

// Block moves the edge to blocked from any prior status. Blocked never goes
// back to accepted directly: the edge must be removed and a new request
// accepted.
func (s *FriendshipService) Block(ctx context.Context, edgeID, actorID uuid.UUID) (domain.FriendshipEdge, error) {
	edge, err := s.edges.GetByID(edgeID)
	if err != nil {
		return domain.FriendshipEdge{}, err
	}
	if !edge.Involves(actorID) {
		return domain.FriendshipEdge{}, errors.Forbidden("you can only block friendships you are involved in")
	}
	updated, err := s.edges.UpdateStatus(edgeID, domain.StatusBlocked, actorID)
	if err != nil {
		return domain.FriendshipEdge{}, err
	}
	s.publisher.Publish(event.FriendshipChanged{Edge: updated})
	return updated, nil
}

// CancelOrRemove deletes the edge unconditionally for either party. It
// covers cancel (pending), unfriend (accepted) and unblock (blocked); the
// emitted event keeps the prior status so the three remain distinguishable
// downstream.
func (s *FriendshipService) CancelOrRemove(ctx context.Context, edgeID, actorID uuid.UUID) error {
	edge, err := s.edges.GetByID(edgeID)
	if err != nil {
		return err
	}
	if !edge.Involves(actorID) {
		return errors.Forbidden("you can only delete friendships you are involved in")
	}
	if err := s.edges.Delete(edgeID); err != nil {
		return err
	}
	s.publisher.Publish(event.FriendshipRemoved{
		Edge:           edge,
		PreviousStatus: edge.Status,
		At:             edge.UpdatedAt,
	})
	return nil
}

func (s *FriendshipService) ListEdges(ctx context.Context, userID uuid.UUID, statusFilter *domain.FriendshipStatus) ([]domain.EdgeWithUsers, error) {
	edges, err := s.edges.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	resolved := make([]domain.EdgeWithUsers, 0, len(edges))
	for _, edge := range edges {
		if statusFilter != nil && edge.Status != *statusFilter {
			continue
		}
		requester, err := s.users.GetByID(edge.RequesterID)
		if err != nil {
			s.log.Warn("Friendship references unknown requester", "edge", edge.ID, "err", err)
			continue
		}
		addressee, err := s.users.GetByID(edge.AddresseeID)
		if err != nil {
			s.log.Warn("Friendship references unknown addressee", "edge", edge.ID, "err", err)
			continue
		}
		resolved = append(resolved, domain.EdgeWithUsers{
			Edge:      edge,
			Requester: toSummary(requester),
			Addressee: toSummary(addressee),
		})
	}
	return resolved, nil
}

// AreFriends reports whether an accepted edge exists for the pair.
func (s *FriendshipService) AreFriends(ctx context.Context, a, b uuid.UUID) (bool, error) {
	edge, err := s.edges.GetByPair(a, b)
	if errors.HasCode(err, errors.CodeNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return edge.Status == domain.StatusAccepted, nil
}

func toSummary(user repositories.DiskUser) domain.Summary {
	return domain.Summary{
		ID:          user.ID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
		Presence:    domain.Presence(user.Presence),
	}
}
