package sink

import (
	"context"

	"courier/domain/event"
)

// GrpcSink bridges the fan-out to one connected user's stream handler.
type GrpcSink struct {
	ConnectedUserEvent chan event.DomainEvent
}

func NewGrpcSink(bufferSize int) *GrpcSink {
	return &GrpcSink{ConnectedUserEvent: make(chan event.DomainEvent, bufferSize)}
}

// Consume is called by fanout.
// Redirects the event to the owner of the channel; the gRPC handler picks it
// up from there. A full channel means a client too slow to keep up, the
// event is dropped and the client recovers through the persisted log.
func (s *GrpcSink) Consume(ctx context.Context, e event.DomainEvent) error {
	select {
	case s.ConnectedUserEvent <- e:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
