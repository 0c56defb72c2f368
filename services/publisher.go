package services

import "courier/domain/event"

// EventPublisher is the write side of the live event channel. Services
// publish after a successful commit; delivery to subscribers is best-effort
// and at-least-once from the consumer's perspective.
type EventPublisher interface {
	Publish(e event.DomainEvent)
}
