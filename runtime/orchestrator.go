// Package runtime handles event propagation and worker supervision. It
// orchestrates the system without containing business logic or domain rules.
package runtime

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"courier/contract"
	"courier/domain/event"
	"courier/runtime/workers"
)

type Orchestrator struct {
	mu             sync.Mutex
	log            *slog.Logger
	permanentSinks []contract.EventSink
	supervisor     contract.ISupervisor
	registry       contract.IRegistry
	domainEvents   chan event.DomainEvent
	telemetry      chan event.DomainEvent
	sinkTimeout    time.Duration
	metricInterval time.Duration
}

func NewOrchestrator(log *slog.Logger, supervisor *workers.Supervisor,
	registry *Registry, bufferSize int,
	sinkTimeout, metricInterval time.Duration) *Orchestrator {
	return &Orchestrator{
		log:            log,
		supervisor:     supervisor,
		registry:       registry,
		domainEvents:   make(chan event.DomainEvent, bufferSize),
		telemetry:      make(chan event.DomainEvent, bufferSize),
		sinkTimeout:    sinkTimeout,
		metricInterval: metricInterval,
	}
}

// RegisterSinks adds consumers that see every event regardless of routing.
// Must be called before Start.
func (o *Orchestrator) RegisterSinks(sinks ...contract.EventSink) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.permanentSinks = append(o.permanentSinks, sinks...)
}

// Publish enqueues an event for fan-out. The channel is bounded; under
// sustained pressure events are dropped rather than blocking the caller,
// readers recover through the persisted log.
func (o *Orchestrator) Publish(e event.DomainEvent) {
	select {
	case o.domainEvents <- e:
	default:
		o.log.Warn("Domain event channel full, dropping event", "conversation", e.ConversationID())
	}
}

func (o *Orchestrator) Subscribe(userID, conversationID uuid.UUID, sink contract.EventSink) {
	o.registry.Subscribe(userID, conversationID, sink)
}

func (o *Orchestrator) Unsubscribe(userID, conversationID uuid.UUID) {
	o.registry.Unsubscribe(userID, conversationID)
}

// Start registers all workers with the supervisor and runs them in the
// background. Returns once supervision is up; workers stop when the context
// is canceled or Stop is called.
func (o *Orchestrator) Start(ctx context.Context) error {
	o.mu.Lock()
	fanoutWorker := workers.NewEventFanout(o.log, o.registry,
		o.domainEvents, o.telemetry, o.permanentSinks, o.sinkTimeout)
	o.supervisor.Add(fanoutWorker)
	o.supervisor.Add(workers.NewTelemetryWorker(o.log, o.metricInterval, o.telemetry))
	o.supervisor.Add(workers.NewHealthMonitoringWorker(o.log, o.metricInterval))
	o.mu.Unlock()

	o.log.Info("Starting orchestrator and all supervised workers")
	go o.supervisor.Run(ctx)
	return nil
}

// Stop initiates a graceful shutdown, canceling the supervised context so
// workers stop blocking on their channels.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.supervisor.Stop()
}
