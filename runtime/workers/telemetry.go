package workers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"courier/domain/event"
)

// TelemetryWorker drains the telemetry copy of the event stream and reports
// per-type counters on an interval. Losing telemetry events is acceptable;
// the counters are indicative.
type TelemetryWorker struct {
	log            *slog.Logger
	metricInterval time.Duration
	telemetryChan  chan event.DomainEvent
	counters       map[string]uint64
}

func NewTelemetryWorker(log *slog.Logger, metricInterval time.Duration,
	telemetryChan chan event.DomainEvent) *TelemetryWorker {
	return &TelemetryWorker{
		log:            log,
		metricInterval: metricInterval,
		telemetryChan:  telemetryChan,
		counters:       make(map[string]uint64),
	}
}

func (w *TelemetryWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case evt := <-w.telemetryChan:
			w.counters[fmt.Sprintf("%T", evt)]++
		case <-ticker.C:
			for name, count := range w.counters {
				w.log.Info("Event counter", "type", name, "count", count)
			}
		}
	}
}
