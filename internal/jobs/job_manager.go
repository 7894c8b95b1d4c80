package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager owns the background jobs of the storefront.
type JobManager struct {
	outboxRelayJob *OutboxRelayJob
}

// NewJobManager wires the outbox relay. An empty schedule falls back to
// DefaultOutboxRelaySchedule.
func NewJobManager(relayHandler outboxRelayer, schedule string, batchSize int, logger *slog.Logger) *JobManager {
	return &JobManager{
		outboxRelayJob: NewOutboxRelayJob(relayHandler, schedule, batchSize, logger),
	}
}

func (jm *JobManager) StartAll() error {
	if err := jm.outboxRelayJob.Start(); err != nil {
		return fmt.Errorf("failed to start outbox relay job: %w", err)
	}
	return nil
}

// StopAll stops every job and waits for in-flight runs.
func (jm *JobManager) StopAll() {
	jm.outboxRelayJob.Stop()
}
