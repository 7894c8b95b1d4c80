package jobs

import (
	"context"
	"log/slog"

	"bakery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultOutboxRelaySchedule runs the relay every five seconds.
const DefaultOutboxRelaySchedule = "*/5 * * * * *"

type outboxRelayer interface {
	Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (int, error)
}

// OutboxRelayJob periodically hands pending outbox messages to the publisher.
// A run that is still in progress when the next tick fires is skipped.
type OutboxRelayJob struct {
	handler   outboxRelayer
	schedule  string
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewOutboxRelayJob(handler outboxRelayer, schedule string, batchSize int, logger *slog.Logger) *OutboxRelayJob {
	if schedule == "" {
		schedule = DefaultOutboxRelaySchedule
	}
	return &OutboxRelayJob{
		handler:   handler,
		schedule:  schedule,
		batchSize: batchSize,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger.With("component", "outbox_relay_job"),
	}
}

// Start validates the batch size and schedule, then starts ticking.
func (j *OutboxRelayJob) Start() error {
	cmd, err := commands.NewRelayOutboxCommand(j.batchSize)
	if err != nil {
		return err
	}

	if _, err = j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background(), cmd)
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Outbox relay job started", "schedule", j.schedule, "batch_size", j.batchSize)
	return nil
}

// RunOnce relays a single batch and returns how many messages went out.
func (j *OutboxRelayJob) RunOnce(ctx context.Context, cmd commands.RelayOutboxCommand) int {
	published, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay failed", "published", published, "error", err)
		return published
	}
	if published > 0 {
		j.logger.DebugContext(ctx, "Outbox relayed", "published", published)
	}
	return published
}

// Stop stops scheduling and waits for a run in progress to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Outbox relay job stopped")
}
