// Package jobs runs scheduled background work with github.com/robfig/cron/v3.
//
// The only job today is OutboxRelayJob. Placing or updating an order writes
// an event row to the outbox in the same transaction as the order; the relay
// publishes those rows to Kafka on a schedule and marks them processed.
//
//	jobManager := jobs.NewJobManager(relayHandler, cfg.OutboxRelaySchedule, cfg.OutboxBatchSize, logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// Schedules use the six-field cron syntax with seconds, for example
// "*/5 * * * * *". Overlapping runs are skipped rather than queued.
//
// A failed run is logged and retried on the next tick; messages that were
// not published stay pending.
package jobs
