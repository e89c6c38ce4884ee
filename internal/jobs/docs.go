// Package jobs provides scheduled background tasks for the storefront.
//
// Jobs are cron-based, built on github.com/robfig/cron/v3 with a seconds field
// in every schedule.
//
// # Available Jobs
//
// OutboxRelayJob publishes the order status changes recorded in the outbox to
// Kafka. Each tick relays batches until one comes back short; overlapping ticks
// are skipped.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(relayOutboxHandler, jobs.OutboxRelayConfig{
//		Schedule:  "*/2 * * * * *",
//		BatchSize: 100,
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed relay is logged and retried on the next tick; the messages stay in
// the outbox until a publish succeeds.
package jobs
