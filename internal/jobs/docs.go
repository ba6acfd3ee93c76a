// Package jobs provides scheduled background tasks for the storefront.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// OutboxRelayJob reads pending order.status_changed records from the outbox
// and publishes them to the broker, marking each one sent.
//
// # Usage
//
//	relay, err := jobs.NewOutboxRelayJob(relayHandler, cfg.OutboxRelaySchedule, cfg.OutboxRelayBatch, logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	jobManager := jobs.NewJobManager(relay)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The relay schedule is a six-field cron expression with seconds and
// defaults to "*/5 * * * * *". A run that is still in progress makes the
// next tick skip.
//
// # Error Handling
//
// A broker failure leaves the failed message and everything after it
// pending for the next run. Other errors are logged and the batch is rolled
// back. Failed job starts stop any already running jobs.
package jobs
