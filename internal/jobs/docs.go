// Package jobs provides scheduled background tasks for the delivery tracking
// service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, seconds enabled) and
// managed as a group by JobManager.
//
// # Available Jobs
//
//  1. DeliverySimulationJob - advances every active delivery by one
//     simulation step on the configured schedule
//  2. ActiveDeliveriesJob - refreshes the active deliveries gauge every ten
//     seconds
//
// # Usage
//
//	jobManager := jobs.NewJobManager(advanceHandler, activeHandler, "*/5 * * * * *", sink, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// An empty simulation schedule leaves deliveries to be advanced through the
// API only.
package jobs
