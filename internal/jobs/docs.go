// Package jobs provides scheduled background tasks for the shipping service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Jobs never change shipping requests; they only read.
//
// # Available Jobs
//
// 1. RequestStatisticsJob - counts requests per status and publishes them as
// the shipping_requests{status="..."} Prometheus gauge
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(statisticsHandler, "0 * * * * *", prometheus.DefaultRegisterer, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the six-field cron syntax (with seconds). The statistics job
// defaults to once a minute and is configured with STATS_SCHEDULE.
//
// # Error Handling
//
// A failed run is logged and the gauges keep their last values; the next tick
// tries again.
package jobs
