package jobs

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	requestStatisticsJob *RequestStatisticsJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	statisticsHandler StatisticsHandler,
	statisticsSchedule string,
	reg prometheus.Registerer,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		requestStatisticsJob: NewRequestStatisticsJob(statisticsHandler, statisticsSchedule, reg, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.requestStatisticsJob.Start(); err != nil {
		return fmt.Errorf("failed to start request statistics job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.requestStatisticsJob.Stop()
}
