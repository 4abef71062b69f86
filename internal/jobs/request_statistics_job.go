package jobs

import (
	"context"
	"log/slog"

	"shipping/internal/core/application/usecases/queries"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/robfig/cron/v3"
)

// DefaultStatisticsSchedule refreshes the gauges every minute.
const DefaultStatisticsSchedule = "0 * * * * *"

// StatisticsHandler reads the per-status request counts.
type StatisticsHandler interface {
	Handle(ctx context.Context, query queries.GetRequestStatisticsQuery) (queries.GetRequestStatisticsQueryResponse, error)
}

// RequestStatisticsJob periodically publishes the number of shipping requests
// per status as the shipping_requests gauge.
type RequestStatisticsJob struct {
	handler  StatisticsHandler
	schedule string
	gauge    *prometheus.GaugeVec
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewRequestStatisticsJob registers the gauge with reg. schedule is a cron
// expression with a seconds field; an empty one means DefaultStatisticsSchedule.
func NewRequestStatisticsJob(
	handler StatisticsHandler,
	schedule string,
	reg prometheus.Registerer,
	logger *slog.Logger,
) *RequestStatisticsJob {
	if schedule == "" {
		schedule = DefaultStatisticsSchedule
	}

	return &RequestStatisticsJob{
		handler:  handler,
		schedule: schedule,
		gauge: promauto.With(reg).NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "shipping_requests",
				Help: "Number of shipping requests by status",
			},
			[]string{"status"},
		),
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "request_statistics_job"),
	}
}

// Start refreshes the gauges once and then on every tick of the schedule.
func (j *RequestStatisticsJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		j.Refresh(context.Background())
	}); err != nil {
		return err
	}

	j.Refresh(context.Background())

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Request statistics job started", "schedule", j.schedule)
	return nil
}

// Refresh reads the counts and sets one gauge per status. On failure the
// previous values are kept.
func (j *RequestStatisticsJob) Refresh(ctx context.Context) {
	stats, err := j.handler.Handle(ctx, queries.NewSystemRequestStatisticsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Request statistics job failed", "error", err)
		return
	}

	for status, count := range stats.ByStatus {
		j.gauge.WithLabelValues(status.String()).Set(float64(count))
	}
}

// Stop waits for a running refresh to finish.
func (j *RequestStatisticsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Request statistics job stopped")
}
