package jobs

import (
	"context"
	"log/slog"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// OpenOrdersWatchJob periodically reports the number of orders still open.
// Closing orders happens outside this service, so the job gives operators a
// running view of the backlog without exposing an extra endpoint.
type OpenOrdersWatchJob struct {
	handler queries.GetOrdersByStatusQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOpenOrdersWatchJob creates a new job watching the open-order backlog.
// Uses GetOrdersByStatusQueryHandler to count open orders every minute.
func NewOpenOrdersWatchJob(handler queries.GetOrdersByStatusQueryHandler, logger *slog.Logger) *OpenOrdersWatchJob {
	return &OpenOrdersWatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "open_orders_watch_job"),
	}
}

// Start begins the open orders watch job to run every minute.
func (j *OpenOrdersWatchJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		query, err := queries.NewGetOrdersByStatusQuery(order.Open)
		if err != nil {
			j.logger.ErrorContext(ctx, "Open orders watch job failed to build query", "error", err)
			return
		}

		openOrders, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Open orders watch job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Open orders backlog", "count", len(openOrders))
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Open orders watch job started (running every minute)")
	return nil
}

// Stop stops the open orders watch job.
func (j *OpenOrdersWatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Open orders watch job stopped")
}
