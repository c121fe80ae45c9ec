// Package jobs provides scheduled background tasks for the marketplace.
//
// DeliveryAssignmentJob drains the backlog of paid orders that could not get
// a delivery partner at payment time because every partner was busy. It runs
// every thirty seconds and retries automatic assignment for each backlog
// order; partners freed by completed deliveries get picked up on the next
// tick.
package jobs

import (
	"context"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DeliveryAssignmentJob retries partner assignment for paid orders without a
// delivery.
type DeliveryAssignmentJob struct {
	uowFactory ports.UnitOfWorkFactory
	handler    commands.AutoAssignDeliveryCommandHandler
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewDeliveryAssignmentJob creates the assignment retry job. The unit of
// work factory is only used for the backlog read; each assignment runs in
// its own transaction inside the command handler.
func NewDeliveryAssignmentJob(
	uowFactory ports.UnitOfWorkFactory,
	handler commands.AutoAssignDeliveryCommandHandler,
	logger *slog.Logger,
) *DeliveryAssignmentJob {
	return &DeliveryAssignmentJob{
		uowFactory: uowFactory,
		handler:    handler,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "delivery_assignment_job"),
	}
}

// Start begins the assignment retry job, running every thirty seconds.
func (j *DeliveryAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Delivery assignment job started (running every 30 seconds)")
	return nil
}

// Stop stops the assignment retry job.
func (j *DeliveryAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery assignment job stopped")
}

func (j *DeliveryAssignmentJob) run() {
	ctx := context.Background()

	backlog, err := j.uowFactory.Create().OrderRepository().GetAllPaidWithoutDelivery(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to read assignment backlog", "error", err)
		return
	}

	for _, o := range backlog {
		cmd, cmdErr := commands.NewAutoAssignDeliveryCommand(o.ID())
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Failed to build assignment command",
				"order_id", o.ID().String(), "error", cmdErr)
			continue
		}

		assigned, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Delivery assignment retry failed",
				"order_id", o.ID().String(), "error", handleErr)
			continue
		}

		if assigned {
			j.logger.InfoContext(ctx, "Backlog order assigned to partner",
				"order_id", o.ID().String())
		}
	}
}
