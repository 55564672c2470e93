package jobs

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ArchiveOrdersJob periodically moves finished orders into the archive.
// Runs on a configurable cron schedule, normally once a day.
type ArchiveOrdersJob struct {
	handler   commands.ArchiveOrdersCommandHandler
	schedule  string
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewArchiveOrdersJob creates the archival job. The schedule uses standard
// five-field cron syntax; retention is how long finished orders stay visible.
func NewArchiveOrdersJob(
	handler commands.ArchiveOrdersCommandHandler,
	schedule string,
	retention time.Duration,
	logger *slog.Logger,
) *ArchiveOrdersJob {
	return &ArchiveOrdersJob{
		handler:   handler,
		schedule:  schedule,
		retention: retention,
		cron:      cron.New(),
		logger:    logger.With("component", "archive_orders_job"),
	}
}

// Start schedules the archival run.
func (j *ArchiveOrdersJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewArchiveOrdersCommand(j.retention)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Order archival job misconfigured", "error", cmdErr)
			return
		}

		archived, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Order archival job failed", "error", handleErr)
			return
		}
		j.logger.InfoContext(ctx, "Order archival job completed", "archived", archived)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order archival job started", "schedule", j.schedule)
	return nil
}

// Stop stops the archival job.
func (j *ArchiveOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order archival job stopped")
}
