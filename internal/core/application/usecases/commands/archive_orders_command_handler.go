package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// ArchiveOrdersCommandHandler moves stale finished orders into the archive.
// Nobody is notified: by the time an order is archived the interested parties
// stopped caring about it long ago.
type ArchiveOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewArchiveOrdersCommandHandler creates a handler for order archival.
func NewArchiveOrdersCommandHandler(uowFactory OrderUoWFactory) ArchiveOrdersCommandHandler {
	return ArchiveOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle archives every finished order older than the command's retention
// period and reports how many orders were archived. Archival runs as the
// system actor.
func (h ArchiveOrdersCommandHandler) Handle(ctx context.Context, command ArchiveOrdersCommand) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().UTC().Add(-command.Retention())

	aggregates, err := uow.OrderRepository().GetAllFinishedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	for _, aggregate := range aggregates {
		if _, err = aggregate.Transition(order.Archived, kernel.RoleSystem); err != nil {
			return 0, err
		}

		if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(aggregates), nil
}
