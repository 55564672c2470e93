package commands

import (
	"errors"
	"time"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrArchiveOrdersCommandIsNotConstructed = errors.New(
		"ArchiveOrdersCommand must be created via NewArchiveOrdersCommand constructor",
	)
)

// ArchiveOrdersCommand represents a request to archive every delivered or
// cancelled order that has been resting for at least the retention period.
// Issued by the archival job as the system actor.
type ArchiveOrdersCommand struct { //nolint:recvcheck //using for validation
	retention time.Duration

	guard guard.ConstructorGuard
}

// NewArchiveOrdersCommand creates an archival request. The retention period
// must be positive: archiving orders the moment they finish would yank them
// out of customer-facing history while people are still looking at them.
func NewArchiveOrdersCommand(retention time.Duration) (ArchiveOrdersCommand, error) {
	if retention <= 0 {
		return ArchiveOrdersCommand{}, errs.NewValueIsInvalidError("retention")
	}

	return ArchiveOrdersCommand{
		retention: retention,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ArchiveOrdersCommand) Validate() error {
	return c.guard.Validate(ErrArchiveOrdersCommandIsNotConstructed)
}

// Retention returns how long finished orders rest before archival.
func (c ArchiveOrdersCommand) Retention() time.Duration {
	return c.retention
}
