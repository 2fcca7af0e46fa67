package actions

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

// IAction is one write applied inside a single unit of work. Perform must do
// all of its writes through writer; the operator commits them together or
// rolls them back on error.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
