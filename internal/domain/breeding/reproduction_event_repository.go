package breeding

import (
	"context"

	"github.com/gadogest/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ReproductionEventRepository defines persistence operations for reproduction events
type ReproductionEventRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReproductionEvent, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]*ReproductionEvent, int64, error)
	// Summarize counts events by type and calves born over every event
	// matching the filter, ignoring pagination.
	Summarize(ctx context.Context, filter shared.Filter) (*Summary, error)
	Save(ctx context.Context, event *ReproductionEvent) error
	Delete(ctx context.Context, id uuid.UUID) error
}
