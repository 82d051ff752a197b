package finance

import (
	"context"
	"time"

	"github.com/gadogest/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// FinancialRecordRepository defines persistence operations for financial records
type FinancialRecordRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*FinancialRecord, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]*FinancialRecord, int64, error)
	// Summarize aggregates income, expense and balance over every record
	// matching the filter, ignoring pagination.
	Summarize(ctx context.Context, filter shared.Filter) (*Summary, error)
	SummarizePeriod(ctx context.Context, from, to time.Time) (*Summary, error)
	Save(ctx context.Context, record *FinancialRecord) error
	Delete(ctx context.Context, id uuid.UUID) error
}
