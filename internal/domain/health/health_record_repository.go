package health

import (
	"context"
	"time"

	"github.com/gadogest/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// HealthRecordRepository defines persistence operations for health records
type HealthRecordRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*HealthRecord, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]*HealthRecord, int64, error)
	FindByAnimal(ctx context.Context, animalID uuid.UUID) ([]*HealthRecord, error)
	CountScheduledAfter(ctx context.Context, after time.Time) (int64, error)
	Save(ctx context.Context, record *HealthRecord) error
	Delete(ctx context.Context, id uuid.UUID) error
}
