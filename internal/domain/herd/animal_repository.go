package herd

import (
	"context"

	"github.com/gadogest/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// AnimalRepository defines persistence operations for animals
type AnimalRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Animal, error)
	FindByIdentification(ctx context.Context, identification string) (*Animal, error)
	ExistsByIdentification(ctx context.Context, identification string) (bool, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]*Animal, int64, error)
	CountByStatus(ctx context.Context, status AnimalStatus) (int64, error)
	CountActive(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
	Save(ctx context.Context, animal *Animal) error
	Delete(ctx context.Context, id uuid.UUID) error
}
